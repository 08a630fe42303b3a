package utils

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the configuration for the game
type Config struct {
	// Rows and Columns of the board; zero means ask on the console
	Rows    int `json:"rows" yaml:"rows"`
	Columns int `json:"columns" yaml:"columns"`
	// Seed for the initial random state; nil picks a time-based seed
	Seed    *int64  `json:"seed,omitempty" yaml:"seed,omitempty"`
	Density float64 `json:"density" yaml:"density"`
	// Pattern stamps a built-in pattern onto a dead board instead of randomizing
	Pattern string `json:"pattern" yaml:"pattern"`
	// InitialFile loads the first generation from a rendered grid file
	InitialFile string `json:"initial_file" yaml:"initial_file"`
	// Generations to autoplay; zero runs the interactive Y/N loop
	Generations   int           `json:"generations" yaml:"generations"`
	FrameRate     time.Duration `json:"frame_rate" yaml:"frame_rate"`
	UseMemoryPool bool          `json:"use_memory_pool" yaml:"use_memory_pool"`
	RenderStyle   string        `json:"render_style" yaml:"render_style"`
	ClearScreen   bool          `json:"clear_screen" yaml:"clear_screen"`
	LogLevel      string        `json:"log_level" yaml:"log_level"`
	MetricsAddr   string        `json:"metrics_addr" yaml:"metrics_addr"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Density:       0.5,
		FrameRate:     150 * time.Millisecond,
		UseMemoryPool: true,
		RenderStyle:   "digits",
		LogLevel:      "info",
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal yaml from file: %+v", filename)
		}
	default:
		if err = json.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
		}
	}

	return config, nil
}

// Validate checks the configuration for values the game cannot run with
func (c Config) Validate() error {
	switch {
	case c.Rows < 0 || c.Columns < 0:
		return errors.Errorf("[Validate] grid size must be positive, got %dx%d", c.Rows, c.Columns)
	case (c.Rows == 0) != (c.Columns == 0):
		return errors.Errorf("[Validate] rows and columns must be set together, got %dx%d", c.Rows, c.Columns)
	case c.Density < 0 || c.Density > 1:
		return errors.Errorf("[Validate] density must be within [0, 1], got %v", c.Density)
	case c.Generations < 0:
		return errors.Errorf("[Validate] generations must not be negative, got %d", c.Generations)
	case c.FrameRate < 0:
		return errors.Errorf("[Validate] frame rate must not be negative, got %v", c.FrameRate)
	case c.Pattern != "" && c.InitialFile != "":
		return errors.New("[Validate] pattern and initial_file are mutually exclusive")
	}

	switch c.RenderStyle {
	case "digits", "blocks":
	default:
		return errors.Errorf("[Validate] unknown render style %q", c.RenderStyle)
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "[Validate]")
	}
	return nil
}

// ParseLevel maps a level name onto a slog.Level
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, errors.Wrapf(err, "[ParseLevel] unknown log level %q", name)
	}
	return level, nil
}
