package main

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	msgWelcome       = "Welcome to the Game Of Life!\n"
	msgSizePrompt    = "Please enter a number: "
	msgBadSize       = "Sorry, that wasn't a valid number. Please try again.\n"
	msgInitialState  = "Here is the initial state of your game!\n"
	msgCycles        = "Number of cycles: %d\n"
	msgContinue      = "Would you like to keep going? (Y/N) "
	msgBadResponse   = "Sorry, that wasn't a valid response. Please try again.\n"
	answerContinue   = "Y"
	answerStop       = "N"
	statusLineFormat = "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n"
)

// game wires the grid engine to a console
type game struct {
	config   utils.Config
	input    *bufio.Scanner
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	pool     *model.GridPool
	rng      *rand.Rand
	logger   *slog.Logger
}

// initializeGame sets up the game collaborators
func initializeGame(
	config utils.Config,
	in io.Reader,
	out io.Writer,
	tty bool,
	stats *utils.Stats,
	logger *slog.Logger,
) *game {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	seed := time.Now().UnixNano()
	if config.Seed != nil {
		seed = *config.Seed
	}
	logger.Debug("random source seeded", "seed", seed)

	return &game{
		config:   config,
		input:    bufio.NewScanner(in),
		renderer: model.NewTerminalRenderer(out, model.RenderStyle(config.RenderStyle), tty),
		stats:    stats,
		pool:     pool,
		rng:      model.NewRNG(seed),
		logger:   logger,
	}
}

// readLine returns the next trimmed input line, or io.EOF when input is exhausted
func (g *game) readLine() (string, error) {
	if !g.input.Scan() {
		if err := g.input.Err(); err != nil {
			return "", errors.Wrap(err, "[readLine] failed to read input")
		}
		return "", io.EOF
	}
	return strings.TrimSpace(g.input.Text()), nil
}

// promptSize asks for a positive grid size until one is entered
func (g *game) promptSize() (int, error) {
	for {
		g.renderer.Printf(msgSizePrompt)
		line, err := g.readLine()
		if err != nil {
			return 0, err
		}
		size, err := strconv.Atoi(line)
		if err != nil || size <= 0 {
			g.logger.Debug("rejected grid size", "input", line)
			g.renderer.Printf(msgBadSize)
			continue
		}
		return size, nil
	}
}

// initialGrid builds the first generation from a file, a pattern or the random source
func (g *game) initialGrid() (*model.Grid, error) {
	if g.config.InitialFile != "" {
		data, err := os.ReadFile(g.config.InitialFile)
		if err != nil {
			return nil, errors.Wrapf(err, "[initialGrid] failed to read file: %+v", g.config.InitialFile)
		}
		grid, err := model.ParseGrid(string(data))
		if err != nil {
			return nil, errors.Wrapf(err, "[initialGrid] failed to parse file: %+v", g.config.InitialFile)
		}
		return grid, nil
	}

	rows, columns := g.config.Rows, g.config.Columns
	if rows == 0 {
		size, err := g.promptSize()
		if err != nil {
			return nil, err
		}
		// the console only asks for square boards
		rows, columns = size, size
	}

	if g.config.Pattern != "" {
		pattern, err := model.PatternByName(g.config.Pattern)
		if err != nil {
			return nil, err
		}
		grid, err := model.NewDeadGrid(rows, columns)
		if err != nil {
			return nil, err
		}
		row, col := grid.Centered(pattern)
		return grid.Stamp(row, col, pattern), nil
	}

	return model.NewRandomGridWithDensity(rows, columns, g.config.Density, g.rng)
}

// advance computes the next generation and records it in the stats
func (g *game) advance(grid *model.Grid, generation int) *model.Grid {
	start := time.Now()
	next := grid.NextGeneration(g.pool)
	population := next.CountLivingCells()
	g.stats.Update(generation, population, time.Since(start))

	g.logger.Debug("advanced generation",
		"generation", generation, "population", population, "elapsed", time.Since(start))

	return next
}

// displayFrame shows one generation
func (g *game) displayFrame(grid *model.Grid) error {
	if g.config.ClearScreen {
		g.renderer.Clear()
	}
	return g.renderer.Display(grid)
}

// runInteractive renders the initial state and advances one generation per "Y" answer
func (g *game) runInteractive(ctx context.Context) error {
	g.renderer.Printf(msgWelcome)

	grid, err := g.initialGrid()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	g.stats.Observe(0, grid.CountLivingCells())

	g.renderer.Printf(msgInitialState)
	if err = g.displayFrame(grid); err != nil {
		return err
	}

	numCycles := 0
loop:
	for ctx.Err() == nil {
		g.renderer.Printf(msgCycles, numCycles)
		g.renderer.Printf(msgContinue)

		answer, err := g.readLine()
		if errors.Is(err, io.EOF) {
			break loop
		}
		if err != nil {
			return err
		}

		switch answer {
		case answerContinue:
			numCycles++
			next := g.advance(grid, numCycles)
			model.GridToPool(grid, g.pool)
			grid = next
			if err = g.displayFrame(grid); err != nil {
				return err
			}
		case answerStop:
			break loop
		default:
			g.renderer.Printf(msgBadResponse)
		}
	}

	g.logger.Info("session ended", "cycles", numCycles)
	return nil
}

// runAuto plays the configured number of generations without prompting
func (g *game) runAuto(ctx context.Context) error {
	grid, err := g.initialGrid()
	if err != nil {
		return err
	}

	generation := 0
	for {
		livingCells := grid.CountLivingCells()
		if generation == 0 {
			g.stats.Observe(0, livingCells)
		}

		if err = g.displayFrame(grid); err != nil {
			return err
		}
		displayGameStatus(g.renderer, grid, generation, livingCells, "Active")

		if generation >= g.config.Generations {
			break
		}

		select {
		case <-ctx.Done():
			g.logger.Info("shutting down", "generation", generation)
			return nil
		case <-time.After(g.config.FrameRate):
		}

		generation++
		next := g.advance(grid, generation)

		if stop, reason := checkStopConditions(grid, next); stop {
			if err = g.displayFrame(next); err != nil {
				return err
			}
			displayGameStatus(g.renderer, next, generation, next.CountLivingCells(), reason)
			g.logger.Info("autoplay stopped", "reason", reason, "generation", generation)
			return nil
		}

		model.GridToPool(grid, g.pool)
		grid = next
	}

	g.logger.Info("autoplay finished",
		"generations", generation,
		"avg_population", g.stats.AveragePopulation,
		"runtime", time.Since(g.stats.StartTime))
	return nil
}

// displayGameStatus prints the status line under a frame
func displayGameStatus(renderer *model.TerminalRenderer, grid *model.Grid, generation, livingCells int, status string) {
	density := float64(livingCells) / float64(grid.Rows()*grid.Columns()) * 100
	renderer.Printf(statusLineFormat, generation, livingCells, density, status)
}

// checkStopConditions determines if autoplay has nothing left to show
func checkStopConditions(current, next *model.Grid) (bool, string) {
	if next.CountLivingCells() == 0 {
		return true, "Extinct"
	}
	if next.Equal(current) {
		return true, "Still life"
	}
	return false, ""
}
