package model

import (
	"sort"

	"github.com/pkg/errors"
)

// Offset is a (row, column) displacement from a pattern's origin
type Offset struct {
	Row, Col int
}

// Pattern is a named set of live cells relative to its top-left corner
type Pattern struct {
	Name  string
	Cells []Offset
}

var (
	// Block is a 2x2 still life
	Block = Pattern{Name: "block", Cells: []Offset{{0, 0}, {0, 1}, {1, 0}, {1, 1}}}
	// Blinker is a horizontal period-2 oscillator
	Blinker = Pattern{Name: "blinker", Cells: []Offset{{0, 0}, {0, 1}, {0, 2}}}
	// Glider travels one cell diagonally every four generations
	Glider = Pattern{Name: "glider", Cells: []Offset{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}}
)

var patterns = map[string]Pattern{
	Block.Name:   Block,
	Blinker.Name: Blinker,
	Glider.Name:  Glider,
}

// PatternByName looks up one of the built-in patterns
func PatternByName(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, errors.Errorf("[PatternByName] unknown pattern %q", name)
	}
	return p, nil
}

// PatternNames lists the built-in pattern names in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stamp returns a copy of the grid with the pattern's cells set alive, its
// origin placed at (row, col). Cells falling outside the grid are dropped.
func (g *Grid) Stamp(row, col int, p Pattern) *Grid {
	c := g.Clone()
	for _, o := range p.Cells {
		y, x := row+o.Row, col+o.Col
		if y >= 0 && y < c.rows && x >= 0 && x < c.columns {
			c.cells[y][x] = Alive
		}
	}
	return c
}

// Centered returns the origin that centers p on the grid
func (g *Grid) Centered(p Pattern) (row, col int) {
	var h, w int
	for _, o := range p.Cells {
		h = max(h, o.Row+1)
		w = max(w, o.Col+1)
	}
	return (g.rows - h) / 2, (g.columns - w) / 2
}
