package model

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
)

// defaultDensity is the probability that a randomly initialized cell starts alive
const defaultDensity = 0.5

// Grid is a bounded rectangular board of cells.
//
// A Grid handed out by a constructor or by NextGeneration is treated as an
// immutable snapshot: the transition engine never writes into its input, and
// helpers such as WithCell and Stamp return modified copies.
type Grid struct {
	rows    int
	columns int
	cells   [][]Cell
}

// newGrid allocates an all-dead grid without validating dimensions
func newGrid(rows, columns int) *Grid {
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, columns)
	}
	return &Grid{
		rows:    rows,
		columns: columns,
		cells:   cells,
	}
}

// NewDeadGrid creates a grid of the given size with every cell dead
func NewDeadGrid(rows, columns int) (*Grid, error) {
	if err := validateDimensions(rows, columns); err != nil {
		return nil, errors.Wrap(err, "[NewDeadGrid]")
	}
	return newGrid(rows, columns), nil
}

// NewRandomGrid creates a grid where every cell is independently alive or dead
// with equal probability. A nil rng falls back to a time-seeded source.
func NewRandomGrid(rows, columns int, rng *rand.Rand) (*Grid, error) {
	return NewRandomGridWithDensity(rows, columns, defaultDensity, rng)
}

// NewRandomGridWithDensity creates a grid where every cell is alive with probability density
func NewRandomGridWithDensity(rows, columns int, density float64, rng *rand.Rand) (*Grid, error) {
	if err := validateDimensions(rows, columns); err != nil {
		return nil, errors.Wrap(err, "[NewRandomGridWithDensity]")
	}
	if density < 0 || density > 1 {
		return nil, errors.Errorf("[NewRandomGridWithDensity] density %v out of range [0, 1]", density)
	}
	if rng == nil {
		rng = NewRNG(time.Now().UnixNano())
	}

	g := newGrid(rows, columns)
	for y := range g.rows {
		for x := range g.columns {
			if density == defaultDensity {
				// uniform choice over the two states
				g.cells[y][x] = Cell(rng.IntN(2))
			} else {
				g.cells[y][x] = CellOf(rng.Float64() < density)
			}
		}
	}
	return g, nil
}

// NewGridFromRows builds a grid from explicit cell rows. The input is copied.
func NewGridFromRows(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrap(ErrMalformedGrid, "[NewGridFromRows] no cells")
	}

	g := newGrid(len(rows), len(rows[0]))
	for y, row := range rows {
		if len(row) != g.columns {
			return nil, errors.Wrapf(ErrMalformedGrid,
				"[NewGridFromRows] row %d has %d cells, expected %d", y, len(row), g.columns)
		}
		for x, c := range row {
			if c != Dead && c != Alive {
				return nil, errors.Wrapf(ErrMalformedGrid, "[NewGridFromRows] bad cell value %d at (%d,%d)", c, y, x)
			}
			g.cells[y][x] = c
		}
	}
	return g, nil
}

// Rows returns the number of rows of the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Columns returns the number of columns of the grid
func (g *Grid) Columns() int {
	return g.columns
}

func (g *Grid) mustContain(row, col int) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.columns {
		panic(fmt.Sprintf("model: coordinate (%d,%d) outside %dx%d grid", row, col, g.rows, g.columns))
	}
}

// Get returns the state of a cell. It panics if (row, col) is outside the grid.
func (g *Grid) Get(row, col int) Cell {
	g.mustContain(row, col)
	return g.cells[row][col]
}

// IsAlive reports whether the cell at (row, col) is alive
func (g *Grid) IsAlive(row, col int) bool {
	return g.Get(row, col).Alive()
}

// CountLiveNeighbors counts the living cells among the up to eight neighbors
// of (row, col). Positions beyond the edges are not counted, so corner cells
// have three candidate neighbors and edge cells five.
// It panics if (row, col) is outside the grid.
func (g *Grid) CountLiveNeighbors(row, col int) int {
	g.mustContain(row, col)
	count := 0

	minY := max(0, row-1)
	maxY := min(g.rows-1, row+1)
	minX := max(0, col-1)
	maxX := min(g.columns-1, col+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if ny == row && nx == col {
				continue
			}
			if g.cells[ny][nx] == Alive {
				count++
			}
		}
	}

	return count
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.rows {
		for x := range g.columns {
			if g.cells[y][x] == Alive {
				count++
			}
		}
	}
	return
}

// Equal reports whether two grids have the same size and cell states
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rows != other.rows || g.columns != other.columns {
		return false
	}
	for y := range g.rows {
		for x := range g.columns {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := newGrid(g.rows, g.columns)
	for y := range g.rows {
		copy(c.cells[y], g.cells[y])
	}
	return c
}

// WithCell returns a copy of the grid with one cell changed.
// It panics if (row, col) is outside the grid.
func (g *Grid) WithCell(row, col int, state Cell) *Grid {
	g.mustContain(row, col)
	c := g.Clone()
	c.cells[row][col] = state
	return c
}

// reset resizes a pooled grid and clears every cell
func (g *Grid) reset(rows, columns int) {
	g.rows = rows
	g.columns = columns

	if len(g.cells) != rows {
		g.cells = make([][]Cell, rows)
	}
	for i := range g.cells {
		if len(g.cells[i]) != columns {
			g.cells[i] = make([]Cell, columns)
		} else {
			clear(g.cells[i])
		}
	}
}
