package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// parallelCellThreshold is the grid area from which row bands are computed concurrently
const parallelCellThreshold = 64 * 64

// Advance returns the next generation of g in a freshly allocated grid.
// g itself is left untouched.
func Advance(g *Grid) *Grid {
	return g.NextGeneration(nil)
}

// NextGeneration calculates the next generation. Every neighbor count is read
// from g; the result is written into a separate grid taken from pool, or
// allocated when pool is nil.
func (g *Grid) NextGeneration(pool *GridPool) *Grid {
	var next *Grid
	if pool != nil {
		next = pool.Get(g.rows, g.columns)
	} else {
		next = newGrid(g.rows, g.columns)
	}

	if g.rows*g.columns < parallelCellThreshold {
		g.nextRows(next, 0, g.rows)
		return next
	}

	var (
		eg            errgroup.Group
		numWorkers    = min(runtime.NumCPU(), g.rows)
		rowsPerWorker = (g.rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.rows)
		)
		if startRow >= g.rows {
			break
		}

		eg.Go(func() error {
			g.nextRows(next, startRow, endRow)
			return nil
		})
	}

	// bands never fail; Wait only joins the workers
	_ = eg.Wait()

	return next
}

// nextRows writes rows [startRow, endRow) of the next generation into next
func (g *Grid) nextRows(next *Grid, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := range g.columns {
			alive := rules.ApplyConwayRules(g.CountLiveNeighbors(y, x), g.cells[y][x] == Alive)
			next.cells[y][x] = CellOf(alive)
		}
	}
}
