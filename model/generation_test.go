package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-life/rules"
)

// referenceNext is a straightforward single-threaded next generation used to check NextGeneration
func referenceNext(g *Grid) *Grid {
	next := newGrid(g.Rows(), g.Columns())
	for y := range g.Rows() {
		for x := range g.Columns() {
			next.cells[y][x] = CellOf(rules.ApplyConwayRules(g.CountLiveNeighbors(y, x), g.IsAlive(y, x)))
		}
	}
	return next
}

func TestAdvancePreservesDimensions(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {1, 7}, {7, 1}, {3, 8}, {10, 4}} {
		g, err := NewRandomGrid(size[0], size[1], NewRNG(3))
		require.NoError(t, err)

		next := Advance(g)
		assert.Equal(t, size[0], next.Rows())
		assert.Equal(t, size[1], next.Columns())
	}
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	g, err := NewRandomGrid(16, 11, NewRNG(5))
	require.NoError(t, err)
	before := g.Clone()

	next := Advance(g)
	assert.True(t, g.Equal(before))
	assert.NotSame(t, g, next)
}

func TestAdvanceIsDeterministic(t *testing.T) {
	g, err := NewRandomGrid(20, 20, NewRNG(9))
	require.NoError(t, err)

	assert.True(t, Advance(g).Equal(Advance(g)))
}

func TestAdvanceBlockIsStillLife(t *testing.T) {
	g, err := NewDeadGrid(4, 4)
	require.NoError(t, err)
	g = g.Stamp(1, 1, Block)

	next := Advance(g)
	assert.True(t, next.Equal(g), "block changed:\n%s", Render(next))
}

func TestAdvanceBlinkerOscillates(t *testing.T) {
	g, err := NewDeadGrid(5, 5)
	require.NoError(t, err)
	horizontal := g.Stamp(2, 1, Blinker)
	vertical := mustGrid(t, `
00000
00100
00100
00100
00000`)

	once := Advance(horizontal)
	assert.True(t, once.Equal(vertical), "after one generation:\n%s", Render(once))

	twice := Advance(once)
	assert.True(t, twice.Equal(horizontal), "after two generations:\n%s", Render(twice))
}

func TestAdvanceAllDeadStaysDead(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {2, 5}, {9, 9}} {
		g, err := NewDeadGrid(size[0], size[1])
		require.NoError(t, err)
		assert.Zero(t, Advance(g).CountLivingCells())
	}
}

func TestAdvanceEdgesDoNotWrap(t *testing.T) {
	// a blinker lying on the top edge loses its outer cells instead of wrapping
	g := mustGrid(t, `
01110
00000
00000`)
	want := mustGrid(t, `
00100
00100
00000`)

	assert.True(t, Advance(g).Equal(want), "got:\n%s", Render(Advance(g)))
}

func TestAdvanceRules(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lonely cell dies", "000\n010\n000", "000\n000\n000"},
		{"birth from three neighbors", "110\n100\n000", "110\n110\n000"},
		{"overpopulated cells die", "111\n111\n000", "101\n101\n010"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Advance(mustGrid(t, tt.input))
			assert.True(t, got.Equal(mustGrid(t, tt.want)), "got:\n%s", Render(got))
		})
	}
}

func TestNextGenerationParallelMatchesReference(t *testing.T) {
	// large enough to be split into row bands
	g, err := NewRandomGrid(80, 70, NewRNG(11))
	require.NoError(t, err)
	require.GreaterOrEqual(t, g.Rows()*g.Columns(), parallelCellThreshold)

	want := g
	got := g
	for range 5 {
		want = referenceNext(want)
		got = Advance(got)
	}
	assert.True(t, got.Equal(want))
}

func TestNextGenerationWithPool(t *testing.T) {
	pool := NewGridPool()
	g, err := NewRandomGrid(30, 25, NewRNG(13))
	require.NoError(t, err)

	current := g
	for range 10 {
		next := current.NextGeneration(pool)
		require.True(t, next.Equal(referenceNext(current)))
		if current != g {
			GridToPool(current, pool)
		}
		current = next
	}
}
