package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternByName(t *testing.T) {
	for _, name := range PatternNames() {
		p, err := PatternByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, p.Name)
	}

	_, err := PatternByName("pulsar")
	assert.Error(t, err)
	assert.Equal(t, []string{"blinker", "block", "glider"}, PatternNames())
}

func TestStampClipsAndCopies(t *testing.T) {
	g, err := NewDeadGrid(3, 3)
	require.NoError(t, err)

	stamped := g.Stamp(2, 2, Block)
	assert.Equal(t, 1, stamped.CountLivingCells())
	assert.True(t, stamped.IsAlive(2, 2))
	assert.Zero(t, g.CountLivingCells())
}

func TestCentered(t *testing.T) {
	g, err := NewDeadGrid(5, 5)
	require.NoError(t, err)

	row, col := g.Centered(Blinker)
	assert.Equal(t, 2, row)
	assert.Equal(t, 1, col)

	row, col = g.Centered(Glider)
	assert.Equal(t, 1, row)
	assert.Equal(t, 1, col)
}

func TestGliderTravels(t *testing.T) {
	g, err := NewDeadGrid(8, 8)
	require.NoError(t, err)
	start := g.Stamp(0, 0, Glider)

	current := start
	for range 4 {
		current = Advance(current)
	}

	want := g.Stamp(1, 1, Glider)
	assert.True(t, current.Equal(want), "got:\n%s", Render(current))
}
