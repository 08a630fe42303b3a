package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridPoolReturnsClearedGrids(t *testing.T) {
	pool := NewGridPool()

	dirty, err := NewRandomGridWithDensity(6, 6, 1, NewRNG(1))
	require.NoError(t, err)
	pool.Put(dirty)

	g := pool.Get(4, 9)
	assert.Equal(t, 4, g.Rows())
	assert.Equal(t, 9, g.Columns())
	assert.Zero(t, g.CountLivingCells())
}

func TestGridToPoolNil(t *testing.T) {
	assert.NotPanics(t, func() {
		GridToPool(nil, NewGridPool())
		GridToPool(&Grid{}, nil)
	})
}
