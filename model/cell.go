package model

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// CellOf converts a boolean liveness flag into a Cell
func CellOf(alive bool) Cell {
	if alive {
		return Alive
	}
	return Dead
}

// Alive reports whether the cell is alive
func (c Cell) Alive() bool {
	return c == Alive
}

// String returns the numeric form used by the renderer ("0" or "1")
func (c Cell) String() string {
	if c == Alive {
		return "1"
	}
	return "0"
}
