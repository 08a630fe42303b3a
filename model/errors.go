package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned when a grid is requested with a non-positive row or column count
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrMalformedGrid is returned when explicit cell data is empty, ragged or unparseable
	ErrMalformedGrid = errors.New("malformed grid")
)

func validateDimensions(rows, columns int) error {
	if rows <= 0 || columns <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "rows=%d columns=%d", rows, columns)
	}
	return nil
}
