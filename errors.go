package vecstore

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a keyspace lookup by name has no match.
	ErrNotFound = errors.New("keyspace not found")

	// ErrEmptyKeyspace is returned when a search runs against a keyspace
	// that holds no vectors.
	ErrEmptyKeyspace = errors.New("keyspace is empty")
)

// ErrDimensionMismatch indicates a vector/query dimensionality mismatch.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidDimension indicates an invalid configured dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

// ErrOutOfRange indicates an index outside [0, Size).
type ErrOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Size)
}
