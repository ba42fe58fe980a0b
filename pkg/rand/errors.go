package rand

import "errors"

var (
	// ErrEmptySeed is returned when a seeded source is created without seed material
	ErrEmptySeed = errors.New("seed cannot be empty")

	// ErrNilReader is returned when a source is built on a nil reader
	ErrNilReader = errors.New("reader cannot be nil")

	// ErrInvalidWorker is returned when a negative worker index is requested
	ErrInvalidWorker = errors.New("worker index must be non-negative")
)
