package piece

import "errors"

// Sentinel errors for the piece package.
var (
	// ErrEmptySequence is returned by NewSequence for a zero-length input.
	ErrEmptySequence = errors.New("piece: sequence must contain at least one piece")
	// ErrTooManyPieces is returned by NewSequence when len(shapes) > MaxPieces.
	ErrTooManyPieces = errors.New("piece: sequence exceeds the maximum of 26 pieces")
)
