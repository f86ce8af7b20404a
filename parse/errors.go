package parse

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the input contains no pieces at all.
	ErrEmptyInput = errors.New("parse: empty input")

	// ErrTooManyPieces is returned when the input describes more than
	// piece.MaxPieces pieces. Kept as an independent sentinel (rather
	// than importing piece) so this package has no dependency on the
	// sequence builder it feeds.
	ErrTooManyPieces = errors.New("parse: too many pieces")

	// ErrBadCharacter is returned when a piece line contains a rune
	// other than '.' or '#'.
	ErrBadCharacter = errors.New("parse: invalid character in piece")

	// ErrBadLineLength is returned when a piece line is not exactly
	// four characters wide.
	ErrBadLineLength = errors.New("parse: piece line must be exactly 4 characters")

	// ErrBadLineCount is returned when a piece block is not exactly
	// four lines tall.
	ErrBadLineCount = errors.New("parse: piece must be exactly 4 lines")

	// ErrEmptyPiece is returned when a piece block has zero filled cells.
	ErrEmptyPiece = errors.New("parse: piece has no filled cells")

	// ErrUnknownShape is returned when a piece's filled cells, after
	// normalization, do not match any of the 19 canonical shapes.
	ErrUnknownShape = errors.New("parse: cell pattern is not a canonical tetromino shape")
)

// Error names the offending 1-based piece index alongside the
// underlying sentinel, so a caller (typically the CLI) can report
// "piece 3: ..." without re-deriving the index itself.
type Error struct {
	PieceIndex int // 1-based
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse: piece %d: %v", e.PieceIndex, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
