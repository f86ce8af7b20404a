package board

import "errors"

// Sentinel errors for the board package. Every message is prefixed with
// "board: " for consistent grepping across logs; callers should match
// via errors.Is rather than string comparison.
var (
	// ErrSizeTooSmall is returned by New when size < MinSize.
	ErrSizeTooSmall = errors.New("board: size must be at least 1")
	// ErrSizeTooLarge is returned by New when size > MaxSize.
	ErrSizeTooLarge = errors.New("board: size must be at most 16")
)
