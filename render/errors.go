package render

import "errors"

// ErrSizeTooSmall is returned by Render when n <= 0 — there is no
// character grid to stamp placements into.
var ErrSizeTooSmall = errors.New("render: grid size must be positive")
