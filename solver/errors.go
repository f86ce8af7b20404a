package solver

import "errors"

// ErrUnsatisfiable is returned by Solve when the board side reached
// MaxBoardSize without placing every piece. With the standard 19-shape
// tetromino catalog and K <= 26 pieces this should never occur — it
// signals either a non-canonical shape set or a solver defect, not a
// malformed input (inputs are already validated by the time a
// piece.Sequence reaches Solve).
var ErrUnsatisfiable = errors.New("solver: no packing found up to the maximum board size")
