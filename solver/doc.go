// Package solver implements the size-expanding backtracking search that
// packs a sequence of tetromino pieces into the smallest square board.
//
// What:
//   - Solve(seq, opts...) runs the size controller: it tries
//     increasing board sides N, starting from ceil(sqrt(4*K)), until
//     the backtracker either finds a placement for every piece or N
//     exceeds MaxBoardSize.
//   - The backtracker is an iterative depth-first search over
//     placements, one piece at a time in input order. Two pruning
//     mechanisms keep the search tractable:
//     1. Per-ordinal "farthest position": a piece type never retries a
//     placement an earlier piece of the same ordinal already tried
//     and rejected by moving past it — see engine.run in solver.go.
//     2. "Wasted tiles": once every piece ordinal has appeared at
//     least once (tracked via piece.Sequence.IsLastPieceType), the
//     search aborts early if the board's remaining capacity cannot
//     possibly fit the tiles that would be permanently stranded
//     before the next reachable placement — see wasted.go.
//
// Why:
//   - Both heuristics are pure search-order optimizations: neither can
//     skip a placement the unpruned search would eventually need, so
//     completeness is preserved while the constant factor on hard
//     instances drops by orders of magnitude.
//
// Complexity:
//   - Worst case exponential in K (this is an NP-hard packing
//     problem); the pruning above is what keeps real instances with
//     K <= 26 solvable in well under a second.
//   - Memory: O(K) for the depth stack, O(19) for the farthest array,
//     O(1) extra for the board (fixed-size bitmap) — the whole working
//     set is a few hundred bytes and stays cache-resident.
package solver
