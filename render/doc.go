// Package render stamps a solved list of piece placements into the
// labeled character grid shown to the user.
//
// What:
//   - Placement pairs a tetromino.Shape with its board position.
//   - Render(placements, n) produces an n-line string: '.' for an
//     empty cell, 'A'+k for the k-th placement (0-based), so the first
//     input piece is always labeled 'A', matching parse order.
//
// Why:
//   - Kept separate from the solver so the solver's hot loop never
//     touches byte buffers or formatting — Render runs exactly once,
//     after the search has already committed to a solution.
//
// Complexity: O(n^2 + 4K) — one pass to initialize the grid, one pass
// per placement to stamp its (at most 4x4) footprint.
package render
