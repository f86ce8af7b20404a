// Package board implements the bit-packed square playground the solver
// searches over.
//
// What:
//   - Board holds a fixed 16-row, 16-bit-per-row bitmap. A live board of
//     side N (1 <= N <= 16) occupies the top-left N x N corner; every
//     bit outside that corner — the low (16-N) bits of rows [0,N), and
//     every bit of rows [N,16) — is permanently set as a "fence".
//   - CanPlace/Toggle operate on a piece's packed 64-bit mask shifted
//     right by a column offset; because fence bits are always set, a
//     placement that would cross the board edge collides with the fence
//     and is rejected without a separate bounds check.
//
// Why:
//   - The solver's innermost loop calls CanPlace potentially tens of
//     millions of times on hard instances. Folding the bounds check into
//     the collision test removes a branch from that loop.
//
// Complexity:
//   - New: O(1) (fixed 16 rows).
//   - CanPlace, Toggle: O(1) (four 64-bit-scale word operations each).
//
// Invariants (see board_test.go for the property checks):
//  1. Fence invariant: bits outside the N x N region are always set.
//  2. Toggle self-inverse: Toggle(m,r,c) applied twice restores state.
package board
