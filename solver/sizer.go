package solver

import "math"

// initialSide returns N0 = ceil(sqrt(4*k)), the smallest side with
// N^2 >= 4*k — the smallest board that could conceivably hold k
// four-cell pieces. A single piece (k=1) legitimately yields N0=2 (a
// lone Square packs onto a 2x2 board); there is no artificial floor
// beyond board.MinSize.
func initialSide(k int) int {
	n := int(math.Ceil(math.Sqrt(float64(4 * k))))
	if n < 1 {
		n = 1
	}
	return n
}

// wastable returns the number of empty cells the final solution will
// have on a board of side n holding k four-cell pieces: n^2 - 4k.
func wastable(n, k int) int {
	return n*n - 4*k
}
