package solver

import "github.com/katalvlaran/fillit/piece"

// wastedMeasure computes the wasted-tiles count: let P* be
// the row-major minimum, over every first-occurrence index j, of
// farthest[ordinal[j]]. Cells strictly before P* in row-major order,
// and not on P*'s own row, can never be filled by any not-yet-placed
// piece type, because no remaining type can start earlier than its own
// farthest. wasted = max(P*.row-1, 0)*n + P*.col.
func wastedMeasure(seq *piece.Sequence, farthest []Position, n int) int {
	first := true
	var best Position

	for j := 0; j < seq.Count; j++ {
		if !seq.IsFirstOccurrence[j] {
			continue
		}
		candidate := farthest[seq.Ordinal[j]]
		if first || rowMajorLess(candidate, best) {
			best = candidate
			first = false
		}
	}

	rows := best.Row - 1
	if rows < 0 {
		rows = 0
	}
	return rows*n + best.Col
}

// rowMajorLess reports whether a sorts before b in row-major order:
// smaller row first, then smaller column within the same row.
func rowMajorLess(a, b Position) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}
