package piece

import "github.com/katalvlaran/fillit/tetromino"

// MaxPieces is the hard cap on input size: 26 pieces, one per
// uppercase letter label A-Z.
const MaxPieces = 26

// Sequence holds the parallel per-index arrays the solver consumes.
// All slices share length Count. Index i describes the i-th input
// piece in original order — that order is also the render label order
// (piece 0 -> 'A', piece 1 -> 'B', ...).
type Sequence struct {
	Count int

	Ordinal []int
	Rows    []int
	Cols    []int
	Mask    []uint64
	Stride  []int

	// IsFirstOccurrence[i] is true iff Ordinal[i] does not appear among
	// Ordinal[:i].
	IsFirstOccurrence []bool

	// IsLastPieceType[i] is true for exactly one index: the largest i
	// for which IsFirstOccurrence[i] is true. This deliberately does
	// NOT generalize to "every first occurrence" — only the deepest
	// one is flagged — the wasted-tiles prune fires at most once per
	// depth chain (see solver package).
	IsLastPieceType []bool
}

// NewSequence builds a Sequence from an ordered list of shapes. The
// order of shapes is preserved; it is the caller's (parser's)
// responsibility to have already validated len(shapes) <= MaxPieces,
// but NewSequence re-checks it since Sequence is a public type other
// callers could construct directly without going through the parser.
func NewSequence(shapes []tetromino.Shape) (*Sequence, error) {
	if len(shapes) == 0 {
		return nil, ErrEmptySequence
	}
	if len(shapes) > MaxPieces {
		return nil, ErrTooManyPieces
	}

	n := len(shapes)
	seq := &Sequence{
		Count:             n,
		Ordinal:           make([]int, n),
		Rows:              make([]int, n),
		Cols:              make([]int, n),
		Mask:              make([]uint64, n),
		Stride:            make([]int, n),
		IsFirstOccurrence: make([]bool, n),
		IsLastPieceType:   make([]bool, n),
	}

	seen := make(map[int]bool, n)
	lastFirstOccurrence := -1
	for i, s := range shapes {
		seq.Ordinal[i] = s.Ordinal()
		rows, cols := s.BBox()
		seq.Rows[i] = rows
		seq.Cols[i] = cols
		seq.Mask[i] = s.Mask()
		seq.Stride[i] = s.JumpStride()

		if !seen[seq.Ordinal[i]] {
			seq.IsFirstOccurrence[i] = true
			seen[seq.Ordinal[i]] = true
			lastFirstOccurrence = i
		}
	}
	if lastFirstOccurrence >= 0 {
		seq.IsLastPieceType[lastFirstOccurrence] = true
	}

	return seq, nil
}
