package tetromino_test

import (
	"testing"

	"github.com/katalvlaran/fillit/tetromino"
	"github.com/stretchr/testify/require"
)

// TestCatalog_FourCellsPerShape verifies that every one of the 19
// canonical shapes fills exactly four cells — the defining invariant of
// a tetromino, independent of orientation.
func TestCatalog_FourCellsPerShape(t *testing.T) {
	t.Parallel()

	for i := 0; i < tetromino.NumShapes; i++ {
		s := tetromino.Shape(i)
		bm := s.BooleanMap()
		filled := 0
		for r := 0; r < 4; r++ {
			for c := 0; c < 4; c++ {
				if bm[r][c] {
					filled++
				}
			}
		}
		require.Equalf(t, 4, filled, "shape %s (ordinal %d) must fill exactly 4 cells", s, i)
	}
}

// TestCatalog_MaskMatchesBooleanMap checks the packed-mask contract from
// the catalog: bit 15-c of row r must equal BooleanMap[r][c].
func TestCatalog_MaskMatchesBooleanMap(t *testing.T) {
	t.Parallel()

	for i := 0; i < tetromino.NumShapes; i++ {
		s := tetromino.Shape(i)
		bm := s.BooleanMap()
		mask := s.Mask()
		for r := 0; r < 4; r++ {
			row := uint16(mask >> (48 - 16*r))
			for c := 0; c < 4; c++ {
				bit := row&(1<<(15-c)) != 0
				require.Equalf(t, bm[r][c], bit, "shape %s row %d col %d", s, r, c)
			}
		}
	}
}

// TestCatalog_BBoxWithinFourCells ensures every shape's bounding box is
// within the 4x4 working area and tight (no all-empty trailing row/col).
func TestCatalog_BBoxWithinFourCells(t *testing.T) {
	t.Parallel()

	for i := 0; i < tetromino.NumShapes; i++ {
		s := tetromino.Shape(i)
		rows, cols := s.BBox()
		require.GreaterOrEqual(t, rows, 1)
		require.LessOrEqual(t, rows, 4)
		require.GreaterOrEqual(t, cols, 1)
		require.LessOrEqual(t, cols, 4)

		bm := s.BooleanMap()
		for r := 0; r < 4; r++ {
			for c := 0; c < 4; c++ {
				if bm[r][c] {
					require.Lessf(t, r, rows, "shape %s has a filled cell outside its declared bbox rows", s)
					require.Lessf(t, c, cols, "shape %s has a filled cell outside its declared bbox cols", s)
				}
			}
		}
	}
}

// TestCatalog_JumpStrideInRange checks the documented range [1,4].
func TestCatalog_JumpStrideInRange(t *testing.T) {
	t.Parallel()

	for i := 0; i < tetromino.NumShapes; i++ {
		s := tetromino.Shape(i)
		require.GreaterOrEqual(t, s.JumpStride(), 1)
		require.LessOrEqual(t, s.JumpStride(), 4)
	}
}

// TestCatalog_JumpStrideIsMinimalDisjointShift verifies the semantic
// claim behind each stride value: shifting a shape's mask right by
// fewer than JumpStride columns still shares a cell with the unshifted
// mask, and shifting by exactly JumpStride is the first offset at which
// the two copies are disjoint. This is what makes it safe for the
// solver to advance a placed ordinal's farthest column by the stride:
// any skipped column offset could not have coexisted with the placed
// copy on the same rows anyway.
func TestCatalog_JumpStrideIsMinimalDisjointShift(t *testing.T) {
	t.Parallel()

	for i := 0; i < tetromino.NumShapes; i++ {
		s := tetromino.Shape(i)
		mask := s.Mask()
		stride := s.JumpStride()

		for d := 1; d < stride; d++ {
			require.NotZerof(t, mask&(mask>>uint(d)),
				"shape %s: shift by %d (< stride %d) must still overlap", s, d, stride)
		}
		require.Zerof(t, mask&(mask>>uint(stride)),
			"shape %s: shift by its stride %d must be disjoint", s, stride)
	}
}

// TestCatalog_JumpStrideValues pins the design constants per shape
// family: vertical bar 1, square 2, vertical L orientations 2,
// horizontal L orientations 3, stairs 2, podium 2 or 3 by orientation,
// horizontal bar 4.
func TestCatalog_JumpStrideValues(t *testing.T) {
	t.Parallel()

	expected := map[tetromino.Shape]int{
		tetromino.VerticalBar:          1,
		tetromino.HorizontalBar:        4,
		tetromino.Square:               2,
		tetromino.NormalL:              2,
		tetromino.NormalLRotate90:      3,
		tetromino.NormalLRotate180:     2,
		tetromino.NormalLRotate270:     3,
		tetromino.MirrorL:              2,
		tetromino.MirrorLRotate90:      3,
		tetromino.MirrorLRotate180:     2,
		tetromino.MirrorLRotate270:     3,
		tetromino.NormalStairs:         2,
		tetromino.NormalStairsRotate90: 2,
		tetromino.MirrorStairs:         2,
		tetromino.MirrorStairsRotate90: 2,
		tetromino.Podium:               3,
		tetromino.PodiumRotate90:       2,
		tetromino.PodiumRotate180:      3,
		tetromino.PodiumRotate270:      2,
	}
	require.Len(t, expected, tetromino.NumShapes)

	for s, want := range expected {
		require.Equalf(t, want, s.JumpStride(), "shape %s", s)
	}
}

// TestByBooleanMap_RoundTrip verifies the catalog lookup contract: every
// shape's own boolean map resolves back to itself.
func TestByBooleanMap_RoundTrip(t *testing.T) {
	t.Parallel()

	for i := 0; i < tetromino.NumShapes; i++ {
		s := tetromino.Shape(i)
		got, ok := tetromino.ByBooleanMap(s.BooleanMap())
		require.True(t, ok)
		require.Equal(t, s, got)
	}
}

// TestByBooleanMap_Unknown verifies rejection of a non-canonical shape
// (here: a straight diagonal, which is not orthogonally connected).
func TestByBooleanMap_Unknown(t *testing.T) {
	t.Parallel()

	var diagonal tetromino.BooleanMap
	diagonal[0][0] = true
	diagonal[1][1] = true
	diagonal[2][2] = true
	diagonal[3][3] = true

	_, ok := tetromino.ByBooleanMap(diagonal)
	require.False(t, ok)
}

// TestOrdinal_StableWithShapeValue ensures Ordinal() agrees with the
// underlying int conversion other packages rely on for indexing.
func TestOrdinal_StableWithShapeValue(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, tetromino.VerticalBar.Ordinal())
	require.Equal(t, tetromino.NumShapes-1, tetromino.PodiumRotate270.Ordinal())
}
