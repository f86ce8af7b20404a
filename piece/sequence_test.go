package piece_test

import (
	"testing"

	"github.com/katalvlaran/fillit/piece"
	"github.com/katalvlaran/fillit/tetromino"
	"github.com/stretchr/testify/require"
)

func TestNewSequence_Rejects(t *testing.T) {
	t.Parallel()

	_, err := piece.NewSequence(nil)
	require.ErrorIs(t, err, piece.ErrEmptySequence)

	shapes := make([]tetromino.Shape, piece.MaxPieces+1)
	_, err = piece.NewSequence(shapes)
	require.ErrorIs(t, err, piece.ErrTooManyPieces)
}

// TestIsLastPieceType_OnlyDeepestFirstOccurrence verifies the exact
// semantics described in the package doc: only the deepest
// first-occurrence index is flagged, not every first occurrence.
func TestIsLastPieceType_OnlyDeepestFirstOccurrence(t *testing.T) {
	t.Parallel()

	shapes := []tetromino.Shape{
		tetromino.VerticalBar,   // i=0 first occurrence
		tetromino.HorizontalBar, // i=1 first occurrence
		tetromino.VerticalBar,   // i=2 repeat
		tetromino.Square,        // i=3 first occurrence (deepest)
		tetromino.HorizontalBar, // i=4 repeat
	}
	seq, err := piece.NewSequence(shapes)
	require.NoError(t, err)

	require.Equal(t, []bool{true, true, false, true, false}, seq.IsFirstOccurrence)

	flagged := 0
	for i, v := range seq.IsLastPieceType {
		if v {
			flagged++
			require.Equal(t, 3, i)
		}
	}
	require.Equal(t, 1, flagged)
}

func TestNewSequence_ParallelArraysMatchCatalog(t *testing.T) {
	t.Parallel()

	shapes := []tetromino.Shape{tetromino.Square, tetromino.VerticalBar}
	seq, err := piece.NewSequence(shapes)
	require.NoError(t, err)

	require.Equal(t, 2, seq.Count)
	require.Equal(t, tetromino.Square.Ordinal(), seq.Ordinal[0])
	require.Equal(t, tetromino.Square.Mask(), seq.Mask[0])
	rows, cols := tetromino.VerticalBar.BBox()
	require.Equal(t, rows, seq.Rows[1])
	require.Equal(t, cols, seq.Cols[1])
	require.Equal(t, tetromino.VerticalBar.JumpStride(), seq.Stride[1])
}
