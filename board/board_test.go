package board_test

import (
	"testing"

	"github.com/katalvlaran/fillit/board"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsOutOfRangeSize(t *testing.T) {
	t.Parallel()

	_, err := board.New(board.MinSize - 1)
	require.ErrorIs(t, err, board.ErrSizeTooSmall)

	_, err = board.New(board.MaxSize + 1)
	require.ErrorIs(t, err, board.ErrSizeTooLarge)

	b, err := board.New(board.MinSize)
	require.NoError(t, err)
	require.Equal(t, board.MinSize, b.Size())
}

// TestFenceInvariant checks the fence layout: rows in [0,size) have their
// low (16-size) bits set, rows in [size,16) have all 16 bits set.
func TestFenceInvariant(t *testing.T) {
	t.Parallel()

	const size = 6
	b, err := board.New(size)
	require.NoError(t, err)

	fenceMask := uint16((1 << uint(16-size)) - 1)
	for r := 0; r < size; r++ {
		require.Equalf(t, fenceMask, b.Fenced(r)&fenceMask, "row %d low fence bits", r)
	}
	for r := size; r < board.MaxSize; r++ {
		require.Equalf(t, uint16(0xffff), b.Fenced(r), "row %d must be fully fenced", r)
	}
}

// TestToggle_SelfInverse checks that Toggle applied twice
// restores the board bit-for-bit.
func TestToggle_SelfInverse(t *testing.T) {
	t.Parallel()

	b, err := board.New(8)
	require.NoError(t, err)

	before := snapshot(b)

	// A 2x2 square mask (top-left aligned, matches tetromino.Square).
	const squareMask uint64 = 0xc000_c000_0000_0000
	require.True(t, b.CanPlace(squareMask, 2, 3))
	b.Toggle(squareMask, 2, 3)
	require.NotEqual(t, before, snapshot(b))

	b.Toggle(squareMask, 2, 3)
	require.Equal(t, before, snapshot(b))
}

// TestCanPlace_RejectsOffBoard verifies the fence trick rejects a
// placement whose footprint would cross the board edge, with no
// explicit bounds check in CanPlace itself.
func TestCanPlace_RejectsOffBoard(t *testing.T) {
	t.Parallel()

	const size = 4
	b, err := board.New(size)
	require.NoError(t, err)

	const verticalBarMask uint64 = 0x8000_8000_8000_8000
	// Column size-1 is the last valid column for a 1-wide piece; one
	// column further must collide with the fence.
	require.True(t, b.CanPlace(verticalBarMask, 0, size-1))
	require.False(t, b.CanPlace(verticalBarMask, 0, size))
}

// TestCanPlace_RejectsOverlap verifies two pieces cannot occupy the
// same cell.
func TestCanPlace_RejectsOverlap(t *testing.T) {
	t.Parallel()

	b, err := board.New(4)
	require.NoError(t, err)

	const squareMask uint64 = 0xc000_c000_0000_0000
	require.True(t, b.CanPlace(squareMask, 0, 0))
	b.Toggle(squareMask, 0, 0)

	require.False(t, b.CanPlace(squareMask, 0, 0))
	require.False(t, b.CanPlace(squareMask, 1, 1))
	require.True(t, b.CanPlace(squareMask, 2, 2))
}

// TestCanPlace_BottomRowOfMaxSizeBoard exercises the one-row-piece
// edge case at the very bottom of a full-size board: row+3 must stay
// in bounds of the backing store even though size == MaxSize.
func TestCanPlace_BottomRowOfMaxSizeBoard(t *testing.T) {
	t.Parallel()

	b, err := board.New(board.MaxSize)
	require.NoError(t, err)

	const horizontalBarMask uint64 = 0xf000_0000_0000_0000
	require.NotPanics(t, func() {
		require.True(t, b.CanPlace(horizontalBarMask, board.MaxSize-1, 0))
	})
}

func snapshot(b *board.Board) [board.MaxSize]uint16 {
	var out [board.MaxSize]uint16
	for r := 0; r < board.MaxSize; r++ {
		out[r] = b.Fenced(r)
	}
	return out
}
