package board

// New builds a Board of the given active side. size must satisfy
// MinSize <= size <= MaxSize; any other value is rejected so a caller
// mistake never silently searches the wrong-sized board.
func New(size int) (*Board, error) {
	if size < MinSize {
		return nil, ErrSizeTooSmall
	}
	if size > MaxSize {
		return nil, ErrSizeTooLarge
	}

	b := &Board{size: size}
	b.reset()

	return b, nil
}

// reset (re)stamps the fence invariant: rows[0:size] have their low
// (16-size) bits set, rows[size:visibleRows) and the padding rows
// beyond visibleRows are entirely set.
func (b *Board) reset() {
	for r := 0; r < rowCount; r++ {
		b.rows[r] = ^uint16(0)
	}
	for r := 0; r < b.size; r++ {
		b.rows[r] >>= uint(b.size)
	}
}

// Size returns the active playground side N.
func (b *Board) Size() int {
	return b.size
}

// CanPlace reports whether mask, shifted right by col bits, has no bit
// in common with any of rows [row, row+4) of the board. Because fence
// bits outside the active N x N region are always set, a placement
// whose 4x4 footprint would cross the board edge is rejected here with
// no separate bounds check: row/col are trusted to satisfy
// row+4 <= rowCount, which holds for every row the solver ever passes
// (row <= size - pieceRows <= MaxSize-1, and rowCount == MaxSize+3).
func (b *Board) CanPlace(mask uint64, row, col int) bool {
	shifted := mask >> uint(col)
	row0 := uint16(shifted >> 48)
	row1 := uint16(shifted >> 32)
	row2 := uint16(shifted >> 16)
	row3 := uint16(shifted)

	return b.rows[row+0]&row0 == 0 &&
		b.rows[row+1]&row1 == 0 &&
		b.rows[row+2]&row2 == 0 &&
		b.rows[row+3]&row3 == 0
}

// Toggle XORs mask, shifted right by col bits, into rows [row, row+4).
// Calling Toggle twice with the same (mask, row, col) restores the
// board to its prior state bit-for-bit. The caller must only invoke
// Toggle immediately after CanPlace returned true for the same
// arguments, or to undo a prior successful Toggle — Toggle itself does
// not re-check collision.
func (b *Board) Toggle(mask uint64, row, col int) {
	shifted := mask >> uint(col)
	b.rows[row+0] ^= uint16(shifted >> 48)
	b.rows[row+1] ^= uint16(shifted >> 32)
	b.rows[row+2] ^= uint16(shifted >> 16)
	b.rows[row+3] ^= uint16(shifted)
}

// Fenced returns the raw bitmap row at the given index, for tests and
// debug tooling that need to assert the fence invariant directly rather
// than through CanPlace side effects. row must be in [0, MaxSize) — the
// three padding rows beyond MaxSize are storage detail, not board state.
func (b *Board) Fenced(row int) uint16 {
	return b.rows[row]
}

// String renders the visible 16x16 bitmap as '0'/'1' rows, most
// significant bit (column 0) first — a debug aid, not used by the
// solver itself. Padding rows beyond MaxSize are not included.
func (b *Board) String() string {
	buf := make([]byte, 0, visibleRows*(16+1))
	for r := 0; r < visibleRows; r++ {
		for c := 15; c >= 0; c-- {
			if b.rows[r]&(1<<uint(c)) != 0 {
				buf = append(buf, '1')
			} else {
				buf = append(buf, '0')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
