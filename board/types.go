package board

// MinSize and MaxSize bound the active playground side N. MaxSize is
// fixed by the bitmap, which is physically 16 rows wide. MinSize is
// the absolute floor New will accept; the size controller's initial
// side (ceil(sqrt(4*K)) >= 2) is always at least this floor. That side
// may be smaller than a piece's bounding box (a lone VerticalBar starts
// on side 2); such a board simply yields no placement and the size
// controller grows it. A single Square piece legitimately packs onto a
// board of side 2, so there is no built-in floor of 4.
const (
	MinSize = 1
	MaxSize = 16
)

// visibleRows is the number of rows the fence invariant and Fenced()
// reason about: exactly MaxSize.
const visibleRows = MaxSize

// rowCount is the actual backing array length. A 4-row piece mask is
// XORed into rows[row:row+4] for row up to MaxSize-1 (a 1-row piece at
// the bottom of a full-size board), so the backing store needs 3 extra
// always-fenced padding rows beyond visibleRows to keep that access in
// bounds. The padding is never part of the board's logical state: it is
// stamped to all-ones once and never read through Fenced or Size.
const rowCount = visibleRows + 3

// Board is a square playground of side Size(), represented as a fixed
// 16x16-bit bitmap (plus fenced padding, see rowCount) with permanent
// fence bits outside the active region. The zero value is not usable;
// construct via New.
type Board struct {
	rows [rowCount]uint16
	size int
}
