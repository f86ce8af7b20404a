package tetromino

// Ordinal returns the shape's position in [0, NumShapes) — identical to
// converting the Shape value to int, exposed as a method so callers
// don't need to know Shape is an int underneath.
func (s Shape) Ordinal() int {
	return int(s)
}

// BBox returns the shape's bounding box as (rows, cols), each in [1, 4].
func (s Shape) BBox() (rows, cols int) {
	d := catalog[s]
	return d.rows, d.cols
}

// Mask returns the shape's packed 64-bit bitmask: four 16-bit rows,
// top-aligned, so bit 15 of each row is column 0.
func (s Shape) Mask() uint64 {
	return catalog[s].mask
}

// JumpStride returns the column displacement beyond which two
// placements of this shape, differing only by that displacement on the
// same row, necessarily cover disjoint equivalence classes under the
// solver's farthest-position search order.
func (s Shape) JumpStride() int {
	return catalog[s].stride
}

// BooleanMap returns the shape's normalized 4x4 occupancy.
func (s Shape) BooleanMap() BooleanMap {
	return catalog[s].boolMap
}

// String returns the catalog name, e.g. "NormalLRotate90". Intended for
// debug and log output, not for parsing.
func (s Shape) String() string {
	if s < 0 || int(s) >= NumShapes {
		return "InvalidShape"
	}
	return catalog[s].name
}

// ByBooleanMap looks up the catalog entry matching a normalized 4x4
// occupancy (topmost and leftmost filled cells on row 0 / column 0).
// It returns (shape, true) on a match, or (0, false) if m does not
// match any of the 19 canonical shapes.
func ByBooleanMap(m BooleanMap) (Shape, bool) {
	for i := 0; i < NumShapes; i++ {
		if catalog[i].boolMap == m {
			return Shape(i), true
		}
	}
	return 0, false
}
