package tetromino

// catalog holds the 19 canonical oriented shapes, indexed by Shape
// ordinal. Populated once at package initialization and never mutated;
// every exported accessor below is a pure read of this table.
//
// Mask layout: four 16-bit rows packed top-aligned into one uint64
// (row0<<48 | row1<<32 | row2<<16 | row3); within a row, bit 15 is
// column 0, so shifting the whole uint64 right by col bits slides every
// row's content right by col columns in lockstep. See board.CanPlace.
var catalog = [NumShapes]definition{
	VerticalBar: {
		name: "VerticalBar", rows: 4, cols: 1, stride: 1,
		mask: 0x8000_8000_8000_8000,
		boolMap: BooleanMap{
			{true, false, false, false},
			{true, false, false, false},
			{true, false, false, false},
			{true, false, false, false},
		},
	},
	HorizontalBar: {
		name: "HorizontalBar", rows: 1, cols: 4, stride: 4,
		mask: 0xf000_0000_0000_0000,
		boolMap: BooleanMap{
			{true, true, true, true},
			{false, false, false, false},
			{false, false, false, false},
			{false, false, false, false},
		},
	},
	Square: {
		name: "Square", rows: 2, cols: 2, stride: 2,
		mask: 0xc000_c000_0000_0000,
		boolMap: BooleanMap{
			{true, true, false, false},
			{true, true, false, false},
			{false, false, false, false},
			{false, false, false, false},
		},
	},
	NormalL: {
		name: "NormalL", rows: 3, cols: 2, stride: 2,
		mask: 0x8000_8000_c000_0000,
		boolMap: BooleanMap{
			{true, false, false, false},
			{true, false, false, false},
			{true, true, false, false},
			{false, false, false, false},
		},
	},
	NormalLRotate90: {
		name: "NormalLRotate90", rows: 2, cols: 3, stride: 3,
		mask: 0x2000_e000_0000_0000,
		boolMap: BooleanMap{
			{false, false, true, false},
			{true, true, true, false},
			{false, false, false, false},
			{false, false, false, false},
		},
	},
	NormalLRotate180: {
		name: "NormalLRotate180", rows: 3, cols: 2, stride: 2,
		mask: 0xc000_4000_4000_0000,
		boolMap: BooleanMap{
			{true, true, false, false},
			{false, true, false, false},
			{false, true, false, false},
			{false, false, false, false},
		},
	},
	NormalLRotate270: {
		name: "NormalLRotate270", rows: 2, cols: 3, stride: 3,
		mask: 0xe000_8000_0000_0000,
		boolMap: BooleanMap{
			{true, true, true, false},
			{true, false, false, false},
			{false, false, false, false},
			{false, false, false, false},
		},
	},
	MirrorL: {
		name: "MirrorL", rows: 3, cols: 2, stride: 2,
		mask: 0x4000_4000_c000_0000,
		boolMap: BooleanMap{
			{false, true, false, false},
			{false, true, false, false},
			{true, true, false, false},
			{false, false, false, false},
		},
	},
	MirrorLRotate90: {
		name: "MirrorLRotate90", rows: 2, cols: 3, stride: 3,
		mask: 0xe000_2000_0000_0000,
		boolMap: BooleanMap{
			{true, true, true, false},
			{false, false, true, false},
			{false, false, false, false},
			{false, false, false, false},
		},
	},
	MirrorLRotate180: {
		name: "MirrorLRotate180", rows: 3, cols: 2, stride: 2,
		mask: 0xc000_8000_8000_0000,
		boolMap: BooleanMap{
			{true, true, false, false},
			{true, false, false, false},
			{true, false, false, false},
			{false, false, false, false},
		},
	},
	MirrorLRotate270: {
		name: "MirrorLRotate270", rows: 2, cols: 3, stride: 3,
		mask: 0x8000_e000_0000_0000,
		boolMap: BooleanMap{
			{true, false, false, false},
			{true, true, true, false},
			{false, false, false, false},
			{false, false, false, false},
		},
	},
	NormalStairs: {
		name: "NormalStairs", rows: 2, cols: 3, stride: 2,
		mask: 0x6000_c000_0000_0000,
		boolMap: BooleanMap{
			{false, true, true, false},
			{true, true, false, false},
			{false, false, false, false},
			{false, false, false, false},
		},
	},
	NormalStairsRotate90: {
		name: "NormalStairsRotate90", rows: 3, cols: 2, stride: 2,
		mask: 0x8000_c000_4000_0000,
		boolMap: BooleanMap{
			{true, false, false, false},
			{true, true, false, false},
			{false, true, false, false},
			{false, false, false, false},
		},
	},
	MirrorStairs: {
		name: "MirrorStairs", rows: 2, cols: 3, stride: 2,
		mask: 0xc000_6000_0000_0000,
		boolMap: BooleanMap{
			{true, true, false, false},
			{false, true, true, false},
			{false, false, false, false},
			{false, false, false, false},
		},
	},
	MirrorStairsRotate90: {
		name: "MirrorStairsRotate90", rows: 3, cols: 2, stride: 2,
		mask: 0x4000_c000_8000_0000,
		boolMap: BooleanMap{
			{false, true, false, false},
			{true, true, false, false},
			{true, false, false, false},
			{false, false, false, false},
		},
	},
	Podium: {
		name: "Podium", rows: 2, cols: 3, stride: 3,
		mask: 0x4000_e000_0000_0000,
		boolMap: BooleanMap{
			{false, true, false, false},
			{true, true, true, false},
			{false, false, false, false},
			{false, false, false, false},
		},
	},
	PodiumRotate90: {
		name: "PodiumRotate90", rows: 3, cols: 2, stride: 2,
		mask: 0x4000_c000_4000_0000,
		boolMap: BooleanMap{
			{false, true, false, false},
			{true, true, false, false},
			{false, true, false, false},
			{false, false, false, false},
		},
	},
	PodiumRotate180: {
		name: "PodiumRotate180", rows: 2, cols: 3, stride: 3,
		mask: 0xe000_4000_0000_0000,
		boolMap: BooleanMap{
			{true, true, true, false},
			{false, true, false, false},
			{false, false, false, false},
			{false, false, false, false},
		},
	},
	PodiumRotate270: {
		name: "PodiumRotate270", rows: 3, cols: 2, stride: 2,
		mask: 0x8000_c000_8000_0000,
		boolMap: BooleanMap{
			{true, false, false, false},
			{true, true, false, false},
			{true, false, false, false},
			{false, false, false, false},
		},
	},
}
