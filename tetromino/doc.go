// Package tetromino defines the 19 canonical oriented tetromino shapes
// used by the fillit solver.
//
// What:
//   - Shape is an ordinal in [0, NumShapes) identifying one oriented
//     4-cell shape (a tetromino rotated/mirrored into one of its fixed
//     orientations — this catalog does not itself rotate or mirror;
//     each orientation is a distinct catalog entry).
//   - Each Shape exposes its 4x4 boolean occupancy, bounding box,
//     packed 64-bit bitmask (four top-aligned 16-bit rows), and
//     jump-stride (the column displacement beyond which two placements
//     of the same shape are guaranteed inequivalent; see solver).
//
// Why:
//   - The solver's inner loop never branches on shape geometry — it
//     reads BBox/Mask/JumpStride once per piece and treats them as
//     opaque numbers. Centralizing the 19 shapes here keeps that loop
//     branch-free and keeps the geometry data auditable in one place.
//
// Complexity:
//   - All accessors are O(1); the catalog is built once at package
//     initialization and never mutated afterward.
package tetromino
