// Package piece projects a parsed sequence of tetromino shapes into the
// parallel arrays the solver reads in its hot loop.
//
// What:
//   - Sequence holds, for each of the K (<=26) input pieces: the
//     shape's ordinal, bounding box, packed mask, jump-stride, and two
//     derived per-index flags used by the solver's pruning:
//     IsFirstOccurrence (this ordinal hasn't appeared earlier in the
//     sequence) and IsLastPieceType (true for exactly one index — the
//     deepest first-occurrence).
//
// Why:
//   - The solver indexes these slices by search depth i, never by
//     shape; keeping them parallel and contiguous (rather than a slice
//     of structs with a tetromino.Shape field the solver would need to
//     re-dispatch through) keeps the inner loop's working set small and
//     sequential.
//
// Complexity:
//   - NewSequence: O(K).
package piece
