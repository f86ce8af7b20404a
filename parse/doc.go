// Package parse turns the textual puzzle input into an ordered list of
// tetromino shapes. Pieces are separated by a blank line; each piece is
// exactly four lines of exactly four characters drawn from '.' (empty)
// and '#' (filled). A piece's filled cells, after trimming leading
// empty rows and columns, must match one of the 19 canonical oriented
// shapes in the tetromino catalog.
package parse
