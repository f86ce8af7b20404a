package parse

import (
	"io"
	"strings"

	"github.com/katalvlaran/fillit/tetromino"
)

// maxPieces mirrors piece.MaxPieces. Duplicated rather than imported so
// this package stays a leaf: it has no dependency on the sequence
// builder its output feeds.
const maxPieces = 26

const (
	emptyRune = '.'
	fullRune  = '#'
)

// Parse reads the full contents of r and returns the ordered list of
// shapes it describes. Pieces are separated by a blank line; each piece
// is exactly four lines of exactly four characters. A malformed piece
// yields a *Error naming its 1-based index; empty input names piece 1
// and too many pieces names the first piece past the cap.
func Parse(r io.Reader) ([]tetromino.Shape, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	text := strings.ReplaceAll(string(raw), "\r\n", "\n")
	blocks := splitBlocks(text)
	if len(blocks) == 0 {
		return nil, &Error{PieceIndex: 1, Err: ErrEmptyInput}
	}
	if len(blocks) > maxPieces {
		return nil, &Error{PieceIndex: maxPieces + 1, Err: ErrTooManyPieces}
	}

	shapes := make([]tetromino.Shape, len(blocks))
	for i, block := range blocks {
		shape, err := parsePiece(block)
		if err != nil {
			return nil, &Error{PieceIndex: i + 1, Err: err}
		}
		shapes[i] = shape
	}
	return shapes, nil
}

// splitBlocks splits the trimmed text on each blank line ("\n\n") and
// drops any empty block. Two or more consecutive blank lines are not
// merged into one separator: the extra newline stays at the start of
// the following block, which then fails the line-count check.
func splitBlocks(text string) []string {
	raw := strings.Split(strings.TrimSpace(text), "\n\n")
	blocks := make([]string, 0, len(raw))
	for _, b := range raw {
		b = strings.TrimRight(b, "\n")
		if b == "" {
			continue
		}
		blocks = append(blocks, b)
	}
	return blocks
}

// parsePiece decodes one four-by-four block into its normalized
// tetromino.BooleanMap and resolves it against the canonical catalog.
func parsePiece(block string) (tetromino.Shape, error) {
	lines := strings.Split(block, "\n")
	if len(lines) != 4 {
		return 0, ErrBadLineCount
	}

	var buffer tetromino.BooleanMap
	for y, line := range lines {
		if len(line) != 4 {
			return 0, ErrBadLineLength
		}
		for x, c := range line {
			switch c {
			case fullRune:
				buffer[y][x] = true
			case emptyRune:
				// already false
			default:
				return 0, ErrBadCharacter
			}
		}
	}

	normalized, ok := normalize(buffer)
	if !ok {
		return 0, ErrEmptyPiece
	}

	shape, ok := tetromino.ByBooleanMap(normalized)
	if !ok {
		return 0, ErrUnknownShape
	}
	return shape, nil
}

// normalize cyclically rotates buffer so the topmost filled row
// becomes row 0 and the leftmost filled column (across all rows)
// becomes column 0. It reports false if buffer has no filled cells at
// all.
func normalize(buffer tetromino.BooleanMap) (tetromino.BooleanMap, bool) {
	topRow := -1
	leftCol := -1
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if !buffer[y][x] {
				continue
			}
			if topRow == -1 {
				topRow = y
			}
			if leftCol == -1 || x < leftCol {
				leftCol = x
			}
		}
	}
	if topRow == -1 {
		return tetromino.BooleanMap{}, false
	}

	var out tetromino.BooleanMap
	for y := 0; y < 4; y++ {
		srcY := (y + topRow) % 4
		for x := 0; x < 4; x++ {
			srcX := (x + leftCol) % 4
			out[y][x] = buffer[srcY][srcX]
		}
	}
	return out, true
}
