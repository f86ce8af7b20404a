package render

import (
	"strings"

	"github.com/katalvlaran/fillit/tetromino"
)

// emptyCell and firstLabel anchor the rendering alphabet: empty cells
// print as '.', the first placement (index 0) prints as 'A'.
const (
	emptyCell  = '.'
	firstLabel = 'A'
)

// Placement is a solved piece: the shape that was placed and the
// top-left board position (row, col) the solver committed it to.
type Placement struct {
	Shape    tetromino.Shape
	Row, Col int
}

// Grid is an n*n byte buffer, row-major, used as the renderer's
// intermediate stamping surface — split out from Render so tests can
// assert on the buffer directly before the final string join.
type Grid struct {
	cells []byte
	n     int
}

// NewGrid allocates an n x n grid with every cell set to emptyCell.
func NewGrid(n int) (*Grid, error) {
	if n <= 0 {
		return nil, ErrSizeTooSmall
	}

	cells := make([]byte, n*n)
	for i := range cells {
		cells[i] = emptyCell
	}

	return &Grid{cells: cells, n: n}, nil
}

// Stamp writes label into every cell the shape's boolean map fills,
// starting at (row, col). Overlapping an already-stamped cell is
// last-writer-wins — Render calls Stamp in placement order, so a
// correct solver never triggers this path; it exists only so a buggy
// solver's output is still visible rather than causing a panic.
func (g *Grid) Stamp(shape tetromino.Shape, row, col int, label byte) {
	bm := shape.BooleanMap()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if !bm[r][c] {
				continue
			}
			cr, cc := row+r, col+c
			if cr < 0 || cr >= g.n || cc < 0 || cc >= g.n {
				continue
			}
			g.cells[cr*g.n+cc] = label
		}
	}
}

// String joins the grid into n newline-terminated lines.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.n*g.n + g.n)
	for r := 0; r < g.n; r++ {
		b.Write(g.cells[r*g.n : (r+1)*g.n])
		b.WriteByte('\n')
	}
	return b.String()
}

// Render produces the final n-line labeled grid for a solved placement
// list. placements must be in original input order — label k = 'A'+k
// is assigned by Placement index, not by any property of the shape.
func Render(placements []Placement, n int) (string, error) {
	grid, err := NewGrid(n)
	if err != nil {
		return "", err
	}

	for k, p := range placements {
		grid.Stamp(p.Shape, p.Row, p.Col, byte(firstLabel+k))
	}

	return grid.String(), nil
}
