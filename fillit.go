// Package fillit is the public facade tying the parser, solver, and
// renderer together: Solve(r) reads a puzzle from r and returns its
// rendered grid, or a descriptive error naming what went wrong.
package fillit

import (
	"io"

	"github.com/katalvlaran/fillit/parse"
	"github.com/katalvlaran/fillit/piece"
	"github.com/katalvlaran/fillit/render"
	"github.com/katalvlaran/fillit/solver"
)

// Solution bundles the rendered grid with the search statistics the
// solver collected, so a caller that wants both doesn't have to
// re-derive one from the other.
type Solution struct {
	Grid  string
	Size  int
	Stats solver.Stats
}

// Solve reads r as fillit puzzle input, packs the pieces it describes
// onto the smallest feasible square board, and renders the result.
// opts are forwarded to solver.Solve unchanged.
func Solve(r io.Reader, opts ...solver.Option) (*Solution, error) {
	shapes, err := parse.Parse(r)
	if err != nil {
		return nil, err
	}

	seq, err := piece.NewSequence(shapes)
	if err != nil {
		return nil, err
	}

	result, err := solver.Solve(seq, opts...)
	if err != nil {
		return nil, err
	}

	placements := make([]render.Placement, len(shapes))
	for i, shape := range shapes {
		placements[i] = render.Placement{
			Shape: shape,
			Row:   result.Placements[i].Row,
			Col:   result.Placements[i].Col,
		}
	}

	grid, err := render.Render(placements, result.Size)
	if err != nil {
		return nil, err
	}

	return &Solution{Grid: grid, Size: result.Size, Stats: result.Stats}, nil
}
