package solver

import (
	"github.com/katalvlaran/fillit/board"
	"github.com/katalvlaran/fillit/piece"
	"github.com/katalvlaran/fillit/tetromino"
)

// Solve packs seq onto the smallest square board it can find, growing
// the board side by one and retrying whenever the backtracker reports
// NeedNewMap, up to the configured maximum board size.
func Solve(seq *piece.Sequence, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxBoardSize > board.MaxSize {
		cfg.maxBoardSize = board.MaxSize
	}

	k := seq.Count
	n := initialSide(k)
	if n < board.MinSize {
		n = board.MinSize
	}

	var stats Stats
	for {
		if n > cfg.maxBoardSize {
			return nil, ErrUnsatisfiable
		}

		b, err := board.New(n)
		if err != nil {
			return nil, err
		}

		e := &engine{
			board:            b,
			seq:              seq,
			n:                n,
			wastableBudget:   wastable(n, k),
			wastedPruneDepth: cfg.wastedPruneDepth,
			stats:            &stats,
			logger:           cfg.logger,
		}

		placements, needNewMap := e.run()
		if !needNewMap {
			stats.FinalSize = n
			return &Result{Size: n, Placements: placements, Stats: stats}, nil
		}

		stats.BoardGrowths++
		if cfg.logger != nil {
			cfg.logger.Infof("board side %d infeasible for %d pieces, growing to %d", n, k, n+1)
		}
		n++
	}
}

// engine holds one board attempt's search state: the board itself, the
// per-ordinal farthest array, and the budget derived from the current
// board size. A fresh engine is built for every board side the size
// controller tries, so the farthest array resets to zero on every new
// size.
type engine struct {
	board *board.Board
	seq   *piece.Sequence
	n     int

	wastableBudget   int
	wastedPruneDepth int

	farthest [tetromino.NumShapes]Position
	stats    *Stats
	logger   Logger
}

// run executes the iterative depth-first search: one stack frame per
// piece index, advancing on success, undoing and advancing the
// parent's column on failure. It returns either a
// complete placement list (needNewMap == false) or signals that this
// board size is infeasible (needNewMap == true, placements == nil).
func (e *engine) run() (placements []Position, needNewMap bool) {
	k := e.seq.Count
	pos := make([]Position, k)    // current trial position at each depth
	saved := make([]Position, k)  // farthest value at depth entry, for restore
	placed := make([]Position, k) // committed position once a depth succeeds

	i := 0
	entering := true

	for {
		ordinal := e.seq.Ordinal[i]

		if entering {
			pos[i] = e.farthest[ordinal]
			saved[i] = pos[i]
			entering = false

			if i <= e.wastedPruneDepth && e.seq.IsLastPieceType[i] {
				if wastedMeasure(e.seq, e.farthest[:], e.n) > e.wastableBudget {
					return nil, true
				}
			}
		}

		rows, cols := e.seq.Rows[i], e.seq.Cols[i]
		mask := e.seq.Mask[i]
		stride := e.seq.Stride[i]

		found := e.scan(&pos[i], rows, cols, mask)

		if found {
			e.board.Toggle(mask, pos[i].Row, pos[i].Col)
			e.stats.PlacementsCommitted++
			placed[i] = pos[i]
			e.farthest[ordinal] = Position{Row: pos[i].Row, Col: pos[i].Col + stride}

			if i+1 == k {
				return append([]Position(nil), placed...), false
			}

			i++
			entering = true
			continue
		}

		// Exhausted every candidate at this depth: restore this
		// depth's own farthest. It was only ever mutated transiently
		// between a successful placement and its own undo below, so
		// it is already back to saved[i] here; the restore covers the
		// exit-without-placing path.
		e.farthest[ordinal] = saved[i]

		if i == 0 {
			return nil, true
		}

		e.stats.Backtracks++
		if e.logger != nil && e.stats.Backtracks%backtrackLogSample == 0 {
			e.logger.Debugf("depth %d: %d backtracks so far", i, e.stats.Backtracks)
		}
		i--
		parentOrdinal := e.seq.Ordinal[i]
		parentMask := e.seq.Mask[i]
		e.board.Toggle(parentMask, placed[i].Row, placed[i].Col)
		e.farthest[parentOrdinal] = saved[i]
		pos[i].Col = placed[i].Col + 1
	}
}

// scan advances *p (row-major) until CanPlace succeeds or every
// candidate up to the piece's bounding box has been exhausted. It
// counts every attempt, including failed ones, in PlacementsAttempted.
func (e *engine) scan(p *Position, rows, cols int, mask uint64) bool {
	for p.Row <= e.n-rows {
		for ; p.Col <= e.n-cols; p.Col++ {
			e.stats.PlacementsAttempted++
			if e.board.CanPlace(mask, p.Row, p.Col) {
				return true
			}
		}
		p.Row++
		p.Col = 0
	}
	return false
}
