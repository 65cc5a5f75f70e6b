// Package search implements depth-first backtracking over the remaining
// choice points of a candidate board, with the strategy pass as its
// propagation oracle.
package search

import (
	"context"
	"errors"
	"sort"
	"time"

	"svw.info/gridsolve/internal/board"
	"svw.info/gridsolve/internal/grid"
	"svw.info/gridsolve/internal/ports"
	"svw.info/gridsolve/internal/strategy"
	"svw.info/gridsolve/internal/validator"
)

// ErrUnsolvable means every branch of the search tree was exhausted without
// reaching a solution. It is distinct from malformed or contradictory input.
var ErrUnsolvable = errors.New("no solution exists")

// Engine is a propagation-augmented backtracking solver.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

// Solve returns a solved copy of b, leaving b untouched. Exhaustion surfaces
// as ErrUnsolvable; context cancellation also ends the search.
func (e *Engine) Solve(ctx context.Context, b *board.Board) (*board.Board, ports.Stats, error) {
	start := time.Now()
	work := b.Clone()
	nodes := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		nodes++
		if !strategy.PropagateAll(work) {
			return false
		}
		if validator.IsSolved(work) {
			return true
		}

		cell := pickCell(work)
		for _, d := range orderDigits(work, cell) {
			snap := work.Snapshot()
			if work.Assign(cell, d) && dfs() {
				return true
			}
			work.Restore(snap)
		}
		// Normal backtrack, not an error.
		return false
	}

	if !dfs() {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrUnsolvable
	}
	return work, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// pickCell selects the unsolved cell with the fewest candidates (MRV).
// Ties break on row-major cell order, which keeps the search deterministic.
func pickCell(b *board.Board) int {
	best, bestCount := -1, 10
	for cell := 0; cell < grid.Cells; cell++ {
		n := b.Count(cell)
		if n > 1 && n < bestCount {
			best, bestCount = cell, n
			if n == 2 {
				break
			}
		}
	}
	return best
}

// orderDigits returns the cell's candidates sorted by how many of the
// cell's peers still hold each digit, fewest first (LCV). Equal scores keep
// ascending digit order.
func orderDigits(b *board.Board, cell int) []int {
	digits := b.CandidateDigits(cell)
	score := func(d int) int {
		n := 0
		for _, p := range grid.Peers[cell] {
			if b.Has(p, d) {
				n++
			}
		}
		return n
	}
	scores := make(map[int]int, len(digits))
	for _, d := range digits {
		scores[d] = score(d)
	}
	sort.SliceStable(digits, func(i, j int) bool {
		return scores[digits[i]] < scores[digits[j]]
	})
	return digits
}
