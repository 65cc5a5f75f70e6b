// Package strategy implements the non-backtracking deduction rules and the
// fixpoint loop that drives them: hidden singles, naked pairs, and pointing
// pairs (box-line reduction).
package strategy

import (
	"math/bits"

	"svw.info/gridsolve/internal/board"
	"svw.info/gridsolve/internal/grid"
)

// Result is the outcome of one strategy application.
type Result int

const (
	Unchanged Result = iota
	Changed
	Contradiction
)

// HiddenSingles assigns every digit that has exactly one remaining place
// within some unit. This duplicates the check embedded in elimination as an
// explicit outer pass over all 27 units.
func HiddenSingles(b *board.Board) Result {
	res := Unchanged
	for u := 0; u < grid.UnitCount; u++ {
		for d := 1; d <= 9; d++ {
			place, count := -1, 0
			for _, cell := range grid.Units[u] {
				if b.Has(cell, d) {
					place = cell
					count++
					if count > 1 {
						break
					}
				}
			}
			if count == 0 {
				return Contradiction
			}
			if count == 1 && b.Count(place) > 1 {
				if !b.Assign(place, d) {
					return Contradiction
				}
				res = Changed
			}
		}
	}
	return res
}

// NakedPairs locks any two cells of a unit that share an identical
// two-candidate set and strips that pair from the rest of the unit.
func NakedPairs(b *board.Board) Result {
	res := Unchanged
	for u := 0; u < grid.UnitCount; u++ {
		// Group the 2-candidate cells of this unit by their mask.
		pairCells := map[uint16][]int{}
		for _, cell := range grid.Units[u] {
			if m := b.Candidates(cell); bits.OnesCount16(m) == 2 {
				pairCells[m] = append(pairCells[m], cell)
			}
		}
		for m, locked := range pairCells {
			if len(locked) != 2 {
				continue
			}
			for _, cell := range grid.Units[u] {
				if cell == locked[0] || cell == locked[1] {
					continue
				}
				for d := 1; d <= 9; d++ {
					if m&(1<<d) == 0 || !b.Has(cell, d) {
						continue
					}
					if !b.Eliminate(cell, d) {
						return Contradiction
					}
					res = Changed
				}
			}
		}
	}
	return res
}

// PointingPairs performs box-line reduction: when all of a digit's places
// within a box fall on a single row or column, the digit is removed from
// that row or column outside the box. Membership comes from the explicit
// RowCells/ColCells maps in grid, never re-derived from unit search.
func PointingPairs(b *board.Board) Result {
	res := Unchanged
	for box := 0; box < grid.Size; box++ {
		for d := 1; d <= 9; d++ {
			places := places(b, grid.BoxCells[box], d)
			if len(places) < 2 {
				continue
			}
			row, col := grid.RowOf(places[0]), grid.ColOf(places[0])
			sameRow, sameCol := true, true
			for _, cell := range places[1:] {
				if grid.RowOf(cell) != row {
					sameRow = false
				}
				if grid.ColOf(cell) != col {
					sameCol = false
				}
			}
			if sameRow {
				switch confine(b, grid.RowCells[row], box, d) {
				case Contradiction:
					return Contradiction
				case Changed:
					res = Changed
				}
			}
			if sameCol {
				switch confine(b, grid.ColCells[col], box, d) {
				case Contradiction:
					return Contradiction
				case Changed:
					res = Changed
				}
			}
		}
	}
	return res
}

// PropagateAll runs the strategies in a fixed order until a full round
// leaves the board unchanged, or a strategy finds a contradiction. The
// order is an efficiency choice, not a correctness requirement: the loop
// iterates to a fixpoint either way.
func PropagateAll(b *board.Board) bool {
	for {
		before := b.Snapshot()
		for _, s := range []func(*board.Board) Result{HiddenSingles, NakedPairs, PointingPairs} {
			if s(b) == Contradiction {
				return false
			}
		}
		if b.Snapshot() == before {
			return true
		}
	}
}

func places(b *board.Board, cells [grid.Size]int, d int) []int {
	out := make([]int, 0, grid.Size)
	for _, cell := range cells {
		if b.Has(cell, d) {
			out = append(out, cell)
		}
	}
	return out
}

// confine removes digit d from every cell of the line that lies outside box.
func confine(b *board.Board, line [grid.Size]int, box, d int) Result {
	res := Unchanged
	for _, cell := range line {
		if grid.BoxOf(cell) == box || !b.Has(cell, d) {
			continue
		}
		if !b.Eliminate(cell, d) {
			return Contradiction
		}
		res = Changed
	}
	return res
}
