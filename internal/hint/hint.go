// Package hint suggests the next human-playable deduction for a raw grid.
// Candidates are computed locally without cascading propagation, so the
// suggestion shows a single step instead of silently applying a chain.
package hint

import (
	"context"
	"fmt"
	"math/bits"

	"svw.info/gridsolve/internal/domain"
	"svw.info/gridsolve/internal/grid"
)

// Ladder implements a Hinter walking the strategy tiers in order: naked and
// hidden singles, then naked pairs, then pointing pairs.
type Ladder struct{}

func NewLadder() *Ladder { return &Ladder{} }

// Hint returns the first deduction found at or below the max tier.
func (h *Ladder) Hint(ctx context.Context, g [9][9]uint8, max domain.StrategyTier) (domain.Hint, bool, error) {
	cand := candidates(&g)

	if hh, ok := nakedSingle(&cand); ok {
		return hh, true, nil
	}
	if hh, ok := hiddenSingle(&cand); ok {
		return hh, true, nil
	}
	if max >= domain.StrategyPairs {
		if hh, ok := nakedPair(&cand); ok {
			return hh, true, nil
		}
	}
	if max >= domain.StrategyAdvanced {
		if hh, ok := pointingPair(&cand); ok {
			return hh, true, nil
		}
	}
	return domain.Hint{}, false, nil
}

// candidates builds a per-cell digit mask straight from the placed values.
func candidates(g *[9][9]uint8) [grid.Cells]uint16 {
	var out [grid.Cells]uint16
	for cell := 0; cell < grid.Cells; cell++ {
		r, c := grid.RowOf(cell), grid.ColOf(cell)
		if g[r][c] != 0 {
			continue
		}
		m := uint16(0x3FE)
		for _, p := range grid.Peers[cell] {
			if v := g[grid.RowOf(p)][grid.ColOf(p)]; v != 0 {
				m &^= 1 << v
			}
		}
		out[cell] = m
	}
	return out
}

func coord(cell int) domain.CellCoord {
	return domain.CellCoord{Row: grid.RowOf(cell), Col: grid.ColOf(cell)}
}

func nakedSingle(cand *[grid.Cells]uint16) (domain.Hint, bool) {
	for cell := 0; cell < grid.Cells; cell++ {
		if m := cand[cell]; bits.OnesCount16(m) == 1 {
			d := bits.TrailingZeros16(m)
			return domain.Hint{
				Message:  fmt.Sprintf("Single: only %d fits in %s", d, grid.Name(cell)),
				Cells:    []domain.CellCoord{coord(cell)},
				Strategy: domain.StrategySingles,
			}, true
		}
	}
	return domain.Hint{}, false
}

func hiddenSingle(cand *[grid.Cells]uint16) (domain.Hint, bool) {
	for u := 0; u < grid.UnitCount; u++ {
		for d := 1; d <= 9; d++ {
			place, count := -1, 0
			for _, cell := range grid.Units[u] {
				if cand[cell]&(1<<d) != 0 {
					place = cell
					count++
				}
			}
			// Skip digits already placed in the unit, and cells that are
			// plain naked singles (reported above).
			if count != 1 || bits.OnesCount16(cand[place]) == 1 {
				continue
			}
			return domain.Hint{
				Message:  fmt.Sprintf("Hidden single: %d has one place left, %s", d, grid.Name(place)),
				Cells:    []domain.CellCoord{coord(place)},
				Strategy: domain.StrategySingles,
			}, true
		}
	}
	return domain.Hint{}, false
}

func nakedPair(cand *[grid.Cells]uint16) (domain.Hint, bool) {
	for u := 0; u < grid.UnitCount; u++ {
		pairCells := map[uint16][]int{}
		for _, cell := range grid.Units[u] {
			if m := cand[cell]; bits.OnesCount16(m) == 2 {
				pairCells[m] = append(pairCells[m], cell)
			}
		}
		for m, locked := range pairCells {
			if len(locked) != 2 {
				continue
			}
			// Only worth mentioning if it removes something.
			removes := false
			for _, cell := range grid.Units[u] {
				if cell != locked[0] && cell != locked[1] && cand[cell]&m != 0 {
					removes = true
					break
				}
			}
			if !removes {
				continue
			}
			d1 := bits.TrailingZeros16(m)
			d2 := bits.TrailingZeros16(m &^ (1 << d1))
			return domain.Hint{
				Message: fmt.Sprintf("Naked pair: %d and %d are locked to %s and %s",
					d1, d2, grid.Name(locked[0]), grid.Name(locked[1])),
				Cells:    []domain.CellCoord{coord(locked[0]), coord(locked[1])},
				Strategy: domain.StrategyPairs,
			}, true
		}
	}
	return domain.Hint{}, false
}

func pointingPair(cand *[grid.Cells]uint16) (domain.Hint, bool) {
	for box := 0; box < grid.Size; box++ {
		for d := 1; d <= 9; d++ {
			var places []int
			for _, cell := range grid.BoxCells[box] {
				if cand[cell]&(1<<d) != 0 {
					places = append(places, cell)
				}
			}
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
			var line [grid.Size]int
			var axis string
			switch {
			case sameRow:
				line, axis = grid.RowCells[row], "row"
			case sameCol:
				line, axis = grid.ColCells[col], "column"
			default:
				continue
			}
			removes := false
			for _, cell := range line {
				if grid.BoxOf(cell) != box && cand[cell]&(1<<d) != 0 {
					removes = true
					break
				}
			}
			if !removes {
				continue
			}
			cells := make([]domain.CellCoord, 0, len(places))
			for _, cell := range places {
				cells = append(cells, coord(cell))
			}
			return domain.Hint{
				Message:  fmt.Sprintf("Pointing pair: %d is confined to one %s of its box", d, axis),
				Cells:    cells,
				Strategy: domain.StrategyAdvanced,
			}, true
		}
	}
	return domain.Hint{}, false
}
