// Package validator checks candidate boards and raw grids for rule
// violations.
package validator

import (
	"context"

	"svw.info/gridsolve/internal/board"
	"svw.info/gridsolve/internal/domain"
	"svw.info/gridsolve/internal/grid"
)

// IsSolved reports whether every cell of the board is a singleton and no
// unit contains the same value twice.
func IsSolved(b *board.Board) bool {
	if !b.Solved() {
		return false
	}
	for u := 0; u < grid.UnitCount; u++ {
		seen := uint16(0)
		for _, cell := range grid.Units[u] {
			bit := uint16(1) << b.Digit(cell)
			if seen&bit != 0 {
				return false
			}
			seen |= bit
		}
	}
	return true
}

// ValidateSolution reports whether the board is solved and every unit's
// values cover the full digit set 1-9. The coverage check matters for
// externally supplied grids; boards produced by this engine's own search
// satisfy it by construction.
func ValidateSolution(b *board.Board) bool {
	if !IsSolved(b) {
		return false
	}
	for u := 0; u < grid.UnitCount; u++ {
		seen := uint16(0)
		for _, cell := range grid.Units[u] {
			seen |= 1 << b.Digit(cell)
		}
		if seen != 0x3FE {
			return false
		}
	}
	return true
}

// FastValidator scans a raw grid for row/column/box conflicts using digit
// bitmasks. Zero cells are ignored, so partially filled grids validate too.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, g [9][9]uint8) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r := br*3 + dr
					c := bc*3 + dc
					val := g[r][c]
					if val == 0 {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}
