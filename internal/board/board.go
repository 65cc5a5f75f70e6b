// Package board holds the mutable candidate-set state for all 81 cells and
// the assign/eliminate propagation protocol that keeps it arc-consistent.
package board

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"svw.info/gridsolve/internal/grid"
)

// Candidate sets are uint16 bitmasks: bit d set means digit d is still
// possible. Bits 1-9 are used, bit 0 never.
const fullMask = uint16(0x3FE)

var (
	ErrBadLength     = errors.New("grid string must be exactly 81 characters")
	ErrBadCell       = errors.New("cell value out of range")
	ErrContradiction = errors.New("contradiction in givens")
)

// Board maps every cell to its candidate set. The zero value is not usable;
// construct with New, FromString, or FromGrid.
type Board struct {
	cells [grid.Cells]uint16
}

// Snapshot is a full value copy of the candidate sets. Restoring one is the
// only way a candidate set ever grows.
type Snapshot [grid.Cells]uint16

// New returns a board with all digits open in every cell.
func New() *Board {
	b := &Board{}
	for i := range b.cells {
		b.cells[i] = fullMask
	}
	return b
}

// FromString builds a board from an 81-character string, assigning each
// clue '1'-'9' through the propagation protocol. Any other character is a
// blank. Returns ErrBadLength for wrong input length and ErrContradiction
// when the clues are mutually inconsistent.
func FromString(s string) (*Board, error) {
	s = strings.TrimSpace(s)
	if len(s) != grid.Cells {
		return nil, fmt.Errorf("%w: got %d", ErrBadLength, len(s))
	}
	b := New()
	for i := 0; i < grid.Cells; i++ {
		ch := s[i]
		if ch < '1' || ch > '9' {
			continue
		}
		if !b.Assign(i, int(ch-'0')) {
			return nil, fmt.Errorf("%w: %c at %s", ErrContradiction, ch, grid.Name(i))
		}
	}
	return b, nil
}

// FromGrid builds a board from a 9x9 numeric grid where 0 denotes a blank.
// The grid is normalized to the string form and handed to FromString.
func FromGrid(g [9][9]int) (*Board, error) {
	var sb strings.Builder
	sb.Grow(grid.Cells)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := g[r][c]
			if v < 0 || v > 9 {
				return nil, fmt.Errorf("%w: %d at %s", ErrBadCell, v, grid.Name(grid.At(r, c)))
			}
			if v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(byte('0' + v))
			}
		}
	}
	return FromString(sb.String())
}

// Clone returns an independent copy for search branching.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Snapshot captures the current candidate sets.
func (b *Board) Snapshot() Snapshot { return b.cells }

// Restore rolls the board back to a previously captured snapshot.
func (b *Board) Restore(s Snapshot) { b.cells = s }

// Candidates returns the candidate bitmask of a cell.
func (b *Board) Candidates(cell int) uint16 { return b.cells[cell] }

// Count returns how many candidates a cell still has.
func (b *Board) Count(cell int) int { return bits.OnesCount16(b.cells[cell]) }

// Has reports whether digit is still a candidate of cell.
func (b *Board) Has(cell, digit int) bool { return b.cells[cell]&(1<<digit) != 0 }

// Digit returns the solved value of a cell, or 0 if the cell is not a
// singleton yet.
func (b *Board) Digit(cell int) int {
	m := b.cells[cell]
	if bits.OnesCount16(m) != 1 {
		return 0
	}
	return bits.TrailingZeros16(m)
}

// CandidateDigits returns the cell's candidates in ascending order.
func (b *Board) CandidateDigits(cell int) []int {
	out := make([]int, 0, b.Count(cell))
	for d := 1; d <= 9; d++ {
		if b.Has(cell, d) {
			out = append(out, d)
		}
	}
	return out
}

// Solved reports whether every cell is down to a single candidate.
func (b *Board) Solved() bool {
	for i := range b.cells {
		if bits.OnesCount16(b.cells[i]) != 1 {
			return false
		}
	}
	return true
}

// AsString renders the board as 81 characters in row-major order, with '.'
// for any cell that is not a singleton.
func (b *Board) AsString() string {
	var sb strings.Builder
	sb.Grow(grid.Cells)
	for i := 0; i < grid.Cells; i++ {
		if d := b.Digit(i); d != 0 {
			sb.WriteByte(byte('0' + d))
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// elimination is one pending (cell, digit) removal on the work queue.
type elimination struct {
	cell, digit int
}

// Assign commits digit as the only candidate of cell by eliminating every
// other candidate. Reports false on contradiction, in which case the board
// is in an undefined partial state and must be rolled back via Restore.
func (b *Board) Assign(cell, digit int) bool {
	if !b.Has(cell, digit) {
		return false
	}
	queue := make([]elimination, 0, 16)
	for d := 1; d <= 9; d++ {
		if d != digit && b.Has(cell, d) {
			queue = append(queue, elimination{cell, d})
		}
	}
	return b.drain(queue)
}

// Eliminate removes digit from cell's candidate set and runs propagation to
// a fixpoint. Eliminating an absent digit is a no-op reporting true.
func (b *Board) Eliminate(cell, digit int) bool {
	return b.drain([]elimination{{cell, digit}})
}

// drain works the pending-elimination queue to exhaustion. Each removal can
// queue further work: peer eliminations when a cell becomes a singleton, and
// a hidden-single assignment when a unit is left with one place for the
// removed digit. Terminates because candidate sets only shrink; reports
// false as soon as any cell or unit runs dry.
func (b *Board) drain(queue []elimination) bool {
	for len(queue) > 0 {
		e := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		m := uint16(1) << e.digit
		if b.cells[e.cell]&m == 0 {
			continue
		}
		b.cells[e.cell] &^= m

		rest := b.cells[e.cell]
		if rest == 0 {
			return false
		}
		if bits.OnesCount16(rest) == 1 {
			d2 := bits.TrailingZeros16(rest)
			for _, p := range grid.Peers[e.cell] {
				if b.cells[p]&(1<<d2) != 0 {
					queue = append(queue, elimination{p, d2})
				}
			}
		}

		for _, u := range grid.CellUnits[e.cell] {
			place, count := -1, 0
			for _, other := range grid.Units[u] {
				if b.cells[other]&m != 0 {
					place = other
					count++
					if count > 1 {
						break
					}
				}
			}
			if count == 0 {
				return false
			}
			if count == 1 && bits.OnesCount16(b.cells[place]) > 1 {
				// Hidden single forced by this elimination.
				for d := 1; d <= 9; d++ {
					if d != e.digit && b.cells[place]&(1<<d) != 0 {
						queue = append(queue, elimination{place, d})
					}
				}
			}
		}
	}
	return true
}
