package strategy

import (
	"testing"

	"svw.info/gridsolve/internal/board"
	"svw.info/gridsolve/internal/grid"
)

// Cascading propagation inside assign/eliminate already drives a freshly
// loaded board to the singles fixpoint, so the explicit outer pass finds
// nothing new on it.
func TestHiddenSinglesFixpointAfterLoad(t *testing.T) {
	b, err := board.FromString("..3.2.6..9..3.5..1..18.64....81.29..7.......8..67.82....26.95..8..2.3..9..5.1.3..")
	if err != nil {
		t.Fatal(err)
	}
	if res := HiddenSingles(b); res != Unchanged {
		t.Fatalf("HiddenSingles on a propagated board = %v, want Unchanged", res)
	}
}

func TestNakedPairs(t *testing.T) {
	// After loading this grid, row A holds a naked {3,6} pair; the other
	// open row cells must lose both digits.
	b, err := board.FromString("85...24..72......9..4.........1.7..23.5...9...4...........8..7..17..........36.4.")
	if err != nil {
		t.Fatal(err)
	}
	target := grid.At(0, 2)
	if !b.Has(target, 3) || !b.Has(target, 6) {
		t.Fatalf("fixture drift: A3 should list 3 and 6 before the pass, has %v", b.CandidateDigits(target))
	}
	if res := NakedPairs(b); res != Changed {
		t.Fatalf("NakedPairs = %v, want Changed", res)
	}
	if b.Has(target, 3) || b.Has(target, 6) {
		t.Fatalf("A3 still lists pair digits: %v", b.CandidateDigits(target))
	}
}

func TestPointingPairs(t *testing.T) {
	// In this grid one box confines digit 2 to a single column; the two
	// open cells of that column outside the box must lose digit 2, and
	// nothing else changes.
	b, err := board.FromString(".....6....59.....82....8....45........3........6..3.54...325..6..................")
	if err != nil {
		t.Fatal(err)
	}
	before := b.Snapshot()
	if res := PointingPairs(b); res != Changed {
		t.Fatalf("PointingPairs = %v, want Changed", res)
	}
	after := b.Snapshot()
	changed := []int{}
	for cell := 0; cell < grid.Cells; cell++ {
		if after[cell] != before[cell] {
			changed = append(changed, cell)
		}
	}
	want := []int{grid.At(7, 1), grid.At(8, 1)}
	if len(changed) != 2 || changed[0] != want[0] || changed[1] != want[1] {
		t.Fatalf("changed cells %v, want %v", changed, want)
	}
	for _, cell := range want {
		if b.Has(cell, 2) {
			t.Fatalf("%s still lists 2 after box-line reduction", grid.Name(cell))
		}
	}
}

func TestPropagateAllSolvesByDeduction(t *testing.T) {
	// This one falls to the strategies alone, no search needed.
	b, err := board.FromString("4.....8.5.3..........7......2.....6.....8.4......1.......6.3.7.5..2.....1.4......")
	if err != nil {
		t.Fatal(err)
	}
	if !PropagateAll(b) {
		t.Fatal("PropagateAll reported contradiction")
	}
	if !b.Solved() {
		t.Fatalf("board not solved by deduction: %s", b.AsString())
	}
	const want = "417369825632158947958724316825437169791586432346912758289643571573291684164875293"
	if got := b.AsString(); got != want {
		t.Fatalf("deduced %s, want %s", got, want)
	}
}

func TestPropagateAllUnitCoverage(t *testing.T) {
	b, err := board.FromString(".....6....59.....82....8....45........3........6..3.54...325..6..................")
	if err != nil {
		t.Fatal(err)
	}
	if !PropagateAll(b) {
		t.Fatal("PropagateAll reported contradiction")
	}
	for u := 0; u < grid.UnitCount; u++ {
		for d := 1; d <= 9; d++ {
			found := false
			for _, cell := range grid.Units[u] {
				if b.Has(cell, d) {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("unit %d has no place left for %d after successful propagation", u, d)
			}
		}
	}
}
