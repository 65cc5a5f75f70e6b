package hint

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"svw.info/gridsolve/internal/domain"
)

func parse(t *testing.T, s string) [9][9]uint8 {
	t.Helper()
	g, err := domain.ParseGrid(s)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestNakedSingleHint(t *testing.T) {
	// On this grid the first naked single in row-major order is E5 = 5.
	g := parse(t, "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79")
	h, ok, err := NewLadder().Hint(context.Background(), g, domain.StrategySingles)
	if err != nil || !ok {
		t.Fatalf("Hint: ok=%v err=%v", ok, err)
	}
	if h.Strategy != domain.StrategySingles {
		t.Fatalf("strategy = %v, want singles", h.Strategy)
	}
	want := []domain.CellCoord{{Row: 4, Col: 4}}
	if diff := cmp.Diff(want, h.Cells); diff != "" {
		t.Fatalf("hint cells mismatch (-want +got):\n%s", diff)
	}
}

func TestHiddenSingleHint(t *testing.T) {
	// Four strategically placed 1s leave exactly one spot for 1 in row A
	// (A3) without creating any naked single.
	g := parse(t, ".................1....1..............1................1..........................")
	h, ok, err := NewLadder().Hint(context.Background(), g, domain.StrategySingles)
	if err != nil || !ok {
		t.Fatalf("Hint: ok=%v err=%v", ok, err)
	}
	want := []domain.CellCoord{{Row: 0, Col: 2}}
	if diff := cmp.Diff(want, h.Cells); diff != "" {
		t.Fatalf("hint cells mismatch (-want +got):\n%s", diff)
	}
}

func TestTierCapping(t *testing.T) {
	// A nearly empty grid has no singles, pairs, or pointing deductions.
	g := parse(t, "1................................................................................")
	_, ok, err := NewLadder().Hint(context.Background(), g, domain.StrategyAdvanced)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("hint found on a grid with nothing to deduce")
	}
}

func TestNoHintOnSolvedGrid(t *testing.T) {
	g := parse(t, "534678912672195348198342567859761423426853791713924856961537284287419635345286179")
	_, ok, err := NewLadder().Hint(context.Background(), g, domain.StrategyAdvanced)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("hint found on a fully solved grid")
	}
}
