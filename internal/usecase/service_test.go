package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"svw.info/gridsolve/internal/board"
	"svw.info/gridsolve/internal/domain"
	"svw.info/gridsolve/internal/hint"
	"svw.info/gridsolve/internal/search"
	"svw.info/gridsolve/internal/validator"
)

const (
	easy    = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	easySol = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
)

func newService() *Service {
	return NewService(search.NewEngine(), validator.New(), hint.NewLadder(), nil)
}

func TestSolveEasyPuzzle(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	rep, err := newService().Solve(ctx, easy)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if rep.Outcome != domain.OutcomeSolved {
		t.Fatalf("outcome = %v, want %v", rep.Outcome, domain.OutcomeSolved)
	}
	if rep.Grid != easySol {
		t.Fatalf("grid %s, want %s", rep.Grid, easySol)
	}
}

func TestSolveMalformedInput(t *testing.T) {
	_, err := newService().Solve(context.Background(), strings.Repeat(".", 80))
	if !errors.Is(err, domain.ErrBadGrid) {
		t.Fatalf("err = %v, want ErrBadGrid", err)
	}
}

func TestSolveContradictionOnLoad(t *testing.T) {
	_, err := newService().Solve(context.Background(), "55"+strings.Repeat(".", 79))
	if !errors.Is(err, board.ErrContradiction) {
		t.Fatalf("err = %v, want board.ErrContradiction", err)
	}
}

func TestSolveAlreadySolved(t *testing.T) {
	rep, err := newService().Solve(context.Background(), easySol)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if rep.Outcome != domain.OutcomeAlreadySolved {
		t.Fatalf("outcome = %v, want %v", rep.Outcome, domain.OutcomeAlreadySolved)
	}
	if rep.Stats.Nodes != 0 {
		t.Fatalf("search ran (%d nodes) on an already solved grid", rep.Stats.Nodes)
	}
	if rep.Outcome.String() != "already solved and valid" {
		t.Fatalf("summary = %q", rep.Outcome.String())
	}
}

func TestSolveFilledButInvalid(t *testing.T) {
	// Swap two distinct digits within the first row: still fully filled,
	// but the columns and boxes now collide.
	bad := []byte(easySol)
	bad[0], bad[1] = bad[1], bad[0]
	rep, err := newService().Solve(context.Background(), string(bad))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if rep.Outcome != domain.OutcomeInvalid {
		t.Fatalf("outcome = %v, want %v", rep.Outcome, domain.OutcomeInvalid)
	}
	if len(rep.Conflicts) == 0 {
		t.Fatal("no conflicts reported for an invalid filled grid")
	}
	if rep.Outcome.String() != "filled but invalid" {
		t.Fatalf("summary = %q", rep.Outcome.String())
	}
}

func TestSolveUnsolvable(t *testing.T) {
	if testing.Short() {
		t.Skip("exhausting the unsolvable search tree takes a while")
	}
	const hopeless = ".....5.8....6.1.43..........1.5........1.6...3.......553.....61........4........."
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	_, err := newService().Solve(ctx, hopeless)
	if !errors.Is(err, search.ErrUnsolvable) {
		t.Fatalf("err = %v, want search.ErrUnsolvable", err)
	}
}

func TestNotConfigured(t *testing.T) {
	var empty Service
	if _, err := empty.Solve(context.Background(), easy); err == nil {
		t.Fatal("expected error from unconfigured service")
	}
	if _, err := empty.Load(context.Background(), "x"); err == nil {
		t.Fatal("expected error from unconfigured storage")
	}
}
