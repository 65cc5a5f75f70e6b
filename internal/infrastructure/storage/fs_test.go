package storage

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"svw.info/gridsolve/internal/domain"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	p := &domain.Puzzle{
		ID:        "easy-1",
		Name:      "first easy",
		Grid:      "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79",
		CreatedAt: 1724400000,
		Notes:     "from the test deck",
	}
	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(ctx, "easy-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(p, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveRejectsBadPuzzles(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()
	if err := s.Save(ctx, &domain.Puzzle{Grid: "..."}); err == nil {
		t.Fatal("saved a puzzle without an ID")
	}
	if err := s.Save(ctx, &domain.Puzzle{ID: "x", Grid: "short"}); err == nil {
		t.Fatal("saved a puzzle with a malformed grid")
	}
}

func TestList(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	grid := "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	for _, id := range []string{"a", "b"} {
		if err := s.Save(ctx, &domain.Puzzle{ID: id, Grid: grid, CreatedAt: 1}); err != nil {
			t.Fatalf("Save %s: %v", id, err)
		}
	}
	metas, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 2 {
		t.Fatalf("listed %d puzzles, want 2", len(metas))
	}
}

func TestListMissingDir(t *testing.T) {
	s := NewFS(t.TempDir() + "/nope")
	metas, err := s.List(context.Background())
	if err != nil || metas != nil {
		t.Fatalf("missing dir: metas=%v err=%v", metas, err)
	}
}
