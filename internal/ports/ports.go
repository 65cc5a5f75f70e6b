package ports

import (
	"context"
	"time"

	"svw.info/gridsolve/internal/board"
	"svw.info/gridsolve/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver searches a candidate board for a solution.
type Solver interface {
	Solve(ctx context.Context, b *board.Board) (*board.Board, Stats, error)
}

// Validator performs fast constraint checks (row/col/box) on a raw grid.
type Validator interface {
	Validate(ctx context.Context, g [9][9]uint8) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical deduction up to a max strategy tier.
type Hinter interface {
	Hint(ctx context.Context, g [9][9]uint8, max domain.StrategyTier) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
