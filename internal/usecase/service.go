// Package usecase wires the solver, validator, hinter, and storage ports
// behind one service facade.
package usecase

import (
	"context"
	"errors"

	"svw.info/gridsolve/internal/board"
	"svw.info/gridsolve/internal/domain"
	"svw.info/gridsolve/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
}

func NewService(s ports.Solver, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Validator: v, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Report is the result of a Solve call: the outcome classification, the
// final grid string, the conflicts for an invalid filled grid, and the
// search statistics.
type Report struct {
	Outcome   domain.Outcome
	Grid      string
	Conflicts []domain.CellCoord
	Stats     ports.Stats
}

// Solve drives the engine over an 81-character grid string. A fully filled
// input is validated without invoking search; a partial input is built into
// a candidate board (failing on contradictory clues) and searched, with
// exhaustion surfacing as the solver's unsolvable error.
func (u *Service) Solve(ctx context.Context, in string) (*Report, error) {
	if u.Solver == nil || u.Validator == nil {
		return nil, errNotConfigured
	}
	g, err := domain.ParseGrid(in)
	if err != nil {
		return nil, err
	}
	if domain.Filled(g) {
		ok, conflicts, err := u.Validator.Validate(ctx, g)
		if err != nil {
			return nil, err
		}
		rep := &Report{Outcome: domain.OutcomeAlreadySolved, Grid: domain.FormatGrid(g)}
		if !ok {
			rep.Outcome = domain.OutcomeInvalid
			rep.Conflicts = conflicts
		}
		return rep, nil
	}

	b, err := board.FromString(domain.FormatGrid(g))
	if err != nil {
		return nil, err
	}
	solved, st, err := u.Solver.Solve(ctx, b)
	if err != nil {
		return nil, err
	}
	return &Report{Outcome: domain.OutcomeSolved, Grid: solved.AsString(), Stats: st}, nil
}

func (u *Service) Validate(ctx context.Context, g [9][9]uint8) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

func (u *Service) Hint(ctx context.Context, g [9][9]uint8, max domain.StrategyTier) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, g, max)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
