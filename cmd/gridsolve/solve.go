package main

import (
	"context"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"svw.info/gridsolve/internal/board"
	"svw.info/gridsolve/internal/domain"
	"svw.info/gridsolve/internal/render"
	"svw.info/gridsolve/internal/search"
	"svw.info/gridsolve/internal/usecase"
	"svw.info/gridsolve/internal/validator"
)

func solve(cfg *SolveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Solve.Parse(cc, args)
	if err != nil {
		cfg.Solve.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	grids, err := gatherGrids(cc.In, args)
	if err != nil {
		return err
	}
	if len(grids) == 0 {
		return fmt.Errorf("%w: solve requires at least one grid", cli.ErrUsage)
	}

	ctx := context.Background()
	uc := usecase.NewService(search.NewEngine(), validator.New(), nil, nil)
	for i, g := range grids {
		if i > 0 && !cfg.Quiet {
			fmt.Fprintln(cc.Out)
		}
		rep, err := uc.Solve(ctx, g)
		if err != nil {
			return fmt.Errorf("grid %d: %w", i+1, err)
		}
		if cfg.Quiet {
			fmt.Fprintln(cc.Out, rep.Grid)
			continue
		}
		writeReport(cfg.MainConfig, cc.Out, rep)
	}
	return nil
}

func writeReport(cfg *MainConfig, w io.Writer, rep *usecase.Report) {
	fmt.Fprintln(w, rep.Outcome)
	if rep.Outcome == domain.OutcomeInvalid {
		for _, c := range rep.Conflicts {
			fmt.Fprintf(w, "conflict at row %d col %d\n", c.Row+1, c.Col+1)
		}
		return
	}
	b, err := board.FromString(rep.Grid)
	if err != nil {
		// Solved grids always reconstruct; fall back to the raw string.
		fmt.Fprintln(w, rep.Grid)
		return
	}
	var opts []render.Option
	if cfg.Color {
		opts = append(opts, render.Colorize(true))
	}
	render.Grid(w, b, opts...)
}
