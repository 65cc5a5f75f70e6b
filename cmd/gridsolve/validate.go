package main

import (
	"context"
	"fmt"

	"github.com/scott-cotton/cli"

	"svw.info/gridsolve/internal/domain"
	"svw.info/gridsolve/internal/grid"
	"svw.info/gridsolve/internal/validator"
)

func validate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		cfg.Validate.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	grids, err := gatherGrids(cc.In, args)
	if err != nil {
		return err
	}
	if len(grids) == 0 {
		return fmt.Errorf("%w: validate requires at least one grid", cli.ErrUsage)
	}

	ctx := context.Background()
	v := validator.New()
	bad := false
	for i, s := range grids {
		g, err := domain.ParseGrid(s)
		if err != nil {
			return fmt.Errorf("grid %d: %w", i+1, err)
		}
		ok, conflicts, err := v.Validate(ctx, g)
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintf(cc.Out, "grid %d: valid\n", i+1)
			continue
		}
		bad = true
		fmt.Fprintf(cc.Out, "grid %d: invalid\n", i+1)
		for _, c := range conflicts {
			fmt.Fprintf(cc.Out, "  conflict at %s\n", grid.Name(grid.At(c.Row, c.Col)))
		}
	}
	if bad {
		return cli.ExitCodeErr(1)
	}
	return nil
}
