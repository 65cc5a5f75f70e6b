package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"svw.info/gridsolve/internal/board"
	"svw.info/gridsolve/internal/render"
	"svw.info/gridsolve/internal/strategy"
)

func show(cfg *ShowConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Show.Parse(cc, args)
	if err != nil {
		cfg.Show.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	grids, err := gatherGrids(cc.In, args)
	if err != nil {
		return err
	}
	if len(grids) == 0 {
		return fmt.Errorf("%w: show requires at least one grid", cli.ErrUsage)
	}

	for i, s := range grids {
		if i > 0 {
			fmt.Fprintln(cc.Out)
		}
		b, err := board.FromString(s)
		if err != nil {
			return fmt.Errorf("grid %d: %w", i+1, err)
		}
		if !cfg.Raw {
			if !strategy.PropagateAll(b) {
				return fmt.Errorf("grid %d: propagation found a contradiction", i+1)
			}
		}
		var opts []render.Option
		if cfg.Color {
			opts = append(opts, render.Colorize(true))
		}
		render.Grid(cc.Out, b, opts...)
	}
	return nil
}
