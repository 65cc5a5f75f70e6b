package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "gridsolve").
		WithSynopsis("gridsolve [opts] command [opts]").
		WithDescription("gridsolve solves and validates 9x9 Sudoku grids.").
		WithOpts(opts...).
		WithSubs(
			SolveCommand(cfg),
			ValidateCommand(cfg),
			ShowCommand(cfg),
			ServeCommand(cfg))
}

func SolveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SolveConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("solve").
		WithAliases("s").
		WithSynopsis("solve [-q] [grids or files]").
		WithDescription("Solve puzzles given as 81-character grids, files, or stdin").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return solve(cfg, cc, args)
		})
	cfg.Solve = cmd
	return cmd
}

func ValidateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ValidateConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("validate").
		WithAliases("v").
		WithSynopsis("validate [grids or files]").
		WithDescription("Check grids for row/column/box conflicts").
		WithRun(func(cc *cli.Context, args []string) error {
			return validate(cfg, cc, args)
		})
	cfg.Validate = cmd
	return cmd
}

func ShowCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ShowConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("show").
		WithSynopsis("show [-raw] [grids or files]").
		WithDescription("Render the candidate grid after constraint propagation").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return show(cfg, cc, args)
		})
	cfg.Show = cmd
	return cmd
}

func ServeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ServeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("serve").
		WithSynopsis("serve [-config file] [-addr :8080] [-data dir]").
		WithDescription("Run the JSON API server").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return serve(cfg, cc, args)
		})
	cfg.Serve = cmd
	return cmd
}
