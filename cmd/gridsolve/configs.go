package main

import (
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`

	Main *cli.Command
}

type SolveConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='print only the 81-character result'"`

	Solve *cli.Command
}

type ValidateConfig struct {
	*MainConfig

	Validate *cli.Command
}

type ShowConfig struct {
	*MainConfig
	Raw bool `cli:"name=raw desc='skip constraint propagation before rendering'"`

	Show *cli.Command
}

type ServeConfig struct {
	*MainConfig
	Config   string `cli:"name=config desc='YAML config file'"`
	Addr     string `cli:"name=addr desc='listen address (overrides config)'"`
	Data     string `cli:"name=data desc='puzzle save directory (overrides config)'"`
	LogLevel string `cli:"name=log-level desc='debug|info|warn|error (overrides config)'"`

	Serve *cli.Command
}
