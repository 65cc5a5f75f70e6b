package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// gatherGrids resolves command arguments to 81-character grid strings. An
// argument that already looks like a grid is used directly; anything else is
// treated as a file holding one grid per line, "-" meaning stdin. With no
// arguments, grids are read from in.
func gatherGrids(in io.Reader, args []string) ([]string, error) {
	if len(args) == 0 {
		return readGrids(in)
	}
	var out []string
	for _, arg := range args {
		if s := strings.TrimSpace(arg); len(s) == 81 {
			out = append(out, s)
			continue
		}
		var (
			f   *os.File
			err error
		)
		if arg != "-" {
			f, err = os.Open(arg)
			if err != nil {
				return nil, fmt.Errorf("could not open %q: %w", arg, err)
			}
		} else {
			f = os.Stdin
		}
		grids, err := readGrids(f)
		if arg != "-" {
			f.Close()
		}
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", arg, err)
		}
		out = append(out, grids...)
	}
	return out, nil
}

func readGrids(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}
