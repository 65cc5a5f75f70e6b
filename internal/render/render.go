// Package render turns candidate boards into human-readable text.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"svw.info/gridsolve/internal/board"
	"svw.info/gridsolve/internal/grid"
)

var (
	solvedColor    = color.New(color.FgGreen, color.Bold).SprintFunc()
	candidateColor = color.New(color.FgHiBlack).SprintFunc()
)

// Option adjusts rendering.
type Option func(*config)

type config struct {
	colorize *bool
}

// Colorize forces colors on or off. Without it, colors follow whether the
// writer is a terminal.
func Colorize(on bool) Option {
	return func(c *config) { c.colorize = &on }
}

// Grid writes a 9x9 rendering of the board with box separators. Solved
// cells show their digit; unsolved cells show the sorted list of remaining
// candidates. Column width adapts to the widest candidate set.
func Grid(w io.Writer, b *board.Board, opts ...Option) {
	cfg := config{}
	for _, o := range opts {
		o(&cfg)
	}
	colorize := false
	if cfg.colorize != nil {
		colorize = *cfg.colorize
	} else if f, ok := w.(*os.File); ok {
		colorize = isatty.IsTerminal(f.Fd())
	}

	width := 1
	for cell := 0; cell < grid.Cells; cell++ {
		if n := b.Count(cell); n+1 > width {
			width = n + 1
		}
	}
	sep := strings.Repeat("-", width*3)
	line := sep + "+" + sep + "+" + sep

	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			cell := grid.At(r, c)
			var txt string
			if d := b.Digit(cell); d != 0 {
				txt = center(fmt.Sprintf("%d", d), width)
				if colorize {
					txt = solvedColor(txt)
				}
			} else {
				var sb strings.Builder
				for _, d := range b.CandidateDigits(cell) {
					sb.WriteByte(byte('0' + d))
				}
				txt = center(sb.String(), width)
				if colorize {
					txt = candidateColor(txt)
				}
			}
			fmt.Fprint(w, txt)
			if c == 2 || c == 5 {
				fmt.Fprint(w, "|")
			}
		}
		fmt.Fprintln(w)
		if r == 2 || r == 5 {
			fmt.Fprintln(w, line)
		}
	}
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}
