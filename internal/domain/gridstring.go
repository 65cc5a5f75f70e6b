package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadGrid is returned when an 81-character grid string has the wrong
// length.
var ErrBadGrid = errors.New("grid string must be exactly 81 characters")

// ParseGrid converts an 81-character string into raw cell values. '1'-'9'
// are clues; any other character is a blank (conventionally '.' or '0').
func ParseGrid(s string) ([9][9]uint8, error) {
	var g [9][9]uint8
	s = strings.TrimSpace(s)
	if len(s) != 81 {
		return g, fmt.Errorf("%w: got %d", ErrBadGrid, len(s))
	}
	for i := 0; i < 81; i++ {
		if ch := s[i]; ch >= '1' && ch <= '9' {
			g[i/9][i%9] = ch - '0'
		}
	}
	return g, nil
}

// FormatGrid is the inverse of ParseGrid, with '.' for blanks.
func FormatGrid(g [9][9]uint8) string {
	var sb strings.Builder
	sb.Grow(81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := g[r][c]; v != 0 {
				sb.WriteByte('0' + v)
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// Filled reports whether the grid has no blanks.
func Filled(g [9][9]uint8) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return false
			}
		}
	}
	return true
}
