package game

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePosition converts the external letter+number notation ("A1",
// "m13", row letter then 1-based column) to a 0-based Position on a
// board of the given size.
func ParsePosition(text string, size BoardSize) (Position, error) {
	s := strings.TrimSpace(text)
	if len(s) < 2 || len(s) > 3 {
		return Position{}, fmt.Errorf("bad position %q: want letter then number, e.g. A1", text)
	}
	letter := s[0]
	switch {
	case letter >= 'a' && letter <= 'z':
		letter -= 'a' - 'A'
	case letter >= 'A' && letter <= 'Z':
	default:
		return Position{}, fmt.Errorf("bad position %q: row must be a letter", text)
	}
	col, err := strconv.Atoi(s[1:])
	if err != nil {
		return Position{}, fmt.Errorf("bad position %q: column must be a number", text)
	}
	p := Position{Row: int(letter - 'A'), Col: col - 1}
	n := int(size)
	if p.Row >= n || p.Col < 0 || p.Col >= n {
		return Position{}, fmt.Errorf("position %q is outside the %dx%d board", text, n, n)
	}
	return p, nil
}

// FormatPosition is the inverse of ParsePosition.
func FormatPosition(p Position) string {
	return fmt.Sprintf("%c%d", 'A'+p.Row, p.Col+1)
}
