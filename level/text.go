package level

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseText reads the character level format: one row per line, one
// character per block ('b' dirt, 'a' air, 'p' start, 'e' end). Blank lines
// are skipped.
func ParseText(r io.Reader) (Grid, error) {
	var g Grid
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		row := make([]Block, 0, len(text))
		for _, ch := range text {
			b, err := ParseBlock(ch)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			row = append(row, b)
		}
		g = append(g, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// String renders the grid in the character level format.
func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g {
		for _, b := range row {
			sb.WriteRune(b.Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
