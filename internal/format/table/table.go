package table

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Field is one labelled value in a diagnostics block.
type Field struct {
	Key   string
	Value interface{}
}

// Format pads rows so every column is as wide as its widest cell, joining
// columns with two spaces. Widths are measured in terminal cells.
func Format(rows [][]string, alignments []Alignment) []string {
	return FormatSep(rows, alignments, "  ")
}

// FormatSep is Format with a caller-chosen column separator.
func FormatSep(rows [][]string, alignments []Alignment, sep string) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString(sep)
			}
			pad := widths[c] - runewidth.StringWidth(cell)
			last := c == len(row)-1
			if c < len(alignments) && alignments[c] == AlignRight {
				b.WriteString(strings.Repeat(" ", pad))
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				if !last {
					b.WriteString(strings.Repeat(" ", pad))
				}
			}
		}
		out[i] = b.String()
	}
	return out
}

// KeyValues renders fields as an aligned "key = value" block in the given
// order.
func KeyValues(fields []Field) []string {
	rows := make([][]string, len(fields))
	for i, f := range fields {
		rows[i] = []string{f.Key, fmt.Sprint(f.Value)}
	}
	return FormatSep(rows, nil, " = ")
}
