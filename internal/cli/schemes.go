package cli

import (
	"fmt"
	"strings"

	"github.com/atomicstack/termpick/internal/format/table"
	"github.com/atomicstack/termpick/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
)

var colourNames = map[lipgloss.Color]string{
	"0": "black",
	"1": "red",
	"2": "green",
	"3": "yellow",
	"4": "blue",
	"5": "magenta",
	"6": "cyan",
	"7": "white",
}

func colourName(c lipgloss.Color) string {
	if name, ok := colourNames[c]; ok {
		return name
	}
	return string(c)
}

func newSchemesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List the colour schemes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, line := range schemeLines(isTerminal(out), terminalWidth(out)) {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}

// schemeLines renders one row per scheme with the fg/bg pair of every palette
// slot. With swatches set each row also shows the slots drawn in colour,
// provided the row still fits in width.
func schemeLines(swatches bool, width int) []string {
	header := []string{"SCHEME"}
	for _, id := range theme.IDs() {
		header = append(header, strings.ToUpper(id.String()))
	}
	rows := [][]string{header}
	palettes := make([]*theme.Palette, 0, len(theme.Schemes()))
	for _, name := range theme.Schemes() {
		palette := theme.MustNew(name)
		palettes = append(palettes, palette)
		row := []string{name}
		for _, id := range theme.IDs() {
			pair := palette.Pair(id)
			row = append(row, colourName(pair.Fg)+"/"+colourName(pair.Bg))
		}
		rows = append(rows, row)
	}
	lines := table.Format(rows, nil)
	if !swatches {
		return lines
	}
	for i, palette := range palettes {
		samples := make([]string, 0, len(theme.IDs()))
		for _, id := range theme.IDs() {
			samples = append(samples, palette.Render(id, " "+id.String()+" "))
		}
		line := lines[i+1] + "  " + strings.Join(samples, " ")
		if width > 0 && ansi.StringWidth(line) > width {
			continue
		}
		lines[i+1] = line
	}
	return lines
}
