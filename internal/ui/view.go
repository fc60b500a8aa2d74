package ui

import (
	"strings"

	"github.com/atomicstack/termpick/internal/format/table"
	"github.com/atomicstack/termpick/internal/theme"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

type styledLine struct {
	text  string
	id    theme.ID
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// itemLine decorates a list entry with the markers for its state.
func itemLine(label string, highlighted, chosen bool) styledLine {
	switch {
	case chosen && highlighted:
		return styledLine{text: ">" + label + "<", id: theme.SelectedHighlighted}
	case chosen:
		return styledLine{text: ">" + label, id: theme.Selected}
	case highlighted:
		return styledLine{text: ">" + label + "<", id: theme.Highlighted}
	}
	return styledLine{text: label, id: theme.Normal}
}

func (f *frame) titleLines() []styledLine {
	title := f.opts.Title
	if title == "" {
		return nil
	}
	rows := titleRows(title, f.width)
	wrapped := title
	if f.width > 0 {
		wrapped = ansi.Hardwrap(title, f.width, true)
	}
	parts := strings.Split(wrapped, "\n")
	lines := make([]styledLine, 0, rows+1)
	for i := 0; i < rows; i++ {
		text := ""
		if i < len(parts) {
			text = parts[i]
		}
		lines = append(lines, styledLine{text: text, style: f.palette.Styles().Title})
	}
	return append(lines, styledLine{})
}

func (f *frame) debugLines(fields []table.Field) []styledLine {
	if !f.opts.Debug {
		return nil
	}
	lines := []styledLine{{}}
	for _, text := range table.KeyValues(fields) {
		lines = append(lines, styledLine{text: text, style: f.palette.Styles().Debug})
	}
	return lines
}

func (f *frame) footerLine(keys help.KeyMap) []styledLine {
	if !f.opts.Footer {
		return nil
	}
	f.help.Width = f.width
	return []styledLine{{text: f.help.View(keys), raw: true}}
}

// compose lays out title, body, debug block and footer, trimmed to the
// surface.
func (f *frame) compose(body, debug, footer []styledLine) string {
	lines := make([]styledLine, 0, len(body)+len(debug)+8)
	lines = append(lines, f.titleLines()...)
	lines = append(lines, body...)
	lines = append(lines, debug...)
	lines = append(lines, footer...)
	if !f.opts.Scroll {
		lines = limitHeight(lines, f.height)
	}
	return f.renderLines(applyWidth(lines, f.width))
}

func limitHeight(lines []styledLine, height int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	return lines[:height]
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if ansi.StringWidth(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, id: line.id, style: line.style, raw: line.raw}
	}
	return result
}

func (f *frame) renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case line.raw || line.text == "":
			out[i] = line.text
		case line.style != nil:
			out[i] = line.style.Render(line.text)
		default:
			out[i] = f.palette.Render(line.id, line.text)
		}
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return runewidth.Truncate(text, 1, "")
	}
	return runewidth.Truncate(text, width, "…")
}
