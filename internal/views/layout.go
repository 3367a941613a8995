// Package views renders API payloads into terminal panels. Every renderer is
// a pure function from payload to string: it owns nothing beyond its return
// value and fully replaces whatever was on screen before.
package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/transcall/transcall/internal/ui"
)

// PadRight pads s with spaces to the given visible width.
func PadRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// Truncate shortens s to the given visible width, ending with an ellipsis.
func Truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if len(runes) > width-1 && width > 1 {
		return string(runes[:width-1]) + "…"
	}
	return s
}

// Cell fits s into a fixed-width table cell.
func Cell(s string, width int) string {
	return PadRight(Truncate(s, width), width)
}

// WrapText word-wraps text to the given width, preserving paragraph breaks.
func WrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		var current string
		for _, word := range strings.Fields(paragraph) {
			if current == "" {
				current = word
			} else if len(current)+1+len(word) <= width {
				current += " " + word
			} else {
				lines = append(lines, current)
				current = word
			}
		}
		if current != "" {
			lines = append(lines, current)
		} else {
			lines = append(lines, "")
		}
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// headerRow renders a table header from column titles and widths.
func headerRow(titles []string, widths []int) string {
	var cells []string
	for i, title := range titles {
		cells = append(cells, ui.TableHeaderStyle.Render(Cell(title, widths[i])))
	}
	return strings.Join(cells, "  ")
}

// placeholderRow renders the single row shown for an empty table. It spans
// the full table width and carries no action controls.
func placeholderRow(message string, widths []int) string {
	total := 0
	for _, w := range widths {
		total += w + 2
	}
	total -= 2
	pad := (total - len([]rune(message))) / 2
	if pad < 0 {
		pad = 0
	}
	return ui.PlaceholderStyle.Render(strings.Repeat(" ", pad) + message)
}

// cursor marks the selected row in a navigable table.
func cursor(selected bool) string {
	if selected {
		return ui.SelectedStyle.Render("> ")
	}
	return "  "
}
