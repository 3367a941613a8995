package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/transcall/transcall/internal/ui"
)

// field is a single-line text input. Forms are plain slices of fields with a
// focus index; tab moves focus, enter submits.
type field struct {
	label  string
	value  string
	secret bool
}

// handleKey edits the field value. Returns true when the key was consumed.
func (f *field) handleKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes:
		f.value += string(msg.Runes)
		return true
	case tea.KeySpace:
		f.value += " "
		return true
	case tea.KeyBackspace:
		if f.value != "" {
			runes := []rune(f.value)
			f.value = string(runes[:len(runes)-1])
		}
		return true
	}
	return false
}

func (f *field) reset() {
	f.value = ""
}

// renderField draws a labeled input line with a cursor when focused.
func renderField(f field, focused bool, labelWidth int) string {
	display := f.value
	if f.secret {
		display = strings.Repeat("*", len([]rune(f.value)))
	}

	label := f.label + ":"
	for len([]rune(label)) < labelWidth {
		label += " "
	}

	if focused {
		return ui.FieldLabelActiveStyle.Render(label) + " " + display + ui.CursorStyle.Render("▌")
	}
	return ui.FieldLabelStyle.Render(label) + " " + display
}

// renderButton draws a submit control honoring the busy-state pattern: while
// busy the control is disabled and shows its loading label.
func renderButton(label, busyLabel string, busy, focused bool) string {
	if busy {
		return ui.ButtonDisabledStyle.Render(ui.SpinnerStyle.Render("⟳ ") + busyLabel)
	}
	if focused {
		return ui.ButtonActiveStyle.Render("[ " + label + " ]")
	}
	return ui.ButtonStyle.Render("[ " + label + " ]")
}
