// Package components provides reusable bubbletea input components.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KeyBinding pairs a key label with what pressing it does.
type KeyBinding struct {
	Key  string
	Desc string
}

// KbdHint is the shortcut bar shown under each wizard step.
type KbdHint struct {
	Bindings []KeyBinding

	key  lipgloss.Style
	desc lipgloss.Style
	sep  string
}

// NewKbdHint creates a hint bar with the given key and description styles.
func NewKbdHint(keyStyle, descStyle lipgloss.Style) KbdHint {
	return KbdHint{
		key:  keyStyle,
		desc: descStyle,
		sep:  descStyle.Render("  ·  "),
	}
}

// View renders the shortcut bar on one line.
func (k KbdHint) View() string {
	parts := make([]string, 0, len(k.Bindings))
	for _, b := range k.Bindings {
		parts = append(parts, k.key.Render(b.Key)+" "+k.desc.Render(b.Desc))
	}
	return "  " + strings.Join(parts, k.sep)
}

// SelectHints returns the shortcut set for single-select lists.
func SelectHints() []KeyBinding {
	return []KeyBinding{
		{Key: "↑↓", Desc: "navigate"},
		{Key: "⏎", Desc: "select"},
		{Key: "esc", Desc: "quit"},
	}
}

// InputHints returns the shortcut set for text inputs.
func InputHints() []KeyBinding {
	return []KeyBinding{
		{Key: "⏎", Desc: "submit"},
		{Key: "esc", Desc: "quit"},
	}
}

// ReviewHints returns the shortcut set for the review step.
func ReviewHints() []KeyBinding {
	return []KeyBinding{
		{Key: "⏎", Desc: "confirm"},
		{Key: "backspace", Desc: "back"},
		{Key: "esc", Desc: "quit"},
	}
}
