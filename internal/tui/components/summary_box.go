package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SummaryItem is one labelled value on the review screen.
type SummaryItem struct {
	Label string
	Value string
}

// SummaryBox lays out labelled values inside a framed panel. Labels are
// padded to the widest entry so the values form a column.
type SummaryBox struct {
	items []SummaryItem
	label lipgloss.Style
	value lipgloss.Style
	frame lipgloss.Style
}

// NewSummaryBox creates a summary panel over the given items.
func NewSummaryBox(items []SummaryItem, label, value, frame lipgloss.Style) SummaryBox {
	return SummaryBox{
		items: items,
		label: label,
		value: value,
		frame: frame,
	}
}

// View renders the panel at the given terminal width.
func (b SummaryBox) View(width int) string {
	labelWidth := 0
	for _, it := range b.items {
		if n := lipgloss.Width(it.Label); n > labelWidth {
			labelWidth = n
		}
	}

	lines := make([]string, 0, len(b.items))
	for _, it := range b.items {
		label := b.label.Width(labelWidth + 2).Render(it.Label)
		lines = append(lines, "  "+label+b.value.Render(it.Value))
	}

	frameWidth := width - 8
	if frameWidth < 30 {
		frameWidth = 30
	}
	return "  " + b.frame.Width(frameWidth).Render(strings.Join(lines, "\n"))
}
