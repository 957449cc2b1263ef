package steps

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/mlpipe/internal/tui"
	"github.com/initializ/mlpipe/internal/tui/components"
)

// ReviewStep shows a final summary before scaffolding.
type ReviewStep struct {
	styles   *tui.StyleSet
	box      components.SummaryBox
	kbd      components.KbdHint
	complete bool
}

// NewReviewStep creates a new review step.
func NewReviewStep(styles *tui.StyleSet) *ReviewStep {
	kbd := components.NewKbdHint(styles.KbdKey, styles.KbdDesc)
	kbd.Bindings = components.ReviewHints()

	return &ReviewStep{
		styles: styles,
		kbd:    kbd,
	}
}

// Prepare builds the summary rows from the accumulated context.
func (s *ReviewStep) Prepare(ctx *tui.WizardContext) {
	repo := ctx.ComponentsRepository
	if repo == "" {
		repo = "(local only)"
	}

	items := []components.SummaryItem{
		{Label: "Project", Value: ctx.ProjectName},
		{Label: "Experiment", Value: ctx.ExperimentName},
		{Label: "Components", Value: repo},
		{Label: "Default steps", Value: ctx.Steps},
	}

	s.box = components.NewSummaryBox(items, s.styles.SummaryKey, s.styles.SummaryValue, s.styles.BorderedBox)
}

func (s *ReviewStep) Title() string { return "Review" }

func (s *ReviewStep) Init() tea.Cmd { return nil }

func (s *ReviewStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	if s.complete {
		return s, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			s.complete = true
			return s, func() tea.Msg { return tui.StepCompleteMsg{} }
		case "backspace":
			return s, func() tea.Msg { return tui.StepBackMsg{} }
		}
	}

	return s, nil
}

func (s *ReviewStep) View(width int) string {
	out := "\n" + s.box.View(width) + "\n"
	out += "\n" + s.kbd.View()
	return out
}

func (s *ReviewStep) Complete() bool {
	return s.complete
}

func (s *ReviewStep) Summary() string {
	return "confirmed"
}

func (s *ReviewStep) Apply(ctx *tui.WizardContext) {}
