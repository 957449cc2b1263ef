// Package steps implements the init wizard steps.
package steps

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/mlpipe/internal/tui"
	"github.com/initializ/mlpipe/internal/tui/components"
)

// ProjectStep collects the tracking project name.
type ProjectStep struct {
	input    components.TextInput
	complete bool
	name     string
	prefill  string
}

// NewProjectStep creates a new project step.
func NewProjectStep(styles *tui.StyleSet, prefill string) *ProjectStep {
	validate := func(val string) error {
		if val == "" {
			return fmt.Errorf("project name is required")
		}
		return nil
	}

	input := components.NewTextInput(
		"What is the tracking project for this pipeline?",
		"nyc_airbnb",
		validate,
		styles.Theme.Accent,
		styles.AccentTxt,
		styles.InactiveBorder,
		styles.ErrorTxt,
		styles.DimTxt,
		styles.KbdKey,
		styles.KbdDesc,
	)

	if prefill != "" {
		input.SetValue(prefill)
	}

	return &ProjectStep{
		input:   input,
		prefill: prefill,
	}
}

func (s *ProjectStep) Title() string { return "Project" }

func (s *ProjectStep) Init() tea.Cmd {
	// If pre-filled, auto-complete
	if s.prefill != "" {
		s.complete = true
		s.name = s.prefill
		return func() tea.Msg { return tui.StepCompleteMsg{} }
	}
	return s.input.Init()
}

func (s *ProjectStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	if s.complete {
		return s, nil
	}

	updated, cmd := s.input.Update(msg)
	s.input = updated

	if s.input.Done() {
		s.complete = true
		s.name = s.input.Value()
		return s, func() tea.Msg { return tui.StepCompleteMsg{} }
	}

	return s, cmd
}

func (s *ProjectStep) View(width int) string {
	return s.input.View(width)
}

func (s *ProjectStep) Complete() bool {
	return s.complete
}

func (s *ProjectStep) Summary() string {
	return s.name
}

func (s *ProjectStep) Apply(ctx *tui.WizardContext) {
	ctx.ProjectName = s.name
}
