package steps

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/mlpipe/internal/tui"
	"github.com/initializ/mlpipe/internal/tui/components"
)

// ExperimentStep collects the experiment (run group) name.
type ExperimentStep struct {
	input    components.TextInput
	complete bool
	name     string
	prefill  string
}

// NewExperimentStep creates a new experiment step.
func NewExperimentStep(styles *tui.StyleSet, prefill string) *ExperimentStep {
	validate := func(val string) error {
		if val == "" {
			return fmt.Errorf("experiment name is required")
		}
		return nil
	}

	input := components.NewTextInput(
		"What should the experiment run group be called?",
		"development",
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

	return &ExperimentStep{
		input:   input,
		prefill: prefill,
	}
}

func (s *ExperimentStep) Title() string { return "Experiment" }

func (s *ExperimentStep) Init() tea.Cmd {
	if s.prefill != "" {
		s.complete = true
		s.name = s.prefill
		return func() tea.Msg { return tui.StepCompleteMsg{} }
	}
	return s.input.Init()
}

func (s *ExperimentStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
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

func (s *ExperimentStep) View(width int) string {
	return s.input.View(width)
}

func (s *ExperimentStep) Complete() bool {
	return s.complete
}

func (s *ExperimentStep) Summary() string {
	return s.name
}

func (s *ExperimentStep) Apply(ctx *tui.WizardContext) {
	ctx.ExperimentName = s.name
}
