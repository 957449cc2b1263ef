package steps

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/mlpipe/internal/tui"
	"github.com/initializ/mlpipe/internal/tui/components"
)

// ComponentsStep collects the git repository holding shared components.
type ComponentsStep struct {
	input    components.TextInput
	complete bool
	repo     string
	prefill  string
}

// NewComponentsStep creates a new components repository step.
func NewComponentsStep(styles *tui.StyleSet, prefill string) *ComponentsStep {
	validate := func(val string) error {
		if val == "" {
			return nil // optional, local-only pipelines work without it
		}
		if !strings.Contains(val, "://") && !strings.HasPrefix(val, "git@") {
			return fmt.Errorf("expected a git URL (https://... or git@...)")
		}
		return nil
	}

	input := components.NewTextInput(
		"Git repository for shared components (blank for local-only)",
		"https://github.com/example/ml-components.git",
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

	return &ComponentsStep{
		input:   input,
		prefill: prefill,
	}
}

func (s *ComponentsStep) Title() string { return "Components" }

func (s *ComponentsStep) Init() tea.Cmd {
	if s.prefill != "" {
		s.complete = true
		s.repo = s.prefill
		return func() tea.Msg { return tui.StepCompleteMsg{} }
	}
	return s.input.Init()
}

func (s *ComponentsStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	if s.complete {
		return s, nil
	}

	updated, cmd := s.input.Update(msg)
	s.input = updated

	if s.input.Done() {
		s.complete = true
		s.repo = s.input.Value()
		return s, func() tea.Msg { return tui.StepCompleteMsg{} }
	}

	return s, cmd
}

func (s *ComponentsStep) View(width int) string {
	return s.input.View(width)
}

func (s *ComponentsStep) Complete() bool {
	return s.complete
}

func (s *ComponentsStep) Summary() string {
	if s.repo == "" {
		return "(local only)"
	}
	return s.repo
}

func (s *ComponentsStep) Apply(ctx *tui.WizardContext) {
	ctx.ComponentsRepository = s.repo
}
