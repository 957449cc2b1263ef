package steps

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/mlpipe/internal/tui"
	"github.com/initializ/mlpipe/internal/tui/components"
)

// StepsStep selects which pipeline steps run by default.
type StepsStep struct {
	list     components.SingleSelect
	complete bool
	value    string
	label    string
}

// NewStepsStep creates a new default-steps step.
func NewStepsStep(styles *tui.StyleSet) *StepsStep {
	items := []components.SingleSelectItem{
		{
			Label:       "Full pipeline",
			Value:       "all",
			Description: "Download, clean, check, split, and train on every run",
		},
		{
			Label:       "ETL only",
			Value:       "download,basic_cleaning,data_check",
			Description: "Fetch and prepare data without training",
		},
		{
			Label:       "Modeling only",
			Value:       "data_split,train_random_forest",
			Description: "Split and train against already-cleaned data",
		},
	}

	list := components.NewSingleSelect(
		items,
		styles.Theme.Accent,
		styles.Theme.Primary,
		styles.Theme.Secondary,
		styles.Theme.Dim,
		styles.Theme.Border,
		styles.Theme.ActiveBorder,
		styles.KbdKey,
		styles.KbdDesc,
	)

	return &StepsStep{list: list}
}

func (s *StepsStep) Title() string { return "Default steps" }

func (s *StepsStep) Init() tea.Cmd {
	return s.list.Init()
}

func (s *StepsStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	if s.complete {
		return s, nil
	}

	updated, cmd := s.list.Update(msg)
	s.list = updated

	if s.list.Done() {
		idx, value := s.list.Selected()
		s.complete = true
		s.value = value
		s.label = s.list.Items[idx].Label
		return s, func() tea.Msg { return tui.StepCompleteMsg{} }
	}

	return s, cmd
}

func (s *StepsStep) View(width int) string {
	return s.list.View(width)
}

func (s *StepsStep) Complete() bool {
	return s.complete
}

func (s *StepsStep) Summary() string {
	return s.label
}

func (s *StepsStep) Apply(ctx *tui.WizardContext) {
	ctx.Steps = s.value
}
