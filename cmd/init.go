package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/initializ/mlpipe/config"
	"github.com/initializ/mlpipe/internal/tui"
	wizardsteps "github.com/initializ/mlpipe/internal/tui/steps"
)

// initOptions holds the collected options for project scaffolding.
type initOptions struct {
	ProjectName          string
	ExperimentName       string
	ComponentsRepository string
	Steps                string
	Force                bool
	NonInteractive       bool
}

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Initialize a new pipeline project",
	Long:  "Scaffold a pipeline.yaml, a .env template, and a src/ directory for local step components.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringP("name", "n", "", "tracking project name")
	initCmd.Flags().StringP("experiment", "e", "", "experiment (run group) name")
	initCmd.Flags().String("components-repository", "", "git repository for shared components")
	initCmd.Flags().String("steps", "all", "default steps selection")
	initCmd.Flags().Bool("non-interactive", false, "run without the interactive wizard (requires --name and --experiment)")
	initCmd.Flags().Bool("force", false, "overwrite an existing pipeline.yaml")
}

func runInit(cmd *cobra.Command, args []string) error {
	targetDir := "."
	if len(args) > 0 {
		targetDir = args[0]
	}

	opts := &initOptions{}
	opts.ProjectName, _ = cmd.Flags().GetString("name")
	opts.ExperimentName, _ = cmd.Flags().GetString("experiment")
	opts.ComponentsRepository, _ = cmd.Flags().GetString("components-repository")
	opts.Steps, _ = cmd.Flags().GetString("steps")
	opts.NonInteractive, _ = cmd.Flags().GetBool("non-interactive")
	opts.Force, _ = cmd.Flags().GetBool("force")

	interactive := !opts.NonInteractive && term.IsTerminal(int(os.Stdin.Fd()))

	if interactive {
		if err := runWizard(opts); err != nil {
			return err
		}
	} else {
		if opts.ProjectName == "" || opts.ExperimentName == "" {
			return fmt.Errorf("non-interactive init requires --name and --experiment")
		}
	}

	return scaffoldProject(targetDir, opts)
}

// runWizard collects init options through the interactive TUI.
func runWizard(opts *initOptions) error {
	theme := tui.DetectTheme(themeOverride)
	styles := tui.NewStyleSet(theme)

	steps := []tui.Step{
		wizardsteps.NewProjectStep(styles, opts.ProjectName),
		wizardsteps.NewExperimentStep(styles, opts.ExperimentName),
		wizardsteps.NewComponentsStep(styles, opts.ComponentsRepository),
		wizardsteps.NewStepsStep(styles),
		wizardsteps.NewReviewStep(styles),
	}

	model := tui.NewWizardModel(theme, steps, appVersion)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	wizard, ok := final.(tui.WizardModel)
	if !ok {
		return fmt.Errorf("unexpected wizard model type %T", final)
	}
	if wizard.Err() != nil {
		return wizard.Err()
	}
	if !wizard.Done() {
		return fmt.Errorf("wizard cancelled")
	}

	ctx := wizard.Context()
	opts.ProjectName = ctx.ProjectName
	opts.ExperimentName = ctx.ExperimentName
	opts.ComponentsRepository = ctx.ComponentsRepository
	if ctx.Steps != "" {
		opts.Steps = ctx.Steps
	}
	return nil
}

const envTemplate = `# Credentials for experiment tracking. Fill these in before running
# the pipeline; mlpipe loads this file and forwards it to every run.
WANDB_API_KEY=
# MLFLOW_TRACKING_URI=
`

// scaffoldProject writes pipeline.yaml, .env, and the src/ directory.
func scaffoldProject(dir string, opts *initOptions) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}

	cfgPath := filepath.Join(dir, "pipeline.yaml")
	if _, err := os.Stat(cfgPath); err == nil && !opts.Force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgPath)
	}

	cfg := defaultConfig(opts)
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}
	if err := os.WriteFile(cfgPath, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", cfgPath, err)
	}

	envPath := filepath.Join(dir, ".env")
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		if err := os.WriteFile(envPath, []byte(envTemplate), 0600); err != nil {
			return fmt.Errorf("writing %s: %w", envPath, err)
		}
	}

	if err := os.MkdirAll(filepath.Join(dir, "src"), 0755); err != nil {
		return fmt.Errorf("creating src directory: %w", err)
	}

	fmt.Printf("Initialized pipeline project in %s\n", dir)
	fmt.Println("  pipeline.yaml  pipeline configuration")
	fmt.Println("  .env           tracking credentials (fill in WANDB_API_KEY)")
	fmt.Println("  src/           local step components")
	fmt.Println("\nNext: mlpipe validate && mlpipe run")
	return nil
}

// defaultConfig builds a starter configuration with workable defaults for
// every step.
func defaultConfig(opts *initOptions) *config.Config {
	return &config.Config{
		Main: config.MainConfig{
			ProjectName:          opts.ProjectName,
			ExperimentName:       opts.ExperimentName,
			Steps:                opts.Steps,
			ComponentsRepository: opts.ComponentsRepository,
			ComponentsVersion:    "main",
		},
		ETL: config.ETLConfig{
			Sample:   "sample1.csv",
			MinPrice: 10,
			MaxPrice: 350,
		},
		Cleaning: config.CleaningConfig{
			InputArtifact:  "sample.csv",
			OutputArtifact: "clean_sample.csv",
		},
		DataCheck: config.DataCheckConfig{
			KLThreshold: 0.2,
		},
		Modeling: config.ModelingConfig{
			TestSize:         0.2,
			ValSize:          0.2,
			RandomSeed:       42,
			StratifyBy:       "neighbourhood_group",
			MaxTfidfFeatures: 5,
			TrainvalArtifact: "trainval_data.csv",
			TestArtifact:     "test_data.csv",
			OutputArtifact:   "random_forest_export",
			RandomForest: map[string]any{
				"n_estimators":      100,
				"max_depth":         15,
				"min_samples_split": 4,
				"min_samples_leaf":  3,
				"n_jobs":            -1,
				"criterion":         "squared_error",
				"max_features":      0.5,
				"oob_score":         true,
			},
		},
	}
}
