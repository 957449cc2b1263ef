// Package validate provides validation for pipeline configurations.
package validate

import (
	"fmt"

	"github.com/initializ/mlpipe/config"
	"github.com/initializ/mlpipe/pipeline"
)

// ValidationResult holds errors and warnings from config validation.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// IsValid returns true if there are no validation errors.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// ValidateConfig checks a pipeline Config for errors and warnings, using
// the config's own steps value for the step-conditional checks.
func ValidateConfig(cfg *config.Config) *ValidationResult {
	return ValidateConfigFor(cfg, cfg.Main.Steps)
}

// ValidateConfigFor checks cfg against the step selection that will
// actually run. Checks tied to a step apply only when that step is in the
// selection, so an override of the config's steps is validated for what it
// selects, not for what the config file says.
func ValidateConfigFor(cfg *config.Config, stepSpec string) *ValidationResult {
	r := &ValidationResult{}

	if cfg.Main.ProjectName == "" {
		r.Errors = append(r.Errors, "main.project_name is required")
	}
	if cfg.Main.ExperimentName == "" {
		r.Errors = append(r.Errors, "main.experiment_name is required")
	}

	active, err := pipeline.ActiveSteps(stepSpec)
	if err != nil {
		r.Errors = append(r.Errors, fmt.Sprintf("main.steps: %v", err))
	}

	needsComponents := active[pipeline.StepDownload] || active[pipeline.StepDataSplit] || active[pipeline.StepTestModel]
	if needsComponents && cfg.Main.ComponentsRepository == "" {
		r.Errors = append(r.Errors, "main.components_repository is required for remote steps")
	}

	usesPrices := active[pipeline.StepBasicCleaning] || active[pipeline.StepDataCheck]
	if usesPrices && cfg.ETL.MinPrice >= cfg.ETL.MaxPrice {
		r.Errors = append(r.Errors, fmt.Sprintf("etl: min_price %v must be below max_price %v", cfg.ETL.MinPrice, cfg.ETL.MaxPrice))
	}

	if active[pipeline.StepDataCheck] && cfg.DataCheck.KLThreshold <= 0 {
		r.Errors = append(r.Errors, "data_check.kl_threshold must be positive")
	}

	if active[pipeline.StepDataSplit] && !isFraction(cfg.Modeling.TestSize) {
		r.Errors = append(r.Errors, fmt.Sprintf("modeling.test_size %v must be a fraction in (0, 1)", cfg.Modeling.TestSize))
	}
	if active[pipeline.StepTrain] {
		if !isFraction(cfg.Modeling.ValSize) {
			r.Errors = append(r.Errors, fmt.Sprintf("modeling.val_size %v must be a fraction in (0, 1)", cfg.Modeling.ValSize))
		}
		if len(cfg.Modeling.RandomForest) == 0 {
			r.Warnings = append(r.Warnings, "modeling.random_forest is empty; the trainer will use component defaults")
		}
	}

	if cfg.Modeling.StratifyBy == "" && (active[pipeline.StepDataSplit] || active[pipeline.StepTrain]) {
		r.Warnings = append(r.Warnings, "modeling.stratify_by is empty; splits will not be stratified")
	}

	return r
}

func isFraction(v float64) bool {
	return v > 0 && v < 1
}
