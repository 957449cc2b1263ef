package steps

import (
	"context"

	"github.com/initializ/mlpipe/artifact"
	"github.com/initializ/mlpipe/pipeline"
	"github.com/initializ/mlpipe/source"
)

// TestRegressionModelStep runs the remote test_regression_model component
// against the model export promoted to prod. It is never part of the
// default step set.
type TestRegressionModelStep struct{}

func (s *TestRegressionModelStep) Name() string { return pipeline.StepTestModel }

func (s *TestRegressionModelStep) Execute(ctx context.Context, rc *pipeline.RunContext) error {
	cfg := rc.Config

	ref := source.Reference{
		Repository: cfg.Main.ComponentsRepository,
		Subdir:     "test_regression_model",
		Version:    cfg.Main.ComponentsVersion,
	}

	params := map[string]string{
		"mlflow_model": artifact.Address(cfg.Main.ProjectName, cfg.Modeling.OutputArtifact, cfg.Main.ProdTag),
		"test_dataset": artifact.Address(cfg.Main.ProjectName, cfg.Modeling.TestArtifact, cfg.Main.LatestTag),
	}

	return rc.Launch(ctx, s.Name(), ref, params)
}
