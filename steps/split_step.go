package steps

import (
	"context"

	"github.com/initializ/mlpipe/artifact"
	"github.com/initializ/mlpipe/pipeline"
	"github.com/initializ/mlpipe/source"
)

// DataSplitStep runs the remote train_val_test_split component, segregating
// the held-out test set from the training data.
type DataSplitStep struct{}

func (s *DataSplitStep) Name() string { return pipeline.StepDataSplit }

func (s *DataSplitStep) Execute(ctx context.Context, rc *pipeline.RunContext) error {
	cfg := rc.Config

	ref := source.Reference{
		Repository: cfg.Main.ComponentsRepository,
		Subdir:     "train_val_test_split",
		Version:    cfg.Main.ComponentsVersion,
	}

	params := map[string]string{
		"input":       artifact.Address(cfg.Main.ProjectName, cfg.Cleaning.OutputArtifact, cfg.Main.LatestTag),
		"test_size":   formatFloat(cfg.Modeling.TestSize),
		"random_seed": formatInt(cfg.Modeling.RandomSeed),
		"stratify_by": cfg.Modeling.StratifyBy,
	}

	return rc.Launch(ctx, s.Name(), ref, params)
}
