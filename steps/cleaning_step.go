package steps

import (
	"context"
	"path/filepath"

	"github.com/initializ/mlpipe/artifact"
	"github.com/initializ/mlpipe/pipeline"
	"github.com/initializ/mlpipe/source"
)

// BasicCleaningStep runs the local basic_cleaning component, which drops
// price outliers and normalizes dates before re-uploading the sample.
type BasicCleaningStep struct{}

func (s *BasicCleaningStep) Name() string { return pipeline.StepBasicCleaning }

func (s *BasicCleaningStep) Execute(ctx context.Context, rc *pipeline.RunContext) error {
	cfg := rc.Config

	ref := source.Reference{Path: filepath.Join("src", "basic_cleaning")}

	params := map[string]string{
		"input_artifact":     artifact.Address(cfg.Main.ProjectName, cfg.Cleaning.InputArtifact, cfg.Main.LatestTag),
		"output_artifact":    cfg.Cleaning.OutputArtifact,
		"output_type":        "clean_sample",
		"output_description": "Data with outliers removed and date converted",
		"min_price":          formatFloat(cfg.ETL.MinPrice),
		"max_price":          formatFloat(cfg.ETL.MaxPrice),
	}

	return rc.Launch(ctx, s.Name(), ref, params)
}
