package steps

import (
	"context"
	"path/filepath"

	"github.com/initializ/mlpipe/artifact"
	"github.com/initializ/mlpipe/pipeline"
	"github.com/initializ/mlpipe/source"
)

// DataCheckStep runs the local data_check component, comparing the cleaned
// sample against the reference dataset.
type DataCheckStep struct{}

func (s *DataCheckStep) Name() string { return pipeline.StepDataCheck }

func (s *DataCheckStep) Execute(ctx context.Context, rc *pipeline.RunContext) error {
	cfg := rc.Config

	ref := source.Reference{Path: filepath.Join("src", "data_check")}

	params := map[string]string{
		"csv":          artifact.Address(cfg.Main.ProjectName, cfg.Cleaning.OutputArtifact, cfg.Main.LatestTag),
		"ref":          artifact.Address(cfg.Main.ProjectName, cfg.Cleaning.OutputArtifact, cfg.Main.ReferenceTag),
		"kl_threshold": formatFloat(cfg.DataCheck.KLThreshold),
		"min_price":    formatFloat(cfg.ETL.MinPrice),
		"max_price":    formatFloat(cfg.ETL.MaxPrice),
	}

	return rc.Launch(ctx, s.Name(), ref, params)
}
