package steps

import (
	"context"

	"github.com/initializ/mlpipe/pipeline"
	"github.com/initializ/mlpipe/source"
)

// DownloadStep runs the remote get_data component, which fetches the raw
// dataset and uploads it as a tracked artifact.
type DownloadStep struct{}

func (s *DownloadStep) Name() string { return pipeline.StepDownload }

func (s *DownloadStep) Execute(ctx context.Context, rc *pipeline.RunContext) error {
	cfg := rc.Config

	ref := source.Reference{
		Repository: cfg.Main.ComponentsRepository,
		Subdir:     "get_data",
		Version:    cfg.Main.ComponentsVersion,
	}

	params := map[string]string{
		"sample":               cfg.ETL.Sample,
		"artifact_name":        "sample.csv",
		"artifact_type":        "raw_data",
		"artifact_description": "Raw file as downloaded",
	}

	return rc.Launch(ctx, s.Name(), ref, params)
}
