package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/initializ/mlpipe/artifact"
	"github.com/initializ/mlpipe/pipeline"
	"github.com/initializ/mlpipe/source"
)

// TrainRandomForestStep runs the local train_random_forest component. The
// random forest hyperparameters are serialized verbatim to a JSON file in
// the pipeline temp directory and passed by path, so the component receives
// them exactly as configured.
type TrainRandomForestStep struct{}

func (s *TrainRandomForestStep) Name() string { return pipeline.StepTrain }

func (s *TrainRandomForestStep) Execute(ctx context.Context, rc *pipeline.RunContext) error {
	cfg := rc.Config

	rfConfig, err := s.writeRFConfig(rc.Opts.TmpDir, cfg.Modeling.RandomForest)
	if err != nil {
		return err
	}

	ref := source.Reference{Path: filepath.Join("src", "train_random_forest")}

	params := map[string]string{
		"trainval_artifact":  artifact.Address(cfg.Main.ProjectName, cfg.Modeling.TrainvalArtifact, cfg.Main.LatestTag),
		"val_size":           formatFloat(cfg.Modeling.ValSize),
		"random_seed":        formatInt(cfg.Modeling.RandomSeed),
		"stratify_by":        cfg.Modeling.StratifyBy,
		"rf_config":          rfConfig,
		"max_tfidf_features": formatInt(cfg.Modeling.MaxTfidfFeatures),
		"output_artifact":    cfg.Modeling.OutputArtifact,
	}

	return rc.Launch(ctx, s.Name(), ref, params)
}

// writeRFConfig serializes the hyperparameter map and returns the file path.
func (s *TrainRandomForestStep) writeRFConfig(tmpDir string, rf map[string]any) (string, error) {
	data, err := json.Marshal(rf)
	if err != nil {
		return "", fmt.Errorf("encoding random forest config: %w", err)
	}

	path := filepath.Join(tmpDir, "rf_config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing random forest config: %w", err)
	}
	return path, nil
}
