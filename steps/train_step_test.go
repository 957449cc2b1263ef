package steps

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestTrainRandomForestStep(t *testing.T) {
	sub, ref := runStep(t, &TrainRandomForestStep{}, testConfig())

	if !ref.IsLocal() || ref.Path != filepath.Join("src", "train_random_forest") {
		t.Errorf("ref = %+v", ref)
	}

	want := map[string]string{
		"trainval_artifact":  "nyc_airbnb/trainval_data.csv:latest",
		"val_size":           "0.2",
		"random_seed":        "42",
		"stratify_by":        "neighbourhood_group",
		"rf_config":          sub.Parameters["rf_config"],
		"max_tfidf_features": "5",
		"output_artifact":    "random_forest_export",
	}
	assertParams(t, sub.Parameters, want)

	// The hyperparameter file must hold the configured values verbatim.
	data, err := os.ReadFile(sub.Parameters["rf_config"])
	if err != nil {
		t.Fatalf("reading rf_config: %v", err)
	}
	var rf map[string]any
	if err := json.Unmarshal(data, &rf); err != nil {
		t.Fatalf("unmarshalling rf_config: %v", err)
	}
	if rf["n_estimators"] != float64(100) {
		t.Errorf("n_estimators = %v, want 100", rf["n_estimators"])
	}
	if rf["max_depth"] != float64(15) {
		t.Errorf("max_depth = %v, want 15", rf["max_depth"])
	}
	if filepath.Base(sub.Parameters["rf_config"]) != "rf_config.json" {
		t.Errorf("rf_config path = %q", sub.Parameters["rf_config"])
	}
}
