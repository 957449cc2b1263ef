package config

import (
	"strings"
	"testing"
)

const sampleYAML = `
main:
  project_name: nyc_airbnb
  experiment_name: development
  steps: all
  components_repository: https://github.com/initializ/mlpipe-components
etl:
  sample: sample1.csv
  min_price: 10
  max_price: 350
basic_cleaning:
  input_artifact: sample.csv
  output_artifact: clean_sample.csv
data_check:
  kl_threshold: 0.2
modeling:
  test_size: 0.2
  val_size: 0.2
  random_seed: 42
  stratify_by: neighbourhood_group
  max_tfidf_features: 5
  trainval_artifact: trainval_data.csv
  test_artifact: test_data.csv
  output_artifact: random_forest_export
  random_forest:
    n_estimators: 100
    max_depth: 15
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}

	if cfg.Main.ProjectName != "nyc_airbnb" {
		t.Errorf("ProjectName = %q, want nyc_airbnb", cfg.Main.ProjectName)
	}
	if cfg.ETL.MinPrice != 10 || cfg.ETL.MaxPrice != 350 {
		t.Errorf("price bounds = %v..%v, want 10..350", cfg.ETL.MinPrice, cfg.ETL.MaxPrice)
	}
	if cfg.DataCheck.KLThreshold != 0.2 {
		t.Errorf("KLThreshold = %v, want 0.2", cfg.DataCheck.KLThreshold)
	}
	if cfg.Modeling.RandomForest["n_estimators"] != 100 {
		t.Errorf("random_forest n_estimators = %v, want 100", cfg.Modeling.RandomForest["n_estimators"])
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("main:\n  project_name: p\n  experiment_name: e\n"))
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}

	if cfg.Main.Steps != "all" {
		t.Errorf("Steps = %q, want all", cfg.Main.Steps)
	}
	if cfg.Main.ComponentsVersion != "main" {
		t.Errorf("ComponentsVersion = %q, want main", cfg.Main.ComponentsVersion)
	}
	if cfg.Main.LatestTag != "latest" || cfg.Main.ReferenceTag != "reference" || cfg.Main.ProdTag != "prod" {
		t.Errorf("tags = %q/%q/%q, want latest/reference/prod",
			cfg.Main.LatestTag, cfg.Main.ReferenceTag, cfg.Main.ProdTag)
	}
}

func TestParseConfig_MissingRequired(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"no project", "main:\n  experiment_name: e\n", "project_name"},
		{"no experiment", "main:\n  project_name: p\n", "experiment_name"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tc.yaml))
			if err == nil {
				t.Fatal("ParseConfig() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %s", err, tc.want)
			}
		})
	}
}

func TestParseConfig_BadYAML(t *testing.T) {
	if _, err := ParseConfig([]byte("main: [")); err == nil {
		t.Fatal("ParseConfig() expected error for malformed YAML")
	}
}
