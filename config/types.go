// Package config holds configuration types for pipeline.yaml.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level pipeline.yaml configuration.
type Config struct {
	Main      MainConfig      `yaml:"main"`
	ETL       ETLConfig       `yaml:"etl"`
	Cleaning  CleaningConfig  `yaml:"basic_cleaning"`
	DataCheck DataCheckConfig `yaml:"data_check"`
	Modeling  ModelingConfig  `yaml:"modeling"`
}

// MainConfig identifies the experiment and selects the steps to run.
type MainConfig struct {
	ProjectName          string `yaml:"project_name"`
	ExperimentName       string `yaml:"experiment_name"`
	Steps                string `yaml:"steps,omitempty"`
	ComponentsRepository string `yaml:"components_repository,omitempty"`
	ComponentsVersion    string `yaml:"components_version,omitempty"`
	LatestTag            string `yaml:"latest_tag,omitempty"`
	ReferenceTag         string `yaml:"reference_tag,omitempty"`
	ProdTag              string `yaml:"prod_tag,omitempty"`
}

// ETLConfig configures the raw data download and price bounds.
type ETLConfig struct {
	Sample   string  `yaml:"sample"`
	MinPrice float64 `yaml:"min_price"`
	MaxPrice float64 `yaml:"max_price"`
}

// CleaningConfig names the artifacts consumed and produced by basic_cleaning.
type CleaningConfig struct {
	InputArtifact  string `yaml:"input_artifact"`
	OutputArtifact string `yaml:"output_artifact"`
}

// DataCheckConfig holds thresholds for the data validation step.
type DataCheckConfig struct {
	KLThreshold float64 `yaml:"kl_threshold"`
}

// ModelingConfig configures the split and training steps. RandomForest is
// free-form and serialized verbatim for the training component.
type ModelingConfig struct {
	TestSize         float64        `yaml:"test_size"`
	ValSize          float64        `yaml:"val_size"`
	RandomSeed       int            `yaml:"random_seed"`
	StratifyBy       string         `yaml:"stratify_by"`
	MaxTfidfFeatures int            `yaml:"max_tfidf_features"`
	TrainvalArtifact string         `yaml:"trainval_artifact"`
	TestArtifact     string         `yaml:"test_artifact"`
	OutputArtifact   string         `yaml:"output_artifact"`
	RandomForest     map[string]any `yaml:"random_forest,omitempty"`
}

// ParseConfig parses raw YAML bytes into a Config, applies defaults, and
// validates required fields.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing pipeline config: %w", err)
	}

	if cfg.Main.ProjectName == "" {
		return nil, fmt.Errorf("pipeline config: main.project_name is required")
	}
	if cfg.Main.ExperimentName == "" {
		return nil, fmt.Errorf("pipeline config: main.experiment_name is required")
	}

	if cfg.Main.Steps == "" {
		cfg.Main.Steps = "all"
	}
	if cfg.Main.ComponentsVersion == "" {
		cfg.Main.ComponentsVersion = "main"
	}
	if cfg.Main.LatestTag == "" {
		cfg.Main.LatestTag = "latest"
	}
	if cfg.Main.ReferenceTag == "" {
		cfg.Main.ReferenceTag = "reference"
	}
	if cfg.Main.ProdTag == "" {
		cfg.Main.ProdTag = "prod"
	}

	return &cfg, nil
}
