package runtime

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/initializ/mlpipe/config"
)

func TestParseEnvVars(t *testing.T) {
	input := `
# comment
WANDB_API_KEY=abc123
export MLFLOW_TRACKING_URI="http://localhost:5000"
QUOTED='single'
MALFORMED LINE
`
	env, err := ParseEnvVars(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseEnvVars error: %v", err)
	}

	if env["WANDB_API_KEY"] != "abc123" {
		t.Errorf("WANDB_API_KEY = %q", env["WANDB_API_KEY"])
	}
	if env["MLFLOW_TRACKING_URI"] != "http://localhost:5000" {
		t.Errorf("MLFLOW_TRACKING_URI = %q, quotes should be stripped", env["MLFLOW_TRACKING_URI"])
	}
	if env["QUOTED"] != "single" {
		t.Errorf("QUOTED = %q", env["QUOTED"])
	}
	if len(env) != 3 {
		t.Errorf("expected 3 vars, got %d: %v", len(env), env)
	}
}

func TestLoadEnvFile_Missing(t *testing.T) {
	env, err := LoadEnvFile(filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatalf("LoadEnvFile error: %v", err)
	}
	if len(env) != 0 {
		t.Errorf("expected empty map, got %v", env)
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("A=1\nB=2\n"), 0644); err != nil {
		t.Fatalf("writing env file: %v", err)
	}
	env, err := LoadEnvFile(path)
	if err != nil {
		t.Fatalf("LoadEnvFile error: %v", err)
	}
	if env["A"] != "1" || env["B"] != "2" {
		t.Errorf("env = %v", env)
	}
}

func TestTrackingEnv(t *testing.T) {
	cfg := &config.Config{}
	cfg.Main.ProjectName = "nyc_airbnb"
	cfg.Main.ExperimentName = "development"

	env := TrackingEnv(cfg)
	if env["WANDB_PROJECT"] != "nyc_airbnb" {
		t.Errorf("WANDB_PROJECT = %q", env["WANDB_PROJECT"])
	}
	if env["WANDB_RUN_GROUP"] != "development" {
		t.Errorf("WANDB_RUN_GROUP = %q", env["WANDB_RUN_GROUP"])
	}
}
