package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/initializ/mlpipe/config"
)

func TestScaffoldProjectWritesFiles(t *testing.T) {
	dir := t.TempDir()
	opts := &initOptions{
		ProjectName:    "nyc_airbnb",
		ExperimentName: "development",
		Steps:          "all",
	}

	if err := scaffoldProject(dir, opts); err != nil {
		t.Fatalf("scaffoldProject() error: %v", err)
	}

	cfgPath := filepath.Join(dir, "pipeline.yaml")
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		t.Fatalf("loading scaffolded config: %v", err)
	}
	if cfg.Main.ProjectName != "nyc_airbnb" {
		t.Errorf("expected project_name = nyc_airbnb, got %q", cfg.Main.ProjectName)
	}
	if cfg.Main.ExperimentName != "development" {
		t.Errorf("expected experiment_name = development, got %q", cfg.Main.ExperimentName)
	}
	if cfg.Modeling.RandomSeed != 42 {
		t.Errorf("expected random_seed = 42, got %d", cfg.Modeling.RandomSeed)
	}

	if _, err := os.Stat(filepath.Join(dir, ".env")); err != nil {
		t.Errorf("expected .env to be written: %v", err)
	}
	if st, err := os.Stat(filepath.Join(dir, "src")); err != nil || !st.IsDir() {
		t.Errorf("expected src/ directory to exist")
	}
}

func TestScaffoldProjectRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	opts := &initOptions{
		ProjectName:    "nyc_airbnb",
		ExperimentName: "development",
		Steps:          "all",
	}

	if err := scaffoldProject(dir, opts); err != nil {
		t.Fatalf("first scaffoldProject() error: %v", err)
	}
	if err := scaffoldProject(dir, opts); err == nil {
		t.Fatal("expected error when pipeline.yaml already exists")
	}

	opts.Force = true
	if err := scaffoldProject(dir, opts); err != nil {
		t.Fatalf("scaffoldProject() with Force error: %v", err)
	}
}

func TestScaffoldProjectPreservesEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("WANDB_API_KEY=secret\n"), 0600); err != nil {
		t.Fatal(err)
	}

	opts := &initOptions{
		ProjectName:    "nyc_airbnb",
		ExperimentName: "development",
		Steps:          "all",
	}
	if err := scaffoldProject(dir, opts); err != nil {
		t.Fatalf("scaffoldProject() error: %v", err)
	}

	data, err := os.ReadFile(envPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "WANDB_API_KEY=secret\n" {
		t.Errorf("existing .env was overwritten: %q", string(data))
	}
}
