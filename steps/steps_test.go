package steps

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/initializ/mlpipe/config"
	"github.com/initializ/mlpipe/pipeline"
	"github.com/initializ/mlpipe/runtime"
	"github.com/initializ/mlpipe/source"
)

// fakeResolver records references and returns a fixed directory per component.
type fakeResolver struct {
	refs []source.Reference
}

func (f *fakeResolver) Resolve(_ context.Context, ref source.Reference) (string, error) {
	f.refs = append(f.refs, ref)
	if ref.IsLocal() {
		return filepath.Join("/work", ref.Path), nil
	}
	return filepath.Join("/cache", ref.Subdir), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Main: config.MainConfig{
			ProjectName:          "nyc_airbnb",
			ExperimentName:       "development",
			Steps:                "all",
			ComponentsRepository: "https://github.com/initializ/mlpipe-components",
			ComponentsVersion:    "main",
			LatestTag:            "latest",
			ReferenceTag:         "reference",
			ProdTag:              "prod",
		},
		ETL: config.ETLConfig{
			Sample:   "sample1.csv",
			MinPrice: 10,
			MaxPrice: 350,
		},
		Cleaning: config.CleaningConfig{
			InputArtifact:  "sample.csv",
			OutputArtifact: "clean_sample.csv",
		},
		DataCheck: config.DataCheckConfig{KLThreshold: 0.2},
		Modeling: config.ModelingConfig{
			TestSize:         0.2,
			ValSize:          0.2,
			RandomSeed:       42,
			StratifyBy:       "neighbourhood_group",
			MaxTfidfFeatures: 5,
			TrainvalArtifact: "trainval_data.csv",
			TestArtifact:     "test_data.csv",
			OutputArtifact:   "random_forest_export",
			RandomForest:     map[string]any{"n_estimators": 100, "max_depth": 15},
		},
	}
}

// runStep executes one step against a mock launcher and returns the recorded
// submission and resolved reference.
func runStep(t *testing.T, s pipeline.Step, cfg *config.Config) (runtime.Submission, source.Reference) {
	t.Helper()

	launcher := runtime.NewMockLauncher()
	resolver := &fakeResolver{}
	rc := pipeline.NewRunContext(pipeline.RunOptions{
		WorkDir: "/work",
		TmpDir:  t.TempDir(),
	})
	rc.Config = cfg
	rc.Launcher = launcher
	rc.Resolver = resolver

	if err := s.Execute(context.Background(), rc); err != nil {
		t.Fatalf("%s Execute() error: %v", s.Name(), err)
	}

	subs := launcher.Submissions()
	if len(subs) != 1 {
		t.Fatalf("%s: expected 1 submission, got %d", s.Name(), len(subs))
	}
	if len(resolver.refs) != 1 {
		t.Fatalf("%s: expected 1 resolve, got %d", s.Name(), len(resolver.refs))
	}
	return subs[0], resolver.refs[0]
}

func TestDownloadStep(t *testing.T) {
	sub, ref := runStep(t, &DownloadStep{}, testConfig())

	if ref.Repository != "https://github.com/initializ/mlpipe-components" || ref.Subdir != "get_data" || ref.Version != "main" {
		t.Errorf("ref = %+v", ref)
	}

	want := map[string]string{
		"sample":               "sample1.csv",
		"artifact_name":        "sample.csv",
		"artifact_type":        "raw_data",
		"artifact_description": "Raw file as downloaded",
	}
	assertParams(t, sub.Parameters, want)
}

func TestBasicCleaningStep(t *testing.T) {
	sub, ref := runStep(t, &BasicCleaningStep{}, testConfig())

	if !ref.IsLocal() || ref.Path != filepath.Join("src", "basic_cleaning") {
		t.Errorf("ref = %+v", ref)
	}

	want := map[string]string{
		"input_artifact":     "nyc_airbnb/sample.csv:latest",
		"output_artifact":    "clean_sample.csv",
		"output_type":        "clean_sample",
		"output_description": "Data with outliers removed and date converted",
		"min_price":          "10",
		"max_price":          "350",
	}
	assertParams(t, sub.Parameters, want)
}

func TestDataCheckStep(t *testing.T) {
	sub, ref := runStep(t, &DataCheckStep{}, testConfig())

	if !ref.IsLocal() || ref.Path != filepath.Join("src", "data_check") {
		t.Errorf("ref = %+v", ref)
	}

	want := map[string]string{
		"csv":          "nyc_airbnb/clean_sample.csv:latest",
		"ref":          "nyc_airbnb/clean_sample.csv:reference",
		"kl_threshold": "0.2",
		"min_price":    "10",
		"max_price":    "350",
	}
	assertParams(t, sub.Parameters, want)
}

func TestDataSplitStep(t *testing.T) {
	sub, ref := runStep(t, &DataSplitStep{}, testConfig())

	if ref.Subdir != "train_val_test_split" {
		t.Errorf("ref = %+v", ref)
	}

	want := map[string]string{
		"input":       "nyc_airbnb/clean_sample.csv:latest",
		"test_size":   "0.2",
		"random_seed": "42",
		"stratify_by": "neighbourhood_group",
	}
	assertParams(t, sub.Parameters, want)
}

func TestTestRegressionModelStep(t *testing.T) {
	sub, ref := runStep(t, &TestRegressionModelStep{}, testConfig())

	if ref.Subdir != "test_regression_model" {
		t.Errorf("ref = %+v", ref)
	}

	want := map[string]string{
		"mlflow_model": "nyc_airbnb/random_forest_export:prod",
		"test_dataset": "nyc_airbnb/test_data.csv:latest",
	}
	assertParams(t, sub.Parameters, want)
}

func TestBuild_FiltersAndOrders(t *testing.T) {
	active := map[string]bool{
		pipeline.StepDataCheck: true,
		pipeline.StepDownload:  true,
	}

	built := Build(active)
	if len(built) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(built))
	}
	// Fixed pipeline order, not selection order.
	if built[0].Name() != pipeline.StepDownload || built[1].Name() != pipeline.StepDataCheck {
		t.Errorf("order = %s, %s", built[0].Name(), built[1].Name())
	}
}

func TestBuild_All(t *testing.T) {
	active := make(map[string]bool)
	for _, s := range pipeline.Order {
		active[s] = true
	}

	built := Build(active)
	if len(built) != len(pipeline.Order) {
		t.Fatalf("expected %d steps, got %d", len(pipeline.Order), len(built))
	}
	for i, s := range built {
		if s.Name() != pipeline.Order[i] {
			t.Errorf("step %d = %s, want %s", i, s.Name(), pipeline.Order[i])
		}
	}
}

func assertParams(t *testing.T, got, want map[string]string) {
	t.Helper()
	for k, v := range want {
		if got[k] != v {
			t.Errorf("param %s = %q, want %q", k, got[k], v)
		}
	}
	if len(got) != len(want) {
		t.Errorf("expected %d params, got %d: %v", len(want), len(got), got)
	}
}
