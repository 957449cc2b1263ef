package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/initializ/mlpipe/config"
	"github.com/initializ/mlpipe/history"
	"github.com/initializ/mlpipe/pipeline"
	"github.com/initializ/mlpipe/runtime"
	"github.com/initializ/mlpipe/source"
	"github.com/initializ/mlpipe/steps"
	"github.com/initializ/mlpipe/validate"
)

var (
	runSteps     string
	runDryRun    bool
	runEnvFile   string
	runMLflowBin string
	runNoLedger  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the pipeline steps in order",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&runSteps, "steps", "", "comma-separated steps to run (overrides config, default \"all\")")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "resolve components and print planned runs without launching")
	runCmd.Flags().StringVar(&runEnvFile, "env", ".env", "path to .env file")
	runCmd.Flags().StringVar(&runMLflowBin, "mlflow-bin", "", "mlflow executable to launch runs with")
	runCmd.Flags().BoolVar(&runNoLedger, "no-ledger", false, "skip recording runs in the local history ledger")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfgPath := cfgFile
	if !filepath.IsAbs(cfgPath) {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		cfgPath = filepath.Join(wd, cfgPath)
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Validate against the selection that will actually run, not the
	// config file's steps value.
	stepSpec := cfg.Main.Steps
	if runSteps != "" {
		stepSpec = runSteps
	}

	result := validate.ValidateConfigFor(cfg, stepSpec)
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "WARNING: %s\n", w)
	}
	if !result.IsValid() {
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", e)
		}
		return fmt.Errorf("config validation failed: %d error(s)", len(result.Errors))
	}

	active, err := pipeline.ActiveSteps(stepSpec)
	if err != nil {
		return err
	}

	workDir := filepath.Dir(cfgPath)

	envPath := runEnvFile
	if !filepath.IsAbs(envPath) {
		envPath = filepath.Join(workDir, envPath)
	}
	envVars, err := runtime.LoadEnvFile(envPath)
	if err != nil {
		return fmt.Errorf("loading env file: %w", err)
	}
	for k, v := range runtime.TrackingEnv(cfg) {
		envVars[k] = v
	}

	tmpDir, err := os.MkdirTemp("", "mlpipe-")
	if err != nil {
		return fmt.Errorf("creating temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir) //nolint:errcheck

	logger := runtime.NewJSONLogger(os.Stderr, verbose)

	var launcher runtime.Launcher
	var mock *runtime.MockLauncher
	if runDryRun {
		mock = runtime.NewMockLauncher()
		launcher = mock
	} else {
		launcher = runtime.NewMLflowLauncher(runMLflowBin, logger)
	}

	rc := pipeline.NewRunContext(pipeline.RunOptions{
		WorkDir: workDir,
		TmpDir:  tmpDir,
		Env:     envVars,
	})
	rc.Config = cfg
	rc.Launcher = launcher
	rc.Resolver = source.NewResolver(workDir, filepath.Join(workDir, ".mlpipe", "components"))
	rc.Logger = logger

	if !runDryRun && !runNoLedger {
		ledger, err := history.Open(filepath.Join(workDir, ".mlpipe", "history.db"))
		if err != nil {
			rc.AddWarning(fmt.Sprintf("run ledger unavailable: %v", err))
		} else {
			rc.Ledger = ledger
			defer ledger.Close() //nolint:errcheck
		}
	}

	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nShutting down...")
		cancel()
	}()

	printRunBanner(cfg, active, stepSpec)

	p := pipeline.New(steps.Build(active)...)
	runErr := p.Run(ctx, rc)

	// Warnings accumulated during the run (ledger trouble and the like)
	// are reported whether or not the pipeline succeeded.
	for _, w := range rc.Warnings {
		fmt.Fprintf(os.Stderr, "WARNING: %s\n", w)
	}
	if runErr != nil {
		return runErr
	}

	if runDryRun {
		printPlannedRuns(mock)
	}

	fmt.Fprintln(os.Stderr, "Pipeline completed.")
	return nil
}

func printRunBanner(cfg *config.Config, active map[string]bool, stepSpec string) {
	var selected []string
	for _, name := range pipeline.Order {
		if active[name] {
			selected = append(selected, name)
		}
	}

	fmt.Fprintln(os.Stderr, "  mlpipe "+appVersion)
	fmt.Fprintf(os.Stderr, "  Project:     %s\n", cfg.Main.ProjectName)
	fmt.Fprintf(os.Stderr, "  Experiment:  %s\n", cfg.Main.ExperimentName)
	fmt.Fprintf(os.Stderr, "  Steps:       %s\n", strings.Join(selected, " -> "))
	if runDryRun {
		fmt.Fprintln(os.Stderr, "  Mode:        dry-run (no runs will be launched)")
	}
	fmt.Fprintln(os.Stderr)
}

func printPlannedRuns(mock *runtime.MockLauncher) {
	for i, sub := range mock.Submissions() {
		fmt.Printf("[%d] %s (entry point: %s)\n", i+1, sub.Dir, sub.EntryPoint)

		keys := make([]string, 0, len(sub.Parameters))
		for k := range sub.Parameters {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("      -P %s=%s\n", k, sub.Parameters[k])
		}
	}
}
