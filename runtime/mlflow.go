package runtime

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"time"
)

// MLflowLauncher executes runs through the mlflow CLI.
type MLflowLauncher struct {
	bin    string
	logger Logger
}

// NewMLflowLauncher creates a launcher that shells out to the given mlflow
// binary. An empty bin defaults to "mlflow".
func NewMLflowLauncher(bin string, logger Logger) *MLflowLauncher {
	if bin == "" {
		bin = "mlflow"
	}
	return &MLflowLauncher{bin: bin, logger: logger}
}

// Launch starts `mlflow run` for the submission and blocks until the run
// completes. The run's stderr is piped line by line through the logger;
// stdout passes through unchanged.
func (m *MLflowLauncher) Launch(ctx context.Context, sub Submission) (*RunResult, error) {
	args := buildRunArgs(sub)

	cmd := exec.CommandContext(ctx, m.bin, args...)
	cmd.Dir = sub.Dir

	env := os.Environ()
	for k, v := range sub.Env {
		env = append(env, k+"="+v)
	}
	cmd.Env = env

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("stderr pipe: %w", err)
	}
	cmd.Stdout = os.Stdout

	m.logger.Info("launching run", map[string]any{
		"dir":         sub.Dir,
		"entry_point": sub.EntryPoint,
		"parameters":  len(sub.Parameters),
	})

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting mlflow run: %w", err)
	}

	m.pipeStderr(stderr)

	if err := cmd.Wait(); err != nil {
		return nil, fmt.Errorf("mlflow run in %s: %w", sub.Dir, err)
	}

	return &RunResult{Duration: time.Since(start)}, nil
}

func (m *MLflowLauncher) pipeStderr(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		m.logger.Debug("mlflow", map[string]any{"stderr": scanner.Text()})
	}
}

// buildRunArgs assembles the mlflow CLI arguments for a submission.
// Parameters are emitted in sorted key order so invocations are stable.
func buildRunArgs(sub Submission) []string {
	entry := sub.EntryPoint
	if entry == "" {
		entry = "main"
	}

	args := []string{"run", ".", "-e", entry}

	keys := make([]string, 0, len(sub.Parameters))
	for k := range sub.Parameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "-P", k+"="+sub.Parameters[k])
	}

	return args
}
