package pipeline

import (
	"context"
	"fmt"

	"github.com/initializ/mlpipe/config"
	"github.com/initializ/mlpipe/history"
	"github.com/initializ/mlpipe/runtime"
	"github.com/initializ/mlpipe/source"
)

// RunOptions carries shared settings for all pipeline steps.
type RunOptions struct {
	WorkDir string
	TmpDir  string
	Env     map[string]string
}

// RunContext carries all state through one pipeline invocation.
type RunContext struct {
	Opts     RunOptions
	Config   *config.Config
	Launcher runtime.Launcher
	Resolver source.Resolver
	Ledger   *history.Store // optional
	Logger   runtime.Logger
	Warnings []string
}

// NewRunContext creates a RunContext with the given options.
func NewRunContext(opts RunOptions) *RunContext {
	return &RunContext{Opts: opts}
}

// AddWarning appends a warning message to the run context.
func (rc *RunContext) AddWarning(msg string) {
	rc.Warnings = append(rc.Warnings, msg)
}

// Launch resolves the referenced component and submits it as one external
// run with the given parameters, blocking until the run completes. The run
// is recorded in the ledger when one is attached; ledger failures only warn.
func (rc *RunContext) Launch(ctx context.Context, step string, ref source.Reference, params map[string]string) error {
	dir, err := rc.Resolver.Resolve(ctx, ref)
	if err != nil {
		return fmt.Errorf("resolving component %s: %w", ref, err)
	}

	var ledgerID int64 = -1
	if rc.Ledger != nil {
		id, err := rc.Ledger.Begin(step, ref.String(), params)
		if err != nil {
			rc.AddWarning(fmt.Sprintf("run ledger: %v", err))
		} else {
			ledgerID = id
		}
	}

	result, err := rc.Launcher.Launch(ctx, runtime.Submission{
		Dir:        dir,
		EntryPoint: "main",
		Parameters: params,
		Env:        rc.Opts.Env,
	})

	if rc.Ledger != nil && ledgerID >= 0 {
		if ferr := rc.Ledger.Finish(ledgerID, err); ferr != nil {
			rc.AddWarning(fmt.Sprintf("run ledger: %v", ferr))
		}
	}

	if err != nil {
		return err
	}

	if rc.Logger != nil {
		rc.Logger.Info("run completed", map[string]any{
			"step":     step,
			"duration": result.Duration.String(),
		})
	}
	return nil
}
