package runtime

import (
	"context"
	"time"
)

// Submission describes one external run: a local project directory, the
// entry point to invoke, and the parameters to forward.
type Submission struct {
	Dir        string
	EntryPoint string
	Parameters map[string]string
	Env        map[string]string
}

// RunResult reports the outcome of a completed run.
type RunResult struct {
	Duration time.Duration
}

// Launcher submits a run and blocks until it completes.
type Launcher interface {
	Launch(ctx context.Context, sub Submission) (*RunResult, error)
}
