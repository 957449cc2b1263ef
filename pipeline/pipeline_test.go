package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeStep struct {
	name string
	err  error
	runs *[]string
}

func (s *fakeStep) Name() string { return s.name }

func (s *fakeStep) Execute(ctx context.Context, rc *RunContext) error {
	*s.runs = append(*s.runs, s.name)
	return s.err
}

func TestPipeline_RunsInOrder(t *testing.T) {
	var runs []string
	p := New(
		&fakeStep{name: "a", runs: &runs},
		&fakeStep{name: "b", runs: &runs},
		&fakeStep{name: "c", runs: &runs},
	)

	rc := NewRunContext(RunOptions{})
	if err := p.Run(context.Background(), rc); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if strings.Join(runs, ",") != "a,b,c" {
		t.Errorf("run order = %v", runs)
	}
}

func TestPipeline_StopsOnFirstError(t *testing.T) {
	var runs []string
	boom := errors.New("boom")
	p := New(
		&fakeStep{name: "a", runs: &runs},
		&fakeStep{name: "b", err: boom, runs: &runs},
		&fakeStep{name: "c", runs: &runs},
	)

	err := p.Run(context.Background(), NewRunContext(RunOptions{}))
	if err == nil {
		t.Fatal("Run() expected error")
	}
	if !errors.Is(err, boom) {
		t.Errorf("error chain should contain the step error, got %v", err)
	}
	if !strings.Contains(err.Error(), "step b") {
		t.Errorf("error %q should name the failing step", err)
	}
	if strings.Join(runs, ",") != "a,b" {
		t.Errorf("steps after the failure must not run, got %v", runs)
	}
}

func TestPipeline_Cancelled(t *testing.T) {
	var runs []string
	p := New(&fakeStep{name: "a", runs: &runs})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := p.Run(ctx, NewRunContext(RunOptions{})); err == nil {
		t.Fatal("Run() expected cancellation error")
	}
	if len(runs) != 0 {
		t.Errorf("no step should run after cancellation, got %v", runs)
	}
}
