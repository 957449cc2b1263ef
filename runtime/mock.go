package runtime

import (
	"context"
	"sync"
)

// MockLauncher records submissions without executing anything. It backs
// tests and the run command's --dry-run mode.
type MockLauncher struct {
	mu          sync.Mutex
	submissions []Submission

	// Err, when set, is returned by every Launch call.
	Err error
}

// NewMockLauncher creates an empty MockLauncher.
func NewMockLauncher() *MockLauncher {
	return &MockLauncher{}
}

// Launch records the submission and returns immediately.
func (m *MockLauncher) Launch(ctx context.Context, sub Submission) (*RunResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.submissions = append(m.submissions, sub)
	m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return &RunResult{}, nil
}

// Submissions returns a copy of all recorded submissions.
func (m *MockLauncher) Submissions() []Submission {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Submission, len(m.submissions))
	copy(out, m.submissions)
	return out
}
