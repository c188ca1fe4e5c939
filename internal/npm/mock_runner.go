package npm

import (
	"context"
	"slices"
)

// RunCall records one MockRunner invocation.
type RunCall struct {
	Dir  string
	Name string
	Args []string
}

// MockRunner is a mock implementation of Runner for testing.
type MockRunner struct {
	RunFn func(ctx context.Context, dir, name string, args ...string) (*Result, error)
	Calls []RunCall
}

// Verify MockRunner implements Runner.
var _ Runner = (*MockRunner)(nil)

// Run implements Runner.
func (m *MockRunner) Run(ctx context.Context, dir, name string, args ...string) (*Result, error) {
	m.Calls = append(m.Calls, RunCall{Dir: dir, Name: name, Args: slices.Clone(args)})
	if m.RunFn != nil {
		return m.RunFn(ctx, dir, name, args...)
	}
	return &Result{RunID: "mock"}, nil
}
