package handler

import (
	"github.com/indaco/npmhandler/internal/discovery"
	"github.com/indaco/npmhandler/internal/npm"
)

// State is the terminal state of one install target.
type State int

const (
	// StateDone means the installer ran, whatever its exit code.
	StateDone State = iota

	// StateSkipped means the installer could not be resolved or started.
	StateSkipped
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateDone:
		return "done"
	case StateSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Outcome records what happened to one manifest location.
type Outcome struct {
	Location discovery.Location
	State    State

	// Result is set when State is StateDone.
	Result *npm.Result

	// Err is set when State is StateSkipped.
	Err error
}

// Failed reports whether the target was skipped or the installer exited non-zero.
func (o Outcome) Failed() bool {
	return o.State == StateSkipped || (o.Result != nil && !o.Result.Success())
}

// Report summarizes one install run. It is returned to the host and never persisted.
type Report struct {
	Outcomes []Outcome
}

func (r *Report) add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// Failures returns the outcomes that did not install cleanly.
func (r *Report) Failures() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Failed() {
			failed = append(failed, o)
		}
	}
	return failed
}

// HasFailures reports whether any target failed.
func (r *Report) HasFailures() bool {
	return len(r.Failures()) > 0
}
