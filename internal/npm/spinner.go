package npm

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerRunner shows a terminal spinner while the wrapped Runner works.
// It is meant for interactive, non-verbose sessions only.
type SpinnerRunner struct {
	next Runner
	spin func(ctx context.Context, title string) error
}

// NewSpinnerRunner wraps next with the huh spinner.
func NewSpinnerRunner(next Runner) *SpinnerRunner {
	return &SpinnerRunner{next: next, spin: runSpinner}
}

// Verify SpinnerRunner implements Runner.
var _ Runner = (*SpinnerRunner)(nil)

// Run shows the spinner until the wrapped invocation returns.
func (s *SpinnerRunner) Run(ctx context.Context, dir, name string, args ...string) (*Result, error) {
	spinCtx, stop := context.WithCancel(ctx)
	done := make(chan struct{})
	title := fmt.Sprintf("%s %s", filepath.Base(name), filepath.Base(dir))

	go func() {
		defer close(done)
		// The spinner is cosmetic; its error is irrelevant to the install.
		_ = s.spin(spinCtx, title)
	}()

	result, err := s.next.Run(ctx, dir, name, args...)
	stop()
	<-done

	return result, err
}

// runSpinner blocks until ctx is done.
func runSpinner(ctx context.Context, title string) error {
	return spinner.New().
		Type(spinner.Dots).
		Title(title).
		Context(ctx).
		Run()
}
