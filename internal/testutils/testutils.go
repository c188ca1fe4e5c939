// Package testutils provides helpers shared by command tests.
package testutils

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/indaco/npmhandler/internal/cliflags"
	"github.com/urfave/cli/v3"
)

// BuildCLIForTests returns a root command carrying the global flags and the
// given subcommands.
func BuildCLIForTests(commands []*cli.Command) *cli.Command {
	return &cli.Command{
		Name:     "npmhandler",
		Flags:    cliflags.GlobalFlags(),
		Commands: commands,
		// Keep cli.Exit from terminating the test binary.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

// RunCLITest runs the app with args and fails the test on error.
func RunCLITest(t *testing.T, app *cli.Command, args []string) {
	t.Helper()
	if err := app.Run(context.Background(), args); err != nil {
		t.Fatalf("app.Run(%v) failed: %v", args, err)
	}
}

// RunCLITestAllowError runs the app with args and returns its error.
func RunCLITestAllowError(t *testing.T, app *cli.Command, args []string) error {
	t.Helper()
	return app.Run(context.Background(), args)
}

// CaptureStdout returns everything fn writes to os.Stdout.
func CaptureStdout(fn func()) (string, error) {
	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}
	os.Stdout = w

	done := make(chan struct{})
	var buf bytes.Buffer
	var copyErr error
	go func() {
		defer close(done)
		_, copyErr = io.Copy(&buf, r)
	}()

	defer func() {
		os.Stdout = orig
	}()
	fn()

	_ = w.Close()
	<-done
	_ = r.Close()

	return buf.String(), copyErr
}
