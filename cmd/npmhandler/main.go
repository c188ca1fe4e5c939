package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/indaco/npmhandler/internal/cli"
	"github.com/indaco/npmhandler/internal/printer"
	urfavecli "github.com/urfave/cli/v3"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, printer.Error(err.Error()))
		os.Exit(exitCode(err))
	}
}

// runCLI runs the npmhandler app until it finishes or the process is interrupted.
// Interrupting cancels the running npm child through its context.
func runCLI(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.New().Run(ctx, args)
}

func exitCode(err error) int {
	var coder urfavecli.ExitCoder
	if errors.As(err, &coder) && coder.ExitCode() != 0 {
		return coder.ExitCode()
	}
	return 1
}
