// Package install implements the "install" command: npm install in every
// package.json directory of the project.
package install

import (
	"context"
	"fmt"
	"os"

	"github.com/indaco/npmhandler/internal/cliflags"
	"github.com/indaco/npmhandler/internal/clix"
	"github.com/indaco/npmhandler/internal/console"
	"github.com/indaco/npmhandler/internal/core"
	"github.com/indaco/npmhandler/internal/handler"
	"github.com/indaco/npmhandler/internal/logging"
	"github.com/indaco/npmhandler/internal/npm"
	"github.com/indaco/npmhandler/internal/tui"
	"github.com/urfave/cli/v3"
)

// isInteractive is swapped in tests.
var isInteractive = tui.IsInteractive

// Run returns the "install" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:      "install",
		Usage:     "Run npm install in every directory that holds a package.json",
		UsageText: "npmhandler install [--root dir] [--no-dev] [--verbose] [--fail-on-error]",
		Flags: []cli.Flag{
			cliflags.RootFlag(),
			&cli.BoolFlag{
				Name:  "no-dev",
				Usage: "Skip devDependencies (passes --production to npm)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Echo npm output after each project",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit non-zero when a project is skipped or npm exits non-zero",
			},
		},
		Action: runInstallCmd,
	}
}

func runInstallCmd(ctx context.Context, cmd *cli.Command) error {
	root, err := clix.ProjectRoot(cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fsys := core.NewOSFileSystem()
	desc, err := clix.LoadDescriptor(ctx, cmd, fsys, root)
	if err != nil {
		return err
	}

	verbose := cmd.Bool("verbose")
	logging.FromContext(ctx).Debug("install", "root", root, "descriptor", desc.Path, "verbose", verbose)

	ev := &handler.HostEvent{
		ExtraConfig: desc.Extra,
		DevMode:     !cmd.Bool("no-dev"),
		Verbose:     verbose,
		Output:      console.New(os.Stdout),
	}

	var runner npm.Runner = npm.NewExecRunner()
	if !verbose && isInteractive() {
		runner = npm.NewSpinnerRunner(runner)
	}

	report, err := handler.NewWithDeps(root, fsys, runner, nil).Install(ctx, ev)
	if err != nil {
		return cli.Exit(fmt.Sprintf("install interrupted: %v", err), 1)
	}

	if cmd.Bool("fail-on-error") && report.HasFailures() {
		return cli.Exit(fmt.Sprintf("%d of %d npm project(s) failed to install",
			len(report.Failures()), len(report.Outcomes)), 1)
	}
	return nil
}
