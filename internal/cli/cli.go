package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/indaco/npmhandler/internal/cliflags"
	"github.com/indaco/npmhandler/internal/commands/doctor"
	"github.com/indaco/npmhandler/internal/commands/initialize"
	"github.com/indaco/npmhandler/internal/commands/install"
	"github.com/indaco/npmhandler/internal/commands/list"
	"github.com/indaco/npmhandler/internal/logging"
	"github.com/indaco/npmhandler/internal/printer"
	"github.com/indaco/npmhandler/internal/tui"
	"github.com/indaco/npmhandler/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

func init() {
	// -v belongs to install --verbose.
	urfavecli.VersionFlag = &urfavecli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
		Local:   true,
	}
}

// New builds and returns the root CLI command,
// configuring all subcommands and flags for the npmhandler cli.
func New() *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "npmhandler",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Install the npm projects found inside a PHP project",
		EnableShellCompletion: true,
		Flags:                 cliflags.GlobalFlags(),
		Before:                before,
		// main reports errors and picks the exit code.
		ExitErrHandler: func(context.Context, *urfavecli.Command, error) {},
		Commands: []*urfavecli.Command{
			install.Run(),
			list.Run(),
			initialize.Run(),
			doctor.Run(),
		},
	}
}

func before(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
	printer.SetNoColor(cmd.Bool(cliflags.NoColor) || !tui.ColorEnabled())

	logger := logging.New(os.Stderr, cmd.Bool(cliflags.Debug))
	return logging.WithLogger(ctx, logger), nil
}
