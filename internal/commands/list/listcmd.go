// Package list implements the "list" command, a dry run of install.
package list

import (
	"context"
	"fmt"
	"os"

	"github.com/indaco/npmhandler/internal/cliflags"
	"github.com/indaco/npmhandler/internal/clix"
	"github.com/indaco/npmhandler/internal/console"
	"github.com/indaco/npmhandler/internal/core"
	"github.com/indaco/npmhandler/internal/handler"
	"github.com/urfave/cli/v3"
)

// Run returns the "list" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "Show the package.json files install would process",
		UsageText: "npmhandler list [--root dir]",
		Flags:     []cli.Flag{cliflags.RootFlag()},
		Action:    runListCmd,
	}
}

func runListCmd(ctx context.Context, cmd *cli.Command) error {
	root, err := clix.ProjectRoot(cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fsys := core.NewOSFileSystem()
	desc, err := clix.LoadDescriptor(ctx, cmd, fsys, root)
	if err != nil {
		return err
	}

	ev := &handler.HostEvent{
		ExtraConfig: desc.Extra,
		Output:      console.New(os.Stdout),
	}

	if _, err := handler.NewWithDeps(root, fsys, nil, nil).List(ctx, ev); err != nil {
		return cli.Exit(fmt.Sprintf("listing interrupted: %v", err), 1)
	}
	return nil
}
