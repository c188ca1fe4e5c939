// Package initialize implements the "init" command, which writes the
// npm-handler options into the project descriptor.
package initialize

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/indaco/npmhandler/internal/cliflags"
	"github.com/indaco/npmhandler/internal/clix"
	"github.com/indaco/npmhandler/internal/config"
	"github.com/indaco/npmhandler/internal/core"
	"github.com/indaco/npmhandler/internal/discovery"
	"github.com/indaco/npmhandler/internal/printer"
	"github.com/indaco/npmhandler/internal/tui"
	"github.com/urfave/cli/v3"
)

// Swapped in tests.
var (
	isInteractive              = tui.IsInteractive
	prompter      tui.Prompter = tui.FormPrompter{}
)

// Run returns the "init" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Write npm-handler options to composer.json or .npmhandler.yaml",
		UsageText: "npmhandler init [--root dir] [--exclude dir]... [--npm-path path] [--yes]",
		Flags: []cli.Flag{
			cliflags.RootFlag(),
			&cli.StringSliceFlag{
				Name:    "exclude",
				Aliases: []string{"e"},
				Usage:   "Root-relative directory to skip (repeatable)",
			},
			&cli.StringFlag{
				Name:  "npm-path",
				Usage: "Installer executable: absolute, root-relative or a command in PATH",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Write without asking for confirmation",
			},
		},
		Action: runInitCmd,
	}
}

func runInitCmd(ctx context.Context, cmd *cli.Command) error {
	root, err := clix.ProjectRoot(cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fsys := core.NewOSFileSystem()
	desc, err := clix.LoadDescriptor(ctx, cmd, fsys, root)
	if err != nil {
		return err
	}

	opts := mergeFlags(config.FromExtra(desc.Extra), cmd)

	saver := config.NewSaver(fsys, nil)
	target := saver.Target(ctx, root)
	if desc.Found() {
		target = desc.Path
	}

	if !cmd.Bool("yes") && isInteractive() {
		tui.SetTheme(cmd.String(cliflags.Theme))
		ok, err := prompter.Confirm(
			fmt.Sprintf("Write npm-handler options to %s?", filepath.Base(target)),
			describe(opts),
		)
		if err != nil {
			return cli.Exit(fmt.Sprintf("prompt failed: %v", err), 1)
		}
		if !ok {
			printer.PrintFaint("Nothing written.")
			return nil
		}
	}

	if err := saver.SaveTo(ctx, target, opts); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	printer.PrintSuccess(fmt.Sprintf("✓ Wrote npm-handler options to %s", target))
	return nil
}

// mergeFlags overrides the loaded options with the ones given on the command line.
func mergeFlags(opts config.Options, cmd *cli.Command) config.Options {
	if excludes := cmd.StringSlice("exclude"); len(excludes) > 0 {
		opts.ExcludePackages = make([]string, 0, len(excludes))
		for _, e := range excludes {
			if rel := discovery.NormalizeRel(e); rel != "" {
				opts.ExcludePackages = append(opts.ExcludePackages, rel)
			}
		}
	}
	if npmPath := cmd.String("npm-path"); npmPath != "" {
		opts.NpmPath = npmPath
	}
	return opts
}

func describe(opts config.Options) string {
	excludes := "none"
	if len(opts.ExcludePackages) > 0 {
		excludes = fmt.Sprintf("%v", opts.ExcludePackages)
	}
	return fmt.Sprintf("npm-path: %s\nexclude-packages: %s", opts.NpmPath, excludes)
}
