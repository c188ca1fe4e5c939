// Package doctor implements the "doctor" command, which checks the
// npm-handler setup of a project without installing anything.
package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/indaco/npmhandler/internal/cliflags"
	"github.com/indaco/npmhandler/internal/clix"
	"github.com/indaco/npmhandler/internal/config"
	"github.com/indaco/npmhandler/internal/core"
	"github.com/indaco/npmhandler/internal/printer"
	"github.com/urfave/cli/v3"
)

// Run returns the "doctor" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:      "doctor",
		Usage:     "Check the npm-handler configuration and installer",
		UsageText: "npmhandler doctor [--root dir]",
		Flags:     []cli.Flag{cliflags.RootFlag()},
		Action:    runDoctorCmd,
	}
}

func runDoctorCmd(ctx context.Context, cmd *cli.Command) error {
	root, err := clix.ProjectRoot(cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	validator := config.NewValidator(core.NewOSFileSystem(), root, cmd.String(cliflags.Config), nil)
	results, err := validator.Validate(ctx)
	if err != nil {
		return cli.Exit(fmt.Sprintf("doctor interrupted: %v", err), 1)
	}

	printer.PrintInfo(fmt.Sprintf("Checking %s", root))
	for _, r := range results {
		printResult(r)
	}

	errs := config.ErrorCount(results)
	warnings := config.WarningCount(results)
	summary := fmt.Sprintf("%d check(s), %d error(s), %d warning(s)", len(results), errs, warnings)

	if config.HasErrors(results) {
		return cli.Exit(summary, 1)
	}
	printer.PrintFaint(summary)
	return nil
}

func printResult(r config.ValidationResult) {
	line := fmt.Sprintf("[%s] %s", r.Category, r.Message)
	switch {
	case r.Warning:
		printer.PrintWarning("! " + line)
	case r.Passed:
		printer.PrintSuccess("✓ " + line)
	default:
		printer.PrintError("✗ " + line)
	}

	for _, hint := range strings.Split(strings.TrimRight(r.Suggestion, "\n"), "\n") {
		if hint != "" {
			printer.PrintFaint("    " + hint)
		}
	}
}
