// Package handler runs npm install for every package.json found below a
// project root. It is driven by the host through the Event interface.
package handler

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/indaco/npmhandler/internal/config"
	"github.com/indaco/npmhandler/internal/core"
	"github.com/indaco/npmhandler/internal/discovery"
	"github.com/indaco/npmhandler/internal/logging"
	"github.com/indaco/npmhandler/internal/npm"
)

// Header is the first line written by every run.
const Header = "NPM Components"

// Handler installs the npm projects found under root.
type Handler struct {
	root     string
	fs       core.FileSystem
	runner   npm.Runner
	lookPath npm.LookPathFunc
}

// New creates a Handler for root using the OS file system and exec runner.
func New(root string) *Handler {
	return NewWithDeps(root, nil, nil, nil)
}

// NewWithDeps creates a Handler with custom dependencies. Nil arguments
// select the production defaults. This constructor enables dependency
// injection for testing.
func NewWithDeps(root string, fsys core.FileSystem, runner npm.Runner, lookPath npm.LookPathFunc) *Handler {
	if fsys == nil {
		fsys = core.NewOSFileSystem()
	}
	if runner == nil {
		runner = npm.NewExecRunner()
	}
	return &Handler{
		root:     root,
		fs:       fsys,
		runner:   runner,
		lookPath: lookPath,
	}
}

// Root returns the project root the handler scans.
func (h *Handler) Root() string {
	return h.root
}

// Install runs the installer in every located directory, in discovery order.
// A target whose installer cannot be resolved or started is reported and
// skipped; neither that nor a non-zero exit stops the run. The only error
// returned is a cancelled context.
func (h *Handler) Install(ctx context.Context, ev Event) (*Report, error) {
	logger := logging.FromContext(ctx)
	opts := config.FromExtra(ev.Extra())

	ev.Write(fmt.Sprintf("<info>%s</info>", Header), true)

	exe, resolveErr := npm.Resolve(ctx, h.fs, opts.NpmPath, h.root, h.lookPath)
	if resolveErr != nil {
		logger.Debug("installer not resolved", "npm-path", opts.NpmPath, "err", resolveErr)
	} else {
		logger.Debug("installer resolved", "npm-path", opts.NpmPath, "path", exe, "form", npm.Classify(opts.NpmPath))
	}

	args := npm.InstallArgs(ev.IsDevMode())
	verbose := ev.IsVerbose()
	report := &Report{}

	for loc := range h.walk(ctx, opts) {
		ev.Write(statusLine(loc), true)

		if resolveErr != nil {
			ev.Write(fmt.Sprintf("<error>%s</error>", resolveErr), true)
			report.add(Outcome{Location: loc, State: StateSkipped, Err: resolveErr})
			continue
		}

		result, err := h.runner.Run(ctx, loc.AbsDir, exe, args...)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			logger.Warn("installer did not start", "dir", loc.AbsDir, "err", err)
			ev.Write(fmt.Sprintf("<error>%s</error>", err), true)
			report.add(Outcome{Location: loc, State: StateSkipped, Err: err})
			continue
		}

		logger.Debug("installer finished",
			"manifest", loc.Manifest(),
			"exit", result.ExitCode,
			"run", result.RunID,
			"took", result.Duration)

		if verbose {
			if out := strings.TrimRight(string(result.Output), "\r\n"); out != "" {
				writeRaw(ev, out)
			}
		}

		report.add(Outcome{Location: loc, State: StateDone, Result: result})
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

// List writes the same header and status lines as Install without running
// anything, and returns the locations.
func (h *Handler) List(ctx context.Context, ev Event) ([]discovery.Location, error) {
	opts := config.FromExtra(ev.Extra())

	ev.Write(fmt.Sprintf("<info>%s</info>", Header), true)

	locations := make([]discovery.Location, 0)
	for loc := range h.walk(ctx, opts) {
		ev.Write(statusLine(loc), true)
		locations = append(locations, loc)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return locations, nil
}

func (h *Handler) walk(ctx context.Context, opts config.Options) iter.Seq[discovery.Location] {
	svc := discovery.NewService(h.fs, discovery.DefaultOptions(opts.ExcludePackages))
	return svc.Walk(ctx, h.root)
}

// writeRaw echoes installer output without marker interpretation when the
// event allows it.
func writeRaw(ev Event, message string) {
	if raw, ok := ev.(RawWriter); ok {
		raw.WriteRaw(message, true)
		return
	}
	ev.Write(message, true)
}

func statusLine(loc discovery.Location) string {
	return fmt.Sprintf("- Installing <comment>%s</comment>", loc.Manifest())
}
