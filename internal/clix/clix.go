// Package clix holds helpers that turn parsed command flags into the values
// the handler needs.
package clix

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/indaco/npmhandler/internal/cliflags"
	"github.com/indaco/npmhandler/internal/config"
	"github.com/indaco/npmhandler/internal/core"
	"github.com/urfave/cli/v3"
)

// ProjectRoot returns the absolute, symlink-free project root from --root.
func ProjectRoot(cmd *cli.Command) (string, error) {
	root := cmd.String(cliflags.Root)
	if root == "" {
		root = cliflags.DefaultRoot
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project root %q: %w", root, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("project root %q is not accessible: %w", root, err)
	}
	return resolved, nil
}

// LoadDescriptor reads the project descriptor, honoring --config.
func LoadDescriptor(ctx context.Context, cmd *cli.Command, fsys core.FileSystem, root string) (*config.Descriptor, error) {
	desc, err := config.LoadExtraFn(ctx, fsys, root, cmd.String(cliflags.Config))
	if err != nil {
		return nil, cli.Exit(err.Error(), 1)
	}
	return desc, nil
}
