package npm

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/indaco/npmhandler/internal/core"
)

// Form is the syntactic shape of a configured executable.
type Form int

const (
	// FormBare is a command name without separators, looked up in PATH.
	FormBare Form = iota

	// FormRelative contains a separator and is resolved against the project root.
	FormRelative

	// FormAbsolute starts at a file system root and is used as-is.
	FormAbsolute
)

// String returns a human-readable representation of the form.
func (f Form) String() string {
	switch f {
	case FormAbsolute:
		return "absolute"
	case FormRelative:
		return "relative"
	default:
		return "bare"
	}
}

// Classify decides the form of name from its syntax alone without touching the file system.
func Classify(name string) Form {
	switch {
	case filepath.IsAbs(name) || strings.HasPrefix(name, "/"):
		return FormAbsolute
	case strings.ContainsAny(name, "/"+string(filepath.Separator)):
		return FormRelative
	default:
		return FormBare
	}
}

// LookPathFunc searches PATH for an executable, like exec.LookPath.
type LookPathFunc func(file string) (string, error)

// Resolve turns the configured executable into a path that exists.
// It fails closed with *ExecutableNotFoundError; a nil lookPath selects exec.LookPath.
func Resolve(ctx context.Context, fsys core.FileSystem, name, root string, lookPath LookPathFunc) (string, error) {
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	switch Classify(name) {
	case FormAbsolute:
		if !isFile(ctx, fsys, name) {
			return "", &ExecutableNotFoundError{Name: name}
		}
		return name, nil

	case FormRelative:
		path := filepath.Join(root, name)
		if !isFile(ctx, fsys, path) {
			return "", &ExecutableNotFoundError{Name: name, Root: root}
		}
		return path, nil

	default:
		path, err := lookPath(name)
		if err != nil || path == "" {
			return "", &ExecutableNotFoundError{Name: name}
		}
		return path, nil
	}
}

func isFile(ctx context.Context, fsys core.FileSystem, path string) bool {
	info, err := fsys.Stat(ctx, path)
	return err == nil && !info.IsDir()
}
