// Package core holds the small abstractions shared by the npmhandler packages:
// file system access and the permission bits used when writing files.
package core

import (
	"context"
	"io/fs"
	"os"
)

// Permission bits used across the codebase.
const (
	PermOwnerRW fs.FileMode = 0o600
	PermFileRW  fs.FileMode = 0o644
	PermDirRWX  fs.FileMode = 0o755
)

// FileSystem abstracts the file operations npmhandler performs so that
// discovery and resolution can run against an in-memory tree in tests.
type FileSystem interface {
	Stat(ctx context.Context, name string) (fs.FileInfo, error)
	ReadDir(ctx context.Context, name string) ([]fs.DirEntry, error)
	ReadFile(ctx context.Context, name string) ([]byte, error)
	WriteFile(ctx context.Context, name string, data []byte, perm fs.FileMode) error
}

// OSFileSystem implements FileSystem on top of the os package.
type OSFileSystem struct{}

// NewOSFileSystem returns the production FileSystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Verify OSFileSystem implements FileSystem.
var _ FileSystem = (*OSFileSystem)(nil)

func (o *OSFileSystem) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Stat(name)
}

func (o *OSFileSystem) ReadDir(ctx context.Context, name string) ([]fs.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadDir(name)
}

func (o *OSFileSystem) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(name)
}

func (o *OSFileSystem) WriteFile(ctx context.Context, name string, data []byte, perm fs.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(name, data, perm)
}

// Marshaler abstracts serialization so writers can be tested without touching disk.
type Marshaler interface {
	Marshal(v any) ([]byte, error)
}
