package discovery

import (
	"context"
	"iter"
	"path"
	"path/filepath"

	"github.com/indaco/npmhandler/internal/core"
)

// Service provides manifest discovery.
type Service struct {
	fs   core.FileSystem
	opts Options
}

// NewService creates a new discovery Service. Zero-valued option fields fall
// back to the package.json manifest, no exclusions and node_modules pruning.
func NewService(fsys core.FileSystem, opts Options) *Service {
	if opts.Manifest == "" {
		opts.Manifest = ManifestFile
	}
	if opts.Exclude == nil {
		opts.Exclude = func(string) bool { return false }
	}
	if opts.Prune == nil {
		opts.Prune = PruneOutputDir
	}
	return &Service{fs: fsys, opts: opts}
}

// Walk returns the manifest locations under root. The sequence is lazy and
// restartable: every range over it walks the tree again. It stops early when
// ctx is cancelled.
func (s *Service) Walk(ctx context.Context, root string) iter.Seq[Location] {
	return func(yield func(Location) bool) {
		s.walk(ctx, root, "", yield)
	}
}

// Locate collects Walk into a slice.
func (s *Service) Locate(ctx context.Context, root string) ([]Location, error) {
	locations := make([]Location, 0)
	for loc := range s.Walk(ctx, root) {
		locations = append(locations, loc)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return locations, nil
}

// walk visits dir (rel relative to root) before its children. It returns
// false once the consumer stops or ctx is done.
func (s *Service) walk(ctx context.Context, root, rel string, yield func(Location) bool) bool {
	if ctx.Err() != nil {
		return false
	}

	if s.opts.Exclude(rel) {
		return true
	}

	dir := filepath.Join(root, filepath.FromSlash(rel))

	if s.hasManifest(ctx, dir) {
		loc := Location{Dir: rel, AbsDir: dir, Filename: s.opts.Manifest}
		if !yield(loc) {
			return false
		}
	}

	entries, err := s.fs.ReadDir(ctx, dir)
	if err != nil {
		// Skip directories we can't read
		return true
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		name := entry.Name()
		if s.opts.Prune(name) {
			continue
		}

		if !s.walk(ctx, root, path.Join(rel, name), yield) {
			return false
		}
	}

	return true
}

func (s *Service) hasManifest(ctx context.Context, dir string) bool {
	info, err := s.fs.Stat(ctx, filepath.Join(dir, s.opts.Manifest))
	return err == nil && !info.IsDir()
}
