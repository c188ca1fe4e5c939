package discovery

import (
	"path"
	"path/filepath"
	"strings"
)

// ManifestFile is the manifest that marks an npm project directory.
const ManifestFile = "package.json"

// OutputDir is where npm materializes installed dependencies.
const OutputDir = "node_modules"

// Location is a directory known to contain the manifest.
type Location struct {
	// Dir is the slash-separated path relative to the discovery root; "" for the root.
	Dir string

	// AbsDir is the directory on disk.
	AbsDir string

	// Filename is the manifest's base name.
	Filename string
}

// IsRoot reports whether the location is the discovery root itself.
func (l Location) IsRoot() bool {
	return l.Dir == ""
}

// Manifest returns the manifest path relative to the root, e.g. "subdir/package.json".
// The root manifest has no directory prefix.
func (l Location) Manifest() string {
	if l.IsRoot() {
		return l.Filename
	}
	return path.Join(l.Dir, l.Filename)
}

// Options parameterizes a walk.
type Options struct {
	// Manifest is the file name to look for. Defaults to ManifestFile.
	Manifest string

	// Exclude reports whether a root-relative directory (and its subtree) is skipped.
	Exclude func(rel string) bool

	// Prune reports whether a directory with the given base name is never entered.
	Prune func(name string) bool
}

// DefaultOptions returns options that exclude the given root-relative paths
// and prune node_modules.
func DefaultOptions(excludes []string) Options {
	return Options{
		Manifest: ManifestFile,
		Exclude:  ExcludePaths(excludes),
		Prune:    PruneOutputDir,
	}
}

// PruneOutputDir keeps the walk out of installed dependency trees.
func PruneOutputDir(name string) bool {
	return name == OutputDir
}

// ExcludePaths builds an exclusion predicate with path-prefix semantics:
// "web" excludes "web" and "web/admin" but not "website".
func ExcludePaths(excludes []string) func(rel string) bool {
	normalized := make([]string, 0, len(excludes))
	for _, e := range excludes {
		normalized = append(normalized, NormalizeRel(e))
	}

	return func(rel string) bool {
		for _, e := range normalized {
			if e == "" || rel == e || strings.HasPrefix(rel, e+"/") {
				return true
			}
		}
		return false
	}
}

// NormalizeRel cleans a root-relative path into the slash form used by Location.Dir.
// "." and "./" normalize to "", the root.
func NormalizeRel(p string) string {
	p = filepath.ToSlash(filepath.Clean(p))
	p = strings.TrimPrefix(p, "./")
	if p == "." {
		return ""
	}
	return strings.TrimSuffix(p, "/")
}
