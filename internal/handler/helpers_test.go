package handler

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/indaco/npmhandler/internal/config"
)

/* ------------------------------------------------------------------------- */
/* HELPERS                                                                   */
/* ------------------------------------------------------------------------- */

// recordingEvent keeps the raw tagged output, the way the host receives it.
type recordingEvent struct {
	extra   map[string]any
	devMode bool
	verbose bool
	out     strings.Builder
}

func (e *recordingEvent) Extra() map[string]any { return e.extra }
func (e *recordingEvent) IsDevMode() bool       { return e.devMode }
func (e *recordingEvent) IsVerbose() bool       { return e.verbose }

func (e *recordingEvent) Write(message string, newline bool) {
	e.out.WriteString(message)
	if newline {
		e.out.WriteString("\n")
	}
}

// rawEvent records WriteRaw calls apart from tagged writes.
type rawEvent struct {
	recordingEvent
	raw []string
}

func (e *rawEvent) WriteRaw(message string, newline bool) {
	e.raw = append(e.raw, message)
}

func extraWith(opts config.Options) map[string]any {
	return opts.Extra()
}

// newFixture creates a project with a root and a subdir package.json.
func newFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"name":"root","dependencies":{"less":"*"},"devDependencies":{"phantomjs":"*"}}`)
	writeFile(t, filepath.Join(root, "subdir", "package.json"), `{"name":"subdir","dependencies":{"less":"*"},"devDependencies":{"phantomjs":"*"}}`)
	return root
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// writeFakeNpm installs a shell script that behaves like npm install:
// "less" always lands in node_modules, "phantomjs" only without --production.
func writeFakeNpm(t *testing.T, dir, name string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake installer is a POSIX shell script")
	}
	script := `#!/bin/sh
echo "fake npm $*"
mkdir -p node_modules/less
case " $* " in
  *" --production "*) ;;
  *) mkdir -p node_modules/phantomjs ;;
esac
`
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write fake npm: %v", err)
	}
	return path
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func checkInstalled(t *testing.T, dir string, want, wantDev bool) {
	t.Helper()
	modules := filepath.Join(dir, "node_modules")
	if got := exists(filepath.Join(modules, "less")); got != want {
		t.Errorf("%s/less installed = %v, want %v", modules, got, want)
	}
	if got := exists(filepath.Join(modules, "phantomjs")); got != wantDev {
		t.Errorf("%s/phantomjs installed = %v, want %v", modules, got, wantDev)
	}
}
