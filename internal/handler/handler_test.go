package handler

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/indaco/npmhandler/internal/config"
	"github.com/indaco/npmhandler/internal/core"
	"github.com/indaco/npmhandler/internal/npm"
)

const (
	wantHeader  = "<info>NPM Components</info>\n"
	wantRoot    = "- Installing <comment>package.json</comment>\n"
	wantSubdir  = "- Installing <comment>subdir/package.json</comment>\n"
	noLookupErr = "lookPath should not be called"
)

func TestInstall(t *testing.T) {
	root := newFixture(t)
	fake := writeFakeNpm(t, t.TempDir(), "npm")

	ev := &recordingEvent{extra: extraWith(config.Options{NpmPath: fake})}
	report, err := New(root).Install(context.Background(), ev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := ev.out.String(), wantHeader+wantRoot+wantSubdir; got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}

	checkInstalled(t, root, true, false)
	checkInstalled(t, filepath.Join(root, "subdir"), true, false)

	if len(report.Outcomes) != 2 || report.HasFailures() {
		t.Errorf("report = %+v, want two clean outcomes", report.Outcomes)
	}
}

func TestInstall_WithExcludes(t *testing.T) {
	root := newFixture(t)
	fake := writeFakeNpm(t, t.TempDir(), "npm")

	ev := &recordingEvent{extra: extraWith(config.Options{
		NpmPath:         fake,
		ExcludePackages: []string{"subdir"},
	})}
	if _, err := New(root).Install(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := ev.out.String(), wantHeader+wantRoot; got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
	checkInstalled(t, root, true, false)
	if exists(filepath.Join(root, "subdir", "node_modules")) {
		t.Error("excluded directory was installed")
	}
}

func TestInstall_WithDevMode(t *testing.T) {
	root := newFixture(t)
	fake := writeFakeNpm(t, t.TempDir(), "npm")

	ev := &recordingEvent{extra: extraWith(config.Options{NpmPath: fake}), devMode: true}
	if _, err := New(root).Install(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := ev.out.String(), wantHeader+wantRoot+wantSubdir; got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
	checkInstalled(t, root, true, true)
	checkInstalled(t, filepath.Join(root, "subdir"), true, true)
}

func TestInstall_WithVerbosity(t *testing.T) {
	root := newFixture(t)
	fake := writeFakeNpm(t, t.TempDir(), "npm")

	ev := &recordingEvent{extra: extraWith(config.Options{NpmPath: fake}), verbose: true}
	if _, err := New(root).Install(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := wantHeader +
		wantRoot + "fake npm install --production\n" +
		wantSubdir + "fake npm install --production\n"
	if got := ev.out.String(); got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
}

func TestInstall_BareNameFromPath(t *testing.T) {
	root := newFixture(t)
	bin := t.TempDir()
	writeFakeNpm(t, bin, "npm")
	t.Setenv("PATH", bin+string(filepath.ListSeparator)+"/usr/bin:/bin")

	ev := &recordingEvent{extra: map[string]any{}}
	if _, err := New(root).Install(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := ev.out.String(), wantHeader+wantRoot+wantSubdir; got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
	checkInstalled(t, root, true, false)
}

func TestInstall_RelativeExecutable(t *testing.T) {
	root := newFixture(t)
	writeFakeNpm(t, filepath.Join(root, "bin"), "npm")

	ev := &recordingEvent{extra: extraWith(config.Options{NpmPath: "bin/npm"})}
	if _, err := New(root).Install(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checkInstalled(t, root, true, false)
	checkInstalled(t, filepath.Join(root, "subdir"), true, false)
}

func TestInstall_InvalidAbsoluteNpmExecutablePath(t *testing.T) {
	root := newFixture(t)

	ev := &recordingEvent{extra: extraWith(config.Options{NpmPath: "/foo/npm"})}
	report, err := New(root).Install(context.Background(), ev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	notFound := "<error>/foo/npm Not Found</error>\n"
	if got, want := ev.out.String(), wantHeader+wantRoot+notFound+wantSubdir+notFound; got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
	if strings.Contains(ev.out.String(), "Root path") {
		t.Error("absolute path error must not carry the root path")
	}

	checkInstalled(t, root, false, false)
	checkInstalled(t, filepath.Join(root, "subdir"), false, false)

	for _, o := range report.Outcomes {
		if o.State != StateSkipped {
			t.Errorf("%s state = %v, want skipped", o.Location.Manifest(), o.State)
		}
		var nf *npm.ExecutableNotFoundError
		if !errors.As(o.Err, &nf) {
			t.Errorf("%s err = %v, want *npm.ExecutableNotFoundError", o.Location.Manifest(), o.Err)
		}
	}
}

func TestInstall_InvalidRelativeNpmExecutablePath(t *testing.T) {
	root := newFixture(t)

	ev := &recordingEvent{extra: extraWith(config.Options{NpmPath: "foo/npm"})}
	if _, err := New(root).Install(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	notFound := "<error>foo/npm Not Found (Root path : " + root + ")</error>\n"
	if got, want := ev.out.String(), wantHeader+wantRoot+notFound+wantSubdir+notFound; got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
	checkInstalled(t, root, false, false)
}

func TestInstall_InvalidBareName(t *testing.T) {
	fsys := core.NewMockFileSystem()
	fsys.SetFile("/project/package.json", []byte(`{}`))
	runner := &npm.MockRunner{}
	lookPath := func(string) (string, error) { return "", errors.New("not in PATH") }

	ev := &recordingEvent{extra: extraWith(config.Options{NpmPath: "pnpm"})}
	if _, err := NewWithDeps("/project", fsys, runner, lookPath).Install(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := wantHeader + wantRoot + "<error>pnpm Not Found</error>\n"
	if got := ev.out.String(); got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
	if len(runner.Calls) != 0 {
		t.Errorf("runner called %d times, want 0", len(runner.Calls))
	}
}

func TestInstall_MockRunner(t *testing.T) {
	fsys := core.NewMockFileSystem()
	fsys.SetFile("/project/package.json", []byte(`{}`))
	fsys.SetFile("/project/app/package.json", []byte(`{}`))
	fsys.SetFile("/project/app/node_modules/dep/package.json", []byte(`{}`))
	fsys.SetFile("/usr/local/bin/npm", []byte(`#!/bin/sh`))

	tests := []struct {
		name    string
		devMode bool
		want    []string
	}{
		{"production", false, []string{"install", "--production"}},
		{"dev", true, []string{"install"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &npm.MockRunner{}
			lookPath := func(string) (string, error) { return "", errors.New(noLookupErr) }
			h := NewWithDeps("/project", fsys, runner, lookPath)

			ev := &recordingEvent{extra: extraWith(config.Options{NpmPath: "/usr/local/bin/npm"}), devMode: tt.devMode}
			if _, err := h.Install(context.Background(), ev); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			wantDirs := []string{"/project", filepath.Join("/project", "app")}
			if len(runner.Calls) != len(wantDirs) {
				t.Fatalf("calls = %+v, want %d", runner.Calls, len(wantDirs))
			}
			for i, call := range runner.Calls {
				if call.Dir != wantDirs[i] {
					t.Errorf("call %d dir = %q, want %q", i, call.Dir, wantDirs[i])
				}
				if call.Name != "/usr/local/bin/npm" {
					t.Errorf("call %d name = %q", i, call.Name)
				}
				if !slices.Equal(call.Args, tt.want) {
					t.Errorf("call %d args = %v, want %v", i, call.Args, tt.want)
				}
			}
		})
	}
}

func TestInstall_ExitCodeDoesNotGate(t *testing.T) {
	fsys := core.NewMockFileSystem()
	fsys.SetFile("/project/a/package.json", []byte(`{}`))
	fsys.SetFile("/project/b/package.json", []byte(`{}`))

	runner := &npm.MockRunner{
		RunFn: func(ctx context.Context, dir, name string, args ...string) (*npm.Result, error) {
			if filepath.Base(dir) == "a" {
				return &npm.Result{ExitCode: 1, Output: []byte("npm ERR! code E404\n")}, nil
			}
			return &npm.Result{Output: []byte("added 1 package\n")}, nil
		},
	}
	lookPath := func(string) (string, error) { return "/usr/bin/npm", nil }

	tests := []struct {
		name    string
		verbose bool
		want    string
	}{
		{
			name: "quiet",
			want: wantHeader +
				"- Installing <comment>a/package.json</comment>\n" +
				"- Installing <comment>b/package.json</comment>\n",
		},
		{
			name:    "verbose",
			verbose: true,
			want: wantHeader +
				"- Installing <comment>a/package.json</comment>\n" +
				"npm ERR! code E404\n" +
				"- Installing <comment>b/package.json</comment>\n" +
				"added 1 package\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner.Calls = nil
			ev := &recordingEvent{extra: map[string]any{}, verbose: tt.verbose}

			report, err := NewWithDeps("/project", fsys, runner, lookPath).Install(context.Background(), ev)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := ev.out.String(); got != tt.want {
				t.Errorf("output =\n%s\nwant\n%s", got, tt.want)
			}
			if len(runner.Calls) != 2 {
				t.Errorf("calls = %d, want 2", len(runner.Calls))
			}

			failures := report.Failures()
			if len(failures) != 1 || failures[0].Location.Dir != "a" {
				t.Fatalf("failures = %+v, want only a", failures)
			}
			if failures[0].State != StateDone {
				t.Errorf("state = %v, want done", failures[0].State)
			}
		})
	}
}

func TestInstall_VerboseOutputIsRaw(t *testing.T) {
	fsys := core.NewMockFileSystem()
	fsys.SetFile("/project/package.json", []byte(`{}`))

	runner := &npm.MockRunner{
		RunFn: func(ctx context.Context, dir, name string, args ...string) (*npm.Result, error) {
			return &npm.Result{Output: []byte("npm WARN <error>deprecated</error> pkg\n")}, nil
		},
	}
	lookPath := func(string) (string, error) { return "/usr/bin/npm", nil }

	ev := &rawEvent{recordingEvent: recordingEvent{extra: map[string]any{}, verbose: true}}
	if _, err := NewWithDeps("/project", fsys, runner, lookPath).Install(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := []string{"npm WARN <error>deprecated</error> pkg"}; !slices.Equal(ev.raw, want) {
		t.Errorf("raw writes = %q, want %q", ev.raw, want)
	}
	if got, want := ev.out.String(), wantHeader+wantRoot; got != want {
		t.Errorf("tagged output = %q, want %q", got, want)
	}
}

func TestInstall_RunnerStartError(t *testing.T) {
	fsys := core.NewMockFileSystem()
	fsys.SetFile("/project/a/package.json", []byte(`{}`))
	fsys.SetFile("/project/b/package.json", []byte(`{}`))

	runner := &npm.MockRunner{
		RunFn: func(ctx context.Context, dir, name string, args ...string) (*npm.Result, error) {
			if filepath.Base(dir) == "a" {
				return nil, errors.New("permission denied")
			}
			return &npm.Result{}, nil
		},
	}
	lookPath := func(string) (string, error) { return "/usr/bin/npm", nil }

	ev := &recordingEvent{extra: map[string]any{}}
	report, err := NewWithDeps("/project", fsys, runner, lookPath).Install(context.Background(), ev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := wantHeader +
		"- Installing <comment>a/package.json</comment>\n" +
		"<error>permission denied</error>\n" +
		"- Installing <comment>b/package.json</comment>\n"
	if got := ev.out.String(); got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
	if report.Outcomes[0].State != StateSkipped || report.Outcomes[1].State != StateDone {
		t.Errorf("outcomes = %+v", report.Outcomes)
	}
}

func TestInstall_NoManifests(t *testing.T) {
	fsys := core.NewMockFileSystem()
	fsys.SetDir("/project")

	ev := &recordingEvent{extra: map[string]any{}}
	report, err := NewWithDeps("/project", fsys, &npm.MockRunner{}, nil).Install(context.Background(), ev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ev.out.String(); got != wantHeader {
		t.Errorf("output = %q, want only the header", got)
	}
	if len(report.Outcomes) != 0 {
		t.Errorf("outcomes = %+v, want none", report.Outcomes)
	}
}

func TestInstall_ContextCancelled(t *testing.T) {
	fsys := core.NewMockFileSystem()
	fsys.SetFile("/project/package.json", []byte(`{}`))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ev := &recordingEvent{extra: map[string]any{}}
	lookPath := func(string) (string, error) { return "/usr/bin/npm", nil }
	_, err := NewWithDeps("/project", fsys, &npm.MockRunner{}, lookPath).Install(ctx, ev)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestList(t *testing.T) {
	fsys := core.NewMockFileSystem()
	fsys.SetFile("/project/package.json", []byte(`{}`))
	fsys.SetFile("/project/subdir/package.json", []byte(`{}`))
	fsys.SetFile("/project/vendor/acme/ui/package.json", []byte(`{}`))
	runner := &npm.MockRunner{}

	ev := &recordingEvent{extra: extraWith(config.Options{ExcludePackages: []string{"vendor"}})}
	locs, err := NewWithDeps("/project", fsys, runner, nil).List(context.Background(), ev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := ev.out.String(), wantHeader+wantRoot+wantSubdir; got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
	if len(locs) != 2 {
		t.Errorf("len(locs) = %d, want 2", len(locs))
	}
	if len(runner.Calls) != 0 {
		t.Error("List must not invoke the installer")
	}
}

func TestHostEvent(t *testing.T) {
	var got []string
	ev := &HostEvent{
		ExtraConfig: map[string]any{"k": "v"},
		DevMode:     true,
		Verbose:     true,
		Output:      writerFunc(func(m string, nl bool) { got = append(got, m) }),
	}

	if !ev.IsDevMode() || !ev.IsVerbose() || ev.Extra()["k"] != "v" {
		t.Errorf("HostEvent accessors returned unexpected values: %+v", ev)
	}
	ev.Write("hello", true)
	if !slices.Equal(got, []string{"hello"}) {
		t.Errorf("written = %v", got)
	}

	(&HostEvent{}).Write("dropped", true)
}

func TestHostEvent_WriteRaw(t *testing.T) {
	t.Run("raw sink", func(t *testing.T) {
		sink := &rawSink{}
		(&HostEvent{Output: sink}).WriteRaw("<info>kept</info>", true)
		if !slices.Equal(sink.raw, []string{"<info>kept</info>"}) || len(sink.tagged) != 0 {
			t.Errorf("raw = %v, tagged = %v", sink.raw, sink.tagged)
		}
	})

	t.Run("plain sink falls back to Write", func(t *testing.T) {
		var got []string
		ev := &HostEvent{Output: writerFunc(func(m string, nl bool) { got = append(got, m) })}
		ev.WriteRaw("plain", true)
		if !slices.Equal(got, []string{"plain"}) {
			t.Errorf("written = %v", got)
		}
	})
}

type rawSink struct {
	raw    []string
	tagged []string
}

func (s *rawSink) Write(message string, newline bool)    { s.tagged = append(s.tagged, message) }
func (s *rawSink) WriteRaw(message string, newline bool) { s.raw = append(s.raw, message) }

type writerFunc func(message string, newline bool)

func (f writerFunc) Write(message string, newline bool) { f(message, newline) }
