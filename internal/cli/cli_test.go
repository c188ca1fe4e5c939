package cli

import (
	"slices"
	"testing"

	urfavecli "github.com/urfave/cli/v3"
)

func TestNew(t *testing.T) {
	app := New()

	if app.Name != "npmhandler" {
		t.Errorf("Name = %q, want npmhandler", app.Name)
	}
	if app.Version == "" || app.Version[0] != 'v' {
		t.Errorf("Version = %q, want a v-prefixed version", app.Version)
	}

	var names []string
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
	}
	want := []string{"install", "list", "init", "doctor"}
	if !slices.Equal(names, want) {
		t.Errorf("commands = %v, want %v", names, want)
	}

	for _, name := range []string{"config", "no-color", "debug", "theme"} {
		found := false
		for _, f := range app.Flags {
			if slices.Contains(f.Names(), name) {
				found = true
			}
		}
		if !found {
			t.Errorf("global flag --%s missing", name)
		}
	}
}

func TestVersionFlagLeavesVForVerbose(t *testing.T) {
	if slices.Contains(urfavecli.VersionFlag.Names(), "v") {
		t.Errorf("version flag names = %v, -v is taken by install --verbose", urfavecli.VersionFlag.Names())
	}
}
