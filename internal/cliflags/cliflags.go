// Package cliflags holds flag definitions shared by several commands.
package cliflags

import "github.com/urfave/cli/v3"

// Names of the shared flags.
const (
	Root        = "root"
	Config      = "config"
	NoColor     = "no-color"
	Debug       = "debug"
	Theme       = "theme"
	DefaultRoot = "."
)

// RootFlag selects the project directory to scan.
func RootFlag() cli.Flag {
	return &cli.StringFlag{
		Name:        Root,
		Aliases:     []string{"r"},
		Usage:       "Project root to scan for package.json files",
		Value:       DefaultRoot,
		DefaultText: "current directory",
	}
}

// GlobalFlags returns the flags accepted before any command.
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    Config,
			Aliases: []string{"c"},
			Usage:   "Read npm-handler options from this file (.yaml, .yml, .toml or composer.json)",
			Sources: cli.EnvVars("NPMHANDLER_CONFIG"),
		},
		&cli.BoolFlag{
			Name:  NoColor,
			Usage: "Disable colored output",
		},
		&cli.BoolFlag{
			Name:  Debug,
			Usage: "Log resolution and installer details to stderr",
		},
		&cli.StringFlag{
			Name:  Theme,
			Usage: "Prompt theme (npm, base, base16, catppuccin, charm, dracula)",
			Value: "npm",
		},
	}
}
