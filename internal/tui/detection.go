package tui

import (
	"os"

	"golang.org/x/term"
)

// ciEnvs are set by the CI services the installer commonly runs under.
var ciEnvs = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"CIRCLECI",
	"JENKINS_HOME",
	"BUILDKITE",
	"BITBUCKET_BUILD_NUMBER",
	"CODEBUILD_BUILD_ID",
	"TF_BUILD",
}

// IsInteractive reports whether prompts may be shown. It is false when stdout
// is not a terminal, under CI, when npm was told to answer yes to every
// prompt (npm_config_yes=true), and inside an npm lifecycle script, where
// stdin belongs to npm.
func IsInteractive() bool {
	if !IsTTY() {
		return false
	}
	return !inCI() && !npmNonInteractive()
}

func inCI() bool {
	for _, env := range ciEnvs {
		if os.Getenv(env) != "" {
			return true
		}
	}
	return false
}

func npmNonInteractive() bool {
	if os.Getenv("npm_config_yes") == "true" {
		return true
	}
	return os.Getenv("npm_lifecycle_event") != ""
}

// ColorEnabled reports whether styled output should be written to stdout.
// NO_COLOR (https://no-color.org) and non-terminal stdout both disable it.
func ColorEnabled() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return IsTTY()
}

// IsTTY checks if stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // G115: fd is a small value, no overflow risk
}
