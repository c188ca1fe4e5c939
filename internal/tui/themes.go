package tui

import (
	"maps"
	"slices"

	"github.com/charmbracelet/huh"
)

// DefaultTheme is the theme used when none is configured.
const DefaultTheme = "npm"

// themes maps the --theme values to their constructors.
var themes = map[string]func() *huh.Theme{
	DefaultTheme: npmTheme,
	"base":       huh.ThemeBase,
	"base16":     huh.ThemeBase16,
	"catppuccin": huh.ThemeCatppuccin,
	"charm":      huh.ThemeCharm,
	"dracula":    huh.ThemeDracula,
}

// ValidThemes lists the accepted theme names, sorted.
var ValidThemes = slices.Sorted(maps.Keys(themes))

// IsValidTheme returns true if the given theme name is valid.
func IsValidTheme(name string) bool {
	_, ok := themes[name]
	return ok
}

// GetTheme returns the huh.Theme for name, or nil when name is unknown.
func GetTheme(name string) *huh.Theme {
	if build, ok := themes[name]; ok {
		return build()
	}
	return nil
}
