package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// currentTheme holds the currently configured theme for TUI components.
// When nil, currentThemeOrDefault() returns the default npmTheme.
var currentTheme *huh.Theme

// Palette built around the npm brand red.
var (
	npmRedPrimary        = lipgloss.AdaptiveColor{Light: "#cb3837", Dark: "#e05d5c"}
	npmRedBright         = lipgloss.AdaptiveColor{Light: "#b32d2c", Dark: "#f08584"}
	npmTextStrong        = lipgloss.AdaptiveColor{Light: "#1f2328", Dark: "#f0f6fc"}
	npmTextNormal        = lipgloss.AdaptiveColor{Light: "#393f46", Dark: "#d1d7e0"}
	npmTextMuted         = lipgloss.AdaptiveColor{Light: "#59636e", Dark: "#9198a1"}
	npmBorderFocused     = lipgloss.AdaptiveColor{Light: "#cb3837", Dark: "#e05d5c"}
	npmBorderNormal      = lipgloss.AdaptiveColor{Light: "#d1d9e0", Dark: "#3d444d"}
	npmButtonBg          = lipgloss.AdaptiveColor{Light: "#cb3837", Dark: "#cb3837"}
	npmButtonBgBlurred   = lipgloss.AdaptiveColor{Light: "#eff2f5", Dark: "#262c36"}
	npmButtonText        = lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#ffffff"}
	npmButtonTextBlurred = lipgloss.AdaptiveColor{Light: "#59636e", Dark: "#9198a1"}
)

func npmTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(npmBorderFocused)
	t.Focused.Title = t.Focused.Title.Foreground(npmRedPrimary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(npmTextMuted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(npmRedBright)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(npmRedBright)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(npmButtonText).
		Background(npmButtonBg).
		Bold(true).
		Padding(0, 1)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(npmButtonTextBlurred).
		Background(npmButtonBgBlurred).
		Padding(0, 1)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderForeground(npmBorderNormal)
	t.Blurred.Title = t.Blurred.Title.Foreground(npmTextNormal).Bold(false)

	t.Help.ShortKey = t.Help.ShortKey.Foreground(npmTextStrong)
	t.Help.ShortDesc = t.Help.ShortDesc.Foreground(npmTextMuted)
	t.Help.ShortSeparator = t.Help.ShortSeparator.Foreground(npmBorderNormal)
	t.Help.FullKey = t.Help.FullKey.Foreground(npmTextStrong)
	t.Help.FullDesc = t.Help.FullDesc.Foreground(npmTextMuted)
	t.Help.FullSeparator = t.Help.FullSeparator.Foreground(npmBorderNormal)

	return t
}

// SetTheme sets the current theme by name.
// If the name is invalid or empty, the npm theme is used.
func SetTheme(name string) {
	currentTheme = GetTheme(name)
}

// currentThemeOrDefault returns the current theme for TUI components.
func currentThemeOrDefault() *huh.Theme {
	if currentTheme == nil {
		return npmTheme()
	}
	return currentTheme
}

// resetTheme resets the current theme to the default (npm).
func resetTheme() {
	currentTheme = nil
}
