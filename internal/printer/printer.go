package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Style definitions for consistent console output across the application.
var (
	faintStyle   = lipgloss.NewStyle().Faint(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	commentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
)

// output is where the Print* helpers write; nil means the current os.Stdout.
var output io.Writer

// SetOutput redirects the Print* helpers. Nil restores os.Stdout.
func SetOutput(w io.Writer) {
	output = w
}

func writer() io.Writer {
	if output == nil {
		return os.Stdout
	}
	return output
}

// SetNoColor disables (or restores) ANSI styling for every render function.
func SetNoColor(disabled bool) {
	if disabled {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// Render functions return styled strings without printing.

// Faint returns text with faint styling.
func Faint(text string) string {
	return faintStyle.Render(text)
}

// Bold returns text with bold styling.
func Bold(text string) string {
	return boldStyle.Render(text)
}

// Success returns text with success (green) styling.
func Success(text string) string {
	return successStyle.Render(text)
}

// Error returns text with error (red) styling.
func Error(text string) string {
	return errorStyle.Render(text)
}

// Warning returns text with warning (yellow) styling.
func Warning(text string) string {
	return warningStyle.Render(text)
}

// Info returns text with info (green) styling, used for section headers.
func Info(text string) string {
	return infoStyle.Render(text)
}

// Comment returns text with comment (yellow) styling, used for file paths.
func Comment(text string) string {
	return commentStyle.Render(text)
}

// Print functions output styled text with a newline.

// PrintSuccess prints text with success styling.
func PrintSuccess(text string) {
	fmt.Fprintln(writer(), Success(text))
}

// PrintError prints text with error styling.
func PrintError(text string) {
	fmt.Fprintln(writer(), Error(text))
}

// PrintWarning prints text with warning styling.
func PrintWarning(text string) {
	fmt.Fprintln(writer(), Warning(text))
}

// PrintInfo prints text with info styling.
func PrintInfo(text string) {
	fmt.Fprintln(writer(), Info(text))
}

// PrintFaint prints text with faint styling.
func PrintFaint(text string) {
	fmt.Fprintln(writer(), Faint(text))
}
