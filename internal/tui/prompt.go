package tui

import (
	"github.com/charmbracelet/huh"
)

// Confirm shows a yes/no prompt and returns the answer.
func Confirm(title, description string) (bool, error) {
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).WithTheme(currentThemeOrDefault())

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

// Prompter abstracts interactive prompts for testability.
type Prompter interface {
	Confirm(title, description string) (bool, error)
}

// FormPrompter implements Prompter with huh forms.
type FormPrompter struct{}

// Confirm shows a yes/no confirmation prompt.
func (FormPrompter) Confirm(title, description string) (bool, error) {
	return Confirm(title, description)
}

// MockPrompter is a Prompter for tests.
type MockPrompter struct {
	ConfirmFn func(title, description string) (bool, error)
}

// Confirm implements Prompter.
func (m *MockPrompter) Confirm(title, description string) (bool, error) {
	if m.ConfirmFn != nil {
		return m.ConfirmFn(title, description)
	}
	return true, nil
}
