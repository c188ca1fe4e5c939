package npm

import (
	"fmt"
	"strings"
)

// ExecutableNotFoundError indicates the configured installer does not resolve
// to an existing file. Root is set only for root-relative paths.
type ExecutableNotFoundError struct {
	Name string
	Root string
}

func (e *ExecutableNotFoundError) Error() string {
	if e.Root != "" {
		return fmt.Sprintf("%s Not Found (Root path : %s)", e.Name, e.Root)
	}
	return fmt.Sprintf("%s Not Found", e.Name)
}

// Suggestion returns guidance on fixing the npm-path setting.
func (e *ExecutableNotFoundError) Suggestion() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "The npm executable %q could not be found.\n\n", e.Name)
	switch Classify(e.Name) {
	case FormAbsolute:
		sb.WriteString("The path is absolute: check that the file exists.\n")
	case FormRelative:
		fmt.Fprintf(&sb, "The path is resolved against the project root %s.\n", e.Root)
	default:
		sb.WriteString("The name is looked up in PATH: install Node.js or add npm to PATH.\n")
	}
	sb.WriteString("\nSet another installer in the npm-handler section:\n\n")
	sb.WriteString("  npm-path: /usr/local/bin/npm\n")

	return sb.String()
}
