// Package console renders the severity-tagged messages produced by the
// install handler (<info>, <comment>, <error>) into terminal output.
package console

import (
	"fmt"
	"io"
	"regexp"
	"sync"

	"github.com/indaco/npmhandler/internal/printer"
)

var tagPattern = regexp.MustCompile(`(?s)<(info|comment|error)>(.*?)</(?:info|comment|error)>`)

// Render replaces every tagged fragment with its styled form.
func Render(message string) string {
	return tagPattern.ReplaceAllStringFunc(message, func(match string) string {
		parts := tagPattern.FindStringSubmatch(match)
		switch parts[1] {
		case "info":
			return printer.Info(parts[2])
		case "comment":
			return printer.Comment(parts[2])
		default:
			return printer.Error(parts[2])
		}
	})
}

// Console writes rendered messages to an io.Writer.
type Console struct {
	mu  sync.Mutex
	out io.Writer
}

// New returns a Console writing to out.
func New(out io.Writer) *Console {
	return &Console{out: out}
}

// Write renders message and writes it, followed by a line break when newline is set.
func (c *Console) Write(message string, newline bool) {
	c.WriteRaw(Render(message), newline)
}

// WriteRaw writes message as is. Tags in it are left untouched.
func (c *Console) WriteRaw(message string, newline bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if newline {
		fmt.Fprintln(c.out, message)
		return
	}
	fmt.Fprint(c.out, message)
}
