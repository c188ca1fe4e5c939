package handler

// Event is what the host exposes to the handler during an install. The
// handler only reads from it and writes console text through it.
type Event interface {
	// Extra returns the host's extra configuration mapping.
	Extra() map[string]any

	// IsDevMode reports whether development dependencies are installed.
	IsDevMode() bool

	// IsVerbose reports whether installer output is echoed.
	IsVerbose() bool

	// Write sends a message with inline <info>, <comment> or <error> markers
	// to the host console, followed by a line break when newline is set.
	Write(message string, newline bool)
}

// RawWriter is implemented by events and sinks that can write text without
// interpreting the <info>, <comment> and <error> markers. Installer output is
// written through it when available.
type RawWriter interface {
	WriteRaw(message string, newline bool)
}

// Writer is the console sink used by HostEvent.
type Writer interface {
	Write(message string, newline bool)
}

// HostEvent is a plain Event built by a host from its own state.
type HostEvent struct {
	ExtraConfig map[string]any
	DevMode     bool
	Verbose     bool
	Output      Writer
}

// Verify HostEvent implements Event and RawWriter.
var (
	_ Event     = (*HostEvent)(nil)
	_ RawWriter = (*HostEvent)(nil)
)

func (e *HostEvent) Extra() map[string]any { return e.ExtraConfig }
func (e *HostEvent) IsDevMode() bool       { return e.DevMode }
func (e *HostEvent) IsVerbose() bool       { return e.Verbose }

func (e *HostEvent) Write(message string, newline bool) {
	if e.Output != nil {
		e.Output.Write(message, newline)
	}
}

// WriteRaw passes message to Output untouched when Output supports it.
// Otherwise it falls back to Write.
func (e *HostEvent) WriteRaw(message string, newline bool) {
	if raw, ok := e.Output.(RawWriter); ok {
		raw.WriteRaw(message, newline)
		return
	}
	e.Write(message, newline)
}
