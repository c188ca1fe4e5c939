package version

import (
	_ "embed"
	"strings"
)

//go:embed .version
var embedded string

// GetVersion returns the embedded release version without the trailing newline.
func GetVersion() string {
	return strings.TrimSpace(embedded)
}
