// Package detector provides environment detection for output behavior.
package detector

import (
	"os"

	"golang.org/x/term"
)

// Interactive reports whether the process is attached to a terminal and not
// running under CI. Non-interactive invocations skip confirmation prompts
// and colored progress output.
func Interactive() bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false
	}
	ci := os.Getenv("CI")
	return ci != "true" && ci != "1"
}
