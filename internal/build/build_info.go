// Package build carries version information stamped at link time.
package build

// Overridden via -ldflags on release builds.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
