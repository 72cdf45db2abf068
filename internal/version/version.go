// Package version provides build-time version information for the
// wound-scan CLI tools.
package version

// Set at build time via -ldflags.
var (
	// Version is the semantic version.
	Version = "0.1.0"

	// Commit is the git commit hash the binary was built from.
	Commit = "unknown"
)
