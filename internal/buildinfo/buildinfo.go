// Package buildinfo holds version metadata stamped in at link time via
// -ldflags, so the CLI's `version` subcommand can report something more
// useful than "dev" in a release build.
package buildinfo

import "fmt"

// Version, Commit, and Date are overridden at build time, e.g.:
//
//	go build -ldflags "-X github.com/thecyberlocal/strling/internal/buildinfo.Version=v0.3.0 ..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String renders a one-line version banner.
func String() string {
	return fmt.Sprintf("strling %s (commit %s, built %s)", Version, Commit, Date)
}
