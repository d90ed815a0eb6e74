// Package version reports the launchts build version.
package version

import (
	"fmt"
	"runtime/debug"
)

const devVersion = "dev"

// Build-time variables injected via -ldflags.
var (
	Version = devVersion
	Commit  = "none"
	Date    = "unknown"
)

// GetVersion returns the release version. Binaries built with "go install"
// carry no ldflags and report their module version instead.
func GetVersion() string {
	if Version != devVersion {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return Version
}

// GetFullVersion returns the version with commit and build date.
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit %s, built %s)", GetVersion(), Commit, Date)
}
