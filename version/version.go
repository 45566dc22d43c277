// Package version reports build identity for taglog commands.
package version

import (
	"runtime"
	"runtime/debug"
)

var (
	// Version is the release version, set via ldflags.
	Version string

	// Revision is the git commit revision, with a -dirty suffix when the
	// working tree was modified.
	Revision = getRevision()
	// GoVersion is the Go version used to build.
	GoVersion = runtime.Version()
)

func getRevision() string {
	rev := "unknown"

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return rev
	}

	modified := false

	for _, v := range buildInfo.Settings {
		switch v.Key {
		case "vcs.revision":
			rev = v.Value
		case "vcs.modified":
			if v.Value == "true" {
				modified = true
			}
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}
