// Package version exposes the lightmixer build version.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Version and Commit are normally injected at link time:
//
//	go build -ldflags="-X github.com/muurk/lightmixer/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/lightmixer/internal/version.Commit=abc1234"
//
// Builds without ldflags fall back to the VCS stamp embedded by the Go
// toolchain, and finally to "dev"/"unknown".
var (
	Version = ""
	Commit  = ""
)

func init() {
	if Version == "" || Commit == "" {
		fromBuildInfo(debug.ReadBuildInfo)
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fromBuildInfo fills in whichever of Version/Commit is still empty.
func fromBuildInfo(read func() (*debug.BuildInfo, bool)) {
	info, ok := read()
	if !ok {
		return
	}

	if Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}

	if Commit == "" {
		if rev := settings["vcs.revision"]; rev != "" {
			if len(rev) > 7 {
				rev = rev[:7]
			}
			if settings["vcs.modified"] == "true" {
				rev += "-dirty"
			}
			Commit = rev
		}
	}

	if Version == "" {
		if t := settings["vcs.time"]; len(t) >= 10 {
			Version = "dev-" + strings.ReplaceAll(t[:10], "-", "")
		}
	}
}

// Full returns the version string including commit.
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
