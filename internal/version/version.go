// Package version exposes build version information.
package version

import (
	"fmt"
	"runtime/debug"
)

// These variables can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/termtoys/inquire/internal/version.Version=v1.2.3 \
//	                   -X github.com/termtoys/inquire/internal/version.Commit=abc123"
//
// If not set, they fall back to Go build info (VCS stamp) or "dev".
var (
	// Version is the semantic version of the application
	Version = ""
	// Commit is the git commit hash
	Commit = ""
)

func init() {
	if Version != "" && Commit != "" {
		return
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		var revision, modified string
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.modified":
				modified = setting.Value
			}
		}
		if Commit == "" && revision != "" {
			if len(revision) > 7 {
				revision = revision[:7]
			}
			Commit = revision
			if modified == "true" {
				Commit += "-dirty"
			}
		}
	}

	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
