// Package version reports the build version of enoceanmqtt.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version and Commit can be set at build time:
//
//	go build -ldflags="-X github.com/muurk/enoceanmqtt/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/enoceanmqtt/internal/version.Commit=abc123"
//
// Otherwise they are filled from the module and VCS build info, falling
// back to "dev" and "unknown".
var (
	Version = ""
	Commit  = ""
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		Version, Commit = fromBuildInfo(info, Version, Commit)
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fromBuildInfo fills whichever of version and commit are still empty.
func fromBuildInfo(info *debug.BuildInfo, version, commit string) (string, string) {
	if version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}

	if commit == "" {
		var revision string
		var dirty bool
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.modified":
				dirty = setting.Value == "true"
			}
		}
		if len(revision) > 7 {
			revision = revision[:7]
		}
		if revision != "" && dirty {
			revision += "-dirty"
		}
		commit = revision
	}

	return version, commit
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
