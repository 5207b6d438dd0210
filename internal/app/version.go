package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit and BuildTime are stamped via ldflags:
//
//	go build -ldflags "-X github.com/heartmarshall/tradedesk-backend/internal/app.Version=1.0.0" ./cmd/server
//
// Commit and BuildTime fall back to the VCS stamp recorded by the Go toolchain.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	Commit, BuildTime = vcsStamp(info.Settings, Commit, BuildTime)
}

// vcsStamp fills unset commit and time values from build settings.
func vcsStamp(settings []debug.BuildSetting, commit, built string) (string, string) {
	dirty := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if commit == "unknown" && len(s.Value) >= 12 {
				commit = s.Value[:12]
			}
		case "vcs.time":
			if built == "unknown" {
				built = s.Value
			}
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if dirty && commit != "unknown" {
		commit += "-dirty"
	}
	return commit, built
}

// BuildVersion formats the version for startup logs.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
