// Package version carries the build stamp of the website binary.
//
// Release builds set the variables with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/DevPedroAugusto-BR/data-beacon-launch/internal/version.Version=1.2.0 \
//	    -X github.com/DevPedroAugusto-BR/data-beacon-launch/internal/version.GitCommit=$(git rev-parse --short HEAD)" ./cmd/website
package version

import "fmt"

var (
	// Version of the site release; "dev" for local builds.
	Version = "dev"

	// GitCommit is the short hash the binary was built from.
	GitCommit = "unknown"

	// BuildTime is the RFC3339 build timestamp.
	BuildTime = "unknown"
)

// BuildInfo is the build stamp as reported by /debug.
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
}

// Info returns the current build stamp.
func Info() BuildInfo {
	return BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}
}

// String formats the stamp for logs, e.g. "1.2.0 (a1b2c3d)".
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s (%s)", b.Version, b.GitCommit)
}
