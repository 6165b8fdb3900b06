// Package bininfo carries build metadata injected at link time, e.g.
//
//	go build -ldflags "-X exusiai.dev/matchstats/internal/pkg/bininfo.Version=v1.2.0+abc1234"
//
// The variable names are part of the build scripts.
package bininfo

var (
	// Version is the SemVer of the binary, with the git commit appended after a "+" when known.
	// It is reported by the meta endpoint, the Server header, traces and Sentry releases.
	Version = "v0.0.0"

	// BuildTime is an RFC 3339 timestamp of the build.
	BuildTime = "1970-01-01T00:00:00Z"
)
