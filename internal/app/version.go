package app

import "fmt"

// Name is the binary and service name reported by the CLI and startup log.
const Name = "toystore"

// Version, Commit, and BuildTime are stamped by the release build:
//
//	go build -ldflags "-X github.com/jacwu/toy-store/internal/app.Version=1.2.0 \
//	  -X github.com/jacwu/toy-store/internal/app.Commit=$(git rev-parse --short HEAD)" ./cmd/toystore
//
// Version alone is reported by /health.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the one-line build description, e.g.
// "toystore 1.2.0 (commit 3f2a9c1, built 2024-05-01T10:00:00Z)".
func BuildVersion() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", Name, Version, Commit, BuildTime)
}
