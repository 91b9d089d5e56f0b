package app

import "fmt"

// Version, Commit and BuildTime are set via ldflags at build time:
//
//	go build -ldflags "-X github.com/heartmarshall/foodgram-backend/internal/app.Version=1.0.0" ./cmd/server
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version string reported in startup logs and /health.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
