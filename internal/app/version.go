package app

import "fmt"

// Build metadata, set via ldflags:
//
//	go build -ldflags "-X github.com/heartmarshall/incentive-ledger/internal/app.Version=1.4.0 \
//	  -X github.com/heartmarshall/incentive-ledger/internal/app.Commit=$(git rev-parse --short HEAD)" ./cmd/server
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is reported by /health, the startup log and planctl --version.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
