package app

// Set with -ldflags "-X github.com/hyperifyio/minigrep/internal/app.BuildVersion=..."
var (
	BuildVersion = "0.0.0-dev"
	BuildCommit  = "unknown"
	BuildDate    = "unknown"
)
