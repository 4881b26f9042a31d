package namecase

import (
	"fmt"
	"runtime"
)

var (
	// version is set via ldflags during build by GoReleaser
	// For development builds, this will show "dev"
	version = "dev"

	// commit is the short git hash of the build, set via ldflags
	commit = "unknown"

	// buildTime is the RFC3339 build timestamp, set via ldflags
	buildTime = "unknown"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// Commit returns the git commit the binary was built from or 'unknown'
func Commit() string {
	return commit
}

// BuildTime returns the build timestamp or 'unknown'
func BuildTime() string {
	return buildTime
}

// GoVersion returns the Go runtime version the binary was compiled with
func GoVersion() string {
	return runtime.Version()
}

// BuildInfo returns a single-line summary of all build details
func BuildInfo() string {
	return fmt.Sprintf("namecase %s (commit: %s, built: %s, %s %s/%s)",
		version, commit, buildTime, GoVersion(), runtime.GOOS, runtime.GOARCH)
}
