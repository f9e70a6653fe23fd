package app

// Build metadata injected via -ldflags by the release build. The defaults
// identify local development builds.
var (
	// BuildVersion is the released version of the binary.
	BuildVersion = "dev"
	// BuildCommit is the VCS commit the binary was built from.
	BuildCommit = "unknown"
	// BuildDate is the RFC3339 timestamp of the build.
	BuildDate = "unknown"
)
