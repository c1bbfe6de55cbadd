package version

// Set at build time with -ldflags.
var (
	Version  = "0.0.0-dev"
	Revision = "unknown"
	Branch   = "unknown"
)
