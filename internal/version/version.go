// Package version carries build metadata injected via ldflags.
package version

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func GetVersion() string {
	return Version
}

func GetFullVersion() string {
	return Version + " (commit: " + GitCommit + ", built: " + BuildTime + ")"
}
