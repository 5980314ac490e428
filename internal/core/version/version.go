// Package version exposes the build identity stamped into the binary
package version

// overridden at build time through
// -ldflags "-X 'gitgauge/internal/core/version.version=v0.1.0' ..."
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// BuildInfo identifies one build of the service
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info reports the stamped build identity
func Info() BuildInfo {
	return BuildInfo{
		Service: "gitgauge-api",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}
