// Package buildinfo carries build identifiers stamped in with
// -ldflags "-X ili9163/internal/buildinfo.Version=...".
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title and boot log.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}

// Long returns version, commit and date on one line.
func Long() string {
	return Version + " (" + Commit + ", " + Date + ")"
}
