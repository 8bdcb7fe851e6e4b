package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/stampname/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/stampname/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/stampname/internal/version.Date={{.Date}}
)

// String formats the build information for display.
func String() string {
	return fmt.Sprintf("stampname %s (commit %s, built %s)", Version, Commit, Date)
}
