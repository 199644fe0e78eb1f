// Package buildinfo exposes the version, commit and build date of the
// mvnversions binary.
//
// The values are injected by the linker:
//
//	go build -ldflags "-X github.com/matzehuels/mvnversions/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/mvnversions/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/mvnversions/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/mvnversions
package buildinfo

import "fmt"

// Linker-injected values. Development builds keep the defaults.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is a snapshot of the build variables.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// Get returns the current build variables.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// String returns a single-line description, e.g. "v0.3.0 (abc1234, 2025-01-02T03:04:05Z)".
func (i Info) String() string {
	return fmt.Sprintf("%s (%s, %s)", i.Version, i.Commit, i.Date)
}

// Template returns the cobra version template.
func Template() string {
	i := Get()
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", i.Version, i.Commit, i.Date)
}
