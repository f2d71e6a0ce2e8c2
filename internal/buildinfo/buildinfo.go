// Package buildinfo holds release metadata stamped in at link time:
//
//	go build -ldflags "-X github.com/glennib/z157/internal/buildinfo.Version=v0.3.0"
//
// Development builds leave them empty and rely on runtime/debug instead.
package buildinfo

var (
	Version = ""
	Commit  = ""
	Date    = ""
)
