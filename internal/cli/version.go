package cli

import (
	"cmp"
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glennib/z157/internal/buildinfo"
	"github.com/glennib/z157/internal/ui"
)

const defaultModulePath = "github.com/glennib/z157"

type versionInfo struct {
	Version    string `json:"version"`
	ModulePath string `json:"module_path"`
	Commit     string `json:"commit,omitempty"`
	CommitTime string `json:"commit_time,omitempty"`
	Modified   bool   `json:"modified"`
	GoVersion  string `json:"go_version"`
	GOOS       string `json:"goos"`
	GOARCH     string `json:"goarch"`
}

var readBuildInfo = debug.ReadBuildInfo

func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show z157 version and build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := currentVersionInfo()

			if opts.jsonOutput {
				outputSuccess(cmd, info, nil)
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "z157 %s\n", ui.Bold.Render(info.Version))
			if info.Commit != "" {
				commit := info.Commit
				if info.Modified {
					commit += " (modified)"
				}
				fmt.Fprintf(out, "  commit  %s\n", commit)
			}
			if info.CommitTime != "" {
				fmt.Fprintf(out, "  built   %s\n", info.CommitTime)
			}
			fmt.Fprintf(out, "  go      %s %s/%s\n", info.GoVersion, info.GOOS, info.GOARCH)
			return nil
		},
	}
}

// currentVersionInfo combines runtime build info with the values stamped in
// through buildinfo. Build info wins when both are present.
func currentVersionInfo() versionInfo {
	info := versionInfo{
		Version:    "devel",
		ModulePath: defaultModulePath,
		GoVersion:  runtime.Version(),
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
	}
	if bi, ok := readBuildInfo(); ok && bi != nil {
		info.merge(bi)
	}

	if info.Version == "devel" && buildinfo.Version != "" {
		info.Version = normalizeVersion(buildinfo.Version)
	}
	info.Commit = cmp.Or(info.Commit, buildinfo.Commit)
	info.CommitTime = cmp.Or(info.CommitTime, buildinfo.Date)
	return info
}

func (v *versionInfo) merge(bi *debug.BuildInfo) {
	settings := make(map[string]string, len(bi.Settings))
	for _, s := range bi.Settings {
		settings[s.Key] = s.Value
	}

	v.Version = normalizeVersion(bi.Main.Version)
	v.ModulePath = cmp.Or(bi.Main.Path, v.ModulePath)
	v.GoVersion = cmp.Or(bi.GoVersion, v.GoVersion)
	v.GOOS = cmp.Or(settings["GOOS"], v.GOOS)
	v.GOARCH = cmp.Or(settings["GOARCH"], v.GOARCH)
	v.Commit = settings["vcs.revision"]
	v.CommitTime = settings["vcs.time"]
	v.Modified = strings.EqualFold(settings["vcs.modified"], "true")
}

func normalizeVersion(version string) string {
	if version == "" || version == "(devel)" {
		return "devel"
	}
	return version
}
