/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides version information for the vbo CLI.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version information, set at build time via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildTime string `json:"buildTime"`
	Modified  bool   `json:"modified,omitempty"`
}

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// Info returns build information, preferring ldflags over module build
// settings embedded by the Go toolchain.
func Info() BuildInfo {
	info := BuildInfo{Version: Version, GitCommit: GitCommit, BuildTime: BuildTime}

	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "unknown" {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "unknown" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// Get returns the version string for the application.
func Get() string {
	return Info().Version
}

// Full returns the version with a short commit and dirty marker, if known.
func Full() string {
	info := Info()
	if info.GitCommit == "unknown" || info.GitCommit == "" {
		return info.Version
	}
	commit := info.GitCommit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if info.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s (commit: %s)", info.Version, commit)
}
