package main

import (
	"fmt"
	"runtime"
)

// Populated at build time via -ldflags, e.g.
//
//	go build -ldflags "-X main.version=v1.2.0 -X main.buildDate=$(date -u +%Y-%m-%d) -X main.gitCommit=$(git rev-parse --short HEAD)"
var (
	version   = "dev"
	buildDate = "unknown"
	gitCommit = "unknown"
)

// BuildInfo identifies the running binary. Served by the info endpoint and
// printed in the startup banner.
type BuildInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// String renders the one-line form used in the startup banner.
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s (%s, commit %s, %s)", b.Version, b.BuildDate, b.GitCommit, b.Platform)
}

func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}
