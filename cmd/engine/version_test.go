package main

import (
	"strings"
	"testing"
)

func TestGetBuildInfo(t *testing.T) {
	info := GetBuildInfo()

	if info.Version == "" {
		t.Error("Version is empty")
	}
	if info.GoVersion == "" {
		t.Error("GoVersion is empty")
	}
	if !strings.Contains(info.Platform, "/") {
		t.Errorf("Platform = %q, want GOOS/GOARCH form", info.Platform)
	}
}

func TestBuildInfoString(t *testing.T) {
	info := BuildInfo{
		Version:   "v1.2.0",
		BuildDate: "2026-08-29",
		GitCommit: "abc1234",
		GoVersion: "go1.24.5",
		Platform:  "linux/amd64",
	}
	got := info.String()

	for _, want := range []string{"v1.2.0", "2026-08-29", "abc1234", "linux/amd64"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
}
