package version

import (
	"strings"
	"testing"
)

func saveAndRestore() func() {
	origVersion, origCommit, origBuildTime := Version, GitCommit, BuildTime
	return func() {
		Version = origVersion
		GitCommit = origCommit
		BuildTime = origBuildTime
	}
}

func TestGetVersionInfoDefaults(t *testing.T) {
	defer saveAndRestore()()
	Version = "dev"
	GitCommit = ""
	BuildTime = ""

	info := GetVersionInfo()
	if info == nil {
		t.Fatal("expected non-nil Info")
	}
	if info.Version != "dev" {
		t.Errorf("version = %q", info.Version)
	}
	if info.IsRelease {
		t.Error("dev build marked as release")
	}
}

func TestGetVersionInfoLdflags(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.2.3"
	GitCommit = "abc1234"
	BuildTime = "2026-01-15T10:00:00Z"

	info := GetVersionInfo()
	if info.Version != "1.2.3" || info.GitCommit != "abc1234" {
		t.Errorf("info = %+v", info)
	}
	if !info.IsRelease {
		t.Error("tagged build not marked as release")
	}
	if info.BuildDate.IsZero() {
		t.Error("build date not parsed")
	}
}

func TestGetShortVersion(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.2.3"
	GitCommit = "abc1234"

	short := GetShortVersion()
	if !strings.HasPrefix(short, "1.2.3-abc1234") {
		t.Errorf("short version = %q", short)
	}
}
