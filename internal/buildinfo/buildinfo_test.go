package buildinfo

import (
	"runtime"
	"runtime/debug"
	"testing"
)

func TestCurrentFromBuildInfo(t *testing.T) {
	prevRead := readBuildInfo
	t.Cleanup(func() {
		readBuildInfo = prevRead
	})

	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			GoVersion: "go1.23.4",
			Main: debug.Module{
				Path:    "github.com/aidanlsb/shelltools",
				Version: "v1.2.3",
			},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc123def4567890"},
				{Key: "vcs.time", Value: "2026-02-14T17:00:00Z"},
				{Key: "vcs.modified", Value: "true"},
				{Key: "GOOS", Value: "windows"},
				{Key: "GOARCH", Value: "amd64"},
			},
		}, true
	}

	info := Current()

	if info.Version != "v1.2.3" {
		t.Fatalf("Version = %q, want %q", info.Version, "v1.2.3")
	}
	if info.Commit != "abc123def4567890" {
		t.Fatalf("Commit = %q", info.Commit)
	}
	if info.CommitTime != "2026-02-14T17:00:00Z" {
		t.Fatalf("CommitTime = %q", info.CommitTime)
	}
	if !info.Modified {
		t.Fatal("Modified = false, want true")
	}
	if info.GoVersion != "go1.23.4" {
		t.Fatalf("GoVersion = %q", info.GoVersion)
	}
	if got, want := info.String(), "v1.2.3 (abc123def456-dirty) windows/amd64"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestCurrentFallbackWhenBuildInfoMissing(t *testing.T) {
	prevRead := readBuildInfo
	prevVersion, prevCommit := Version, Commit
	t.Cleanup(func() {
		readBuildInfo = prevRead
		Version, Commit = prevVersion, prevCommit
	})

	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return nil, false
	}
	Version, Commit = "", ""

	info := Current()

	if info.Version != "devel" {
		t.Fatalf("Version = %q, want %q", info.Version, "devel")
	}
	if info.ModulePath != defaultModulePath {
		t.Fatalf("ModulePath = %q, want %q", info.ModulePath, defaultModulePath)
	}
	if info.GoVersion != runtime.Version() {
		t.Fatalf("GoVersion = %q, want runtime %q", info.GoVersion, runtime.Version())
	}
	if got, want := info.String(), "devel "+runtime.GOOS+"/"+runtime.GOARCH; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestLdflagsFallback(t *testing.T) {
	prevRead := readBuildInfo
	prevVersion, prevCommit, prevDate := Version, Commit, Date
	t.Cleanup(func() {
		readBuildInfo = prevRead
		Version, Commit, Date = prevVersion, prevCommit, prevDate
	})

	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true
	}
	Version, Commit, Date = "v0.4.0", "feedface", "2026-03-01"

	info := Current()
	if info.Version != "v0.4.0" || info.Commit != "feedface" || info.CommitTime != "2026-03-01" {
		t.Fatalf("unexpected fallback info: %+v", info)
	}
}
