package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestInfoString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		info Info
		want string
	}{
		{Info{Version: "1.2.0"}, "1.2.0"},
		{Info{Version: "1.2.0", Commit: "abc"}, "1.2.0 (abc)"},
		{Info{Version: "1.2.0", Commit: "0123456789abcdef"}, "1.2.0 (0123456789ab)"},
		{Info{Version: "dev", Commit: "abc", Modified: true}, "dev (abc-dirty)"},
	}
	for _, tc := range tests {
		if got := tc.info.String(); got != tc.want {
			t.Errorf("%+v: got %q want %q", tc.info, got, tc.want)
		}
	}
}

func TestFromBuildInfo(t *testing.T) {
	t.Parallel()

	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "feedface"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}
	got := fromBuildInfo(Info{}, bi)
	if got.Version != "0.3.1" || got.Commit != "feedface" || got.BuildTime != "2026-01-02T03:04:05Z" || !got.Modified {
		t.Fatalf("unexpected info: %+v", got)
	}

	got = fromBuildInfo(Info{Version: "9.9.9", Commit: "cafe"}, bi)
	if got.Version != "9.9.9" || got.Commit != "cafe" {
		t.Fatalf("ldflags values should win: %+v", got)
	}

	got = fromBuildInfo(Info{}, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	if got.Version != "" {
		t.Fatalf("devel build should not set a version: %+v", got)
	}
}

func TestResolveNeverEmpty(t *testing.T) {
	t.Parallel()
	if Resolve().Version == "" {
		t.Fatal("resolved version is empty")
	}
	if !strings.HasPrefix(UserAgent(), "xcur/") {
		t.Fatalf("unexpected user agent %q", UserAgent())
	}
}
