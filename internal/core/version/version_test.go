package version

import (
	"runtime/debug"
	"testing"

	kit "portfolio/internal/platform/testkit"

	"github.com/stretchr/testify/assert"
)

func TestInfo_FallsBackToVCSStamp(t *testing.T) {
	kit.Swap(t, &readBuildInfo, func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{GoVersion: "go1.25.0", Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2025-09-02T10:00:00Z"},
		}}, true
	})

	bi := Info()
	assert.Equal(t, "portfolio-api", bi.Service)
	assert.Equal(t, "dev", bi.Version)
	assert.Equal(t, "abc123", bi.Commit)
	assert.Equal(t, "2025-09-02T10:00:00Z", bi.Date)
	assert.Equal(t, "go1.25.0", bi.GoVersion)
}

func TestInfo_LdflagsWinOverVCS(t *testing.T) {
	kit.Swap(t, &commit, "4f2a9c1")
	kit.Swap(t, &version, "v0.3.0")
	kit.Swap(t, &readBuildInfo, func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}}}, true
	})

	bi := Info()
	assert.Equal(t, "v0.3.0", bi.Version)
	assert.Equal(t, "4f2a9c1", bi.Commit)
	assert.Equal(t, "unknown", bi.Date)
}

func TestInfo_WithoutBuildInfo(t *testing.T) {
	kit.Swap(t, &readBuildInfo, func() (*debug.BuildInfo, bool) { return nil, false })

	bi := Info()
	assert.Equal(t, "none", bi.Commit)
	assert.Empty(t, bi.GoVersion)
}
