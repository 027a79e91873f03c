// Package version provides information about the build version of the service.
package version

import "runtime/debug"

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service   string `json:"service"    example:"portfolio-api"`
	Version   string `json:"version"    example:"v0.3.0"`
	Commit    string `json:"commit"     example:"4f2a9c1"`
	Date      string `json:"date"       example:"2025-09-02"`
	GoVersion string `json:"go_version" example:"go1.25.0"`
}

// Info returns the build information. Version, commit and date are set at build time:
//
//	-ldflags "-X 'portfolio/internal/core/version.version=v0.3.0'
//	-X 'portfolio/internal/core/version.commit=4f2a9c1' -X 'portfolio/internal/core/version.date=2025-09-02'"
//
// Without ldflags the commit and date fall back to the vcs stamp of the module build
func Info() BuildInfo {
	bi := BuildInfo{
		Service: Service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	if info, ok := readBuildInfo(); ok {
		bi.GoVersion = info.GoVersion
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && bi.Commit == "none":
				bi.Commit = s.Value
			case s.Key == "vcs.time" && bi.Date == "unknown":
				bi.Date = s.Value
			}
		}
	}
	return bi
}

// Service is the API service name reported by meta endpoints
const Service = "portfolio-api"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	readBuildInfo = debug.ReadBuildInfo
)
