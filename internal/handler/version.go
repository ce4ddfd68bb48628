package handler

import (
	"net/http"
	"os"
	"runtime"
	"runtime/debug"
	"sync"
)

// VersionInfo is the body of GET /version
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
}

// Set with -ldflags "-X github.com/osse101/GardenBot_Go/internal/handler.Version=..."
var (
	Version   = "dev"
	BuildTime = ""
	GitCommit = ""
)

// HandleVersion reports build information
// @Summary Build information
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, buildInfo())
	}
}

// GetVersion prefers the linked-in version, then $VERSION
func GetVersion() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}

var vcsInfo = sync.OnceValues(func() (revision, at string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			at = s.Value
		}
	}
	return revision, at
})

// buildInfo fills commit and build time from the binary's VCS stamp when
// they were not linked in
func buildInfo() VersionInfo {
	v := VersionInfo{
		Version:   GetVersion(),
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
	revision, at := vcsInfo()
	if v.GitCommit == "" {
		v.GitCommit = revision
	}
	if v.BuildTime == "" {
		v.BuildTime = at
	}
	return v
}
