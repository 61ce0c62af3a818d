// Package version carries build metadata injected with ldflags:
//
//	go build -ldflags "-X github.com/teranos/paw/version.Version=v0.3.0 -X github.com/teranos/paw/version.CommitHash=$(git rev-parse HEAD)"
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/teranos/paw/internal/util"
)

var (
	// Version is the release tag, "dev" for local builds
	Version = "dev"

	// CommitHash is the git commit the binary was built from
	CommitHash = "dev"

	// BuildTime is when the binary was built
	BuildTime = "unknown"
)

// Info is the build metadata of the running binary.
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get returns the build metadata of the running binary.
func Get() Info {
	return Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func (i Info) String() string {
	return fmt.Sprintf("paw %s (commit %s, built %s)", i.Version, i.Short(), i.BuildTime)
}

// Short returns the abbreviated commit hash.
func (i Info) Short() string {
	if len(i.CommitHash) > 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}

// AppID identifies paw to AWS in the SDK user agent, e.g. "paw/v0.3.0".
// The SDK accepts at most 50 characters of [A-Za-z0-9!#$%&'*+-.^_`|~/].
func (i Info) AppID() string {
	return util.Truncate("paw/"+strings.TrimSpace(i.Version), 50)
}
