// Package appversion describes an l2sim build: the version metadata
// injected via ldflags and the protocol and API revisions the build
// simulates and serves.
//
//	-ldflags="-X github.com/dantte-lp/l2sim/internal/version.Version=v1.0.0
//	          -X github.com/dantte-lp/l2sim/internal/version.GitCommit=abc1234
//	          -X github.com/dantte-lp/l2sim/internal/version.BuildDate=2026-02-22T12:00:00Z"
package appversion

import (
	"fmt"
	"strings"

	"github.com/dantte-lp/l2sim/internal/cdp"
	"github.com/dantte-lp/l2sim/pkg/l2simpb/l2sim/v1/l2simv1connect"
)

// Version is the semantic version (e.g., "v0.1.0" or "dev").
var Version = "dev"

// GitCommit is the short git commit hash at build time.
var GitCommit = "unknown"

// BuildDate is the RFC 3339 build timestamp.
var BuildDate = "unknown"

// STPStandard names the spanning tree revision the bridges implement.
const STPStandard = "IEEE 802.1D"

// Info describes one binary of the build.
type Info struct {
	Binary    string `json:"binary"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`

	// API is the ConnectRPC service the daemon serves.
	API string `json:"api"`

	STP string `json:"stp"`
	CDP uint8  `json:"cdp_version"`
}

// Current returns the Info of binary for this build.
func Current(binary string) Info {
	return Info{
		Binary:    binary,
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		API:       l2simv1connect.SimulatorServiceName,
		STP:       STPStandard,
		CDP:       cdp.DefaultVersion,
	}
}

// String renders the Info on several lines.
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", i.Binary, i.Version)
	fmt.Fprintf(&b, "  commit:  %s\n", i.GitCommit)
	fmt.Fprintf(&b, "  built:   %s\n", i.BuildDate)
	fmt.Fprintf(&b, "  api:     %s\n", i.API)
	fmt.Fprintf(&b, "  stp:     %s\n", i.STP)
	fmt.Fprintf(&b, "  cdp:     version %d", i.CDP)
	return b.String()
}

// Full returns the human-readable version of binary.
func Full(binary string) string {
	return Current(binary).String()
}
