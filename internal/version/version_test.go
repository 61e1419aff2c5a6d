package appversion_test

import (
	"strings"
	"testing"

	appversion "github.com/dantte-lp/l2sim/internal/version"
)

func TestCurrent(t *testing.T) {
	t.Parallel()

	info := appversion.Current("l2simd")

	if info.Binary != "l2simd" || info.Version != appversion.Version {
		t.Errorf("Current = %+v", info)
	}
	if info.API != "l2sim.v1.SimulatorService" {
		t.Errorf("API = %q", info.API)
	}
	if info.CDP != 2 {
		t.Errorf("CDP = %d, want 2", info.CDP)
	}
}

func TestFull(t *testing.T) {
	t.Parallel()

	out := appversion.Full("l2simctl")

	for _, want := range []string{
		"l2simctl " + appversion.Version,
		"commit:  " + appversion.GitCommit,
		"api:     l2sim.v1.SimulatorService",
		"stp:     IEEE 802.1D",
		"cdp:     version 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Full() missing %q:\n%s", want, out)
		}
	}
	if strings.HasSuffix(out, "\n") {
		t.Errorf("Full() ends with a newline: %q", out)
	}
}
