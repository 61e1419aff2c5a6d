package l2metrics_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	l2metrics "github.com/dantte-lp/l2sim/internal/metrics"
	"github.com/dantte-lp/l2sim/internal/netio"
	"github.com/dantte-lp/l2sim/internal/sim"
)

func TestNewCollector(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := l2metrics.NewCollector(reg)

	vecs := map[string]any{
		"Active":          c.Active,
		"Neighbors":       c.Neighbors,
		"Ticks":           c.Ticks,
		"Recalculations":  c.Recalculations,
		"Panics":          c.Panics,
		"TopologyChanges": c.TopologyChanges,
		"PortTransitions": c.PortTransitions,
		"FramesSent":      c.FramesSent,
		"FramesReceived":  c.FramesReceived,
		"FramesDropped":   c.FramesDropped,
	}
	for name, v := range vecs {
		switch vec := v.(type) {
		case *prometheus.GaugeVec:
			if vec == nil {
				t.Errorf("%s is nil", name)
			}
		case *prometheus.CounterVec:
			if vec == nil {
				t.Errorf("%s is nil", name)
			}
		}
	}

	// No data yet, so families may be empty -- but registration must not panic.
	if _, err := reg.Gather(); err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	l2metrics.NewCollector(reg)

	defer func() {
		if recover() == nil {
			t.Error("second NewCollector on the same registry did not panic")
		}
	}()
	l2metrics.NewCollector(reg)
}

func TestProtocolGauges(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := l2metrics.NewCollector(reg)

	c.SetActive("sw1", "stp", true)
	if val := gaugeValue(t, c.Active, "sw1", "stp"); val != 1 {
		t.Errorf("active = %v, want 1", val)
	}

	c.SetActive("sw1", "stp", false)
	if val := gaugeValue(t, c.Active, "sw1", "stp"); val != 0 {
		t.Errorf("active after disable = %v, want 0", val)
	}

	c.SetNeighbors("sw1", "cdp", 3)
	c.SetNeighbors("sw1", "cdp", 2)
	if val := gaugeValue(t, c.Neighbors, "sw1", "cdp"); val != 2 {
		t.Errorf("neighbors = %v, want 2", val)
	}
}

func TestProtocolCounters(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := l2metrics.NewCollector(reg)

	for range 3 {
		c.IncTicks("r1", "cdp")
	}
	c.IncRecalculations("r1", "cdp")
	c.IncPanics("r1", "cdp")

	tests := []struct {
		name string
		vec  *prometheus.CounterVec
		want float64
	}{
		{name: "ticks", vec: c.Ticks, want: 3},
		{name: "recalculations", vec: c.Recalculations, want: 1},
		{name: "panics", vec: c.Panics, want: 1},
	}
	for _, tt := range tests {
		if val := counterValue(t, tt.vec, "r1", "cdp"); val != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, val, tt.want)
		}
	}
}

func TestFrameCounters(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := l2metrics.NewCollector(reg)

	c.IncFramesSent("sw1", "stp")
	c.IncFramesSent("sw1", "stp")
	c.IncFramesReceived("sw1", "stp")
	c.IncFramesDropped("sw1", "cdp", "checksum")
	c.IncFramesDropped("sw1", "cdp", "checksum")
	c.IncFramesDropped("sw1", "cdp", "malformed")

	if val := counterValue(t, c.FramesSent, "sw1", "stp"); val != 2 {
		t.Errorf("FramesSent = %v, want 2", val)
	}
	if val := counterValue(t, c.FramesReceived, "sw1", "stp"); val != 1 {
		t.Errorf("FramesReceived = %v, want 1", val)
	}
	if val := counterValue(t, c.FramesDropped, "sw1", "cdp", "checksum"); val != 2 {
		t.Errorf("FramesDropped(checksum) = %v, want 2", val)
	}
	if val := counterValue(t, c.FramesDropped, "sw1", "cdp", "malformed"); val != 1 {
		t.Errorf("FramesDropped(malformed) = %v, want 1", val)
	}
}

func TestSpanningTreeCounters(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := l2metrics.NewCollector(reg)

	c.IncTopologyChanges("sw2")
	c.RecordPortTransition("sw2", "Gi0/1", "Listening", "Learning")
	c.RecordPortTransition("sw2", "Gi0/1", "Learning", "Forwarding")
	c.RecordPortTransition("sw2", "Gi0/1", "Listening", "Learning")

	if val := counterValue(t, c.TopologyChanges, "sw2"); val != 1 {
		t.Errorf("TopologyChanges = %v, want 1", val)
	}
	if val := counterValue(t, c.PortTransitions, "sw2", "Gi0/1", "Listening", "Learning"); val != 2 {
		t.Errorf("PortTransitions(Listening->Learning) = %v, want 2", val)
	}
	if val := counterValue(t, c.PortTransitions, "sw2", "Gi0/1", "Learning", "Forwarding"); val != 1 {
		t.Errorf("PortTransitions(Learning->Forwarding) = %v, want 1", val)
	}
}

const pairYAML = `
devices:
  - {name: sw1, kind: switch, interfaces: [{name: Gi0/1}]}
  - {name: sw2, kind: switch, interfaces: [{name: Gi0/1}]}
links:
  - {a: "sw1:Gi0/1", b: "sw2:Gi0/1"}
`

// TestSimulationReportsMetrics runs two cabled switches through the
// simulation with the collector attached.
func TestSimulationReportsMetrics(t *testing.T) {
	t.Parallel()

	n, err := sim.DecodeTopology(strings.NewReader(pairYAML), sim.StandardDefaults())
	if err != nil {
		t.Fatalf("DecodeTopology: %v", err)
	}

	reg := prometheus.NewRegistry()
	c := l2metrics.NewCollector(reg)
	s := sim.New(n, netio.NewFabric(n),
		sim.WithLogger(slog.New(slog.DiscardHandler)),
		sim.WithMetrics(c),
	)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 5 {
		if err := s.Step(context.Background(), start.Add(time.Duration(i)*time.Second)); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}

	for _, dev := range []string{"sw1", "sw2"} {
		for _, proto := range []string{"stp", "cdp"} {
			if val := gaugeValue(t, c.Active, dev, proto); val != 1 {
				t.Errorf("%s %s active = %v, want 1", dev, proto, val)
			}
			if val := counterValue(t, c.Ticks, dev, proto); val != 5 {
				t.Errorf("%s %s ticks = %v, want 5", dev, proto, val)
			}
		}
		if val := gaugeValue(t, c.Neighbors, dev, "cdp"); val != 1 {
			t.Errorf("%s cdp neighbors = %v, want 1", dev, val)
		}
		if val := counterValue(t, c.FramesSent, dev, "cdp"); val == 0 {
			t.Errorf("%s sent no CDP advertisements", dev)
		}
	}

	// sw1 has the lower generated MAC and becomes root.
	if val := counterValue(t, c.FramesSent, "sw1", "stp"); val == 0 {
		t.Error("root bridge sent no BPDUs")
	}
	if val := counterValue(t, c.FramesReceived, "sw2", "stp"); val == 0 {
		t.Error("sw2 accepted no BPDUs")
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{
		"l2sim_protocol_active",
		"l2sim_protocol_ticks_total",
		"l2sim_frames_sent_total",
		"l2sim_frames_received_total",
	} {
		if !names[want] {
			t.Errorf("metric family %s not gathered", want)
		}
	}
}

// -------------------------------------------------------------------------
// Helpers
// -------------------------------------------------------------------------

// gaugeValue reads the current value of a GaugeVec with the given labels.
func gaugeValue(t *testing.T, vec *prometheus.GaugeVec, labels ...string) float64 {
	t.Helper()

	gauge, err := vec.GetMetricWithLabelValues(labels...)
	if err != nil {
		t.Fatalf("GetMetricWithLabelValues(%v): %v", labels, err)
	}

	m := &dto.Metric{}
	if err := gauge.Write(m); err != nil {
		t.Fatalf("Write metric: %v", err)
	}

	return m.GetGauge().GetValue()
}

// counterValue reads the current value of a CounterVec with the given labels.
func counterValue(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()

	counter, err := vec.GetMetricWithLabelValues(labels...)
	if err != nil {
		t.Fatalf("GetMetricWithLabelValues(%v): %v", labels, err)
	}

	m := &dto.Metric{}
	if err := counter.Write(m); err != nil {
		t.Fatalf("Write metric: %v", err)
	}

	return m.GetCounter().GetValue()
}
