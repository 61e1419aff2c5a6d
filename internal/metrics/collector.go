package l2metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dantte-lp/l2sim/internal/protocol"
)

// -------------------------------------------------------------------------
// Prometheus Metric Constants
// -------------------------------------------------------------------------

const namespace = "l2sim"

// Subsystems.
const (
	subsystemProtocol = "protocol"
	subsystemSTP      = "stp"
	subsystemFrames   = "frames"
)

// Label names.
const (
	labelDevice   = "device"
	labelProtocol = "protocol"
	labelPort     = "port"
	labelReason   = "reason"
	labelFrom     = "from"
	labelTo       = "to"
)

// -------------------------------------------------------------------------
// Collector: Prometheus Simulation Metrics
// -------------------------------------------------------------------------

// Collector holds all simulation Prometheus metrics and implements
// protocol.MetricsReporter.
//
// Metric groups:
//   - Protocol gauges and counters per device and protocol.
//   - STP topology changes and port transitions for convergence alerting.
//   - Control frame volumes, with drops labeled by reason.
type Collector struct {
	// Active is 1 while the protocol runs on the device.
	Active *prometheus.GaugeVec

	// Neighbors tracks the neighbor table size per device and protocol.
	Neighbors *prometheus.GaugeVec

	// Ticks counts lifecycle ticks.
	Ticks *prometheus.CounterVec

	// Recalculations counts ticks that found dirty state and recomputed.
	Recalculations *prometheus.CounterVec

	// Panics counts panics recovered inside protocol steps. Any non-zero
	// value is a bug.
	Panics *prometheus.CounterVec

	// TopologyChanges counts STP topology change events per bridge.
	TopologyChanges *prometheus.CounterVec

	// PortTransitions counts STP port state changes, labeled with the
	// old and new state.
	PortTransitions *prometheus.CounterVec

	FramesSent     *prometheus.CounterVec
	FramesReceived *prometheus.CounterVec

	// FramesDropped counts discarded frames (checksum, malformed, stale,
	// full mailbox, full neighbor table).
	FramesDropped *prometheus.CounterVec
}

var _ protocol.MetricsReporter = (*Collector)(nil)

// NewCollector creates a Collector with all metrics registered against
// the provided prometheus.Registerer. If reg is nil,
// prometheus.DefaultRegisterer is used.
//
// All metrics are created under the "l2sim_" namespace.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := newMetrics()

	reg.MustRegister(
		c.Active,
		c.Neighbors,
		c.Ticks,
		c.Recalculations,
		c.Panics,
		c.TopologyChanges,
		c.PortTransitions,
		c.FramesSent,
		c.FramesReceived,
		c.FramesDropped,
	)

	return c
}

// newMetrics creates all Prometheus metric vectors without registering them.
func newMetrics() *Collector {
	protoLabels := []string{labelDevice, labelProtocol}
	dropLabels := []string{labelDevice, labelProtocol, labelReason}
	transitionLabels := []string{labelDevice, labelPort, labelFrom, labelTo}

	return &Collector{
		Active: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystemProtocol,
			Name:      "active",
			Help:      "Whether the protocol is running on the device (1) or not (0).",
		}, protoLabels),

		Neighbors: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystemProtocol,
			Name:      "neighbors",
			Help:      "Current number of neighbors known to the protocol.",
		}, protoLabels),

		Ticks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemProtocol,
			Name:      "ticks_total",
			Help:      "Total protocol lifecycle ticks.",
		}, protoLabels),

		Recalculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemProtocol,
			Name:      "recalculations_total",
			Help:      "Total protocol recalculations triggered by changed state.",
		}, protoLabels),

		Panics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemProtocol,
			Name:      "panics_total",
			Help:      "Total panics recovered inside protocol steps.",
		}, protoLabels),

		TopologyChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemSTP,
			Name:      "topology_changes_total",
			Help:      "Total spanning tree topology changes.",
		}, []string{labelDevice}),

		PortTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemSTP,
			Name:      "port_transitions_total",
			Help:      "Total spanning tree port state transitions.",
		}, transitionLabels),

		FramesSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemFrames,
			Name:      "sent_total",
			Help:      "Total control frames transmitted.",
		}, protoLabels),

		FramesReceived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemFrames,
			Name:      "received_total",
			Help:      "Total control frames received and accepted.",
		}, protoLabels),

		FramesDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemFrames,
			Name:      "dropped_total",
			Help:      "Total control frames discarded, by reason.",
		}, dropLabels),
	}
}

// -------------------------------------------------------------------------
// Protocol Lifecycle
// -------------------------------------------------------------------------

// SetActive sets the active gauge to 1 or 0.
func (c *Collector) SetActive(device, proto string, active bool) {
	v := 0.0
	if active {
		v = 1
	}
	c.Active.WithLabelValues(device, proto).Set(v)
}

// SetNeighbors records the neighbor table size.
func (c *Collector) SetNeighbors(device, proto string, n int) {
	c.Neighbors.WithLabelValues(device, proto).Set(float64(n))
}

// IncTicks increments the tick counter.
func (c *Collector) IncTicks(device, proto string) {
	c.Ticks.WithLabelValues(device, proto).Inc()
}

// IncRecalculations increments the recalculation counter.
func (c *Collector) IncRecalculations(device, proto string) {
	c.Recalculations.WithLabelValues(device, proto).Inc()
}

// IncPanics increments the recovered panic counter.
func (c *Collector) IncPanics(device, proto string) {
	c.Panics.WithLabelValues(device, proto).Inc()
}

// -------------------------------------------------------------------------
// Frame Counters
// -------------------------------------------------------------------------

// IncFramesSent increments the transmitted frames counter.
func (c *Collector) IncFramesSent(device, proto string) {
	c.FramesSent.WithLabelValues(device, proto).Inc()
}

// IncFramesReceived increments the accepted frames counter.
func (c *Collector) IncFramesReceived(device, proto string) {
	c.FramesReceived.WithLabelValues(device, proto).Inc()
}

// IncFramesDropped increments the dropped frames counter for reason.
func (c *Collector) IncFramesDropped(device, proto, reason string) {
	c.FramesDropped.WithLabelValues(device, proto, reason).Inc()
}

// -------------------------------------------------------------------------
// Spanning Tree
// -------------------------------------------------------------------------

// IncTopologyChanges increments the STP topology change counter.
func (c *Collector) IncTopologyChanges(device string) {
	c.TopologyChanges.WithLabelValues(device).Inc()
}

// RecordPortTransition increments the port transition counter with the
// old and new state labels. Used for alerting on ports flapping back to
// Blocking.
func (c *Collector) RecordPortTransition(device, port, from, to string) {
	c.PortTransitions.WithLabelValues(device, port, from, to).Inc()
}
