package protocol

// MetricsReporter receives protocol metrics. The Prometheus collector in
// internal/metrics implements it. Protocol names are passed as their
// configuration strings ("stp", "cdp").
type MetricsReporter interface {
	// SetActive records whether the protocol is running on the device.
	SetActive(device, protocol string, active bool)

	// SetNeighbors records the current neighbor table size.
	SetNeighbors(device, protocol string, n int)

	// IncTicks counts a lifecycle tick.
	IncTicks(device, protocol string)

	// IncRecalculations counts a dirty-gated recalculation.
	IncRecalculations(device, protocol string)

	// IncPanics counts a recovered panic inside a protocol step.
	IncPanics(device, protocol string)

	// IncFramesSent counts a transmitted control frame.
	IncFramesSent(device, protocol string)

	// IncFramesReceived counts a received and accepted control frame.
	IncFramesReceived(device, protocol string)

	// IncFramesDropped counts a received frame that was discarded.
	IncFramesDropped(device, protocol, reason string)

	// IncTopologyChanges counts an STP topology change.
	IncTopologyChanges(device string)

	// RecordPortTransition counts an STP port state transition.
	RecordPortTransition(device, port, from, to string)
}

// noopMetrics is the default MetricsReporter that discards everything.
type noopMetrics struct{}

func (noopMetrics) SetActive(string, string, bool) {}
func (noopMetrics) SetNeighbors(string, string, int) {}
func (noopMetrics) IncTicks(string, string) {}
func (noopMetrics) IncRecalculations(string, string) {}
func (noopMetrics) IncPanics(string, string) {}
func (noopMetrics) IncFramesSent(string, string) {}
func (noopMetrics) IncFramesReceived(string, string) {}
func (noopMetrics) IncFramesDropped(string, string, string) {}
func (noopMetrics) IncTopologyChanges(string) {}
func (noopMetrics) RecordPortTransition(string, string, string, string) {}

// NoopMetrics returns a MetricsReporter that discards all observations.
func NoopMetrics() MetricsReporter { return noopMetrics{} }
