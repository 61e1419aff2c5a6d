// Package protocol implements the generic per-device protocol lifecycle
// engine shared by every simulated control-plane protocol.
//
// Each protocol (STP, CDP) implements the Protocol interface. An Instance
// binds one Protocol to one device and drives it once per simulation tick:
// neighbor refresh, timer processing, then a recalculation gated by the
// dirty flag. A Runner groups the instances of a single device so they are
// never ticked concurrently.
package protocol
