// Package topology provides the in-memory device and link model the
// protocol engine runs against.
//
// Protocols only read from it (interfaces, link peers, configuration blobs)
// and mutate it through its exported methods (counters, log). The model is
// safe for concurrent use by many device runners.
package topology
