package protocol

import (
	"sync"
	"time"
)

// Runner ticks every protocol instance of a single device. Instances are
// ticked sequentially in registration order, and at most one Tick runs
// per Runner at a time.
type Runner struct {
	mu        sync.Mutex
	device    string
	instances []*Instance
}

// NewRunner creates a Runner for device with the given instances.
func NewRunner(device string, instances ...*Instance) *Runner {
	return &Runner{
		device:    device,
		instances: instances,
	}
}

// Device returns the device name.
func (r *Runner) Device() string { return r.device }

// Tick runs one lifecycle step of every instance at now and returns the
// per-instance results in registration order.
func (r *Runner) Tick(now time.Time) []TickResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	results := make([]TickResult, len(r.instances))
	for i, in := range r.instances {
		results[i] = in.Tick(now)
	}
	return results
}

// Instance returns the instance running protocol k, if any.
func (r *Runner) Instance(k Kind) (*Instance, bool) {
	for _, in := range r.instances {
		if in.Kind() == k {
			return in, true
		}
	}
	return nil, false
}

// Snapshots returns the engine state of every instance.
func (r *Runner) Snapshots() []StateSnapshot {
	out := make([]StateSnapshot, 0, len(r.instances))
	for _, in := range r.instances {
		out = append(out, in.Snapshot())
	}
	return out
}
