package protocol

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"
)

// ErrStepPanic indicates a protocol step panicked and was recovered.
var ErrStepPanic = errors.New("protocol step panicked")

// -------------------------------------------------------------------------
// Contracts
// -------------------------------------------------------------------------

// Config is the minimal contract every protocol configuration satisfies.
// A nil or disabled configuration keeps the protocol inactive.
type Config interface {
	IsEnabled() bool
}

// ConfigSource supplies protocol configuration blobs for one device.
// The generation increases every time the blob is replaced; zero means
// the blob was never set.
type ConfigSource interface {
	ProtocolConfig(name string) (cfg any, generation uint64, ok bool)
}

// Protocol is the lifecycle contract of a simulated protocol on one device.
//
// The Instance calls the methods from a single goroutine per tick in the
// order UpdateNeighbors, ProcessTimers, Recalculate. The boolean results
// mark the state dirty; Recalculate runs only when something was dirty.
type Protocol interface {
	// Kind identifies the protocol.
	Kind() Kind

	// Initialize (re)builds the protocol state from cfg. It is called when
	// the protocol becomes active and whenever the configuration
	// generation changes. A non-nil error keeps the protocol inactive.
	Initialize(now time.Time, cfg Config) error

	// UpdateNeighbors consumes received frames and reconciles the neighbor
	// table with the link state reported by the topology.
	UpdateNeighbors(now time.Time) bool

	// ProcessTimers sends due advertisements and reports expired timers.
	ProcessTimers(now time.Time) bool

	// Recalculate runs the protocol's convergence algorithm.
	Recalculate(now time.Time)

	// Stop releases protocol state when the protocol is disabled.
	Stop(now time.Time)

	// NeighborCount returns the current number of neighbors.
	NeighborCount() int
}

// -------------------------------------------------------------------------
// State
// -------------------------------------------------------------------------

// State is the engine-owned part of a protocol's per-device state.
type State struct {
	active      bool
	dirty       bool
	generation  uint64
	rejectedGen uint64

	ticks          uint64
	recalculations uint64
	lastTick       time.Time
	lastRecalc     time.Time
	activeSince    time.Time
}

// StateSnapshot is a read-only copy of an Instance's engine state.
type StateSnapshot struct {
	Device         string
	Protocol       Kind
	Active         bool
	Dirty          bool
	Generation     uint64
	Ticks          uint64
	Recalculations uint64
	Neighbors      int
	LastTick       time.Time
	LastRecalc     time.Time
	ActiveSince    time.Time
}

// TickResult summarizes one Instance.Tick call.
type TickResult struct {
	// Active reports whether the protocol ran this tick.
	Active bool

	// Recalculated reports whether the dirty-gated recalculation ran.
	Recalculated bool

	// Neighbors is the neighbor count after the tick.
	Neighbors int
}

// -------------------------------------------------------------------------
// Instance
// -------------------------------------------------------------------------

// InstanceOption configures optional Instance parameters.
type InstanceOption func(*Instance)

// WithMetrics attaches a MetricsReporter to the instance. If mr is nil,
// the default no-op reporter is used.
func WithMetrics(mr MetricsReporter) InstanceOption {
	return func(in *Instance) {
		if mr != nil {
			in.metrics = mr
		}
	}
}

// WithNotifier attaches an event Notifier to the instance.
func WithNotifier(n Notifier) InstanceOption {
	return func(in *Instance) {
		if n != nil {
			in.notifier = n
		}
	}
}

// Instance drives one Protocol on one device.
type Instance struct {
	mu sync.Mutex

	device   string
	proto    Protocol
	source   ConfigSource
	state    State
	metrics  MetricsReporter
	notifier Notifier
	logger   *slog.Logger
}

// NewInstance binds p to the device identified by device. The protocol is
// inactive until the first Tick finds an enabled configuration in src.
func NewInstance(
	device string,
	p Protocol,
	src ConfigSource,
	logger *slog.Logger,
	opts ...InstanceOption,
) *Instance {
	in := &Instance{
		device:   device,
		proto:    p,
		source:   src,
		metrics:  noopMetrics{},
		notifier: noopNotifier{},
		logger: logger.With(
			slog.String("device", device),
			slog.String("protocol", p.Kind().String()),
		),
	}
	for _, o := range opts {
		o(in)
	}
	return in
}

// Device returns the name of the device this instance runs on.
func (in *Instance) Device() string { return in.device }

// Kind returns the protocol kind.
func (in *Instance) Kind() Kind { return in.proto.Kind() }

// Protocol returns the wrapped protocol implementation.
func (in *Instance) Protocol() Protocol { return in.proto }

// Tick runs one lifecycle step at simulated time now:
//
//  1. look up the configuration; missing or disabled stops the protocol;
//  2. initialize on activation or configuration change;
//  3. UpdateNeighbors, then ProcessTimers;
//  4. Recalculate if either step (or activation) marked the state dirty.
func (in *Instance) Tick(now time.Time) TickResult {
	in.mu.Lock()
	defer in.mu.Unlock()

	name := in.proto.Kind().String()
	in.state.ticks++
	in.state.lastTick = now
	in.metrics.IncTicks(in.device, name)

	cfg, gen, ok := in.lookupConfig()
	if !ok {
		in.deactivate(now, "configuration missing or disabled")
		return TickResult{}
	}

	if !in.state.active || gen != in.state.generation {
		if !in.activate(now, cfg, gen) {
			return TickResult{}
		}
	}

	recalculated, ok := in.runSteps(now)
	if !ok {
		return TickResult{}
	}

	n := in.proto.NeighborCount()
	in.metrics.SetNeighbors(in.device, name, n)

	return TickResult{
		Active:       true,
		Recalculated: recalculated,
		Neighbors:    n,
	}
}

// lookupConfig fetches and type-checks the configuration blob. A blob of
// the wrong type is treated as missing.
func (in *Instance) lookupConfig() (Config, uint64, bool) {
	raw, gen, ok := in.source.ProtocolConfig(in.proto.Kind().String())
	if !ok || raw == nil {
		return nil, 0, false
	}
	cfg, valid := raw.(Config)
	if !valid || !cfg.IsEnabled() {
		return nil, 0, false
	}
	return cfg, gen, true
}

// activate initializes the protocol for configuration generation gen.
// A rejected generation is not retried until the configuration changes.
func (in *Instance) activate(now time.Time, cfg Config, gen uint64) bool {
	if gen != 0 && gen == in.state.rejectedGen {
		return false
	}

	if in.state.active {
		in.proto.Stop(now)
		in.state.active = false
	}

	if err := in.safeInitialize(now, cfg); err != nil {
		in.state.rejectedGen = gen
		in.metrics.SetActive(in.device, in.proto.Kind().String(), false)
		in.logger.Warn("protocol configuration rejected",
			slog.Uint64("generation", gen),
			slog.String("error", err.Error()),
		)
		in.notifier.Notify(Event{
			Time:     now,
			Device:   in.device,
			Protocol: in.proto.Kind(),
			Type:     EventConfigRejected,
			Detail:   err.Error(),
		})
		return false
	}

	in.state.active = true
	in.state.dirty = true
	in.state.generation = gen
	in.state.rejectedGen = 0
	in.state.activeSince = now
	in.metrics.SetActive(in.device, in.proto.Kind().String(), true)

	in.logger.Info("protocol activated", slog.Uint64("generation", gen))
	return true
}

// deactivate stops an active protocol.
func (in *Instance) deactivate(now time.Time, reason string) {
	if !in.state.active {
		return
	}

	in.proto.Stop(now)
	in.state.active = false
	in.state.dirty = false

	name := in.proto.Kind().String()
	in.metrics.SetActive(in.device, name, false)
	in.metrics.SetNeighbors(in.device, name, 0)

	in.logger.Info("protocol deactivated", slog.String("reason", reason))
}

// runSteps executes the three lifecycle steps in order. ok is false when a
// step panicked; the instance is then deactivated so the next tick
// re-initializes it from configuration.
func (in *Instance) runSteps(now time.Time) (recalculated, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			in.recoverStep(now, r)
			recalculated, ok = false, false
		}
	}()

	if in.proto.UpdateNeighbors(now) {
		in.state.dirty = true
	}

	if in.proto.ProcessTimers(now) {
		in.state.dirty = true
	}

	if in.state.dirty {
		in.proto.Recalculate(now)
		in.state.dirty = false
		in.state.recalculations++
		in.state.lastRecalc = now
		in.metrics.IncRecalculations(in.device, in.proto.Kind().String())
		recalculated = true
	}

	return recalculated, true
}

// safeInitialize converts a panic during Initialize into an error.
func (in *Instance) safeInitialize(now time.Time, cfg Config) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("initialize %s: %w: %v", in.proto.Kind(), ErrStepPanic, r)
		}
	}()
	return in.proto.Initialize(now, cfg)
}

// recoverStep logs an invariant violation caught inside a protocol step.
func (in *Instance) recoverStep(now time.Time, r any) {
	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)

	name := in.proto.Kind().String()
	in.metrics.IncPanics(in.device, name)
	in.logger.Error("protocol invariant violation, resetting instance",
		slog.Any("panic", r),
		slog.String("stack", string(buf[:n])),
	)

	in.state.active = false
	in.state.dirty = false
	in.metrics.SetActive(in.device, name, false)

	// Stop may panic again on the same corrupted state; the instance is
	// rebuilt by Initialize on the next tick either way.
	func() {
		defer func() { _ = recover() }()
		in.proto.Stop(now)
	}()
}

// Snapshot returns a copy of the engine state.
func (in *Instance) Snapshot() StateSnapshot {
	in.mu.Lock()
	defer in.mu.Unlock()

	n := 0
	if in.state.active {
		n = in.proto.NeighborCount()
	}

	return StateSnapshot{
		Device:         in.device,
		Protocol:       in.proto.Kind(),
		Active:         in.state.active,
		Dirty:          in.state.dirty,
		Generation:     in.state.generation,
		Ticks:          in.state.ticks,
		Recalculations: in.state.recalculations,
		Neighbors:      n,
		LastTick:       in.state.lastTick,
		LastRecalc:     in.state.lastRecalc,
		ActiveSince:    in.state.activeSince,
	}
}

// Active reports whether the protocol is currently running.
func (in *Instance) Active() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.state.active
}
