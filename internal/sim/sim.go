package sim

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/iti/rngstream"
	"golang.org/x/sync/errgroup"

	"github.com/dantte-lp/l2sim/internal/cdp"
	"github.com/dantte-lp/l2sim/internal/netio"
	"github.com/dantte-lp/l2sim/internal/protocol"
	"github.com/dantte-lp/l2sim/internal/stp"
	"github.com/dantte-lp/l2sim/internal/topology"
)

// Sentinel errors for simulation operations.
var (
	// ErrDeviceNotFound indicates the named device is not part of the
	// simulation. It is the topology sentinel so either layer matches.
	ErrDeviceNotFound = topology.ErrDeviceNotFound

	// ErrInvalidInterval indicates a non-positive tick interval or
	// duration.
	ErrInvalidInterval = errors.New("interval must be positive")
)

// Defaults are the protocol configurations applied to devices whose
// topology entry leaves a protocol unconfigured.
type Defaults struct {
	STP stp.Config
	CDP cdp.Config
}

// StandardDefaults returns 802.1D STP timers and a 60s/180s CDPv2
// configuration.
func StandardDefaults() Defaults {
	return Defaults{
		STP: stp.DefaultConfig(),
		CDP: cdp.DefaultConfig(),
	}
}

// Option configures optional Simulation parameters.
type Option func(*Simulation)

// WithLogger sets the simulation logger. Protocol loggers derive from it.
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics attaches a MetricsReporter to every protocol instance.
func WithMetrics(mr protocol.MetricsReporter) Option {
	return func(s *Simulation) {
		if mr != nil {
			s.metrics = mr
		}
	}
}

// WithWorkers bounds the number of devices ticked concurrently by Step.
// Zero or less means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(s *Simulation) {
		s.workers = n
	}
}

// WithDefaults sets the configurations used by SetProtocolEnabled when a
// device has no configuration for the protocol yet.
func WithDefaults(d Defaults) Option {
	return func(s *Simulation) {
		s.defaults = d
	}
}

// rngMu serializes stream creation; rngstream seeds new streams from
// package state.
var rngMu sync.Mutex

// node is the simulation state of one device.
type node struct {
	device *topology.Device
	runner *protocol.Runner
	bridge *stp.Bridge
	cdp    *cdp.Protocol
	rng    *rngstream.RngStream
}

// Simulation drives STP and CDP on every device of a network.
type Simulation struct {
	runID    uuid.UUID
	network  *topology.Network
	fabric   *netio.Fabric
	metrics  protocol.MetricsReporter
	logger   *slog.Logger
	base     *slog.Logger
	events   *Hub
	workers  int
	defaults Defaults

	mu    sync.RWMutex
	nodes map[string]*node
	now   time.Time
	steps uint64
}

// New creates a simulation over every device already in network. Frames
// travel through fabric.
func New(network *topology.Network, fabric *netio.Fabric, opts ...Option) *Simulation {
	s := &Simulation{
		runID:    uuid.New(),
		network:  network,
		fabric:   fabric,
		metrics:  protocol.NoopMetrics(),
		logger:   slog.New(slog.DiscardHandler),
		defaults: StandardDefaults(),
		nodes:    make(map[string]*node),
	}
	for _, o := range opts {
		o(s)
	}
	if s.workers <= 0 {
		s.workers = runtime.GOMAXPROCS(0)
	}
	s.base = s.logger.With(slog.String("run_id", s.runID.String()))
	s.logger = s.base.With(slog.String("component", "sim"))
	s.events = NewHub(s.base)

	for _, d := range network.Devices() {
		s.attach(d)
	}
	s.logger.Info("simulation created",
		slog.Int("devices", len(s.nodes)),
		slog.Int("workers", s.workers),
	)
	return s
}

// RunID identifies this simulation run.
func (s *Simulation) RunID() uuid.UUID { return s.runID }

// Network returns the simulated topology.
func (s *Simulation) Network() *topology.Network { return s.network }

// Events returns the event hub.
func (s *Simulation) Events() *Hub { return s.events }

// Subscribe registers an event subscriber. See Hub.Subscribe.
func (s *Simulation) Subscribe(buffer int) (<-chan protocol.Event, func()) {
	return s.events.Subscribe(buffer)
}

// Now returns the simulated time of the last completed tick.
func (s *Simulation) Now() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now
}

// Steps returns the number of completed Step calls and virtual ticks.
func (s *Simulation) Steps() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.steps
}

// -------------------------------------------------------------------------
// Membership
// -------------------------------------------------------------------------

// AddDevice adds d to the network and starts simulating it.
func (s *Simulation) AddDevice(d *topology.Device) error {
	if err := s.network.AddDevice(d); err != nil {
		return fmt.Errorf("add device: %w", err)
	}
	s.attach(d)
	s.logger.Info("device added", slog.String("device", d.Name()))
	return nil
}

// RemoveDevice stops simulating the named device and removes it, with its
// links, from the network.
func (s *Simulation) RemoveDevice(name string) error {
	s.mu.Lock()
	_, ok := s.nodes[name]
	delete(s.nodes, name)
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("remove device %s: %w", name, ErrDeviceNotFound)
	}

	s.fabric.UnregisterDevice(name)
	if err := s.network.RemoveDevice(name); err != nil {
		return fmt.Errorf("remove device %s: %w", name, err)
	}
	s.logger.Info("device removed", slog.String("device", name))
	return nil
}

// attach builds the protocol stack of d and registers its receivers.
func (s *Simulation) attach(d *topology.Device) {
	name := d.Name()

	bridge := stp.New(d, s.network, s.fabric,
		stp.WithLogger(s.base),
		stp.WithMetrics(s.metrics),
		stp.WithNotifier(s.events),
	)
	disco := cdp.New(d, s.network, s.fabric,
		cdp.WithLogger(s.base),
		cdp.WithMetrics(s.metrics),
		cdp.WithNotifier(s.events),
	)
	s.fabric.Register(name, netio.FrameBPDU, bridge.Mailbox())
	s.fabric.Register(name, netio.FrameCDP, disco.Mailbox())

	opts := []protocol.InstanceOption{
		protocol.WithMetrics(s.metrics),
		protocol.WithNotifier(s.events),
	}
	runner := protocol.NewRunner(name,
		protocol.NewInstance(name, bridge, d, s.base, opts...),
		protocol.NewInstance(name, disco, d, s.base, opts...),
	)

	rngMu.Lock()
	rng := rngstream.New(name)
	rngMu.Unlock()

	s.mu.Lock()
	s.nodes[name] = &node{
		device: d,
		runner: runner,
		bridge: bridge,
		cdp:    disco,
		rng:    rng,
	}
	s.mu.Unlock()
}

// sortedNodes returns the nodes ordered by device name.
func (s *Simulation) sortedNodes() []*node {
	s.mu.RLock()
	out := make([]*node, 0, len(s.nodes))
	for _, n := range s.nodes {
		out = append(out, n)
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b *node) int {
		return cmp.Compare(a.device.Name(), b.device.Name())
	})
	return out
}

func (s *Simulation) lookup(name string) (*node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[name]
	if !ok {
		return nil, fmt.Errorf("device %s: %w", name, ErrDeviceNotFound)
	}
	return n, nil
}

func (s *Simulation) advance(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now.After(s.now) {
		s.now = now
	}
	s.steps++
}

// -------------------------------------------------------------------------
// Real-time driver
// -------------------------------------------------------------------------

// Step ticks every device at simulated time now, up to the configured
// number of devices at a time, and waits for all of them.
func (s *Simulation) Step(ctx context.Context, now time.Time) error {
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, n := range s.sortedNodes() {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			n.runner.Tick(now)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("step at %s: %w", now.Format(time.RFC3339), err)
	}
	s.advance(now)
	return nil
}

// Run calls Step with the wall clock every interval until ctx is
// cancelled.
func (s *Simulation) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("run every %s: %w", interval, ErrInvalidInterval)
	}

	s.logger.Info("real-time simulation started", slog.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("real-time simulation stopped",
				slog.Uint64("steps", s.Steps()),
			)
			return nil
		case now := <-ticker.C:
			if err := s.Step(ctx, now); err != nil {
				if ctx.Err() != nil {
					continue
				}
				return err
			}
		}
	}
}
