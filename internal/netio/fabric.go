package netio

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dantte-lp/l2sim/internal/topology"
)

var (
	// ErrNoPeer indicates the sending interface has no operational peer.
	// It is the normal outcome on unconnected or shut interfaces.
	ErrNoPeer = errors.New("no operational peer")

	// ErrNoReceiver indicates the peer device runs no receiver for the
	// frame kind (protocol disabled or device without that protocol).
	ErrNoReceiver = errors.New("no receiver for frame kind")

	// ErrMailboxFull indicates the receiver refused the frame.
	ErrMailboxFull = errors.New("receiver mailbox full")
)

// receiverKey identifies a registered receiver.
type receiverKey struct {
	device string
	kind   FrameKind
}

// FabricStats is a snapshot of fabric counters.
type FabricStats struct {
	Sent       uint64
	Delivered  uint64
	NoPeer     uint64
	NoReceiver uint64
	Dropped    uint64
	CaptureErr uint64
}

// FabricOption configures optional Fabric parameters.
type FabricOption func(*Fabric)

// WithCapture writes every carried frame to c.
func WithCapture(c *Capture) FabricOption {
	return func(f *Fabric) {
		f.capture = c
	}
}

// WithFabricLogger sets the fabric logger.
func WithFabricLogger(l *slog.Logger) FabricOption {
	return func(f *Fabric) {
		if l != nil {
			f.logger = l.With(slog.String("component", "netio.fabric"))
		}
	}
}

// Fabric is the simulated wire. It resolves the far end of a cable through
// the topology and hands the frame to the receiver the peer device
// registered for that frame kind. Delivery is synchronous: Send returns
// after the frame sits in the peer's mailbox.
type Fabric struct {
	network *topology.Network
	capture *Capture
	logger  *slog.Logger

	mu        sync.RWMutex
	receivers map[receiverKey]Receiver

	sent       atomic.Uint64
	delivered  atomic.Uint64
	noPeer     atomic.Uint64
	noReceiver atomic.Uint64
	dropped    atomic.Uint64
	captureErr atomic.Uint64
}

// NewFabric creates a fabric over network.
func NewFabric(network *topology.Network, opts ...FabricOption) *Fabric {
	f := &Fabric{
		network:   network,
		logger:    slog.New(slog.DiscardHandler),
		receivers: make(map[receiverKey]Receiver),
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Register installs r as the receiver of kind frames addressed to device.
// A previous registration for the same pair is replaced.
func (f *Fabric) Register(device string, kind FrameKind, r Receiver) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.receivers[receiverKey{device: device, kind: kind}] = r
}

// Unregister removes the receiver for (device, kind).
func (f *Fabric) Unregister(device string, kind FrameKind) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.receivers, receiverKey{device: device, kind: kind})
}

// UnregisterDevice removes every receiver of device.
func (f *Fabric) UnregisterDevice(device string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k := range f.receivers {
		if k.device == device {
			delete(f.receivers, k)
		}
	}
}

// Send transmits frame out of device:iface at simulated time now.
//
// The frame is counted on both interfaces and written to the capture (if
// any) once it is on the wire, even when the peer has no receiver for it.
// ErrNoPeer is returned when the cable is missing or either end is down.
func (f *Fabric) Send(now time.Time, kind FrameKind, device, iface string, frame []byte) error {
	peer, ok := f.network.Peer(device, iface)
	if !ok {
		f.noPeer.Add(1)
		return fmt.Errorf("send %s on %s:%s: %w", kind, device, iface, ErrNoPeer)
	}

	f.sent.Add(1)
	if d, ok := f.network.Device(device); ok {
		d.CountFrameOut(iface)
	}
	if d, ok := f.network.Device(peer.Device); ok {
		d.CountFrameIn(peer.Interface)
	}

	if f.capture != nil {
		if err := f.capture.WriteFrame(now, frame); err != nil {
			f.captureErr.Add(1)
			f.logger.Warn("capture write failed", slog.String("error", err.Error()))
		}
	}

	f.mu.RLock()
	r, ok := f.receivers[receiverKey{device: peer.Device, kind: kind}]
	f.mu.RUnlock()
	if !ok {
		f.noReceiver.Add(1)
		return fmt.Errorf("send %s to %s: %w", kind, peer, ErrNoReceiver)
	}

	if !r.Receive(Delivery{
		Interface: peer.Interface,
		Peer:      topology.Endpoint{Device: device, Interface: iface}.String(),
		Time:      now,
		Data:      frame,
	}) {
		f.dropped.Add(1)
		f.logger.Debug("frame dropped at receiver",
			slog.String("kind", kind.String()),
			slog.String("peer", peer.String()),
		)
		return fmt.Errorf("send %s to %s: %w", kind, peer, ErrMailboxFull)
	}

	f.delivered.Add(1)
	return nil
}

// Stats returns a snapshot of the fabric counters.
func (f *Fabric) Stats() FabricStats {
	return FabricStats{
		Sent:       f.sent.Load(),
		Delivered:  f.delivered.Load(),
		NoPeer:     f.noPeer.Load(),
		NoReceiver: f.noReceiver.Load(),
		Dropped:    f.dropped.Load(),
		CaptureErr: f.captureErr.Load(),
	}
}
