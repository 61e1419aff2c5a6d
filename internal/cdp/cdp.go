package cdp

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dantte-lp/l2sim/internal/netio"
	"github.com/dantte-lp/l2sim/internal/protocol"
	"github.com/dantte-lp/l2sim/internal/topology"
)

// DefaultMaxNeighbors bounds the neighbor table of one device.
const DefaultMaxNeighbors = 1024

// Frame drop reasons reported to metrics.
const (
	dropMalformed  = "malformed"
	dropChecksum   = "checksum"
	dropIfaceOff   = "interface-disabled"
	dropTableFull  = "table-full"
	dropNoDeviceID = "no-device-id"
	dropWrongFrame = "not-cdp"
	dropStale      = "stale"
)

// Neighbor removal reasons.
const (
	reasonLinkDown = "interface down"
	reasonHoldTime = "holdtime expired"
	reasonTTLZero  = "ttl zero"
	reasonCDPOff   = "cdp disabled on interface"
)

// -------------------------------------------------------------------------
// Collaborators
// -------------------------------------------------------------------------

// Host is the device CDP runs on.
type Host interface {
	Name() string
	Info() topology.DeviceInfo
	Interfaces() []topology.Interface
	AppendLog(now time.Time, msg string)
}

// Links reports whether an interface has a live cable.
type Links interface {
	Peer(device, iface string) (topology.Endpoint, bool)
}

// Sender puts frames on the wire.
type Sender interface {
	Send(now time.Time, kind netio.FrameKind, device, iface string, frame []byte) error
}

// Option configures optional Protocol parameters.
type Option func(*Protocol)

// WithLogger sets the protocol logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Protocol) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithMetrics attaches a MetricsReporter.
func WithMetrics(mr protocol.MetricsReporter) Option {
	return func(p *Protocol) {
		if mr != nil {
			p.metrics = mr
		}
	}
}

// WithNotifier attaches an event Notifier.
func WithNotifier(n protocol.Notifier) Option {
	return func(p *Protocol) {
		if n != nil {
			p.notifier = n
		}
	}
}

// WithMailboxSize sets the receive queue depth.
func WithMailboxSize(n int) Option {
	return func(p *Protocol) {
		p.mailbox = netio.NewMailbox(n)
	}
}

// WithMaxNeighbors bounds the neighbor table. Zero or less means
// unbounded.
func WithMaxNeighbors(n int) Option {
	return func(p *Protocol) {
		p.maxNeighbors = n
	}
}

// -------------------------------------------------------------------------
// State
// -------------------------------------------------------------------------

// Stats counts protocol activity since the last Initialize.
type Stats struct {
	AdvertisementsSent     uint64 `json:"advertisements_sent"`
	AdvertisementsReceived uint64 `json:"advertisements_received"`
	ChecksumErrors         uint64 `json:"checksum_errors"`
	Malformed              uint64 `json:"malformed"`
	TableFull              uint64 `json:"table_full"`
	Dropped                uint64 `json:"dropped"`
}

type neighborKey struct {
	iface    string
	deviceID string
}

type ifaceState struct {
	lastSent time.Time
	sent     uint64
	received uint64
}

// Protocol is the CDP instance of one device. It implements
// protocol.Protocol.
type Protocol struct {
	mu sync.Mutex

	host         Host
	links        Links
	tx           Sender
	mailbox      *netio.Mailbox
	metrics      protocol.MetricsReporter
	notifier     protocol.Notifier
	logger       *slog.Logger
	maxNeighbors int

	running  bool
	since    time.Time
	cfg      Config
	identity Identity
	ifaces   map[string]*ifaceState
	table    *protocol.NeighborTable[neighborKey, Info]
	stats    Stats
}

// New creates an inactive CDP instance for host.
func New(host Host, links Links, tx Sender, opts ...Option) *Protocol {
	p := &Protocol{
		host:         host,
		links:        links,
		tx:           tx,
		metrics:      protocol.NoopMetrics(),
		notifier:     protocol.DiscardEvents,
		logger:       slog.New(slog.DiscardHandler),
		maxNeighbors: DefaultMaxNeighbors,
	}
	for _, o := range opts {
		o(p)
	}
	if p.mailbox == nil {
		p.mailbox = netio.NewMailbox(netio.DefaultMailboxSize)
	}
	p.logger = p.logger.With(
		slog.String("component", "cdp"),
		slog.String("device", host.Name()),
	)
	return p
}

// Kind returns protocol.KindCDP.
func (p *Protocol) Kind() protocol.Kind { return protocol.KindCDP }

// Mailbox returns the receive queue the fabric delivers CDP frames into.
func (p *Protocol) Mailbox() *netio.Mailbox { return p.mailbox }

// -------------------------------------------------------------------------
// Lifecycle
// -------------------------------------------------------------------------

// Initialize validates cfg and starts with an empty neighbor table. Every
// participating interface advertises on the first tick. Frames queued
// before now are discarded on the next UpdateNeighbors.
func (p *Protocol) Initialize(now time.Time, pc protocol.Config) error {
	cfg, err := asConfig(pc)
	if err != nil {
		return fmt.Errorf("cdp initialize: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("cdp initialize: %w", err)
	}

	info := p.host.Info()
	caps, err := Capabilities(info.Kind, cfg.Capabilities)
	if err != nil {
		return fmt.Errorf("cdp initialize: %w", err)
	}

	id := Identity{
		DeviceID:     cfg.DeviceID,
		SysName:      info.Name,
		Platform:     info.Platform,
		Software:     info.Version,
		VTPDomain:    info.VTPDomain,
		Capabilities: caps,
	}
	if id.DeviceID == "" {
		id.DeviceID = info.Name
	}
	for _, ifc := range p.host.Interfaces() {
		if ifc.Address.IsValid() && !ifc.Address.Addr().IsUnspecified() {
			id.Addresses = append(id.Addresses, ifc.Address.Addr())
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.cfg = cfg
	p.identity = id
	p.ifaces = make(map[string]*ifaceState)
	p.table = protocol.NewNeighborTable[neighborKey, Info](p.maxNeighbors)
	p.stats = Stats{}
	p.since = now
	p.running = true

	p.logger.Info("cdp initialized",
		slog.String("device_id", id.DeviceID),
		slog.Int("version", int(cfg.Version)),
		slog.Duration("timer", cfg.Timer),
		slog.Duration("holdtime", cfg.HoldTime),
		slog.String("capabilities", caps.String()),
	)
	p.host.AppendLog(now, "CDP: enabled, device-id "+id.DeviceID)
	return nil
}

// Stop discards the neighbor table.
func (p *Protocol) Stop(now time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}
	p.running = false
	p.table.Clear()
	p.mailbox.Reset()

	p.logger.Info("cdp stopped")
	p.host.AppendLog(now, "CDP: disabled")
}

// NeighborCount returns the number of known neighbors.
func (p *Protocol) NeighborCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.table == nil {
		return 0
	}
	return p.table.Len()
}

// participates reports whether CDP runs on ifc.
func (p *Protocol) participates(ifc topology.Interface) bool {
	return ifc.Operational() && !p.cfg.Interface(ifc.Name).Disabled
}

// -------------------------------------------------------------------------
// UpdateNeighbors
// -------------------------------------------------------------------------

// UpdateNeighbors drops neighbors learned on interfaces that went down,
// lost their cable or had CDP disabled, then processes every queued
// advertisement.
func (p *Protocol) UpdateNeighbors(now time.Time) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return false
	}

	ifaces := make(map[string]topology.Interface)
	dirty := false
	for _, ifc := range p.host.Interfaces() {
		ifaces[ifc.Name] = ifc

		reason := ""
		switch {
		case !ifc.Operational():
			reason = reasonLinkDown
		case p.cfg.Interface(ifc.Name).Disabled:
			reason = reasonCDPOff
		default:
			if _, ok := p.links.Peer(p.host.Name(), ifc.Name); !ok {
				reason = reasonLinkDown
			}
		}
		if reason != "" && p.removeInterface(now, ifc.Name, reason) {
			dirty = true
		}
	}

	for _, d := range p.mailbox.Drain() {
		if p.receive(now, ifaces, d) {
			dirty = true
		}
	}
	return dirty
}

func (p *Protocol) removeInterface(now time.Time, iface, reason string) bool {
	removed := p.table.DeleteInterface(iface)
	for k := range removed {
		p.neighborDown(now, k, reason)
	}
	return len(removed) > 0
}

// receive processes one delivered frame and reports whether a neighbor
// was added or removed.
func (p *Protocol) receive(now time.Time, ifaces map[string]topology.Interface, d netio.Delivery) bool {
	if d.Time.Before(p.since) {
		p.drop(dropStale)
		return false
	}

	ifc, ok := ifaces[d.Interface]
	if !ok || !p.participates(ifc) {
		p.drop(dropIfaceOff)
		return false
	}

	f, err := netio.Decode(d.Data)
	if err != nil {
		p.malformed(d.Interface, dropMalformed, err)
		return false
	}
	if f.Kind != netio.FrameCDP {
		p.malformed(d.Interface, dropWrongFrame, netio.ErrNotControlFrame)
		return false
	}
	if !VerifyChecksum(f.Payload) {
		p.stats.ChecksumErrors++
		p.drop(dropChecksum)
		p.logger.Debug("cdp checksum mismatch", slog.String("interface", d.Interface))
		return false
	}

	pkt, err := Parse(f.Payload)
	if err != nil {
		p.malformed(d.Interface, dropMalformed, err)
		return false
	}
	if pkt.Truncated {
		p.stats.Malformed++
		p.logger.Debug("truncated cdp tlv list", slog.String("interface", d.Interface))
	}

	info := Decode(pkt)
	if info.DeviceID == "" {
		p.malformed(d.Interface, dropNoDeviceID, errors.New("no device-id tlv"))
		return false
	}

	p.stats.AdvertisementsReceived++
	p.ifaceState(d.Interface).received++
	p.metrics.IncFramesReceived(p.host.Name(), protocol.KindCDP.String())

	key := neighborKey{iface: d.Interface, deviceID: info.DeviceID}
	if pkt.TTL == 0 {
		if p.table.Delete(key) {
			p.neighborDown(now, key, reasonTTLZero)
			return true
		}
		return false
	}

	hold := time.Duration(pkt.TTL) * time.Second
	created, err := p.table.Upsert(key, d.Interface, info, now, hold)
	if errors.Is(err, protocol.ErrNeighborTableFull) {
		p.stats.TableFull++
		p.drop(dropTableFull)
		p.logger.Warn("cdp neighbor table full",
			slog.String("interface", d.Interface),
			slog.String("neighbor", info.DeviceID),
			slog.Int("limit", p.maxNeighbors),
		)
		return false
	}
	if !created {
		return false
	}

	p.logger.Info("cdp neighbor up",
		slog.String("interface", d.Interface),
		slog.String("neighbor", info.DeviceID),
		slog.String("port", info.PortID),
		slog.String("platform", info.Platform),
	)
	p.emit(now, protocol.EventNeighborUp, d.Interface, info.DeviceID, info.PortID)
	p.host.AppendLog(now, fmt.Sprintf("CDP: neighbor %s on %s (port %s)", info.DeviceID, d.Interface, info.PortID))
	return true
}

func (p *Protocol) malformed(iface, reason string, err error) {
	p.stats.Malformed++
	p.drop(reason)
	p.logger.Debug("malformed cdp frame dropped",
		slog.String("interface", iface),
		slog.String("reason", reason),
		slog.String("error", err.Error()),
	)
}

func (p *Protocol) drop(reason string) {
	p.stats.Dropped++
	p.metrics.IncFramesDropped(p.host.Name(), protocol.KindCDP.String(), reason)
}

// -------------------------------------------------------------------------
// ProcessTimers
// -------------------------------------------------------------------------

// ProcessTimers advertises on every participating interface whose timer
// ran out and reports whether any neighbor passed its holdtime.
func (p *Protocol) ProcessTimers(now time.Time) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return false
	}

	for _, ifc := range p.host.Interfaces() {
		if !p.participates(ifc) {
			continue
		}
		st := p.ifaceState(ifc.Name)
		if !st.lastSent.IsZero() && now.Sub(st.lastSent) < p.cfg.Timer {
			continue
		}
		st.lastSent = now
		if p.advertise(now, ifc) {
			st.sent++
			p.stats.AdvertisementsSent++
		}
	}

	return p.table.AnyExpired(now)
}

func (p *Protocol) ifaceState(name string) *ifaceState {
	st, ok := p.ifaces[name]
	if !ok {
		st = &ifaceState{}
		p.ifaces[name] = st
	}
	return st
}

// advertise builds and sends one advertisement on ifc.
func (p *Protocol) advertise(now time.Time, ifc topology.Interface) bool {
	name := p.host.Name()

	payload, err := Packet{
		Version: p.cfg.Version,
		TTL:     p.cfg.ttl(),
		TLVs:    Build(p.identity, ifc, p.cfg.Version),
	}.Marshal()
	if err != nil {
		p.logger.Error("build cdp advertisement",
			slog.String("interface", ifc.Name),
			slog.String("error", err.Error()),
		)
		return false
	}

	frame, err := netio.EncodeCDP(ifc.MAC, payload)
	if err != nil {
		p.logger.Warn("encode cdp frame",
			slog.String("interface", ifc.Name),
			slog.String("error", err.Error()),
		)
		return false
	}

	if err := p.tx.Send(now, netio.FrameCDP, name, ifc.Name, frame); err != nil {
		p.logger.Debug("cdp advertisement not delivered",
			slog.String("interface", ifc.Name),
			slog.String("error", err.Error()),
		)
		return false
	}
	p.metrics.IncFramesSent(name, protocol.KindCDP.String())
	return true
}

// -------------------------------------------------------------------------
// Recalculate
// -------------------------------------------------------------------------

// Recalculate removes neighbors whose holdtime ran out.
func (p *Protocol) Recalculate(now time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}
	for k := range p.table.Prune(now) {
		p.neighborDown(now, k, reasonHoldTime)
	}
}

func (p *Protocol) neighborDown(now time.Time, k neighborKey, reason string) {
	p.logger.Info("cdp neighbor down",
		slog.String("interface", k.iface),
		slog.String("neighbor", k.deviceID),
		slog.String("reason", reason),
	)
	p.emit(now, protocol.EventNeighborDown, k.iface, k.deviceID, reason)
	p.host.AppendLog(now, fmt.Sprintf("CDP: neighbor %s on %s lost (%s)", k.deviceID, k.iface, reason))
}

func (p *Protocol) emit(now time.Time, typ protocol.EventType, iface, peer, detail string) {
	p.notifier.Notify(protocol.Event{
		Time:      now,
		Device:    p.host.Name(),
		Protocol:  protocol.KindCDP,
		Type:      typ,
		Interface: iface,
		Peer:      peer,
		Detail:    detail,
	})
}
