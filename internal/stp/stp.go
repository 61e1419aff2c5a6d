package stp

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net"
	"slices"
	"sync"
	"time"

	"github.com/dantte-lp/l2sim/internal/netio"
	"github.com/dantte-lp/l2sim/internal/protocol"
	"github.com/dantte-lp/l2sim/internal/topology"
)

var (
	// ErrNoBridgeMAC indicates that no interface of the device carries a
	// MAC address the bridge ID could be derived from.
	ErrNoBridgeMAC = errors.New("no interface MAC to derive the bridge id from")

	// ErrInvariant marks a violated spanning tree invariant. It is raised
	// as a panic and recovered by the protocol engine.
	ErrInvariant = errors.New("stp invariant violated")
)

// Frame drop reasons reported to metrics.
const (
	dropMalformed    = "malformed"
	dropPortDisabled = "port-disabled"
	dropMaxAge       = "max-age"
)

// maxPorts is the number of ports addressable by an 8-bit port number.
const maxPorts = 255

// -------------------------------------------------------------------------
// Collaborators
// -------------------------------------------------------------------------

// Host is the device the bridge runs on.
type Host interface {
	Name() string
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

// Option configures optional Bridge parameters.
type Option func(*Bridge)

// WithLogger sets the bridge logger.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bridge) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithMetrics attaches a MetricsReporter.
func WithMetrics(mr protocol.MetricsReporter) Option {
	return func(b *Bridge) {
		if mr != nil {
			b.metrics = mr
		}
	}
}

// WithNotifier attaches an event Notifier.
func WithNotifier(n protocol.Notifier) Option {
	return func(b *Bridge) {
		if n != nil {
			b.notifier = n
		}
	}
}

// WithMailboxSize sets the receive queue depth.
func WithMailboxSize(n int) Option {
	return func(b *Bridge) {
		b.mailbox = netio.NewMailbox(n)
	}
}

// -------------------------------------------------------------------------
// State
// -------------------------------------------------------------------------

// PortStats counts per-port protocol activity.
type PortStats struct {
	BPDUsSent       uint64 `json:"bpdus_sent"`
	BPDUsReceived   uint64 `json:"bpdus_received"`
	TCNsSent        uint64 `json:"tcns_sent"`
	TCNsReceived    uint64 `json:"tcns_received"`
	Transitions     uint64 `json:"transitions"`
	InferiorReplies uint64 `json:"inferior_replies"`
}

type port struct {
	name     string
	mac      net.HardwareAddr
	id       PortID
	pathCost uint32
	edge     bool
	disabled bool

	state PortState
	role  PortRole

	designatedRoot   BridgeID
	designatedCost   uint32
	designatedBridge BridgeID
	designatedPort   PortID

	stateSince time.Time
	lastSent   time.Time
	ackTC      bool

	stats PortStats
}

// stored is the BPDU information held for a port.
type stored struct {
	bpdu BPDU
	peer string
}

// Bridge is the spanning tree protocol instance of one device. It
// implements protocol.Protocol. All methods are safe for concurrent use;
// the engine serializes the lifecycle methods.
type Bridge struct {
	mu sync.Mutex

	host     Host
	links    Links
	tx       Sender
	mailbox  *netio.Mailbox
	metrics  protocol.MetricsReporter
	notifier protocol.Notifier
	logger   *slog.Logger

	running  bool
	cfg      Config
	bridgeID BridgeID

	rootID       BridgeID
	rootPathCost uint32
	rootPort     string

	ports  []*port
	byName map[string]*port
	info   *protocol.NeighborTable[string, stored]

	topologyChanges    uint64
	lastTopologyChange time.Time
	tcUntil            time.Time
	tcnPending         bool
	lastTCN            time.Time

	malformed uint64
	discarded uint64
}

// New creates an inactive bridge for host. The engine activates it through
// Initialize once an enabled configuration is found.
func New(host Host, links Links, tx Sender, opts ...Option) *Bridge {
	b := &Bridge{
		host:     host,
		links:    links,
		tx:       tx,
		metrics:  protocol.NoopMetrics(),
		notifier: protocol.DiscardEvents,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(b)
	}
	if b.mailbox == nil {
		b.mailbox = netio.NewMailbox(netio.DefaultMailboxSize)
	}
	b.logger = b.logger.With(
		slog.String("component", "stp"),
		slog.String("device", host.Name()),
	)
	return b
}

// Kind returns protocol.KindSTP.
func (b *Bridge) Kind() protocol.Kind { return protocol.KindSTP }

// Mailbox returns the receive queue the fabric delivers BPDUs into.
func (b *Bridge) Mailbox() *netio.Mailbox { return b.mailbox }

// -------------------------------------------------------------------------
// Lifecycle
// -------------------------------------------------------------------------

// Initialize validates cfg and rebuilds the bridge from scratch: every port
// starts Disabled and the bridge believes itself root.
func (b *Bridge) Initialize(now time.Time, pc protocol.Config) error {
	cfg, err := asConfig(pc)
	if err != nil {
		return fmt.Errorf("stp initialize: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("stp initialize: %w", err)
	}

	ifaces := b.host.Interfaces()
	mac := lowestMAC(ifaces)
	if mac == nil {
		return fmt.Errorf("stp initialize %s: %w", b.host.Name(), ErrNoBridgeMAC)
	}
	id, err := NewBridgeID(cfg.Priority, mac)
	if err != nil {
		return fmt.Errorf("stp initialize: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.cfg = cfg
	b.bridgeID = id
	b.rootID = id
	b.rootPathCost = 0
	b.rootPort = ""
	b.ports = b.ports[:0]
	b.byName = make(map[string]*port, len(ifaces))
	b.info = protocol.NewNeighborTable[string, stored](0)
	b.topologyChanges = 0
	b.lastTopologyChange = time.Time{}
	b.tcUntil = time.Time{}
	b.tcnPending = false
	b.malformed, b.discarded = 0, 0
	b.mailbox.Reset()

	for i, ifc := range ifaces {
		if i >= maxPorts {
			b.logger.Warn("port limit reached, remaining interfaces ignored",
				slog.Int("limit", maxPorts))
			break
		}
		pcfg := cfg.Port(ifc.Name)
		prio := uint8(DefaultPortPriority)
		if pcfg.Priority != 0 {
			prio = pcfg.Priority
		}
		cost := pcfg.Cost
		if cost == 0 {
			cost = PathCost(ifc.Speed, ifc.Bandwidth)
		}
		pmac := ifc.MAC
		if len(pmac) != 6 {
			pmac = mac
		}

		p := &port{
			name:       ifc.Name,
			mac:        pmac,
			id:         NewPortID(prio, uint8(i+1)), //nolint:gosec // G115: i < maxPorts
			pathCost:   cost,
			edge:       pcfg.Edge,
			disabled:   pcfg.Disabled,
			state:      StateDisabled,
			role:       RoleDisabled,
			stateSince: now,
		}
		b.ports = append(b.ports, p)
		b.byName[p.name] = p
	}

	b.running = true

	b.logger.Info("bridge initialized",
		slog.String("bridge_id", id.String()),
		slog.Int("ports", len(b.ports)),
		slog.Duration("hello_time", cfg.HelloTime),
		slog.Duration("max_age", cfg.MaxAge),
		slog.Duration("forward_delay", cfg.ForwardDelay),
	)
	b.host.AppendLog(now, "STP: bridge "+id.String()+" initialized")
	return nil
}

// Stop disables every port and discards all protocol state.
func (b *Bridge) Stop(now time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.running {
		return
	}
	for _, p := range b.ports {
		b.transition(now, p, EventDisable)
		p.role = RoleDisabled
	}
	b.running = false
	b.info.Clear()
	b.mailbox.Reset()
	b.rootID = b.bridgeID
	b.rootPort = ""
	b.rootPathCost = 0

	b.logger.Info("bridge stopped")
	b.host.AppendLog(now, "STP: stopped")
}

// NeighborCount returns the number of ports holding received BPDU
// information.
func (b *Bridge) NeighborCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.info == nil {
		return 0
	}
	return b.info.Len()
}

// -------------------------------------------------------------------------
// UpdateNeighbors: link state and BPDU receipt
// -------------------------------------------------------------------------

// UpdateNeighbors reconciles port link state with the topology and
// processes every queued BPDU.
func (b *Bridge) UpdateNeighbors(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.running {
		return false
	}

	dirty := b.syncLinks(now)
	for _, d := range b.mailbox.Drain() {
		if b.receive(now, d) {
			dirty = true
		}
	}
	return dirty
}

// syncLinks enables ports whose link came up and disables ports whose link
// went away. A port is up when its interface is operational and a peer is
// cabled to it.
func (b *Bridge) syncLinks(now time.Time) bool {
	oper := make(map[string]bool, len(b.ports))
	for _, ifc := range b.host.Interfaces() {
		oper[ifc.Name] = ifc.Operational()
	}

	dirty := false
	for _, p := range b.ports {
		up := !p.disabled && oper[p.name]
		if up {
			_, up = b.links.Peer(b.host.Name(), p.name)
		}

		switch {
		case up && p.state == StateDisabled:
			b.transition(now, p, EventEnable)
			dirty = true

		case !up && p.state != StateDisabled:
			b.transition(now, p, EventDisable)
			p.role = RoleDisabled
			if n, ok := b.info.Get(p.name); ok {
				b.info.Delete(p.name)
				b.emit(now, protocol.EventNeighborDown, p.name, n.Value.peer, "", "", "link down")
			}
			dirty = true
		}
	}
	return dirty
}

// receive handles one delivered frame and reports whether the port's
// stored information changed in a way that needs a recalculation.
func (b *Bridge) receive(now time.Time, d netio.Delivery) bool {
	name := b.host.Name()

	p := b.byName[d.Interface]
	if p == nil || p.state == StateDisabled {
		b.drop(dropPortDisabled)
		return false
	}

	f, err := netio.Decode(d.Data)
	if err == nil && f.Kind != netio.FrameBPDU {
		err = netio.ErrNotControlFrame
	}
	var bpdu BPDU
	if err == nil {
		bpdu, err = UnmarshalBPDU(f.Payload)
	}
	if err != nil {
		b.malformed++
		b.drop(dropMalformed)
		b.logger.Debug("malformed bpdu dropped",
			slog.String("port", p.name),
			slog.String("error", err.Error()),
		)
		return false
	}

	p.stats.BPDUsReceived++
	b.metrics.IncFramesReceived(name, protocol.KindSTP.String())

	if bpdu.Type == TypeTCN {
		b.receiveTCN(now, p)
		return false
	}

	if bpdu.MessageAge >= bpdu.MaxAge {
		b.drop(dropMaxAge)
		return false
	}

	if p.role == RoleRoot {
		if bpdu.TCA() {
			b.tcnPending = false
		}
		if bpdu.TC() {
			b.tcUntil = now.Add(bpdu.MaxAge + bpdu.ForwardDelay)
		}
	}

	prev, had := b.info.Get(p.name)
	switch {
	case had && sameSender(bpdu, prev.Value.bpdu):
		b.store(now, p, bpdu, d.Peer)
		return CompareBPDU(bpdu, prev.Value.bpdu) != Same

	case had && CompareBPDU(bpdu, prev.Value.bpdu) == Superior:
		b.store(now, p, bpdu, d.Peer)
		return true

	case !had && CompareBPDU(bpdu, b.offer(p)) != Inferior:
		b.store(now, p, bpdu, d.Peer)
		b.emit(now, protocol.EventNeighborUp, p.name, bpdu.BridgeID.String(), "", "", "")
		return true
	}

	// Inferior information: answer with ours so the sender learns better.
	if p.role == RoleDesignated {
		p.stats.InferiorReplies++
		b.sendConfig(now, p)
	}
	return false
}

// store records bpdu for p. The information lives for MaxAge - MessageAge.
func (b *Bridge) store(now time.Time, p *port, bpdu BPDU, peer string) {
	hold := bpdu.MaxAge - bpdu.MessageAge
	if _, err := b.info.Upsert(p.name, p.name, stored{bpdu: bpdu, peer: peer}, now, hold); err != nil {
		b.logger.Warn("bpdu not stored",
			slog.String("port", p.name),
			slog.String("error", err.Error()),
		)
	}
}

// receiveTCN acknowledges a topology change notification and relays it
// towards the root.
func (b *Bridge) receiveTCN(now time.Time, p *port) {
	p.stats.TCNsReceived++
	if p.role != RoleDesignated {
		return
	}
	p.ackTC = true
	if b.isRoot() {
		b.tcUntil = now.Add(b.cfg.MaxAge + b.cfg.ForwardDelay)
		return
	}
	b.tcnPending = true
}

func (b *Bridge) drop(reason string) {
	b.discarded++
	b.metrics.IncFramesDropped(b.host.Name(), protocol.KindSTP.String(), reason)
}

// -------------------------------------------------------------------------
// ProcessTimers: hello, message age and forward delay
// -------------------------------------------------------------------------

// ProcessTimers sends due hellos and TCNs. It returns true when stored
// BPDU information expired or a forward delay timer ran out.
func (b *Bridge) ProcessTimers(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.running {
		return false
	}

	dirty := b.info.AnyExpired(now)

	for _, p := range b.ports {
		if (p.state == StateListening || p.state == StateLearning) &&
			now.Sub(p.stateSince) >= b.cfg.ForwardDelay {
			dirty = true
		}
	}

	for _, p := range b.ports {
		if p.role == RoleDesignated && p.state != StateDisabled &&
			now.Sub(p.lastSent) >= b.cfg.HelloTime {
			b.sendConfig(now, p)
		}
	}

	if b.tcnPending && !b.isRoot() && now.Sub(b.lastTCN) >= b.cfg.HelloTime {
		b.sendTCN(now)
	}

	if !b.tcUntil.IsZero() && now.After(b.tcUntil) {
		b.tcUntil = time.Time{}
	}

	return dirty
}

// offer returns the priority vector this bridge advertises on p.
func (b *Bridge) offer(p *port) BPDU {
	return BPDU{
		RootID:       b.rootID,
		RootPathCost: b.rootPathCost,
		BridgeID:     b.bridgeID,
		PortID:       p.id,
	}
}

// sendConfig transmits a configuration BPDU on p. A non-root bridge
// relays the root's timers and ages the root port information by one
// second.
func (b *Bridge) sendConfig(now time.Time, p *port) {
	bpdu := b.offer(p)
	bpdu.Type = TypeConfig
	bpdu.MaxAge = b.cfg.MaxAge
	bpdu.HelloTime = b.cfg.HelloTime
	bpdu.ForwardDelay = b.cfg.ForwardDelay

	if !b.isRoot() {
		n, ok := b.info.Get(b.rootPort)
		if !ok {
			return
		}
		rp := n.Value.bpdu
		bpdu.MessageAge = rp.MessageAge + time.Second
		bpdu.MaxAge = rp.MaxAge
		bpdu.HelloTime = rp.HelloTime
		bpdu.ForwardDelay = rp.ForwardDelay
		if bpdu.MessageAge >= bpdu.MaxAge {
			return
		}
	}

	if b.tcActive(now) {
		bpdu.Flags |= FlagTC
	}
	if p.ackTC {
		bpdu.Flags |= FlagTCA
		p.ackTC = false
	}

	p.lastSent = now
	if b.transmit(now, p, bpdu) {
		p.stats.BPDUsSent++
	}
}

// sendTCN notifies the designated bridge on the root port of a topology
// change.
func (b *Bridge) sendTCN(now time.Time) {
	p := b.byName[b.rootPort]
	if p == nil {
		return
	}
	b.lastTCN = now
	if b.transmit(now, p, BPDU{Type: TypeTCN}) {
		p.stats.TCNsSent++
	}
}

func (b *Bridge) transmit(now time.Time, p *port, bpdu BPDU) bool {
	name := b.host.Name()

	frame, err := netio.EncodeBPDU(p.mac, bpdu.Marshal())
	if err != nil {
		b.logger.Error("encode bpdu", slog.String("port", p.name), slog.String("error", err.Error()))
		return false
	}

	if err := b.tx.Send(now, netio.FrameBPDU, name, p.name, frame); err != nil {
		b.logger.Debug("bpdu not delivered",
			slog.String("port", p.name),
			slog.String("error", err.Error()),
		)
		return false
	}
	b.metrics.IncFramesSent(name, protocol.KindSTP.String())
	return true
}

// -------------------------------------------------------------------------
// Recalculate: root election, roles, port states
// -------------------------------------------------------------------------

// Recalculate ages out stale information, elects the root bridge and the
// root port, assigns port roles and advances each port's state machine by
// one step.
func (b *Bridge) Recalculate(now time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.running {
		return
	}

	prevRoot, prevRootPort := b.rootID, b.rootPort

	for name, n := range b.info.Prune(now) {
		b.logger.Info("bpdu information aged out",
			slog.String("port", name),
			slog.String("designated_bridge", n.Value.bpdu.BridgeID.String()),
		)
		b.emit(now, protocol.EventNeighborDown, name, n.Value.peer, "", "", "max age expired")
	}

	b.electRoot()
	b.assignRoles()

	for _, p := range b.ports {
		b.stepPort(now, p)
	}

	if b.rootID != prevRoot {
		b.logger.Info("root bridge changed",
			slog.String("from", prevRoot.String()),
			slog.String("to", b.rootID.String()),
		)
		b.emit(now, protocol.EventRootChanged, "", "", prevRoot.String(), b.rootID.String(), "")
		b.host.AppendLog(now, "STP: root bridge is now "+b.rootID.String())
	}
	if b.rootPort != prevRootPort {
		b.logger.Info("root port changed",
			slog.String("from", prevRootPort),
			slog.String("to", b.rootPort),
		)
		b.emit(now, protocol.EventRootPortChanged, b.rootPort, "", prevRootPort, b.rootPort, "")
	}
	if b.rootID != prevRoot || b.rootPort != prevRootPort {
		b.topologyChange(now, "root election")
	}

	b.checkInvariants()
}

// electRoot picks the lowest root ID among this bridge and the stored
// information on enabled ports, then the root port with the lowest
// advertised cost plus port cost. Ties go to the lower sender bridge ID,
// sender port ID and finally own port ID. Information sent by this bridge
// itself never selects a root port.
func (b *Bridge) electRoot() {
	best := b.bridgeID
	for _, p := range b.ports {
		if st, ok := b.foreignInfo(p); ok && st.RootID.Compare(best) < 0 {
			best = st.RootID
		}
	}

	b.rootID = best
	b.rootPathCost = 0
	b.rootPort = ""
	if best == b.bridgeID {
		return
	}

	var (
		rootPort *port
		rootInfo BPDU
		rootCost uint32
	)
	for _, p := range b.ports {
		st, ok := b.foreignInfo(p)
		if !ok || st.RootID != best {
			continue
		}
		cost := addCost(st.RootPathCost, p.pathCost)
		if rootPort == nil || betterRootPath(cost, st, p.id, rootCost, rootInfo, rootPort.id) {
			rootPort, rootInfo, rootCost = p, st, cost
		}
	}

	b.rootPathCost = rootCost
	b.rootPort = rootPort.name
}

func betterRootPath(cost uint32, st BPDU, id PortID, bestCost uint32, best BPDU, bestID PortID) bool {
	if cost != bestCost {
		return cost < bestCost
	}
	if c := st.BridgeID.Compare(best.BridgeID); c != 0 {
		return c < 0
	}
	if st.PortID != best.PortID {
		return st.PortID < best.PortID
	}
	return id < bestID
}

// foreignInfo returns the stored BPDU of an enabled port unless this bridge
// sent it.
func (b *Bridge) foreignInfo(p *port) (BPDU, bool) {
	if p.state == StateDisabled {
		return BPDU{}, false
	}
	n, ok := b.info.Get(p.name)
	if !ok || n.Value.bpdu.BridgeID == b.bridgeID {
		return BPDU{}, false
	}
	return n.Value.bpdu, true
}

// assignRoles gives every enabled port except the root port the Designated
// role when our vector beats the stored one, otherwise Alternate (or
// Backup when the better information is our own).
func (b *Bridge) assignRoles() {
	for _, p := range b.ports {
		n, had := b.info.Get(p.name)
		st := n.Value.bpdu

		switch {
		case p.state == StateDisabled:
			p.role = RoleDisabled
			p.designatedRoot, p.designatedBridge = BridgeID{}, BridgeID{}
			p.designatedCost, p.designatedPort = 0, 0
			continue

		case p.name == b.rootPort:
			p.role = RoleRoot

		case !had || CompareBPDU(b.offer(p), st) != Inferior:
			p.role = RoleDesignated
			p.designatedRoot = b.rootID
			p.designatedCost = b.rootPathCost
			p.designatedBridge = b.bridgeID
			p.designatedPort = p.id
			continue

		case st.BridgeID == b.bridgeID:
			p.role = RoleBackup

		default:
			p.role = RoleAlternate
		}

		p.designatedRoot = st.RootID
		p.designatedCost = st.RootPathCost
		p.designatedBridge = st.BridgeID
		p.designatedPort = st.PortID
	}
}

// stepPort drives the state machine of p one step according to its role.
func (b *Bridge) stepPort(now time.Time, p *port) {
	var ev PortEvent
	switch {
	case p.state == StateDisabled:
		return
	case !p.role.Forwarding():
		ev = EventBlock
	case p.edge:
		ev = EventEdge
	case p.state == StateBlocking:
		ev = EventSelect
	case now.Sub(p.stateSince) >= b.cfg.ForwardDelay:
		ev = EventForwardDelayExpired
	default:
		return
	}
	b.transition(now, p, ev)
}

// transition applies ev to p and records the change.
func (b *Bridge) transition(now time.Time, p *port, ev PortEvent) {
	r := ApplyPortEvent(p.state, ev)
	if !r.Changed {
		return
	}

	p.state = r.New
	p.stateSince = now
	p.stats.Transitions++

	name := b.host.Name()
	b.logger.Info("port state changed",
		slog.String("port", p.name),
		slog.String("event", ev.String()),
		slog.String("from", r.Old.String()),
		slog.String("to", r.New.String()),
		slog.String("role", p.role.String()),
	)
	b.metrics.RecordPortTransition(name, p.name, r.Old.String(), r.New.String())
	b.emit(now, protocol.EventPortStateChanged, p.name, "", r.Old.String(), r.New.String(), ev.String())
	b.host.AppendLog(now, fmt.Sprintf("STP: port %s %s -> %s", p.name, r.Old, r.New))

	if r.New == StateForwarding && !p.edge {
		b.topologyChange(now, "port "+p.name+" forwarding")
	}
}

// topologyChange bumps the change counter. The root floods TC for
// MaxAge + ForwardDelay; other bridges notify the root with TCNs.
func (b *Bridge) topologyChange(now time.Time, reason string) {
	b.topologyChanges++
	b.lastTopologyChange = now
	b.metrics.IncTopologyChanges(b.host.Name())
	b.emit(now, protocol.EventTopologyChange, "", "", "", "", reason)

	if b.isRoot() {
		b.tcUntil = now.Add(b.cfg.MaxAge + b.cfg.ForwardDelay)
		return
	}
	b.tcnPending = true
}

// checkInvariants panics when the role assignment is inconsistent.
func (b *Bridge) checkInvariants() {
	roots := 0
	for _, p := range b.ports {
		if p.role == RoleRoot {
			roots++
		}
	}
	if roots > 1 || (b.isRoot() && roots != 0) || (!b.isRoot() && roots != 1) {
		panic(fmt.Errorf("%w: bridge %s root %s has %d root ports",
			ErrInvariant, b.bridgeID, b.rootID, roots))
	}
}

func (b *Bridge) isRoot() bool { return b.rootID == b.bridgeID }

func (b *Bridge) tcActive(now time.Time) bool {
	return !b.tcUntil.IsZero() && !now.After(b.tcUntil)
}

func (b *Bridge) emit(now time.Time, typ protocol.EventType, iface, peer, from, to, detail string) {
	b.notifier.Notify(protocol.Event{
		Time:      now,
		Device:    b.host.Name(),
		Protocol:  protocol.KindSTP,
		Type:      typ,
		Interface: iface,
		Peer:      peer,
		From:      from,
		To:        to,
		Detail:    detail,
	})
}

func addCost(a, b uint32) uint32 {
	if a > math.MaxUint32-b {
		return math.MaxUint32
	}
	return a + b
}

// lowestMAC returns the numerically lowest 6-byte interface MAC.
func lowestMAC(ifaces []topology.Interface) net.HardwareAddr {
	var best net.HardwareAddr
	for _, ifc := range ifaces {
		if len(ifc.MAC) != 6 {
			continue
		}
		if best == nil || slices.Compare(ifc.MAC, best) < 0 {
			best = ifc.MAC
		}
	}
	return best
}
