package stp_test

import (
	"log/slog"
	"net"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/dantte-lp/l2sim/internal/netio"
	"github.com/dantte-lp/l2sim/internal/protocol"
	"github.com/dantte-lp/l2sim/internal/stp"
	"github.com/dantte-lp/l2sim/internal/topology"
)

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// -------------------------------------------------------------------------
// Lab harness
// -------------------------------------------------------------------------

type bridgeSpec struct {
	name     string
	priority uint16
	mac      byte
	ifaces   []string
}

type lab struct {
	t       *testing.T
	network *topology.Network
	fabric  *netio.Fabric

	order     []string
	bridges   map[string]*stp.Bridge
	instances map[string]*protocol.Instance

	now time.Time

	mu     sync.Mutex
	events []protocol.Event
}

func newLab(t *testing.T, specs ...bridgeSpec) *lab {
	t.Helper()

	l := &lab{
		t:         t,
		network:   topology.NewNetwork(),
		bridges:   make(map[string]*stp.Bridge),
		instances: make(map[string]*protocol.Instance),
		now:       t0,
	}
	l.fabric = netio.NewFabric(l.network)
	notifier := protocol.NotifierFunc(func(ev protocol.Event) {
		l.mu.Lock()
		l.events = append(l.events, ev)
		l.mu.Unlock()
	})
	logger := slog.New(slog.DiscardHandler)

	for _, s := range specs {
		d, err := topology.NewDevice(topology.DeviceInfo{Name: s.name, Kind: topology.KindBridge})
		if err != nil {
			t.Fatalf("NewDevice(%s): %v", s.name, err)
		}
		for i, ifc := range s.ifaces {
			err := d.AddInterface(topology.Interface{
				Name:       ifc,
				Up:         true,
				MAC:        net.HardwareAddr{0x02, 0, 0, 0, s.mac, byte(i)},
				Speed:      100_000_000,
				FullDuplex: true,
			})
			if err != nil {
				t.Fatalf("AddInterface(%s:%s): %v", s.name, ifc, err)
			}
		}
		if err := l.network.AddDevice(d); err != nil {
			t.Fatalf("AddDevice(%s): %v", s.name, err)
		}

		cfg := stp.DefaultConfig()
		cfg.Priority = s.priority
		d.SetProtocolConfig(protocol.KindSTP.String(), cfg)

		b := stp.New(d, l.network, l.fabric, stp.WithNotifier(notifier))
		l.fabric.Register(s.name, netio.FrameBPDU, b.Mailbox())

		l.order = append(l.order, s.name)
		l.bridges[s.name] = b
		l.instances[s.name] = protocol.NewInstance(s.name, b, d, logger, protocol.WithNotifier(notifier))
	}
	return l
}

func (l *lab) connect(d1, i1, d2, i2 string) {
	l.t.Helper()

	err := l.network.Connect(
		topology.Endpoint{Device: d1, Interface: i1},
		topology.Endpoint{Device: d2, Interface: i2},
	)
	if err != nil {
		l.t.Fatalf("Connect %s:%s-%s:%s: %v", d1, i1, d2, i2, err)
	}
}

// run ticks every bridge once per simulated second for d.
func (l *lab) run(d time.Duration) {
	end := l.now.Add(d)
	for ; l.now.Before(end); l.now = l.now.Add(time.Second) {
		l.tick()
	}
}

func (l *lab) tick() {
	for _, name := range l.order {
		l.instances[name].Tick(l.now)
	}
}

func (l *lab) remove(name string) {
	l.t.Helper()

	if err := l.network.RemoveDevice(name); err != nil {
		l.t.Fatalf("RemoveDevice(%s): %v", name, err)
	}
	l.fabric.UnregisterDevice(name)
	l.order = slices.DeleteFunc(l.order, func(n string) bool { return n == name })
	delete(l.instances, name)
	delete(l.bridges, name)
}

func (l *lab) status(name string) stp.Status {
	return l.bridges[name].Status(l.now)
}

func (l *lab) forwarding(ep topology.Endpoint) bool {
	b, ok := l.bridges[ep.Device]
	return ok && b.Forwarding(ep.Interface)
}

func (l *lab) eventsOf(typ protocol.EventType) []protocol.Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []protocol.Event
	for _, ev := range l.events {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}

// assertSpanningTree checks that every bridge agrees on the lowest bridge
// ID as root, that each non-root bridge has exactly one root port and
// that the forwarding links form a loop-free connected tree.
func (l *lab) assertSpanningTree() {
	l.t.Helper()

	var lowest stp.BridgeID
	for i, name := range l.order {
		id := l.status(name).BridgeID
		if i == 0 || id.Compare(lowest) < 0 {
			lowest = id
		}
	}

	for _, name := range l.order {
		st := l.status(name)
		if st.RootID != lowest {
			l.t.Errorf("%s: root = %s, want %s", name, st.RootID, lowest)
		}

		roots := 0
		for _, p := range st.Ports {
			if p.Role == stp.RoleRoot {
				roots++
			}
		}
		want := 1
		if st.BridgeID == lowest {
			want = 0
		}
		if roots != want {
			l.t.Errorf("%s: %d root ports, want %d", name, roots, want)
		}
	}

	report := l.network.ForwardingLoops(l.forwarding)
	if report.Loop {
		l.t.Errorf("forwarding loop closed by %v", report.ClosingLinks)
	}
	if report.ForwardingLinks != len(l.order)-1 || report.Components != 1 {
		l.t.Errorf("forwarding links = %d, components = %d, want %d and 1",
			report.ForwardingLinks, report.Components, len(l.order)-1)
	}
}

// -------------------------------------------------------------------------
// Scenarios
// -------------------------------------------------------------------------

func TestRootElectionAndFailover(t *testing.T) {
	t.Parallel()

	l := newLab(t,
		bridgeSpec{name: "A", priority: 4096, mac: 0x0a, ifaces: []string{"e0", "e1"}},
		bridgeSpec{name: "B", priority: 32768, mac: 0x0c, ifaces: []string{"e0", "e1"}},
		bridgeSpec{name: "C", priority: 32768, mac: 0x0b, ifaces: []string{"e0", "e1"}},
	)
	l.connect("A", "e0", "B", "e0")
	l.connect("B", "e1", "C", "e0")
	l.connect("C", "e1", "A", "e1")

	l.run(60 * time.Second)

	idA, idC := l.status("A").BridgeID, l.status("C").BridgeID
	for _, name := range []string{"A", "B", "C"} {
		if got := l.status(name).RootID; got != idA {
			t.Fatalf("%s: root = %s, want A (%s)", name, got, idA)
		}
	}
	if !l.status("A").IsRoot {
		t.Error("A does not consider itself root")
	}
	if got := l.status("B").RootPort; got != "e0" {
		t.Errorf("B root port = %q, want e0", got)
	}
	if got := l.status("C").RootPort; got != "e1" {
		t.Errorf("C root port = %q, want e1", got)
	}

	// C has the lower MAC, so it wins the B-C segment and B blocks.
	if st := l.bridges["B"].PortState("e1"); st != stp.StateBlocking {
		t.Errorf("B:e1 state = %s, want Blocking", st)
	}
	if st := l.bridges["C"].PortState("e0"); st != stp.StateForwarding {
		t.Errorf("C:e0 state = %s, want Forwarding", st)
	}
	l.assertSpanningTree()

	l.remove("A")
	l.run(90 * time.Second)

	for _, name := range []string{"B", "C"} {
		if got := l.status(name).RootID; got != idC {
			t.Errorf("after removing A, %s: root = %s, want C (%s)", name, got, idC)
		}
	}
	if got := l.status("B").RootPort; got != "e1" {
		t.Errorf("B root port after failover = %q, want e1", got)
	}
	if st := l.bridges["B"].PortState("e1"); st != stp.StateForwarding {
		t.Errorf("B:e1 state after failover = %s, want Forwarding", st)
	}
	l.assertSpanningTree()

	if len(l.eventsOf(protocol.EventRootChanged)) == 0 {
		t.Error("no RootChanged events recorded")
	}
}

func TestConvergence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		specs []bridgeSpec
		links [][4]string
	}{
		{
			name: "ring of four",
			specs: []bridgeSpec{
				{name: "s1", priority: 32768, mac: 0x41, ifaces: []string{"e0", "e1"}},
				{name: "s2", priority: 32768, mac: 0x42, ifaces: []string{"e0", "e1"}},
				{name: "s3", priority: 32768, mac: 0x43, ifaces: []string{"e0", "e1"}},
				{name: "s4", priority: 32768, mac: 0x44, ifaces: []string{"e0", "e1"}},
			},
			links: [][4]string{
				{"s1", "e1", "s2", "e0"},
				{"s2", "e1", "s3", "e0"},
				{"s3", "e1", "s4", "e0"},
				{"s4", "e1", "s1", "e0"},
			},
		},
		{
			name: "full mesh of four",
			specs: []bridgeSpec{
				{name: "m1", priority: 32768, mac: 0x54, ifaces: []string{"e0", "e1", "e2"}},
				{name: "m2", priority: 8192, mac: 0x53, ifaces: []string{"e0", "e1", "e2"}},
				{name: "m3", priority: 32768, mac: 0x52, ifaces: []string{"e0", "e1", "e2"}},
				{name: "m4", priority: 32768, mac: 0x51, ifaces: []string{"e0", "e1", "e2"}},
			},
			links: [][4]string{
				{"m1", "e0", "m2", "e0"},
				{"m1", "e1", "m3", "e0"},
				{"m1", "e2", "m4", "e0"},
				{"m2", "e1", "m3", "e1"},
				{"m2", "e2", "m4", "e1"},
				{"m3", "e2", "m4", "e2"},
			},
		},
		{
			name: "parallel links",
			specs: []bridgeSpec{
				{name: "p1", priority: 32768, mac: 0x61, ifaces: []string{"e0", "e1"}},
				{name: "p2", priority: 32768, mac: 0x62, ifaces: []string{"e0", "e1"}},
			},
			links: [][4]string{
				{"p1", "e0", "p2", "e0"},
				{"p1", "e1", "p2", "e1"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := newLab(t, tt.specs...)
			for _, lk := range tt.links {
				l.connect(lk[0], lk[1], lk[2], lk[3])
			}
			l.run(90 * time.Second)
			l.assertSpanningTree()
		})
	}
}

func TestPortStatesAdvanceMonotonically(t *testing.T) {
	t.Parallel()

	l := newLab(t,
		bridgeSpec{name: "a", priority: 4096, mac: 0x01, ifaces: []string{"e0"}},
		bridgeSpec{name: "b", priority: 32768, mac: 0x02, ifaces: []string{"e0"}},
	)
	l.connect("a", "e0", "b", "e0")

	fd := stp.DefaultForwardDelay
	prev := map[string]stp.PortState{}
	var forwardingAt time.Time

	for range 2*int(fd/time.Second) + 1 {
		l.tick()
		for _, name := range []string{"a", "b"} {
			s := l.bridges[name].PortState("e0")
			if s < prev[name] {
				t.Fatalf("%s:e0 regressed from %s to %s at %s", name, prev[name], s, l.now.Sub(t0))
			}
			prev[name] = s
		}
		if forwardingAt.IsZero() && prev["a"] == stp.StateForwarding && prev["b"] == stp.StateForwarding {
			forwardingAt = l.now
		}
		l.now = l.now.Add(time.Second)
	}

	if forwardingAt.IsZero() {
		t.Fatalf("ports not forwarding within 2*forward_delay: a=%s b=%s", prev["a"], prev["b"])
	}
	if got := forwardingAt.Sub(t0); got > 2*fd {
		t.Errorf("forwarding after %s, want <= %s", got, 2*fd)
	}
}

func TestLinkDownDisablesPort(t *testing.T) {
	t.Parallel()

	l := newLab(t,
		bridgeSpec{name: "a", priority: 4096, mac: 0x01, ifaces: []string{"e0", "e1"}},
		bridgeSpec{name: "b", priority: 32768, mac: 0x02, ifaces: []string{"e0", "e1"}},
	)
	l.connect("a", "e0", "b", "e0")
	l.connect("a", "e1", "b", "e1")
	l.run(40 * time.Second)

	if got := l.status("b").RootPort; got != "e0" {
		t.Fatalf("b root port = %q, want e0", got)
	}
	if st := l.bridges["b"].PortState("e1"); st != stp.StateBlocking {
		t.Fatalf("b:e1 = %s, want Blocking", st)
	}

	dev, _ := l.network.Device("a")
	if err := dev.SetInterfaceShutdown("e0", true); err != nil {
		t.Fatalf("SetInterfaceShutdown: %v", err)
	}
	l.run(2 * time.Second)

	if st := l.bridges["b"].PortState("e0"); st != stp.StateDisabled {
		t.Errorf("b:e0 after peer shutdown = %s, want Disabled", st)
	}
	if got := l.status("b").RootPort; got != "e1" {
		t.Errorf("b root port after peer shutdown = %q, want e1", got)
	}

	l.run(40 * time.Second)
	if st := l.bridges["b"].PortState("e1"); st != stp.StateForwarding {
		t.Errorf("b:e1 = %s, want Forwarding", st)
	}
	l.assertSpanningTree()
}

func TestInvalidConfigRejected(t *testing.T) {
	t.Parallel()

	l := newLab(t,
		bridgeSpec{name: "a", priority: 4096, mac: 0x01, ifaces: []string{"e0"}},
	)
	dev, _ := l.network.Device("a")

	bad := stp.DefaultConfig()
	bad.Priority = 100
	dev.SetProtocolConfig(protocol.KindSTP.String(), bad)

	l.run(3 * time.Second)
	if l.instances["a"].Active() {
		t.Fatal("instance active with invalid priority")
	}
	if got := len(l.eventsOf(protocol.EventConfigRejected)); got != 1 {
		t.Errorf("ConfigRejected events = %d, want 1 (rejected generation is not retried)", got)
	}

	dev.SetProtocolConfig(protocol.KindSTP.String(), stp.DefaultConfig())
	l.run(time.Second)
	if !l.instances["a"].Active() {
		t.Error("instance inactive after valid configuration")
	}
	if !l.status("a").IsRoot {
		t.Error("lone bridge is not root")
	}
}

func TestDisabledPortConfig(t *testing.T) {
	t.Parallel()

	l := newLab(t,
		bridgeSpec{name: "a", priority: 4096, mac: 0x01, ifaces: []string{"e0", "e1"}},
		bridgeSpec{name: "b", priority: 32768, mac: 0x02, ifaces: []string{"e0", "e1"}},
	)
	l.connect("a", "e0", "b", "e0")
	l.connect("a", "e1", "b", "e1")

	dev, _ := l.network.Device("b")
	cfg := stp.DefaultConfig()
	cfg.Ports = map[string]stp.PortConfig{"e1": {Disabled: true}, "e0": {Cost: 7}}
	dev.SetProtocolConfig(protocol.KindSTP.String(), cfg)

	l.run(40 * time.Second)

	st := l.status("b")
	if st.RootPathCost != 7 {
		t.Errorf("root path cost = %d, want 7", st.RootPathCost)
	}
	for _, p := range st.Ports {
		if p.Name == "e1" && (p.State != stp.StateDisabled || p.Role != stp.RoleDisabled) {
			t.Errorf("e1 = %s/%s, want Disabled/Disabled", p.State, p.Role)
		}
	}
}

func TestStatusOfStoppedBridge(t *testing.T) {
	t.Parallel()

	l := newLab(t,
		bridgeSpec{name: "a", priority: 4096, mac: 0x01, ifaces: []string{"e0"}},
	)
	l.run(2 * time.Second)

	dev, _ := l.network.Device("a")
	dev.DeleteProtocolConfig(protocol.KindSTP.String())
	l.run(time.Second)

	st := l.status("a")
	if st.Running || len(st.Ports) != 0 {
		t.Errorf("stopped bridge status = %+v", st)
	}
	if got := l.bridges["a"].PortState("e0"); got != stp.StateDisabled {
		t.Errorf("PortState on stopped bridge = %s", got)
	}
	if l.instances["a"].Snapshot().Active {
		t.Error("snapshot reports an active instance")
	}
}

// portOf returns the status of the named port.
func portOf(t *testing.T, st stp.Status, name string) stp.PortStatus {
	t.Helper()

	for _, p := range st.Ports {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("%s: port %s missing", st.Device, name)
	return stp.PortStatus{}
}

func TestEdgePortForwardsImmediately(t *testing.T) {
	t.Parallel()

	l := newLab(t,
		bridgeSpec{name: "a", priority: 4096, mac: 0x01, ifaces: []string{"e0", "e1"}},
		bridgeSpec{name: "b", priority: 32768, mac: 0x02, ifaces: []string{"e0", "e1"}},
	)
	l.connect("a", "e0", "b", "e0")
	l.connect("a", "e1", "b", "e1")

	dev, _ := l.network.Device("a")
	cfg := stp.DefaultConfig()
	cfg.Priority = 4096
	cfg.Ports = map[string]stp.PortConfig{"e0": {Edge: true}}
	dev.SetProtocolConfig(protocol.KindSTP.String(), cfg)

	l.run(time.Second)

	st := l.status("a")
	edge := portOf(t, st, "e0")
	if !edge.Edge || edge.Role != stp.RoleDesignated || edge.State != stp.StateForwarding {
		t.Errorf("a:e0 after one tick = %s/%s edge=%v, want Designated/Forwarding edge", edge.Role, edge.State, edge.Edge)
	}
	if got := portOf(t, st, "e1").State; got != stp.StateListening {
		t.Errorf("a:e1 after one tick = %s, want Listening", got)
	}
	if got := l.bridges["b"].PortState("e0"); got != stp.StateListening {
		t.Errorf("b:e0 after one tick = %s, want Listening", got)
	}
	// An edge port reaching Forwarding is not a topology change.
	if st.TopologyChanges != 0 {
		t.Errorf("topology changes = %d, want 0", st.TopologyChanges)
	}

	l.run(40 * time.Second)
	if got := l.bridges["a"].PortState("e0"); got != stp.StateForwarding {
		t.Errorf("a:e0 after convergence = %s, want Forwarding", got)
	}
	if got := l.bridges["a"].PortState("e1"); got != stp.StateForwarding {
		t.Errorf("a:e1 after convergence = %s, want Forwarding", got)
	}
}

// TestInferiorInformationAnswered starts two bridges together. The
// non-root bridge claims to be root for its first hello; the root's
// designated port answers that inferior BPDU and keeps its own
// information.
func TestInferiorInformationAnswered(t *testing.T) {
	t.Parallel()

	l := newLab(t,
		bridgeSpec{name: "a", priority: 4096, mac: 0x01, ifaces: []string{"e0"}},
		bridgeSpec{name: "b", priority: 32768, mac: 0x02, ifaces: []string{"e0"}},
	)
	l.connect("a", "e0", "b", "e0")

	l.run(5 * time.Second)

	a := l.status("a")
	p := portOf(t, a, "e0")
	if p.Stats.InferiorReplies == 0 {
		t.Errorf("a:e0 inferior replies = 0, stats %+v", p.Stats)
	}
	if p.Role != stp.RoleDesignated || p.DesignatedBridge != a.BridgeID {
		t.Errorf("a:e0 = %s designated by %s, want Designated by %s", p.Role, p.DesignatedBridge, a.BridgeID)
	}
	if !a.IsRoot {
		t.Error("a lost the root role to inferior information")
	}
	if b := l.status("b"); b.RootID != a.BridgeID || b.RootPort != "e0" {
		t.Errorf("b root = %s via %q, want %s via e0", b.RootID, b.RootPort, a.BridgeID)
	}
}

// TestTopologyChangePropagation runs a chain a - b - c rooted at a. Ports
// going to Forwarding raise topology changes that travel to the root as
// TCNs; the root floods TC back down the chain and acknowledges with TCA,
// which stops the notifications.
func TestTopologyChangePropagation(t *testing.T) {
	t.Parallel()

	l := newLab(t,
		bridgeSpec{name: "a", priority: 4096, mac: 0x01, ifaces: []string{"e0"}},
		bridgeSpec{name: "b", priority: 32768, mac: 0x02, ifaces: []string{"e0", "e1"}},
		bridgeSpec{name: "c", priority: 32768, mac: 0x03, ifaces: []string{"e0"}},
	)
	l.connect("a", "e0", "b", "e0")
	l.connect("b", "e1", "c", "e0")

	sawTC := map[string]bool{}
	step := func(d time.Duration) {
		end := l.now.Add(d)
		for ; l.now.Before(end); l.now = l.now.Add(time.Second) {
			l.tick()
			for _, name := range l.order {
				if l.status(name).TopologyChangeActive {
					sawTC[name] = true
				}
			}
		}
	}

	step(90 * time.Second)
	l.assertSpanningTree()

	for _, name := range []string{"a", "b", "c"} {
		if !sawTC[name] {
			t.Errorf("%s never saw the topology change flag", name)
		}
		if l.status(name).TopologyChanges == 0 {
			t.Errorf("%s counted no topology changes", name)
		}
	}

	if got := portOf(t, l.status("c"), "e0").Stats.TCNsSent; got == 0 {
		t.Error("c sent no TCN on its root port")
	}
	b := l.status("b")
	if got := portOf(t, b, "e1").Stats.TCNsReceived; got == 0 {
		t.Error("b received no TCN from c")
	}
	if got := portOf(t, b, "e0").Stats.TCNsSent; got == 0 {
		t.Error("b relayed no TCN towards the root")
	}
	if got := portOf(t, l.status("a"), "e0").Stats.TCNsReceived; got == 0 {
		t.Error("root received no TCN")
	}

	// Acknowledged notifications stop.
	sentB := portOf(t, b, "e0").Stats.TCNsSent
	sentC := portOf(t, l.status("c"), "e0").Stats.TCNsSent
	step(60 * time.Second)
	if got := portOf(t, l.status("b"), "e0").Stats.TCNsSent; got != sentB {
		t.Errorf("b kept sending TCNs after TCA: %d -> %d", sentB, got)
	}
	if got := portOf(t, l.status("c"), "e0").Stats.TCNsSent; got != sentC {
		t.Errorf("c kept sending TCNs after TCA: %d -> %d", sentC, got)
	}

	// The flag expires once the root stops flooding it.
	step(120 * time.Second)
	for _, name := range l.order {
		if l.status(name).TopologyChangeActive {
			t.Errorf("%s topology change flag still set", name)
		}
	}
}

// TestSelfLoopBackupPort cables two ports of one bridge together. The port
// with the higher port ID hears its sibling's better information and
// becomes Backup, so the loop never forwards.
func TestSelfLoopBackupPort(t *testing.T) {
	t.Parallel()

	l := newLab(t,
		bridgeSpec{name: "a", priority: 32768, mac: 0x01, ifaces: []string{"e0", "e1"}},
	)
	l.connect("a", "e0", "a", "e1")

	l.run(60 * time.Second)

	st := l.status("a")
	if !st.IsRoot {
		t.Fatalf("self-looped bridge is not root: root %s", st.RootID)
	}
	e0, e1 := portOf(t, st, "e0"), portOf(t, st, "e1")
	if e0.Role != stp.RoleDesignated || e0.State != stp.StateForwarding {
		t.Errorf("e0 = %s/%s, want Designated/Forwarding", e0.Role, e0.State)
	}
	if e1.Role != stp.RoleBackup || e1.State != stp.StateBlocking {
		t.Errorf("e1 = %s/%s, want Backup/Blocking", e1.Role, e1.State)
	}
	if e1.DesignatedBridge != st.BridgeID || e1.DesignatedPort != e0.ID {
		t.Errorf("e1 designated %s port %s, want %s port %s",
			e1.DesignatedBridge, e1.DesignatedPort, st.BridgeID, e0.ID)
	}
	if e0.Stats.InferiorReplies == 0 {
		t.Error("e0 never answered its sibling's inferior hello")
	}

	if report := l.network.ForwardingLoops(l.forwarding); report.Loop {
		t.Errorf("self loop forwards: %v", report.ClosingLinks)
	}
}
