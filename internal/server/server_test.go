package server_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/dantte-lp/l2sim/internal/cdp"
	"github.com/dantte-lp/l2sim/internal/netio"
	"github.com/dantte-lp/l2sim/internal/server"
	"github.com/dantte-lp/l2sim/internal/sim"
	l2simv1 "github.com/dantte-lp/l2sim/pkg/l2simpb/l2sim/v1"
	"github.com/dantte-lp/l2sim/pkg/l2simpb/l2sim/v1/l2simv1connect"
)

// labYAML is two switches with a router hanging off sw2.
const labYAML = `
devices:
  - name: sw1
    kind: switch
    interfaces: [{name: Gi0/1}]
    stp: {priority: 4096}
  - name: sw2
    kind: switch
    interfaces: [{name: Gi0/1}, {name: Gi0/2}]
  - name: r1
    kind: router
    platform: cisco ISR4331
    interfaces: [{name: Gi0/0, address: 192.0.2.1/24}]
links:
  - {a: "sw1:Gi0/1", b: "sw2:Gi0/1"}
  - {a: "sw2:Gi0/2", b: "r1:Gi0/0"}
`

// epoch is the simulated start time of every test lab.
var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// -------------------------------------------------------------------------
// Test Helpers
// -------------------------------------------------------------------------

// newLab builds the simulation and steps it once per second for the
// given duration. A negative duration leaves it unstepped.
func newLab(t *testing.T, d time.Duration) *sim.Simulation {
	t.Helper()

	n, err := sim.DecodeTopology(strings.NewReader(labYAML), sim.StandardDefaults())
	if err != nil {
		t.Fatalf("DecodeTopology: %v", err)
	}
	s := sim.New(n, netio.NewFabric(n), sim.WithLogger(slog.New(slog.DiscardHandler)))

	for now := epoch; d >= 0 && !now.After(epoch.Add(d)); now = now.Add(time.Second) {
		if err := s.Step(context.Background(), now); err != nil {
			t.Fatalf("Step(%s): %v", now, err)
		}
	}
	return s
}

// setupTestServer creates a real HTTP server backed by the simulation and
// returns a ConnectRPC client connected to it. The server is cleaned up
// when the test finishes.
func setupTestServer(t *testing.T, s *sim.Simulation, opts ...connect.HandlerOption) l2simv1connect.SimulatorServiceClient {
	t.Helper()

	path, handler := server.New(s, slog.New(slog.DiscardHandler), opts...)
	mux := http.NewServeMux()
	mux.Handle(path, handler)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return l2simv1connect.NewSimulatorServiceClient(srv.Client(), srv.URL)
}

// assertCode fails the test unless err is a connect.Error with code want.
func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %s error, got nil", want)
	}
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected connect.Error, got %T: %v", err, err)
	}
	if connectErr.Code() != want {
		t.Errorf("code = %s, want %s", connectErr.Code(), want)
	}
}

// -------------------------------------------------------------------------
// Queries
// -------------------------------------------------------------------------

func TestListDevices(t *testing.T) {
	t.Parallel()

	s := newLab(t, 40*time.Second)
	client := setupTestServer(t, s)

	msg, err := client.ListDevices(context.Background(), &l2simv1.ListDevicesRequest{})
	if err != nil {
		t.Fatalf("ListDevices: %v", err)
	}

	if msg.GetRunId() != s.RunID().String() {
		t.Errorf("RunId = %q, want %q", msg.GetRunId(), s.RunID())
	}
	if msg.GetSteps() != 41 {
		t.Errorf("Steps = %d, want 41", msg.GetSteps())
	}
	if !msg.GetNow().AsTime().Equal(epoch.Add(40 * time.Second)) {
		t.Errorf("Now = %s", msg.GetNow().AsTime())
	}

	if len(msg.Devices) != 3 {
		t.Fatalf("got %d devices, want 3", len(msg.Devices))
	}
	r1, sw1, sw2 := msg.Devices[0], msg.Devices[1], msg.Devices[2]
	if r1.Name != "r1" || sw1.Name != "sw1" || sw2.Name != "sw2" {
		t.Fatalf("devices not sorted by name: %s %s %s", r1.Name, sw1.Name, sw2.Name)
	}
	if r1.Kind != "router" || r1.Platform != "cisco ISR4331" || r1.StpActive || !r1.CdpActive {
		t.Errorf("r1 = %+v", r1)
	}
	if !sw1.IsRoot || !sw1.StpActive || sw1.CdpNeighbors != 1 {
		t.Errorf("sw1 = %+v", sw1)
	}
	if sw2.IsRoot || sw2.RootId != sw1.RootId || sw2.CdpNeighbors != 2 || sw2.Interfaces != 2 {
		t.Errorf("sw2 = %+v", sw2)
	}
}

func TestGetSpanningTree(t *testing.T) {
	t.Parallel()

	client := setupTestServer(t, newLab(t, 40*time.Second))

	resp, err := client.GetSpanningTree(context.Background(), &l2simv1.GetSpanningTreeRequest{Device: "sw2"})
	if err != nil {
		t.Fatalf("GetSpanningTree: %v", err)
	}
	b := resp.GetBridge()

	if !b.Running || b.IsRoot || b.RootPort != "Gi0/1" {
		t.Errorf("bridge = %+v", b)
	}
	if !strings.HasPrefix(b.GetRootId(), "4096.") {
		t.Errorf("RootId = %q, want priority 4096", b.GetRootId())
	}
	if b.GetHelloTime().AsDuration() != 2*time.Second || b.GetForwardDelay().AsDuration() != 15*time.Second {
		t.Errorf("timers = %s/%s", b.GetHelloTime().AsDuration(), b.GetForwardDelay().AsDuration())
	}
	if len(b.Ports) != 2 {
		t.Fatalf("got %d ports, want 2", len(b.Ports))
	}

	ports := make(map[string]*l2simv1.Port, len(b.Ports))
	for _, p := range b.Ports {
		ports[p.Name] = p
	}
	if p := ports["Gi0/1"]; p.Role != "Root" || p.State != "Forwarding" || p.BpdusReceived == 0 {
		t.Errorf("Gi0/1 = %+v", p)
	}
	if p := ports["Gi0/2"]; p.Role != "Designated" || p.State != "Forwarding" || p.BpdusSent == 0 {
		t.Errorf("Gi0/2 = %+v", p)
	}
}

func TestGetSpanningTreeErrors(t *testing.T) {
	t.Parallel()

	client := setupTestServer(t, newLab(t, -1))

	tests := []struct {
		name   string
		device string
		want   connect.Code
	}{
		{name: "empty device", device: "", want: connect.CodeInvalidArgument},
		{name: "unknown device", device: "sw9", want: connect.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := client.GetSpanningTree(context.Background(), &l2simv1.GetSpanningTreeRequest{Device: tt.device})
			assertCode(t, err, tt.want)
		})
	}
}

func TestListNeighbors(t *testing.T) {
	t.Parallel()

	client := setupTestServer(t, newLab(t, 5*time.Second))

	resp, err := client.ListNeighbors(context.Background(), &l2simv1.ListNeighborsRequest{Device: "sw2"})
	if err != nil {
		t.Fatalf("ListNeighbors: %v", err)
	}

	nbrs := resp.GetNeighbors()
	if len(nbrs) != 2 {
		t.Fatalf("got %d neighbors, want 2", len(nbrs))
	}

	if n := nbrs[0]; n.LocalInterface != "Gi0/1" || n.DeviceId != "sw1" || n.PortId != "Gi0/1" {
		t.Errorf("neighbor[0] = %+v", n)
	}

	r1 := nbrs[1]
	if r1.LocalInterface != "Gi0/2" || r1.DeviceId != "r1" || r1.PortId != "Gi0/0" || r1.Platform != "cisco ISR4331" {
		t.Errorf("neighbor[1] = %+v", r1)
	}
	if len(r1.Addresses) != 1 || r1.Addresses[0] != "192.0.2.1" {
		t.Errorf("r1 addresses = %v", r1.Addresses)
	}
	if len(r1.Capabilities) != 1 || r1.Capabilities[0] != "router" {
		t.Errorf("r1 capabilities = %v", r1.Capabilities)
	}
	if hold := r1.GetHoldRemaining().AsDuration(); hold <= 0 || hold > cdp.DefaultHoldTime {
		t.Errorf("r1 hold remaining = %s", hold)
	}
	if r1.GetLastSeen() == nil {
		t.Error("r1 last seen unset")
	}

	_, err = client.ListNeighbors(context.Background(), &l2simv1.ListNeighborsRequest{Device: "nope"})
	assertCode(t, err, connect.CodeNotFound)
}

func TestVerifyLoopFree(t *testing.T) {
	t.Parallel()

	client := setupTestServer(t, newLab(t, 40*time.Second))

	got, err := client.VerifyLoopFree(context.Background(), &l2simv1.VerifyLoopFreeRequest{})
	if err != nil {
		t.Fatalf("VerifyLoopFree: %v", err)
	}

	// The router does not bridge, so r1 is an island of its own.
	if got.GetLoop() || got.GetForwardingLinks() != 1 || got.GetComponents() != 2 || len(got.GetClosingLinks()) != 0 {
		t.Errorf("VerifyLoopFree = %v, want 1 forwarding link in 2 components", got)
	}
}

// -------------------------------------------------------------------------
// Control
// -------------------------------------------------------------------------

func TestSetInterfaceState(t *testing.T) {
	t.Parallel()

	s := newLab(t, -1)
	client := setupTestServer(t, s)

	_, err := client.SetInterfaceState(context.Background(), &l2simv1.SetInterfaceStateRequest{
		Device:    "sw2",
		Interface: "Gi0/2",
		Shutdown:  true,
	})
	if err != nil {
		t.Fatalf("SetInterfaceState: %v", err)
	}

	d, err := s.Device("sw2")
	if err != nil {
		t.Fatal(err)
	}
	if ifc, _ := d.Interface("Gi0/2"); !ifc.Shutdown {
		t.Error("Gi0/2 not shut down")
	}

	tests := []struct {
		name string
		req  *l2simv1.SetInterfaceStateRequest
		want connect.Code
	}{
		{name: "empty device", req: &l2simv1.SetInterfaceStateRequest{Interface: "Gi0/1"}, want: connect.CodeInvalidArgument},
		{name: "empty interface", req: &l2simv1.SetInterfaceStateRequest{Device: "sw2"}, want: connect.CodeInvalidArgument},
		{name: "unknown device", req: &l2simv1.SetInterfaceStateRequest{Device: "sw9", Interface: "Gi0/1"}, want: connect.CodeNotFound},
		{name: "unknown interface", req: &l2simv1.SetInterfaceStateRequest{Device: "sw2", Interface: "Gi9/9"}, want: connect.CodeNotFound},
	}
	for _, tt := range tests {
		_, err := client.SetInterfaceState(context.Background(), tt.req)
		assertCode(t, err, tt.want)
	}
}

func TestSetProtocolEnabled(t *testing.T) {
	t.Parallel()

	s := newLab(t, -1)
	client := setupTestServer(t, s)

	_, err := client.SetProtocolEnabled(context.Background(), &l2simv1.SetProtocolEnabledRequest{
		Device:   "r1",
		Protocol: "cdp",
		Enabled:  false,
	})
	if err != nil {
		t.Fatalf("SetProtocolEnabled: %v", err)
	}

	d, err := s.Device("r1")
	if err != nil {
		t.Fatal(err)
	}
	raw, _, ok := d.ProtocolConfig("cdp")
	if cfg, isCDP := raw.(cdp.Config); !ok || !isCDP || cfg.Enabled {
		t.Errorf("r1 cdp config = %+v", raw)
	}

	tests := []struct {
		name string
		req  *l2simv1.SetProtocolEnabledRequest
		want connect.Code
	}{
		{name: "unknown protocol", req: &l2simv1.SetProtocolEnabledRequest{Device: "r1", Protocol: "ospf"}, want: connect.CodeInvalidArgument},
		{name: "protocol not lower case", req: &l2simv1.SetProtocolEnabledRequest{Device: "r1", Protocol: "CDP"}, want: connect.CodeInvalidArgument},
		{name: "empty protocol", req: &l2simv1.SetProtocolEnabledRequest{Device: "r1"}, want: connect.CodeInvalidArgument},
		{name: "unknown device", req: &l2simv1.SetProtocolEnabledRequest{Device: "r9", Protocol: "stp"}, want: connect.CodeNotFound},
		{name: "empty device", req: &l2simv1.SetProtocolEnabledRequest{Protocol: "stp"}, want: connect.CodeInvalidArgument},
	}
	for _, tt := range tests {
		_, err := client.SetProtocolEnabled(context.Background(), tt.req)
		assertCode(t, err, tt.want)
	}
}

// -------------------------------------------------------------------------
// Streaming
// -------------------------------------------------------------------------

func TestWatchEvents(t *testing.T) {
	t.Parallel()

	s := newLab(t, -1)
	client := setupTestServer(t, s)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := client.WatchEvents(ctx, &l2simv1.WatchEventsRequest{
		Device:   "sw1",
		Protocol: "cdp",
	})
	if err != nil {
		t.Fatalf("WatchEvents: %v", err)
	}
	defer func() {
		cancel()
		_ = stream.Close()
	}()

	// The first message arrives once the watcher is subscribed, before
	// the simulation has produced anything.
	if !stream.Receive() {
		t.Fatalf("Receive first message: %v", stream.Err())
	}
	if first := stream.Msg(); first.GetEvent() != nil || first.GetCurrent() || first.GetNow() == nil {
		t.Fatalf("first message = %v, want time only", first)
	}
	if s.Events().Subscribers() != 1 {
		t.Errorf("subscribers = %d, want 1", s.Events().Subscribers())
	}

	for i := range 3 {
		if err := s.Step(context.Background(), epoch.Add(time.Duration(i)*time.Second)); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}

	if !stream.Receive() {
		t.Fatalf("Receive: %v", stream.Err())
	}
	ev := stream.Msg().GetEvent()
	if ev.GetDevice() != "sw1" || ev.GetProtocol() != "cdp" || ev.GetType() != "NeighborUp" || ev.GetInterface() != "Gi0/1" {
		t.Errorf("event = %v", ev)
	}
	if stream.Msg().GetCurrent() {
		t.Error("live event flagged current")
	}
}

func TestWatchEventsIncludeCurrent(t *testing.T) {
	t.Parallel()

	s := newLab(t, 40*time.Second)
	client := setupTestServer(t, s)

	sw1, err := s.SpanningTree("sw1")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := client.WatchEvents(ctx, &l2simv1.WatchEventsRequest{
		Device:         "sw2",
		IncludeCurrent: true,
	})
	if err != nil {
		t.Fatalf("WatchEvents: %v", err)
	}
	defer func() {
		cancel()
		_ = stream.Close()
	}()

	if !stream.Receive() {
		t.Fatalf("Receive first message: %v", stream.Err())
	}
	if got := stream.Msg().GetNow().AsTime(); !got.Equal(epoch.Add(40 * time.Second)) {
		t.Errorf("first message time = %s", got)
	}

	// sw2 is not stepped further, so only its current state follows.
	want := []struct {
		protocol, typ, iface, peer, to string
	}{
		{"stp", "RootChanged", "", "", sw1.BridgeID.String()},
		{"stp", "RootPortChanged", "Gi0/1", "", "Gi0/1"},
		{"cdp", "NeighborUp", "Gi0/1", "sw1", ""},
		{"cdp", "NeighborUp", "Gi0/2", "r1", ""},
	}
	for i, w := range want {
		if !stream.Receive() {
			t.Fatalf("Receive current[%d]: %v", i, stream.Err())
		}
		msg := stream.Msg()
		ev := msg.GetEvent()
		if !msg.GetCurrent() || ev.GetDevice() != "sw2" {
			t.Errorf("current[%d] = %v", i, msg)
		}
		if ev.GetProtocol() != w.protocol || ev.GetType() != w.typ || ev.GetInterface() != w.iface ||
			ev.GetPeer() != w.peer || ev.GetTo() != w.to {
			t.Errorf("current[%d] = %v, want %+v", i, ev, w)
		}
	}
}

func TestWatchEventsInvalidFilter(t *testing.T) {
	t.Parallel()

	client := setupTestServer(t, newLab(t, -1))

	stream, err := client.WatchEvents(context.Background(), &l2simv1.WatchEventsRequest{Protocol: "ospf"})
	if err != nil {
		assertCode(t, err, connect.CodeInvalidArgument)
		return
	}
	defer func() { _ = stream.Close() }()

	if stream.Receive() {
		t.Fatal("Receive succeeded on an invalid filter")
	}
	assertCode(t, stream.Err(), connect.CodeInvalidArgument)
}
