package commands

import (
	"errors"
	"strings"
	"testing"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	l2simv1 "github.com/dantte-lp/l2sim/pkg/l2simpb/l2sim/v1"
)

func testDevices() *l2simv1.ListDevicesResponse {
	return &l2simv1.ListDevicesResponse{
		RunId: "6f1c2a4e-0000-4000-8000-000000000001",
		Now:   timestamppb.New(time.Date(2026, 1, 1, 0, 0, 40, 0, time.UTC)),
		Steps: 1234,
		Devices: []*l2simv1.Device{
			{Name: "r1", Kind: "router", Platform: "cisco ISR4331", Interfaces: 1, CdpActive: true, CdpNeighbors: 1},
			{Name: "sw1", Kind: "switch", Interfaces: 2, StpActive: true, RootId: "4096.0200.dddd.0000", IsRoot: true, CdpActive: true},
		},
	}
}

func TestFormatDevicesTable(t *testing.T) {
	t.Parallel()

	out, err := formatDevices(testDevices(), formatTable)
	if err != nil {
		t.Fatalf("formatDevices: %v", err)
	}

	for _, want := range []string{
		"NAME", "steps 1,234", "time 2026-01-01T00:00:40Z",
		"r1", "cisco ISR4331",
		"sw1", "4096.0200.dddd.0000 (self)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatDevicesJSON(t *testing.T) {
	t.Parallel()

	out, err := formatDevices(testDevices(), formatJSON)
	if err != nil {
		t.Fatalf("formatDevices: %v", err)
	}

	var got l2simv1.ListDevicesResponse
	if err := protojson.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(got.GetDevices()) != 2 || got.GetDevices()[1].GetName() != "sw1" {
		t.Errorf("devices = %v", got.GetDevices())
	}
	if !strings.Contains(out, `"run_id"`) {
		t.Errorf("JSON does not use .proto field names:\n%s", out)
	}
}

func TestFormatUnsupported(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func() error
	}{
		{"devices", func() error { _, err := formatDevices(testDevices(), "yaml"); return err }},
		{"bridge", func() error { _, err := formatBridge(&l2simv1.Bridge{}, "xml"); return err }},
		{"neighbors", func() error { _, err := formatNeighbors(&l2simv1.ListNeighborsResponse{}, "csv"); return err }},
		{"loops", func() error { _, err := formatLoopReport(&l2simv1.VerifyLoopFreeResponse{}, ""); return err }},
		{"event", func() error { _, err := formatWatch(&l2simv1.WatchEventsResponse{}, "yaml"); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := tt.fn(); !errors.Is(err, errUnsupportedFormat) {
				t.Errorf("error = %v, want %v", err, errUnsupportedFormat)
			}
		})
	}
}

func TestFormatBridgeDetail(t *testing.T) {
	t.Parallel()

	b := &l2simv1.Bridge{
		Device:       "sw2",
		Running:      true,
		BridgeId:     "32768.0200.dddd.0100",
		RootId:       "4096.0200.dddd.0000",
		RootPathCost: 4,
		RootPort:     "Gi0/1",
		HelloTime:    durationpb.New(2 * time.Second),
		MaxAge:       durationpb.New(20 * time.Second),
		ForwardDelay: durationpb.New(15 * time.Second),
		Ports: []*l2simv1.Port{
			{Name: "Gi0/1", Id: "128.1", Role: "Root", State: "Forwarding", PathCost: 4, BpdusReceived: 2048},
			{Name: "Gi0/2", Id: "128.2", Role: "Designated", State: "Forwarding", PathCost: 4, Edge: true},
		},
	}

	out, err := formatBridge(b, formatTable)
	if err != nil {
		t.Fatalf("formatBridge: %v", err)
	}

	for _, want := range []string{
		"Root Port:", "Gi0/1", "Root Path Cost:",
		"hello 2s  max-age 20s  forward-delay 15s",
		"Gi0/2 (edge)", "Designated", "2,048",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatNeighborsTable(t *testing.T) {
	t.Parallel()

	out, err := formatNeighbors(&l2simv1.ListNeighborsResponse{Neighbors: []*l2simv1.Neighbor{{
		DeviceId:       "r1",
		LocalInterface: "Gi0/2",
		PortId:         "Gi0/0",
		HoldRemaining:  durationpb.New(177 * time.Second),
		Capabilities:   []string{"router", "igmp"},
		Addresses:      []string{"192.0.2.1"},
	}}}, formatTable)
	if err != nil {
		t.Fatalf("formatNeighbors: %v", err)
	}

	for _, want := range []string{"r1", "Gi0/2", "177", "R I", "192.0.2.1", valueNA} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCapabilityLetters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		names []string
		want  string
	}{
		{nil, valueNA},
		{[]string{"switch", "igmp"}, "S I"},
		{[]string{"trans-bridge"}, "T"},
		{[]string{"repeater", "host"}, "r H"},
		{[]string{"bogus"}, "bogus"},
	}

	for _, tt := range tests {
		if got := capabilityLetters(tt.names); got != tt.want {
			t.Errorf("capabilityLetters(%v) = %q, want %q", tt.names, got, tt.want)
		}
	}
}

func TestFormatLoopReport(t *testing.T) {
	t.Parallel()

	out, err := formatLoopReport(&l2simv1.VerifyLoopFreeResponse{
		Loop:            true,
		ClosingLinks:    []string{"sw3:Gi0/2 <-> sw1:Gi0/2"},
		ForwardingLinks: 3,
		Components:      1,
	}, formatTable)
	if err != nil {
		t.Fatalf("formatLoopReport: %v", err)
	}
	if !strings.HasPrefix(out, "LOOP: 1 closing links") {
		t.Errorf("output = %q", out)
	}

	out, err = formatLoopReport(&l2simv1.VerifyLoopFreeResponse{ForwardingLinks: 2, Components: 1}, formatTable)
	if err != nil {
		t.Fatalf("formatLoopReport: %v", err)
	}
	if !strings.HasPrefix(out, "loop free") {
		t.Errorf("output = %q", out)
	}
}

func TestFormatWatch(t *testing.T) {
	t.Parallel()

	ev := &l2simv1.Event{
		Time:      timestamppb.New(time.Date(2026, 1, 1, 0, 0, 30, 0, time.UTC)),
		Device:    "sw2",
		Protocol:  "stp",
		Type:      "PortStateChanged",
		Interface: "Gi0/1",
		From:      "Learning",
		To:        "Forwarding",
	}
	now := timestamppb.New(time.Date(2026, 1, 1, 0, 0, 31, 0, time.UTC))

	tests := []struct {
		name string
		msg  *l2simv1.WatchEventsResponse
		want string
	}{
		{
			name: "stream start",
			msg:  &l2simv1.WatchEventsResponse{Now: now},
			want: "--- watching at 2026-01-01T00:00:31Z ---",
		},
		{
			name: "live event",
			msg:  &l2simv1.WatchEventsResponse{Event: ev, Now: now},
			want: "[2026-01-01T00:00:30Z] sw2 stp PortStateChanged  intf=Gi0/1  Learning->Forwarding",
		},
		{
			name: "current state",
			msg:  &l2simv1.WatchEventsResponse{Event: ev, Current: true, Now: now},
			want: "[2026-01-01T00:00:30Z] sw2 stp PortStateChanged  intf=Gi0/1  Learning->Forwarding  (current)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			line, err := formatWatch(tt.msg, formatTable)
			if err != nil {
				t.Fatalf("formatWatch: %v", err)
			}
			if line != tt.want {
				t.Errorf("line = %q, want %q", line, tt.want)
			}

			js, err := formatWatch(tt.msg, formatJSON)
			if err != nil {
				t.Fatalf("formatWatch: %v", err)
			}
			if strings.Contains(js, "\n") {
				t.Errorf("JSON event spans lines: %q", js)
			}
		})
	}

	if got := formatEventLine(nil); got != valueNA {
		t.Errorf("formatEventLine(nil) = %q", got)
	}
}

func TestFormatDaemonRun(t *testing.T) {
	t.Parallel()

	out := formatDaemonRun("localhost:50061", testDevices(), nil)
	for _, want := range []string{
		"daemon localhost:50061",
		"run:     6f1c2a4e-0000-4000-8000-000000000001",
		"steps:   1,234",
		"devices: 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	out = formatDaemonRun("localhost:1", nil, errors.New("connection refused"))
	if out != "daemon localhost:1: unreachable (connection refused)" {
		t.Errorf("unreachable = %q", out)
	}
}
