package stp_test

import (
	"errors"
	"net"
	"testing"
	"time"

	"github.com/dantte-lp/l2sim/internal/stp"
)

func bid(t *testing.T, prio uint16, last byte) stp.BridgeID {
	t.Helper()
	id, err := stp.NewBridgeID(prio, net.HardwareAddr{0x02, 0, 0, 0, 0, last})
	if err != nil {
		t.Fatalf("NewBridgeID: %v", err)
	}
	return id
}

// -------------------------------------------------------------------------
// BridgeID ordering
// -------------------------------------------------------------------------

func TestBridgeIDPriorityDominatesMAC(t *testing.T) {
	t.Parallel()

	prios := []uint16{0, 4096, 8192, 32768, 61440}
	macs := []byte{0x00, 0x01, 0x7f, 0xfe, 0xff}

	for i, p1 := range prios {
		for _, p2 := range prios[i+1:] {
			for _, m1 := range macs {
				for _, m2 := range macs {
					a, b := bid(t, p1, m1), bid(t, p2, m2)
					if a.Compare(b) >= 0 {
						t.Errorf("%s vs %s: Compare = %d, want < 0", a, b, a.Compare(b))
					}
					if b.Compare(a) <= 0 {
						t.Errorf("%s vs %s: Compare = %d, want > 0", b, a, b.Compare(a))
					}
				}
			}
		}
	}
}

func TestBridgeIDMACTieBreak(t *testing.T) {
	t.Parallel()

	low, high := bid(t, 32768, 0x0b), bid(t, 32768, 0x0c)
	if low.Compare(high) != -1 || high.Compare(low) != 1 || low.Compare(low) != 0 {
		t.Errorf("MAC tie-break broken: low=%s high=%s", low, high)
	}
}

func TestBridgeIDString(t *testing.T) {
	t.Parallel()

	got := bid(t, 4096, 0x0a).String()
	if want := "4096.0200.0000.000a"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if _, err := stp.NewBridgeID(0, net.HardwareAddr{1, 2}); !errors.Is(err, stp.ErrBadMAC) {
		t.Errorf("NewBridgeID short MAC: err = %v, want ErrBadMAC", err)
	}
}

func TestPortID(t *testing.T) {
	t.Parallel()

	p := stp.NewPortID(128, 3)
	if p.Priority() != 128 || p.Number() != 3 || p != 0x8003 {
		t.Errorf("NewPortID(128, 3) = %#x (%s)", uint16(p), p)
	}
}

// -------------------------------------------------------------------------
// BPDU codec
// -------------------------------------------------------------------------

func TestBPDURoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		bpdu stp.BPDU
	}{
		{
			name: "config from root",
			bpdu: stp.BPDU{
				Type:         stp.TypeConfig,
				RootID:       bid(t, 4096, 0x0a),
				BridgeID:     bid(t, 4096, 0x0a),
				PortID:       stp.NewPortID(128, 1),
				MaxAge:       20 * time.Second,
				HelloTime:    2 * time.Second,
				ForwardDelay: 15 * time.Second,
			},
		},
		{
			name: "relayed config with flags",
			bpdu: stp.BPDU{
				Type:         stp.TypeConfig,
				Flags:        stp.FlagTC | stp.FlagTCA,
				RootID:       bid(t, 4096, 0x0a),
				RootPathCost: 38,
				BridgeID:     bid(t, 32768, 0x0b),
				PortID:       stp.NewPortID(128, 2),
				MessageAge:   2 * time.Second,
				MaxAge:       20 * time.Second,
				HelloTime:    2 * time.Second,
				ForwardDelay: 15 * time.Second,
			},
		},
		{
			name: "tcn",
			bpdu: stp.BPDU{Type: stp.TypeTCN},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := tt.bpdu.Marshal()
			if len(buf) != tt.bpdu.Size() {
				t.Fatalf("Marshal length = %d, want %d", len(buf), tt.bpdu.Size())
			}

			got, err := stp.UnmarshalBPDU(buf)
			if err != nil {
				t.Fatalf("UnmarshalBPDU: %v", err)
			}
			if got != tt.bpdu {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, tt.bpdu)
			}
		})
	}
}

func TestBPDUWireLayout(t *testing.T) {
	t.Parallel()

	b := stp.BPDU{
		Type:         stp.TypeConfig,
		Flags:        stp.FlagTC,
		RootID:       bid(t, 0x1000, 0x0a),
		RootPathCost: 0x01020304,
		BridgeID:     bid(t, 0x8000, 0x0b),
		PortID:       0x8001,
		MessageAge:   time.Second,
		MaxAge:       20 * time.Second,
		HelloTime:    2 * time.Second,
		ForwardDelay: 15 * time.Second,
	}
	buf := b.Marshal()

	if len(buf) != stp.ConfigBPDUSize {
		t.Fatalf("len = %d, want %d", len(buf), stp.ConfigBPDUSize)
	}
	checks := []struct {
		off  int
		want byte
	}{
		{0, 0x00}, {1, 0x00}, {2, 0x00}, {3, 0x00}, {4, 0x01},
		{5, 0x10}, {6, 0x00}, {12, 0x0a},
		{13, 0x01}, {16, 0x04},
		{17, 0x80}, {24, 0x0b},
		{25, 0x80}, {26, 0x01},
		{27, 0x01}, {28, 0x00}, // 1s = 256/256
		{29, 0x14}, {30, 0x00}, // 20s
		{31, 0x02}, {33, 0x0f},
	}
	for _, c := range checks {
		if buf[c.off] != c.want {
			t.Errorf("byte %d = %#02x, want %#02x", c.off, buf[c.off], c.want)
		}
	}
}

func TestUnmarshalBPDUErrors(t *testing.T) {
	t.Parallel()

	valid := stp.BPDU{Type: stp.TypeConfig, MaxAge: 20 * time.Second}.Marshal()

	badPID := append([]byte(nil), valid...)
	badPID[1] = 0x01

	badType := append([]byte(nil), valid...)
	badType[3] = 0x02

	tests := []struct {
		name    string
		buf     []byte
		wantErr error
	}{
		{"empty", nil, stp.ErrBPDUTooShort},
		{"three bytes", []byte{0, 0, 0}, stp.ErrBPDUTooShort},
		{"truncated config", valid[:30], stp.ErrBPDUTooShort},
		{"bad protocol id", badPID, stp.ErrBadProtocolID},
		{"unknown type", badType, stp.ErrUnknownBPDUType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := stp.UnmarshalBPDU(tt.buf); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := stp.MarshalBPDU(stp.BPDU{}, make([]byte, 10)); !errors.Is(err, stp.ErrBufTooSmall) {
		t.Errorf("MarshalBPDU small buffer: err = %v, want ErrBufTooSmall", err)
	}
}

// -------------------------------------------------------------------------
// Priority vector comparison
// -------------------------------------------------------------------------

func TestCompareBPDUKeyOrder(t *testing.T) {
	t.Parallel()

	base := stp.BPDU{
		RootID:       bid(t, 4096, 0x0a),
		RootPathCost: 19,
		BridgeID:     bid(t, 32768, 0x0b),
		PortID:       stp.NewPortID(128, 2),
	}

	better := func(mut func(*stp.BPDU)) stp.BPDU {
		b := base
		mut(&b)
		return b
	}

	tests := []struct {
		name string
		a    stp.BPDU
		want stp.Superiority
	}{
		{"same", base, stp.Same},
		{"lower root", better(func(b *stp.BPDU) { b.RootID = bid(t, 0, 0xff) }), stp.Superior},
		{"lower cost", better(func(b *stp.BPDU) { b.RootPathCost = 4 }), stp.Superior},
		{"lower bridge", better(func(b *stp.BPDU) { b.BridgeID = bid(t, 32768, 0x01) }), stp.Superior},
		{"lower port", better(func(b *stp.BPDU) { b.PortID = stp.NewPortID(128, 1) }), stp.Superior},
		{"root beats cost", better(func(b *stp.BPDU) {
			b.RootID = bid(t, 0, 0x0a)
			b.RootPathCost = 1000
		}), stp.Superior},
		{"higher cost", better(func(b *stp.BPDU) { b.RootPathCost = 100 }), stp.Inferior},
	}

	for _, tt := range tests {
		if got := stp.CompareBPDU(tt.a, base); got != tt.want {
			t.Errorf("%s: CompareBPDU = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestCompareBPDUTransitive(t *testing.T) {
	t.Parallel()

	var set []stp.BPDU
	for _, root := range []stp.BridgeID{bid(t, 0, 2), bid(t, 4096, 1)} {
		for _, cost := range []uint32{0, 19} {
			for _, br := range []stp.BridgeID{bid(t, 4096, 3), bid(t, 32768, 1)} {
				for _, port := range []stp.PortID{0x8001, 0x8002} {
					set = append(set, stp.BPDU{
						RootID:       root,
						RootPathCost: cost,
						BridgeID:     br,
						PortID:       port,
					})
				}
			}
		}
	}

	for _, a := range set {
		for _, b := range set {
			ab := stp.CompareBPDU(a, b)
			if ab != -stp.CompareBPDU(b, a) {
				t.Fatalf("antisymmetry broken for %+v / %+v", a, b)
			}
			if ab != stp.Superior {
				continue
			}
			for _, c := range set {
				if stp.CompareBPDU(b, c) == stp.Superior && stp.CompareBPDU(a, c) != stp.Superior {
					t.Fatalf("transitivity broken: a > b > c but not a > c\na=%+v\nb=%+v\nc=%+v", a, b, c)
				}
			}
		}
	}
}

// -------------------------------------------------------------------------
// Port state machine
// -------------------------------------------------------------------------

func TestPortStateTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state       stp.PortState
		event       stp.PortEvent
		want        stp.PortState
		wantChanged bool
	}{
		{stp.StateDisabled, stp.EventEnable, stp.StateBlocking, true},
		{stp.StateDisabled, stp.EventSelect, stp.StateDisabled, false},
		{stp.StateBlocking, stp.EventSelect, stp.StateListening, true},
		{stp.StateBlocking, stp.EventForwardDelayExpired, stp.StateBlocking, false},
		{stp.StateBlocking, stp.EventEdge, stp.StateForwarding, true},
		{stp.StateListening, stp.EventForwardDelayExpired, stp.StateLearning, true},
		{stp.StateLearning, stp.EventForwardDelayExpired, stp.StateForwarding, true},
		{stp.StateForwarding, stp.EventForwardDelayExpired, stp.StateForwarding, false},
		{stp.StateForwarding, stp.EventSelect, stp.StateForwarding, false},
		{stp.StateListening, stp.EventBlock, stp.StateBlocking, true},
		{stp.StateForwarding, stp.EventBlock, stp.StateBlocking, true},
		{stp.StateBlocking, stp.EventBlock, stp.StateBlocking, false},
		{stp.StateLearning, stp.EventDisable, stp.StateDisabled, true},
		{stp.StateForwarding, stp.EventDisable, stp.StateDisabled, true},
		{stp.StateDisabled, stp.EventDisable, stp.StateDisabled, false},
	}

	for _, tt := range tests {
		r := stp.ApplyPortEvent(tt.state, tt.event)
		if r.Old != tt.state || r.New != tt.want || r.Changed != tt.wantChanged {
			t.Errorf("%s + %s = %s (changed=%v), want %s (changed=%v)",
				tt.state, tt.event, r.New, r.Changed, tt.want, tt.wantChanged)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	t.Parallel()

	if got := stp.StateForwarding.String(); got != "Forwarding" {
		t.Errorf("StateForwarding = %q", got)
	}
	if got := stp.RoleAlternate.String(); got != "Alternate" {
		t.Errorf("RoleAlternate = %q", got)
	}
	if got := stp.PortState(99).String(); got != "Unknown" {
		t.Errorf("PortState(99) = %q", got)
	}
	if got := stp.TypeTCN.String(); got != "TCN" {
		t.Errorf("TypeTCN = %q", got)
	}
}

// -------------------------------------------------------------------------
// Path cost and configuration
// -------------------------------------------------------------------------

func TestPathCost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		speed     uint64
		bandwidth uint64
		want      uint32
	}{
		{"10G", 10_000_000_000, 0, 2},
		{"40G", 40_000_000_000, 0, 2},
		{"1G", 1_000_000_000, 0, 4},
		{"100M", 100_000_000, 0, 19},
		{"10M", 10_000_000, 0, 100},
		{"T1", 1_544_000, 0, 647},
		{"64k", 64_000, 0, 65535},
		{"unknown", 0, 0, 65535},
		{"explicit 1G bandwidth", 0, 1_000_000, 20},
		{"explicit bandwidth overrides speed", 100_000_000, 10_000_000, 2},
		{"bandwidth above reference", 0, 40_000_000, 1},
	}
	for _, tt := range tests {
		if got := stp.PathCost(tt.speed, tt.bandwidth); got != tt.want {
			t.Errorf("%s: PathCost(%d, %d) = %d, want %d", tt.name, tt.speed, tt.bandwidth, got, tt.want)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	mod := func(f func(*stp.Config)) stp.Config {
		c := stp.DefaultConfig()
		f(&c)
		return c
	}

	tests := []struct {
		name    string
		cfg     stp.Config
		wantErr error
	}{
		{"defaults", stp.DefaultConfig(), nil},
		{"priority zero", mod(func(c *stp.Config) { c.Priority = 0 }), nil},
		{"priority not multiple", mod(func(c *stp.Config) { c.Priority = 100 }), stp.ErrInvalidPriority},
		{"priority too high", mod(func(c *stp.Config) { c.Priority = 65535 }), stp.ErrInvalidPriority},
		{"hello too short", mod(func(c *stp.Config) { c.HelloTime = 500 * time.Millisecond }), stp.ErrInvalidHelloTime},
		{"max age too long", mod(func(c *stp.Config) { c.MaxAge = 41 * time.Second }), stp.ErrInvalidMaxAge},
		{"forward delay too short", mod(func(c *stp.Config) { c.ForwardDelay = 3 * time.Second }), stp.ErrInvalidForwardDelay},
		{"max age exceeds forward delay bound", mod(func(c *stp.Config) {
			c.ForwardDelay = 4 * time.Second
		}), stp.ErrInvalidTimerRelation},
		{"fast timers", mod(func(c *stp.Config) {
			c.HelloTime = time.Second
			c.MaxAge = 6 * time.Second
			c.ForwardDelay = 4 * time.Second
		}), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
