package netio_test

import (
	"bytes"
	"errors"
	"net"
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"github.com/dantte-lp/l2sim/internal/netio"
)

var testMAC = net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x01}

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	bpdu := make([]byte, 35)
	bpdu[4] = 0x01
	cdp := []byte{0x02, 0xb4, 0x12, 0x34, 0x00, 0x01, 0x00, 0x06, 'S', '1'}

	tests := []struct {
		name    string
		encode  func(net.HardwareAddr, []byte) ([]byte, error)
		payload []byte
		kind    netio.FrameKind
		dst     net.HardwareAddr
	}{
		{
			name:    "bpdu",
			encode:  netio.EncodeBPDU,
			payload: bpdu,
			kind:    netio.FrameBPDU,
			dst:     netio.STPMulticast,
		},
		{
			name:    "cdp",
			encode:  netio.EncodeCDP,
			payload: cdp,
			kind:    netio.FrameCDP,
			dst:     netio.CDPMulticast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			frame, err := tt.encode(testMAC, tt.payload)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if len(frame) < 60 {
				t.Errorf("frame length = %d, want padded to at least 60", len(frame))
			}

			got, err := netio.Decode(frame)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if got.Kind != tt.kind {
				t.Errorf("Kind = %s, want %s", got.Kind, tt.kind)
			}
			if !bytes.Equal(got.Src, testMAC) {
				t.Errorf("Src = %s, want %s", got.Src, testMAC)
			}
			if !bytes.Equal(got.Dst, tt.dst) {
				t.Errorf("Dst = %s, want %s", got.Dst, tt.dst)
			}
			if !bytes.Equal(got.Payload, tt.payload) {
				t.Errorf("Payload = %x, want %x", got.Payload, tt.payload)
			}
		})
	}
}

func TestEncodeCDPDissectsAsSNAP(t *testing.T) {
	t.Parallel()

	frame, err := netio.EncodeCDP(testMAC, []byte{0x02, 0xb4, 0x00, 0x00})
	if err != nil {
		t.Fatalf("EncodeCDP: %v", err)
	}

	pkt := gopacket.NewPacket(frame, layers.LayerTypeEthernet, gopacket.Default)
	snap, ok := pkt.Layer(layers.LayerTypeSNAP).(*layers.SNAP)
	if !ok {
		t.Fatal("no SNAP layer in encoded CDP frame")
	}
	if snap.Type != layers.EthernetTypeCiscoDiscovery {
		t.Errorf("SNAP type = %s, want %s", snap.Type, layers.EthernetTypeCiscoDiscovery)
	}
	if !bytes.Equal(snap.OrganizationalCode, []byte{0x00, 0x00, 0x0c}) {
		t.Errorf("SNAP OUI = %x, want 00000c", snap.OrganizationalCode)
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	ipFrame := func() []byte {
		buf := gopacket.NewSerializeBuffer()
		err := gopacket.SerializeLayers(buf, gopacket.SerializeOptions{FixLengths: true},
			&layers.Ethernet{
				SrcMAC:       testMAC,
				DstMAC:       net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
				EthernetType: layers.EthernetTypeARP,
			},
			gopacket.Payload(make([]byte, 28)),
		)
		if err != nil {
			t.Fatalf("serialize: %v", err)
		}
		return buf.Bytes()
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "runt", data: []byte{0x01, 0x02, 0x03}, wantErr: netio.ErrMalformedFrame},
		{name: "ethernet II", data: ipFrame(), wantErr: netio.ErrNotControlFrame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := netio.Decode(tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEncodeRejectsBadMAC(t *testing.T) {
	t.Parallel()

	if _, err := netio.EncodeBPDU(net.HardwareAddr{0x01}, nil); !errors.Is(err, netio.ErrBadSourceMAC) {
		t.Errorf("EncodeBPDU error = %v, want ErrBadSourceMAC", err)
	}
	if _, err := netio.EncodeCDP(nil, nil); !errors.Is(err, netio.ErrBadSourceMAC) {
		t.Errorf("EncodeCDP error = %v, want ErrBadSourceMAC", err)
	}
}

func TestFrameKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind netio.FrameKind
		want string
	}{
		{netio.FrameBPDU, "bpdu"},
		{netio.FrameCDP, "cdp"},
		{netio.FrameUnknown, "unknown"},
		{netio.FrameKind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("FrameKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
