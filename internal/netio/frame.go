package netio

// frame.go: Ethernet encapsulation of simulated control-plane frames.
//
// Both protocols ride on IEEE 802.3 frames with an 802.2 LLC header:
//
//	STP: Ethernet (len) | LLC 0x42/0x42/UI | BPDU
//	CDP: Ethernet (len) | LLC 0xAA/0xAA/UI | SNAP 00:00:0c/0x2000 | CDP
//
// Frames are built and parsed with gopacket so that captured traffic
// dissects cleanly in standard tooling.

import (
	"errors"
	"fmt"
	"net"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// -------------------------------------------------------------------------
// Frame Constants
// -------------------------------------------------------------------------

const (
	// llcUnnumbered is the 802.2 Unnumbered Information control field.
	llcUnnumbered = 0x03

	// llcSAPSTP is the 802.1D bridge spanning tree SAP.
	llcSAPSTP = 0x42

	// llcSAPSNAP is the SNAP extension SAP.
	llcSAPSNAP = 0xAA
)

// STPMulticast is the 802.1D bridge group address BPDUs are sent to.
var STPMulticast = net.HardwareAddr{0x01, 0x80, 0xc2, 0x00, 0x00, 0x00}

// CDPMulticast is the Cisco multicast address CDP advertisements are sent to.
var CDPMulticast = net.HardwareAddr{0x01, 0x00, 0x0c, 0xcc, 0xcc, 0xcc}

// ciscoOUI is the SNAP organizational code carried by CDP.
var ciscoOUI = []byte{0x00, 0x00, 0x0c}

// -------------------------------------------------------------------------
// Frame Errors
// -------------------------------------------------------------------------

var (
	// ErrMalformedFrame indicates the frame could not be dissected down to
	// an LLC header.
	ErrMalformedFrame = errors.New("malformed frame")

	// ErrNotControlFrame indicates a well-formed frame that carries neither
	// a BPDU nor a CDP advertisement.
	ErrNotControlFrame = errors.New("not a control frame")

	// ErrBadSourceMAC indicates a source hardware address that is not
	// 6 bytes long.
	ErrBadSourceMAC = errors.New("source MAC must be 6 bytes")
)

// -------------------------------------------------------------------------
// FrameKind
// -------------------------------------------------------------------------

// FrameKind identifies the control protocol a frame carries.
type FrameKind uint8

const (
	// FrameUnknown is the zero value.
	FrameUnknown FrameKind = iota

	// FrameBPDU carries an 802.1D bridge protocol data unit.
	FrameBPDU

	// FrameCDP carries a CDP advertisement.
	FrameCDP
)

var frameKindNames = [...]string{
	FrameUnknown: "unknown",
	FrameBPDU:    "bpdu",
	FrameCDP:     "cdp",
}

// String returns the lower-case name of the frame kind.
func (k FrameKind) String() string {
	if int(k) < len(frameKindNames) {
		return frameKindNames[k]
	}
	return frameKindNames[FrameUnknown]
}

// Frame is a decoded control frame.
type Frame struct {
	// Kind is the protocol carried in the frame.
	Kind FrameKind

	// Src is the sender's interface MAC.
	Src net.HardwareAddr

	// Dst is the destination group address.
	Dst net.HardwareAddr

	// Payload is the protocol data unit following the LLC (and SNAP) header.
	Payload []byte
}

// -------------------------------------------------------------------------
// Encode
// -------------------------------------------------------------------------

// EncodeBPDU wraps a BPDU in an 802.3 frame addressed to STPMulticast.
func EncodeBPDU(src net.HardwareAddr, bpdu []byte) ([]byte, error) {
	if len(src) != 6 {
		return nil, fmt.Errorf("encode bpdu: %w", ErrBadSourceMAC)
	}

	eth := &layers.Ethernet{
		SrcMAC:       src,
		DstMAC:       STPMulticast,
		EthernetType: layers.EthernetTypeLLC,
	}
	llc := &layers.LLC{
		DSAP:    llcSAPSTP,
		SSAP:    llcSAPSTP,
		Control: llcUnnumbered,
	}

	return serialize(eth, llc, gopacket.Payload(bpdu))
}

// EncodeCDP wraps a CDP packet in an 802.3 LLC/SNAP frame addressed to
// CDPMulticast.
func EncodeCDP(src net.HardwareAddr, pkt []byte) ([]byte, error) {
	if len(src) != 6 {
		return nil, fmt.Errorf("encode cdp: %w", ErrBadSourceMAC)
	}

	eth := &layers.Ethernet{
		SrcMAC:       src,
		DstMAC:       CDPMulticast,
		EthernetType: layers.EthernetTypeLLC,
	}
	llc := &layers.LLC{
		DSAP:    llcSAPSNAP,
		SSAP:    llcSAPSNAP,
		Control: llcUnnumbered,
	}
	snap := &layers.SNAP{
		OrganizationalCode: ciscoOUI,
		Type:               layers.EthernetTypeCiscoDiscovery,
	}

	return serialize(eth, llc, snap, gopacket.Payload(pkt))
}

func serialize(ls ...gopacket.SerializableLayer) ([]byte, error) {
	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true}
	if err := gopacket.SerializeLayers(buf, opts, ls...); err != nil {
		return nil, fmt.Errorf("serialize frame: %w", err)
	}
	return buf.Bytes(), nil
}

// -------------------------------------------------------------------------
// Decode
// -------------------------------------------------------------------------

// Decode dissects an Ethernet frame and returns the control payload it
// carries. Decoding stops at the LLC/SNAP layer: the payload itself is
// validated by the owning protocol, so a corrupt BPDU or CDP body still
// yields a Frame.
func Decode(data []byte) (Frame, error) {
	pkt := gopacket.NewPacket(data, layers.LayerTypeEthernet, gopacket.DecodeOptions{
		NoCopy: true,
	})

	eth, ok := pkt.Layer(layers.LayerTypeEthernet).(*layers.Ethernet)
	if !ok {
		return Frame{}, fmt.Errorf("decode: no ethernet header: %w", ErrMalformedFrame)
	}

	llc, ok := pkt.Layer(layers.LayerTypeLLC).(*layers.LLC)
	if !ok {
		if eth.EthernetType != layers.EthernetTypeLLC {
			return Frame{}, fmt.Errorf("decode: ethertype %s: %w",
				eth.EthernetType, ErrNotControlFrame)
		}
		return Frame{}, fmt.Errorf("decode: no LLC header: %w", ErrMalformedFrame)
	}

	f := Frame{
		Src: eth.SrcMAC,
		Dst: eth.DstMAC,
	}

	switch {
	case llc.DSAP == llcSAPSTP && llc.SSAP == llcSAPSTP:
		f.Kind = FrameBPDU
		f.Payload = llc.Payload
		return f, nil

	case llc.DSAP == llcSAPSNAP && llc.SSAP == llcSAPSNAP:
		snap, ok := pkt.Layer(layers.LayerTypeSNAP).(*layers.SNAP)
		if !ok {
			return Frame{}, fmt.Errorf("decode: no SNAP header: %w", ErrMalformedFrame)
		}
		if !isCiscoOUI(snap.OrganizationalCode) ||
			snap.Type != layers.EthernetTypeCiscoDiscovery {
			return Frame{}, fmt.Errorf("decode: SNAP type %s: %w",
				snap.Type, ErrNotControlFrame)
		}
		f.Kind = FrameCDP
		f.Payload = snap.Payload
		return f, nil

	default:
		return Frame{}, fmt.Errorf("decode: LLC SAP 0x%02x: %w",
			llc.DSAP, ErrNotControlFrame)
	}
}

func isCiscoOUI(oui []byte) bool {
	return len(oui) == 3 && oui[0] == ciscoOUI[0] && oui[1] == ciscoOUI[1] && oui[2] == ciscoOUI[2]
}
