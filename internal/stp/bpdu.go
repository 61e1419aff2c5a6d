package stp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"
)

// -------------------------------------------------------------------------
// Wire Constants: IEEE 802.1D-1998 Section 9.3
// -------------------------------------------------------------------------

const (
	// ConfigBPDUSize is the size of a configuration BPDU.
	ConfigBPDUSize = 35

	// TCNBPDUSize is the size of a topology change notification BPDU.
	TCNBPDUSize = 4

	// protocolID is the only defined protocol identifier.
	protocolID uint16 = 0

	// protocolVersion is the 802.1D version identifier.
	protocolVersion uint8 = 0

	// timeUnitsPerSecond is the resolution of BPDU timer fields (1/256 s).
	timeUnitsPerSecond = 256
)

// BPDUType is the BPDU type octet.
type BPDUType uint8

const (
	// TypeConfig is a configuration BPDU.
	TypeConfig BPDUType = 0x00

	// TypeTCN is a topology change notification BPDU.
	TypeTCN BPDUType = 0x80
)

// String returns "Config", "TCN" or "Unknown(n)".
func (t BPDUType) String() string {
	switch t {
	case TypeConfig:
		return "Config"
	case TypeTCN:
		return "TCN"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}

// BPDU flag bits.
const (
	FlagTC  uint8 = 0x01
	FlagTCA uint8 = 0x80
)

// -------------------------------------------------------------------------
// Codec Errors
// -------------------------------------------------------------------------

var (
	// ErrBPDUTooShort indicates a buffer shorter than the BPDU type requires.
	ErrBPDUTooShort = errors.New("bpdu too short")

	// ErrBadProtocolID indicates a non-zero protocol identifier.
	ErrBadProtocolID = errors.New("bpdu protocol id is not 0")

	// ErrUnknownBPDUType indicates a type octet other than Config or TCN.
	ErrUnknownBPDUType = errors.New("unknown bpdu type")

	// ErrBufTooSmall indicates a marshal buffer that cannot hold the BPDU.
	ErrBufTooSmall = errors.New("buffer too small for bpdu")
)

// BPDU is a decoded bridge protocol data unit. Timer fields are carried
// as durations and encoded in 1/256 s units on the wire. For a TCN BPDU
// only Type is meaningful.
type BPDU struct {
	Type         BPDUType
	Flags        uint8
	RootID       BridgeID
	RootPathCost uint32
	BridgeID     BridgeID
	PortID       PortID
	MessageAge   time.Duration
	MaxAge       time.Duration
	HelloTime    time.Duration
	ForwardDelay time.Duration
}

// TC reports whether the topology change flag is set.
func (b BPDU) TC() bool { return b.Flags&FlagTC != 0 }

// TCA reports whether the topology change acknowledgment flag is set.
func (b BPDU) TCA() bool { return b.Flags&FlagTCA != 0 }

// Size returns the encoded size of b.
func (b BPDU) Size() int {
	if b.Type == TypeTCN {
		return TCNBPDUSize
	}
	return ConfigBPDUSize
}

// MarshalBPDU encodes b into buf and returns the number of bytes written.
//
// Configuration BPDU layout (big-endian):
//
//	0      2   3    4     5        13     17        25     27    29    31    33   35
//	| pid  |ver|type|flags| root id | cost | bridge id| port | age | max | hello| fwd |
func MarshalBPDU(b BPDU, buf []byte) (int, error) {
	n := b.Size()
	if len(buf) < n {
		return 0, fmt.Errorf("marshal %s bpdu (%d bytes) into %d: %w",
			b.Type, n, len(buf), ErrBufTooSmall)
	}

	binary.BigEndian.PutUint16(buf[0:2], protocolID)
	buf[2] = protocolVersion
	buf[3] = uint8(b.Type)
	if b.Type == TypeTCN {
		return n, nil
	}

	buf[4] = b.Flags
	putBridgeID(buf[5:13], b.RootID)
	binary.BigEndian.PutUint32(buf[13:17], b.RootPathCost)
	putBridgeID(buf[17:25], b.BridgeID)
	binary.BigEndian.PutUint16(buf[25:27], uint16(b.PortID))
	binary.BigEndian.PutUint16(buf[27:29], toTimeUnits(b.MessageAge))
	binary.BigEndian.PutUint16(buf[29:31], toTimeUnits(b.MaxAge))
	binary.BigEndian.PutUint16(buf[31:33], toTimeUnits(b.HelloTime))
	binary.BigEndian.PutUint16(buf[33:35], toTimeUnits(b.ForwardDelay))
	return n, nil
}

// Marshal encodes b into a new slice.
func (b BPDU) Marshal() []byte {
	buf := make([]byte, b.Size())
	_, _ = MarshalBPDU(b, buf)
	return buf
}

// UnmarshalBPDU decodes buf. Trailing bytes beyond the BPDU are ignored.
func UnmarshalBPDU(buf []byte) (BPDU, error) {
	if len(buf) < TCNBPDUSize {
		return BPDU{}, fmt.Errorf("unmarshal bpdu: %d bytes: %w", len(buf), ErrBPDUTooShort)
	}
	if pid := binary.BigEndian.Uint16(buf[0:2]); pid != protocolID {
		return BPDU{}, fmt.Errorf("unmarshal bpdu: protocol id %d: %w", pid, ErrBadProtocolID)
	}

	b := BPDU{Type: BPDUType(buf[3])}
	switch b.Type {
	case TypeTCN:
		return b, nil
	case TypeConfig:
	default:
		return BPDU{}, fmt.Errorf("unmarshal bpdu: type 0x%02x: %w", buf[3], ErrUnknownBPDUType)
	}

	if len(buf) < ConfigBPDUSize {
		return BPDU{}, fmt.Errorf("unmarshal config bpdu: %d bytes: %w", len(buf), ErrBPDUTooShort)
	}

	b.Flags = buf[4]
	b.RootID = getBridgeID(buf[5:13])
	b.RootPathCost = binary.BigEndian.Uint32(buf[13:17])
	b.BridgeID = getBridgeID(buf[17:25])
	b.PortID = PortID(binary.BigEndian.Uint16(buf[25:27]))
	b.MessageAge = fromTimeUnits(binary.BigEndian.Uint16(buf[27:29]))
	b.MaxAge = fromTimeUnits(binary.BigEndian.Uint16(buf[29:31]))
	b.HelloTime = fromTimeUnits(binary.BigEndian.Uint16(buf[31:33]))
	b.ForwardDelay = fromTimeUnits(binary.BigEndian.Uint16(buf[33:35]))
	return b, nil
}

func putBridgeID(buf []byte, id BridgeID) {
	binary.BigEndian.PutUint16(buf[0:2], id.Priority)
	copy(buf[2:8], id.MAC[:])
}

func getBridgeID(buf []byte) BridgeID {
	id := BridgeID{Priority: binary.BigEndian.Uint16(buf[0:2])}
	copy(id.MAC[:], buf[2:8])
	return id
}

func toTimeUnits(d time.Duration) uint16 {
	u := d * timeUnitsPerSecond / time.Second
	switch {
	case u < 0:
		return 0
	case u > 0xFFFF:
		return 0xFFFF
	default:
		return uint16(u)
	}
}

func fromTimeUnits(u uint16) time.Duration {
	return time.Duration(u) * time.Second / timeUnitsPerSecond
}

// -------------------------------------------------------------------------
// Priority Vector Comparison
// -------------------------------------------------------------------------

// Superiority is the result of comparing two BPDU priority vectors.
type Superiority int8

const (
	// Superior means the first vector is better (lower).
	Superior Superiority = -1

	// Same means the vectors are equal.
	Same Superiority = 0

	// Inferior means the first vector is worse (higher).
	Inferior Superiority = 1
)

// String returns "Superior", "Same" or "Inferior".
func (s Superiority) String() string {
	switch s {
	case Superior:
		return "Superior"
	case Same:
		return "Same"
	default:
		return "Inferior"
	}
}

// CompareBPDU compares the priority vectors (RootID, RootPathCost,
// BridgeID, PortID) of a and b lexicographically. Lower wins.
func CompareBPDU(a, b BPDU) Superiority {
	c := a.RootID.Compare(b.RootID)
	if c == 0 {
		c = compareUint(a.RootPathCost, b.RootPathCost)
	}
	if c == 0 {
		c = a.BridgeID.Compare(b.BridgeID)
	}
	if c == 0 {
		c = compareUint(uint32(a.PortID), uint32(b.PortID))
	}
	return Superiority(c)
}

func compareUint(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// sameSender reports whether a and b were transmitted by the same bridge
// port.
func sameSender(a, b BPDU) bool {
	return a.BridgeID == b.BridgeID && a.PortID == b.PortID
}
