package cdp

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/google/gopacket/layers"
)

// -------------------------------------------------------------------------
// TLV Types
// -------------------------------------------------------------------------

// TLVType is the 16-bit CDP TLV type tag. The numbering is shared with
// gopacket's CDP dissector.
type TLVType = layers.CDPTLVType

// TLV types emitted and understood by this package.
const (
	TLVDeviceID     TLVType = layers.CDPTLVDevID
	TLVAddresses    TLVType = layers.CDPTLVAddress
	TLVPortID       TLVType = layers.CDPTLVPortID
	TLVCapabilities TLVType = layers.CDPTLVCapabilities
	TLVVersion      TLVType = layers.CDPTLVVersion
	TLVPlatform     TLVType = layers.CDPTLVPlatform
	TLVVTPDomain    TLVType = layers.CDPTLVVTPDomain
	TLVNativeVLAN   TLVType = layers.CDPTLVNativeVLAN
	TLVFullDuplex   TLVType = layers.CDPTLVFullDuplex
	TLVMTU          TLVType = layers.CDPTLVMTU
	TLVSysName      TLVType = layers.CDPTLVSysName
)

// -------------------------------------------------------------------------
// Wire Constants
// -------------------------------------------------------------------------

const (
	// HeaderSize is the size of the fixed packet header
	// (version, ttl, checksum).
	HeaderSize = 4

	// TLVHeaderSize is the size of a TLV type and length.
	TLVHeaderSize = 4

	// maxTLVValue is the largest value a 16-bit TLV length can carry.
	maxTLVValue = 0xFFFF - TLVHeaderSize
)

// Protocol versions.
const (
	Version1 uint8 = 1
	Version2 uint8 = 2
)

// -------------------------------------------------------------------------
// Codec Errors
// -------------------------------------------------------------------------

var (
	// ErrPacketTooShort indicates a buffer shorter than the packet header.
	ErrPacketTooShort = errors.New("cdp packet too short")

	// ErrUnsupportedVersion indicates a version other than 1 or 2.
	ErrUnsupportedVersion = errors.New("unsupported cdp version")

	// ErrTLVTooLong indicates a TLV value that does not fit a 16-bit length.
	ErrTLVTooLong = errors.New("cdp tlv value too long")
)

// TLV is one type-length-value record. The wire length is derived from
// the value.
type TLV struct {
	Type  TLVType
	Value []byte
}

// Len returns the encoded length of t including its header.
func (t TLV) Len() int { return TLVHeaderSize + len(t.Value) }

// Packet is a CDP advertisement.
type Packet struct {
	Version  uint8
	TTL      uint8
	Checksum uint16
	TLVs     []TLV

	// Truncated is set by Parse when TLV walking stopped at a TLV whose
	// length was below the header size or overran the buffer.
	Truncated bool
}

// Find returns the first TLV of type typ.
func (p Packet) Find(typ TLVType) (TLV, bool) {
	for _, t := range p.TLVs {
		if t.Type == typ {
			return t, true
		}
	}
	return TLV{}, false
}

// Size returns the encoded size of p.
func (p Packet) Size() int {
	n := HeaderSize
	for _, t := range p.TLVs {
		n += t.Len()
	}
	return n
}

// Marshal encodes p and fills in the checksum. The Checksum field of p is
// ignored.
//
// Wire format (big-endian):
//
//	0       1       2               4
//	| ver   | ttl   | checksum      | TLV ...
//	TLV: | type (2) | length (2, includes header) | value |
func (p Packet) Marshal() ([]byte, error) {
	if p.Version != Version1 && p.Version != Version2 {
		return nil, fmt.Errorf("marshal cdp version %d: %w", p.Version, ErrUnsupportedVersion)
	}

	buf := make([]byte, p.Size())
	buf[0] = p.Version
	buf[1] = p.TTL

	off := HeaderSize
	for _, t := range p.TLVs {
		if len(t.Value) > maxTLVValue {
			return nil, fmt.Errorf("marshal cdp tlv %d (%d bytes): %w",
				uint16(t.Type), len(t.Value), ErrTLVTooLong)
		}
		binary.BigEndian.PutUint16(buf[off:off+2], uint16(t.Type))
		binary.BigEndian.PutUint16(buf[off+2:off+4], uint16(t.Len())) //nolint:gosec // G115: bounded by maxTLVValue
		copy(buf[off+TLVHeaderSize:], t.Value)
		off += t.Len()
	}

	binary.BigEndian.PutUint16(buf[2:4], Checksum(buf))
	return buf, nil
}

// Parse decodes a CDP packet. TLV values alias buf.
//
// TLV walking stops at the first TLV whose declared length is below the
// TLV header size or runs past the end of buf. The TLVs before it are
// kept and Truncated is set. Parse does not verify the checksum; see
// VerifyChecksum.
func Parse(buf []byte) (Packet, error) {
	if len(buf) < HeaderSize {
		return Packet{}, fmt.Errorf("parse cdp: %d bytes: %w", len(buf), ErrPacketTooShort)
	}

	p := Packet{
		Version:  buf[0],
		TTL:      buf[1],
		Checksum: binary.BigEndian.Uint16(buf[2:4]),
	}
	if p.Version != Version1 && p.Version != Version2 {
		return Packet{}, fmt.Errorf("parse cdp version %d: %w", p.Version, ErrUnsupportedVersion)
	}

	rest := buf[HeaderSize:]
	for len(rest) > 0 {
		if len(rest) < TLVHeaderSize {
			p.Truncated = true
			break
		}
		length := int(binary.BigEndian.Uint16(rest[2:4]))
		if length < TLVHeaderSize || length > len(rest) {
			p.Truncated = true
			break
		}
		p.TLVs = append(p.TLVs, TLV{
			Type:  TLVType(binary.BigEndian.Uint16(rest[0:2])),
			Value: rest[TLVHeaderSize:length],
		})
		rest = rest[length:]
	}

	return p, nil
}

// Checksum returns the Internet checksum (RFC 1071) of a CDP packet with
// its checksum field taken as zero. An odd trailing byte is padded with
// zero on the right.
func Checksum(pkt []byte) uint16 {
	var sum uint32

	for i := 0; i+1 < len(pkt); i += 2 {
		if i == 2 {
			continue
		}
		sum += uint32(binary.BigEndian.Uint16(pkt[i : i+2]))
	}
	if len(pkt)%2 != 0 {
		sum += uint32(pkt[len(pkt)-1]) << 8
	}

	for sum>>16 != 0 {
		sum = (sum & 0xFFFF) + (sum >> 16)
	}

	return ^uint16(sum) //nolint:gosec // G115: folded to 16 bits
}

// VerifyChecksum reports whether the checksum field of pkt matches its
// content.
func VerifyChecksum(pkt []byte) bool {
	if len(pkt) < HeaderSize {
		return false
	}
	return binary.BigEndian.Uint16(pkt[2:4]) == Checksum(pkt)
}
