package stp

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"net"
)

// ErrBadMAC indicates a hardware address that is not 6 bytes long.
var ErrBadMAC = errors.New("bridge MAC must be 6 bytes")

// DefaultBridgePriority is the 802.1D default bridge priority.
const DefaultBridgePriority = 32768

// DefaultPortPriority is the 802.1D default port priority.
const DefaultPortPriority = 128

// BridgeID is the (priority, MAC) pair that totally orders bridges.
// The zero value sorts before every real bridge.
type BridgeID struct {
	Priority uint16
	MAC      [6]byte
}

// NewBridgeID builds a BridgeID from a priority and a 6-byte MAC.
func NewBridgeID(priority uint16, mac net.HardwareAddr) (BridgeID, error) {
	if len(mac) != 6 {
		return BridgeID{}, fmt.Errorf("bridge id %s: %w", mac, ErrBadMAC)
	}
	id := BridgeID{Priority: priority}
	copy(id.MAC[:], mac)
	return id, nil
}

// Compare orders bridge IDs: lower priority first, then lower MAC.
// It returns -1, 0 or +1.
func (b BridgeID) Compare(o BridgeID) int {
	if c := cmp.Compare(b.Priority, o.Priority); c != 0 {
		return c
	}
	return bytes.Compare(b.MAC[:], o.MAC[:])
}

// IsZero reports whether b is the zero BridgeID.
func (b BridgeID) IsZero() bool {
	return b == BridgeID{}
}

// HardwareAddr returns the MAC part as a net.HardwareAddr.
func (b BridgeID) HardwareAddr() net.HardwareAddr {
	return net.HardwareAddr(bytes.Clone(b.MAC[:]))
}

// String renders the ID as "priority.mmmm.mmmm.mmmm".
func (b BridgeID) String() string {
	m := b.MAC
	return fmt.Sprintf("%d.%02x%02x.%02x%02x.%02x%02x",
		b.Priority, m[0], m[1], m[2], m[3], m[4], m[5])
}

// PortID is the 16-bit 802.1D port identifier: priority in the high
// byte, port number in the low byte.
type PortID uint16

// NewPortID combines a port priority and number.
func NewPortID(priority, number uint8) PortID {
	return PortID(uint16(priority)<<8 | uint16(number))
}

// Priority returns the port priority.
func (p PortID) Priority() uint8 { return uint8(p >> 8) }

// Number returns the port number.
func (p PortID) Number() uint8 { return uint8(p) } //nolint:gosec // G115: low byte by definition

// String renders the ID as "priority.number".
func (p PortID) String() string {
	return fmt.Sprintf("%d.%d", p.Priority(), p.Number())
}
