package cdp

import (
	"encoding/binary"
	"net/netip"

	"github.com/google/gopacket/layers"

	"github.com/dantte-lp/l2sim/internal/topology"
)

// Address TLV protocol encodings.
const (
	protoTypeNLPID = layers.CDPProtocolTypeNLPID
	protoType8022  = layers.CDPProtocolType802_2
	nlpidIPv4      = byte(layers.CDPAddressTypeIPV4)
)

// Identity is what a device says about itself in every advertisement.
type Identity struct {
	DeviceID     string
	SysName      string
	Platform     string
	Software     string
	VTPDomain    string
	Capabilities Capability

	// Addresses are the device's non-zero interface addresses.
	Addresses []netip.Addr
}

// Duplex is the duplex mode a neighbor advertised.
type Duplex uint8

// Duplex values. DuplexUnknown means the TLV was absent or malformed.
const (
	DuplexUnknown Duplex = iota
	DuplexHalf
	DuplexFull
)

var duplexNames = [...]string{
	DuplexUnknown: "unknown",
	DuplexHalf:    "half",
	DuplexFull:    "full",
}

// String returns "unknown", "half" or "full".
func (d Duplex) String() string {
	if int(d) < len(duplexNames) {
		return duplexNames[d]
	}
	return "unknown"
}

// Info is the neighbor information decoded from an advertisement. Fields
// whose TLV was absent or had the wrong size keep their zero value.
type Info struct {
	DeviceID     string       `json:"device_id"`
	Addresses    []netip.Addr `json:"addresses,omitempty"`
	PortID       string       `json:"port_id"`
	Capabilities Capability   `json:"capabilities"`
	Software     string       `json:"software,omitempty"`
	Platform     string       `json:"platform,omitempty"`
	VTPDomain    string       `json:"vtp_domain,omitempty"`
	NativeVLAN   uint16       `json:"native_vlan,omitempty"`
	Duplex       Duplex       `json:"duplex"`
	MTU          uint32       `json:"mtu,omitempty"`
	SysName      string       `json:"sys_name,omitempty"`
}

// -------------------------------------------------------------------------
// Build
// -------------------------------------------------------------------------

// Build returns the TLVs advertised on ifc, in wire order: device-id,
// addresses, port-id, capabilities, software version, platform, VTP
// domain, native VLAN, duplex, MTU and system name. The VTP domain,
// native VLAN and duplex TLVs are CDPv2 only.
func Build(id Identity, ifc topology.Interface, version uint8) []TLV {
	tlvs := make([]TLV, 0, 11)
	add := func(t TLVType, v []byte) { tlvs = append(tlvs, TLV{Type: t, Value: v}) }

	add(TLVDeviceID, []byte(id.DeviceID))
	if addrs := encodeAddresses(id.Addresses); addrs != nil {
		add(TLVAddresses, addrs)
	}
	add(TLVPortID, []byte(ifc.Name))
	add(TLVCapabilities, binary.BigEndian.AppendUint32(nil, uint32(id.Capabilities)))

	if id.Software != "" {
		add(TLVVersion, []byte(id.Software))
	}
	if id.Platform != "" {
		add(TLVPlatform, []byte(id.Platform))
	}

	if version >= Version2 {
		if id.VTPDomain != "" && id.Capabilities.Has(CapSwitch) {
			add(TLVVTPDomain, []byte(id.VTPDomain))
		}
		if ifc.Trunk {
			add(TLVNativeVLAN, binary.BigEndian.AppendUint16(nil, ifc.NativeVLAN))
		}
		duplex := byte(0)
		if ifc.FullDuplex {
			duplex = 1
		}
		add(TLVFullDuplex, []byte{duplex})
	}

	if ifc.MTU > 0 {
		add(TLVMTU, binary.BigEndian.AppendUint32(nil, uint32(ifc.MTU))) //nolint:gosec // G115: MTU is validated positive
	}
	if id.SysName != "" {
		add(TLVSysName, []byte(id.SysName))
	}
	return tlvs
}

// encodeAddresses builds the address TLV value: a 32-bit count followed by
// (protocol type, protocol length, protocol, address length, address)
// entries. IPv4 uses the NLPID encoding, IPv6 the 802.2 SNAP encoding.
func encodeAddresses(addrs []netip.Addr) []byte {
	var (
		body  []byte
		count uint32
	)
	for _, a := range addrs {
		switch {
		case !a.IsValid() || a.IsUnspecified():
			continue
		case a.Is4() || a.Is4In6():
			v4 := a.Unmap().As4()
			body = append(body, protoTypeNLPID, 1, nlpidIPv4)
			body = binary.BigEndian.AppendUint16(body, 4)
			body = append(body, v4[:]...)
		default:
			v6 := a.As16()
			body = append(body, protoType8022, 8)
			body = binary.BigEndian.AppendUint64(body, uint64(layers.CDPAddressTypeIPV6))
			body = binary.BigEndian.AppendUint16(body, 16)
			body = append(body, v6[:]...)
		}
		count++
	}
	if count == 0 {
		return nil
	}
	return append(binary.BigEndian.AppendUint32(nil, count), body...)
}

// -------------------------------------------------------------------------
// Decode
// -------------------------------------------------------------------------

// Decode extracts neighbor information from p. Unknown TLV types are
// ignored; a TLV with the wrong size for its type leaves its field unset
// without affecting the others.
func Decode(p Packet) Info {
	var info Info
	for _, t := range p.TLVs {
		v := t.Value
		switch t.Type {
		case TLVDeviceID:
			info.DeviceID = string(v)
		case TLVAddresses:
			info.Addresses = decodeAddresses(v)
		case TLVPortID:
			info.PortID = string(v)
		case TLVCapabilities:
			if len(v) == 4 {
				info.Capabilities = Capability(binary.BigEndian.Uint32(v))
			}
		case TLVVersion:
			info.Software = string(v)
		case TLVPlatform:
			info.Platform = string(v)
		case TLVVTPDomain:
			info.VTPDomain = string(v)
		case TLVNativeVLAN:
			if len(v) == 2 {
				info.NativeVLAN = binary.BigEndian.Uint16(v)
			}
		case TLVFullDuplex:
			if len(v) == 1 {
				info.Duplex = DuplexHalf
				if v[0] == 1 {
					info.Duplex = DuplexFull
				}
			}
		case TLVMTU:
			if len(v) == 4 {
				info.MTU = binary.BigEndian.Uint32(v)
			}
		case TLVSysName:
			info.SysName = string(v)
		}
	}
	return info
}

// decodeAddresses parses an address TLV value. Entries of unknown
// protocols are skipped; a malformed entry ends the walk and keeps the
// addresses decoded before it.
func decodeAddresses(v []byte) []netip.Addr {
	if len(v) < 4 {
		return nil
	}
	n := binary.BigEndian.Uint32(v[0:4])
	v = v[4:]

	var out []netip.Addr
	for range n {
		if len(v) < 2 {
			break
		}
		ptype, plen := v[0], int(v[1])
		if len(v) < 2+plen+2 {
			break
		}
		proto := v[2 : 2+plen]
		v = v[2+plen:]

		alen := int(binary.BigEndian.Uint16(v[0:2]))
		if len(v) < 2+alen {
			break
		}
		raw := v[2 : 2+alen]
		v = v[2+alen:]

		switch {
		case ptype == protoTypeNLPID && plen == 1 && proto[0] == nlpidIPv4 && alen == 4:
			out = append(out, netip.AddrFrom4([4]byte(raw)))
		case ptype == protoType8022 && plen == 8 &&
			binary.BigEndian.Uint64(proto) == uint64(layers.CDPAddressTypeIPV6) && alen == 16:
			out = append(out, netip.AddrFrom16([16]byte(raw)))
		}
	}
	return out
}
