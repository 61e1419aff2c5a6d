package sim

import (
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/netip"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/dantte-lp/l2sim/internal/protocol"
	"github.com/dantte-lp/l2sim/internal/topology"
)

// Topology file defaults.
const (
	DefaultMTU   = 1500
	DefaultSpeed = "1G"
)

// Topology file errors.
var (
	// ErrBadEndpoint indicates a link endpoint that is not "device:interface".
	ErrBadEndpoint = errors.New("link endpoint must be device:interface")

	// ErrBadSpeed indicates an unparsable interface speed.
	ErrBadSpeed = errors.New("invalid interface speed")

	// ErrBadDuplex indicates a duplex other than full or half.
	ErrBadDuplex = errors.New("duplex must be full or half")
)

// -------------------------------------------------------------------------
// File schema
// -------------------------------------------------------------------------

// TopologyFile is the YAML layout of a topology description.
//
//	devices:
//	  - name: sw1
//	    kind: switch
//	    platform: cisco WS-C2960X
//	    interfaces:
//	      - {name: Gi0/1, speed: 1G}
//	    stp: {priority: 4096}
//	links:
//	  - {a: "sw1:Gi0/1", b: "sw2:Gi0/1"}
type TopologyFile struct {
	Devices []DeviceSpec `yaml:"devices"`
	Links   []LinkSpec   `yaml:"links"`
}

// DeviceSpec describes one device. The stp and cdp sections are decoded
// over the defaults, so a section only names what it overrides.
type DeviceSpec struct {
	Name       string          `yaml:"name"`
	Kind       string          `yaml:"kind"`
	Platform   string          `yaml:"platform"`
	Version    string          `yaml:"version"`
	VTPDomain  string          `yaml:"vtp_domain"`
	Interfaces []InterfaceSpec `yaml:"interfaces"`
	STP        yaml.Node       `yaml:"stp"`
	CDP        yaml.Node       `yaml:"cdp"`
}

// InterfaceSpec describes one interface. Empty fields take the file
// defaults: up, full duplex, 1G, MTU 1500 and a generated MAC.
type InterfaceSpec struct {
	Name       string `yaml:"name"`
	Address    string `yaml:"address"`
	MAC        string `yaml:"mac"`
	MTU        int    `yaml:"mtu"`
	Speed      string `yaml:"speed"`
	Bandwidth  uint64 `yaml:"bandwidth"`
	Duplex     string `yaml:"duplex"`
	Trunk      bool   `yaml:"trunk"`
	NativeVLAN uint16 `yaml:"native_vlan"`
	Shutdown   bool   `yaml:"shutdown"`
	Down       bool   `yaml:"down"`
}

// LinkSpec is a cable between two "device:interface" endpoints.
type LinkSpec struct {
	A string `yaml:"a"`
	B string `yaml:"b"`
}

// -------------------------------------------------------------------------
// Loading
// -------------------------------------------------------------------------

// LoadTopology reads a YAML topology file and builds the network it
// describes.
func LoadTopology(path string, defaults Defaults) (*topology.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load topology: %w", err)
	}
	defer f.Close()

	n, err := DecodeTopology(f, defaults)
	if err != nil {
		return nil, fmt.Errorf("load topology %s: %w", path, err)
	}
	return n, nil
}

// DecodeTopology builds a network from a YAML topology document. Unknown
// fields are rejected.
//
// A device without an stp section runs STP with defaults.STP only when it
// is a switch or a bridge. Every device without a cdp section runs CDP
// with defaults.CDP.
func DecodeTopology(r io.Reader, defaults Defaults) (*topology.Network, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file TopologyFile
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode topology: %w", err)
	}

	network := topology.NewNetwork()
	for i, spec := range file.Devices {
		d, err := buildDevice(i, spec, defaults)
		if err != nil {
			return nil, err
		}
		if err := network.AddDevice(d); err != nil {
			return nil, fmt.Errorf("device %q: %w", spec.Name, err)
		}
	}

	for _, l := range file.Links {
		a, err := parseEndpoint(l.A)
		if err != nil {
			return nil, err
		}
		b, err := parseEndpoint(l.B)
		if err != nil {
			return nil, err
		}
		if err := network.Connect(a, b); err != nil {
			return nil, fmt.Errorf("link %s <-> %s: %w", l.A, l.B, err)
		}
	}
	return network, nil
}

func buildDevice(index int, spec DeviceSpec, defaults Defaults) (*topology.Device, error) {
	kind, err := topology.ParseDeviceKind(spec.Kind)
	if err != nil {
		return nil, fmt.Errorf("device %q: %w", spec.Name, err)
	}

	d, err := topology.NewDevice(topology.DeviceInfo{
		Name:      spec.Name,
		Kind:      kind,
		Platform:  spec.Platform,
		Version:   spec.Version,
		VTPDomain: spec.VTPDomain,
	})
	if err != nil {
		return nil, fmt.Errorf("device #%d: %w", index+1, err)
	}

	for j, is := range spec.Interfaces {
		ifc, err := buildInterface(index, j, is)
		if err != nil {
			return nil, fmt.Errorf("device %q interface %q: %w", spec.Name, is.Name, err)
		}
		if err := d.AddInterface(ifc); err != nil {
			return nil, fmt.Errorf("device %q: %w", spec.Name, err)
		}
	}

	bridging := kind == topology.KindSwitch || kind == topology.KindBridge
	if hasSection(spec.STP) || bridging {
		cfg := defaults.STP
		if hasSection(spec.STP) {
			if err := spec.STP.Decode(&cfg); err != nil {
				return nil, fmt.Errorf("device %q stp: %w", spec.Name, err)
			}
		}
		d.SetProtocolConfig(protocol.KindSTP.String(), cfg)
	}

	cfg := defaults.CDP
	if hasSection(spec.CDP) {
		if err := spec.CDP.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("device %q cdp: %w", spec.Name, err)
		}
	}
	d.SetProtocolConfig(protocol.KindCDP.String(), cfg)

	return d, nil
}

// hasSection reports whether a protocol section was present in the file.
// An absent key leaves the node zero.
func hasSection(n yaml.Node) bool {
	return n.Kind != 0
}

func buildInterface(dev, index int, spec InterfaceSpec) (topology.Interface, error) {
	ifc := topology.Interface{
		Name:       spec.Name,
		Up:         !spec.Down,
		Shutdown:   spec.Shutdown,
		MTU:        spec.MTU,
		Bandwidth:  spec.Bandwidth,
		FullDuplex: true,
		Trunk:      spec.Trunk,
		NativeVLAN: spec.NativeVLAN,
	}
	if ifc.MTU == 0 {
		ifc.MTU = DefaultMTU
	}

	switch strings.ToLower(spec.Duplex) {
	case "", "full":
	case "half":
		ifc.FullDuplex = false
	default:
		return topology.Interface{}, fmt.Errorf("duplex %q: %w", spec.Duplex, ErrBadDuplex)
	}

	speed, err := ParseSpeed(spec.Speed)
	if err != nil {
		return topology.Interface{}, err
	}
	ifc.Speed = speed

	if spec.Address != "" {
		p, err := netip.ParsePrefix(spec.Address)
		if err != nil {
			return topology.Interface{}, fmt.Errorf("address: %w", err)
		}
		ifc.Address = p
	}

	if spec.MAC != "" {
		mac, err := net.ParseMAC(spec.MAC)
		if err != nil {
			return topology.Interface{}, fmt.Errorf("mac: %w", err)
		}
		ifc.MAC = mac
	} else {
		ifc.MAC = GeneratedMAC(dev, index)
	}
	return ifc, nil
}

// ParseSpeed converts an SI line rate such as "100M", "1G" or "10Gbps"
// into bit/s. An empty string means DefaultSpeed.
func ParseSpeed(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = DefaultSpeed
	}
	v, unit, err := humanize.ParseSI(s)
	if err != nil {
		return 0, fmt.Errorf("speed %q: %w", s, ErrBadSpeed)
	}
	switch unit {
	case "", "bps", "b/s":
	default:
		return 0, fmt.Errorf("speed %q unit %q: %w", s, unit, ErrBadSpeed)
	}
	if v <= 0 {
		return 0, fmt.Errorf("speed %q: %w", s, ErrBadSpeed)
	}
	return uint64(math.Round(v)), nil
}

// FormatSpeed renders bit/s the way ParseSpeed reads it back.
func FormatSpeed(bps uint64) string {
	return humanize.SI(float64(bps), "bps")
}

// GeneratedMAC returns the locally administered address given to the
// index-th interface of the dev-th device in a topology file:
// 02:00:DD:DD:00:II with the device number in DD:DD and the interface
// number in II, both counted from one.
func GeneratedMAC(dev, index int) net.HardwareAddr {
	d := dev + 1
	return net.HardwareAddr{
		0x02, 0x00,
		byte(d >> 8), byte(d), //nolint:gosec // G115: truncation intended
		0x00, byte(index + 1), //nolint:gosec // G115: truncation intended
	}
}

func parseEndpoint(s string) (topology.Endpoint, error) {
	dev, iface, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || dev == "" || iface == "" {
		return topology.Endpoint{}, fmt.Errorf("endpoint %q: %w", s, ErrBadEndpoint)
	}
	return topology.Endpoint{Device: dev, Interface: iface}, nil
}

