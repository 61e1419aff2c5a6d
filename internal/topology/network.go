package topology

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
)

// Endpoint names one side of a link.
type Endpoint struct {
	Device    string
	Interface string
}

// String returns "device:interface".
func (e Endpoint) String() string {
	return e.Device + ":" + e.Interface
}

func compareEndpoints(a, b Endpoint) int {
	if c := cmp.Compare(a.Device, b.Device); c != 0 {
		return c
	}
	return cmp.Compare(a.Interface, b.Interface)
}

// Link is a point-to-point cable between two endpoints. A is always the
// lexically smaller endpoint.
type Link struct {
	A Endpoint
	B Endpoint
}

// String returns "a <-> b".
func (l Link) String() string {
	return l.A.String() + " <-> " + l.B.String()
}

func newLink(a, b Endpoint) Link {
	if compareEndpoints(a, b) > 0 {
		a, b = b, a
	}
	return Link{A: a, B: b}
}

// Network is the set of devices and the cables between them.
// All methods are safe for concurrent use.
type Network struct {
	mu      sync.RWMutex
	devices map[string]*Device
	links   map[Endpoint]Endpoint
}

// NewNetwork creates an empty network.
func NewNetwork() *Network {
	return &Network{
		devices: make(map[string]*Device),
		links:   make(map[Endpoint]Endpoint),
	}
}

// AddDevice registers d with the network.
func (n *Network) AddDevice(d *Device) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.devices[d.Name()]; ok {
		return fmt.Errorf("add device %s: %w", d.Name(), ErrDuplicateDevice)
	}
	n.devices[d.Name()] = d
	return nil
}

// RemoveDevice unregisters the named device and drops all of its links.
func (n *Network) RemoveDevice(name string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.devices[name]; !ok {
		return fmt.Errorf("remove device %s: %w", name, ErrDeviceNotFound)
	}
	delete(n.devices, name)

	for local, peer := range n.links {
		if local.Device == name || peer.Device == name {
			delete(n.links, local)
		}
	}
	return nil
}

// Device returns the named device.
func (n *Network) Device(name string) (*Device, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	d, ok := n.devices[name]
	return d, ok
}

// Devices returns every device sorted by name.
func (n *Network) Devices() []*Device {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]*Device, 0, len(n.devices))
	for _, d := range n.devices {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b *Device) int { return cmp.Compare(a.Name(), b.Name()) })
	return out
}

// Connect cables endpoint a to endpoint b. Both interfaces must exist and
// be unlinked.
func (n *Network) Connect(a, b Endpoint) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ep := range [...]Endpoint{a, b} {
		if err := n.checkEndpoint(ep); err != nil {
			return fmt.Errorf("connect %s: %w", newLink(a, b), err)
		}
		if _, linked := n.links[ep]; linked {
			return fmt.Errorf("connect %s: %s: %w", newLink(a, b), ep, ErrInterfaceLinked)
		}
	}
	if a == b {
		return fmt.Errorf("connect %s: %w", a, ErrInterfaceLinked)
	}

	n.links[a] = b
	n.links[b] = a
	return nil
}

// Disconnect removes the cable attached to ep.
func (n *Network) Disconnect(ep Endpoint) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	peer, ok := n.links[ep]
	if !ok {
		return fmt.Errorf("disconnect %s: %w", ep, ErrNotLinked)
	}
	delete(n.links, ep)
	delete(n.links, peer)
	return nil
}

// checkEndpoint verifies the device and interface exist. Caller holds n.mu.
func (n *Network) checkEndpoint(ep Endpoint) error {
	d, ok := n.devices[ep.Device]
	if !ok {
		return fmt.Errorf("%s: %w", ep.Device, ErrDeviceNotFound)
	}
	if _, ok := d.Interface(ep.Interface); !ok {
		return fmt.Errorf("%s: %w", ep, ErrInterfaceNotFound)
	}
	return nil
}

// Peer returns the far end of the cable on the local interface. It reports
// false when there is no cable, when the peer device is gone, or when
// either interface is not operational.
func (n *Network) Peer(device, iface string) (Endpoint, bool) {
	n.mu.RLock()
	local := Endpoint{Device: device, Interface: iface}
	peer, linked := n.links[local]
	localDev := n.devices[device]
	peerDev := n.devices[peer.Device]
	n.mu.RUnlock()

	if !linked || localDev == nil || peerDev == nil {
		return Endpoint{}, false
	}

	if li, ok := localDev.Interface(iface); !ok || !li.Operational() {
		return Endpoint{}, false
	}
	if pi, ok := peerDev.Interface(peer.Interface); !ok || !pi.Operational() {
		return Endpoint{}, false
	}
	return peer, true
}

// Links returns every cable, sorted.
func (n *Network) Links() []Link {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]Link, 0, len(n.links)/2)
	for a, b := range n.links {
		if compareEndpoints(a, b) < 0 {
			out = append(out, Link{A: a, B: b})
		}
	}
	slices.SortFunc(out, func(x, y Link) int {
		if c := compareEndpoints(x.A, y.A); c != 0 {
			return c
		}
		return compareEndpoints(x.B, y.B)
	})
	return out
}
