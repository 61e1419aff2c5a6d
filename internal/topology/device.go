package topology

import (
	"errors"
	"fmt"
	"net"
	"net/netip"
	"slices"
	"strings"
	"sync"
	"time"
)

// Sentinel errors for device and network operations.
var (
	// ErrDeviceNotFound indicates no device exists with the given name.
	ErrDeviceNotFound = errors.New("device not found")

	// ErrDuplicateDevice indicates a device with the same name already exists.
	ErrDuplicateDevice = errors.New("duplicate device")

	// ErrInterfaceNotFound indicates the device has no such interface.
	ErrInterfaceNotFound = errors.New("interface not found")

	// ErrDuplicateInterface indicates the interface name is already used on the device.
	ErrDuplicateInterface = errors.New("duplicate interface")

	// ErrInterfaceLinked indicates the interface already has a link.
	ErrInterfaceLinked = errors.New("interface already linked")

	// ErrNotLinked indicates the interface has no link.
	ErrNotLinked = errors.New("interface not linked")

	// ErrInvalidDeviceKind indicates an unrecognized device kind string.
	ErrInvalidDeviceKind = errors.New("invalid device kind")

	// ErrEmptyName indicates an empty device or interface name.
	ErrEmptyName = errors.New("name must not be empty")
)

// maxLogEntries bounds the per-device log ring.
const maxLogEntries = 256

// -------------------------------------------------------------------------
// DeviceKind
// -------------------------------------------------------------------------

// DeviceKind is the functional class of a device. It seeds the CDP
// capability bits.
type DeviceKind uint8

const (
	// KindRouter is a layer-3 router.
	KindRouter DeviceKind = iota + 1

	// KindSwitch is a layer-2 switch.
	KindSwitch

	// KindBridge is a transparent bridge.
	KindBridge

	// KindHost is an end host.
	KindHost

	// KindRepeater is a layer-1 repeater.
	KindRepeater
)

var deviceKindNames = map[DeviceKind]string{
	KindRouter:   "router",
	KindSwitch:   "switch",
	KindBridge:   "bridge",
	KindHost:     "host",
	KindRepeater: "repeater",
}

// String returns the lowercase kind name.
func (k DeviceKind) String() string {
	if s, ok := deviceKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseDeviceKind converts a kind name into a DeviceKind.
func ParseDeviceKind(s string) (DeviceKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range deviceKindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("device kind %q: %w", s, ErrInvalidDeviceKind)
}

// -------------------------------------------------------------------------
// Interface
// -------------------------------------------------------------------------

// Interface is a snapshot of one device port.
type Interface struct {
	// Name is the interface name, unique within the device.
	Name string

	// Up is the line protocol state.
	Up bool

	// Shutdown is the administrative shutdown flag.
	Shutdown bool

	// Address is the interface IP prefix. The zero value means unnumbered.
	Address netip.Prefix

	// MAC is the interface hardware address.
	MAC net.HardwareAddr

	// MTU is the interface MTU in bytes.
	MTU int

	// Speed is the nominal line rate in bit/s.
	Speed uint64

	// Bandwidth is an explicitly configured bandwidth in kbit/s.
	// Zero means not configured.
	Bandwidth uint64

	// FullDuplex reports the duplex mode.
	FullDuplex bool

	// Trunk marks an 802.1Q trunk port.
	Trunk bool

	// NativeVLAN is the untagged VLAN of a trunk port.
	NativeVLAN uint16

	// FramesIn and FramesOut count control frames through the interface.
	FramesIn  uint64
	FramesOut uint64
}

// Operational reports whether the interface can pass frames: line up and
// not administratively shut down.
func (i Interface) Operational() bool {
	return i.Up && !i.Shutdown
}

// clone returns a deep copy of i.
func (i Interface) clone() Interface {
	i.MAC = slices.Clone(i.MAC)
	return i
}

// -------------------------------------------------------------------------
// Device
// -------------------------------------------------------------------------

// LogEntry is one line of a device's human-readable log.
type LogEntry struct {
	Time    time.Time
	Message string
}

// configEntry holds a protocol configuration blob and its generation.
type configEntry struct {
	cfg        any
	generation uint64
}

// DeviceInfo carries the static identity of a device.
type DeviceInfo struct {
	Name      string
	Kind      DeviceKind
	Platform  string
	Version   string
	VTPDomain string
}

// Device is a simulated network device. All methods are safe for
// concurrent use.
type Device struct {
	mu sync.RWMutex

	info       DeviceInfo
	ifaces     []*Interface
	configs    map[string]configEntry
	generation uint64
	log        []LogEntry
}

// NewDevice creates a device with the given identity and no interfaces.
func NewDevice(info DeviceInfo) (*Device, error) {
	if info.Name == "" {
		return nil, fmt.Errorf("new device: %w", ErrEmptyName)
	}
	return &Device{
		info:    info,
		configs: make(map[string]configEntry),
	}, nil
}

// Name returns the device name.
func (d *Device) Name() string { return d.info.Name }

// Info returns the device identity.
func (d *Device) Info() DeviceInfo { return d.info }

// AddInterface attaches a new interface to the device.
func (d *Device) AddInterface(ifc Interface) error {
	if ifc.Name == "" {
		return fmt.Errorf("add interface to %s: %w", d.info.Name, ErrEmptyName)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.lookup(ifc.Name) != nil {
		return fmt.Errorf("add interface %s to %s: %w", ifc.Name, d.info.Name, ErrDuplicateInterface)
	}

	c := ifc.clone()
	d.ifaces = append(d.ifaces, &c)
	return nil
}

// Interfaces returns a copy of every interface in creation order.
func (d *Device) Interfaces() []Interface {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Interface, len(d.ifaces))
	for i, ifc := range d.ifaces {
		out[i] = ifc.clone()
	}
	return out
}

// Interface returns a copy of the named interface.
func (d *Device) Interface(name string) (Interface, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ifc := d.lookup(name)
	if ifc == nil {
		return Interface{}, false
	}
	return ifc.clone(), true
}

// SetInterfaceShutdown sets the administrative shutdown flag.
func (d *Device) SetInterfaceShutdown(name string, shutdown bool) error {
	return d.updateInterface(name, func(ifc *Interface) { ifc.Shutdown = shutdown })
}

// SetInterfaceUp sets the line protocol state.
func (d *Device) SetInterfaceUp(name string, up bool) error {
	return d.updateInterface(name, func(ifc *Interface) { ifc.Up = up })
}

// CountFrameOut increments the transmitted control frame counter.
func (d *Device) CountFrameOut(name string) {
	_ = d.updateInterface(name, func(ifc *Interface) { ifc.FramesOut++ })
}

// CountFrameIn increments the received control frame counter.
func (d *Device) CountFrameIn(name string) {
	_ = d.updateInterface(name, func(ifc *Interface) { ifc.FramesIn++ })
}

func (d *Device) updateInterface(name string, fn func(*Interface)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	ifc := d.lookup(name)
	if ifc == nil {
		return fmt.Errorf("%s %s: %w", d.info.Name, name, ErrInterfaceNotFound)
	}
	fn(ifc)
	return nil
}

// lookup finds an interface by name. Caller holds d.mu.
func (d *Device) lookup(name string) *Interface {
	for _, ifc := range d.ifaces {
		if ifc.Name == name {
			return ifc
		}
	}
	return nil
}

// ProtocolConfig returns the configuration blob stored for the protocol
// name and its generation.
func (d *Device) ProtocolConfig(name string) (any, uint64, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	e, ok := d.configs[name]
	if !ok {
		return nil, 0, false
	}
	return e.cfg, e.generation, true
}

// SetProtocolConfig replaces the configuration blob for the protocol name.
// Every call yields a new generation, even if cfg is unchanged.
func (d *Device) SetProtocolConfig(name string, cfg any) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.generation++
	d.configs[name] = configEntry{cfg: cfg, generation: d.generation}
}

// DeleteProtocolConfig removes the configuration blob for the protocol name.
func (d *Device) DeleteProtocolConfig(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.configs, name)
}

// AppendLog records a human-readable log line. The oldest lines are
// discarded once the ring is full.
func (d *Device) AppendLog(now time.Time, msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.log) >= maxLogEntries {
		d.log = slices.Delete(d.log, 0, 1)
	}
	d.log = append(d.log, LogEntry{Time: now, Message: msg})
}

// Log returns a copy of the device log, oldest first.
func (d *Device) Log() []LogEntry {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.log)
}
