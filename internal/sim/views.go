package sim

import (
	"fmt"
	"log/slog"

	"github.com/dantte-lp/l2sim/internal/cdp"
	"github.com/dantte-lp/l2sim/internal/protocol"
	"github.com/dantte-lp/l2sim/internal/stp"
	"github.com/dantte-lp/l2sim/internal/topology"
)

// DeviceSummary is one row of the device listing.
type DeviceSummary struct {
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	Platform   string `json:"platform,omitempty"`
	Version    string `json:"version,omitempty"`
	Interfaces int    `json:"interfaces"`

	STPActive bool   `json:"stp_active"`
	RootID    string `json:"root_id,omitempty"`
	IsRoot    bool   `json:"is_root"`

	CDPActive    bool `json:"cdp_active"`
	CDPNeighbors int  `json:"cdp_neighbors"`
}

// Devices lists every simulated device, sorted by name.
func (s *Simulation) Devices() []DeviceSummary {
	now := s.Now()
	nodes := s.sortedNodes()
	out := make([]DeviceSummary, 0, len(nodes))

	for _, n := range nodes {
		info := n.device.Info()
		ds := DeviceSummary{
			Name:       info.Name,
			Kind:       info.Kind.String(),
			Platform:   info.Platform,
			Version:    info.Version,
			Interfaces: len(n.device.Interfaces()),
			STPActive:  n.active(protocol.KindSTP),
			CDPActive:  n.active(protocol.KindCDP),
		}
		if ds.STPActive {
			st := n.bridge.Status(now)
			ds.RootID = st.RootID.String()
			ds.IsRoot = st.IsRoot
		}
		if ds.CDPActive {
			ds.CDPNeighbors = n.cdp.NeighborCount()
		}
		out = append(out, ds)
	}
	return out
}

func (n *node) active(k protocol.Kind) bool {
	in, ok := n.runner.Instance(k)
	return ok && in.Active()
}

// Device returns the named device.
func (s *Simulation) Device(name string) (*topology.Device, error) {
	n, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	return n.device, nil
}

// Protocols returns the engine state of every protocol on the device.
func (s *Simulation) Protocols(device string) ([]protocol.StateSnapshot, error) {
	n, err := s.lookup(device)
	if err != nil {
		return nil, err
	}
	return n.runner.Snapshots(), nil
}

// SpanningTree returns the STP view of the device.
func (s *Simulation) SpanningTree(device string) (stp.Status, error) {
	n, err := s.lookup(device)
	if err != nil {
		return stp.Status{}, err
	}
	return n.bridge.Status(s.Now()), nil
}

// CDP returns the CDP view of the device, including its neighbor table.
func (s *Simulation) CDP(device string) (cdp.Status, error) {
	n, err := s.lookup(device)
	if err != nil {
		return cdp.Status{}, err
	}
	return n.cdp.Status(s.Now()), nil
}

// Neighbors returns the CDP neighbor table of the device.
func (s *Simulation) Neighbors(device string) ([]cdp.NeighborStatus, error) {
	n, err := s.lookup(device)
	if err != nil {
		return nil, err
	}
	return n.cdp.Neighbors(s.Now()), nil
}

// Log returns the device's log ring.
func (s *Simulation) Log(device string) ([]topology.LogEntry, error) {
	n, err := s.lookup(device)
	if err != nil {
		return nil, err
	}
	return n.device.Log(), nil
}

// -------------------------------------------------------------------------
// Control
// -------------------------------------------------------------------------

// SetInterfaceShutdown changes the administrative state of an interface.
// Protocols react on the device's next tick.
func (s *Simulation) SetInterfaceShutdown(device, iface string, shutdown bool) error {
	n, err := s.lookup(device)
	if err != nil {
		return err
	}
	if err := n.device.SetInterfaceShutdown(iface, shutdown); err != nil {
		return fmt.Errorf("set interface %s:%s: %w", device, iface, err)
	}

	verb := "no shutdown"
	if shutdown {
		verb = "shutdown"
	}
	n.device.AppendLog(s.Now(), "interface "+iface+": "+verb)
	s.logger.Info("interface state changed",
		slog.String("device", device),
		slog.String("interface", iface),
		slog.Bool("shutdown", shutdown),
	)
	return nil
}

// SetProtocolEnabled enables or disables a protocol on the device. The
// rest of the device's configuration for the protocol is kept; a device
// without one starts from the simulation defaults.
func (s *Simulation) SetProtocolEnabled(device string, kind protocol.Kind, enabled bool) error {
	n, err := s.lookup(device)
	if err != nil {
		return err
	}

	name := kind.String()
	raw, _, ok := n.device.ProtocolConfig(name)

	switch kind {
	case protocol.KindSTP:
		cfg := s.defaults.STP
		if c, isSTP := raw.(stp.Config); ok && isSTP {
			cfg = c
		}
		cfg.Enabled = enabled
		n.device.SetProtocolConfig(name, cfg)
	case protocol.KindCDP:
		cfg := s.defaults.CDP
		if c, isCDP := raw.(cdp.Config); ok && isCDP {
			cfg = c
		}
		cfg.Enabled = enabled
		n.device.SetProtocolConfig(name, cfg)
	default:
		return fmt.Errorf("set protocol %s on %s: %w", name, device, protocol.ErrUnknownKind)
	}

	s.logger.Info("protocol configuration changed",
		slog.String("device", device),
		slog.String("protocol", name),
		slog.Bool("enabled", enabled),
	)
	return nil
}

// -------------------------------------------------------------------------
// Verification
// -------------------------------------------------------------------------

// VerifyLoopFree checks that the links forwarding on both ends form a
// forest. Ports of devices running STP forward when STP says so. Without
// STP, operational ports of switches, bridges and repeaters forward;
// routers and hosts never bridge frames between ports.
func (s *Simulation) VerifyLoopFree() topology.LoopReport {
	s.mu.RLock()
	nodes := make(map[string]*node, len(s.nodes))
	for k, v := range s.nodes {
		nodes[k] = v
	}
	s.mu.RUnlock()

	return s.network.ForwardingLoops(func(ep topology.Endpoint) bool {
		n, ok := nodes[ep.Device]
		if !ok {
			return false
		}
		if n.active(protocol.KindSTP) {
			return n.bridge.Forwarding(ep.Interface)
		}
		switch n.device.Info().Kind {
		case topology.KindSwitch, topology.KindBridge, topology.KindRepeater:
			ifc, ok := n.device.Interface(ep.Interface)
			return ok && ifc.Operational()
		default:
			return false
		}
	})
}
