package cdp

import (
	"cmp"
	"slices"
	"time"

	"github.com/dantte-lp/l2sim/internal/protocol"
)

// NeighborStatus is one row of "show cdp neighbors".
type NeighborStatus struct {
	LocalInterface string
	Info
	FirstSeen time.Time
	LastSeen  time.Time

	// HoldRemaining is the time left before the entry expires.
	HoldRemaining time.Duration
}

// InterfaceStatus is the CDP view of one local interface.
type InterfaceStatus struct {
	Name              string
	Enabled           bool
	Priority          uint8
	Description       string
	LastAdvertisement time.Time
	Sent              uint64
	Received          uint64
}

// Status is a read-only view of the protocol.
type Status struct {
	Device       string
	Running      bool
	DeviceID     string
	Version      uint8
	Timer        time.Duration
	HoldTime     time.Duration
	Capabilities Capability
	Interfaces   []InterfaceStatus
	Neighbors    []NeighborStatus
	Stats        Stats
}

// Status returns a snapshot at simulated time now. Neighbors are sorted
// by local interface, then device ID.
func (p *Protocol) Status(now time.Time) Status {
	p.mu.Lock()
	defer p.mu.Unlock()

	st := Status{
		Device:  p.host.Name(),
		Running: p.running,
		Stats:   p.stats,
	}
	if !p.running {
		return st
	}

	st.DeviceID = p.identity.DeviceID
	st.Version = p.cfg.Version
	st.Timer = p.cfg.Timer
	st.HoldTime = p.cfg.HoldTime
	st.Capabilities = p.identity.Capabilities

	for _, ifc := range p.host.Interfaces() {
		settings := p.cfg.Interface(ifc.Name)
		is := InterfaceStatus{
			Name:        ifc.Name,
			Enabled:     p.participates(ifc),
			Priority:    settings.Priority,
			Description: settings.Description,
		}
		if s, ok := p.ifaces[ifc.Name]; ok {
			is.LastAdvertisement = s.lastSent
			is.Sent = s.sent
			is.Received = s.received
		}
		st.Interfaces = append(st.Interfaces, is)
	}

	st.Neighbors = p.neighbors(now)
	return st
}

// Neighbors returns the neighbor table at simulated time now.
func (p *Protocol) Neighbors(now time.Time) []NeighborStatus {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return nil
	}
	return p.neighbors(now)
}

func (p *Protocol) neighbors(now time.Time) []NeighborStatus {
	out := make([]NeighborStatus, 0, p.table.Len())
	p.table.Range(func(k neighborKey, n protocol.Neighbor[Info]) bool {
		out = append(out, NeighborStatus{
			LocalInterface: k.iface,
			Info:           n.Value,
			FirstSeen:      n.FirstSeen,
			LastSeen:       n.LastSeen,
			HoldRemaining:  max(n.HoldTime-n.Age(now), 0),
		})
		return true
	})
	slices.SortFunc(out, func(a, b NeighborStatus) int {
		return cmp.Or(
			cmp.Compare(a.LocalInterface, b.LocalInterface),
			cmp.Compare(a.DeviceID, b.DeviceID),
		)
	})
	return out
}
