package stp

import "time"

// PortStatus is a read-only view of one bridge port.
type PortStatus struct {
	Name             string
	ID               PortID
	State            PortState
	Role             PortRole
	PathCost         uint32
	Edge             bool
	DesignatedRoot   BridgeID
	DesignatedBridge BridgeID
	DesignatedCost   uint32
	DesignatedPort   PortID
	Stats            PortStats
}

// Status is a read-only view of the bridge.
type Status struct {
	Device       string
	Running      bool
	BridgeID     BridgeID
	RootID       BridgeID
	RootPathCost uint32
	RootPort     string
	IsRoot       bool

	HelloTime    time.Duration
	MaxAge       time.Duration
	ForwardDelay time.Duration

	TopologyChanges      uint64
	LastTopologyChange   time.Time
	TopologyChangeActive bool

	Malformed uint64
	Discarded uint64

	Ports []PortStatus
}

// Status returns a snapshot of the bridge at simulated time now. Ports are
// listed in interface order.
func (b *Bridge) Status(now time.Time) Status {
	b.mu.Lock()
	defer b.mu.Unlock()

	st := Status{
		Device:               b.host.Name(),
		Running:              b.running,
		BridgeID:             b.bridgeID,
		RootID:               b.rootID,
		RootPathCost:         b.rootPathCost,
		RootPort:             b.rootPort,
		IsRoot:               b.running && b.isRoot(),
		HelloTime:            b.cfg.HelloTime,
		MaxAge:               b.cfg.MaxAge,
		ForwardDelay:         b.cfg.ForwardDelay,
		TopologyChanges:      b.topologyChanges,
		LastTopologyChange:   b.lastTopologyChange,
		TopologyChangeActive: b.tcActive(now),
		Malformed:            b.malformed,
		Discarded:            b.discarded,
	}
	if !b.running {
		return st
	}

	st.Ports = make([]PortStatus, 0, len(b.ports))
	for _, p := range b.ports {
		st.Ports = append(st.Ports, PortStatus{
			Name:             p.name,
			ID:               p.id,
			State:            p.state,
			Role:             p.role,
			PathCost:         p.pathCost,
			Edge:             p.edge,
			DesignatedRoot:   p.designatedRoot,
			DesignatedBridge: p.designatedBridge,
			DesignatedCost:   p.designatedCost,
			DesignatedPort:   p.designatedPort,
			Stats:            p.stats,
		})
	}
	return st
}

// PortState returns the state of the named port. Unknown ports and a
// stopped bridge report StateDisabled.
func (b *Bridge) PortState(name string) PortState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.running {
		return StateDisabled
	}
	if p := b.byName[name]; p != nil {
		return p.state
	}
	return StateDisabled
}

// Forwarding reports whether the named port forwards frames.
func (b *Bridge) Forwarding(name string) bool {
	return b.PortState(name) == StateForwarding
}
