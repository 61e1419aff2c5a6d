package protocol

import "time"

// EventType classifies protocol events emitted towards observers.
type EventType uint8

const (
	// EventNeighborUp is emitted when a new neighbor is learned.
	EventNeighborUp EventType = iota + 1

	// EventNeighborDown is emitted when a neighbor is pruned or its link
	// goes away.
	EventNeighborDown

	// EventRootChanged is emitted when STP elects a different root bridge.
	EventRootChanged

	// EventRootPortChanged is emitted when STP selects a different root port.
	EventRootPortChanged

	// EventPortStateChanged is emitted on every STP port state transition.
	EventPortStateChanged

	// EventTopologyChange is emitted when the STP topology change counter
	// is incremented.
	EventTopologyChange

	// EventConfigRejected is emitted when a protocol configuration fails
	// validation and the protocol stays inactive.
	EventConfigRejected
)

// eventTypeNames maps EventType values to their names.
var eventTypeNames = [...]string{
	EventNeighborUp:       "NeighborUp",
	EventNeighborDown:     "NeighborDown",
	EventRootChanged:      "RootChanged",
	EventRootPortChanged:  "RootPortChanged",
	EventPortStateChanged: "PortStateChanged",
	EventTopologyChange:   "TopologyChange",
	EventConfigRejected:   "ConfigRejected",
}

// String returns the human-readable name of the event type.
func (t EventType) String() string {
	if int(t) < len(eventTypeNames) && eventTypeNames[t] != "" {
		return eventTypeNames[t]
	}
	return "Unknown"
}

// Event describes a notable protocol occurrence on one device.
type Event struct {
	// Time is the simulated time at which the event happened.
	Time time.Time

	// Device is the name of the device running the protocol.
	Device string

	// Protocol is the protocol that emitted the event.
	Protocol Kind

	// Type classifies the event.
	Type EventType

	// Interface is the local interface involved, if any.
	Interface string

	// Peer identifies the remote side (device ID or bridge ID), if any.
	Peer string

	// From and To carry the old and new value for change events
	// (root bridge, root port, port state).
	From string
	To   string

	// Detail is a free-form human-readable description.
	Detail string
}

// Notifier receives protocol events. Implementations must not block:
// Notify is called from inside a tick.
type Notifier interface {
	Notify(ev Event)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(ev Event)

// Notify calls f(ev).
func (f NotifierFunc) Notify(ev Event) { f(ev) }

// noopNotifier discards all events.
type noopNotifier struct{}

func (noopNotifier) Notify(Event) {}

// DiscardEvents is a Notifier that drops every event.
var DiscardEvents Notifier = noopNotifier{}
