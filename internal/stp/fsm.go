package stp

// This file implements the 802.1D port state machine as a pure function
// over a transition table. Role selection decides which event a port sees;
// the table only decides where that event leads.
//
//	            Enable              Select           FwdDelay          FwdDelay
//	Disabled ----------> Blocking ----------> Listening ------> Learning ------> Forwarding
//	    ^                   ^  |                  |                |                |
//	    |                   |  +----- Edge -------|----------------|--------------->|
//	    |                   +------ Block --------+----------------+----------------+
//	    +------------------------- Disable (from every state) ----------------------+

// PortState is the forwarding state of a bridge port.
type PortState uint8

const (
	// StateDisabled: link down or STP disabled on the port.
	StateDisabled PortState = iota

	// StateBlocking: receives BPDUs only.
	StateBlocking

	// StateListening: takes part in role selection, no learning.
	StateListening

	// StateLearning: learns addresses, does not forward.
	StateLearning

	// StateForwarding: forwards frames.
	StateForwarding
)

var portStateNames = [...]string{
	StateDisabled:   "Disabled",
	StateBlocking:   "Blocking",
	StateListening:  "Listening",
	StateLearning:   "Learning",
	StateForwarding: "Forwarding",
}

// String returns the state name.
func (s PortState) String() string {
	if int(s) < len(portStateNames) {
		return portStateNames[s]
	}
	return "Unknown"
}

// PortRole is the role assigned to a port by the spanning tree
// computation.
type PortRole uint8

const (
	// RoleDisabled is held by ports that take no part in the tree.
	RoleDisabled PortRole = iota

	// RoleRoot is the port with the best path to the root bridge.
	RoleRoot

	// RoleDesignated is the port that forwards towards its segment.
	RoleDesignated

	// RoleAlternate is a blocked port with a path to the root through
	// another bridge.
	RoleAlternate

	// RoleBackup is a blocked port on a segment where this bridge already
	// has the designated port.
	RoleBackup
)

var portRoleNames = [...]string{
	RoleDisabled:   "Disabled",
	RoleRoot:       "Root",
	RoleDesignated: "Designated",
	RoleAlternate:  "Alternate",
	RoleBackup:     "Backup",
}

// String returns the role name.
func (r PortRole) String() string {
	if int(r) < len(portRoleNames) {
		return portRoleNames[r]
	}
	return "Unknown"
}

// Forwarding reports whether the role may eventually forward.
func (r PortRole) Forwarding() bool {
	return r == RoleRoot || r == RoleDesignated
}

// PortEvent drives the port state machine.
type PortEvent uint8

const (
	// EventEnable: the port's link came up.
	EventEnable PortEvent = iota + 1

	// EventDisable: the port's link went down or STP was disabled on it.
	EventDisable

	// EventBlock: the port was given role Alternate or Backup.
	EventBlock

	// EventSelect: the port was given role Root or Designated.
	EventSelect

	// EventForwardDelayExpired: the forward delay timer ran out.
	EventForwardDelayExpired

	// EventEdge: an edge port was given role Root or Designated.
	EventEdge
)

var portEventNames = [...]string{
	EventEnable:              "Enable",
	EventDisable:             "Disable",
	EventBlock:               "Block",
	EventSelect:              "Select",
	EventForwardDelayExpired: "ForwardDelayExpired",
	EventEdge:                "Edge",
}

// String returns the event name.
func (e PortEvent) String() string {
	if int(e) < len(portEventNames) && portEventNames[e] != "" {
		return portEventNames[e]
	}
	return "Unknown"
}

// stateEvent is the transition table key.
type stateEvent struct {
	state PortState
	event PortEvent
}

// PortResult is the outcome of ApplyPortEvent.
type PortResult struct {
	Old     PortState
	New     PortState
	Changed bool
}

// portTable lists every transition. Unlisted pairs leave the state as is.
//
//nolint:gochecknoglobals // transition table is intentionally package-level.
var portTable = map[stateEvent]PortState{
	{StateDisabled, EventEnable}: StateBlocking,

	{StateBlocking, EventDisable}:   StateDisabled,
	{StateListening, EventDisable}:  StateDisabled,
	{StateLearning, EventDisable}:   StateDisabled,
	{StateForwarding, EventDisable}: StateDisabled,

	{StateListening, EventBlock}:  StateBlocking,
	{StateLearning, EventBlock}:   StateBlocking,
	{StateForwarding, EventBlock}: StateBlocking,

	{StateBlocking, EventSelect}: StateListening,

	{StateListening, EventForwardDelayExpired}: StateLearning,
	{StateLearning, EventForwardDelayExpired}:  StateForwarding,

	{StateBlocking, EventEdge}:  StateForwarding,
	{StateListening, EventEdge}: StateForwarding,
	{StateLearning, EventEdge}:  StateForwarding,
}

// ApplyPortEvent applies ev to state s. It is a pure function.
func ApplyPortEvent(s PortState, ev PortEvent) PortResult {
	next, ok := portTable[stateEvent{state: s, event: ev}]
	if !ok {
		return PortResult{Old: s, New: s}
	}
	return PortResult{Old: s, New: next, Changed: next != s}
}
