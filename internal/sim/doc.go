// Package sim drives the protocol stack of every device in a topology.
//
// A Simulation owns one protocol.Runner per device, with an STP bridge and
// a CDP instance wired to the shared netio.Fabric. Step ticks all devices
// concurrently at one simulated instant and Run repeats it on a wall-clock
// ticker. RunVirtual replays a whole interval on a discrete-event
// scheduler with per-device start jitter.
//
// Protocol events are fanned out to subscribers through a Hub.
//
// Topologies are described in YAML and loaded with LoadTopology.
package sim
