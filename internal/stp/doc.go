// Package stp implements the IEEE 802.1D Spanning Tree Protocol for
// simulated bridges.
//
// A Bridge elects the root bridge, selects the root port and designated
// ports, and drives every port through the Blocking, Listening, Learning
// and Forwarding states. It plugs into the protocol engine through the
// protocol.Protocol contract and exchanges real 802.1D configuration and
// TCN BPDUs with its neighbors over the simulated fabric.
package stp
