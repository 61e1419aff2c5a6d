package cdp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/gopacket/layers"

	"github.com/dantte-lp/l2sim/internal/topology"
)

// ErrUnknownCapability indicates a capability name that is not recognized.
var ErrUnknownCapability = errors.New("unknown cdp capability")

// Capability is the 32-bit CDP capability bitmask.
type Capability uint32

// Capability bits.
const (
	CapRouter            = Capability(layers.CDPCapMaskRouter)
	CapTransBridge       = Capability(layers.CDPCapMaskTBBridge)
	CapSourceRouteBridge = Capability(layers.CDPCapMaskSPBridge)
	CapSwitch            = Capability(layers.CDPCapMaskSwitch)
	CapHost              = Capability(layers.CDPCapMaskHost)
	CapIGMP              = Capability(layers.CDPCapMaskIGMPFilter)
	CapRepeater          = Capability(layers.CDPCapMaskRepeater)
)

// capabilityNames lists the bits in display order with their
// configuration names and the letter code shown by "show cdp neighbors".
//
//nolint:gochecknoglobals // lookup table.
var capabilityNames = []struct {
	bit  Capability
	name string
	code string
}{
	{CapRouter, "router", "R"},
	{CapTransBridge, "trans-bridge", "T"},
	{CapSourceRouteBridge, "source-route-bridge", "B"},
	{CapSwitch, "switch", "S"},
	{CapHost, "host", "H"},
	{CapIGMP, "igmp", "I"},
	{CapRepeater, "repeater", "r"},
}

// kindCapabilities is the capability set implied by a device kind.
//
//nolint:gochecknoglobals // lookup table.
var kindCapabilities = map[topology.DeviceKind]Capability{
	topology.KindRouter:   CapRouter,
	topology.KindSwitch:   CapSwitch | CapIGMP,
	topology.KindBridge:   CapTransBridge,
	topology.KindHost:     CapHost,
	topology.KindRepeater: CapRepeater,
}

// Has reports whether every bit of o is set in c.
func (c Capability) Has(o Capability) bool { return c&o == o }

// Names returns the configuration names of the set bits.
func (c Capability) Names() []string {
	var out []string
	for _, e := range capabilityNames {
		if c.Has(e.bit) {
			out = append(out, e.name)
		}
	}
	return out
}

// Codes returns the space-separated letter codes of the set bits, as
// printed in neighbor tables ("R S I").
func (c Capability) Codes() string {
	codes := make([]string, 0, len(capabilityNames))
	for _, e := range capabilityNames {
		if c.Has(e.bit) {
			codes = append(codes, e.code)
		}
	}
	return strings.Join(codes, " ")
}

// String returns the names of the set bits joined with commas.
func (c Capability) String() string {
	if c == 0 {
		return "none"
	}
	return strings.Join(c.Names(), ",")
}

// ParseCapability converts a configuration name into its bit. Matching is
// case-insensitive.
func ParseCapability(name string) (Capability, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, e := range capabilityNames {
		if e.name == n {
			return e.bit, nil
		}
	}
	return 0, fmt.Errorf("parse capability %q: %w", name, ErrUnknownCapability)
}

// Capabilities returns the bits implied by kind OR'ed with the named
// capabilities.
func Capabilities(kind topology.DeviceKind, names []string) (Capability, error) {
	c := kindCapabilities[kind]
	for _, n := range names {
		bit, err := ParseCapability(n)
		if err != nil {
			return 0, err
		}
		c |= bit
	}
	return c, nil
}
