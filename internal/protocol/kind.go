package protocol

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind indicates a protocol name that is not recognized.
var ErrUnknownKind = errors.New("unknown protocol kind")

// Kind identifies a simulated protocol.
type Kind uint8

const (
	// KindSTP is the IEEE 802.1D Spanning Tree Protocol.
	KindSTP Kind = iota + 1

	// KindCDP is the Cisco Discovery Protocol.
	KindCDP
)

// kindNames maps Kind values to their configuration names.
var kindNames = [...]string{
	KindSTP: "stp",
	KindCDP: "cdp",
}

// String returns the configuration name of the protocol ("stp", "cdp").
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind converts a protocol name into a Kind. Matching is
// case-insensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stp":
		return KindSTP, nil
	case "cdp":
		return KindCDP, nil
	default:
		return 0, fmt.Errorf("parse protocol %q: %w", s, ErrUnknownKind)
	}
}
