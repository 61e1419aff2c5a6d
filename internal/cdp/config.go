package cdp

import (
	"errors"
	"fmt"
	"time"
)

// Protocol defaults.
const (
	DefaultTimer    = 60 * time.Second
	DefaultHoldTime = 180 * time.Second
	DefaultVersion  = Version2
)

// Configuration validation errors.
var (
	ErrInvalidTimer    = errors.New("cdp timer must be in [5s, 254s]")
	ErrInvalidHoldTime = errors.New("cdp holdtime must be in [10s, 255s]")
	ErrHoldNotAbove    = errors.New("cdp holdtime must be greater than the timer")
	ErrInvalidVersion  = errors.New("cdp version must be 1 or 2")
	ErrConfigType      = errors.New("not a cdp configuration")
)

// InterfaceSettings overrides per-interface behavior. The zero value runs
// CDP on the interface.
type InterfaceSettings struct {
	// Disabled stops advertisements and neighbor learning on the interface.
	Disabled bool `yaml:"disabled" json:"disabled"`

	// Priority is an operator ranking shown in interface listings. It is
	// not advertised.
	Priority uint8 `yaml:"priority" json:"priority,omitempty"`

	// Description is shown in interface listings.
	Description string `yaml:"description" json:"description,omitempty"`
}

// Config is the CDP configuration of one device.
type Config struct {
	Enabled  bool          `yaml:"enabled" json:"enabled"`
	Timer    time.Duration `yaml:"timer" json:"timer"`
	HoldTime time.Duration `yaml:"holdtime" json:"holdtime"`
	Version  uint8         `yaml:"version" json:"version"`

	// DeviceID overrides the advertised device identifier. Empty means
	// the device name.
	DeviceID string `yaml:"device_id" json:"device_id,omitempty"`

	// Capabilities are OR'ed with the bits implied by the device kind.
	Capabilities []string `yaml:"capabilities" json:"capabilities,omitempty"`

	Interfaces map[string]InterfaceSettings `yaml:"interfaces" json:"interfaces,omitempty"`
}

// DefaultConfig returns an enabled CDPv2 configuration with a 60s timer
// and 180s holdtime.
func DefaultConfig() Config {
	return Config{
		Enabled:  true,
		Timer:    DefaultTimer,
		HoldTime: DefaultHoldTime,
		Version:  DefaultVersion,
	}
}

// IsEnabled reports whether CDP should run. It implements protocol.Config.
func (c Config) IsEnabled() bool { return c.Enabled }

// Interface returns the settings for the named interface.
func (c Config) Interface(name string) InterfaceSettings {
	return c.Interfaces[name]
}

// Validate checks timer ranges, the holdtime relation, the version and
// the capability names.
func (c Config) Validate() error {
	if c.Timer < 5*time.Second || c.Timer > 254*time.Second {
		return fmt.Errorf("timer %s: %w", c.Timer, ErrInvalidTimer)
	}
	if c.HoldTime < 10*time.Second || c.HoldTime > 255*time.Second {
		return fmt.Errorf("holdtime %s: %w", c.HoldTime, ErrInvalidHoldTime)
	}
	if c.HoldTime <= c.Timer {
		return fmt.Errorf("holdtime %s, timer %s: %w", c.HoldTime, c.Timer, ErrHoldNotAbove)
	}
	if c.Version != Version1 && c.Version != Version2 {
		return fmt.Errorf("version %d: %w", c.Version, ErrInvalidVersion)
	}
	for _, name := range c.Capabilities {
		if _, err := ParseCapability(name); err != nil {
			return err
		}
	}
	return nil
}

// ttl returns the holdtime in whole seconds as carried in the TTL octet.
func (c Config) ttl() uint8 {
	return uint8(c.HoldTime / time.Second) //nolint:gosec // G115: validated <= 255s
}

func asConfig(v any) (Config, error) {
	switch c := v.(type) {
	case Config:
		return c, nil
	case *Config:
		if c == nil {
			return Config{}, ErrConfigType
		}
		return *c, nil
	default:
		return Config{}, fmt.Errorf("%T: %w", v, ErrConfigType)
	}
}
