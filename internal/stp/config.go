package stp

import (
	"errors"
	"fmt"
	"time"
)

// 802.1D timer defaults.
const (
	DefaultHelloTime    = 2 * time.Second
	DefaultMaxAge       = 20 * time.Second
	DefaultForwardDelay = 15 * time.Second
)

// priorityStep is the granularity of bridge priorities (802.1t).
const priorityStep = 4096

// Configuration validation errors.
var (
	ErrInvalidPriority      = errors.New("bridge priority must be a multiple of 4096 in [0, 61440]")
	ErrInvalidHelloTime     = errors.New("hello time must be in [1s, 10s]")
	ErrInvalidMaxAge        = errors.New("max age must be in [6s, 40s]")
	ErrInvalidForwardDelay  = errors.New("forward delay must be in [4s, 30s]")
	ErrInvalidTimerRelation = errors.New("timers must satisfy 2*(forward_delay-1s) >= max_age >= 2*(hello_time+1s)")
	ErrConfigType           = errors.New("not an stp configuration")
)

// PortConfig overrides per-port defaults. The zero value keeps every
// default.
type PortConfig struct {
	// Disabled excludes the port from the spanning tree.
	Disabled bool `yaml:"disabled" json:"disabled"`

	// Cost overrides the speed-derived path cost when non-zero.
	Cost uint32 `yaml:"cost" json:"cost"`

	// Priority overrides DefaultPortPriority when non-zero.
	Priority uint8 `yaml:"priority" json:"priority"`

	// Edge marks a port facing end hosts (PortFast).
	Edge bool `yaml:"edge" json:"edge"`
}

// Config is the STP configuration of one bridge.
type Config struct {
	Enabled      bool                  `yaml:"enabled" json:"enabled"`
	Priority     uint16                `yaml:"priority" json:"priority"`
	HelloTime    time.Duration         `yaml:"hello_time" json:"hello_time"`
	MaxAge       time.Duration         `yaml:"max_age" json:"max_age"`
	ForwardDelay time.Duration         `yaml:"forward_delay" json:"forward_delay"`
	Ports        map[string]PortConfig `yaml:"ports" json:"ports,omitempty"`
}

// DefaultConfig returns an enabled configuration with 802.1D defaults.
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		Priority:     DefaultBridgePriority,
		HelloTime:    DefaultHelloTime,
		MaxAge:       DefaultMaxAge,
		ForwardDelay: DefaultForwardDelay,
	}
}

// IsEnabled reports whether STP should run. It implements protocol.Config.
func (c Config) IsEnabled() bool { return c.Enabled }

// Port returns the overrides for the named port.
func (c Config) Port(name string) PortConfig {
	return c.Ports[name]
}

// Validate checks the 802.1D parameter ranges and the timer relation.
func (c Config) Validate() error {
	if c.Priority%priorityStep != 0 || c.Priority > 61440 {
		return fmt.Errorf("priority %d: %w", c.Priority, ErrInvalidPriority)
	}
	if c.HelloTime < time.Second || c.HelloTime > 10*time.Second {
		return fmt.Errorf("hello time %s: %w", c.HelloTime, ErrInvalidHelloTime)
	}
	if c.MaxAge < 6*time.Second || c.MaxAge > 40*time.Second {
		return fmt.Errorf("max age %s: %w", c.MaxAge, ErrInvalidMaxAge)
	}
	if c.ForwardDelay < 4*time.Second || c.ForwardDelay > 30*time.Second {
		return fmt.Errorf("forward delay %s: %w", c.ForwardDelay, ErrInvalidForwardDelay)
	}
	if 2*(c.ForwardDelay-time.Second) < c.MaxAge || c.MaxAge < 2*(c.HelloTime+time.Second) {
		return fmt.Errorf("hello %s, max age %s, forward delay %s: %w",
			c.HelloTime, c.MaxAge, c.ForwardDelay, ErrInvalidTimerRelation)
	}
	return nil
}

// asConfig accepts a Config or *Config.
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
