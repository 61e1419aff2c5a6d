// Package config manages l2simd configuration using koanf/v2.
//
// Supports YAML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/dantte-lp/l2sim/internal/cdp"
	"github.com/dantte-lp/l2sim/internal/stp"
)

// -------------------------------------------------------------------------
// Configuration Structures
// -------------------------------------------------------------------------

// Config holds the complete l2simd configuration.
type Config struct {
	API        APIConfig        `koanf:"api"`
	Metrics    MetricsConfig    `koanf:"metrics"`
	Log        LogConfig        `koanf:"log"`
	Simulation SimulationConfig `koanf:"simulation"`
	Capture    CaptureConfig    `koanf:"capture"`
	STP        STPConfig        `koanf:"stp"`
	CDP        CDPConfig        `koanf:"cdp"`
}

// APIConfig holds the ConnectRPC server configuration.
type APIConfig struct {
	// Addr is the listen address (e.g., ":50061").
	Addr string `koanf:"addr"`
}

// MetricsConfig holds the Prometheus metrics endpoint configuration.
type MetricsConfig struct {
	// Addr is the HTTP listen address for the metrics endpoint (e.g., ":9110").
	Addr string `koanf:"addr"`
	// Path is the URL path for the metrics endpoint (e.g., "/metrics").
	Path string `koanf:"path"`
}

// LogConfig holds the logging configuration.
type LogConfig struct {
	// Level is the log level: "debug", "info", "warn", "error".
	Level string `koanf:"level"`
	// Format is the log output format: "json" or "text".
	Format string `koanf:"format"`
}

// Simulation modes.
const (
	ModeRealtime = "realtime"
	ModeVirtual  = "virtual"
)

// SimulationConfig selects the topology and how time advances.
type SimulationConfig struct {
	// Topology is the path of the YAML topology file.
	Topology string `koanf:"topology"`

	// Tick is the interval between protocol ticks.
	Tick time.Duration `koanf:"tick"`

	// Workers bounds the devices ticked concurrently. Zero means GOMAXPROCS.
	Workers int `koanf:"workers"`

	// Mode is "realtime" (wall clock) or "virtual" (discrete events).
	Mode string `koanf:"mode"`

	// Duration is the simulated interval of a virtual run.
	Duration time.Duration `koanf:"duration"`
}

// CaptureConfig controls the pcap recording of every simulated frame.
type CaptureConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
	SnapLen int    `koanf:"snaplen"`
}

// STPConfig holds the bridge defaults for devices whose topology entry
// omits them.
type STPConfig struct {
	Priority     uint16        `koanf:"priority"`
	HelloTime    time.Duration `koanf:"hello_time"`
	MaxAge       time.Duration `koanf:"max_age"`
	ForwardDelay time.Duration `koanf:"forward_delay"`
}

// Protocol returns an enabled stp.Config with these defaults.
func (c STPConfig) Protocol() stp.Config {
	cfg := stp.DefaultConfig()
	cfg.Priority = c.Priority
	cfg.HelloTime = c.HelloTime
	cfg.MaxAge = c.MaxAge
	cfg.ForwardDelay = c.ForwardDelay
	return cfg
}

// CDPConfig holds the CDP defaults for devices whose topology entry omits
// them.
type CDPConfig struct {
	Timer    time.Duration `koanf:"timer"`
	HoldTime time.Duration `koanf:"holdtime"`
	Version  uint8         `koanf:"version"`
}

// Protocol returns an enabled cdp.Config with these defaults.
func (c CDPConfig) Protocol() cdp.Config {
	cfg := cdp.DefaultConfig()
	cfg.Timer = c.Timer
	cfg.HoldTime = c.HoldTime
	cfg.Version = c.Version
	return cfg
}

// -------------------------------------------------------------------------
// Defaults
// -------------------------------------------------------------------------

// DefaultConfig returns a Config populated with sensible defaults.
//
// Protocol defaults are the IEEE 802.1D bridge timers and the Cisco
// CDP timers (60s advertisements, 180s holdtime).
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Addr: ":50061",
		},
		Metrics: MetricsConfig{
			Addr: ":9110",
			Path: "/metrics",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Simulation: SimulationConfig{
			Topology: "topology.yaml",
			Tick:     time.Second,
			Mode:     ModeRealtime,
			Duration: 5 * time.Minute,
		},
		Capture: CaptureConfig{
			Path:    "l2sim.pcap",
			SnapLen: 1518,
		},
		STP: STPConfig{
			Priority:     stp.DefaultBridgePriority,
			HelloTime:    stp.DefaultHelloTime,
			MaxAge:       stp.DefaultMaxAge,
			ForwardDelay: stp.DefaultForwardDelay,
		},
		CDP: CDPConfig{
			Timer:    cdp.DefaultTimer,
			HoldTime: cdp.DefaultHoldTime,
			Version:  cdp.DefaultVersion,
		},
	}
}

// -------------------------------------------------------------------------
// Loader
// -------------------------------------------------------------------------

// envPrefix is the environment variable prefix for l2sim configuration.
// Variables are named L2SIM_<section>_<key>, e.g., L2SIM_API_ADDR.
const envPrefix = "L2SIM_"

// Load reads configuration from a YAML file at path, overlays environment
// variable overrides (L2SIM_ prefix), and merges on top of DefaultConfig().
// Missing fields inherit defaults.
//
// Environment variable mapping:
//
//	L2SIM_API_ADDR            -> api.addr
//	L2SIM_LOG_LEVEL           -> log.level
//	L2SIM_SIMULATION_MODE     -> simulation.mode
//	L2SIM_STP_HELLO_TIME      -> stp.hello_time
//	L2SIM_CAPTURE_ENABLED     -> capture.enabled
//
// Uses koanf/v2 with file + env providers and YAML parser.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Load defaults first.
	defaults := DefaultConfig()
	if err := loadDefaults(k, defaults); err != nil {
		return nil, fmt.Errorf("load config defaults: %w", err)
	}

	// Load YAML file on top of defaults.
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load config from %s: %w", path, err)
	}

	// Load environment variable overrides on top of YAML.
	if err := k.Load(env.Provider(envPrefix, ".", envKeyMapper), nil); err != nil {
		return nil, fmt.Errorf("load env overrides: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config from %s: %w", path, err)
	}

	return cfg, nil
}

// envKeyMapper transforms L2SIM_STP_HELLO_TIME -> stp.hello_time.
// Strips the prefix, lowercases, and turns the first _ into the section
// separator; the rest belong to the key name.
func envKeyMapper(s string) string {
	s = strings.TrimPrefix(s, envPrefix)
	s = strings.ToLower(s)
	return strings.Replace(s, "_", ".", 1)
}

// loadDefaults marshals the default config into koanf as the base layer.
func loadDefaults(k *koanf.Koanf, defaults *Config) error {
	defaultMap := map[string]any{
		"api.addr":            defaults.API.Addr,
		"metrics.addr":        defaults.Metrics.Addr,
		"metrics.path":        defaults.Metrics.Path,
		"log.level":           defaults.Log.Level,
		"log.format":          defaults.Log.Format,
		"simulation.topology": defaults.Simulation.Topology,
		"simulation.tick":     defaults.Simulation.Tick.String(),
		"simulation.workers":  defaults.Simulation.Workers,
		"simulation.mode":     defaults.Simulation.Mode,
		"simulation.duration": defaults.Simulation.Duration.String(),
		"capture.enabled":     defaults.Capture.Enabled,
		"capture.path":        defaults.Capture.Path,
		"capture.snaplen":     defaults.Capture.SnapLen,
		"stp.priority":        defaults.STP.Priority,
		"stp.hello_time":      defaults.STP.HelloTime.String(),
		"stp.max_age":         defaults.STP.MaxAge.String(),
		"stp.forward_delay":   defaults.STP.ForwardDelay.String(),
		"cdp.timer":           defaults.CDP.Timer.String(),
		"cdp.holdtime":        defaults.CDP.HoldTime.String(),
		"cdp.version":         defaults.CDP.Version,
	}

	for key, val := range defaultMap {
		if err := k.Set(key, val); err != nil {
			return fmt.Errorf("set default %s: %w", key, err)
		}
	}

	return nil
}

// -------------------------------------------------------------------------
// Validation
// -------------------------------------------------------------------------

// Validation errors.
var (
	// ErrEmptyAPIAddr indicates the API listen address is empty.
	ErrEmptyAPIAddr = errors.New("api.addr must not be empty")

	// ErrEmptyTopology indicates no topology file was configured.
	ErrEmptyTopology = errors.New("simulation.topology must not be empty")

	// ErrInvalidTick indicates a non-positive tick interval.
	ErrInvalidTick = errors.New("simulation.tick must be > 0")

	// ErrInvalidWorkers indicates a negative worker count.
	ErrInvalidWorkers = errors.New("simulation.workers must be >= 0")

	// ErrInvalidMode indicates an unrecognized simulation mode.
	ErrInvalidMode = errors.New("simulation.mode must be realtime or virtual")

	// ErrInvalidDuration indicates a virtual run without a positive duration.
	ErrInvalidDuration = errors.New("simulation.duration must be > 0 in virtual mode")

	// ErrEmptyCapturePath indicates capture is enabled without a file.
	ErrEmptyCapturePath = errors.New("capture.path must not be empty when capture is enabled")

	// ErrInvalidSnapLen indicates a non-positive capture snap length.
	ErrInvalidSnapLen = errors.New("capture.snaplen must be > 0")

	// ErrInvalidLogFormat indicates an unrecognized log format.
	ErrInvalidLogFormat = errors.New("log.format must be json or text")
)

// Validate checks the configuration for logical errors.
// Returns the first validation error encountered.
func Validate(cfg *Config) error {
	if cfg.API.Addr == "" {
		return ErrEmptyAPIAddr
	}

	switch cfg.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format %q: %w", cfg.Log.Format, ErrInvalidLogFormat)
	}

	if err := validateSimulation(cfg.Simulation); err != nil {
		return err
	}

	if cfg.Capture.Enabled {
		if cfg.Capture.Path == "" {
			return ErrEmptyCapturePath
		}
		if cfg.Capture.SnapLen <= 0 {
			return ErrInvalidSnapLen
		}
	}

	if err := cfg.STP.Protocol().Validate(); err != nil {
		return fmt.Errorf("stp defaults: %w", err)
	}

	if err := cfg.CDP.Protocol().Validate(); err != nil {
		return fmt.Errorf("cdp defaults: %w", err)
	}

	return nil
}

// validateSimulation checks the simulation section.
func validateSimulation(sc SimulationConfig) error {
	if sc.Topology == "" {
		return ErrEmptyTopology
	}

	if sc.Tick <= 0 {
		return ErrInvalidTick
	}

	if sc.Workers < 0 {
		return ErrInvalidWorkers
	}

	switch sc.Mode {
	case ModeRealtime:
	case ModeVirtual:
		if sc.Duration <= 0 {
			return ErrInvalidDuration
		}
	default:
		return fmt.Errorf("simulation.mode %q: %w", sc.Mode, ErrInvalidMode)
	}

	return nil
}

// -------------------------------------------------------------------------
// Log Level Parsing
// -------------------------------------------------------------------------

// ParseLogLevel maps a configuration log level string to the corresponding
// slog.Level. Unknown values default to slog.LevelInfo.
//
// Recognized values: "debug", "info", "warn", "error" (case-insensitive).
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
