// l2simd daemon -- L2/L3 control-plane simulator (STP, CDP).
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime/trace"
	"syscall"
	"time"

	"connectrpc.com/grpchealth"
	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/dantte-lp/l2sim/internal/config"
	l2metrics "github.com/dantte-lp/l2sim/internal/metrics"
	"github.com/dantte-lp/l2sim/internal/netio"
	"github.com/dantte-lp/l2sim/internal/server"
	"github.com/dantte-lp/l2sim/internal/sim"
	appversion "github.com/dantte-lp/l2sim/internal/version"
	"github.com/dantte-lp/l2sim/pkg/l2simpb/l2sim/v1/l2simv1connect"
)

// shutdownTimeout is the maximum time to wait for HTTP servers to drain
// active connections during graceful shutdown.
const shutdownTimeout = 10 * time.Second

// flightRecorderMinAge is the minimum window age for the flight recorder.
const flightRecorderMinAge = 500 * time.Millisecond

// flightRecorderMaxBytes is the upper bound on flight recorder window size.
const flightRecorderMaxBytes = 2 * 1024 * 1024 // 2 MiB

// errForwardingLoop is returned by a virtual run whose final forwarding
// topology contains a loop.
var errForwardingLoop = errors.New("forwarding loop detected")

func main() {
	os.Exit(run())
}

func run() int {
	// 1. Parse flags.
	configPath := flag.String("config", "", "path to configuration file (YAML)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(appversion.Full("l2simd"))
		return 0
	}

	// 2. Load config.
	cfg, err := loadConfig(*configPath)
	if err != nil {
		// Logger is not set up yet; use a temporary stderr logger.
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("failed to load configuration",
			slog.String("error", err.Error()),
		)
		return 1
	}

	// 3. Set up logger with dynamic level support for SIGHUP reload.
	logLevel := new(slog.LevelVar)
	logLevel.Set(config.ParseLogLevel(cfg.Log.Level))
	logger := newLoggerWithLevel(cfg.Log, logLevel)

	build := appversion.Current("l2simd")
	logger.Info("l2simd starting",
		slog.String("version", build.Version),
		slog.String("commit", build.GitCommit),
		slog.String("api", build.API),
		slog.String("mode", cfg.Simulation.Mode),
		slog.String("topology", cfg.Simulation.Topology),
		slog.String("api_addr", cfg.API.Addr),
		slog.String("metrics_addr", cfg.Metrics.Addr),
	)

	// 4. Create Prometheus metrics collector.
	reg := prometheus.NewRegistry()
	collector := l2metrics.NewCollector(reg)

	// 5. Open the frame capture, if any.
	capture, err := openCapture(cfg.Capture, logger)
	if err != nil {
		logger.Error("failed to open capture", slog.String("error", err.Error()))
		return 1
	}
	defer closeCapture(capture, logger)

	// 6. Load the topology and build the simulation.
	s, err := newSimulation(cfg, collector, capture, logger)
	if err != nil {
		logger.Error("failed to build simulation", slog.String("error", err.Error()))
		return 1
	}
	defer s.Events().Close()

	// 7. Virtual mode runs to completion and exits.
	if cfg.Simulation.Mode == config.ModeVirtual {
		if err := runVirtual(cfg.Simulation, s, os.Stdout, logger); err != nil {
			logger.Error("virtual run failed", slog.String("error", err.Error()))
			return 1
		}
		return 0
	}

	// 8. Start flight recorder for post-mortem debugging.
	fr := startFlightRecorder(logger)

	// 9. Run servers and the wall-clock loop.
	if err := runServers(cfg, s, reg, logger, *configPath, logLevel, fr); err != nil {
		logger.Error("l2simd exited with error",
			slog.String("error", err.Error()),
		)
		return 1
	}

	logger.Info("l2simd stopped")
	return 0
}

// newSimulation loads the topology file and wires the fabric, capture and
// metrics into a Simulation.
func newSimulation(
	cfg *config.Config,
	collector *l2metrics.Collector,
	capture *netio.Capture,
	logger *slog.Logger,
) (*sim.Simulation, error) {
	defaults := sim.Defaults{
		STP: cfg.STP.Protocol(),
		CDP: cfg.CDP.Protocol(),
	}

	network, err := sim.LoadTopology(cfg.Simulation.Topology, defaults)
	if err != nil {
		return nil, fmt.Errorf("load topology: %w", err)
	}

	fabricOpts := []netio.FabricOption{netio.WithFabricLogger(logger)}
	if capture != nil {
		fabricOpts = append(fabricOpts, netio.WithCapture(capture))
	}
	fabric := netio.NewFabric(network, fabricOpts...)

	s := sim.New(network, fabric,
		sim.WithLogger(logger),
		sim.WithMetrics(collector),
		sim.WithWorkers(cfg.Simulation.Workers),
		sim.WithDefaults(defaults),
	)

	logger.Info("topology loaded",
		slog.String("run_id", s.RunID().String()),
		slog.Int("devices", len(network.Devices())),
		slog.Int("links", len(network.Links())),
	)
	return s, nil
}

// virtualSummary is printed to stdout at the end of a virtual run.
type virtualSummary struct {
	RunID           string              `json:"run_id"`
	Start           time.Time           `json:"start"`
	End             time.Time           `json:"end"`
	Ticks           uint64              `json:"ticks"`
	Loop            bool                `json:"loop"`
	ClosingLinks    []string            `json:"closing_links,omitempty"`
	ForwardingLinks int                 `json:"forwarding_links"`
	Components      int                 `json:"components"`
	Devices         []sim.DeviceSummary `json:"devices"`
}

// runVirtual simulates the configured duration without waiting for the
// wall clock, prints a summary and verifies the forwarding topology.
func runVirtual(sc config.SimulationConfig, s *sim.Simulation, w io.Writer, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	epoch := time.Now().UTC().Truncate(time.Second)
	report, err := s.RunVirtual(ctx, epoch, sc.Duration, sc.Tick)
	if err != nil {
		return fmt.Errorf("virtual run: %w", err)
	}

	loops := s.VerifyLoopFree()
	summary := virtualSummary{
		RunID:           s.RunID().String(),
		Start:           report.Start,
		End:             report.End,
		Ticks:           report.Ticks,
		Loop:            loops.Loop,
		ForwardingLinks: loops.ForwardingLinks,
		Components:      loops.Components,
		Devices:         s.Devices(),
	}
	for _, l := range loops.ClosingLinks {
		summary.ClosingLinks = append(summary.ClosingLinks, l.String())
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	logger.Info("virtual run complete",
		slog.Duration("simulated", report.End.Sub(report.Start)),
		slog.Uint64("ticks", report.Ticks),
		slog.Bool("loop", loops.Loop),
	)

	if loops.Loop {
		return fmt.Errorf("%d closing links: %w", len(loops.ClosingLinks), errForwardingLoop)
	}
	return nil
}

// runServers sets up and runs the API and metrics HTTP servers next to the
// wall-clock simulation loop, using an errgroup with signal-aware context
// for graceful shutdown.
func runServers(
	cfg *config.Config,
	s *sim.Simulation,
	reg *prometheus.Registry,
	logger *slog.Logger,
	configPath string,
	logLevel *slog.LevelVar,
	fr *trace.FlightRecorder,
) error {
	metricsSrv := newMetricsServer(cfg.Metrics, reg)
	apiSrv := newAPIServer(cfg.API, s, logger)

	// errgroup with signal-aware context.
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	startHTTPServers(gCtx, g, cfg, apiSrv, metricsSrv, logger)
	startDaemonGoroutines(gCtx, g, configPath, logLevel, logger)

	g.Go(func() error {
		logger.Info("simulation running", slog.Duration("tick", cfg.Simulation.Tick))
		if err := s.Run(gCtx, cfg.Simulation.Tick); err != nil {
			return fmt.Errorf("simulation: %w", err)
		}
		return nil
	})

	notifyReady(logger)

	// Shutdown goroutine: waits for context cancellation.
	g.Go(func() error {
		<-gCtx.Done()
		return gracefulShutdown(gCtx, s, logger, fr, apiSrv, metricsSrv)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("run servers: %w", err)
	}
	return nil
}

// startHTTPServers launches the API and metrics HTTP servers in the errgroup.
func startHTTPServers(
	ctx context.Context,
	g *errgroup.Group,
	cfg *config.Config,
	apiSrv *http.Server,
	metricsSrv *http.Server,
	logger *slog.Logger,
) {
	lc := net.ListenConfig{}

	g.Go(func() error {
		logger.Info("API server listening", slog.String("addr", cfg.API.Addr))
		return listenAndServe(ctx, &lc, apiSrv, cfg.API.Addr)
	})

	g.Go(func() error {
		logger.Info("metrics server listening",
			slog.String("addr", cfg.Metrics.Addr),
			slog.String("path", cfg.Metrics.Path),
		)
		return listenAndServe(ctx, &lc, metricsSrv, cfg.Metrics.Addr)
	})
}

// startDaemonGoroutines launches the systemd watchdog and SIGHUP handler.
func startDaemonGoroutines(
	ctx context.Context,
	g *errgroup.Group,
	configPath string,
	logLevel *slog.LevelVar,
	logger *slog.Logger,
) {
	g.Go(func() error {
		return runWatchdog(ctx, logger)
	})

	sigHUP := make(chan os.Signal, 1)
	signal.Notify(sigHUP, syscall.SIGHUP)
	g.Go(func() error {
		defer signal.Stop(sigHUP)
		handleSIGHUP(ctx, sigHUP, configPath, logLevel, logger)
		return nil
	})
}

// notifyReady sends READY=1 to systemd. It is a no-op outside systemd.
func notifyReady(logger *slog.Logger) {
	sent, err := daemon.SdNotify(false, daemon.SdNotifyReady)
	if err != nil {
		logger.Warn("failed to notify systemd readiness",
			slog.String("error", err.Error()),
		)
		return
	}
	if sent {
		logger.Info("notified systemd: READY")
	}
}

// notifyStopping sends STOPPING=1 to systemd.
func notifyStopping(logger *slog.Logger) {
	sent, err := daemon.SdNotify(false, daemon.SdNotifyStopping)
	if err != nil {
		logger.Warn("failed to notify systemd stopping",
			slog.String("error", err.Error()),
		)
		return
	}
	if sent {
		logger.Info("notified systemd: STOPPING")
	}
}

// runWatchdog sends WATCHDOG=1 keepalives at half the configured
// WatchdogSec until ctx is cancelled.
func runWatchdog(ctx context.Context, logger *slog.Logger) error {
	interval, err := daemon.SdWatchdogEnabled(false)
	if err != nil {
		logger.Warn("failed to check systemd watchdog",
			slog.String("error", err.Error()),
		)
		return nil
	}
	if interval == 0 {
		logger.Debug("systemd watchdog not configured, skipping keepalive")
		return nil
	}

	tickInterval := interval / 2
	logger.Info("systemd watchdog enabled",
		slog.Duration("watchdog_sec", interval),
		slog.Duration("keepalive_interval", tickInterval),
	)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, wdErr := daemon.SdNotify(false, daemon.SdNotifyWatchdog); wdErr != nil {
				logger.Warn("failed to send watchdog keepalive",
					slog.String("error", wdErr.Error()),
				)
			}
		}
	}
}

// handleSIGHUP reloads the configuration on every SIGHUP until ctx is done.
func handleSIGHUP(
	ctx context.Context,
	sigHUP <-chan os.Signal,
	configPath string,
	logLevel *slog.LevelVar,
	logger *slog.Logger,
) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-sigHUP:
			logger.Info("received SIGHUP, reloading configuration")
			reloadConfig(configPath, logLevel, logger)
		}
	}
}

// reloadConfig applies the log level of a freshly loaded configuration.
// Topology and protocol defaults take effect on restart only.
func reloadConfig(configPath string, logLevel *slog.LevelVar, logger *slog.Logger) {
	newCfg, err := loadConfig(configPath)
	if err != nil {
		logger.Error("failed to reload configuration, keeping current settings",
			slog.String("error", err.Error()),
		)
		return
	}

	oldLevel := logLevel.Level()
	newLevel := config.ParseLogLevel(newCfg.Log.Level)
	logLevel.Set(newLevel)

	logger.Info("configuration reloaded",
		slog.String("old_log_level", oldLevel.String()),
		slog.String("new_log_level", newLevel.String()),
	)
}

// gracefulShutdown ends event streams, stops the flight recorder and
// drains the HTTP servers.
func gracefulShutdown(
	ctx context.Context,
	s *sim.Simulation,
	logger *slog.Logger,
	fr *trace.FlightRecorder,
	servers ...*http.Server,
) error {
	logger.Info("initiating graceful shutdown")
	notifyStopping(logger)

	// Closing the hub ends every WatchEvents stream so Shutdown does not
	// wait on them.
	s.Events().Close()

	if fr != nil {
		fr.Stop()
		logger.Debug("flight recorder stopped")
	}

	// The parent context is already cancelled; detach from it so the drain
	// timeout applies.
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	var shutdownErr error
	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			shutdownErr = errors.Join(shutdownErr, fmt.Errorf("shutdown server: %w", err))
		}
	}
	return shutdownErr
}

// startFlightRecorder starts a runtime/trace flight recorder. It returns nil
// if the recorder cannot be started.
func startFlightRecorder(logger *slog.Logger) *trace.FlightRecorder {
	fr := trace.NewFlightRecorder(trace.FlightRecorderConfig{
		MinAge:   flightRecorderMinAge,
		MaxBytes: flightRecorderMaxBytes,
	})

	if err := fr.Start(); err != nil {
		logger.Warn("failed to start flight recorder",
			slog.String("error", err.Error()),
		)
		return nil
	}

	logger.Info("flight recorder started",
		slog.Duration("min_age", flightRecorderMinAge),
		slog.Uint64("max_bytes", flightRecorderMaxBytes),
	)

	return fr
}

func openCapture(cfg config.CaptureConfig, logger *slog.Logger) (*netio.Capture, error) {
	if !cfg.Enabled {
		return nil, nil //nolint:nilnil // capture disabled
	}

	c, err := netio.CreateCapture(cfg.Path, cfg.SnapLen)
	if err != nil {
		return nil, fmt.Errorf("open capture: %w", err)
	}

	logger.Info("frame capture enabled",
		slog.String("path", cfg.Path),
		slog.Int("snaplen", cfg.SnapLen),
	)
	return c, nil
}

func closeCapture(c *netio.Capture, logger *slog.Logger) {
	if c == nil {
		return
	}
	packets := c.Packets()
	if err := c.Close(); err != nil {
		logger.Warn("failed to close capture",
			slog.String("error", err.Error()),
		)
		return
	}
	logger.Info("frame capture closed", slog.Uint64("packets", packets))
}

func listenAndServe(ctx context.Context, lc *net.ListenConfig, srv *http.Server, addr string) error {
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve on %s: %w", addr, err)
	}
	return nil
}

func newMetricsServer(cfg config.MetricsConfig, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(cfg.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func newAPIServer(cfg config.APIConfig, s *sim.Simulation, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()

	path, handler := server.New(s, logger,
		server.LoggingInterceptorOption(logger, s.RunID()),
		server.RecoveryInterceptorOption(logger),
	)
	mux.Handle(path, handler)

	// gRPC health check handler (grpc.health.v1).
	checker := grpchealth.NewStaticChecker(
		grpchealth.HealthV1ServiceName,
		l2simv1connect.SimulatorServiceName,
	)
	mux.Handle(grpchealth.NewHandler(checker))

	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           h2c.NewHandler(mux, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load config from %s: %w", path, err)
		}
		return cfg, nil
	}
	return config.DefaultConfig(), nil
}

func newLoggerWithLevel(cfg config.LogConfig, level *slog.LevelVar) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch cfg.Format {
	case "text":
		handler = slog.NewTextHandler(os.Stdout, opts)
	default:
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
