package sim

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/iti/evt/evtm"
	"github.com/iti/evt/vrtime"
)

// virtualDevice is the event context of one device in a virtual run.
type virtualDevice struct {
	ctx   context.Context
	sim   *Simulation
	node  *node
	epoch time.Time
	step  float64
	limit float64
}

// VirtualReport summarizes a RunVirtual call.
type VirtualReport struct {
	// Start and End bound the simulated interval.
	Start time.Time
	End   time.Time

	// Ticks is the number of device ticks executed.
	Ticks uint64

	// Offsets are the per-device start offsets drawn for this run.
	Offsets map[string]time.Duration
}

// RunVirtual simulates duration of protocol activity without waiting for
// the wall clock. Every device first ticks at a pseudo-random offset in
// [0, tick) drawn from its own random stream and then every tick. Events
// execute one at a time in simulated-time order, so a run is reproducible
// for a given set of streams. Cancelling ctx stops rescheduling.
//
// RunVirtual must not run concurrently with Step or Run.
func (s *Simulation) RunVirtual(ctx context.Context, epoch time.Time, duration, tick time.Duration) (VirtualReport, error) {
	if duration <= 0 || tick <= 0 {
		return VirtualReport{}, fmt.Errorf("virtual run of %s every %s: %w", duration, tick, ErrInvalidInterval)
	}

	report := VirtualReport{
		Start:   epoch,
		Offsets: make(map[string]time.Duration),
	}

	mgr := evtm.New()
	step := tick.Seconds()
	limit := duration.Seconds()

	for _, n := range s.sortedNodes() {
		offset := n.rng.RandU01() * step
		report.Offsets[n.device.Name()] = secondsToDuration(offset)

		mgr.Schedule(&virtualDevice{
			ctx:   ctx,
			sim:   s,
			node:  n,
			epoch: epoch,
			step:  step,
			limit: limit,
		}, &report, tickVirtual, vrtime.SecondsToTime(offset))
	}

	s.logger.Info("virtual simulation started",
		slog.Duration("duration", duration),
		slog.Duration("tick", tick),
		slog.Int("devices", len(report.Offsets)),
	)

	mgr.Run(limit)

	report.End = s.Now()
	s.logger.Info("virtual simulation finished",
		slog.Uint64("ticks", report.Ticks),
		slog.Time("end", report.End),
	)

	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("virtual run: %w", err)
	}
	return report, nil
}

// tickVirtual ticks one device and schedules its next tick while the run
// limit allows.
func tickVirtual(mgr *evtm.EventManager, cxt any, data any) any {
	vd, _ := cxt.(*virtualDevice)
	report, _ := data.(*VirtualReport)
	if vd == nil || vd.ctx.Err() != nil {
		return nil
	}

	nowSec := mgr.CurrentSeconds()
	now := vd.epoch.Add(secondsToDuration(nowSec))

	// A device removed mid-run stops rescheduling itself.
	if _, err := vd.sim.lookup(vd.node.device.Name()); err != nil {
		return nil
	}

	vd.node.runner.Tick(now)
	vd.sim.advance(now)
	if report != nil {
		report.Ticks++
	}

	if nowSec+vd.step <= vd.limit {
		mgr.Schedule(vd, data, tickVirtual, vrtime.SecondsToTime(vd.step))
	}
	return nil
}

// secondsToDuration converts virtual seconds to a Duration rounded to the
// microsecond, absorbing float accumulation error.
func secondsToDuration(sec float64) time.Duration {
	return time.Duration(math.Round(sec*1e6)) * time.Microsecond
}
