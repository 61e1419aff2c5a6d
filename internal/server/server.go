// Package server implements the ConnectRPC server for the simulation
// daemon.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dantte-lp/l2sim/internal/cdp"
	"github.com/dantte-lp/l2sim/internal/protocol"
	"github.com/dantte-lp/l2sim/internal/sim"
	"github.com/dantte-lp/l2sim/internal/stp"
	"github.com/dantte-lp/l2sim/internal/topology"
	l2simv1 "github.com/dantte-lp/l2sim/pkg/l2simpb/l2sim/v1"
	"github.com/dantte-lp/l2sim/pkg/l2simpb/l2sim/v1/l2simv1connect"
)

// Simulator is the part of sim.Simulation the API serves.
type Simulator interface {
	RunID() uuid.UUID
	Now() time.Time
	Steps() uint64
	Devices() []sim.DeviceSummary
	SpanningTree(device string) (stp.Status, error)
	Neighbors(device string) ([]cdp.NeighborStatus, error)
	SetInterfaceShutdown(device, iface string, shutdown bool) error
	SetProtocolEnabled(device string, kind protocol.Kind, enabled bool) error
	VerifyLoopFree() topology.LoopReport
	Subscribe(buffer int) (<-chan protocol.Event, func())
}

// SimServer implements l2simv1connect.SimulatorServiceHandler.
//
// Each RPC delegates to the Simulator. The server is a thin adapter
// between the protobuf API and the internal domain. Field constraints
// are checked by ValidationInterceptor before a handler runs.
type SimServer struct {
	sim    Simulator
	logger *slog.Logger
}

// verify interface compliance at compile time.
var (
	_ l2simv1connect.SimulatorServiceHandler = (*SimServer)(nil)
	_ Simulator                              = (*sim.Simulation)(nil)
)

// New creates a new SimServer and returns the HTTP handler and path.
// Request validation always runs inside the interceptors given in opts.
func New(s Simulator, logger *slog.Logger, opts ...connect.HandlerOption) (string, http.Handler) {
	srv := &SimServer{
		sim:    s,
		logger: logger.With(slog.String("component", "server")),
	}

	handlerOpts := make([]connect.HandlerOption, 0, len(opts)+1)
	handlerOpts = append(handlerOpts, opts...)
	handlerOpts = append(handlerOpts, ValidationInterceptorOption())

	return l2simv1connect.NewSimulatorServiceHandler(srv, handlerOpts...)
}

// ListDevices returns every simulated device.
func (s *SimServer) ListDevices(
	_ context.Context,
	_ *l2simv1.ListDevicesRequest,
) (*l2simv1.ListDevicesResponse, error) {
	summaries := s.sim.Devices()
	devices := make([]*l2simv1.Device, 0, len(summaries))
	for _, d := range summaries {
		devices = append(devices, deviceToProto(d))
	}

	return &l2simv1.ListDevicesResponse{
		RunId:   s.sim.RunID().String(),
		Now:     timestamppb.New(s.sim.Now()),
		Steps:   s.sim.Steps(),
		Devices: devices,
	}, nil
}

// GetSpanningTree returns the STP view of one device.
func (s *SimServer) GetSpanningTree(
	_ context.Context,
	req *l2simv1.GetSpanningTreeRequest,
) (*l2simv1.GetSpanningTreeResponse, error) {
	st, err := s.sim.SpanningTree(req.GetDevice())
	if err != nil {
		return nil, mapError(err)
	}

	return &l2simv1.GetSpanningTreeResponse{
		Bridge: bridgeToProto(st),
	}, nil
}

// ListNeighbors returns the CDP neighbor table of one device.
func (s *SimServer) ListNeighbors(
	_ context.Context,
	req *l2simv1.ListNeighborsRequest,
) (*l2simv1.ListNeighborsResponse, error) {
	table, err := s.sim.Neighbors(req.GetDevice())
	if err != nil {
		return nil, mapError(err)
	}

	neighbors := make([]*l2simv1.Neighbor, 0, len(table))
	for _, n := range table {
		neighbors = append(neighbors, neighborToProto(n))
	}

	return &l2simv1.ListNeighborsResponse{Neighbors: neighbors}, nil
}

// SetInterfaceState shuts an interface down or brings it back.
func (s *SimServer) SetInterfaceState(
	ctx context.Context,
	req *l2simv1.SetInterfaceStateRequest,
) (*l2simv1.SetInterfaceStateResponse, error) {
	if err := s.sim.SetInterfaceShutdown(req.GetDevice(), req.GetInterface(), req.GetShutdown()); err != nil {
		return nil, mapError(err)
	}

	s.logger.InfoContext(ctx, "interface state set via API",
		slog.String("device", req.GetDevice()),
		slog.String("interface", req.GetInterface()),
		slog.Bool("shutdown", req.GetShutdown()),
	)

	return &l2simv1.SetInterfaceStateResponse{}, nil
}

// SetProtocolEnabled enables or disables STP or CDP on a device.
func (s *SimServer) SetProtocolEnabled(
	ctx context.Context,
	req *l2simv1.SetProtocolEnabledRequest,
) (*l2simv1.SetProtocolEnabledResponse, error) {
	kind, err := protocol.ParseKind(req.GetProtocol())
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.sim.SetProtocolEnabled(req.GetDevice(), kind, req.GetEnabled()); err != nil {
		return nil, mapError(err)
	}

	s.logger.InfoContext(ctx, "protocol enabled state set via API",
		slog.String("device", req.GetDevice()),
		slog.String("protocol", kind.String()),
		slog.Bool("enabled", req.GetEnabled()),
	)

	return &l2simv1.SetProtocolEnabledResponse{}, nil
}

// VerifyLoopFree checks the forwarding topology for loops.
func (s *SimServer) VerifyLoopFree(
	_ context.Context,
	_ *l2simv1.VerifyLoopFreeRequest,
) (*l2simv1.VerifyLoopFreeResponse, error) {
	r := s.sim.VerifyLoopFree()

	resp := &l2simv1.VerifyLoopFreeResponse{
		Loop:            r.Loop,
		ForwardingLinks: int32(r.ForwardingLinks),
		Components:      int32(r.Components),
	}
	for _, l := range r.ClosingLinks {
		resp.ClosingLinks = append(resp.ClosingLinks, l.String())
	}

	return resp, nil
}

// WatchEvents streams protocol events (server-side streaming) until the
// client disconnects or the simulation shuts down.
//
// The first message carries only the simulated time so the client sees
// response headers as soon as it is subscribed. With include_current,
// the current root and neighbor state follows as events flagged current.
func (s *SimServer) WatchEvents(
	ctx context.Context,
	req *l2simv1.WatchEventsRequest,
	stream *connect.ServerStream[l2simv1.WatchEventsResponse],
) error {
	var kind protocol.Kind
	if req.GetProtocol() != "" {
		k, err := protocol.ParseKind(req.GetProtocol())
		if err != nil {
			return connect.NewError(connect.CodeInvalidArgument, err)
		}
		kind = k
	}
	match := func(ev protocol.Event) bool {
		if req.GetDevice() != "" && ev.Device != req.GetDevice() {
			return false
		}
		return kind == 0 || ev.Protocol == kind
	}

	// Subscribe before the snapshot so no change between the two is lost.
	events, cancel := s.sim.Subscribe(sim.DefaultSubscriberBuffer)
	defer cancel()

	s.logger.DebugContext(ctx, "event watcher attached",
		slog.String("device", req.GetDevice()),
		slog.String("protocol", req.GetProtocol()),
		slog.Bool("include_current", req.GetIncludeCurrent()),
	)

	now := s.sim.Now()
	if err := stream.Send(&l2simv1.WatchEventsResponse{Now: timestamppb.New(now)}); err != nil {
		return err
	}

	if req.GetIncludeCurrent() {
		for _, ev := range s.currentEvents(now) {
			if !match(ev) {
				continue
			}
			if err := stream.Send(&l2simv1.WatchEventsResponse{
				Event:   eventToProto(ev),
				Current: true,
				Now:     timestamppb.New(now),
			}); err != nil {
				return err
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !match(ev) {
				continue
			}
			if err := stream.Send(&l2simv1.WatchEventsResponse{
				Event: eventToProto(ev),
				Now:   timestamppb.New(s.sim.Now()),
			}); err != nil {
				return err
			}
		}
	}
}

// currentEvents describes the present protocol state as the events that
// would have produced it: the elected root and root port of every running
// bridge and one NeighborUp per CDP table entry.
func (s *SimServer) currentEvents(now time.Time) []protocol.Event {
	var out []protocol.Event

	for _, d := range s.sim.Devices() {
		if d.STPActive {
			if st, err := s.sim.SpanningTree(d.Name); err == nil && st.Running {
				out = append(out, protocol.Event{
					Time:     now,
					Device:   d.Name,
					Protocol: protocol.KindSTP,
					Type:     protocol.EventRootChanged,
					To:       st.RootID.String(),
				})
				if st.RootPort != "" {
					out = append(out, protocol.Event{
						Time:      now,
						Device:    d.Name,
						Protocol:  protocol.KindSTP,
						Type:      protocol.EventRootPortChanged,
						Interface: st.RootPort,
						To:        st.RootPort,
					})
				}
			}
		}

		if d.CDPActive {
			table, err := s.sim.Neighbors(d.Name)
			if err != nil {
				continue
			}
			for _, n := range table {
				out = append(out, protocol.Event{
					Time:      now,
					Device:    d.Name,
					Protocol:  protocol.KindCDP,
					Type:      protocol.EventNeighborUp,
					Interface: n.LocalInterface,
					Peer:      n.DeviceID,
					Detail:    n.PortID,
				})
			}
		}
	}

	return out
}

// mapError converts domain errors to ConnectRPC codes.
func mapError(err error) error {
	switch {
	case errors.Is(err, sim.ErrDeviceNotFound), errors.Is(err, topology.ErrInterfaceNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, protocol.ErrUnknownKind):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// -------------------------------------------------------------------------
// Conversions
// -------------------------------------------------------------------------

func deviceToProto(d sim.DeviceSummary) *l2simv1.Device {
	return &l2simv1.Device{
		Name:         d.Name,
		Kind:         d.Kind,
		Platform:     d.Platform,
		Version:      d.Version,
		Interfaces:   int32(d.Interfaces),
		StpActive:    d.STPActive,
		RootId:       d.RootID,
		IsRoot:       d.IsRoot,
		CdpActive:    d.CDPActive,
		CdpNeighbors: int32(d.CDPNeighbors),
	}
}

func bridgeToProto(st stp.Status) *l2simv1.Bridge {
	b := &l2simv1.Bridge{
		Device:          st.Device,
		Running:         st.Running,
		BridgeId:        st.BridgeID.String(),
		RootId:          st.RootID.String(),
		RootPathCost:    st.RootPathCost,
		RootPort:        st.RootPort,
		IsRoot:          st.IsRoot,
		HelloTime:       durationpb.New(st.HelloTime),
		MaxAge:          durationpb.New(st.MaxAge),
		ForwardDelay:    durationpb.New(st.ForwardDelay),
		TopologyChanges: st.TopologyChanges,
		Ports:           make([]*l2simv1.Port, 0, len(st.Ports)),
	}
	for _, p := range st.Ports {
		b.Ports = append(b.Ports, &l2simv1.Port{
			Name:             p.Name,
			Id:               p.ID.String(),
			State:            p.State.String(),
			Role:             p.Role.String(),
			PathCost:         p.PathCost,
			Edge:             p.Edge,
			DesignatedBridge: p.DesignatedBridge.String(),
			DesignatedPort:   p.DesignatedPort.String(),
			BpdusSent:        p.Stats.BPDUsSent,
			BpdusReceived:    p.Stats.BPDUsReceived,
		})
	}
	return b
}

func neighborToProto(n cdp.NeighborStatus) *l2simv1.Neighbor {
	out := &l2simv1.Neighbor{
		LocalInterface: n.LocalInterface,
		DeviceId:       n.DeviceID,
		PortId:         n.PortID,
		Capabilities:   n.Capabilities.Names(),
		Platform:       n.Platform,
		Software:       n.Software,
		VtpDomain:      n.VTPDomain,
		NativeVlan:     uint32(n.NativeVLAN),
		Duplex:         n.Duplex.String(),
		Mtu:            n.MTU,
		HoldRemaining:  durationpb.New(n.HoldRemaining),
	}
	if !n.LastSeen.IsZero() {
		out.LastSeen = timestamppb.New(n.LastSeen)
	}
	for _, a := range n.Addresses {
		out.Addresses = append(out.Addresses, a.String())
	}
	return out
}

func eventToProto(ev protocol.Event) *l2simv1.Event {
	return &l2simv1.Event{
		Time:      timestamppb.New(ev.Time),
		Device:    ev.Device,
		Protocol:  ev.Protocol.String(),
		Type:      ev.Type.String(),
		Interface: ev.Interface,
		Peer:      ev.Peer,
		From:      ev.From,
		To:        ev.To,
		Detail:    ev.Detail,
	}
}
