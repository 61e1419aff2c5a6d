// Package commands implements the l2simctl CLI commands.
package commands

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	l2simv1 "github.com/dantte-lp/l2sim/pkg/l2simpb/l2sim/v1"
)

const (
	formatJSON  = "json"
	formatTable = "table"
	valueNA     = "N/A"
)

// errUnsupportedFormat is returned when the requested output format is not supported.
var errUnsupportedFormat = errors.New("unsupported output format")

var (
	// indentJSON renders command output. Field names follow the .proto
	// file.
	indentJSON = protojson.MarshalOptions{Multiline: true, Indent: "  ", UseProtoNames: true}

	// compactJSON renders one streamed message per line.
	compactJSON = protojson.MarshalOptions{UseProtoNames: true}
)

// render dispatches to the table formatter or marshals m as indented JSON.
func render(m proto.Message, format string, table func() (string, error)) (string, error) {
	switch format {
	case formatJSON:
		data, err := indentJSON.Marshal(m)
		if err != nil {
			return "", fmt.Errorf("marshal to JSON: %w", err)
		}
		return string(data) + "\n", nil
	case formatTable:
		return table()
	default:
		return "", fmt.Errorf("%w: %q", errUnsupportedFormat, format)
	}
}

// formatDevices renders a device listing in the requested format.
func formatDevices(resp *l2simv1.ListDevicesResponse, format string) (string, error) {
	return render(resp, format, func() (string, error) {
		return formatDevicesTable(resp)
	})
}

// formatBridge renders one STP bridge view in the requested format.
func formatBridge(b *l2simv1.Bridge, format string) (string, error) {
	return render(b, format, func() (string, error) {
		return formatBridgeDetail(b)
	})
}

// formatNeighbors renders a CDP neighbor table in the requested format.
func formatNeighbors(resp *l2simv1.ListNeighborsResponse, format string) (string, error) {
	return render(resp, format, func() (string, error) {
		return formatNeighborsTable(resp.GetNeighbors())
	})
}

// formatLoopReport renders a loop verification result.
func formatLoopReport(r *l2simv1.VerifyLoopFreeResponse, format string) (string, error) {
	return render(r, format, func() (string, error) {
		return formatLoopReportTable(r), nil
	})
}

// formatWatch renders one WatchEvents message on a single line (table) or
// as compact JSON. The first message of a stream carries no event and is
// shown as a header.
func formatWatch(msg *l2simv1.WatchEventsResponse, format string) (string, error) {
	switch format {
	case formatJSON:
		data, err := compactJSON.Marshal(msg)
		if err != nil {
			return "", fmt.Errorf("marshal event to JSON: %w", err)
		}
		return string(data), nil
	case formatTable:
		if msg.GetEvent() == nil {
			return "--- watching at " + formatTime(msg.GetNow()) + " ---", nil
		}
		line := formatEventLine(msg.GetEvent())
		if msg.GetCurrent() {
			line += "  (current)"
		}
		return line, nil
	default:
		return "", fmt.Errorf("%w: %q", errUnsupportedFormat, format)
	}
}

// --- Table formatters ---

func formatDevicesTable(resp *l2simv1.ListDevicesResponse) (string, error) {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Run %s  time %s  steps %s\n\n",
		resp.GetRunId(), formatTime(resp.GetNow()), humanize.Comma(int64(resp.GetSteps())))

	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tPLATFORM\tIFACES\tSTP\tROOT\tCDP\tNEIGHBORS")

	for _, d := range resp.GetDevices() {
		root := valueNA
		if d.StpActive {
			root = d.RootId
			if d.IsRoot {
				root += " (self)"
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%d\n",
			d.Name,
			d.Kind,
			orNA(d.Platform),
			d.Interfaces,
			onOff(d.StpActive),
			root,
			onOff(d.CdpActive),
			d.CdpNeighbors,
		)
	}

	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("flush tabwriter: %w", err)
	}

	return buf.String(), nil
}

func formatBridgeDetail(b *l2simv1.Bridge) (string, error) {
	var buf strings.Builder
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "Device:\t%s\n", b.Device)
	fmt.Fprintf(w, "Running:\t%t\n", b.Running)
	fmt.Fprintf(w, "Bridge ID:\t%s\n", b.BridgeId)
	fmt.Fprintf(w, "Root ID:\t%s\n", b.RootId)
	if b.IsRoot {
		fmt.Fprintf(w, "Root Bridge:\tthis bridge\n")
	} else {
		fmt.Fprintf(w, "Root Port:\t%s\n", b.RootPort)
		fmt.Fprintf(w, "Root Path Cost:\t%d\n", b.RootPathCost)
	}
	fmt.Fprintf(w, "Timers:\thello %s  max-age %s  forward-delay %s\n",
		b.GetHelloTime().AsDuration(), b.GetMaxAge().AsDuration(), b.GetForwardDelay().AsDuration())
	fmt.Fprintf(w, "Topology Changes:\t%d\n", b.TopologyChanges)

	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("flush tabwriter: %w", err)
	}

	buf.WriteString("\n")
	w = tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PORT\tID\tROLE\tSTATE\tCOST\tDESIGNATED-BRIDGE\tSENT\tRECEIVED")

	for _, p := range b.Ports {
		name := p.Name
		if p.Edge {
			name += " (edge)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			name,
			p.Id,
			p.Role,
			p.State,
			p.PathCost,
			p.DesignatedBridge,
			humanize.Comma(int64(p.BpdusSent)),
			humanize.Comma(int64(p.BpdusReceived)),
		)
	}

	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("flush tabwriter: %w", err)
	}

	return buf.String(), nil
}

func formatNeighborsTable(neighbors []*l2simv1.Neighbor) (string, error) {
	var buf strings.Builder
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DEVICE-ID\tLOCAL-INTF\tHOLDTIME\tCAPABILITY\tPLATFORM\tPORT-ID\tADDRESS")

	for _, n := range neighbors {
		addr := valueNA
		if len(n.Addresses) > 0 {
			addr = strings.Join(n.Addresses, ",")
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			n.DeviceId,
			n.LocalInterface,
			int(n.GetHoldRemaining().AsDuration()/time.Second),
			capabilityLetters(n.Capabilities),
			orNA(n.Platform),
			n.PortId,
			addr,
		)
	}

	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("flush tabwriter: %w", err)
	}

	return buf.String(), nil
}

func formatLoopReportTable(r *l2simv1.VerifyLoopFreeResponse) string {
	var buf strings.Builder
	if r.Loop {
		fmt.Fprintf(&buf, "LOOP: %d closing links\n", len(r.ClosingLinks))
		for _, l := range r.ClosingLinks {
			fmt.Fprintf(&buf, "  %s\n", l)
		}
	} else {
		buf.WriteString("loop free\n")
	}
	fmt.Fprintf(&buf, "forwarding links: %d  components: %d\n", r.ForwardingLinks, r.Components)
	return buf.String()
}

func formatEventLine(ev *l2simv1.Event) string {
	if ev == nil {
		return valueNA
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s %s %s", formatTime(ev.GetTime()), ev.Device, ev.Protocol, ev.Type)
	if ev.Interface != "" {
		fmt.Fprintf(&b, "  intf=%s", ev.Interface)
	}
	if ev.Peer != "" {
		fmt.Fprintf(&b, "  peer=%s", ev.Peer)
	}
	if ev.From != "" || ev.To != "" {
		fmt.Fprintf(&b, "  %s->%s", ev.From, ev.To)
	}
	if ev.Detail != "" {
		fmt.Fprintf(&b, "  %s", ev.Detail)
	}
	return b.String()
}

// --- Helpers ---

// capabilityCodes maps capability names to the letter codes of the
// `show cdp neighbors` legend.
var capabilityCodes = map[string]string{
	"router":              "R",
	"trans-bridge":        "T",
	"source-route-bridge": "B",
	"switch":              "S",
	"host":                "H",
	"igmp":                "I",
	"repeater":            "r",
}

func capabilityLetters(names []string) string {
	if len(names) == 0 {
		return valueNA
	}
	letters := make([]string, 0, len(names))
	for _, n := range names {
		if c, ok := capabilityCodes[n]; ok {
			letters = append(letters, c)
			continue
		}
		letters = append(letters, n)
	}
	return strings.Join(letters, " ")
}

func formatTime(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return valueNA
	}
	return ts.AsTime().Format(time.RFC3339)
}

func orNA(s string) string {
	if s == "" {
		return valueNA
	}
	return s
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
