package topology

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// LoopReport is the result of a forwarding-loop check.
type LoopReport struct {
	// Loop reports whether the forwarding links contain a cycle.
	Loop bool

	// ClosingLinks are the links that closed a cycle, in link order.
	ClosingLinks []Link

	// ForwardingLinks is the number of links forwarding on both ends.
	ForwardingLinks int

	// Components is the number of connected forwarding islands, counting
	// isolated devices.
	Components int
}

// ForwardingLoops builds the graph of devices joined by links whose two
// endpoints are forwarding and reports whether it contains a cycle.
// Parallel links and self links count as cycles.
func (n *Network) ForwardingLoops(forwarding func(Endpoint) bool) LoopReport {
	devices := n.Devices()
	links := n.Links()

	ids := make(map[string]int64, len(devices))
	g := simple.NewUndirectedGraph()
	for i, d := range devices {
		ids[d.Name()] = int64(i)
		g.AddNode(simple.Node(int64(i)))
	}

	var report LoopReport
	for _, l := range links {
		if !forwarding(l.A) || !forwarding(l.B) {
			continue
		}
		a, okA := ids[l.A.Device]
		b, okB := ids[l.B.Device]
		if !okA || !okB {
			continue
		}
		report.ForwardingLinks++

		// A path that already joins both ends means this link closes a loop.
		if a == b || topo.PathExistsIn(g, simple.Node(a), simple.Node(b)) {
			report.Loop = true
			report.ClosingLinks = append(report.ClosingLinks, l)
			continue
		}
		g.SetEdge(g.NewEdge(simple.Node(a), simple.Node(b)))
	}

	report.Components = len(topo.ConnectedComponents(g))
	return report
}
