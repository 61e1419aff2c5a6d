package stp

// ReferenceBandwidth is the bandwidth, in kbit/s, that yields a path cost
// of 1 when a port has an explicit bandwidth (20 Gbit/s).
const ReferenceBandwidth = 20_000_000

// MaxPathCost is the cost of ports slower than a T1 line.
const MaxPathCost = 65535

// costTiers maps nominal speeds (bit/s) to 802.1D short path costs, fastest
// first. The first tier whose speed the port reaches wins.
//
//nolint:gochecknoglobals // lookup table.
var costTiers = []struct {
	speed uint64
	cost  uint32
}{
	{10_000_000_000, 2},
	{1_000_000_000, 4},
	{100_000_000, 19},
	{10_000_000, 100},
	{1_544_000, 647},
}

// PathCost returns the default STP cost of a port.
//
// An explicit bandwidth (kbit/s) gives max(1, ReferenceBandwidth/bandwidth).
// Otherwise the nominal speed (bit/s) is mapped through the 802.1D tiers;
// anything slower than T1, including an unknown speed, costs MaxPathCost.
func PathCost(speed, bandwidth uint64) uint32 {
	if bandwidth > 0 {
		c := uint64(ReferenceBandwidth) / bandwidth
		if c < 1 {
			return 1
		}
		return uint32(c) //nolint:gosec // G115: c <= ReferenceBandwidth
	}

	for _, t := range costTiers {
		if speed >= t.speed {
			return t.cost
		}
	}
	return MaxPathCost
}
