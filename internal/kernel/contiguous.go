package kernel

import "sort"

// Region is a stretch of a chain, given by arc lengths from its start and
// the matching boundary points. On a closed chain a region may wrap past
// the start, in which case S1 exceeds the chain length.
type Region struct {
	S0, S1 float64
	P0, P1 Point
}

func (r Region) Length() float64 { return r.S1 - r.S0 }

// ContiguousRegions returns the maximal stretches of a along which b runs
// collinearly, in order along a. Stretches not longer than Epsilon are
// dropped. The result does not depend on how either chain is split into
// segments.
func ContiguousRegions(a, b Chain) []Region {
	if !BoundsOverlap(a, b) {
		return nil
	}
	cum := a.cumulative()
	var pieces []Region
	for i, sa := range a {
		l := sa.Length()
		for _, sb := range b {
			ov, ok := CollinearOverlap(sa, sb)
			if !ok {
				continue
			}
			pieces = append(pieces, Region{
				S0: cum[i] + ov.T0*l,
				S1: cum[i] + ov.T1*l,
				P0: ov.P0,
				P1: ov.P1,
			})
		}
	}
	if len(pieces) == 0 {
		return nil
	}

	sort.Slice(pieces, func(i, j int) bool { return pieces[i].S0 < pieces[j].S0 })
	merged := []Region{pieces[0]}
	for _, p := range pieces[1:] {
		last := &merged[len(merged)-1]
		if p.S0 <= last.S1+Epsilon {
			if p.S1 > last.S1 {
				last.S1, last.P1 = p.S1, p.P1
			}
			continue
		}
		merged = append(merged, p)
	}

	if total := a.Length(); a.IsClosed() && len(merged) > 1 {
		first, last := merged[0], merged[len(merged)-1]
		if first.S0 <= Epsilon && last.S1 >= total-Epsilon {
			last.S1, last.P1 = total+first.S1, first.P1
			merged = append(merged[1:len(merged)-1], last)
		}
	}

	out := merged[:0]
	for _, r := range merged {
		if r.Length() > Epsilon {
			out = append(out, r)
		}
	}
	return out
}

// RegionAt returns the contiguous region of a and b holding x.
func RegionAt(a, b Chain, x Point) (Region, bool) {
	if !a.Contains(x) || !b.Contains(x) {
		return Region{}, false
	}
	s := a.ArcPosition(x)
	total := a.Length()
	for _, r := range ContiguousRegions(a, b) {
		if s >= r.S0-Epsilon && s <= r.S1+Epsilon {
			return r, true
		}
		if r.S1 > total && s+total <= r.S1+Epsilon {
			return r, true
		}
	}
	return Region{}, false
}

// AutoContiguous reports whether the chain runs back over itself along a
// stretch longer than Epsilon.
func AutoContiguous(c Chain) bool {
	for i := range c {
		for j := i + 1; j < len(c); j++ {
			ov, ok := CollinearOverlap(c[i], c[j])
			if ok && (ov.T1-ov.T0)*c[i].Length() > Epsilon {
				return true
			}
		}
	}
	return false
}
