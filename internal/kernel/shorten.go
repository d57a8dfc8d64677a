package kernel

// Sub returns the part of the chain between fractions t0 and t1 of its
// arc length, 0 <= t0 <= t1 <= 1. Segments outside the range are dropped
// and the two boundary segments are cut at the exact position. The full
// range gives back an unchanged copy. An empty range gives a single null
// segment at that position.
func (c Chain) Sub(t0, t1 float64) Chain {
	if len(c) == 0 {
		return nil
	}
	if t0 <= 0 && t1 >= 1 {
		return c.Clone()
	}
	total := c.Length()
	if t1 <= t0 || total == 0 {
		p := c.RelativePoint(t0)
		return Chain{{p, p}}
	}

	s0, s1 := t0*total, t1*total
	var out Chain
	var acc float64
	for _, seg := range c {
		l := seg.Length()
		start, end := acc, acc+l
		acc = end
		if l == 0 || end <= s0 {
			continue
		}
		if start >= s1 {
			break
		}
		a, b := 0.0, 1.0
		if s0 > start {
			a = (s0 - start) / l
		}
		if s1 < end {
			b = (s1 - start) / l
		}
		if b <= a {
			continue
		}
		out = append(out, Segment{seg.At(a), seg.At(b)})
	}
	if len(out) == 0 {
		p := c.RelativePoint(t0)
		return Chain{{p, p}}
	}
	if t1 >= 1 {
		out[len(out)-1].End = c.End()
	}
	return out
}
