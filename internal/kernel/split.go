package kernel

// SplitAt inserts a vertex at every point lying on the chain, cutting the
// first segment that holds it. Points matching an existing vertex are
// skipped, so repeated calls with the same points insert nothing new.
// It returns the new chain and the number of vertices inserted.
func (c Chain) SplitAt(pts []Point) (Chain, int) {
	out := c.Clone()
	var n int
	for _, p := range pts {
		if out.IsVertex(p) {
			continue
		}
		for i, s := range out {
			if !s.Contains(p) {
				continue
			}
			split := make(Chain, 0, len(out)+1)
			split = append(split, out[:i]...)
			split = append(split, Segment{s.Start, p}, Segment{p, s.End})
			split = append(split, out[i+1:]...)
			out = split
			n++
			break
		}
	}
	return out, n
}

// RemoveVertex drops vertex i of a connected chain, that is the start of
// segment i or the end point when i == len(c), joining the two segments
// around it. Removing either extremity drops the first or last segment.
func (c Chain) RemoveVertex(i int) Chain {
	if i < 0 || i > len(c) || len(c) == 0 {
		return c.Clone()
	}
	out := make(Chain, 0, len(c))
	switch i {
	case 0:
		out = append(out, c[1:]...)
	case len(c):
		out = append(out, c[:len(c)-1]...)
	default:
		out = append(out, c[:i-1]...)
		out = append(out, Segment{c[i-1].Start, c[i].End})
		out = append(out, c[i+1:]...)
	}
	return out
}
