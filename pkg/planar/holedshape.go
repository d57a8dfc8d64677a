package planar

// HoledShape is a shape with zero or more holes cut out of it. A point is
// inside when it is inside the outer ring and outside every hole; a point
// on any ring is On.
//
// Holes are expected to lie inside the outer ring without overlapping
// each other. This is not checked.
type HoledShape struct {
	region
}

// NewHoledShape creates a holed shape from the outer ring of base. Holes
// of base are kept.
func NewHoledShape(base Shape) *HoledShape {
	rings := base.rings()
	h := &HoledShape{region{sys: base.CoordSys(), outer: rings[0].Clone()}}
	for _, r := range rings[1:] {
		h.holes = append(h.holes, r.Clone())
	}
	return h
}

// AddHole cuts the outer ring of hole out of the shape. It is converted
// into the system of h.
func (h *HoledShape) AddHole(hole Shape) error {
	c, err := chainIn(hole.Boundary(), h.sys)
	if err != nil {
		return err
	}
	if err := closedRing("hole", c); err != nil {
		return err
	}
	h.holes = append(h.holes, c)
	return nil
}

// NumberOfHoles returns the number of holes.
func (h *HoledShape) NumberOfHoles() int { return len(h.holes) }

// Clone returns an independent copy.
func (h *HoledShape) Clone() *HoledShape {
	return NewHoledShape(h)
}
