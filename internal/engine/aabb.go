package engine

// Box is an axis-aligned bounding box.
type Box struct {
	Min Vec3
	Max Vec3
}

// BoxFromCenter builds a box of the given size centred on center.
func BoxFromCenter(center, size Vec3) Box {
	half := size.Mul(0.5)
	return Box{Min: center.Sub(half), Max: center.Add(half)}
}

// Center returns the centre point of the box.
func (b Box) Center() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent of the box along each axis.
func (b Box) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Intersects reports whether the two boxes overlap.
// Touching faces count as an overlap, so a body resting exactly on a
// surface keeps reporting contact with it.
func (b Box) Intersects(o Box) bool {
	if b.Max.X() < o.Min.X() || b.Min.X() > o.Max.X() {
		return false
	}
	if b.Max.Y() < o.Min.Y() || b.Min.Y() > o.Max.Y() {
		return false
	}
	if b.Max.Z() < o.Min.Z() || b.Min.Z() > o.Max.Z() {
		return false
	}
	return true
}
