package engine

// Axis names a face pair the resolver can separate along.
// Declaration order is the tie-break order: when two penetrations are equal,
// the axis declared first wins.
type Axis uint8

const (
	AxisBottomTop Axis = iota // Player bottom vs platform top
	AxisTopBottom             // Player top vs platform bottom
	AxisRightLeft             // Player +X face vs platform -X face
	AxisLeftRight             // Player -X face vs platform +X face
	AxisFrontBack             // Player +Z face vs platform -Z face
	AxisBackFront             // Player -Z face vs platform +Z face

	axisCount
)

// String returns a human-readable name for the axis.
func (a Axis) String() string {
	switch a {
	case AxisBottomTop:
		return "bottom-top"
	case AxisTopBottom:
		return "top-bottom"
	case AxisRightLeft:
		return "right-left"
	case AxisLeftRight:
		return "left-right"
	case AxisFrontBack:
		return "front-back"
	case AxisBackFront:
		return "back-front"
	default:
		return "unknown"
	}
}

// Penetrations holds the absolute overlap along each Axis.
type Penetrations [axisCount]float64

// Penetrate computes the six face-pair penetration magnitudes of player into platform.
func Penetrate(player, platform Box) Penetrations {
	return Penetrations{
		AxisBottomTop: abs(player.Min.Y() - platform.Max.Y()),
		AxisTopBottom: abs(platform.Min.Y() - player.Max.Y()),
		AxisRightLeft: abs(player.Max.X() - platform.Min.X()),
		AxisLeftRight: abs(platform.Max.X() - player.Min.X()),
		AxisFrontBack: abs(player.Max.Z() - platform.Min.Z()),
		AxisBackFront: abs(platform.Max.Z() - player.Min.Z()),
	}
}

// Min returns the axis with the smallest penetration, earliest axis on ties.
func (p Penetrations) Min() Axis {
	best := AxisBottomTop
	for a := AxisBottomTop + 1; a < axisCount; a++ {
		if p[a] < p[best] {
			best = a
		}
	}
	return best
}

// Separate pushes the player out of platform along axis, snapping the
// matching face and zeroing that velocity component. Landing on top sets
// Grounded.
func Separate(p *Player, platform Box, axis Axis) {
	half := p.Size.Mul(0.5)
	switch axis {
	case AxisBottomTop:
		p.Position[1] = platform.Max.Y() + half.Y()
		p.Velocity[1] = 0
		p.Grounded = true
	case AxisTopBottom:
		p.Position[1] = platform.Min.Y() - half.Y()
		p.Velocity[1] = 0
	case AxisRightLeft:
		p.Position[0] = platform.Min.X() - half.X()
		p.Velocity[0] = 0
	case AxisLeftRight:
		p.Position[0] = platform.Max.X() + half.X()
		p.Velocity[0] = 0
	case AxisFrontBack:
		p.Position[2] = platform.Min.Z() - half.Z()
		p.Velocity[2] = 0
	case AxisBackFront:
		p.Position[2] = platform.Max.Z() + half.Z()
		p.Velocity[2] = 0
	}
}

// ResolveOverlap separates the player from platform along the axis of least
// penetration and returns that axis.
func ResolveOverlap(p *Player, platform Box) Axis {
	axis := Penetrate(p.Box(), platform).Min()
	Separate(p, platform, axis)
	return axis
}

// resolveCollisions runs the collision pass for one frame.
//
// Platforms are visited in registry order and resolved one at a time; the
// player box is rebuilt after each correction, so later platforms see the
// corrected position. Type effects and fall damage follow each correction.
func (w *World) resolveCollisions() {
	p := &w.player
	wasGrounded := p.Grounded
	p.Grounded = false
	landed := false

	platforms := w.registry.Platforms()
	for i := range platforms {
		plat := &platforms[i]
		if !plat.Solid() || !p.Box().Intersects(plat.Box) {
			continue
		}

		ResolveOverlap(p, plat.Box)

		if !wasGrounded && !landed && p.Grounded {
			landed = true
			w.land()
		}

		w.applyPlatformEffect(plat)
	}

	if p.Position.Y() < w.params.Damage.OutOfBoundsY {
		w.damage(w.params.Damage.MaxHealth)
	}
}

// applyPlatformEffect runs the per-kind behaviour after positional resolution.
func (w *World) applyPlatformEffect(plat *Platform) {
	switch plat.Kind {
	case KindBreakable:
		if w.registry.Trigger(plat.ID, w.now, &w.decay) {
			w.emit(Event{Kind: EventPlatformTriggered, Platform: plat.ID})
		}
	case KindBounce:
		w.player.Velocity = w.player.Velocity.Add(plat.Impulse())
		w.emit(Event{Kind: EventBounced, Platform: plat.ID, Value: plat.BounceForce})
	case KindGoal:
		if w.clock.Succeed(w.now) {
			w.emit(Event{Kind: EventRunSucceeded, Platform: plat.ID, Value: w.clock.FinalTime()})
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
