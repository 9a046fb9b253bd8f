package engine

// PlatformKind is the behavioural type of a platform.
type PlatformKind uint8

const (
	KindSolid PlatformKind = iota
	KindBreakable
	KindBounce
	KindGoal
)

// String returns a human-readable name for the kind.
func (k PlatformKind) String() string {
	switch k {
	case KindSolid:
		return "solid"
	case KindBreakable:
		return "breakable"
	case KindBounce:
		return "bounce"
	case KindGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// BreakState is the lifecycle of a breakable platform.
// It only moves forward (Intact -> Triggered -> Broken) until the run restarts.
type BreakState uint8

const (
	BreakIntact BreakState = iota
	BreakTriggered
	BreakBroken
)

// String returns a human-readable name for the state.
func (s BreakState) String() string {
	switch s {
	case BreakIntact:
		return "intact"
	case BreakTriggered:
		return "triggered"
	case BreakBroken:
		return "broken"
	default:
		return "unknown"
	}
}

// Platform is a static box the player can collide with.
// Geometry never changes after generation; only the breakable state does.
type Platform struct {
	ID   int
	Kind PlatformKind
	Box  Box

	// Floor marks the oversized catch-all platform far below the course.
	Floor bool

	// Breakable payload.
	Break       BreakState
	TriggeredAt float64
	BreakDelay  float64
	decayToken  Token

	// Bounce payload.
	BounceDir   Vec3
	BounceForce float64
}

// Solid reports whether the platform still takes part in collision.
func (p *Platform) Solid() bool {
	return !(p.Kind == KindBreakable && p.Break == BreakBroken)
}

// Visible reports whether the presentation layer should draw the platform.
func (p *Platform) Visible() bool {
	return p.Solid()
}

// Impulse returns the velocity a bounce platform adds per contact frame.
func (p *Platform) Impulse() Vec3 {
	if p.Kind != KindBounce {
		return Vec3{}
	}
	return p.BounceDir.Mul(p.BounceForce)
}

// Registry owns the platforms of one generated level, in generation order.
// Collision is evaluated in that same order.
type Registry struct {
	platforms []Platform
	goal      int
}

// NewRegistry takes ownership of platforms and assigns ids by position.
// The last goal platform in the slice is the level goal; -1 if none.
func NewRegistry(platforms []Platform) *Registry {
	r := &Registry{platforms: platforms, goal: -1}
	for i := range r.platforms {
		r.platforms[i].ID = i
		if r.platforms[i].Kind == KindGoal {
			r.goal = i
		}
	}
	return r
}

// Len returns the number of platforms.
func (r *Registry) Len() int {
	return len(r.platforms)
}

// At returns the platform with the given id, or nil if out of range.
func (r *Registry) At(id int) *Platform {
	if id < 0 || id >= len(r.platforms) {
		return nil
	}
	return &r.platforms[id]
}

// Goal returns the goal platform, or nil if the level has none.
func (r *Registry) Goal() *Platform {
	return r.At(r.goal)
}

// Platforms returns the platform slice. Callers must not modify geometry.
func (r *Registry) Platforms() []Platform {
	return r.platforms
}

// CountByKind returns how many platforms of each kind the level holds.
func (r *Registry) CountByKind() map[PlatformKind]int {
	counts := make(map[PlatformKind]int)
	for i := range r.platforms {
		counts[r.platforms[i].Kind]++
	}
	return counts
}

// Trigger starts the decay of an intact breakable platform at time now.
// Returns false (and schedules nothing) for any other kind or state.
func (r *Registry) Trigger(id int, now float64, q *DecayQueue) bool {
	p := r.At(id)
	if p == nil || p.Kind != KindBreakable || p.Break != BreakIntact {
		return false
	}
	p.Break = BreakTriggered
	p.TriggeredAt = now
	p.decayToken = q.Schedule(id, now+p.BreakDelay)
	return true
}

// Break moves a triggered breakable platform to Broken.
func (r *Registry) Break(id int) bool {
	p := r.At(id)
	if p == nil || p.Kind != KindBreakable || p.Break != BreakTriggered {
		return false
	}
	p.Break = BreakBroken
	p.decayToken = 0
	return true
}

// Reset re-arms every breakable platform and cancels its pending decay.
func (r *Registry) Reset(q *DecayQueue) {
	for i := range r.platforms {
		p := &r.platforms[i]
		if p.Kind != KindBreakable {
			continue
		}
		if p.decayToken != 0 {
			q.Cancel(p.decayToken)
		}
		p.Break = BreakIntact
		p.TriggeredAt = 0
		p.decayToken = 0
	}
}
