package engine

// Motion defaults.
const (
	Gravity            = 30.0
	JumpForce          = 15.0
	PlayerSpeed        = 10.0
	MaxHorizontalSpeed = 20.0
	GroundDamping      = 0.9 // Horizontal velocity multiplier per grounded frame
	MaxFrameTime       = 0.1 // Longest frame the integrator will simulate, in seconds
)

// MotionParams configures Integrate.
type MotionParams struct {
	Gravity            float64
	JumpForce          float64
	PlayerSpeed        float64
	MaxHorizontalSpeed float64
	GroundDamping      float64
	MaxFrameTime       float64
}

// DefaultMotionParams returns the stock movement tuning.
func DefaultMotionParams() MotionParams {
	return MotionParams{
		Gravity:            Gravity,
		JumpForce:          JumpForce,
		PlayerSpeed:        PlayerSpeed,
		MaxHorizontalSpeed: MaxHorizontalSpeed,
		GroundDamping:      GroundDamping,
		MaxFrameTime:       MaxFrameTime,
	}
}

// Player is the controlled body. Position is the centre of its box.
type Player struct {
	Position         Vec3
	Velocity         Vec3
	Size             Vec3
	Grounded         bool
	Health           int
	LastGroundHeight float64
}

// Box returns the player's current bounding box.
func (p *Player) Box() Box {
	return BoxFromCenter(p.Position, p.Size)
}

// Input is the per-frame control state read by the engine.
type Input struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Jump    bool // Held

	Dash  bool // Trigger
	Start bool // Trigger; any movement flag also starts a run

	// ViewForward is the camera's look direction. Only its horizontal
	// projection is used.
	ViewForward Vec3
}

// Moving reports whether any directional flag is held.
func (in Input) Moving() bool {
	return in.Forward || in.Back || in.Left || in.Right
}

// ClampFrameTime bounds dt to [0, limit]. NaN is treated as 0.
func ClampFrameTime(dt, limit float64) float64 {
	if !(dt > 0) {
		return 0
	}
	if dt > limit {
		return limit
	}
	return dt
}

// Integrate advances the player's velocity and position by one frame.
// dt must already be clamped.
func Integrate(p *Player, in Input, dt float64, mp MotionParams) {
	if !p.Grounded {
		p.Velocity[1] -= mp.Gravity * dt
	} else {
		p.Velocity[0] *= mp.GroundDamping
		p.Velocity[2] *= mp.GroundDamping
		p.LastGroundHeight = p.Position.Y()
	}

	forward := HorizontalDir(in.ViewForward)
	right := RightOf(forward)
	step := mp.PlayerSpeed * dt

	if in.Forward {
		p.Velocity = p.Velocity.Add(forward.Mul(step))
	}
	if in.Back {
		p.Velocity = p.Velocity.Sub(forward.Mul(step))
	}
	if in.Left {
		p.Velocity = p.Velocity.Sub(right.Mul(step))
	}
	if in.Right {
		p.Velocity = p.Velocity.Add(right.Mul(step))
	}

	if in.Jump && p.Grounded {
		p.Velocity[1] = mp.JumpForce
		p.Grounded = false
	}

	p.Velocity = ClampHorizontal(p.Velocity, mp.MaxHorizontalSpeed)
	p.Position = p.Position.Add(p.Velocity.Mul(dt))
}
