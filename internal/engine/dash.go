package engine

// Dash defaults.
const (
	DashMultiplier = 2.5
	DashCooldown   = 10.0 // Seconds
)

// DashParams configures the dash.
type DashParams struct {
	Multiplier float64
	Cooldown   float64
}

// DefaultDashParams returns the stock dash tuning.
func DefaultDashParams() DashParams {
	return DashParams{Multiplier: DashMultiplier, Cooldown: DashCooldown}
}

// DashController gates the dash impulse behind a cooldown.
type DashController struct {
	params DashParams
	last   float64
	used   bool
}

// NewDashController creates a controller with the dash available immediately.
func NewDashController(p DashParams) DashController {
	return DashController{params: p}
}

// Ready reports whether a dash would be accepted at time now.
func (d *DashController) Ready(now float64) bool {
	return !d.used || now-d.last >= d.params.Cooldown
}

// Remaining returns the seconds left until the dash is available again.
func (d *DashController) Remaining(now float64) float64 {
	if d.Ready(now) {
		return 0
	}
	return d.params.Cooldown - (now - d.last)
}

// Trigger applies the dash impulse along the horizontal projection of
// forward, if the cooldown allows. A forward vector with no horizontal
// component adds nothing but still spends the dash.
func (d *DashController) Trigger(p *Player, forward Vec3, speed, now float64) bool {
	if !d.Ready(now) {
		return false
	}
	dir := HorizontalDir(forward)
	p.Velocity = p.Velocity.Add(dir.Mul(speed * d.params.Multiplier))
	d.last = now
	d.used = true
	return true
}

// Reset makes the dash available again.
func (d *DashController) Reset() {
	d.last = 0
	d.used = false
}
