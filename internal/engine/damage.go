package engine

import "math"

// Damage defaults.
const (
	MaxHealth      = 10
	SafeFallHeight = 3.0   // Falls up to this distance cost nothing
	OutOfBoundsY   = -10.0 // Dropping below this height is instant death
)

// DamageParams configures fall damage and health.
type DamageParams struct {
	MaxHealth      int
	SafeFallHeight float64
	OutOfBoundsY   float64
}

// DefaultDamageParams returns the stock damage tuning.
func DefaultDamageParams() DamageParams {
	return DamageParams{
		MaxHealth:      MaxHealth,
		SafeFallHeight: SafeFallHeight,
		OutOfBoundsY:   OutOfBoundsY,
	}
}

// FallDamage returns the damage for a landing after falling fallHeight units.
func FallDamage(fallHeight, safeHeight float64) int {
	if fallHeight <= safeHeight {
		return 0
	}
	return int(math.Floor(fallHeight - safeHeight))
}

// land applies the fall-damage check for the landing that just grounded the player.
func (w *World) land() {
	fall := w.player.LastGroundHeight - w.player.Position.Y()
	dmg := FallDamage(fall, w.params.Damage.SafeFallHeight)
	w.emit(Event{Kind: EventLanded, Platform: -1, Amount: dmg, Value: fall})
	w.damage(dmg)
}

// damage subtracts amount from health and fails the run when health hits 0.
// Non-positive amounts, and any damage after the run is over, are ignored.
func (w *World) damage(amount int) {
	if amount <= 0 || w.clock.Over() {
		return
	}
	p := &w.player
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	w.emit(Event{Kind: EventDamaged, Platform: -1, Amount: amount})

	if p.Health == 0 && w.clock.Fail(w.now) {
		w.emit(Event{Kind: EventRunFailed, Platform: -1, Value: w.clock.Elapsed()})
	}
}
