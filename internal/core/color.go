package core

// Color is the foreground role of a screen cell.
// The platform layer maps each role to a terminal colour.
type Color uint8

const (
	ColorDefault Color = iota
	ColorPlatform
	ColorBreakable
	ColorCracked // Breakable platform counting down
	ColorBounce
	ColorGoal
	ColorFloor
	ColorPlayer
	ColorShadow // Player marker projected onto the ground below
	ColorHeart
	ColorHUD
	ColorMuted
	ColorSuccess
	ColorDanger
)

// String returns a human-readable name for the colour role.
func (c Color) String() string {
	switch c {
	case ColorPlatform:
		return "platform"
	case ColorBreakable:
		return "breakable"
	case ColorCracked:
		return "cracked"
	case ColorBounce:
		return "bounce"
	case ColorGoal:
		return "goal"
	case ColorFloor:
		return "floor"
	case ColorPlayer:
		return "player"
	case ColorShadow:
		return "shadow"
	case ColorHeart:
		return "heart"
	case ColorHUD:
		return "hud"
	case ColorMuted:
		return "muted"
	case ColorSuccess:
		return "success"
	case ColorDanger:
		return "danger"
	default:
		return "default"
	}
}
