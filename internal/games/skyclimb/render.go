package skyclimb

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/skyclimb/internal/core"
	"github.com/vovakirdan/skyclimb/internal/engine"
)

// Projection scale: terminal cells are about twice as tall as they are wide.
const (
	cellsPerUnit = 2.0 // Columns per world unit
	rowsPerUnit  = 1.0 // Rows per world unit

	sideCullDepth = 12.0 // Side view hides platforms further than this off the camera line
	sideNearDepth = 3.0  // Closer than this is drawn in full colour
	topDimBelow   = 15.0 // Top view dims platforms this far below the player
)

// Visual characters for rendering.
const (
	SolidChar     = '='
	BreakableChar = '%'
	CrackedChar   = '░'
	BounceChar    = '^'
	GoalChar      = '#'
	FloorChar     = '~'
	FarChar       = '-'
	HeadChar      = 'O'
	BodyChar      = 'A'
	TopPlayerChar = '@'
	FacingChar    = '^'
)

// camera projects world positions into a screen area centred on the player.
type camera struct {
	origin  engine.Vec3
	forward engine.Vec3
	right   engine.Vec3
	area    core.Rect
	cx, cy  int
}

func (g *Game) camera(area core.Rect) camera {
	fwd := g.Forward()
	cx, cy := area.Center()
	return camera{
		origin:  g.snap.Player.Position,
		forward: fwd,
		right:   engine.RightOf(fwd),
		area:    area,
		cx:      cx,
		cy:      cy,
	}
}

// span returns the extent of the box's horizontal footprint along axis,
// relative to the camera origin.
func (c camera) span(b engine.Box, axis engine.Vec3) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, x := range [2]float64{b.Min.X(), b.Max.X()} {
		for _, z := range [2]float64{b.Min.Z(), b.Max.Z()} {
			d := engine.Vec3{x - c.origin.X(), 0, z - c.origin.Z()}.Dot(axis)
			lo, hi = min(lo, d), max(hi, d)
		}
	}
	return lo, hi
}

func (c camera) col(d float64) int {
	return c.cx + int(math.Round(d*cellsPerUnit))
}

func (c camera) row(d float64) int {
	return c.cy - int(math.Round(d*rowsPerUnit))
}

// cells converts a projected span into a screen rectangle clipped to the area.
func (c camera) cells(lo, hi float64, top, bottom int) core.Rect {
	x0, x1 := c.col(lo), c.col(hi)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if bottom < top {
		bottom = top
	}
	return core.NewRect(x0, top, x1-x0, bottom-top+1).Intersect(c.area)
}

// Render draws the current state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	area := core.NewRect(0, 1, dst.Width(), dst.Height()-2)
	cam := g.camera(area)
	if g.view == ViewTop {
		g.renderTop(dst, cam)
	} else {
		g.renderSide(dst, cam)
	}

	g.renderHUD(dst)
	g.renderFooter(dst)

	switch {
	case g.snap.Outcome == engine.OutcomeSuccess:
		g.drawCenteredMessage(dst, core.ColorSuccess,
			"SUMMIT REACHED",
			"Time "+engine.FormatSeconds(g.snap.FinalTime)+"s",
			"R to climb again")
	case g.snap.Outcome == engine.OutcomeFailure:
		g.drawCenteredMessage(dst, core.ColorDanger,
			"YOU FELL",
			fmt.Sprintf("Height %.0fm  |  Time %ss", math.Max(0, g.snap.Player.Position.Y()), g.snap.TimeText()),
			"R to retry")
	case g.paused:
		g.drawCenteredMessage(dst, core.ColorHUD, "PAUSED", "P to resume")
	}
}

func (g *Game) renderSide(dst *core.Screen, cam camera) {
	type item struct {
		view  engine.PlatformView
		depth float64
	}
	items := make([]item, 0, len(g.snap.Platforms))
	for _, p := range g.snap.Platforms {
		if !p.Visible {
			continue
		}
		if p.Floor {
			g.drawFloorLine(dst, cam, p)
			continue
		}
		depth := p.Box.Center().Sub(cam.origin).Dot(cam.right)
		if math.Abs(depth) > sideCullDepth {
			continue
		}
		items = append(items, item{view: p, depth: math.Abs(depth)})
	}
	// Far platforms first so nearer ones overwrite them.
	sort.SliceStable(items, func(i, j int) bool { return items[i].depth > items[j].depth })

	for _, it := range items {
		lo, hi := cam.span(it.view.Box, cam.forward)
		top := cam.row(it.view.Box.Max.Y() - cam.origin.Y())
		bottom := cam.row(it.view.Box.Min.Y() - cam.origin.Y())
		r := cam.cells(lo, hi, top, bottom-1)

		ch, color := platformLook(it.view)
		if it.depth > sideNearDepth {
			ch, color = FarChar, core.ColorMuted
		}
		dst.DrawRect(r, ch, color)
	}

	// Player box is one unit wide and two tall, centred on the camera.
	head := core.NewRect(cam.cx-1, cam.cy-1, 2, 1).Intersect(cam.area)
	body := core.NewRect(cam.cx-1, cam.cy, 2, 1).Intersect(cam.area)
	dst.DrawRect(head, HeadChar, core.ColorPlayer)
	dst.DrawRect(body, BodyChar, core.ColorPlayer)
}

func (g *Game) drawFloorLine(dst *core.Screen, cam camera, p engine.PlatformView) {
	y := cam.row(p.Box.Max.Y() - cam.origin.Y())
	if y < cam.area.Y || y >= cam.area.Bottom() {
		return
	}
	dst.DrawHLine(cam.area.X, y, cam.area.W, FloorChar, core.ColorFloor)
}

func (g *Game) renderTop(dst *core.Screen, cam camera) {
	views := make([]engine.PlatformView, 0, len(g.snap.Platforms))
	for _, p := range g.snap.Platforms {
		if p.Visible && !p.Floor {
			views = append(views, p)
		}
	}
	// Lower platforms first so the ones above cover them.
	sort.SliceStable(views, func(i, j int) bool { return views[i].Box.Max.Y() < views[j].Box.Max.Y() })

	for _, p := range views {
		xlo, xhi := cam.span(p.Box, cam.right)
		zlo, zhi := cam.span(p.Box, cam.forward)
		r := cam.cells(xlo, xhi, cam.row(zhi), cam.row(zlo)-1)

		ch, color := platformLook(p)
		if cam.origin.Y()-p.Box.Max.Y() > topDimBelow {
			color = core.ColorMuted
		}
		dst.DrawRect(r, ch, color)
	}

	dst.DrawRect(core.NewRect(cam.cx-1, cam.cy, 2, 1).Intersect(cam.area), TopPlayerChar, core.ColorPlayer)
	if cam.area.Contains(cam.cx, cam.cy-1) {
		dst.SetColored(cam.cx, cam.cy-1, FacingChar, core.ColorPlayer)
	}
}

// platformLook returns the character and colour of a platform.
func platformLook(p engine.PlatformView) (rune, core.Color) {
	switch p.Kind {
	case engine.KindBreakable:
		if p.Break == engine.BreakTriggered {
			return CrackedChar, core.ColorCracked
		}
		return BreakableChar, core.ColorBreakable
	case engine.KindBounce:
		return BounceChar, core.ColorBounce
	case engine.KindGoal:
		return GoalChar, core.ColorGoal
	default:
		if p.Floor {
			return FloorChar, core.ColorFloor
		}
		return SolidChar, core.ColorPlatform
	}
}

// renderHUD draws the status line: health, time, dash, height and view.
func (g *Game) renderHUD(dst *core.Screen) {
	x := 1
	hp, maxHP := g.snap.Player.Health, g.snap.Player.MaxHealth
	hearts := strings.Repeat("♥", hp) + strings.Repeat("♡", max(0, maxHP-hp))
	dst.DrawTextColored(x, 0, hearts, core.ColorHeart)
	x += utf8.RuneCountInString(hearts) + 2

	timeText := g.snap.TimeText() + "s"
	if g.snap.Outcome == engine.OutcomeSuccess {
		timeText = engine.FormatSeconds(g.snap.FinalTime) + "s"
	}
	dst.DrawTextColored(x, 0, timeText, core.ColorHUD)
	x += len(timeText) + 2

	if g.snap.CanDash {
		dst.DrawTextColored(x, 0, "DASH", core.ColorSuccess)
		x += 6
	} else {
		dash := fmt.Sprintf("dash %.0fs", math.Ceil(g.snap.DashReadyIn))
		dst.DrawTextColored(x, 0, dash, core.ColorMuted)
		x += len(dash) + 2
	}

	ceiling := g.cfg.Level.Ceiling
	height := fmt.Sprintf("%.0fm/%.0fm", core.ClampF(g.snap.Player.Position.Y(), 0, ceiling), ceiling)
	dst.DrawTextColored(x, 0, height, core.ColorHUD)
	x += len(height) + 2

	// Right-aligned, but clipped rather than drawn over the status on narrow screens.
	label := fmt.Sprintf("[%s] %s", g.view, g.mode.Title)
	dst.DrawTextColored(core.Clamp(dst.Width()-len(label)-1, x, dst.Width()), 0, label, core.ColorMuted)
}

func (g *Game) renderFooter(dst *core.Screen) {
	y := dst.Height() - 1
	if !g.snap.Over() && g.snap.Phase == engine.PhaseNotStarted {
		dst.DrawTextCentered(y, "Move to start the clock", core.ColorHUD)
		return
	}
	if g.snap.Player.Grounded {
		return
	}
	if v := g.snap.Player.Velocity.Y(); v < -20 {
		dst.DrawTextCentered(y, "falling!", core.ColorDanger)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, color core.Color, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := utf8.RuneCountInString(title)
	for _, l := range lines {
		boxW = max(boxW, utf8.RuneCountInString(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := core.Clamp((w-boxW)/2, 0, w)
	boxY := core.Clamp((h-boxH)/2, 0, h)

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)

	dst.DrawTextColored(boxX+(boxW-utf8.RuneCountInString(title))/2, boxY+1, title, color)
	for i, l := range lines {
		dst.DrawTextColored(boxX+(boxW-utf8.RuneCountInString(l))/2, boxY+3+i, l, core.ColorHUD)
	}
}
