package spacewar

import (
	"fmt"
	"math"

	platformcore "github.com/vovakirdan/tui-spacewar/internal/core"
	"github.com/vovakirdan/tui-spacewar/internal/games/spacewar/core"
)

// Minimum terminal size for a playable arena
const (
	minScreenW = 40
	minScreenH = 14
)

// Visual characters for rendering
const (
	HazardChar     = '✶'
	ProjectileChar = '•'
	DeadShipChar   = '✖'
	FlameChar      = '·'
	WrapChar       = '┈'
)

// shipGlyphs are indexed by heading octant, counter-clockwise from up.
var shipGlyphs = [8]rune{'▲', '◤', '◀', '◣', '▼', '◢', '▶', '◥'}

// ShipGlyph returns the glyph pointing along heading h.
func ShipGlyph(h float64) rune {
	octant := int(math.Floor(core.NormalizeAngle(h+math.Pi/8)/(math.Pi/4))) % 8
	return shipGlyphs[octant]
}

// Render draws the arena, HUD and overlays into dst.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < minScreenW || h < minScreenH {
		msg := fmt.Sprintf("Terminal too small: need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(h/2, msg)
		return
	}

	snap := g.world.Snapshot()

	// Row 0 is the HUD, the last row is help, the arena sits in a box between.
	frame := platformcore.NewRect(0, 1, w, h-2)
	if snap.Boundary == core.BoundaryEdge {
		dst.DrawBox(frame)
	} else {
		dst.DrawHLine(0, frame.Y, w, WrapChar)
		dst.DrawHLine(0, frame.Bottom()-1, w, WrapChar)
	}
	vp := platformcore.Viewport{
		ArenaW: snap.Width,
		ArenaH: snap.Height,
		Area:   platformcore.NewRect(frame.X+1, frame.Y+1, frame.W-2, frame.H-2),
	}

	g.drawEntities(dst, vp, snap)
	g.drawHUD(dst, snap)
	dst.DrawTextColored(1, h-1, "←/→ turn  ↑ thrust  space fire  p pause  b menu  q quit", platformcore.ColorGray)

	switch {
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case snap.Over:
		drawCenteredMessage(dst, "MATCH OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	case g.loadErr != nil && snap.Tick < 180:
		drawCenteredMessage(dst, "CONFIG ERROR", "Running with built-in defaults")
	case g.bannerTicks > 0 && g.lastRound != nil:
		drawCenteredMessage(dst, roundBanner(*g.lastRound), fmt.Sprintf("Round %d", snap.Round))
	}
}

func (g *Game) drawEntities(dst *platformcore.Screen, vp platformcore.Viewport, snap core.Snapshot) {
	owners := make(map[core.ID]core.Role, 2)
	for _, e := range snap.Entities {
		if e.Kind == core.KindShip {
			owners[e.ID] = e.Role
		}
	}

	for _, e := range snap.Entities {
		switch e.Kind {
		case core.KindHazard:
			g.drawHazard(dst, vp, e)

		case core.KindProjectile:
			if col, row, ok := vp.Project(e.Pos.X, e.Pos.Y); ok {
				dst.SetColored(col, row, ProjectileChar, roleColor(owners[e.Owner], true))
			}

		case core.KindShip:
			col, row, ok := vp.Project(e.Pos.X, e.Pos.Y)
			if !ok {
				continue
			}
			if e.Dead {
				dst.SetColored(col, row, DeadShipChar, platformcore.ColorOrange)
				continue
			}
			if e.Thrust {
				back := e.Pos.Sub(core.Heading(e.Heading).Scale(e.Radius * 2))
				if fc, fr, ok := vp.Project(back.X, back.Y); ok && (fc != col || fr != row) {
					dst.SetColored(fc, fr, FlameChar, platformcore.ColorOrange)
				}
			}
			dst.SetColored(col, row, ShipGlyph(e.Heading), roleColor(e.Role, false))
		}
	}
}

func (g *Game) drawHazard(dst *platformcore.Screen, vp platformcore.Viewport, e core.EntityView) {
	col, row, ok := vp.Project(e.Pos.X, e.Pos.Y)
	if !ok {
		return
	}
	// A faint ring when the star covers more than one cell.
	if rc, _, ok := vp.Project(e.Pos.X+e.Radius, e.Pos.Y); ok && rc > col {
		for i := 0; i < 12; i++ {
			a := float64(i) * math.Pi / 6
			x := e.Pos.X + math.Cos(a)*e.Radius
			y := e.Pos.Y + math.Sin(a)*e.Radius
			if c, r, ok := vp.Project(x, y); ok {
				dst.SetColored(c, r, '∙', platformcore.ColorYellow)
			}
		}
	}
	dst.SetColored(col, row, HazardChar, platformcore.ColorBrightYellow)
}

func (g *Game) drawHUD(dst *platformcore.Screen, snap core.Snapshot) {
	left := fmt.Sprintf(" %s  Score: %d  Round: %d ", g.Title(), snap.Score, snap.Round)
	dst.DrawTextColored(1, 0, left, platformcore.ColorBrightCyan)

	var right string
	switch snap.Phase {
	case core.PhaseEnding:
		remaining := float64(snap.Deadline-snap.Tick) / float64(g.cfg.Physics.TickRate)
		right = fmt.Sprintf(" next round in %.1fs ", remaining)
	default:
		right = fmt.Sprintf(" shots: %d ", countProjectiles(snap))
	}
	dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, platformcore.ColorGray)
}

func countProjectiles(snap core.Snapshot) int {
	n := 0
	for _, e := range snap.Entities {
		if e.Kind == core.KindProjectile {
			n++
		}
	}
	return n
}

func roleColor(r core.Role, projectile bool) platformcore.Color {
	switch r {
	case core.RolePlayer:
		if projectile {
			return platformcore.ColorBrightCyan
		}
		return platformcore.ColorCyan
	case core.RoleEnemy:
		if projectile {
			return platformcore.ColorBrightRed
		}
		return platformcore.ColorRed
	default:
		return platformcore.ColorWhite
	}
}

func roundBanner(r platformcore.RoundSummary) string {
	switch r.Outcome() {
	case "win":
		return "ENEMY DESTROYED  +1"
	case "loss":
		return "SHIP LOST  -1"
	default:
		return "MUTUAL DESTRUCTION"
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *platformcore.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(platformcore.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(platformcore.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, boxY+1, title, platformcore.ColorBrightYellow)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
