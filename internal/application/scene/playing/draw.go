package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/younwookim/loppy/internal/application/state"
	"github.com/younwookim/loppy/internal/domain/entity"
)

// Colors for rendering.
var (
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorTerrain   = colornames.Slategray
	colorEnemy     = colornames.Crimson
	colorIndicator = colornames.Lightgrey
	colorTarget    = colornames.Gold
	colorOverlay   = color.RGBA{0, 0, 0, 128}
)

// stateColors tints the actor capsule by state.
var stateColors = map[entity.ActorState]color.Color{
	entity.StateIdle:          colornames.Mediumseagreen,
	entity.StateRun:           colornames.Limegreen,
	entity.StateAirborne:      colornames.Skyblue,
	entity.StateOnWall:        colornames.Orange,
	entity.StateOnLedge:       colornames.Darkorange,
	entity.StateClimbingLedge: colornames.Yellow,
	entity.StateDashing:       colornames.Magenta,
	entity.StateGliding:       colornames.Lightcyan,
}

func stateColor(s entity.ActorState) color.Color {
	if c, ok := stateColors[s]; ok {
		return c
	}
	return colornames.White
}

// Draw renders the game screen.
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	p.drawTerrain(screen)
	p.drawEnemies(screen)
	p.drawActor(screen)

	a := p.ctrl.Actor()
	p.drawIndicator(screen, a.Grapple)
	p.drawIndicator(screen, a.AlternateGrapple)

	p.drawDebug(screen)
	if p.flow.Current() == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
}

func (p *Playing) drawTerrain(screen *ebiten.Image) {
	for ty := 0; ty < p.stage.Height; ty++ {
		for tx := 0; tx < p.stage.Width; tx++ {
			tile := p.stage.GetTile(tx, ty)
			if !tile.Solid() {
				continue
			}
			bb := p.stage.TileBounds(tx, ty)
			x0, y0 := p.camera.toScreen(cp.Vector{X: bb.L, Y: bb.T})
			x1, y1 := p.camera.toScreen(cp.Vector{X: bb.R, Y: bb.B})

			switch tile.Type {
			case entity.TileSlopeUp:
				p.strokeTriangle(screen, x0, y1, x1, y1, x1, y0)
			case entity.TileSlopeDown:
				p.strokeTriangle(screen, x0, y1, x1, y1, x0, y0)
			default:
				vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, colorTerrain, false)
			}
		}
	}
}

func (p *Playing) strokeTriangle(screen *ebiten.Image, ax, ay, bx, by, cx, cy float32) {
	vector.StrokeLine(screen, ax, ay, bx, by, 1, colorTerrain, false)
	vector.StrokeLine(screen, bx, by, cx, cy, 1, colorTerrain, false)
	vector.StrokeLine(screen, cx, cy, ax, ay, 1, colorTerrain, false)
}

func (p *Playing) drawEnemies(screen *ebiten.Image) {
	for _, e := range p.world.Enemies() {
		x, y := p.camera.toScreen(e.Position())
		vector.DrawFilledCircle(screen, x, y, p.camera.length(e.Entity.Radius), colorEnemy, true)
	}
}

// drawActor draws the capsule as two end circles joined by a rectangle.
func (p *Playing) drawActor(screen *ebiten.Image) {
	a := p.ctrl.Actor()
	capsule := p.body.Capsule()
	c := stateColor(a.State)

	radius := capsule.Radius()
	bottom, top := capsule.Spine()
	r := p.camera.length(radius)
	ax, ay := p.camera.toScreen(bottom)
	bx, by := p.camera.toScreen(top)
	vector.DrawFilledCircle(screen, ax, ay, r, c, true)
	vector.DrawFilledCircle(screen, bx, by, r, c, true)
	vector.DrawFilledRect(screen, ax-r, by, 2*r, ay-by, c, false)

	// facing tick
	fx, fy := p.camera.toScreen(a.Center().Add(cp.Vector{X: a.Facing() * radius}))
	cx, cy := p.camera.toScreen(a.Center())
	vector.StrokeLine(screen, cx, cy, fx, fy, 2, colornames.Black, true)
}

func (p *Playing) drawIndicator(screen *ebiten.Image, g entity.GrappleState) {
	if g.Indicator.Visible {
		ind := g.Indicator
		cx, cy := p.camera.toScreen(ind.Center)
		vector.StrokeCircle(screen, cx, cy, p.camera.length(ind.Radius/2), 1, colorIndicator, true)
		sx, sy := p.camera.toScreen(ind.LineStart)
		ex, ey := p.camera.toScreen(ind.LineEnd)
		vector.StrokeLine(screen, sx, sy, ex, ey, 2, colorIndicator, true)
	}

	target := g.Aim
	if g.Grappling {
		target = g.Target
	}
	if target.Acquired() {
		tx, ty := p.camera.toScreen(target.Position)
		vector.StrokeRect(screen, tx-3, ty-3, 6, 6, 1, colorTarget, false)
	}
}

func (p *Playing) drawDebug(screen *ebiten.Image) {
	a := p.ctrl.Actor()
	line := fmt.Sprintf("%s  v=(%.1f, %.1f)  scale=%.2f  %s",
		a.State, a.Velocity.X, a.Velocity.Y, p.clock.Scale(), p.flow.Current())
	if p.hasEvent {
		line += fmt.Sprintf("  last=%s", p.lastEvent.Kind)
	}
	if p.replayer != nil && p.flow.Current() == state.StateReplaying {
		line += fmt.Sprintf("  replay %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	}
	ebitenutil.DebugPrint(screen, line)
	ebitenutil.DebugPrintAt(screen, "A/D move  Space jump  Shift dash  Ctrl glide  RMB/E grapple  R restart  Esc pause",
		4, int(p.camera.screenH)-16)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.camera.screenW), float32(p.camera.screenH), colorOverlay, false)
	ebitenutil.DebugPrintAt(screen, "PAUSED\n\nESC resume  Q quit", int(p.camera.screenW)/2-50, int(p.camera.screenH)/2-20)
}
