package systems

import (
	"image/color"
	"math"

	"github.com/automoto/tracer/components"
	cfg "github.com/automoto/tracer/config"
	"github.com/automoto/tracer/shared/gamemath"
	"github.com/automoto/tracer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

// The world is y-up with the origin at the centre of the window; the screen
// is y-down with the origin at the top-left corner.

func worldToScreen(p gamemath.Vec2) (float32, float32) {
	return float32(p.X + float64(cfg.C.Width)/2), float32(float64(cfg.C.Height)/2 - p.Y)
}

func screenToWorld(x, y float64) gamemath.Vec2 {
	return gamemath.V(x-float64(cfg.C.Width)/2, float64(cfg.C.Height)/2-y)
}

// DrawWalls renders every static obstacle.
func DrawWalls(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		r := components.Obstacle.Get(e).Rect
		x, y := worldToScreen(gamemath.V(r.X, r.MaxY()))
		vector.FillRect(screen, x, y, float32(r.W), float32(r.H), colornames.Slategray, false)
	})
}

// DrawPlayer renders the body, a facing marker and the legs.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		tr := components.Transform.Get(e)
		player := components.Player.Get(e)
		cx, cy := worldToScreen(tr.Position)

		// Legs: a bar across the last movement heading
		legs := gamemath.V(0, cfg.Player.LegsWidth/2).Rotate(player.LegAngle)
		lx0, ly0 := worldToScreen(tr.Position.Add(legs))
		lx1, ly1 := worldToScreen(tr.Position.Sub(legs))
		vector.StrokeLine(screen, lx0, ly0, lx1, ly1, float32(cfg.Player.LegsHeight/2), colornames.Darkolivegreen, true)

		vector.DrawFilledCircle(screen, cx, cy, float32(cfg.Player.BodyRadius/2), colornames.Olivedrab, true)

		nose := tr.Position.Add(gamemath.V(cfg.Player.BodyRadius/2, 0).Rotate(player.Facing))
		nx, ny := worldToScreen(nose)
		vector.StrokeLine(screen, cx, cy, nx, ny, 3, cfg.White, true)
	})
}

// DrawProjectiles renders bullets as squares turned along their direction.
func DrawProjectiles(ecs *ecs.ECS, screen *ebiten.Image) {
	half := cfg.Projectile.Size / 2
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		tr := components.Transform.Get(e)
		a := tr.Position.Add(gamemath.V(-half, 0).Rotate(tr.Rotation))
		b := tr.Position.Add(gamemath.V(half, 0).Rotate(tr.Rotation))
		ax, ay := worldToScreen(a)
		bx, by := worldToScreen(b)
		vector.StrokeLine(screen, ax, ay, bx, by, float32(cfg.Projectile.Size), cfg.Yellow, false)
	})
}

// DrawEffects renders every particle, back to front by effect layer.
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	fxEntry, ok := components.Effects.First(ecs.World)
	if !ok {
		return
	}
	fx := components.Effects.Get(fxEntry)

	for _, in := range fx.Emitter.Instances() {
		for _, p := range in.Particles() {
			rgba, size := in.Style(p)
			x, y := worldToScreen(p.Position)
			vector.DrawFilledCircle(screen, x, y, float32(math.Max(size, 0.5)), toColor(rgba), true)
		}
	}
}

// DrawDebug outlines colliders and prints live counts.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	debugEntry, ok := components.Debug.First(ecs.World)
	if !ok || !components.Debug.Get(debugEntry).DrawColliders {
		return
	}

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		r := components.Obstacle.Get(e).Rect
		x, y := worldToScreen(gamemath.V(r.X, r.MaxY()))
		vector.StrokeRect(screen, x, y, float32(r.W), float32(r.H), 1, colornames.Cyan, false)
	})

	tags.ImpactEffect.Each(ecs.World, func(e *donburi.Entry) {
		tr := components.Transform.Get(e)
		ie := components.ImpactEffect.Get(e)
		x0, y0 := worldToScreen(tr.Position)
		x1, y1 := worldToScreen(tr.Position.Add(ie.Normal.MulScalar(20)))
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, colornames.Lime, false)
		r, _ := gamemath.Normalize(ie.Reflected)
		x2, y2 := worldToScreen(tr.Position.Add(r.MulScalar(30)))
		vector.StrokeLine(screen, x0, y0, x2, y2, 1, fade(colornames.Orangered, ie.Alpha), false)
	})

	drawStats(ecs, screen)
}

// fade scales a straight colour by alpha, keeping it premultiplied.
func fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = math.Max(0, math.Min(1, alpha))
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

func toColor(rgba [4]float64) color.Color {
	c := func(v float64) float64 { return math.Max(0, math.Min(1, v)) }
	// premultiplied
	a := c(rgba[3])
	return color.RGBA{
		R: uint8(255 * c(rgba[0]) * a),
		G: uint8(255 * c(rgba[1]) * a),
		B: uint8(255 * c(rgba[2]) * a),
		A: uint8(255 * a),
	}
}
