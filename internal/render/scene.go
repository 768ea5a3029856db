package render

import (
	"math"
	"math/rand"

	"github.com/tomz197/skyguard/internal/draw"
	"github.com/tomz197/skyguard/internal/game"
	"github.com/tomz197/skyguard/internal/object"
)

const starCount = 60

// starField places background stars at fixed pseudo-random positions.
func starField(screen object.Screen) []draw.Point {
	rng := rand.New(rand.NewSource(1))
	stars := make([]draw.Point, starCount)
	for i := range stars {
		stars[i] = draw.Point{X: rng.Float64() * screen.W(), Y: rng.Float64() * screen.H()}
	}
	return stars
}

var variantColors = map[object.Variant]draw.Color{
	object.VariantDefault:       draw.ColorGray,
	object.VariantShooter:       draw.ColorRed,
	object.VariantLeaf:          draw.ColorGreen,
	object.VariantIrregular:     draw.ColorYellow,
	object.VariantRandomShooter: draw.ColorOrange,
	object.VariantCharging:      draw.ColorMagenta,
}

var powerUpColors = map[object.PowerUpKind]draw.Color{
	object.PowerUpShield: draw.ColorCyan,
	object.PowerUpPower:  draw.ColorOrange,
	object.PowerUpHealth: draw.ColorGreen,
}

var powerUpLabels = map[object.PowerUpKind]string{
	object.PowerUpShield: "S",
	object.PowerUpPower:  "P",
	object.PowerUpHealth: "H",
}

// drawScene draws the world onto the canvas, back to front.
func (r *Renderer) drawScene(snap game.Snapshot) {
	c := r.canvas
	h := snap.Screen.H()

	for _, s := range r.stars {
		c.SetFloat(s.X, math.Mod(s.Y+snap.Scroll, h), draw.ColorGray)
	}

	if snap.Phase == game.PhaseNotStarted {
		return
	}

	for _, p := range snap.PowerUps {
		c.DrawRect(p.X, p.Y, p.W, p.H, powerUpColors[p.Kind], false)
	}
	for _, e := range snap.Enemies {
		r.drawEnemy(e)
	}
	if snap.Boss != nil {
		r.drawBoss(*snap.Boss)
	}
	for _, b := range snap.Bullets {
		c.DrawRect(b.X, b.Y, b.W, b.H, draw.ColorYellow, true)
	}
	for _, b := range snap.EnemyBullets {
		c.DrawRect(b.X, b.Y, b.W, b.H, draw.ColorRed, true)
	}
	if !snap.Player.Dead() {
		r.drawPlayer(snap.Player)
	}
	for _, e := range snap.Explosions {
		r.drawExplosion(e)
	}
}

// drawPlayer draws the ship as an upward triangle with an optional shield ring.
func (r *Renderer) drawPlayer(p object.Player) {
	points := r.canvas.BorrowPoints(3)
	points[0] = draw.Point{X: p.X + p.W/2, Y: p.Y}
	points[1] = draw.Point{X: p.X + p.W, Y: p.Y + p.H}
	points[2] = draw.Point{X: p.X, Y: p.Y + p.H}
	r.canvas.DrawPolygon(points, draw.ColorWhite, true)

	if p.ShieldHealth > 0 {
		cx, cy := p.Center()
		r.canvas.DrawCircle(cx, cy, p.W*0.75, draw.ColorCyan, false)
	}
}

// drawEnemy draws an enemy as a downward triangle in its variant color.
func (r *Renderer) drawEnemy(e object.Enemy) {
	points := r.canvas.BorrowPoints(3)
	points[0] = draw.Point{X: e.X, Y: e.Y}
	points[1] = draw.Point{X: e.X + e.W, Y: e.Y}
	points[2] = draw.Point{X: e.X + e.W/2, Y: e.Y + e.H}
	r.canvas.DrawPolygon(points, variantColors[e.Variant], true)
}

// drawBoss draws the boss with a health bar above it.
func (r *Renderer) drawBoss(b object.Boss) {
	c := r.canvas
	color := draw.ColorMagenta
	if b.Exploding {
		color = draw.ColorGray
	}
	c.DrawRect(b.X, b.Y, b.W, b.H, color, true)

	if b.Exploding || b.MaxHealth <= 0 {
		return
	}
	const barHeight, barGap = 6.0, 10.0
	ratio := max(b.Health, 0) / b.MaxHealth
	c.DrawRect(b.X, b.Y-barGap-barHeight, b.W, barHeight, draw.ColorGray, false)
	c.DrawRect(b.X, b.Y-barGap-barHeight, b.W*ratio, barHeight, draw.ColorRed, true)
}

// drawExplosion draws a ring that grows with the animation frame.
func (r *Renderer) drawExplosion(e object.Explosion) {
	color := draw.ColorYellow
	if e.Progress() > 0.5 {
		color = draw.ColorOrange
	}
	r.canvas.DrawCircle(e.X+25, e.Y+25, float64(e.Frame)*3, color, false)
}

// drawLabels writes the power-up letters over their boxes.
func (r *Renderer) drawLabels(snap game.Snapshot) {
	for _, p := range snap.PowerUps {
		cx, cy := p.Center()
		if cy < 0 || cy >= snap.Screen.H() {
			continue
		}
		col, row := r.canvas.LogicalToTerminal(cx, cy)
		r.text(col, row, powerUpLabels[p.Kind], powerUpColors[p.Kind])
	}
}
