package object

import "github.com/tomz197/skyguard/internal/config"

// Explosion is a short-lived visual effect anchored at the top-left of the
// thing that blew up.
type Explosion struct {
	X, Y  float64
	Frame int
}

// NewExplosion creates an explosion at its first frame.
func NewExplosion(x, y float64) Explosion {
	return Explosion{X: x, Y: y}
}

// Update advances the animation. Returns true when it has played out.
func (e *Explosion) Update() (remove bool) {
	e.Frame++
	return e.Frame > config.ExplosionFrames
}

// Progress returns how far the animation has played, from 0 to 1.
func (e Explosion) Progress() float64 {
	return float64(e.Frame) / config.ExplosionFrames
}
