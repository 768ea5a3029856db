// Package object defines the game entities, their factories and their
// per-frame movement models.
package object

import (
	"math/rand"

	"github.com/tomz197/skyguard/internal/config"
)

// Screen represents the logical play-field dimensions.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// NewScreen creates a screen of the given size.
func NewScreen(width, height int) Screen {
	return Screen{
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
	}
}

// DefaultScreen returns the fixed logical play field.
func DefaultScreen() Screen {
	return NewScreen(config.WorldWidth, config.WorldHeight)
}

// W returns the width as a float.
func (s Screen) W() float64 {
	return float64(s.Width)
}

// H returns the height as a float.
func (s Screen) H() float64 {
	return float64(s.Height)
}

// Rand is the subset of *rand.Rand the factories draw from.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

var _ Rand = (*rand.Rand)(nil)

// between returns a uniform value in [lo, lo+span).
func between(rng Rand, lo, span float64) float64 {
	return lo + rng.Float64()*span
}
