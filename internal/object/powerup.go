package object

import (
	"github.com/tomz197/skyguard/internal/config"
	"github.com/tomz197/skyguard/internal/physics"
)

// PowerUpKind identifies what a power-up grants.
type PowerUpKind int

const (
	PowerUpShield PowerUpKind = iota // Shield absorbing three hits
	PowerUpPower                     // Permanent damage boost
	PowerUpHealth                    // One extra health point
)

var powerUpKinds = []PowerUpKind{PowerUpShield, PowerUpPower, PowerUpHealth}

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpShield:
		return "shield"
	case PowerUpPower:
		return "power"
	case PowerUpHealth:
		return "health"
	default:
		return "unknown"
	}
}

// PowerUp is a collectible that drifts down from a destroyed enemy.
type PowerUp struct {
	physics.Rect
	Kind PowerUpKind
}

// NewPowerUp creates a power-up of the given kind centred on source.
func NewPowerUp(kind PowerUpKind, source physics.Rect) PowerUp {
	cx, cy := source.Center()
	return PowerUp{
		Rect: physics.Rect{
			X: cx - config.PowerUpWidth/2,
			Y: cy - config.PowerUpHeight/2,
			W: config.PowerUpWidth,
			H: config.PowerUpHeight,
		},
		Kind: kind,
	}
}

// RollPowerUp drops a power-up of a random kind with probability PowerUpDropChance.
func RollPowerUp(rng Rand, source physics.Rect) (PowerUp, bool) {
	if rng.Float64() >= config.PowerUpDropChance {
		return PowerUp{}, false
	}
	return NewPowerUp(powerUpKinds[rng.Intn(len(powerUpKinds))], source), true
}

// Update moves the power-up down. Returns true once it has passed the bottom edge.
func (p *PowerUp) Update(screen Screen) (remove bool) {
	p.Y += config.PowerUpSpeed
	return p.Y > screen.H()
}
