package object

import (
	"github.com/tomz197/skyguard/internal/config"
	"github.com/tomz197/skyguard/internal/physics"
)

// Player is the player-controlled ship.
type Player struct {
	physics.Rect
	Speed        float64
	Health       int
	Power        float64 // Damage multiplier for fired bullets
	ShieldHealth int     // Hits absorbed before health is touched
}

// NewPlayer creates a ship centred at the bottom of the screen.
func NewPlayer(screen Screen) Player {
	return Player{
		Rect: physics.Rect{
			X: screen.W()/2 - config.PlayerWidth/2,
			Y: screen.H() - config.PlayerHeight - config.PlayerBottomMargin,
			W: config.PlayerWidth,
			H: config.PlayerHeight,
		},
		Speed:  config.PlayerSpeed,
		Health: config.PlayerInitialHealth,
		Power:  config.PlayerInitialPower,
	}
}

// Move shifts the ship horizontally and keeps it inside the screen.
func (p *Player) Move(left, right bool, screen Screen) {
	maxX := screen.W() - p.W
	if right && p.X < maxX {
		p.X += p.Speed
	}
	if left && p.X > 0 {
		p.X -= p.Speed
	}
	p.X = physics.Clamp(p.X, 0, maxX)
}

// Hit applies one unit of damage, draining the shield first.
// Health never drops below zero. Returns true if the ship is dead.
func (p *Player) Hit() bool {
	if p.ShieldHealth > 0 {
		p.ShieldHealth--
	} else if p.Health > 0 {
		p.Health--
	}
	return p.Health <= 0
}

// Dead returns true once health is exhausted.
func (p *Player) Dead() bool {
	return p.Health <= 0
}

// Collect applies a power-up's effect.
func (p *Player) Collect(kind PowerUpKind) {
	switch kind {
	case PowerUpShield:
		p.ShieldHealth = config.ShieldHealth
	case PowerUpPower:
		p.Power += config.PowerBoost
	case PowerUpHealth:
		p.Health++
	}
}

// Shoot creates a bullet leaving the nose of the ship.
// Damage is fixed at fire time from the current power.
func (p *Player) Shoot() Bullet {
	return Bullet{
		Rect: physics.Rect{
			X: p.X + p.W/2 - config.BulletWidth/2,
			Y: p.Y,
			W: config.BulletWidth,
			H: config.BulletHeight,
		},
		Speed:  config.BulletSpeed,
		Damage: config.BulletDamage * p.Power,
	}
}
