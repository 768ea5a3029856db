package object

import (
	"github.com/tomz197/skyguard/internal/config"
	"github.com/tomz197/skyguard/internal/physics"
)

// Bullet is a shot fired upward by the player.
type Bullet struct {
	physics.Rect
	Speed  float64
	Damage float64
}

// Update moves the bullet up. Returns true once it has left the top edge.
func (b *Bullet) Update() (remove bool) {
	b.Y -= b.Speed
	return b.Y < 0
}

// EnemyBullet is a shot fired by an enemy or the boss along a fixed velocity.
type EnemyBullet struct {
	physics.Rect
	DX, DY float64
}

// NewEnemyBullet creates an enemy bullet with its top-left corner at (x, y).
func NewEnemyBullet(x, y, dx, dy float64) EnemyBullet {
	return EnemyBullet{
		Rect: physics.Rect{
			X: x,
			Y: y,
			W: config.EnemyBulletWidth,
			H: config.EnemyBulletHeight,
		},
		DX: dx,
		DY: dy,
	}
}

// Update moves the bullet. Returns true once it has left the screen
// through the bottom or either side.
func (b *EnemyBullet) Update(screen Screen) (remove bool) {
	b.X += b.DX
	b.Y += b.DY
	return b.Y > screen.H() || b.X < -b.W || b.X > screen.W()
}
