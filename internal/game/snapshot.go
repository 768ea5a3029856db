package game

import (
	"slices"

	"github.com/tomz197/skyguard/internal/object"
)

// Snapshot is an immutable copy of everything the renderer needs for one frame.
type Snapshot struct {
	Screen       object.Screen
	Phase        Phase
	Player       object.Player
	Bullets      []object.Bullet
	EnemyBullets []object.EnemyBullet
	Enemies      []object.Enemy
	Boss         *object.Boss // nil when no boss is present
	PowerUps     []object.PowerUp
	Explosions   []object.Explosion

	Score               int
	Level               int
	LevelMessageVisible bool
	Scroll              float64 // Background offset in [0, Screen.Height)
}

// Snapshot copies the current state. Later steps do not affect the copy.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Screen:              s.screen,
		Phase:               s.phase,
		Player:              s.player,
		Bullets:             slices.Clone(s.bullets),
		EnemyBullets:        slices.Clone(s.enemyBullets),
		Enemies:             slices.Clone(s.enemies),
		PowerUps:            slices.Clone(s.powerUps),
		Explosions:          slices.Clone(s.explosions),
		Score:               s.score,
		Level:               s.level,
		LevelMessageVisible: s.showLevelMessage,
		Scroll:              s.scroll,
	}
	if s.boss != nil {
		b := *s.boss
		snap.Boss = &b
	}
	return snap
}
