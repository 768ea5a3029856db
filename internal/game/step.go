package game

import (
	"math"
	"time"

	"github.com/tomz197/skyguard/internal/config"
	"github.com/tomz197/skyguard/internal/object"
)

// Step advances the session by one frame at time now.
// Outside PhaseRunning only deferred actions and start/reset commands are
// processed; the field stays frozen.
func (s *Session) Step(now time.Time, c Controls) {
	s.events = s.events[:0]
	s.sched.run(now)

	if c.StartOrReset && s.handleStartOrReset(now) {
		return
	}
	if s.phase != PhaseRunning {
		return
	}

	s.checkBossSpawn(now)

	s.player.Move(c.MoveLeft, c.MoveRight, s.screen)
	if c.Fire {
		s.shoot()
	}

	s.runSpawner(now)
	s.moveEntities(now)
	s.updateBoss(now)
	if s.phase != PhaseRunning {
		return // cleared the final level
	}

	s.resolveCollisions(now)

	s.explosions = updateAll(s.explosions, (*object.Explosion).Update)
	s.scroll = math.Mod(s.scroll+config.BackgroundScroll, s.screen.H())
}

// shoot fires a bullet from the player's ship.
func (s *Session) shoot() {
	b := s.player.Shoot()
	s.bullets = append(s.bullets, b)
	s.emit(EventShot, b.X, b.Y)
}

// moveEntities runs the movement models and drops entities that left the field.
// Enemies fire after moving; their new bullets start moving next frame.
func (s *Session) moveEntities(now time.Time) {
	s.bullets = updateAll(s.bullets, (*object.Bullet).Update)
	s.enemyBullets = updateAll(s.enemyBullets, func(b *object.EnemyBullet) bool {
		return b.Update(s.screen)
	})
	s.powerUps = updateAll(s.powerUps, func(p *object.PowerUp) bool {
		return p.Update(s.screen)
	})

	kept := s.enemies[:0] // reuse backing array
	for i := range s.enemies {
		e := &s.enemies[i]
		remove := e.Update(s.screen)
		s.enemyBullets = append(s.enemyBullets, e.Fire(s.rng, now)...)
		if !remove {
			kept = append(kept, *e)
		}
	}
	s.enemies = kept
}

// updateAll updates every item in place and keeps the ones that were not removed.
func updateAll[T any](items []T, update func(*T) bool) []T {
	kept := items[:0]
	for i := range items {
		if !update(&items[i]) {
			kept = append(kept, items[i])
		}
	}
	return kept
}
