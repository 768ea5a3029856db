package game

import (
	"slices"
	"time"

	"github.com/tomz197/skyguard/internal/config"
	"github.com/tomz197/skyguard/internal/object"
	"github.com/tomz197/skyguard/internal/physics"
)

// resolveCollisions detects and handles all collisions for this frame.
// Collections are walked back to front so removal does not skip entries.
func (s *Session) resolveCollisions(now time.Time) {
	s.checkEnemyCollisions(now)
	s.checkEnemyBulletCollisions(now)
	s.checkBossCollisions(now)
	s.checkPowerUpCollisions()
}

// checkEnemyCollisions handles enemies ramming the player and player
// bullets hitting enemies.
func (s *Session) checkEnemyCollisions(now time.Time) {
	for i := len(s.enemies) - 1; i >= 0; i-- {
		if physics.Collides(s.player, s.enemies[i]) {
			s.hitPlayer(now)
			s.enemies = slices.Delete(s.enemies, i, i+1)
			continue
		}

		for j := len(s.bullets) - 1; j >= 0; j-- {
			if !physics.Collides(s.bullets[j], s.enemies[i]) {
				continue
			}
			destroyed := s.enemies[i].Damage(s.bullets[j].Damage)
			s.bullets = slices.Delete(s.bullets, j, j+1)
			if destroyed {
				s.destroyEnemy(i)
			}
			break // one bullet per enemy per frame
		}
	}
}

// destroyEnemy removes a defeated enemy, scores it and rolls for a power-up.
func (s *Session) destroyEnemy(i int) {
	e := s.enemies[i]
	s.enemies = slices.Delete(s.enemies, i, i+1)

	s.explosions = append(s.explosions, object.NewExplosion(e.X, e.Y))
	s.score += config.ScoreEnemy
	s.defeated++
	s.emit(EventEnemyDestroyed, e.X, e.Y)

	if p, ok := object.RollPowerUp(s.rng, e.Rect); ok {
		s.powerUps = append(s.powerUps, p)
	}
}

// checkEnemyBulletCollisions handles enemy and boss shots hitting the player.
func (s *Session) checkEnemyBulletCollisions(now time.Time) {
	for i := len(s.enemyBullets) - 1; i >= 0; i-- {
		if physics.Collides(s.player, s.enemyBullets[i]) {
			s.hitPlayer(now)
			s.enemyBullets = slices.Delete(s.enemyBullets, i, i+1)
		}
	}
}

// checkBossCollisions handles player bullets hitting a live boss.
// At most one bullet lands per frame.
func (s *Session) checkBossCollisions(now time.Time) {
	b := s.boss
	if b == nil || b.Exploding {
		return
	}
	for j := len(s.bullets) - 1; j >= 0; j-- {
		if !physics.Collides(s.bullets[j], *b) {
			continue
		}
		defeated := b.Damage(s.bullets[j].Damage, now)
		s.bullets = slices.Delete(s.bullets, j, j+1)
		if defeated {
			x, y := b.Center()
			s.emit(EventBossExploding, x, y)
			s.logger.Debug("boss exploding", "level", b.Level)
		}
		break
	}
}

// checkPowerUpCollisions applies power-ups the player touches.
func (s *Session) checkPowerUpCollisions() {
	for i := len(s.powerUps) - 1; i >= 0; i-- {
		p := s.powerUps[i]
		if !physics.Collides(s.player, p) {
			continue
		}
		s.player.Collect(p.Kind)
		s.powerUps = slices.Delete(s.powerUps, i, i+1)
		s.emit(EventPowerUp, p.X, p.Y)
		s.logger.Debug("power-up collected", "kind", p.Kind)
	}
}

// hitPlayer applies one unit of damage and ends the run when health runs out.
func (s *Session) hitPlayer(now time.Time) {
	dead := s.player.Hit()
	s.explosions = append(s.explosions, object.NewExplosion(s.player.X, s.player.Y))
	s.emit(EventPlayerHit, s.player.X, s.player.Y)
	if dead {
		s.enterGameOver(now)
	}
}
