package game

import (
	"time"

	"github.com/tomz197/skyguard/internal/config"
	"github.com/tomz197/skyguard/internal/object"
)

// resumeSpawner (re)starts the enemy spawner. The first enemy arrives one
// interval after now.
func (s *Session) resumeSpawner(now time.Time) {
	s.spawning = true
	s.nextSpawn = now.Add(config.EnemySpawnInterval)
}

// runSpawner adds an enemy when the spawn interval has elapsed.
func (s *Session) runSpawner(now time.Time) {
	if !s.spawning || now.Before(s.nextSpawn) {
		return
	}
	e := object.NewEnemy(s.rng, s.screen, s.level, s.enemyHealth, s.player.Rect, now)
	s.enemies = append(s.enemies, e)
	s.nextSpawn = now.Add(config.EnemySpawnInterval)
	s.logger.Debug("enemy spawned", "variant", e.Variant, "x", e.X)
}

// checkBossSpawn brings in the boss once enough enemies are down and the
// level has run long enough. Regular spawning stops while it is present.
func (s *Session) checkBossSpawn(now time.Time) {
	if s.boss != nil ||
		s.defeated < config.BossSpawnDefeatedRequired ||
		now.Sub(s.levelStart) < config.BossSpawnTimeRequired {
		return
	}

	b := object.NewBoss(s.screen, s.level, s.bossHealth, now)
	s.boss = &b
	s.spawning = false

	s.emit(EventBossSpawned, b.X, b.Y)
	s.logger.Info("boss spawned", "level", s.level, "health", b.Health)
}

// updateBoss moves and fires the boss, or advances its explosion sequence.
func (s *Session) updateBoss(now time.Time) {
	b := s.boss
	if b == nil {
		return
	}

	if !b.Exploding {
		b.Update(s.rng, s.screen, s.player.Rect, now)
		v, fired := b.Fire(s.rng, s.player.Rect, now)
		if !fired {
			return
		}
		s.enemyBullets = append(s.enemyBullets, v.Bullets...)
		for _, f := range v.FollowUps {
			s.sched.after(now, f.Delay, "boss follow-up shot", func(time.Time) {
				s.bossFollowUp(f)
			})
		}
		return
	}

	bx, by, burst, done := b.Explode(s.rng, now)
	if burst {
		s.explosions = append(s.explosions, object.NewExplosion(bx, by))
		s.emit(EventBossBurst, bx, by)
	}
	if done {
		x, y := b.Center()
		s.boss = nil
		s.score += config.ScoreBoss
		s.emit(EventBossDefeated, x, y)
		s.logger.Info("boss defeated", "level", s.level, "score", s.score)
		s.levelUp(now)
	}
}

// bossFollowUp fires a deferred shot from the boss's current position.
// The shot is dropped if the boss is gone or exploding.
func (s *Session) bossFollowUp(f object.FollowUp) {
	if s.phase != PhaseRunning || s.boss == nil || s.boss.Exploding {
		return
	}
	s.enemyBullets = append(s.enemyBullets, s.boss.AimedShot(f.DX, f.DY))
}
