package game

import (
	"time"

	"github.com/tomz197/skyguard/internal/config"
)

// levelUp moves to the next level after a boss falls, or clears the game
// after the final one.
func (s *Session) levelUp(now time.Time) {
	s.enemies = nil
	s.enemyBullets = nil
	s.powerUps = nil

	s.level++
	s.enemyHealth += config.EnemyHealthPerLevel
	s.bossHealth += config.BossHealthPerLevel

	if s.level > config.MaxLevel {
		s.enterGameClear(now)
		return
	}

	s.showLevelMessage = true
	s.sched.after(now, config.LevelMessageDuration, "hide level message", func(time.Time) {
		s.showLevelMessage = false
	})

	s.defeated = 0
	s.levelStart = now
	s.resumeSpawner(now)

	s.emit(EventLevelUp, 0, 0)
	s.logger.Info("level up", "level", s.level, "score", s.score)
}

// enterGameOver freezes the run and schedules the return to the title
// screen. Further lethal hits in the same frame are ignored.
func (s *Session) enterGameOver(now time.Time) {
	if s.phase != PhaseRunning {
		return
	}
	s.phase = PhaseGameOver
	s.spawning = false
	s.emit(EventGameOver, s.player.X, s.player.Y)
	s.logger.Info("game over", "level", s.level, "score", s.score)

	if !s.waitingForReset {
		s.waitingForReset = true
		s.sched.after(now, config.ResetScreenDuration, "reset after game over", s.autoReset)
	}
}

// enterGameClear clears the field and schedules the return to the title screen.
func (s *Session) enterGameClear(now time.Time) {
	s.phase = PhaseGameClear
	s.spawning = false
	s.showLevelMessage = false

	s.bullets = nil
	s.enemyBullets = nil
	s.enemies = nil
	s.boss = nil
	s.powerUps = nil
	s.explosions = nil

	s.emit(EventGameClear, 0, 0)
	s.logger.Info("game clear", "score", s.score)

	s.waitingForReset = true
	s.sched.after(now, config.ResetScreenDuration, "reset after game clear", s.autoReset)
}

func (s *Session) autoReset(time.Time) {
	s.waitingForReset = false
	s.Reset()
}
