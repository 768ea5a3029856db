package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/skyguard/internal/config"
	"github.com/tomz197/skyguard/internal/object"
)

func TestBossSpawnsAfterDefeatsAndTime(t *testing.T) {
	s := runningSession(t)
	s.spawning = true
	s.defeated = config.BossSpawnDefeatedRequired

	s.Step(at(29999), Controls{})
	_, ok := s.Boss()
	assert.False(t, ok)

	s.Step(at(30000), Controls{})
	b, ok := s.Boss()
	require.True(t, ok)
	assert.Equal(t, config.BossInitialHealth, b.Health)
	assert.Equal(t, 1, b.Level)
	assert.False(t, s.spawning, "regular spawning stops while the boss is present")
	assert.Equal(t, 1, countEvents(s.Events(), EventBossSpawned))
}

func TestBossNeedsEnoughDefeats(t *testing.T) {
	s := runningSession(t)
	s.defeated = config.BossSpawnDefeatedRequired - 1

	s.Step(at(60000), Controls{})

	_, ok := s.Boss()
	assert.False(t, ok)
}

func TestBossExplodesBeforeRemoval(t *testing.T) {
	s := runningSession(t)
	b := object.NewBoss(s.screen, 1, 1, at(0))
	b.X, b.Y = 190, 100
	s.boss = &b
	s.bullets = append(s.bullets, playerBullet(235, 150, 1))

	s.Step(at(16), Controls{})
	got, ok := s.Boss()
	require.True(t, ok, "boss stays on the field while exploding")
	assert.True(t, got.Exploding)
	assert.Equal(t, 0.0, got.Health)
	assert.Equal(t, 1, countEvents(s.Events(), EventBossExploding))

	bursts := 0
	ms := 32
	for ; ms <= 16+1050; ms += 16 {
		s.Step(at(ms), Controls{})
		bursts += countEvents(s.Events(), EventBossBurst)
		_, ok := s.Boss()
		require.True(t, ok, "boss removed too early at %dms", ms)
	}

	for ; ms < 3000; ms += 16 {
		s.Step(at(ms), Controls{})
		bursts += countEvents(s.Events(), EventBossBurst)
		if _, ok := s.Boss(); !ok {
			break
		}
	}
	_, ok = s.Boss()
	require.False(t, ok)

	assert.Equal(t, config.ScoreBoss, s.Score())
	assert.Equal(t, 2, s.Level())
	assert.Equal(t, 1, countEvents(s.Events(), EventBossDefeated))
	assert.Equal(t, 1, countEvents(s.Events(), EventLevelUp))
	assert.True(t, s.Snapshot().LevelMessageVisible)
	assert.Equal(t, config.BossExplosionBursts, bursts)
}

func TestLevelUpRaisesDifficulty(t *testing.T) {
	s := runningSession(t)
	s.enemies = append(s.enemies, object.NewEnemyOf(object.VariantDefault, s.rng, 10, 1, s.player.Rect, at(0)))
	s.enemyBullets = append(s.enemyBullets, object.NewEnemyBullet(10, 10, 0, 3))
	s.powerUps = append(s.powerUps, object.NewPowerUp(object.PowerUpPower, s.player.Rect))
	s.defeated = 7

	s.levelUp(at(100))

	assert.Equal(t, 2, s.level)
	assert.Equal(t, PhaseRunning, s.phase)
	assert.Empty(t, s.enemies)
	assert.Empty(t, s.enemyBullets)
	assert.Empty(t, s.powerUps)
	assert.Equal(t, config.EnemyInitialHealth+config.EnemyHealthPerLevel, s.enemyHealth)
	assert.Equal(t, config.BossInitialHealth+config.BossHealthPerLevel, s.bossHealth)
	assert.Zero(t, s.defeated)
	assert.Equal(t, at(100), s.levelStart)
	assert.True(t, s.spawning)
	assert.True(t, s.showLevelMessage)
}

func TestLevelBannerHidesAfterDuration(t *testing.T) {
	s := runningSession(t)
	s.levelUp(at(100))

	s.Step(at(5099), Controls{})
	assert.True(t, s.Snapshot().LevelMessageVisible)

	s.Step(at(5100), Controls{})
	assert.False(t, s.Snapshot().LevelMessageVisible)
}

func TestLevelBeyondMaxEntersGameClear(t *testing.T) {
	s := runningSession(t)
	s.level = config.MaxLevel
	s.score = 450
	s.enemies = append(s.enemies, object.NewEnemyOf(object.VariantDefault, s.rng, 10, 1, s.player.Rect, at(0)))
	s.bullets = append(s.bullets, playerBullet(10, 300, 1))
	s.explosions = append(s.explosions, object.NewExplosion(1, 1))
	b := object.NewBoss(s.screen, config.MaxLevel, 30, at(0))
	b.Exploding = true
	b.ExplosionCount = config.BossExplosionBursts
	b.NextExplosion = at(0)
	s.boss = &b

	s.Step(at(400), Controls{})

	snap := s.Snapshot()
	assert.Equal(t, PhaseGameClear, snap.Phase)
	assert.Equal(t, 550, snap.Score)
	assert.Empty(t, snap.Enemies)
	assert.Empty(t, snap.Bullets)
	assert.Empty(t, snap.EnemyBullets)
	assert.Empty(t, snap.PowerUps)
	assert.Empty(t, snap.Explosions)
	assert.Nil(t, snap.Boss)
	assert.Equal(t, 1, countEvents(s.Events(), EventGameClear))

	s.Step(at(4000), Controls{StartOrReset: true})
	assert.Equal(t, PhaseGameClear, s.Phase(), "start is ignored while waiting for reset")

	s.Step(at(5399), Controls{})
	assert.Equal(t, PhaseGameClear, s.Phase())

	s.Step(at(5400), Controls{})
	assert.Equal(t, PhaseNotStarted, s.Phase())
	assert.Equal(t, 1, countEvents(s.Events(), EventReset))
	assert.Equal(t, 1, s.Level())
	assert.Zero(t, s.Score())
}

func killPlayer(t *testing.T, s *Session, ms int) {
	t.Helper()
	s.player.Health = 1
	s.enemies = append(s.enemies, enemyAt(s, s.player.X, s.player.Y-30, 1))
	s.Step(at(ms), Controls{})
	require.Equal(t, PhaseGameOver, s.Phase())
}

func TestGameOverFreezesThenAutoResets(t *testing.T) {
	s := runningSession(t)
	killPlayer(t, s, 16)
	x := s.player.X
	scroll := s.scroll

	s.Step(at(2000), Controls{StartOrReset: true, MoveLeft: true, Fire: true})
	assert.Equal(t, PhaseGameOver, s.Phase())
	assert.Equal(t, x, s.player.X)
	assert.Equal(t, scroll, s.scroll)
	assert.Empty(t, s.bullets)

	s.Step(at(5015), Controls{})
	assert.Equal(t, PhaseGameOver, s.Phase())

	s.Step(at(5016), Controls{})
	assert.Equal(t, PhaseNotStarted, s.Phase())
	assert.Equal(t, config.PlayerInitialHealth, s.player.Health)
	assert.False(t, s.waitingForReset)

	s.Step(at(5032), Controls{StartOrReset: true})
	assert.Equal(t, PhaseRunning, s.Phase())
}

func TestResetCancelsPendingAutoReset(t *testing.T) {
	s := runningSession(t)
	killPlayer(t, s, 16)

	s.Reset()
	require.True(t, s.Start(at(1000)))
	s.spawning = false

	s.Step(at(5016), Controls{})
	assert.Equal(t, PhaseRunning, s.Phase(), "a stale reset must not end the new run")
	assert.Zero(t, countEvents(s.Events(), EventReset))
}

func TestTripleShotFollowUps(t *testing.T) {
	s := runningSession(t)
	s.level = 3
	b := object.NewBoss(s.screen, 3, 20, at(0))
	s.boss = &b

	s.Step(at(1000), Controls{})
	require.Len(t, s.enemyBullets, 1)
	assert.Equal(t, 2, s.sched.count())

	s.Step(at(1100), Controls{})
	require.Len(t, s.enemyBullets, 2)

	s.Step(at(1200), Controls{})
	require.Len(t, s.enemyBullets, 3)

	for _, eb := range s.enemyBullets[1:] {
		assert.Equal(t, s.enemyBullets[0].DX, eb.DX, "follow-ups keep the first aim")
		assert.Equal(t, s.enemyBullets[0].DY, eb.DY)
	}
}

func TestTripleShotFollowUpsDroppedWhenBossExploding(t *testing.T) {
	s := runningSession(t)
	s.level = 3
	b := object.NewBoss(s.screen, 3, 20, at(0))
	s.boss = &b

	s.Step(at(1000), Controls{})
	require.Len(t, s.enemyBullets, 1)
	b.Damage(100, at(1050))

	s.Step(at(1100), Controls{})
	s.Step(at(1200), Controls{})

	assert.Len(t, s.enemyBullets, 1)
	assert.Zero(t, s.sched.count())
}
