package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/skyguard/internal/config"
	"github.com/tomz197/skyguard/internal/object"
	"github.com/tomz197/skyguard/internal/physics"
)

func playerBullet(x, y, damage float64) object.Bullet {
	return object.Bullet{
		Rect:   physics.Rect{X: x, Y: y, W: config.BulletWidth, H: config.BulletHeight},
		Speed:  config.BulletSpeed,
		Damage: damage,
	}
}

// enemyAt places a default enemy whose top-left lands on (x, y) after one step.
func enemyAt(s *Session, x, y, health float64) object.Enemy {
	e := object.NewEnemyOf(object.VariantDefault, s.rng, x, health, s.player.Rect, at(0))
	e.Y = y - e.Speed
	return e
}

func TestBulletDestroysEnemy(t *testing.T) {
	s := runningSession(t)
	s.enemies = append(s.enemies, enemyAt(s, 100, 200, 1))
	s.bullets = append(s.bullets, playerBullet(120, 240, 1))

	s.Step(at(16), Controls{})
	snap := s.Snapshot()

	assert.Empty(t, snap.Enemies)
	assert.Empty(t, snap.Bullets)
	assert.Equal(t, config.ScoreEnemy, snap.Score)
	assert.Equal(t, 1, s.defeated)
	require.Len(t, snap.Explosions, 1)
	assert.Equal(t, 100.0, snap.Explosions[0].X)
	assert.Equal(t, 200.0, snap.Explosions[0].Y)
	assert.Equal(t, 1, countEvents(s.Events(), EventEnemyDestroyed))
}

func TestBulletDamagesToughEnemy(t *testing.T) {
	s := runningSession(t)
	s.enemies = append(s.enemies, enemyAt(s, 100, 200, 2))
	s.bullets = append(s.bullets,
		playerBullet(120, 240, 1),
		playerBullet(110, 240, 1),
	)

	s.Step(at(16), Controls{})

	require.Len(t, s.enemies, 1, "only one bullet lands per enemy per frame")
	assert.Equal(t, 1.0, s.enemies[0].Health)
	assert.Len(t, s.bullets, 1)
	assert.Zero(t, s.score)
}

func TestPoweredBulletOverkillClampsHealth(t *testing.T) {
	s := runningSession(t)
	s.player.Power = 2.5
	s.Step(at(16), Controls{Fire: true})
	require.Len(t, s.bullets, 1)
	b := s.bullets[0]

	s.enemies = append(s.enemies, enemyAt(s, b.X-10, b.Y-46, 2))
	s.Step(at(32), Controls{})

	assert.Empty(t, s.enemies)
	assert.Equal(t, config.ScoreEnemy, s.score)
}

func TestDestroyedEnemyMayDropPowerUp(t *testing.T) {
	s := runningSession(t)
	drops := 0
	for i := 0; i < 50; i++ {
		s.enemies = append(s.enemies[:0], enemyAt(s, 100, 200, 1))
		s.bullets = append(s.bullets[:0], playerBullet(120, 240, 1))
		s.powerUps = nil
		s.Step(at(16+i*16), Controls{})
		if len(s.powerUps) > 0 {
			drops++
			cx, cy := s.powerUps[0].Center()
			assert.InDelta(t, 125, cx, 1e-9)
			assert.InDelta(t, 225, cy, 1e-9)
		}
	}
	assert.Greater(t, drops, 25)
	assert.Less(t, drops, 50)
}

func TestEnemyContactHitsPlayer(t *testing.T) {
	s := runningSession(t)
	s.enemies = append(s.enemies, enemyAt(s, s.player.X, s.player.Y-30, 1))

	s.Step(at(16), Controls{})

	assert.Empty(t, s.enemies)
	assert.Equal(t, config.PlayerInitialHealth-1, s.player.Health)
	assert.Zero(t, s.score, "ramming does not score")
	require.Len(t, s.explosions, 1)
	assert.Equal(t, s.player.X, s.explosions[0].X)
	assert.Equal(t, s.player.Y, s.explosions[0].Y)
	assert.Equal(t, PhaseRunning, s.phase)
}

func TestEnemyContactSkipsBulletCheck(t *testing.T) {
	s := runningSession(t)
	s.enemies = append(s.enemies,
		enemyAt(s, 100, 200, 1),
		enemyAt(s, s.player.X, s.player.Y-30, 1),
	)
	s.bullets = append(s.bullets, playerBullet(120, 240, 1))

	s.Step(at(16), Controls{})

	assert.Empty(t, s.enemies, "the next enemy is still checked after a contact")
	assert.Equal(t, config.ScoreEnemy, s.score)
}

func TestShieldAbsorbsEnemyBullet(t *testing.T) {
	s := runningSession(t)
	s.player.ShieldHealth = 1
	s.enemyBullets = append(s.enemyBullets, object.NewEnemyBullet(s.player.X+20, s.player.Y+10, 0, 3))

	s.Step(at(16), Controls{})

	assert.Empty(t, s.enemyBullets)
	assert.Zero(t, s.player.ShieldHealth)
	assert.Equal(t, config.PlayerInitialHealth, s.player.Health)
	assert.Equal(t, 1, countEvents(s.Events(), EventPlayerHit))
}

func TestLethalCollisionsEnterGameOverOnce(t *testing.T) {
	s := runningSession(t)
	s.player.Health = 1
	s.enemies = append(s.enemies,
		enemyAt(s, s.player.X, s.player.Y-30, 1),
		enemyAt(s, s.player.X+10, s.player.Y-20, 1),
	)
	s.enemyBullets = append(s.enemyBullets, object.NewEnemyBullet(s.player.X+20, s.player.Y+10, 0, 3))

	s.Step(at(16), Controls{})

	assert.Equal(t, PhaseGameOver, s.Phase())
	assert.Equal(t, 1, countEvents(s.Events(), EventGameOver))
	assert.Equal(t, 3, countEvents(s.Events(), EventPlayerHit))
	assert.Zero(t, s.player.Health, "health never goes negative")
	assert.Equal(t, 1, s.sched.count(), "exactly one reset is scheduled")
	assert.True(t, s.waitingForReset)
}

func TestBulletHitsBossOncePerFrame(t *testing.T) {
	s := runningSession(t)
	b := object.NewBoss(s.screen, 1, 10, at(0))
	b.X, b.Y = 190, 100
	s.boss = &b
	s.bullets = append(s.bullets,
		playerBullet(235, 150, 1),
		playerBullet(245, 150, 1),
	)

	s.Step(at(16), Controls{})

	assert.Equal(t, 9.0, b.Health)
	assert.Len(t, s.bullets, 1)
	assert.False(t, b.Exploding)
}

func TestExplodingBossIgnoresBullets(t *testing.T) {
	s := runningSession(t)
	b := object.NewBoss(s.screen, 1, 10, at(0))
	b.X, b.Y = 190, 100
	b.Damage(10, at(0))
	s.boss = &b
	s.bullets = append(s.bullets, playerBullet(235, 150, 1))

	s.Step(at(16), Controls{})

	assert.Len(t, s.bullets, 1)
	assert.Equal(t, 0.0, b.Health)
}

func TestPowerUpPickup(t *testing.T) {
	tests := []struct {
		kind  object.PowerUpKind
		check func(t *testing.T, p object.Player)
	}{
		{object.PowerUpShield, func(t *testing.T, p object.Player) { assert.Equal(t, config.ShieldHealth, p.ShieldHealth) }},
		{object.PowerUpPower, func(t *testing.T, p object.Player) { assert.Equal(t, 1.5, p.Power) }},
		{object.PowerUpHealth, func(t *testing.T, p object.Player) { assert.Equal(t, 4, p.Health) }},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			s := runningSession(t)
			p := object.NewPowerUp(tt.kind, s.player.Rect)
			s.powerUps = append(s.powerUps, p)

			s.Step(at(16), Controls{})

			assert.Empty(t, s.powerUps)
			assert.Equal(t, 1, countEvents(s.Events(), EventPowerUp))
			tt.check(t, s.player)
		})
	}
}
