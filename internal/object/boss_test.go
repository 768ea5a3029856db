package object

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/skyguard/internal/config"
	"github.com/tomz197/skyguard/internal/physics"
)

func TestShootIntervalShortensWithLevel(t *testing.T) {
	assert.Equal(t, 1000*time.Millisecond, ShootInterval(1))
	assert.Equal(t, 900*time.Millisecond, ShootInterval(2))
	assert.Equal(t, 600*time.Millisecond, ShootInterval(5))
	assert.Equal(t, 200*time.Millisecond, ShootInterval(20))
}

func TestNewBossCentredAboveScreen(t *testing.T) {
	screen := DefaultScreen()
	b := NewBoss(screen, 2, 15, testStart)

	assert.Equal(t, screen.W()/2-config.BossWidth/2, b.X)
	assert.Equal(t, -config.BossHeight, b.Y)
	assert.Equal(t, 15.0, b.Health)
	assert.Equal(t, 15.0, b.MaxHealth)
	assert.Equal(t, testStart, b.LastShot)
}

func TestBossLevelOneDescendsThenHolds(t *testing.T) {
	screen := DefaultScreen()
	b := NewBoss(screen, 1, 10, testStart)

	for i := 0; i < 1000; i++ {
		b.Update(testRNG(), screen, testPlayerRect(), testStart)
	}
	assert.GreaterOrEqual(t, b.Y, screen.H()/3)
	assert.Less(t, b.Y, screen.H()/3+b.Speed)
}

func TestBossLevelThreeOrbits(t *testing.T) {
	screen := DefaultScreen()
	b := NewBoss(screen, 3, 20, testStart)
	now := testStart.Add(1234 * time.Millisecond)

	b.Update(testRNG(), screen, testPlayerRect(), now)

	d := physics.Distance(screen.W()/2, screen.H()/4, b.X, b.Y)
	assert.InDelta(t, screen.W()/6, d, 1e-6)
}

func TestBossLevelFourTracksPlayer(t *testing.T) {
	screen := DefaultScreen()
	b := NewBoss(screen, 4, 25, testStart)
	player := physics.Rect{X: 0, Y: 500, W: 50, H: 50}
	x := b.X

	b.Update(testRNG(), screen, player, testStart)
	assert.Equal(t, x-b.Speed, b.X)

	player.X = 400
	b.Update(testRNG(), screen, player, testStart)
	assert.Equal(t, x, b.X)
}

func TestBossLevelFiveStaysInUpperHalf(t *testing.T) {
	screen := DefaultScreen()
	b := NewBoss(screen, 5, 30, testStart)
	rng := testRNG()

	for i := 0; i < 5000; i++ {
		b.Update(rng, screen, testPlayerRect(), testStart)
		require.GreaterOrEqual(t, b.X, 0.0)
		require.LessOrEqual(t, b.X, screen.W()-b.W)
		require.GreaterOrEqual(t, b.Y, 0.0)
		require.LessOrEqual(t, b.Y, screen.H()/2)
	}
}

func TestBossFireRespectsCooldown(t *testing.T) {
	b := NewBoss(DefaultScreen(), 1, 10, testStart)

	_, fired := b.Fire(testRNG(), testPlayerRect(), testStart.Add(time.Second))
	assert.False(t, fired)

	v, fired := b.Fire(testRNG(), testPlayerRect(), testStart.Add(time.Second+time.Millisecond))
	require.True(t, fired)
	assert.Len(t, v.Bullets, 1)
	assert.Empty(t, v.FollowUps)
}

func TestBossSingleShotAimsAtPlayer(t *testing.T) {
	b := NewBoss(DefaultScreen(), 2, 15, testStart)
	b.X, b.Y = 100, 100
	player := physics.Rect{X: 100, Y: 400, W: 50, H: 50}

	v, fired := b.Fire(testRNG(), player, testStart.Add(time.Hour))
	require.True(t, fired)
	require.Len(t, v.Bullets, 1)
	assert.InDelta(t, 0, v.Bullets[0].DX, 1e-9)
	assert.InDelta(t, config.EnemyBulletSpeed, v.Bullets[0].DY, 1e-9)
	assert.Equal(t, b.Y+b.H, v.Bullets[0].Y)
}

func TestBossTripleShotReusesFirstAim(t *testing.T) {
	b := NewBoss(DefaultScreen(), 3, 20, testStart)
	b.X, b.Y = 100, 100

	v, fired := b.Fire(testRNG(), physics.Rect{X: 300, Y: 500, W: 50, H: 50}, testStart.Add(time.Hour))
	require.True(t, fired)
	require.Len(t, v.Bullets, 1)
	require.Len(t, v.FollowUps, 2)

	assert.Equal(t, 100*time.Millisecond, v.FollowUps[0].Delay)
	assert.Equal(t, 200*time.Millisecond, v.FollowUps[1].Delay)
	for _, f := range v.FollowUps {
		assert.Equal(t, v.Bullets[0].DX, f.DX)
		assert.Equal(t, v.Bullets[0].DY, f.DY)
	}
}

func TestBossSpreadShot(t *testing.T) {
	b := NewBoss(DefaultScreen(), 5, 30, testStart)

	v, fired := b.Fire(testRNG(), testPlayerRect(), testStart.Add(time.Hour))
	require.True(t, fired)
	require.Len(t, v.Bullets, config.BossSpreadShots)
	for _, s := range v.Bullets {
		assert.InDelta(t, config.EnemyBulletSpeed, math.Hypot(s.DX, s.DY), 1e-9)
		assert.Equal(t, b.Y+b.H/2-config.EnemyBulletHeight/2, s.Y)
	}
}

func TestBossDamageStartsExplosion(t *testing.T) {
	b := NewBoss(DefaultScreen(), 1, 10, testStart)

	assert.False(t, b.Damage(9, testStart))
	assert.False(t, b.Exploding)

	assert.True(t, b.Damage(2, testStart))
	assert.Equal(t, 0.0, b.Health)
	assert.True(t, b.Exploding)
	assert.Equal(t, testStart, b.NextExplosion)
}

func TestBossExplosionSequence(t *testing.T) {
	b := NewBoss(DefaultScreen(), 1, 10, testStart)
	b.X, b.Y = 100, 100
	b.Damage(10, testStart)
	rng := testRNG()

	bursts := 0
	var doneAt time.Duration
	for ms := 0; ms <= 3000; ms += 10 {
		bx, by, burst, done := b.Explode(rng, testStart.Add(time.Duration(ms)*time.Millisecond))
		if burst {
			bursts++
			assert.True(t, physics.Overlaps(physics.Rect{X: bx, Y: by, W: 0.001, H: 0.001}, b.Rect))
		}
		if done {
			doneAt = time.Duration(ms) * time.Millisecond
			break
		}
	}

	assert.Equal(t, config.BossExplosionBursts, bursts)
	assert.Greater(t, doneAt, 1050*time.Millisecond)
}
