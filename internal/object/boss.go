package object

import (
	"math"
	"time"

	"github.com/tomz197/skyguard/internal/config"
	"github.com/tomz197/skyguard/internal/physics"
)

// Boss is the end-of-level enemy. Its level selects the movement and attack pattern.
type Boss struct {
	physics.Rect
	Speed     float64
	// Health is fractional because bullet damage scales with player power.
	Health    float64
	MaxHealth float64
	Level     int
	LastShot  time.Time

	// Explosion sequence after defeat
	Exploding      bool
	ExplosionCount int
	NextExplosion  time.Time // Time of the last burst; the next follows after BossExplosionInterval
}

// NewBoss creates a boss centred horizontally just above the top edge.
func NewBoss(screen Screen, level int, health float64, now time.Time) Boss {
	return Boss{
		Rect: physics.Rect{
			X: screen.W()/2 - config.BossWidth/2,
			Y: -config.BossHeight,
			W: config.BossWidth,
			H: config.BossHeight,
		},
		Speed:     config.BossSpeed,
		Health:    health,
		MaxHealth: health,
		Level:     level,
		LastShot:  now,
	}
}

// ShootInterval returns the boss's fire cooldown for a level.
func ShootInterval(level int) time.Duration {
	return max(config.BossShootIntervalFloor, config.BossShootInterval-time.Duration(level-1)*config.BossShootIntervalStep)
}

// Update moves the boss according to its level pattern. player is the
// player's bounding box; now drives the time-based sweeps.
func (b *Boss) Update(rng Rand, screen Screen, player physics.Rect, now time.Time) {
	w, h := screen.W(), screen.H()
	t := float64(now.UnixMilli())

	switch b.Level {
	case 1:
		if b.Y < h/3 {
			b.Y += b.Speed
		}
	case 2:
		b.X = w/2 + math.Sin(t/500)*(w/4)
		if b.Y < h/4 {
			b.Y += b.Speed
		}
	case 3:
		radius := w / 6
		b.X = w/2 + math.Cos(t/700)*radius
		b.Y = h/4 + math.Sin(t/700)*radius
	case 4:
		if b.X < player.X {
			b.X += b.Speed
		} else if b.X > player.X {
			b.X -= b.Speed
		}
		if b.Y < h/5 {
			b.Y += b.Speed
		}
	case 5:
		b.X += (rng.Float64() - 0.5) * b.Speed * 2
		b.Y += (rng.Float64() - 0.5) * b.Speed * 2
		b.X = physics.Clamp(b.X, 0, w-b.W)
		b.Y = physics.Clamp(b.Y, 0, h/2)
	}
}

// FollowUp is a shot the boss fires after a delay, reusing an already
// computed velocity.
type FollowUp struct {
	Delay  time.Duration
	DX, DY float64
}

// Volley is what the boss fires in one attack: bullets fired immediately and
// follow-up shots to be fired later.
type Volley struct {
	Bullets   []EnemyBullet
	FollowUps []FollowUp
}

// Fire returns the boss's volley if its cooldown has elapsed.
func (b *Boss) Fire(rng Rand, player physics.Rect, now time.Time) (Volley, bool) {
	if now.Sub(b.LastShot) <= ShootInterval(b.Level) {
		return Volley{}, false
	}
	b.LastShot = now

	var v Volley
	switch b.Level {
	case 3:
		dx, dy := b.aim(player)
		v.Bullets = append(v.Bullets, b.AimedShot(dx, dy))
		v.FollowUps = []FollowUp{
			{Delay: config.BossTripleShotSpacing, DX: dx, DY: dy},
			{Delay: 2 * config.BossTripleShotSpacing, DX: dx, DY: dy},
		}
	case 5:
		cx := b.X + b.W/2 - config.EnemyBulletWidth/2
		cy := b.Y + b.H/2 - config.EnemyBulletHeight/2
		for i := 0; i < config.BossSpreadShots; i++ {
			dx, dy := physics.Velocity(rng.Float64()*2*math.Pi, config.EnemyBulletSpeed)
			v.Bullets = append(v.Bullets, NewEnemyBullet(cx, cy, dx, dy))
		}
	default:
		dx, dy := b.aim(player)
		v.Bullets = append(v.Bullets, b.AimedShot(dx, dy))
	}
	return v, true
}

// aim returns the velocity along the line from the boss's corner to the player's corner.
func (b *Boss) aim(player physics.Rect) (dx, dy float64) {
	return physics.Aim(b.X, b.Y, player.X, player.Y, config.EnemyBulletSpeed)
}

// AimedShot creates a bullet leaving the bottom centre of the boss with the given velocity.
func (b *Boss) AimedShot(dx, dy float64) EnemyBullet {
	return NewEnemyBullet(b.X+b.W/2-config.EnemyBulletWidth/2, b.Y+b.H, dx, dy)
}

// Damage subtracts damage and starts the explosion sequence when health runs out.
// Health is clamped at zero. Returns true if this hit defeated the boss.
func (b *Boss) Damage(amount float64, now time.Time) bool {
	b.Health -= amount
	if b.Health > 0 {
		return false
	}
	b.Health = 0
	b.Exploding = true
	b.ExplosionCount = 0
	b.NextExplosion = now
	return true
}

// Explode advances the explosion sequence. burst is true when a new explosion
// should appear (at bx, by); done is true once the sequence has finished.
func (b *Boss) Explode(rng Rand, now time.Time) (bx, by float64, burst, done bool) {
	since := now.Sub(b.NextExplosion)
	if b.ExplosionCount < config.BossExplosionBursts && since > config.BossExplosionInterval {
		bx = b.X + rng.Float64()*b.W
		by = b.Y + rng.Float64()*b.H
		b.ExplosionCount++
		b.NextExplosion = now
		return bx, by, true, false
	}
	if b.ExplosionCount >= config.BossExplosionBursts && since > 2*config.BossExplosionInterval {
		return 0, 0, false, true
	}
	return 0, 0, false, false
}
