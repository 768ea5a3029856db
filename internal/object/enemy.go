package object

import (
	"math"
	"time"

	"github.com/tomz197/skyguard/internal/config"
	"github.com/tomz197/skyguard/internal/physics"
)

// Variant identifies an enemy behaviour archetype.
type Variant int

const (
	VariantDefault       Variant = iota // Straight descent
	VariantShooter                      // Descends, fires straight down
	VariantLeaf                         // Sine weave tied to vertical travel
	VariantIrregular                    // Bounces between the side walls
	VariantRandomShooter                // Descends, fires bursts in a cone
	VariantCharging                     // Dives toward where the player was at spawn
)

var variantNames = map[Variant]string{
	VariantDefault:       "default",
	VariantShooter:       "shooter",
	VariantLeaf:          "leaf",
	VariantIrregular:     "irregular",
	VariantRandomShooter: "randomShooter",
	VariantCharging:      "charging",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return "unknown"
}

// SpawnableVariants returns the variants the spawner picks from at the given level.
func SpawnableVariants(level int) []Variant {
	variants := []Variant{VariantShooter, VariantLeaf, VariantIrregular, VariantRandomShooter}
	if level >= config.ChargingUnlockLevel {
		variants = append(variants, VariantCharging)
	}
	return variants
}

// Enemy is a hostile ship. Variant-specific fields are zero for variants
// that do not use them.
type Enemy struct {
	physics.Rect
	Variant Variant
	Speed   float64
	Health  float64 // fractional: bullet damage scales with player power

	// shooter, randomShooter
	ShootInterval time.Duration
	LastShot      time.Time
	BulletCount   int

	// leaf
	Amplitude float64
	Frequency float64
	InitialX  float64

	// irregular
	XSpeed     float64
	XDirection float64 // +1 right, -1 left

	// charging
	DX, DY float64
}

// NewEnemy spawns an enemy of a random variant just above the top edge.
// target is the player's bounding box, used by charging enemies to aim.
func NewEnemy(rng Rand, screen Screen, level int, health float64, target physics.Rect, now time.Time) Enemy {
	variants := SpawnableVariants(level)
	variant := variants[rng.Intn(len(variants))]
	x := rng.Float64() * (screen.W() - config.EnemyWidth)
	return NewEnemyOf(variant, rng, x, health, target, now)
}

// NewEnemyOf builds an enemy of the given variant with its top-left corner at
// (x, -EnemyHeight). Randomised parameters are drawn from rng.
func NewEnemyOf(variant Variant, rng Rand, x, health float64, target physics.Rect, now time.Time) Enemy {
	e := Enemy{
		Rect: physics.Rect{
			X: x,
			Y: -config.EnemyHeight,
			W: config.EnemyWidth,
			H: config.EnemyHeight,
		},
		Variant: variant,
		Speed:   config.EnemySpeed,
		Health:  health,
	}

	switch variant {
	case VariantShooter:
		e.ShootInterval = shootInterval(rng)
		e.LastShot = now
	case VariantRandomShooter:
		e.ShootInterval = shootInterval(rng)
		e.LastShot = now
		e.BulletCount = config.RandomShooterBurst
	case VariantLeaf:
		e.Amplitude = between(rng, config.LeafAmplitudeMin, config.LeafAmplitudeSpan)
		e.Frequency = between(rng, config.LeafFrequencyMin, config.LeafFrequencySpan)
		e.InitialX = x
	case VariantIrregular:
		e.XDirection = 1
		if rng.Float64() < 0.5 {
			e.XDirection = -1
		}
		e.XSpeed = between(rng, config.IrregularSpeedMin, config.IrregularSpeedSpan)
	case VariantCharging:
		e.Speed = config.EnemySpeed * config.ChargingSpeedFactor
		tx, ty := target.Center()
		e.DX, e.DY = physics.Aim(e.X, e.Y, tx, ty, e.Speed)
	}
	return e
}

func shootInterval(rng Rand) time.Duration {
	return config.EnemyShootIntervalMin + time.Duration(rng.Float64()*float64(config.EnemyShootIntervalSpan))
}

// Update applies the variant's movement model. Every variant descends by its
// speed before its own horizontal rule. Returns true once the enemy has
// passed the bottom edge.
func (e *Enemy) Update(screen Screen) (remove bool) {
	e.Y += e.Speed

	switch e.Variant {
	case VariantLeaf:
		e.X = e.InitialX + math.Sin(e.Y*e.Frequency)*e.Amplitude
	case VariantIrregular:
		e.X += e.XDirection * e.XSpeed
		if e.X < 0 || e.X > screen.W()-e.W {
			e.XDirection = -e.XDirection
		}
	case VariantCharging:
		e.X += e.DX
		e.Y += e.DY
	}

	return e.Y > screen.H()
}

// Fire returns the bullets the enemy shoots this frame, if its cooldown has
// elapsed. Only shooter variants ever fire.
func (e *Enemy) Fire(rng Rand, now time.Time) []EnemyBullet {
	if e.Variant != VariantShooter && e.Variant != VariantRandomShooter {
		return nil
	}
	if now.Sub(e.LastShot) <= e.ShootInterval {
		return nil
	}
	e.LastShot = now

	if e.Variant == VariantShooter {
		return []EnemyBullet{NewEnemyBullet(
			e.X+e.W/2-config.EnemyBulletWidth/2,
			e.Y+e.H,
			0, config.EnemyBulletSpeed,
		)}
	}

	spread := config.RandomShooterSpreadDeg * math.Pi / 180
	minAngle := math.Pi/2 - spread/2
	bullets := make([]EnemyBullet, 0, e.BulletCount)
	for i := 0; i < e.BulletCount; i++ {
		dx, dy := physics.Velocity(minAngle+rng.Float64()*spread, config.EnemyBulletSpeed)
		bullets = append(bullets, NewEnemyBullet(
			e.X+e.W/2-config.EnemyBulletWidth/2,
			e.Y+e.H/2-config.EnemyBulletHeight/2,
			dx, dy,
		))
	}
	return bullets
}

// Damage subtracts damage from the enemy's health, clamping at zero.
// Returns true if the enemy is destroyed.
func (e *Enemy) Damage(amount float64) bool {
	e.Health -= amount
	if e.Health <= 0 {
		e.Health = 0
		return true
	}
	return false
}
