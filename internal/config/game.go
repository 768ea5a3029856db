package config

import "time"

// Game configuration constants.
// All tunable game parameters are centralized here for easy adjustment.
// Speeds are in logical units per frame.

// World dimensions in logical units.
const (
	WorldWidth  = 480
	WorldHeight = 640
)

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Terminal render area. Columns are 1.5x rows so half-block sub-pixels keep
// the 3:4 world aspect.
const (
	MaxTermWidth  = 90
	MaxTermHeight = 60
)

// Player
const (
	PlayerWidth         = 50.0
	PlayerHeight        = 50.0
	PlayerSpeed         = 4.0
	PlayerInitialHealth = 3
	PlayerInitialPower  = 1.0
	PlayerBottomMargin  = 50.0
)

// Player bullets
const (
	BulletWidth  = 5.0
	BulletHeight = 10.0
	BulletSpeed  = 6.0
	BulletDamage = 1.0
)

// Enemies
const (
	EnemyWidth          = 50.0
	EnemyHeight         = 50.0
	EnemySpeed          = 2.0
	EnemyInitialHealth  = 1.0
	EnemyHealthPerLevel = 1.0
	EnemySpawnInterval  = 1500 * time.Millisecond
	ChargingUnlockLevel = 2
	ChargingSpeedFactor = 1.5

	EnemyShootIntervalMin  = 1000 * time.Millisecond
	EnemyShootIntervalSpan = 1000 * time.Millisecond
	RandomShooterBurst     = 3
	RandomShooterSpreadDeg = 50.0

	LeafAmplitudeMin   = 20.0
	LeafAmplitudeSpan  = 30.0
	LeafFrequencyMin   = 0.05
	LeafFrequencySpan  = 0.05
	IrregularSpeedMin  = 0.5
	IrregularSpeedSpan = 1.5
)

// Enemy bullets
const (
	EnemyBulletWidth  = 5.0
	EnemyBulletHeight = 10.0
	EnemyBulletSpeed  = 3.0
)

// Boss
const (
	BossWidth              = 100.0
	BossHeight             = 100.0
	BossSpeed              = 1.0
	BossInitialHealth      = 10.0
	BossHealthPerLevel     = 5.0
	BossShootInterval      = 1000 * time.Millisecond
	BossShootIntervalStep  = 100 * time.Millisecond
	BossShootIntervalFloor = 200 * time.Millisecond
	BossTripleShotSpacing  = 100 * time.Millisecond
	BossSpreadShots        = 5

	BossSpawnDefeatedRequired = 3
	BossSpawnTimeRequired     = 30 * time.Second

	BossExplosionBursts   = 5
	BossExplosionInterval = 150 * time.Millisecond
)

// Power-ups
const (
	PowerUpWidth      = 30.0
	PowerUpHeight     = 30.0
	PowerUpSpeed      = 1.0
	PowerUpDropChance = 0.8
	ShieldHealth      = 3
	PowerBoost        = 0.5
)

// Explosions
const (
	ExplosionFrames = 10
)

// Scoring
const (
	ScoreEnemy = 10
	ScoreBoss  = 100
)

// Levels and lifecycle
const (
	MaxLevel             = 5
	LevelMessageDuration = 5000 * time.Millisecond
	ResetScreenDuration  = 5000 * time.Millisecond
	BackgroundScroll     = 2.0
)

// Inactivity (SSH sessions)
const (
	DefaultIdleTimeout = 120 * time.Second
	IdleWarning        = 30 * time.Second // Warning is shown this long before disconnect
)
