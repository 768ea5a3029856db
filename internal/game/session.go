// Package game implements the per-frame simulation: spawning, movement,
// collisions and the level/lifecycle state machine of a single-player run.
package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyguard/internal/config"
	"github.com/tomz197/skyguard/internal/object"
)

// Phase is the lifecycle phase of a session.
type Phase int

const (
	PhaseNotStarted Phase = iota // Title screen
	PhaseRunning                 // Active gameplay
	PhaseGameOver                // Player died, waiting for auto-reset
	PhaseGameClear               // Final level cleared, waiting for auto-reset
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	case PhaseGameClear:
		return "game clear"
	default:
		return "unknown"
	}
}

// Options configures a session.
type Options struct {
	Rand   object.Rand   // Defaults to a time-seeded source
	Logger *log.Logger   // Defaults to a discarding logger
	Screen object.Screen // Defaults to object.DefaultScreen
}

// Session owns all state of one player's run.
// It is not safe for concurrent use; one goroutine drives it.
type Session struct {
	screen object.Screen
	rng    object.Rand
	logger *log.Logger

	phase        Phase
	player       object.Player
	bullets      []object.Bullet
	enemyBullets []object.EnemyBullet
	enemies      []object.Enemy
	boss         *object.Boss
	powerUps     []object.PowerUp
	explosions   []object.Explosion

	score       int
	level       int
	levelStart  time.Time
	defeated    int     // Enemies destroyed in the current level
	enemyHealth float64 // Health of newly spawned enemies
	bossHealth  float64 // Health of the next boss

	spawning  bool
	nextSpawn time.Time

	showLevelMessage bool
	scroll           float64
	waitingForReset  bool

	sched  scheduler
	events []Event
}

// NewSession creates a session on the title screen.
func NewSession(opts Options) *Session {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Screen.Width == 0 || opts.Screen.Height == 0 {
		opts.Screen = object.DefaultScreen()
	}

	s := &Session{
		screen: opts.Screen,
		rng:    opts.Rand,
		logger: opts.Logger,
	}
	s.reset()
	return s
}

// reset restores the initial state and drops every pending action.
func (s *Session) reset() {
	s.sched.cancelAll()

	s.phase = PhaseNotStarted
	s.player = object.NewPlayer(s.screen)
	s.bullets = nil
	s.enemyBullets = nil
	s.enemies = nil
	s.boss = nil
	s.powerUps = nil
	s.explosions = nil

	s.score = 0
	s.level = 1
	s.levelStart = time.Time{}
	s.defeated = 0
	s.enemyHealth = config.EnemyInitialHealth
	s.bossHealth = config.BossInitialHealth

	s.spawning = false
	s.nextSpawn = time.Time{}

	s.showLevelMessage = false
	s.scroll = 0
	s.waitingForReset = false
}

// Start begins a run from the title screen. It is ignored in any other
// phase and while an auto-reset is pending.
func (s *Session) Start(now time.Time) bool {
	if s.phase != PhaseNotStarted || s.waitingForReset {
		return false
	}

	s.reset()
	s.phase = PhaseRunning
	s.levelStart = now
	s.resumeSpawner(now)

	s.emit(EventStart, s.player.X, s.player.Y)
	s.logger.Info("run started")
	return true
}

// Reset returns the session to the title screen, cancelling any pending
// deferred actions.
func (s *Session) Reset() {
	score, level := s.score, s.level
	s.reset()
	s.emit(EventReset, 0, 0)
	s.logger.Info("session reset", "score", score, "level", level)
}

// handleStartOrReset applies a start/reset command. Returns true if the
// phase changed.
func (s *Session) handleStartOrReset(now time.Time) bool {
	switch s.phase {
	case PhaseNotStarted:
		return s.Start(now)
	case PhaseGameOver, PhaseGameClear:
		if s.waitingForReset {
			return false
		}
		s.Reset()
		return true
	default:
		return false
	}
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Score returns the score of the current run.
func (s *Session) Score() int {
	return s.score
}

// Level returns the current level.
func (s *Session) Level() int {
	return s.level
}

// Boss returns the boss if one is present.
func (s *Session) Boss() (*object.Boss, bool) {
	return s.boss, s.boss != nil
}

// Events returns the events recorded since the start of the last step.
func (s *Session) Events() []Event {
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

func (s *Session) emit(kind EventKind, x, y float64) {
	s.events = append(s.events, Event{Kind: kind, X: x, Y: y})
}
