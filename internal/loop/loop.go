// Package loop drives a game session: Input → Step → Render at a fixed frame rate.
package loop

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyguard/internal/config"
	"github.com/tomz197/skyguard/internal/draw"
	"github.com/tomz197/skyguard/internal/game"
	"github.com/tomz197/skyguard/internal/input"
	"github.com/tomz197/skyguard/internal/object"
	"github.com/tomz197/skyguard/internal/render"
	"github.com/tomz197/skyguard/internal/sound"
)

// ErrIdle is returned by Run when the player was inactive for the idle timeout.
var ErrIdle = errors.New("disconnected after inactivity")

// Options configures a game loop.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // Defaults to draw.DefaultTermSizeFunc
	Logger       *log.Logger       // Defaults to a discarding logger
	Sound        sound.Player      // Defaults to sound.Nop
	Rand         object.Rand       // Defaults to a time-seeded source
	IdleTimeout  time.Duration     // Zero disables the idle disconnect
}

// driver owns one session and its collaborators.
type driver struct {
	session  *game.Session
	renderer *render.Renderer
	stream   *input.Stream
	logger   *log.Logger
	sound    sound.Player

	idleTimeout time.Duration
	lastInput   time.Time
}

func newDriver(r *bufio.Reader, w io.Writer, opts Options, now time.Time) *driver {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Sound == nil {
		opts.Sound = sound.Nop{}
	}

	screen := object.DefaultScreen()
	return &driver{
		session: game.NewSession(game.Options{
			Rand:   opts.Rand,
			Logger: opts.Logger,
			Screen: screen,
		}),
		renderer:    render.New(w, screen, opts.TermSizeFunc),
		stream:      input.StartStream(r),
		logger:      opts.Logger,
		sound:       opts.Sound,
		idleTimeout: opts.IdleTimeout,
		lastInput:   now,
	}
}

// Run plays until the player quits, the input closes, ctx is cancelled or
// the idle timeout elapses. Write errors end the loop and are returned.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	d := newDriver(r, w, opts, time.Now())

	d.renderer.Begin()
	defer d.renderer.End()

	d.logger.Info("game loop started")
	defer d.logger.Info("game loop stopped", "score", d.session.Score(), "level", d.session.Level())

	for {
		frameStart := time.Now()

		done, err := d.frame(input.ReadInput(d.stream), frameStart)
		if err != nil || done {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(config.TargetFrameTime - elapsed):
			}
		} else if ctx.Err() != nil {
			return nil
		}
	}
}

// frame runs one Input → Step → Render cycle. done reports that the player left.
func (d *driver) frame(in input.Input, now time.Time) (done bool, err error) {
	if in.Quit || in.Closed {
		return true, nil
	}

	idle, err := d.checkIdle(in, now)
	if err != nil {
		return true, err
	}

	if err := d.step(now, controls(in)); err != nil {
		d.logger.Error("step failed", "err", err)
	}
	d.handleEvents(d.session.Events())

	if err := d.renderer.Draw(d.session.Snapshot(), idle); err != nil {
		return true, fmt.Errorf("draw frame: %w", err)
	}
	return false, nil
}

// checkIdle tracks the last key press and reports the inactivity overlay.
func (d *driver) checkIdle(in input.Input, now time.Time) (render.Overlay, error) {
	if len(in.Pressed) > 0 {
		d.lastInput = now
	}
	if d.idleTimeout <= 0 {
		return render.Overlay{}, nil
	}

	inactive := now.Sub(d.lastInput)
	if inactive >= d.idleTimeout {
		d.logger.Info("disconnecting idle player", "inactive", inactive.Round(time.Second))
		return render.Overlay{}, ErrIdle
	}
	if inactive >= d.idleTimeout-config.IdleWarning {
		return render.Overlay{IdleWarning: true, Disconnect: d.idleTimeout - inactive}, nil
	}
	return render.Overlay{}, nil
}

// controls maps raw key state to game intents.
func controls(in input.Input) game.Controls {
	return game.Controls{
		MoveLeft:     in.Left,
		MoveRight:    in.Right,
		Fire:         in.Fire,
		StartOrReset: in.Start,
	}
}

// step advances the session, converting a panic into an error so one bad
// frame does not end the connection.
func (d *driver) step(now time.Time, c game.Controls) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("step panicked: %v", r)
			d.logger.Debug("step panic stack", "stack", string(debug.Stack()))
		}
	}()
	d.session.Step(now, c)
	return nil
}

// eventCues maps game events to sound cues.
var eventCues = map[game.EventKind]sound.Cue{
	game.EventShot:           sound.CueShot,
	game.EventEnemyDestroyed: sound.CueExplosion,
	game.EventBossBurst:      sound.CueExplosion,
	game.EventPlayerHit:      sound.CueHit,
	game.EventPowerUp:        sound.CuePowerUp,
	game.EventBossSpawned:    sound.CueBoss,
	game.EventLevelUp:        sound.CueLevelUp,
	game.EventGameOver:       sound.CueGameOver,
	game.EventGameClear:      sound.CueGameClear,
}

// handleEvents plays each cue at most once per frame and forgets held keys
// when a run starts or resets.
func (d *driver) handleEvents(events []game.Event) {
	played := make(map[sound.Cue]bool, len(events))
	for _, e := range events {
		switch e.Kind {
		case game.EventStart, game.EventReset:
			input.ResetKeyInput(d.stream)
		}
		cue, ok := eventCues[e.Kind]
		if !ok || played[cue] {
			continue
		}
		played[cue] = true
		d.sound.Play(cue)
	}
}
