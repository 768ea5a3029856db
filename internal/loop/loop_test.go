package loop

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/skyguard/internal/config"
	"github.com/tomz197/skyguard/internal/game"
	"github.com/tomz197/skyguard/internal/input"
	"github.com/tomz197/skyguard/internal/sound"
)

var t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type recordingPlayer struct {
	cues []sound.Cue
}

func (p *recordingPlayer) Play(c sound.Cue) { p.cues = append(p.cues, c) }
func (p *recordingPlayer) Close()           {}

func fixedSize() (int, int, error) {
	return config.MaxTermWidth, config.MaxTermHeight, nil
}

func newTestDriver(t *testing.T, idle time.Duration) (*driver, *bytes.Buffer, *recordingPlayer) {
	t.Helper()
	var out bytes.Buffer
	snd := &recordingPlayer{}
	d := newDriver(bufio.NewReader(strings.NewReader("")), &out, Options{
		TermSizeFunc: fixedSize,
		Sound:        snd,
		Rand:         rand.New(rand.NewSource(12345)),
		IdleTimeout:  idle,
	}, t0)
	return d, &out, snd
}

func TestControlsMapping(t *testing.T) {
	c := controls(input.Input{Left: true, Fire: true, Start: true, Quit: true})
	assert.Equal(t, game.Controls{MoveLeft: true, Fire: true, StartOrReset: true}, c)
}

func TestFrameStartsAndDraws(t *testing.T) {
	d, out, snd := newTestDriver(t, 0)

	done, err := d.frame(input.Input{}, t0)
	require.NoError(t, err)
	require.False(t, done)
	assert.Contains(t, out.String(), "Press SPACE or ENTER to start")

	out.Reset()
	done, err = d.frame(input.Input{Start: true, Fire: true, Pressed: []byte{' '}}, t0.Add(config.TargetFrameTime))
	require.NoError(t, err)
	require.False(t, done)

	assert.Equal(t, game.PhaseRunning, d.session.Phase())
	assert.Contains(t, out.String(), "Score: 0")
	assert.Empty(t, snd.cues, "the starting press does not fire")

	_, err = d.frame(input.Input{Fire: true, Pressed: []byte{'w'}}, t0.Add(2*config.TargetFrameTime))
	require.NoError(t, err)
	assert.Equal(t, []sound.Cue{sound.CueShot}, snd.cues)
}

func TestFrameEndsOnQuitOrClose(t *testing.T) {
	d, _, _ := newTestDriver(t, 0)

	done, err := d.frame(input.Input{Quit: true}, t0)
	assert.NoError(t, err)
	assert.True(t, done)

	done, err = d.frame(input.Input{Closed: true}, t0)
	assert.NoError(t, err)
	assert.True(t, done)
}

func TestIdleWarningAndDisconnect(t *testing.T) {
	const timeout = 60 * time.Second
	d, out, _ := newTestDriver(t, timeout)

	_, err := d.frame(input.Input{}, t0.Add(timeout-config.IdleWarning-time.Second))
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "INACTIVITY WARNING")

	out.Reset()
	_, err = d.frame(input.Input{}, t0.Add(timeout-config.IdleWarning+time.Second))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "INACTIVITY WARNING")
	assert.Contains(t, out.String(), "disconnected in 29 seconds")

	// A key press dismisses the warning and restarts the clock.
	pressed := t0.Add(timeout - time.Second)
	out.Reset()
	_, err = d.frame(input.Input{Pressed: []byte{'x'}}, pressed)
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "INACTIVITY WARNING")

	done, err := d.frame(input.Input{}, pressed.Add(timeout))
	assert.True(t, done)
	assert.ErrorIs(t, err, ErrIdle)
}

func TestIdleDisabled(t *testing.T) {
	d, _, _ := newTestDriver(t, 0)
	done, err := d.frame(input.Input{}, t0.Add(24*time.Hour))
	assert.NoError(t, err)
	assert.False(t, done)
}

func TestStepRecoversPanic(t *testing.T) {
	d := &driver{logger: log.New(io.Discard)} // nil session panics on Step

	var err error
	require.NotPanics(t, func() {
		err = d.step(t0, game.Controls{})
	})
	assert.ErrorContains(t, err, "step panicked")
}

func TestHandleEventsPlaysEachCueOnce(t *testing.T) {
	d, _, snd := newTestDriver(t, 0)

	d.handleEvents([]game.Event{
		{Kind: game.EventEnemyDestroyed},
		{Kind: game.EventEnemyDestroyed},
		{Kind: game.EventBossBurst},
		{Kind: game.EventPlayerHit},
		{Kind: game.EventBossExploding},
		{Kind: game.EventReset},
	})

	assert.Equal(t, []sound.Cue{sound.CueExplosion, sound.CueHit}, snd.cues)
}

func TestRunQuits(t *testing.T) {
	var out bytes.Buffer
	errc := make(chan error, 1)
	go func() {
		errc <- Run(context.Background(), bufio.NewReader(strings.NewReader("q")), &out, Options{TermSizeFunc: fixedSize})
	}()

	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}
	assert.True(t, strings.HasSuffix(out.String(), "\033[H\033[2J\033[?25h"), "screen is restored")
}

func TestRunStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		errc <- Run(ctx, bufio.NewReader(pr), io.Discard, Options{TermSizeFunc: fixedSize})
	}()
	cancel()

	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
