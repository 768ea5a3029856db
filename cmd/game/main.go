package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/skyguard/internal/config"
	"github.com/tomz197/skyguard/internal/loop"
	"github.com/tomz197/skyguard/internal/sound"
	"github.com/tomz197/skyguard/internal/sound/speaker"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// The terminal belongs to the game, so logs go to a file or nowhere.
	logOut := io.Discard
	if path := config.GetEnv("SKYGUARD_LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut, "skyguard")

	player := newSoundPlayer(logger)
	defer player.Close()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return loop.Run(ctx, bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		Logger: logger,
		Sound:  player,
		Rand:   config.NewRand(logger),
	})
}

// newSoundPlayer opens the speaker when SKYGUARD_SOUND is set, falling back
// to silence if the audio device is unavailable.
func newSoundPlayer(logger *log.Logger) sound.Player {
	enabled, ok := config.GetEnvBool("SKYGUARD_SOUND", false)
	if !ok {
		logger.Warn("invalid SKYGUARD_SOUND, sound disabled")
	}
	if !enabled {
		return sound.Nop{}
	}

	m := speaker.NewManager(0.5)
	if err := m.Init(); err != nil {
		logger.Warn("sound unavailable", "err", err)
		return sound.Nop{}
	}
	return m
}
