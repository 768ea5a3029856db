package config

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger builds a root logger writing to w at the level named by
// SKYGUARD_LOG_LEVEL (debug, info, warn, error). Unknown levels fall back to info.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          prefix,
	})

	raw := GetEnv("SKYGUARD_LOG_LEVEL", "info")
	level, err := log.ParseLevel(raw)
	if err != nil {
		logger.Warn("invalid log level, using info", "value", raw)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// NewRand returns a random source seeded from SKYGUARD_SEED, or from the
// clock when it is unset or invalid.
func NewRand(logger *log.Logger) *rand.Rand {
	seed, ok := GetEnvInt("SKYGUARD_SEED", time.Now().UnixNano())
	if !ok {
		logger.Warn("invalid SKYGUARD_SEED, using clock seed")
	}
	return rand.New(rand.NewSource(seed))
}
