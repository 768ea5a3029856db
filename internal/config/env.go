// Package config provides shared configuration utilities and the game's
// tunable parameters.
package config

import (
	"os"
	"strconv"
	"time"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt returns the integer value of the environment variable named by the key.
// The fallback is returned when the variable is unset; ok is false when it is set
// but cannot be parsed.
func GetEnvInt(key string, fallback int64) (value int64, ok bool) {
	raw, set := os.LookupEnv(key)
	if !set {
		return fallback, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback, false
	}
	return v, true
}

// GetEnvBool returns the boolean value of the environment variable named by the key.
// Accepts the forms understood by strconv.ParseBool.
func GetEnvBool(key string, fallback bool) (value bool, ok bool) {
	raw, set := os.LookupEnv(key)
	if !set {
		return fallback, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback, false
	}
	return v, true
}

// GetEnvDuration returns the duration value of the environment variable named by the key
// (e.g. "90s", "2m").
func GetEnvDuration(key string, fallback time.Duration) (value time.Duration, ok bool) {
	raw, set := os.LookupEnv(key)
	if !set {
		return fallback, true
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback, false
	}
	return v, true
}
