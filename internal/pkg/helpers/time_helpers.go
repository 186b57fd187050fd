package helpers

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DurationOr reads a config duration such as "720h". Blank values yield
// fallback quietly; malformed ones are logged as setting before falling back.
func DurationOr(setting, value string, fallback time.Duration, lgr zerolog.Logger) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}

	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		lgr.Warn().Err(err).
			Str("setting", setting).
			Str("value", value).
			Dur("fallback", fallback).
			Msg("Ignoring invalid duration setting")
		return fallback
	}
	return d
}
