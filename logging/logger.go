// SPDX-License-Identifier: MIT

// Package logging builds the zerolog loggers used by the command and handed
// to rips.WithLogger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlath-persistence/metrics"
)

// ErrBadFormat indicates a format other than json, text or console.
var ErrBadFormat = errors.New("logging: unknown format")

// Config selects level, encoding and destination.
type Config struct {
	Level  string    // debug, info, warn, error, disabled
	Format string    // json (default) or text/console
	Output io.Writer // defaults to os.Stderr
}

// New returns a timestamped logger with a hook counting events per level.
func New(cfg Config) (zerolog.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	switch strings.ToLower(cfg.Format) {
	case "", "json":
	case "text", "console":
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	default:
		return zerolog.Nop(), errors.Wrapf(ErrBadFormat, "%q", cfg.Format)
	}

	return zerolog.New(out).
		Level(level).
		Hook(metricsHook{}).
		With().Timestamp().
		Logger(), nil
}

func parseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(err, "logging: level %q", s)
	}

	return level, nil
}

type metricsHook struct{}

func (metricsHook) Run(_ *zerolog.Event, level zerolog.Level, _ string) {
	if level == zerolog.NoLevel {
		return
	}
	metrics.LogMessagesTotal.WithLabelValues(level.String()).Inc()
}
