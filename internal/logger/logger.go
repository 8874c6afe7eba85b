// Package logger builds the console logger of the ptrie command.
package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w that drops records below the
// given level. An empty level means info.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	if level == "" {
		level = zerolog.LevelInfoValue
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.TimeOnly,
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
