// Package logging sets up the zerolog logger. The terminal belongs to the
// UI, so logs always go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

const appName = "drawer"

// Options selects where and how much to log.
type Options struct {
	Path  string // empty uses a session file in the XDG state dir
	Level string
}

// LogFilePath builds a session log file path.
func LogFilePath(logsDir, name string, sessionStart time.Time) string {
	return filepath.Join(
		logsDir,
		fmt.Sprintf("%s.%s.log", name, sessionStart.Format("20060102_150405")),
	)
}

// ParseLevel maps a level name to zerolog, falling back to info.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "OFF", "DISABLED":
		return zerolog.Disabled
	}
	return zerolog.InfoLevel
}

// Open creates the log file and a logger writing to it. The caller closes
// the returned file.
func Open(opts Options, now time.Time) (zerolog.Logger, io.Closer, error) {
	path := opts.Path
	if path == "" {
		p, err := xdg.StateFile(filepath.Join(appName, filepath.Base(LogFilePath("", appName, now))))
		if err != nil {
			return zerolog.Nop(), nil, err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	return New(f, ParseLevel(opts.Level)), f, nil
}

// New builds a logger writing plain console-formatted lines to w.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// WithContext adds the fields of provide to every event of l.
func WithContext(l zerolog.Logger, provide func(e *zerolog.Event)) zerolog.Logger {
	if provide == nil {
		return l
	}
	return l.Hook(zerolog.HookFunc(func(e *zerolog.Event, _ zerolog.Level, _ string) {
		provide(e)
	}))
}

// Sampled limits l to a burst of 5 events per second, then 1 in 50, for
// per-frame diagnostics.
func Sampled(l zerolog.Logger) zerolog.Logger {
	return l.With().Bool("sampled", true).Logger().Sample(&zerolog.BurstSampler{
		Burst:       5,
		Period:      time.Second,
		NextSampler: &zerolog.BasicSampler{N: 50},
	})
}
