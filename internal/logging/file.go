package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const (
	logFileName       = "atlas.log"
	logFileMaxSizeMB  = 5
	logFileMaxBackups = 3
)

// FileConfig controls where log output goes besides (or instead of) stderr.
type FileConfig struct {
	Enabled       bool
	Dir           string
	WriteToStderr bool
}

// NewWithFile creates a logger that writes JSON lines to a rotating file and,
// optionally, console output to stderr. Interactive commands disable stderr so
// log lines do not corrupt the terminal UI. The returned cleanup closes the file.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	var writers []io.Writer
	cleanup := func() {}

	if fileCfg.Enabled && fileCfg.Dir != "" {
		rotator, err := NewLogRotator(fileCfg.Dir, logFileName, logFileMaxSizeMB, logFileMaxBackups)
		if err != nil {
			return New(cfg), cleanup, err
		}
		writers = append(writers, rotator)
		cleanup = func() { _ = rotator.Close() }
	}
	if fileCfg.WriteToStderr {
		if cfg.Format == "json" {
			writers = append(writers, os.Stderr)
		} else {
			writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: cfg.TimeFormat})
		}
	}

	if len(writers) == 0 {
		return zerolog.Nop(), cleanup, nil
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
	return logger, cleanup, nil
}
