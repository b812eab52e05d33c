package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/snake-xenzia/internal/config"
)

// newLogger builds the process logger. Servers log to stderr; the
// interactive game logs to a rotating file so the alt screen stays clean.
// The returned closer flushes the file, if any.
func newLogger(cfg config.LogConfig, prefix string, toFile bool) (*log.Logger, io.Closer) {
	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if toFile {
		if cfg.File == "" {
			w = io.Discard
		} else {
			lj := &lumberjack.Logger{
				Filename:   config.ExpandPath(cfg.File),
				MaxSize:    cfg.MaxSizeMB,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAgeDays,
			}
			w, closer = lj, lj
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if lvl, err := log.ParseLevel(cfg.Level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
