// internal/logging/logging.go
package logging

import (
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/tamzrod/linkmon/internal/config"
)

// Setup configures the standard logrus logger from cfg and returns the
// writer it logs to. With no file configured, output goes to stderr.
func Setup(cfg config.LogConfig) io.Writer {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		log.Warnf("Invalid log level '%s', using 'info'", cfg.Level)
		level = log.InfoLevel
	}

	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	out := Writer(cfg)
	log.SetOutput(out)
	return out
}

// Writer returns the rotated file writer for cfg.File, or stderr.
func Writer(cfg config.LogConfig) io.Writer {
	if cfg.File == "" {
		return os.Stderr
	}

	_ = os.MkdirAll(filepath.Dir(cfg.File), 0o755)

	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    100, // MB per file
		MaxBackups: 7,
		MaxAge:     30, // days
		Compress:   true,
	}
}

// Component returns an entry scoped to one component.
func Component(name string) *log.Entry {
	return log.WithField("component", name)
}
