package logging

import (
	"clinicdesk/cmd/internal/config"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gopkg.in/natefinch/lumberjack.v2"
	"io"
	"os"
	"strings"
)

// Setup points the package logger (and echo's, when given) at stdout plus an
// optional rotating file. The returned closer flushes the file, if any.
func Setup(cfg config.LogConfig, e *echo.Echo) io.Closer {
	var out io.Writer = os.Stdout
	var closer io.Closer = nopCloser{}

	if cfg.File != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		}
		out = io.MultiWriter(os.Stdout, file)
		closer = file
	}

	level := ParseLevel(cfg.Level)
	log.SetOutput(out)
	log.SetLevel(level)
	log.SetPrefix("clinicdesk")

	if e != nil {
		e.Logger.SetOutput(out)
		e.Logger.SetLevel(level)
		e.Logger.SetPrefix("echo")
	}
	return closer
}

func ParseLevel(s string) log.Lvl {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
