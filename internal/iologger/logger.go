// Package iologger provides slog-based logging initialization and configuration.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gnsys"
	"github.com/gnames/gnt2t/pkg/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFile is the name of the log file in the logs directory.
const LogFile = "gnt2t.log"

var logFile *lumberjack.Logger

// Init initializes the global slog logger with the given configuration.
// For the "file" destination logs go to logDir/gnt2t.log, which is rotated
// when it grows over 20MB. Calling Init again closes the previous log
// file.
func Init(logDir string, cfg config.LogConfig) error {
	var writer io.Writer

	switch cfg.Destination {
	case "stdout":
		writer = os.Stdout
	case "file":
		if err := gnsys.MakeDir(logDir); err != nil {
			return CreateLogFileError(logDir, err)
		}
		Close()
		logFile = &lumberjack.Logger{
			Filename:   filepath.Join(logDir, LogFile),
			MaxSize:    20,
			MaxBackups: 3,
			MaxAge:     30,
		}
		writer = logFile
	default:
		writer = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch cfg.Format {
	case "text", "tint":
		handler = slog.NewTextHandler(writer, handlerOpts)
	default:
		handler = slog.NewJSONHandler(writer, handlerOpts)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

// Close closes the log file if it is open.
func Close() {
	if logFile == nil {
		return
	}
	_ = logFile.Close()
	logFile = nil
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
