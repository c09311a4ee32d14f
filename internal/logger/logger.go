// Package logger wraps logrus with file rotation and request-scoped
// fields. Named loggers write to separate rotated files under the log
// directory and mirror to stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig controls output targets, level and rotation.
type LogConfig struct {
	Level      string // debug, info, warn, error
	LogDir     string // directory for rotated files, relative to cwd when not absolute
	Format     string // "json" or "text"
	MaxSizeMB  int    // rotate after this size
	MaxBackups int    // rotated files kept
	MaxAgeDays int    // days rotated files kept
	Compress   bool
	ToStdout   bool
}

// DefaultConfig is what the server falls back to before the real
// configuration is loaded.
func DefaultConfig() *LogConfig {
	return &LogConfig{
		Level:      "info",
		LogDir:     "logs",
		Format:     "text",
		MaxSizeMB:  50,
		MaxBackups: 5,
		MaxAgeDays: 30,
		Compress:   true,
		ToStdout:   true,
	}
}

var (
	loggers   = make(map[string]*logrus.Logger)
	loggersMu sync.Mutex
	config    *LogConfig
)

// Init sets up the logging system. Safe to call once at boot; GetLogger
// falls back to DefaultConfig when Init was never called.
func Init(cfg *LogConfig) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	config = cfg

	if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
		return fmt.Errorf("logger: create log directory: %w", err)
	}
	return nil
}

// GetLogger returns the named logger, creating it on first use.
func GetLogger(name string) *logrus.Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if config == nil {
		if err := Init(nil); err != nil {
			panic(fmt.Sprintf("logger: init failed: %v", err))
		}
	}

	if l, ok := loggers[name]; ok {
		return l
	}

	l := createLogger(name)
	loggers[name] = l
	return l
}

func createLogger(name string) *logrus.Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if config.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
		})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
		})
	}

	writers := []io.Writer{
		&lumberjack.Logger{
			Filename:   filepath.Join(config.LogDir, name+".log"),
			MaxSize:    config.MaxSizeMB,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAgeDays,
			Compress:   config.Compress,
		},
	}
	if config.ToStdout {
		writers = append(writers, os.Stdout)
	}
	l.SetOutput(io.MultiWriter(writers...))

	return l
}

// GetAppLogger returns the main application logger.
func GetAppLogger() *logrus.Logger {
	return GetLogger("app")
}

// GetErrorLogger returns the logger reserved for error reporting.
func GetErrorLogger() *logrus.Logger {
	return GetLogger("error")
}
