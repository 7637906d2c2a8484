package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/config"
)

// SetupLogging builds the process logger. Output goes to stderr so command
// output on stdout stays machine readable.
func SetupLogging(cfg *config.Config) *logrus.Logger {
	return NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
}

func NewLogger(out io.Writer, level string, format string) *logrus.Logger {
	logger := &logrus.Logger{
		Out:   out,
		Hooks: make(logrus.LevelHooks),
	}
	apply(logger, level, format)
	return logger
}

// Configure applies the level and format from cfg to an existing logger.
func Configure(logger *logrus.Logger, cfg *config.Config) {
	apply(logger, cfg.LogLevel, cfg.LogFormat)
}

func apply(logger *logrus.Logger, level string, format string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	if format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
		return
	}
	logger.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyLevel: "loglevel",
		},
	})
}
