// internal/infra/logger/logger.go
package logger

import (
	"io"
	"os"
	"strings"

	"homework_status_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
)

// Log is the global logger instance. It writes to stdout even before Init,
// so startup failures end up in the same stream as the rest of the log.
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	return l
}

// Init configures the global logger for stdout.
func Init(cfg *config.AppConfig) {
	Configure(Log, os.Stdout, cfg)

	Log.Info("Logger initialized successfully.")
	Log.Debugf("Log level set to: %s", Log.GetLevel().String())
	Log.Debugf("Log format set for environment: %s", cfg.Environment)
}

// Configure applies level and formatter settings to l.
func Configure(l *logrus.Logger, out io.Writer, cfg *config.AppConfig) {
	l.SetOutput(out)

	level, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		l.Warnf("Invalid log level '%s', defaulting to 'info'. Error: %v", cfg.LogLevel, err)
		l.SetLevel(logrus.InfoLevel)
	} else {
		l.SetLevel(level)
	}

	if env := strings.ToLower(cfg.Environment); env == "production" || env == "staging" {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00", // ISO8601
		})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
}

// Component returns an entry tagged with the component name.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
