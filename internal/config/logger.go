package config

import (
	"context"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type loggerKey struct{}

var Logger = logrus.New()

func InitLogger(cfg LogConfig) {
	Logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)

	if strings.EqualFold(cfg.Format, "text") {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	if err != nil && cfg.Level != "" {
		Logger.WithField("level", cfg.Level).Warn("Unknown log level, falling back to info")
	}
}

// ContextWithLogger stores a request-scoped entry for WithContext to pick up.
func ContextWithLogger(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, loggerKey{}, entry)
}

func WithContext(ctx context.Context) *logrus.Entry {
	if ctx != nil {
		if entry, ok := ctx.Value(loggerKey{}).(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.NewEntry(Logger)
}
