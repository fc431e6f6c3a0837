package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/automoto/hollowvale/config"
	"github.com/sirupsen/logrus"
)

// Environment overrides, checked after the config file.
const (
	EnvLevel  = "HOLLOWVALE_LOG_LEVEL"
	EnvFormat = "HOLLOWVALE_LOG_FORMAT"
)

// New builds the process logger. Level and format come from the config and
// can be overridden from the environment.
func New(cfg config.LoggingConfig, out io.Writer) (*logrus.Logger, error) {
	if out == nil {
		out = os.Stdout
	}

	levelName := cfg.Level
	if v, ok := os.LookupEnv(EnvLevel); ok {
		levelName = v
	}
	if levelName == "" {
		levelName = "info"
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	format := cfg.Format
	if v, ok := os.LookupEnv(EnvFormat); ok {
		format = v
	}

	log := logrus.New()
	log.SetLevel(level)
	log.SetOutput(out)

	switch strings.ToLower(format) {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	default:
		return nil, fmt.Errorf("log format %q: want text or json", format)
	}

	return log, nil
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
