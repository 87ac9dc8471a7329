package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"cab-booking/internal/config"

	"github.com/sirupsen/logrus"
)

// Logger оборачивает logrus.Logger
type Logger struct {
	*logrus.Logger
}

// New создает логгер по конфигурации. Неизвестный уровень трактуется как info,
// неизвестный формат как json.
func New(cfg *config.LoggerConfig) *Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	default:
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	}

	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.WithError(err).WithField("file", cfg.File).Warn("Failed to open log file, using stderr only")
		} else {
			log.SetOutput(io.MultiWriter(os.Stderr, file))
		}
	}

	return &Logger{Logger: log}
}

// NewDiscard возвращает логгер, который ничего не пишет
func NewDiscard() *Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &Logger{Logger: log}
}
