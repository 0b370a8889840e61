package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// New настраивает логгер приложения. JSON для боевых стендов,
// текстовый формат - для локального запуска (LOG_FORMAT=text).
func New(logLevel, logFormat string) *logrus.Logger {
	log := logrus.New()

	switch logFormat {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	}

	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // некорректное значение не валит запуск
	}
	log.SetLevel(level)
	return log
}
