package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New создает JSON-логгер сервиса
func New(logLevel string) *logrus.Logger {
	return build(logLevel, os.Stdout, &logrus.JSONFormatter{})
}

// NewCLI создает текстовый логгер для sigo-cli; вывод в stderr, чтобы не смешивать с результатом команды
func NewCLI(logLevel string) *logrus.Logger {
	return build(logLevel, os.Stderr, &logrus.TextFormatter{DisableTimestamp: true})
}

func build(logLevel string, out io.Writer, formatter logrus.Formatter) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(formatter)
	log.SetOutput(out)

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
