package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNew_Level(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New("debug").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("nonsense").GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, New("info").Formatter)
	assert.IsType(t, &logrus.TextFormatter{}, NewCLI("warn").Formatter)
}
