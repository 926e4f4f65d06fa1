package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_AttachesServiceField(t *testing.T) {
	log := NewLogger("eventlista")

	assert.Equal(t, "eventlista", log.Data["service"])

	var buf bytes.Buffer
	log.Logger.SetOutput(&buf)
	log.Info("hello")

	assert.Contains(t, buf.String(), `"service":"eventlista"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestNewLogger_LevelFromEnvironment(t *testing.T) {
	tests := []struct {
		env  string
		want logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
		{"bogus", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run("level "+tt.env, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.env)
			log := NewLogger("eventlista")
			assert.Equal(t, tt.want, log.Logger.GetLevel())
		})
	}
}
