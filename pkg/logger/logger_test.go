package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLogrusLevel(t *testing.T) {
	tests := []struct {
		in   zapcore.Level
		want logrus.Level
	}{
		{zapcore.DebugLevel, logrus.DebugLevel},
		{zapcore.InfoLevel, logrus.InfoLevel},
		{zapcore.WarnLevel, logrus.WarnLevel},
		{zapcore.ErrorLevel, logrus.ErrorLevel},
		{zapcore.FatalLevel, logrus.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, LogrusLevel(tt.in))
		})
	}
}

func TestNewWritesToRotatingFile(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)

	dir := t.TempDir()
	log := New(Config{ServiceName: "test", Level: "warn", Pretty: false, Dir: dir})
	log.Warnw("bridge missing", "path", "/opt/adb")
	log.Infow("filtered out")
	_ = log.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "test.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "bridge missing")
	assert.NotContains(t, string(data), "filtered out")
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
}

func TestGetIcon(t *testing.T) {
	assert.Equal(t, "🔴 ", getIcon(zapcore.ErrorLevel))
	assert.Equal(t, "", getIcon(zapcore.Level(42)))
}
