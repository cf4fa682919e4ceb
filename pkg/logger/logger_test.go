package logger

import (
	"os"
	"path/filepath"
	"testing"

	"ces/pkg/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_WritesRotatedFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "console.log")
	cfg := &config.Config{Log: config.LogConfig{
		Level:    "debug",
		Format:   "json",
		FilePath: logPath,
		MaxSize:  1,
	}}

	require.NoError(t, Initialize(cfg))
	GetLogger().Info("hello")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Equal(t, logrus.DebugLevel, GetLogger().GetLevel())
}

func TestInitialize_UnknownLevelDefaultsToInfo(t *testing.T) {
	cfg := &config.Config{Log: config.LogConfig{Level: "loud", Format: "text"}}

	require.NoError(t, Initialize(cfg))
	assert.Equal(t, logrus.InfoLevel, GetLogger().GetLevel())
	_, isText := GetLogger().Formatter.(*logrus.TextFormatter)
	assert.True(t, isText)
}
