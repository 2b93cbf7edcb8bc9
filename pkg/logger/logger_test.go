package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/tubeblog/pkg/config"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log, err := New(
		config.ServerConfig{Environment: "production"},
		config.LogConfig{Level: "info", File: path, MaxSizeMB: 1},
	)
	require.NoError(t, err)

	log.Info("pipeline.started")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "pipeline.started")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(config.ServerConfig{}, config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}
