package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notepad/pkg/config"
)

type sampleConfig struct {
	Name string `env:"PKG_CONFIG_TEST_NAME" env-default:"default-name"`
	Port int    `env:"PKG_CONFIG_TEST_PORT" env-default:"8080"`
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("uses defaults when env file is missing", func(t *testing.T) {
		cfg, err := config.Load[sampleConfig](ctx, "test", filepath.Join(t.TempDir(), "absent.env"))
		require.NoError(t, err)
		assert.Equal(t, "default-name", cfg.Name)
		assert.Equal(t, 8080, cfg.Port)
	})

	t.Run("reads process environment", func(t *testing.T) {
		t.Setenv("PKG_CONFIG_TEST_PORT", "9090")

		cfg, err := config.Load[sampleConfig](ctx, "test", "")
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Port)
	})

	t.Run("reads env file", func(t *testing.T) {
		t.Setenv("PKG_CONFIG_TEST_NAME", "")
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("PKG_CONFIG_TEST_NAME=from-file\n"), 0o600))

		cfg, err := config.Load[sampleConfig](ctx, "test", path)
		require.NoError(t, err)
		assert.Equal(t, "from-file", cfg.Name)
	})

	t.Run("returns error on invalid value", func(t *testing.T) {
		t.Setenv("PKG_CONFIG_TEST_PORT", "not_a_number")

		cfg, err := config.Load[sampleConfig](ctx, "test", "")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "failed to load configuration")
	})
}
