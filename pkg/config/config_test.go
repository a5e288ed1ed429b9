package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var cfg Logging
	require.NoError(t, Load(&cfg))

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "text", cfg.Format)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	var cfg Logging
	require.NoError(t, Load(&cfg))

	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoadRequiredFieldMissing(t *testing.T) {
	type strict struct {
		Dir string `env:"MSG_DIR,required"`
	}

	var cfg strict
	err := Load(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MSG_DIR")
}
