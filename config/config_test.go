package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeErrorMessage(t *testing.T) {
	fallback := "operation failed"
	testErr := errors.New("internal database error")

	// nil err returns the fallback
	assert.Equal(t, fallback, SafeErrorMessage(nil, fallback))

	// release mode returns the fallback, hiding the error detail
	GlobalConfig = &Config{Server: ServerConfig{Mode: "release"}}
	defer func() { GlobalConfig = nil }()
	assert.Equal(t, fallback, SafeErrorMessage(testErr, fallback))

	// debug mode returns err.Error()
	GlobalConfig = &Config{Server: ServerConfig{Mode: "debug"}}
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))

	// nil GlobalConfig is treated as development
	GlobalConfig = nil
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.Port)
	assert.Equal(t, "menucatalog", cfg.Database.DBName)
	assert.False(t, cfg.AI.Enabled)
	assert.Equal(t, 30, cfg.AI.TimeoutSeconds)
	assert.NotZero(t, cfg.AI.Timeout)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Same(t, cfg, GlobalConfig)
}
