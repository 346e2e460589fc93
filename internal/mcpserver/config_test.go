package mcpserver

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

// clearConvkitEnv clears all CONVKIT_* env vars to isolate tests from the ambient environment.
func clearConvkitEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CONVKIT_ROMAN_STRICT", "CONVKIT_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConvkitEnv(t)

	c := loadConfig()

	assert.False(t, c.RomanStrict)
	assert.Equal(t, slog.LevelInfo, c.LogLevel)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearConvkitEnv(t)
	t.Setenv("CONVKIT_ROMAN_STRICT", "true")
	t.Setenv("CONVKIT_LOG_LEVEL", "debug")

	c := loadConfig()

	assert.True(t, c.RomanStrict)
	assert.Equal(t, slog.LevelDebug, c.LogLevel)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	clearConvkitEnv(t)
	t.Setenv("CONVKIT_ROMAN_STRICT", "sometimes")
	t.Setenv("CONVKIT_LOG_LEVEL", "loud")

	c := loadConfig()

	assert.False(t, c.RomanStrict)
	assert.Equal(t, slog.LevelInfo, c.LogLevel)
}

func TestEnvLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("CONVKIT_LOG_LEVEL", tt.value)
			assert.Equal(t, tt.want, envLevel("CONVKIT_LOG_LEVEL", slog.LevelInfo))
		})
	}
}
