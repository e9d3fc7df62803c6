package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, "https://www.e-st.lv", cfg.BaseURL)
	require.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	require.Equal(t, "info", cfg.LogLevel)
	require.Empty(t, cfg.Username)
	require.Empty(t, cfg.Password)
	require.Empty(t, cfg.MeterID)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("EST_USERNAME", "user@example.com")
	t.Setenv("EST_PASSWORD", "hunter2")
	t.Setenv("EST_METER", "12345")
	t.Setenv("EST_BASE_URL", "https://staging.e-st.lv")
	t.Setenv("HTTP_TIMEOUT", "5")

	cfg := DefaultConfig()
	cfg.LoadFromEnv()

	require.Equal(t, "user@example.com", cfg.Username)
	require.Equal(t, "hunter2", cfg.Password)
	require.Equal(t, "12345", cfg.MeterID)
	require.Equal(t, "https://staging.e-st.lv", cfg.BaseURL)
	require.Equal(t, 5*time.Second, cfg.HTTPTimeout)
}

func TestLoadFromEnvIgnoresInvalidTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "not-a-number")

	cfg := DefaultConfig()
	cfg.LoadFromEnv()
	require.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}
