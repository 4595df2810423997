package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "http://localhost:8080/api", cfg.APIBaseURL)
	assert.False(t, cfg.UseMockAPI)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 400*time.Millisecond, cfg.MockLatency)
	assert.Equal(t, ":8080", cfg.MockServerAddr)
	assert.NotEmpty(t, cfg.StateDir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://api.example.com")
	t.Setenv("USE_MOCK_API", "true")
	t.Setenv("MOCK_LATENCY_MS", "0")
	t.Setenv("HTTP_TIMEOUT_MS", "2500")

	cfg := Load()
	assert.Equal(t, "http://api.example.com", cfg.APIBaseURL)
	assert.True(t, cfg.UseMockAPI)
	assert.Zero(t, cfg.MockLatency)
	assert.Equal(t, 2500*time.Millisecond, cfg.HTTPTimeout)
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT_MS", "not-a-number")
	cfg := Load()
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
}
