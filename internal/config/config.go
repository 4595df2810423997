package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is resolved once at process start. There is no runtime toggle:
// in particular the mock/HTTP choice is fixed for the life of the
// process.
type Config struct {
	// APIBaseURL is the backend root every entity path is joined to.
	APIBaseURL string
	// UseMockAPI serves every operation from the in-memory mock engine
	// instead of the network.
	UseMockAPI bool
	// HTTPTimeout bounds each backend call.
	HTTPTimeout time.Duration
	// MockLatency is the artificial delay of mock operations.
	MockLatency time.Duration
	// StateDir holds persisted client state (bearer token, remembered
	// login identifier).
	StateDir string
	// MockServerAddr is the listen address of the dev mock server.
	MockServerAddr string

	Log struct {
		Level  string
		Format string
	}
}

// Load reads the environment, preceded by a best-effort .env load.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.APIBaseURL = getEnv("API_BASE_URL", "http://localhost:8080/api")
	cfg.UseMockAPI = getEnv("USE_MOCK_API", "false") == "true"
	cfg.HTTPTimeout = time.Duration(parseInt(getEnv("HTTP_TIMEOUT_MS", "10000"), 10000)) * time.Millisecond
	cfg.MockLatency = time.Duration(parseInt(getEnv("MOCK_LATENCY_MS", "400"), 400)) * time.Millisecond
	cfg.StateDir = getEnv("STATE_DIR", defaultStateDir())
	cfg.MockServerAddr = getEnv("MOCK_HTTP_ADDR", ":8080")
	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "console")
	return cfg
}

func defaultStateDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "roomdesk")
	}
	return ".roomdesk"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
