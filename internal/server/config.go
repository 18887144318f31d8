// internal/server/config.go
package server

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the server runtime configuration, read from the environment
// (with .env support for local development).
type Config struct {
	Port      string
	CacheSize int
	MaxSeqLen int
}

// LoadConfig loads .env if present and applies defaults.
func LoadConfig() Config {
	_ = godotenv.Load()
	return Config{
		Port:      envStr("PORT", "8080"),
		CacheSize: envInt("DFM_CACHE_SIZE", 256),
		MaxSeqLen: envInt("DFM_MAX_SEQ_LEN", 5000),
	}
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
