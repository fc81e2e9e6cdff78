package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime parameters resolved from environment defaults and
// flags. Flag values are bound directly onto the fields.
type Config struct {
	ModelsDir     string
	ManifestPath  string
	Concurrency   int
	Retries       int
	StatusAddr    string
	CORSEnabled   bool
	CORSOrigins   string
	LogLevel      string
	LogFormat     string
	HeaderTimeout time.Duration
}

// defaultConfig resolves defaults from the environment so --help renders
// the effective values.
func defaultConfig() *Config {
	return &Config{
		ModelsDir:     envStr("MODELGET_MODELS_DIR", "models"),
		ManifestPath:  envStr("MODELGET_MANIFEST", ""),
		Concurrency:   envInt("MODELGET_CONCURRENCY", 1),
		Retries:       envInt("MODELGET_RETRIES", 0),
		StatusAddr:    envStr("MODELGET_STATUS_ADDR", ""),
		CORSEnabled:   envBool("MODELGET_CORS_ENABLED", false),
		CORSOrigins:   envStr("MODELGET_CORS_ORIGINS", "*"),
		LogLevel:      envStr("MODELGET_LOG_LEVEL", "info"),
		LogFormat:     envStr("MODELGET_LOG_FORMAT", "console"),
		HeaderTimeout: envDuration("MODELGET_HEADER_TIMEOUT", 30*time.Second),
	}
}

// loadDotenv loads .env (never overriding real environment variables) and
// then .env.local, whose values win over both. Missing files are fine.
func loadDotenv() error {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return fmt.Errorf("load .env: %w", err)
		}
	}
	if _, err := os.Stat(".env.local"); err == nil {
		if err := godotenv.Overload(".env.local"); err != nil {
			return fmt.Errorf("load .env.local: %w", err)
		}
	}
	return nil
}

// hfToken returns the hugging face bearer token, if configured.
func hfToken() string {
	return envStr("HF_TOKEN", envStr("HUGGINGFACE_TOKEN", ""))
}

// Env helpers
func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	s := strings.ToLower(v)
	return s == "1" || s == "true" || s == "yes"
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var n int
		_, err := fmt.Sscanf(v, "%d", &n)
		if err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// splitCSV splits a comma-separated flag value, trimming spaces and
// dropping empty items.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
