package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	// Policy is "strict" or "lenient".
	Policy        string
	WorkerCount   int
	IncludeGlobs  []string
	ExcludeGlobs  []string
	OutputDir     string
	OutputPackage string
	CachePath     string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	return &Config{
		Policy:        getEnv("RESXCHECK_POLICY", "strict"),
		WorkerCount:   getEnvInt("WORKER_COUNT", 8),
		IncludeGlobs:  getEnvList("INCLUDE_GLOBS", nil),
		ExcludeGlobs:  getEnvList("EXCLUDE_GLOBS", []string{"**/obj/**", "**/bin/**"}),
		OutputDir:     getEnv("OUTPUT_DIR", ""),
		OutputPackage: getEnv("OUTPUT_PACKAGE", "resources"),
		CachePath:     getEnv("CACHE_PATH", ".resxcheck-cache.json"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
