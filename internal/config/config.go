// Package config loads client configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the client needs to reach the TransCall backend
// and to place its local state.
type Config struct {
	ServerURL   string // base URL of the TransCall API server
	DataDir     string // directory for the session database and client log
	DownloadDir string // where recording downloads are written
}

// Load reads configuration from the environment. A .env file in the working
// directory is honored when present but never required.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		ServerURL:   strings.TrimRight(getEnv("TRANSCALL_SERVER", "http://localhost:5000"), "/"),
		DataDir:     getEnv("TRANSCALL_DATA_DIR", defaultDataDir()),
		DownloadDir: getEnv("TRANSCALL_DOWNLOAD_DIR", defaultDownloadDir()),
	}
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".transcall"
	}
	return filepath.Join(dir, "transcall")
}

func defaultDownloadDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
