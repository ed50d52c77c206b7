package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/idilsaglam/todoboard/internal/api"
	"github.com/idilsaglam/todoboard/internal/store/prefs"
)

const (
	EnvAPIURL = "TODO_API_URL"
	EnvTheme  = "TODO_THEME"
	EnvDebug  = "TODO_DEBUG"
)

type Config struct {
	APIURL string
	Theme  string
	Debug  bool
}

// Load reads an optional .env file, then the environment. The theme falls
// back to the saved preference.
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	theme := os.Getenv(EnvTheme)
	if theme == "" {
		if p, err := prefs.Load(); err == nil {
			theme = p.Theme
		}
	}

	return &Config{
		APIURL: getEnvOrDefault(EnvAPIURL, api.DefaultBaseURL),
		Theme:  theme,
		Debug:  truthy(os.Getenv(EnvDebug)),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
