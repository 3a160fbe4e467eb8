package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Supabase SupabaseConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type SupabaseConfig struct {
	URL string
	Key string
}

// Load reads configuration from the environment (and an optional .env
// file). SUPABASE_URL and SUPABASE_KEY are required; everything else has a
// default. Each service passes its own name and default port.
func Load(service, defaultPort string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", service),
			Version:     getEnv("APP_VERSION", "0.1.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", defaultPort),
		},
		Supabase: SupabaseConfig{
			URL: os.Getenv("SUPABASE_URL"),
			Key: os.Getenv("SUPABASE_KEY"),
		},
	}

	if cfg.Supabase.URL == "" {
		return nil, errors.New("missing supabase url")
	}

	if cfg.Supabase.Key == "" {
		return nil, errors.New("missing supabase key")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
