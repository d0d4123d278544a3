package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port            string `envconfig:"PORT" default:"8080"`
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	SupabaseURL     string `envconfig:"SUPABASE_URL"`
	SupabaseAnonKey string `envconfig:"SUPABASE_ANON_KEY"`
	CorsOrigin      string `envconfig:"CORS_ORIGIN" default:"http://localhost:3000"`
	// SimulateLatency turns on artificial delays around every data operation
	// so front-end loading states stay observable during development.
	SimulateLatency bool `envconfig:"SIMULATE_LATENCY" default:"false"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// HasSupabaseCredentials reports whether a real backend connection can be
// established. A missing URL or key is an operator error, not a reason to
// crash: the caller falls back to a placeholder connection and logs loudly.
func (c *Config) HasSupabaseCredentials() bool {
	return c.SupabaseURL != "" && c.SupabaseAnonKey != ""
}
