package connect

import (
	"fmt"
	"log/slog"

	"github.com/Azhar512/tassiecar/internal/config"
	"github.com/supabase-community/supabase-go"
)

// Placeholder connection used when the operator forgot to configure the
// backend. Requests against it fail, but the process stays up so the
// misconfiguration is diagnosable from the logs.
const (
	placeholderURL = "https://placeholder.supabase.co"
	placeholderKey = "placeholder-key"
)

// InitSupabase builds the single Supabase client shared by every
// repository. It is constructed once at startup and injected by reference
// through the container.
func InitSupabase(cfg *config.Config, logger *slog.Logger) (*supabase.Client, error) {
	url := cfg.SupabaseURL
	key := cfg.SupabaseAnonKey

	if !cfg.HasSupabaseCredentials() {
		logger.Error("Missing Supabase environment variables",
			"has_url", cfg.SupabaseURL != "",
			"has_key", cfg.SupabaseAnonKey != "",
			"hint", "set SUPABASE_URL and SUPABASE_ANON_KEY in .env.local",
		)
		url = placeholderURL
		key = placeholderKey
	}

	client, err := supabase.NewClient(url, key, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Supabase client: %w", err)
	}
	return client, nil
}
