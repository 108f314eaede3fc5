package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs from the environment. The
// application itself stores no domain data, so this is entirely endpoints
// and credentials for the delegated backends.
type Config struct {
	// HTTP server
	ServerPort int
	// PublicBaseURL is the externally reachable base URL, used to build the
	// absolute success/cancel redirect targets for checkout.
	PublicBaseURL string

	// Supabase
	SupabaseURL     string
	SupabaseAnonKey string
	// SupabaseServiceKey enables the compensating auth-identity delete when
	// the second sign-up step fails. Optional; without it orphaned identities
	// are only logged.
	SupabaseServiceKey string

	// Stripe
	StripeSecretKey string
	// StripePriceID is the fixed price reference used for every paid
	// tournament checkout.
	StripePriceID string

	// Session storage: "memory" or "redis"
	StorageType string
	RedisURL    string

	// DiscordInviteURL is the community chat link on the detail view.
	DiscordInviteURL string
}

// Load reads configuration from the environment, optionally seeded from a
// .env file (missing .env is not an error).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		PublicBaseURL:      getEnvOrDefault("PUBLIC_BASE_URL", "http://localhost:8080"),
		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey:    os.Getenv("SUPABASE_ANON_KEY"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_KEY"),
		StripeSecretKey:    os.Getenv("STRIPE_SECRET_KEY"),
		StripePriceID:      getEnvOrDefault("STRIPE_PRICE_ID", "price_1R7R1HEOpvFVADRhf2r2N64E"),
		StorageType:        getEnvOrDefault("STORAGE_TYPE", "memory"),
		RedisURL:           os.Getenv("REDIS_URL"),
		DiscordInviteURL:   getEnvOrDefault("DISCORD_INVITE_URL", "https://discord.gg/yjcQSPt5"),
	}

	if cfg.SupabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL environment variable is not set")
	}
	if cfg.SupabaseAnonKey == "" {
		return nil, fmt.Errorf("SUPABASE_ANON_KEY environment variable is not set")
	}
	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY environment variable is not set")
	}

	portStr := getEnvOrDefault("SERVER_PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}
	cfg.ServerPort = port

	if cfg.StorageType == "redis" && cfg.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required when STORAGE_TYPE=redis")
	}

	return cfg, nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
