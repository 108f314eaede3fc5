// Package factory wires the application's components from configuration.
package factory

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/gamingleague/tournaments-web/internal/config"
	"github.com/gamingleague/tournaments-web/internal/dependencies/clock"
	"github.com/gamingleague/tournaments-web/internal/dependencies/random"
	"github.com/gamingleague/tournaments-web/internal/payments"
	"github.com/gamingleague/tournaments-web/internal/services/catalog"
	"github.com/gamingleague/tournaments-web/internal/services/enroll"
	"github.com/gamingleague/tournaments-web/internal/services/register"
	"github.com/gamingleague/tournaments-web/internal/services/session"
	"github.com/gamingleague/tournaments-web/internal/storage"
	"github.com/gamingleague/tournaments-web/internal/storage/memory"
	redisstorage "github.com/gamingleague/tournaments-web/internal/storage/redis"
	"github.com/gamingleague/tournaments-web/internal/supabase"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Session storage
	Storage storage.Store

	// External dependencies
	Clock    clock.Clock
	Random   random.Random
	Gateway  supabase.Gateway
	Checkout payments.CheckoutCreator

	// Services
	CatalogService  *catalog.Service
	EnrollService   *enroll.Service
	RegisterService *register.Service
	SessionService  *session.Service
}

// New creates a new application with all dependencies wired from config.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStore(cfg)
	if err != nil {
		return nil, err
	}

	gateway := supabase.NewClient(supabase.Config{
		BaseURL:    cfg.SupabaseURL,
		AnonKey:    cfg.SupabaseAnonKey,
		ServiceKey: cfg.SupabaseServiceKey,
	})
	checkout := payments.NewStripeCheckout(cfg.StripeSecretKey)

	enrollCfg := enroll.Config{
		PriceID:    cfg.StripePriceID,
		SuccessURL: strings.TrimSuffix(cfg.PublicBaseURL, "/") + "/success",
		CancelURL:  strings.TrimSuffix(cfg.PublicBaseURL, "/") + "/cancel",
	}

	return NewWithDependencies(store, gateway, checkout, enrollCfg, logger), nil
}

// NewWithDependencies creates an App with the given dependencies, letting
// tests substitute the remote gateway and payment provider.
func NewWithDependencies(store storage.Store, gateway supabase.Gateway, checkout payments.CheckoutCreator, enrollCfg enroll.Config, logger *slog.Logger) *App {
	clk := clock.New()
	rnd := random.New()

	sessionService := session.New(store, clk, rnd, session.DefaultConfig())
	catalogService := catalog.New(gateway, logger)
	enrollService := enroll.New(gateway, checkout, enrollCfg, logger)
	registerService := register.New(gateway, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		Gateway:         gateway,
		Checkout:        checkout,
		CatalogService:  catalogService,
		EnrollService:   enrollService,
		RegisterService: registerService,
		SessionService:  sessionService,
	}
}

func newStore(cfg *config.Config) (storage.Store, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisURL == "" {
			return nil, errors.New("REDIS_URL required when storage type is redis")
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		return redisstorage.New(redisCfg)
	default:
		return nil, errors.New("invalid storage type: must be 'memory' or 'redis'")
	}
}
