// Package web wires the handlers, middleware and routes of the site.
package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gamingleague/tournaments-web/internal/services/catalog"
	"github.com/gamingleague/tournaments-web/internal/services/enroll"
	"github.com/gamingleague/tournaments-web/internal/services/register"
	"github.com/gamingleague/tournaments-web/internal/services/session"
	"github.com/gamingleague/tournaments-web/internal/supabase"
	"github.com/gamingleague/tournaments-web/internal/web/handler"
	"github.com/gamingleague/tournaments-web/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger           *slog.Logger
	Gateway          supabase.Gateway
	CatalogService   *catalog.Service
	EnrollService    *enroll.Service
	RegisterService  *register.Service
	SessionService   *session.Service
	DiscordInviteURL string
	StaticDir        string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.SessionService)

	// Applies to every route
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	homeHandler := handler.NewHomeHandler(cfg.CatalogService)
	tournamentHandler := handler.NewTournamentHandler(cfg.CatalogService, cfg.EnrollService, cfg.DiscordInviteURL)
	registerHandler := handler.NewRegisterHandler(cfg.RegisterService, cfg.SessionService)
	authHandler := handler.NewAuthHandler(cfg.Gateway, cfg.SessionService)
	paymentHandler := handler.NewPaymentHandler()

	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Every page route resolves the session if present; anonymous visitors
	// browse freely and the join action decides what a nil session means.
	pagesRouter := r.NewRoute().Subrouter()
	pagesRouter.Use(flashMiddleware)
	pagesRouter.Use(optionalAuthMiddleware)

	pagesRouter.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)

	pagesRouter.HandleFunc("/tournaments/{id}", tournamentHandler.View).Methods(http.MethodGet)
	pagesRouter.HandleFunc("/tournaments/{id}/join", tournamentHandler.Join).Methods(http.MethodPost)

	pagesRouter.HandleFunc("/register", registerHandler.Form).Methods(http.MethodGet)
	pagesRouter.HandleFunc("/register", registerHandler.Submit).Methods(http.MethodPost)
	pagesRouter.HandleFunc("/register/platforms", registerHandler.Platforms).Methods(http.MethodPost)

	pagesRouter.HandleFunc("/login", authHandler.LoginPage).Methods(http.MethodGet)
	pagesRouter.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	pagesRouter.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	pagesRouter.HandleFunc("/success", paymentHandler.Success).Methods(http.MethodGet)
	pagesRouter.HandleFunc("/cancel", paymentHandler.Cancel).Methods(http.MethodGet)

	return r
}
