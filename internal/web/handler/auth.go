package handler

import (
	"net/http"
	"strings"

	"github.com/gamingleague/tournaments-web/internal/services/session"
	"github.com/gamingleague/tournaments-web/internal/supabase"
	"github.com/gamingleague/tournaments-web/internal/web/middleware"
	"github.com/gamingleague/tournaments-web/internal/web/templates/layout"
	"github.com/gamingleague/tournaments-web/internal/web/templates/pages"
)

// AuthHandler handles sign-in and sign-out
type AuthHandler struct {
	gateway  supabase.Gateway
	sessions *session.Service
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(gateway supabase.Gateway, sessions *session.Service) *AuthHandler {
	return &AuthHandler{gateway: gateway, sessions: sessions}
}

// LoginPage renders the sign-in form
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetSession(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := pages.LoginData{
		PageData: layout.PageData{
			Title:   "Iniciar sesión",
			Flashes: middleware.GetFlashes(r.Context()),
		},
	}
	renderPage(w, r, pages.Login(data))
}

// Login handles the sign-in form submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, r, "", "Formulario no válido")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	if email == "" || password == "" {
		h.renderLoginError(w, r, email, "Email y contraseña son obligatorios")
		return
	}

	authSession, err := h.gateway.SignInWithPassword(r.Context(), email, password)
	if err != nil {
		h.renderLoginError(w, r, email, remoteMessage(err))
		return
	}

	sess, err := h.sessions.Create(r.Context(), authSession)
	if err != nil {
		h.renderLoginError(w, r, email, "No se pudo iniciar la sesión")
		return
	}

	setSessionCookie(w, sess.Token)
	middleware.AddFlash(w, layout.FlashMessage{
		Title:   "¡Bienvenido de nuevo!",
		Variant: layout.FlashDefault,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles sign-out
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		_ = h.sessions.Delete(r.Context(), cookie.Value)
	}
	clearSessionCookie(w)

	middleware.AddFlash(w, layout.FlashMessage{
		Title:   "Sesión cerrada",
		Variant: layout.FlashDefault,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) renderLoginError(w http.ResponseWriter, r *http.Request, email, message string) {
	data := pages.LoginData{
		PageData: layout.PageData{
			Title: "Iniciar sesión",
		},
		Email: email,
		Error: message,
	}
	renderPage(w, r, pages.Login(data))
}
