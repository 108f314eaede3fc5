package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gamingleague/tournaments-web/internal/model"
	"github.com/gamingleague/tournaments-web/internal/services/register"
	"github.com/gamingleague/tournaments-web/internal/services/session"
	"github.com/gamingleague/tournaments-web/internal/web/middleware"
	"github.com/gamingleague/tournaments-web/internal/web/templates/layout"
	"github.com/gamingleague/tournaments-web/internal/web/templates/pages"
)

// RegisterHandler handles the player registration form
type RegisterHandler struct {
	register *register.Service
	sessions *session.Service
}

// NewRegisterHandler creates a new RegisterHandler
func NewRegisterHandler(registerService *register.Service, sessions *session.Service) *RegisterHandler {
	return &RegisterHandler{register: registerService, sessions: sessions}
}

// Form renders the empty registration form
func (h *RegisterHandler) Form(w http.ResponseWriter, r *http.Request) {
	if middleware.GetSession(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, r, model.NewRegistrationDraft(), nil, r.URL.Query().Get("next"), middleware.GetFlashes(r.Context()))
}

// Platforms handles the add/remove platform-row buttons. The draft round-
// trips through the form, so everything already typed survives the edit.
// HTMX requests get just the fieldset fragment; plain posts re-render the
// whole page.
func (h *RegisterHandler) Platforms(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	draft := draftFromForm(r)
	if r.FormValue("add") != "" {
		draft.AddPlatformRow()
	} else if removeValue := r.FormValue("remove"); removeValue != "" {
		index, err := strconv.Atoi(removeValue)
		if err == nil {
			draft.RemovePlatformRow(index)
		}
	}

	if r.Header.Get("HX-Request") == "true" {
		renderPage(w, r, pages.PlatformFieldset(draft, nil))
		return
	}
	h.render(w, r, draft, nil, r.FormValue("next"), middleware.GetFlashes(r.Context()))
}

// Submit validates and runs the sign-up
func (h *RegisterHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	draft := draftFromForm(r)
	next := r.FormValue("next")
	result, validationErrs, err := h.register.SignUp(r.Context(), draft)

	if len(validationErrs) > 0 {
		flashes := append(middleware.GetFlashes(r.Context()), layout.FlashMessage{
			Title:       "Error",
			Description: validationErrs[0].Message,
			Variant:     layout.FlashDestructive,
		})
		h.render(w, r, draft, validationErrs, next, flashes)
		return
	}
	if err != nil {
		flashes := append(middleware.GetFlashes(r.Context()), layout.FlashMessage{
			Title:       "Error en el registro",
			Description: remoteMessage(err),
			Variant:     layout.FlashDestructive,
		})
		h.render(w, r, draft, nil, next, flashes)
		return
	}

	// Email confirmation pending: usually there is no auth session yet.
	// When the backend does hand one back, sign the user in right away.
	if result.Session != nil {
		if sess, err := h.sessions.Create(r.Context(), result.Session); err == nil {
			setSessionCookie(w, sess.Token)
		}
	}

	middleware.AddFlash(w, layout.FlashMessage{
		Title:       "¡Registro iniciado!",
		Description: "Por favor, verifica tu correo electrónico para activar tu cuenta",
		Variant:     layout.FlashDefault,
	})
	if strings.HasPrefix(next, "/") {
		http.Redirect(w, r, next, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *RegisterHandler) render(w http.ResponseWriter, r *http.Request, draft model.RegistrationDraft, errs []model.ValidationError, next string, flashes []layout.FlashMessage) {
	data := pages.RegisterData{
		PageData: layout.PageData{
			Title:   "Crear cuenta",
			Session: middleware.GetSession(r.Context()),
			Flashes: flashes,
		},
		Draft:  draft,
		Errors: errs,
		Next:   next,
	}
	renderPage(w, r, pages.Register(data))
}

// draftFromForm rebuilds the draft from the submitted fields. The platform
// selects and handle inputs repeat under one name each; position pairs
// them up. A form with no rows at all yields the single empty row.
func draftFromForm(r *http.Request) model.RegistrationDraft {
	draft := model.RegistrationDraft{
		Username:        strings.TrimSpace(r.FormValue("username")),
		Email:           strings.TrimSpace(r.FormValue("email")),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("password_confirm"),
	}

	names := r.Form["platform_name"]
	handles := r.Form["platform_username"]
	rows := len(names)
	if len(handles) > rows {
		rows = len(handles)
	}
	for i := 0; i < rows; i++ {
		var row model.PlatformIdentity
		if i < len(names) {
			row.Platform = model.Platform(names[i])
		}
		if i < len(handles) {
			row.Handle = strings.TrimSpace(handles[i])
		}
		draft.Platforms = append(draft.Platforms, row)
	}
	if len(draft.Platforms) == 0 {
		draft.Platforms = []model.PlatformIdentity{{}}
	}
	return draft
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
