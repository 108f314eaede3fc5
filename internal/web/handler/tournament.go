package handler

import (
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/gamingleague/tournaments-web/internal/model"
	"github.com/gamingleague/tournaments-web/internal/services/catalog"
	"github.com/gamingleague/tournaments-web/internal/services/enroll"
	"github.com/gamingleague/tournaments-web/internal/web/middleware"
	"github.com/gamingleague/tournaments-web/internal/web/templates/layout"
	"github.com/gamingleague/tournaments-web/internal/web/templates/pages"
)

// TournamentHandler handles the tournament detail page and join action
type TournamentHandler struct {
	catalog    *catalog.Service
	enroll     *enroll.Service
	discordURL string
}

// NewTournamentHandler creates a new TournamentHandler
func NewTournamentHandler(catalogService *catalog.Service, enrollService *enroll.Service, discordURL string) *TournamentHandler {
	return &TournamentHandler{catalog: catalogService, enroll: enrollService, discordURL: discordURL}
}

// View renders the tournament detail page
func (h *TournamentHandler) View(w http.ResponseWriter, r *http.Request) {
	id := model.TournamentID(mux.Vars(r)["id"])

	tournament, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		middleware.AddFlash(w, layout.FlashMessage{
			Title:       "Error",
			Description: "Torneo no encontrado",
			Variant:     layout.FlashDestructive,
		})
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := pages.TournamentData{
		PageData: layout.PageData{
			Title:   tournament.Name,
			Session: middleware.GetSession(r.Context()),
			Flashes: middleware.GetFlashes(r.Context()),
		},
		Tournament: *tournament,
		DiscordURL: h.discordURL,
	}

	renderPage(w, r, pages.Tournament(data))
}

// Join runs the enrollment workflow and redirects per its outcome.
func (h *TournamentHandler) Join(w http.ResponseWriter, r *http.Request) {
	id := model.TournamentID(mux.Vars(r)["id"])
	detailPath := "/tournaments/" + string(id)

	tournament, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		middleware.AddFlash(w, layout.FlashMessage{
			Title:       "Error",
			Description: "Torneo no encontrado",
			Variant:     layout.FlashDestructive,
		})
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	sess := middleware.GetSession(r.Context())
	result, err := h.enroll.Join(r.Context(), sess, *tournament)
	if err != nil {
		title := "Error en la inscripción"
		if tournament.IsPaid {
			title = "Error en el pago"
		}
		middleware.AddFlash(w, layout.FlashMessage{
			Title:       title,
			Description: remoteMessage(err),
			Variant:     layout.FlashDestructive,
		})
		http.Redirect(w, r, detailPath, http.StatusSeeOther)
		return
	}

	switch result.Outcome {
	case enroll.RegistrationRequired:
		middleware.AddFlash(w, layout.FlashMessage{
			Title:       "Cuenta necesaria",
			Description: "Crea una cuenta para inscribirte en el torneo",
			Variant:     layout.FlashDefault,
		})
		http.Redirect(w, r, "/register?next="+url.QueryEscape(detailPath), http.StatusSeeOther)

	case enroll.NotVerified:
		middleware.AddFlash(w, layout.FlashMessage{
			Title:       "Cuenta no verificada",
			Description: "Por favor, verifica tu cuenta de correo electrónico para participar",
			Variant:     layout.FlashDestructive,
		})
		http.Redirect(w, r, detailPath, http.StatusSeeOther)

	case enroll.CheckoutStarted:
		// Hosted checkout takes over from here.
		http.Redirect(w, r, result.CheckoutURL, http.StatusSeeOther)

	case enroll.Enrolled:
		middleware.AddFlash(w, layout.FlashMessage{
			Title:       "¡Inscripción exitosa!",
			Description: "Te has inscrito en " + tournament.Name,
			Variant:     layout.FlashDefault,
		})
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// remoteMessage surfaces the provider's own error text verbatim, with a
// generic fallback for anything else.
func remoteMessage(err error) string {
	if remote, ok := model.AsRemote(err); ok && remote.Message != "" {
		return remote.Message
	}
	return "Ha ocurrido un error inesperado"
}
