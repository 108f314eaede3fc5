// Package handler holds the web page handlers.
package handler

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/gamingleague/tournaments-web/internal/services/catalog"
	"github.com/gamingleague/tournaments-web/internal/web/middleware"
	"github.com/gamingleague/tournaments-web/internal/web/templates/layout"
	"github.com/gamingleague/tournaments-web/internal/web/templates/pages"
)

// HomeHandler handles the tournament catalog page
type HomeHandler struct {
	catalog *catalog.Service
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(catalogService *catalog.Service) *HomeHandler {
	return &HomeHandler{catalog: catalogService}
}

// Home renders the catalog. A fetch failure degrades to an empty catalog
// with a single error toast; the page itself still renders.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	flashes := middleware.GetFlashes(r.Context())

	tournaments, err := h.catalog.List(r.Context())
	if err != nil {
		tournaments = nil
		flashes = append(flashes, layout.FlashMessage{
			Title:       "Error",
			Description: "No se pudieron cargar los torneos",
			Variant:     layout.FlashDestructive,
		})
	}

	data := pages.HomeData{
		PageData: layout.PageData{
			Title:   "Torneos",
			Session: sess,
			Flashes: flashes,
		},
		Tournaments: tournaments,
	}

	renderPage(w, r, pages.Home(data))
}

// renderPage writes a rendered page component, shared by every handler.
func renderPage(w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
