package handler

import (
	"net/http"

	"github.com/gamingleague/tournaments-web/internal/web/middleware"
	"github.com/gamingleague/tournaments-web/internal/web/templates/layout"
	"github.com/gamingleague/tournaments-web/internal/web/templates/pages"
)

// PaymentHandler handles the pages the payment provider redirects back to
type PaymentHandler struct{}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler() *PaymentHandler {
	return &PaymentHandler{}
}

// Success renders the landing page after a completed payment
func (h *PaymentHandler) Success(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, pages.PaymentResult(h.pageData(r, "Pago completado"), true))
}

// Cancel renders the landing page after an abandoned payment
func (h *PaymentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, pages.PaymentResult(h.pageData(r, "Pago cancelado"), false))
}

func (h *PaymentHandler) pageData(r *http.Request, title string) layout.PageData {
	return layout.PageData{
		Title:   title,
		Session: middleware.GetSession(r.Context()),
		Flashes: middleware.GetFlashes(r.Context()),
	}
}
