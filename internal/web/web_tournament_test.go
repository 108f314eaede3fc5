package web_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamingleague/tournaments-web/internal/model"
)

func TestTournamentDetail(t *testing.T) {
	ts := newWebTestServer(t)
	seedTournaments(ts)
	ts.gateway.Tournaments[1].Requirements = []string{"Rango Platino o superior", "Cuenta verificada"}
	ts.gateway.Tournaments[1].Participants = []model.Participant{
		{ID: "p-1", Username: "ana", Platform: "riot", Verified: true},
		{ID: "p-2", Username: "bruno", Platform: "steam"},
	}

	rr := ts.get("/tournaments/t-paid")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".tournament-detail h1", "Liga Valorant")
	assertContainsText(t, doc, ".requirements", "Rango Platino o superior")
	assertContainsText(t, doc, ".participants", "ana")
	assert.Equal(t, 2, doc.Find(".participant").Length())

	rows := doc.Find(".participant")
	assert.Contains(t, rows.Eq(0).Find(".participant-status").Text(), "Verificado")
	assert.Contains(t, rows.Eq(1).Find(".participant-status").Text(), "Pendiente")
	assertNotContainsElement(t, doc, ".participants-empty")
}

func TestTournamentDetailEmptyRoster(t *testing.T) {
	ts := newWebTestServer(t)
	seedTournaments(ts)

	rr := ts.get("/tournaments/t-free")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assert.Equal(t, 0, doc.Find(".participant").Length())
	assertContainsText(t, doc, ".participants-empty", "No hay participantes inscritos todavía")
}

func TestTournamentNotFound(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/tournaments/nope")
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".toast-destructive", "Torneo no encontrado")
}

func TestAnonymousJoinRedirectsToRegister(t *testing.T) {
	ts := newWebTestServer(t)
	seedTournaments(ts)

	rr := ts.post("/tournaments/t-free/join", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	// The join target rides along so sign-up can land back on the detail
	assert.Equal(t, "/register?next=%2Ftournaments%2Ft-free", rr.Header().Get("Location"))

	// No write of any kind happened
	assert.Empty(t, ts.gateway.Registrations)
	assert.Empty(t, ts.checkout.Calls)

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsElement(t, doc, `form[action="/register"]`)
	assertContainsElement(t, doc, `input[name="next"][value="/tournaments/t-free"]`)
	assertContainsText(t, doc, ".toast", "Cuenta necesaria")
}

func TestUnverifiedJoinShowsVerifyToast(t *testing.T) {
	ts := newWebTestServer(t)
	seedTournaments(ts)
	ts.signIn("user-1", false)

	rr := ts.post("/tournaments/t-free/join", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/tournaments/t-free", rr.Header().Get("Location"))
	assert.Empty(t, ts.gateway.Registrations)

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".toast-destructive", "Cuenta no verificada")
	assertContainsText(t, doc, ".toast-destructive", "verifica tu cuenta de correo electrónico")
}

func TestFreeJoinEnrollsAndRefetchesCatalog(t *testing.T) {
	ts := newWebTestServer(t)
	seedTournaments(ts)
	ts.signIn("user-1", true)

	listCallsBefore := ts.gateway.ListCalls

	rr := ts.post("/tournaments/t-free/join", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))

	require.Len(t, ts.gateway.Registrations, 1)
	reg := ts.gateway.Registrations[0]
	assert.Equal(t, "user-1", reg.UserID)
	assert.Equal(t, model.TournamentID("t-free"), reg.TournamentID)
	assert.Equal(t, model.PaymentCompleted, reg.PaymentStatus)
	assert.Empty(t, ts.checkout.Calls)

	// Following the redirect re-renders the catalog from a fresh fetch
	doc := parseHTML(ts.followRedirect(rr).Body)
	assert.Equal(t, listCallsBefore+1, ts.gateway.ListCalls)
	assertContainsText(t, doc, ".toast", "¡Inscripción exitosa!")
	assertContainsText(t, doc, ".toast", "Te has inscrito en Copa Apex")
}

func TestPaidJoinRedirectsToCheckout(t *testing.T) {
	ts := newWebTestServer(t)
	seedTournaments(ts)
	ts.signIn("user-1", true)

	rr := ts.post("/tournaments/t-paid/join", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, testCheckoutURL, rr.Header().Get("Location"))

	// The registration row is written by the backend on payment, never here
	assert.Empty(t, ts.gateway.Registrations)
	require.Len(t, ts.checkout.Calls, 1)
	assert.Equal(t, "price_test", ts.checkout.Calls[0].PriceID)
}

func TestCheckoutFailureShowsProviderMessage(t *testing.T) {
	ts := newWebTestServer(t)
	seedTournaments(ts)
	ts.signIn("user-1", true)
	ts.checkout.Err = &model.RemoteError{Message: "Your card was declined.", Status: 402}

	rr := ts.post("/tournaments/t-paid/join", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/tournaments/t-paid", rr.Header().Get("Location"))

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".toast-destructive", "Error en el pago")
	assertContainsText(t, doc, ".toast-destructive", "Your card was declined.")
}

func TestDuplicateJoinShowsBackendMessage(t *testing.T) {
	ts := newWebTestServer(t)
	seedTournaments(ts)
	ts.signIn("user-1", true)
	ts.gateway.InsertRegistrationErr = &model.RemoteError{
		Message: "duplicate key value violates unique constraint",
		Status:  409,
	}

	rr := ts.post("/tournaments/t-free/join", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".toast-destructive", "Error en la inscripción")
	assertContainsText(t, doc, ".toast-destructive", "duplicate key value")
}
