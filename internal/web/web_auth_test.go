package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamingleague/tournaments-web/internal/model"
)

func TestLoginCreatesSession(t *testing.T) {
	ts := newWebTestServer(t)

	form := url.Values{
		"email":    {"ana@example.com"},
		"password": {"hunter22"},
	}
	rr := ts.post("/login", form)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	assert.True(t, ts.cookies.hasSession())

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".toast", "¡Bienvenido de nuevo!")
	// Signed-in nav shows the logout form
	assertContainsElement(t, doc, `form[action="/logout"]`)
}

func TestLoginFailureKeepsEmail(t *testing.T) {
	ts := newWebTestServer(t)
	ts.gateway.SignInErr = &model.RemoteError{Message: "Invalid login credentials", Status: 400}

	form := url.Values{
		"email":    {"ana@example.com"},
		"password": {"wrong"},
	}
	rr := ts.post("/login", form)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, ts.cookies.hasSession())

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".form-error", "Invalid login credentials")
	email, _ := doc.Find(`input[name="email"]`).Attr("value")
	assert.Equal(t, "ana@example.com", email)
}

func TestLoginMissingFields(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/login", url.Values{"email": {"ana@example.com"}})
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".form-error", "obligatorios")
}

func TestLogoutClearsSession(t *testing.T) {
	ts := newWebTestServer(t)
	ts.signIn("user-1", true)

	rr := ts.post("/logout", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.False(t, ts.cookies.hasSession())

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".toast", "Sesión cerrada")
	// Anonymous nav is back
	assertContainsElement(t, doc, `a[href="/login"]`)
}

func TestLoginPageRedirectsWhenSignedIn(t *testing.T) {
	ts := newWebTestServer(t)
	ts.signIn("user-1", true)

	rr := ts.get("/login")
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
}

func TestPaymentLandingPages(t *testing.T) {
	ts := newWebTestServer(t)

	doc := parseHTML(ts.get("/success").Body)
	assertContainsText(t, doc, ".payment-success", "¡Pago completado!")

	doc = parseHTML(ts.get("/cancel").Body)
	assertContainsText(t, doc, ".payment-cancel", "Pago cancelado")
}
