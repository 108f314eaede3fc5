package web_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/gamingleague/tournaments-web/internal/dependencies/mocks"
	"github.com/gamingleague/tournaments-web/internal/factory"
	"github.com/gamingleague/tournaments-web/internal/model"
	"github.com/gamingleague/tournaments-web/internal/services/enroll"
	"github.com/gamingleague/tournaments-web/internal/storage/memory"
	"github.com/gamingleague/tournaments-web/internal/supabase"
	"github.com/gamingleague/tournaments-web/internal/web"
)

const testCheckoutURL = "https://checkout.stripe.com/c/pay/cs_test_web"

// webTestServer provides a test server for web interface testing
type webTestServer struct {
	t        *testing.T
	handler  http.Handler
	app      *factory.App
	gateway  *mocks.MockGateway
	checkout *mocks.MockCheckout
	cookies  *cookieJar
}

// newWebTestServer creates a new test server with mocked remote backends
func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gateway := mocks.NewMockGateway()
	checkout := mocks.NewMockCheckout(testCheckoutURL)

	app := factory.NewWithDependencies(memory.New(), gateway, checkout, enroll.Config{
		PriceID:    "price_test",
		SuccessURL: "http://localhost:8080/success",
		CancelURL:  "http://localhost:8080/cancel",
	}, logger)

	router := web.NewRouter(web.RouterConfig{
		Logger:          logger,
		Gateway:         app.Gateway,
		CatalogService:  app.CatalogService,
		EnrollService:   app.EnrollService,
		RegisterService: app.RegisterService,
		SessionService:  app.SessionService,
		StaticDir:       "", // No static files in tests
	})

	return &webTestServer{
		t:        t,
		handler:  router,
		app:      app,
		gateway:  gateway,
		checkout: checkout,
		cookies:  newCookieJar(),
	}
}

// request makes an HTTP request and returns the response
func (ts *webTestServer) request(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	ts.cookies.addTo(req)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	ts.cookies.extract(rr)

	return rr
}

// get makes a GET request
func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	return ts.request(http.MethodGet, path, nil)
}

// post makes a POST request with form data
func (ts *webTestServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, form)
}

// followRedirect follows a redirect and returns the response
func (ts *webTestServer) followRedirect(rr *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	ts.t.Helper()
	location := rr.Header().Get("Location")
	require.NotEmpty(ts.t, location, "Expected Location header for redirect")
	return ts.get(location)
}

// signIn puts a valid session in the jar for the given user id, with the
// profile's verified flag as requested.
func (ts *webTestServer) signIn(userID string, verified bool) {
	ts.t.Helper()
	ts.gateway.Profiles[userID] = &model.Profile{
		ID:       userID,
		Username: "tester",
		Verified: verified,
	}
	sess, err := ts.app.SessionService.Create(context.Background(), &supabase.AuthSession{
		UserID:      userID,
		AccessToken: "access-token",
		ExpiresAt:   time.Now().Add(time.Hour),
	})
	require.NoError(ts.t, err)
	ts.cookies.cookies["session"] = &http.Cookie{
		Name:  "session",
		Value: sess.Token,
	}
}

// parseHTML parses the response body as HTML
func parseHTML(r io.Reader) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		panic(err)
	}
	return doc
}

// cookieJar maintains cookies across requests (like a browser would)
type cookieJar struct {
	cookies map[string]*http.Cookie
}

func newCookieJar() *cookieJar {
	return &cookieJar{
		cookies: make(map[string]*http.Cookie),
	}
}

// addTo adds all cookies to the request
func (j *cookieJar) addTo(req *http.Request) {
	for _, cookie := range j.cookies {
		req.AddCookie(cookie)
	}
}

// extract extracts Set-Cookie headers from response
func (j *cookieJar) extract(rr *httptest.ResponseRecorder) {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge < 0 {
			// Cookie being deleted
			delete(j.cookies, cookie.Name)
		} else {
			j.cookies[cookie.Name] = cookie
		}
	}
}

// hasSession returns true if the session cookie is set
func (j *cookieJar) hasSession() bool {
	_, ok := j.cookies["session"]
	return ok
}

// Assertion helpers

// assertContainsElement asserts that the document contains an element matching the selector
func assertContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
	}
}

// assertNotContainsElement asserts that the document does not contain an element matching the selector
func assertNotContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() > 0 {
		t.Errorf("Expected NOT to find element matching %q, but found %d", selector, doc.Find(selector).Length())
	}
}

// assertContainsText asserts that the element matching the selector contains the text
func assertContainsText(t *testing.T, doc *goquery.Document, selector, text string) {
	t.Helper()
	el := doc.Find(selector)
	if el.Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
		return
	}
	if !strings.Contains(el.Text(), text) {
		t.Errorf("Expected element %q to contain %q, but got %q", selector, text, el.Text())
	}
}
