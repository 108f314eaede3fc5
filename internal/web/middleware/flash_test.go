package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamingleague/tournaments-web/internal/web/templates/layout"
)

func flashCookieFrom(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == flashCookieName {
			return c
		}
	}
	return nil
}

func TestAddFlashStacks(t *testing.T) {
	rr := httptest.NewRecorder()
	// A session cookie staged earlier must survive AddFlash
	http.SetCookie(rr, &http.Cookie{Name: "session", Value: "tok"})

	AddFlash(rr, layout.FlashMessage{Title: "Primero", Variant: layout.FlashDefault})
	AddFlash(rr, layout.FlashMessage{Title: "Segundo", Description: "detalle", Variant: layout.FlashDestructive})

	cookie := flashCookieFrom(rr)
	require.NotNil(t, cookie)

	queue := decodeFlashes(cookie.Value)
	require.Len(t, queue, 2)
	assert.Equal(t, "Primero", queue[0].Title)
	assert.Equal(t, "Segundo", queue[1].Title)
	assert.Equal(t, layout.FlashDestructive, queue[1].Variant)

	// Exactly one flash cookie, and the session cookie is untouched
	var flashLines, sessionLines int
	for _, c := range rr.Result().Cookies() {
		switch c.Name {
		case flashCookieName:
			flashLines++
		case "session":
			sessionLines++
		}
	}
	assert.Equal(t, 1, flashLines)
	assert.Equal(t, 1, sessionLines)
}

func TestFlashMiddlewareReadsAndClears(t *testing.T) {
	queued := httptest.NewRecorder()
	AddFlash(queued, layout.FlashMessage{Title: "Hola", Variant: layout.FlashDefault})
	cookie := flashCookieFrom(queued)
	require.NotNil(t, cookie)

	var got []layout.FlashMessage
	handler := Flash()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetFlashes(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: flashCookieName, Value: cookie.Value})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Len(t, got, 1)
	assert.Equal(t, "Hola", got[0].Title)

	// The cookie is cleared for the next request
	cleared := flashCookieFrom(rr)
	require.NotNil(t, cleared)
	assert.Less(t, cleared.MaxAge, 0)
}

func TestFlashMiddlewareToleratesGarbage(t *testing.T) {
	var got []layout.FlashMessage
	handler := Flash()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetFlashes(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: flashCookieName, Value: "not-base64-json-!!"})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Empty(t, got)
}

func TestFlashMiddlewareNoCookie(t *testing.T) {
	handler := Flash()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Nil(t, GetFlashes(r.Context()))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Empty(t, rr.Result().Cookies())
}
