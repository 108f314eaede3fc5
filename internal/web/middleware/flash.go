package middleware

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gamingleague/tournaments-web/internal/web/templates/layout"
)

const (
	flashCookieName   = "flash"
	flashCookieMaxAge = 60

	flashContextKey contextKey = "flash"
)

// GetFlashes retrieves the queued toasts from the request context.
// Returns nil when nothing is queued.
func GetFlashes(ctx context.Context) []layout.FlashMessage {
	flashes, _ := ctx.Value(flashContextKey).([]layout.FlashMessage)
	return flashes
}

// AddFlash queues a toast for the next page render. Queued toasts stack:
// adding twice before the next render shows two toasts, in order.
func AddFlash(w http.ResponseWriter, flash layout.FlashMessage) {
	queue := append(takePending(w), flash)
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    encodeFlashes(queue),
		Path:     "/",
		MaxAge:   flashCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Flash returns middleware that reads and clears queued toasts.
func Flash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var flashes []layout.FlashMessage

			cookie, err := r.Cookie(flashCookieName)
			if err == nil && cookie.Value != "" {
				flashes = decodeFlashes(cookie.Value)

				http.SetCookie(w, &http.Cookie{
					Name:     flashCookieName,
					Value:    "",
					Path:     "/",
					MaxAge:   -1,
					Expires:  time.Unix(0, 0),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), flashContextKey, flashes)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// takePending removes any flash cookie already staged on the response and
// returns its queue, so a second AddFlash in the same response appends
// rather than overwrites. Other staged cookies are left alone.
func takePending(w http.ResponseWriter) []layout.FlashMessage {
	header := w.Header()
	lines := header.Values("Set-Cookie")
	if len(lines) == 0 {
		return nil
	}

	var queue []layout.FlashMessage
	kept := lines[:0]
	for _, line := range lines {
		if !strings.HasPrefix(line, flashCookieName+"=") {
			kept = append(kept, line)
			continue
		}
		value := strings.TrimPrefix(line, flashCookieName+"=")
		if i := strings.IndexByte(value, ';'); i >= 0 {
			value = value[:i]
		}
		queue = decodeFlashes(value)
	}
	header["Set-Cookie"] = kept
	return queue
}

func encodeFlashes(flashes []layout.FlashMessage) string {
	raw, err := json.Marshal(flashes)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

// decodeFlashes tolerates garbage: a cookie that does not decode simply
// yields no toasts.
func decodeFlashes(value string) []layout.FlashMessage {
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var flashes []layout.FlashMessage
	if err := json.Unmarshal(raw, &flashes); err != nil {
		return nil
	}
	return flashes
}
