// Package layout holds the shared page chrome and the HTML building
// blocks the page templates are written with.
package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/gamingleague/tournaments-web/internal/model"
)

// FlashVariant selects the visual severity of a notification toast.
type FlashVariant string

const (
	// FlashDefault is the neutral/success toast.
	FlashDefault FlashVariant = "default"
	// FlashDestructive is the error toast.
	FlashDestructive FlashVariant = "destructive"
)

// FlashMessage is one notification toast queued for the next page render.
type FlashMessage struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Variant     FlashVariant `json:"variant"`
}

// PageData is the data every page shares: the title, the signed-in session
// if any, and the toasts queued since the last render.
type PageData struct {
	Title   string
	Session *model.Session
	Flashes []FlashMessage
}

// Builder accumulates HTML, deferring error handling to Err. Dynamic
// content goes through Text/Attr so it is always escaped.
type Builder struct {
	w   io.Writer
	err error
}

// NewBuilder creates a Builder writing to w.
func NewBuilder(w io.Writer) *Builder {
	return &Builder{w: w}
}

// Raw writes trusted markup verbatim.
func (b *Builder) Raw(s string) *Builder {
	if b.err == nil {
		_, b.err = io.WriteString(b.w, s)
	}
	return b
}

// Text writes s HTML-escaped.
func (b *Builder) Text(s string) *Builder {
	return b.Raw(templ.EscapeString(s))
}

// Attr writes a name="value" attribute pair with the value escaped.
func (b *Builder) Attr(name, value string) *Builder {
	return b.Raw(` ` + name + `="` + templ.EscapeString(value) + `"`)
}

// Component renders a nested component.
func (b *Builder) Component(ctx context.Context, c templ.Component) *Builder {
	if b.err == nil {
		b.err = c.Render(ctx, b.w)
	}
	return b
}

// Err returns the first write error, if any.
func (b *Builder) Err() error {
	return b.err
}

// Base wraps a page body in the shared document chrome: head, nav bar,
// toast region and footer.
func Base(data PageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := NewBuilder(w)

		b.Raw(`<!DOCTYPE html><html lang="es"><head><meta charset="utf-8">`)
		b.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.Raw(`<title>`).Text(data.Title).Raw(` | Gaming League</title>`)
		b.Raw(`<link rel="stylesheet" href="/static/styles.css">`)
		b.Raw(`<script src="https://unpkg.com/htmx.org@1.9.12" defer></script>`)
		b.Raw(`</head><body>`)

		navBar(b, data)
		toaster(b, data.Flashes)

		b.Raw(`<main class="container">`)
		b.Component(ctx, body)
		b.Raw(`</main>`)

		b.Raw(`<footer class="footer"><p>Gaming League</p></footer>`)
		b.Raw(`</body></html>`)
		return b.Err()
	})
}

func navBar(b *Builder, data PageData) {
	b.Raw(`<nav class="navbar"><a class="brand" href="/">Gaming League</a>`)
	b.Raw(`<div class="nav-links"><a href="/">Torneos</a>`)
	if data.Session != nil {
		b.Raw(`<form method="post" action="/logout" class="inline-form">`)
		b.Raw(`<button type="submit" class="nav-button">Cerrar sesión</button></form>`)
	} else {
		b.Raw(`<a href="/login">Iniciar sesión</a>`)
		b.Raw(`<a href="/register" class="nav-cta">Registrarse</a>`)
	}
	b.Raw(`</div></nav>`)
}

// toaster renders every queued toast. Order is preserved: toasts appear in
// the order they were raised.
func toaster(b *Builder, flashes []FlashMessage) {
	if len(flashes) == 0 {
		return
	}
	b.Raw(`<div class="toaster" role="status">`)
	for _, f := range flashes {
		class := "toast"
		if f.Variant == FlashDestructive {
			class = "toast toast-destructive"
		}
		b.Raw(`<div`).Attr("class", class).Raw(`>`)
		b.Raw(`<p class="toast-title">`).Text(f.Title).Raw(`</p>`)
		if f.Description != "" {
			b.Raw(`<p class="toast-description">`).Text(f.Description).Raw(`</p>`)
		}
		b.Raw(`</div>`)
	}
	b.Raw(`</div>`)
}
