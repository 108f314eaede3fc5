package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/gamingleague/tournaments-web/internal/web/templates/layout"
)

// LoginData is the data for the sign-in page.
type LoginData struct {
	layout.PageData
	Email string
	Error string
}

// Login renders the sign-in form, keeping the typed email across a failed
// attempt.
func Login(data LoginData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := layout.NewBuilder(w)

		b.Raw(`<section class="login"><h1>Iniciar sesión</h1>`)
		if data.Error != "" {
			b.Raw(`<p class="form-error">`).Text(data.Error).Raw(`</p>`)
		}
		b.Raw(`<form method="post" action="/login" class="login-form">`)
		textField(b, "email", "Email", "email", data.Email, "")
		textField(b, "password", "Contraseña", "password", "", "")
		b.Raw(`<button type="submit" class="submit-login">Entrar</button>`)
		b.Raw(`</form>`)
		b.Raw(`<p class="login-alt">¿No tienes cuenta? <a href="/register">Regístrate</a></p>`)
		b.Raw(`</section>`)
		return b.Err()
	})
	return layout.Base(data.PageData, body)
}
