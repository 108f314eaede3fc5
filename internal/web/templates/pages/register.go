package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/gamingleague/tournaments-web/internal/model"
	"github.com/gamingleague/tournaments-web/internal/web/templates/layout"
)

// RegisterData is the data for the player registration form.
type RegisterData struct {
	layout.PageData
	Draft  model.RegistrationDraft
	Errors []model.ValidationError
	// Next is where a successful sign-up should land, carried through the
	// form so a join attempt can resume after registering.
	Next string
}

func fieldError(errs []model.ValidationError, field string) string {
	for _, e := range errs {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

func rowError(errs []model.ValidationError, index int) string {
	for _, e := range errs {
		if e.Field == "platforms" && e.Index == index {
			return e.Message
		}
	}
	return ""
}

// Register renders the registration form. The platform rows re-render from
// the draft so add/remove round-trips keep everything the user typed.
func Register(data RegisterData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := layout.NewBuilder(w)

		b.Raw(`<section class="register"><h1>Crea tu cuenta</h1>`)
		// Guard against double submits while the sign-up round-trip runs.
		b.Raw(`<form method="post" action="/register" class="register-form" onsubmit="this.querySelector('.submit-register').disabled=true">`)
		if data.Next != "" {
			b.Raw(`<input type="hidden" name="next"`).Attr("value", data.Next).Raw(`>`)
		}

		textField(b, "username", "Nombre de usuario", "text", data.Draft.Username, fieldError(data.Errors, "username"))
		textField(b, "email", "Email", "email", data.Draft.Email, fieldError(data.Errors, "email"))
		textField(b, "password", "Contraseña", "password", "", fieldError(data.Errors, "password"))
		textField(b, "password_confirm", "Confirmar contraseña", "password", "", fieldError(data.Errors, "password_confirm"))

		b.Component(ctx, PlatformFieldset(data.Draft, data.Errors))

		b.Raw(`<button type="submit" class="submit-register">Registrarse</button>`)
		b.Raw(`</form></section>`)
		return b.Err()
	})
	return layout.Base(data.PageData, body)
}

// PlatformFieldset renders the platform rows plus the add button. It is its
// own component so row edits over HTMX can swap just this fragment.
func PlatformFieldset(draft model.RegistrationDraft, errs []model.ValidationError) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := layout.NewBuilder(w)

		b.Raw(`<fieldset class="platforms" id="platform-fieldset"><legend>Tus plataformas</legend>`)
		for i, row := range draft.Platforms {
			platformRow(b, i, row, rowError(errs, i))
		}
		rowButton(b, "add-platform", "add", "1", "Añadir plataforma")
		b.Raw(`</fieldset>`)
		return b.Err()
	})
}

func textField(b *layout.Builder, name, label, inputType, value, errMsg string) {
	b.Raw(`<div class="field"><label`).Attr("for", name).Raw(`>`).Text(label).Raw(`</label>`)
	b.Raw(`<input`).Attr("type", inputType).Attr("id", name).Attr("name", name).Attr("value", value).Raw(` required>`)
	if errMsg != "" {
		b.Raw(`<p class="field-error">`).Text(errMsg).Raw(`</p>`)
	}
	b.Raw(`</div>`)
}

// platformRow renders one platform identity row. The select and handle
// input repeat under the same names; position carries the pairing. The
// first row never gets a remove button.
func platformRow(b *layout.Builder, index int, row model.PlatformIdentity, errMsg string) {
	b.Raw(`<div class="platform-row"`).Attr("data-index", strconv.Itoa(index)).Raw(`>`)

	b.Raw(`<select name="platform_name">`)
	b.Raw(`<option value="">Plataforma</option>`)
	for _, p := range model.Platforms() {
		b.Raw(`<option`).Attr("value", string(p))
		if p == row.Platform {
			b.Raw(` selected`)
		}
		b.Raw(`>`).Text(p.DisplayName()).Raw(`</option>`)
	}
	b.Raw(`</select>`)

	b.Raw(`<input type="text" name="platform_username" placeholder="Usuario"`).Attr("value", row.Handle).Raw(`>`)

	if index > 0 {
		rowButton(b, "remove-platform", "remove", strconv.Itoa(index), "Quitar")
	}

	if errMsg != "" {
		b.Raw(`<p class="field-error">`).Text(errMsg).Raw(`</p>`)
	}
	b.Raw(`</div>`)
}

// rowButton is an add/remove control that works both ways: over HTMX it
// swaps the fieldset in place, without it the formaction posts the whole
// form for a full-page re-render.
func rowButton(b *layout.Builder, class, name, value, label string) {
	b.Raw(`<button type="submit"`).Attr("class", class)
	b.Raw(` formaction="/register/platforms"`).Attr("name", name).Attr("value", value)
	b.Raw(` hx-post="/register/platforms" hx-target="#platform-fieldset" hx-swap="outerHTML" hx-include="closest form"`)
	b.Raw(`>`).Text(label).Raw(`</button>`)
}
