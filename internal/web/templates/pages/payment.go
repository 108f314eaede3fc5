package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/gamingleague/tournaments-web/internal/web/templates/layout"
)

// PaymentResult renders the landing page the payment provider redirects
// back to. The registration row itself is written by the backend when the
// payment settles; this page only tells the user what happened.
func PaymentResult(data layout.PageData, succeeded bool) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := layout.NewBuilder(w)

		if succeeded {
			b.Raw(`<section class="payment payment-success"><h1>¡Pago completado!</h1>`)
			b.Raw(`<p>Tu inscripción se confirmará en unos momentos.</p>`)
		} else {
			b.Raw(`<section class="payment payment-cancel"><h1>Pago cancelado</h1>`)
			b.Raw(`<p>No se ha realizado ningún cargo. Puedes intentarlo de nuevo cuando quieras.</p>`)
		}
		b.Raw(`<p><a href="/">Volver a los torneos</a></p></section>`)
		return b.Err()
	})
	return layout.Base(data, body)
}
