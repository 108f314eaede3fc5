package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/gamingleague/tournaments-web/internal/model"
	"github.com/gamingleague/tournaments-web/internal/web/templates/layout"
)

// TournamentData is the data for the tournament detail page.
type TournamentData struct {
	layout.PageData
	Tournament model.Tournament
	// DiscordURL is the community chat invite shown alongside the detail.
	DiscordURL string
}

// Tournament renders the detail page: full description, requirements,
// the participant roster and the enroll control.
func Tournament(data TournamentData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t := data.Tournament
		b := layout.NewBuilder(w)

		b.Raw(`<article class="tournament-detail"`).Attr("data-id", string(t.ID)).Raw(`>`)
		b.Raw(`<header><h1>`).Text(t.Name).Raw(`</h1>`)
		b.Raw(`<p class="tournament-game">`).Text(t.Game).Raw(`</p></header>`)

		b.Raw(`<p class="tournament-description">`).Text(t.Description).Raw(`</p>`)

		b.Raw(`<dl class="tournament-facts">`)
		b.Raw(`<dt>Fecha de inicio</dt><dd>`).Text(t.StartDate.Format("02/01/2006 15:04")).Raw(`</dd>`)
		b.Raw(`<dt>Premio</dt><dd>`).Text(t.PrizePool).Raw(`</dd>`)
		if t.IsPaid {
			b.Raw(`<dt>Inscripción</dt><dd>`).Text(t.RegistrationFee).Raw(`</dd>`)
		} else {
			b.Raw(`<dt>Inscripción</dt><dd>Gratuita</dd>`)
		}
		b.Raw(`</dl>`)

		if len(t.Requirements) > 0 {
			b.Raw(`<section class="requirements"><h2>Requisitos</h2><ul>`)
			for _, req := range t.Requirements {
				b.Raw(`<li>`).Text(req).Raw(`</li>`)
			}
			b.Raw(`</ul></section>`)
		}

		b.Raw(`<p class="occupancy-label">`)
		b.Text(fmt.Sprintf("%d de %d plazas ocupadas", t.CurrentPlayers, t.MaxPlayers))
		b.Raw(`</p>`)
		OccupancyBar(b, t)
		JoinControl(b, t)

		if data.DiscordURL != "" {
			b.Raw(`<p class="discord"><a`).Attr("href", data.DiscordURL)
			b.Raw(` target="_blank" rel="noopener">Únete a nuestro Discord</a></p>`)
		}

		b.Raw(`<section class="participants"><h2>Participantes</h2>`)
		if len(t.Participants) > 0 {
			b.Raw(`<ul>`)
			for _, p := range t.Participants {
				b.Raw(`<li class="participant">`).Text(p.Username)
				if p.Platform != "" {
					b.Raw(` <span class="participant-platform">`).Text(p.Platform).Raw(`</span>`)
				}
				if p.Verified {
					b.Raw(` <span class="participant-status verified">Verificado</span>`)
				} else {
					b.Raw(` <span class="participant-status pending">Pendiente</span>`)
				}
				b.Raw(`</li>`)
			}
			b.Raw(`</ul>`)
		} else {
			b.Raw(`<p class="participants-empty">No hay participantes inscritos todavía</p>`)
		}
		b.Raw(`</section>`)

		b.Raw(`</article>`)
		return b.Err()
	})
	return layout.Base(data.PageData, body)
}
