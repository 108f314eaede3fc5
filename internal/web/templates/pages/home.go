// Package pages holds the page templates. Each page is a templ component
// built from the layout package's chrome and builder.
package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/gamingleague/tournaments-web/internal/model"
	"github.com/gamingleague/tournaments-web/internal/web/templates/layout"
)

// HomeData is the data for the tournament catalog page.
type HomeData struct {
	layout.PageData
	Tournaments []model.Tournament
}

// Home renders the catalog: a hero banner and one card per tournament,
// in the order the catalog service returned them.
func Home(data HomeData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := layout.NewBuilder(w)

		b.Raw(`<section class="hero"><h1>Torneos</h1>`)
		b.Raw(`<p>Compite en los mejores torneos de tus juegos favoritos</p></section>`)

		gamesList(b)

		b.Raw(`<section class="tournament-grid">`)
		for _, t := range data.Tournaments {
			tournamentCard(b, t)
		}
		b.Raw(`</section>`)
		return b.Err()
	})
	return layout.Base(data.PageData, body)
}

type featuredGame struct {
	name        string
	description string
}

// The featured games strip is editorial content, fixed per deployment.
var featuredGames = []featuredGame{
	{"League of Legends", "Competiciones 5v5 en la Grieta del Invocador"},
	{"Rocket League", "Torneos 3v3 y 2v2"},
	{"EAFC 25", "Ligas y torneos 1v1"},
}

func gamesList(b *layout.Builder) {
	b.Raw(`<section class="games"><h2>Nuestros juegos</h2><div class="games-grid">`)
	for _, g := range featuredGames {
		b.Raw(`<div class="game-card"><h3>`).Text(g.name).Raw(`</h3>`)
		b.Raw(`<p>`).Text(g.description).Raw(`</p></div>`)
	}
	b.Raw(`</div></section>`)
}

func tournamentCard(b *layout.Builder, t model.Tournament) {
	b.Raw(`<article class="tournament-card"`).Attr("data-id", string(t.ID)).Raw(`>`)
	b.Raw(`<h2 class="tournament-name"><a`).Attr("href", "/tournaments/"+string(t.ID)).Raw(`>`).Text(t.Name).Raw(`</a></h2>`)
	b.Raw(`<p class="tournament-game">`).Text(t.Game).Raw(`</p>`)
	b.Raw(`<p class="tournament-date">`).Text(t.StartDate.Format("02/01/2006")).Raw(`</p>`)
	b.Raw(`<p class="tournament-prize">Premio: `).Text(t.PrizePool).Raw(`</p>`)
	if t.IsPaid {
		b.Raw(`<p class="tournament-fee">Inscripción: `).Text(t.RegistrationFee).Raw(`</p>`)
	} else {
		b.Raw(`<p class="tournament-fee">Inscripción gratuita</p>`)
	}

	OccupancyBar(b, t)
	JoinControl(b, t)

	b.Raw(`</article>`)
}

// OccupancyBar renders the players count and the fill bar. The percentage
// comes straight from OccupancyPercent, degenerate values included.
func OccupancyBar(b *layout.Builder, t model.Tournament) {
	count := strconv.Itoa(t.CurrentPlayers) + "/" + strconv.Itoa(t.MaxPlayers)
	width := strconv.FormatFloat(t.OccupancyPercent(), 'f', 0, 64)

	b.Raw(`<div class="occupancy"><span class="occupancy-count">`).Text(count).Raw(` jugadores</span>`)
	b.Raw(`<div class="progress"><div class="progress-bar"`)
	b.Attr("style", "width: "+width+"%")
	b.Raw(`></div></div></div>`)
}

// JoinControl renders the enroll button, disabled with "Completo" when the
// rendered counts say the tournament is full. The gate lives only here:
// a stale count can let a join through to the backend.
func JoinControl(b *layout.Builder, t model.Tournament) {
	if t.Full() {
		b.Raw(`<button class="join-button" disabled>Completo</button>`)
		return
	}
	b.Raw(`<form method="post"`).Attr("action", "/tournaments/"+string(t.ID)+"/join").Raw(`>`)
	b.Raw(`<button type="submit" class="join-button">Inscribirse</button></form>`)
}
