package model

import "time"

// TournamentID uniquely identifies a tournament in the backend
type TournamentID string

// Tournament is a scheduled competitive event with fixed capacity and fee.
// Tournaments are created and mutated entirely server-side; this layer only
// reads them. Field tags follow the backend's column names.
type Tournament struct {
	ID              TournamentID  `json:"id"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	Game            string        `json:"game"`
	StartDate       time.Time     `json:"start_date"`
	PrizePool       string        `json:"prize_pool"`
	RegistrationFee string        `json:"registration_fee"`
	IsPaid          bool          `json:"is_paid"`
	MaxPlayers      int           `json:"max_players"`
	CurrentPlayers  int           `json:"current_players"`
	Requirements    []string      `json:"requirements"`
	Participants    []Participant `json:"participants"`
}

// Full reports whether the tournament has no free slots left. The count it
// is based on is the one fetched at render time and can be stale under
// concurrent enrollments; the backend's constraints are authoritative.
func (t Tournament) Full() bool {
	return t.CurrentPlayers >= t.MaxPlayers
}

// OccupancyPercent returns current/max as a percentage for the progress bar.
// A non-positive MaxPlayers yields a degenerate value (±Inf or NaN), matching
// the upstream behavior; it is rendered as-is rather than guarded.
func (t Tournament) OccupancyPercent() float64 {
	return float64(t.CurrentPlayers) / float64(t.MaxPlayers) * 100
}

// Participant is one enrolled player as embedded in a tournament row.
// Written by the backend, never mutated client-side.
type Participant struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Platform string `json:"platform"`
	Verified bool   `json:"verified"`
}

// PaymentStatus is the state of a registration's payment.
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
	PaymentPending   PaymentStatus = "pending"
	PaymentFailed    PaymentStatus = "failed"
)

// Registration links a profile to a tournament. Rows are created by this
// layer (free enrollments only, always with PaymentCompleted) and never
// updated or deleted.
type Registration struct {
	UserID        string        `json:"user_id"`
	TournamentID  TournamentID  `json:"tournament_id"`
	PaymentStatus PaymentStatus `json:"payment_status"`
}
