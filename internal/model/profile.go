package model

// Platform is one of the closed set of gaming platforms a player can link.
type Platform string

const (
	PlatformSteam    Platform = "steam"
	PlatformEpic     Platform = "epic"
	PlatformOrigin   Platform = "origin"
	PlatformPSN      Platform = "psn"
	PlatformXbox     Platform = "xbox"
	PlatformNintendo Platform = "nintendo"
	PlatformRiot     Platform = "riot"
)

// Platforms returns the closed platform set in form-select order.
func Platforms() []Platform {
	return []Platform{
		PlatformSteam,
		PlatformEpic,
		PlatformOrigin,
		PlatformPSN,
		PlatformXbox,
		PlatformNintendo,
		PlatformRiot,
	}
}

// DisplayName returns the user-facing name for the platform.
func (p Platform) DisplayName() string {
	switch p {
	case PlatformSteam:
		return "Steam"
	case PlatformEpic:
		return "Epic Games"
	case PlatformOrigin:
		return "Origin"
	case PlatformPSN:
		return "PlayStation Network"
	case PlatformXbox:
		return "Xbox Live"
	case PlatformNintendo:
		return "Nintendo Switch"
	case PlatformRiot:
		return "Riot Games"
	default:
		return string(p)
	}
}

// Valid reports whether p is a member of the closed platform set.
func (p Platform) Valid() bool {
	for _, known := range Platforms() {
		if p == known {
			return true
		}
	}
	return false
}

// PlatformIdentity is a platform plus the player's handle on it.
type PlatformIdentity struct {
	Platform Platform `json:"name"`
	Handle   string   `json:"username"`
}

// Profile is the application-level user record, distinct from the raw auth
// identity. Created once at sign-up; the verified flag flips only via the
// backend's out-of-band email confirmation.
type Profile struct {
	ID        string             `json:"id"`
	Username  string             `json:"username"`
	Email     string             `json:"email"`
	Platforms []PlatformIdentity `json:"platforms"`
	Verified  bool               `json:"verified"`
}
