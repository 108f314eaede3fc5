package model

// RegistrationDraft is the in-progress state of the player registration
// form: account fields plus an ordered sequence of platform identity rows.
type RegistrationDraft struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	Platforms       []PlatformIdentity
}

// NewRegistrationDraft returns the form's initial state: empty account
// fields and exactly one empty platform row.
func NewRegistrationDraft() RegistrationDraft {
	return RegistrationDraft{
		Platforms: []PlatformIdentity{{}},
	}
}

// AddPlatformRow appends one empty platform row. There is no upper bound.
func (d *RegistrationDraft) AddPlatformRow() {
	d.Platforms = append(d.Platforms, PlatformIdentity{})
}

// RemovePlatformRow removes the row at index, preserving order. Removing
// the sole remaining row is a no-op so the sequence never becomes empty,
// as is any out-of-range index.
func (d *RegistrationDraft) RemovePlatformRow(index int) {
	if len(d.Platforms) <= 1 {
		return
	}
	if index < 0 || index >= len(d.Platforms) {
		return
	}
	d.Platforms = append(d.Platforms[:index], d.Platforms[index+1:]...)
}

// UpdatePlatformRow sets one field of the row at index in place.
// field is "name" for the platform or "username" for the handle,
// mirroring the form's field names. Out-of-range indexes are ignored.
func (d *RegistrationDraft) UpdatePlatformRow(index int, field, value string) {
	if index < 0 || index >= len(d.Platforms) {
		return
	}
	switch field {
	case "name":
		d.Platforms[index].Platform = Platform(value)
	case "username":
		d.Platforms[index].Handle = value
	}
}

// Validate checks the draft before any remote call is made. The password
// confirmation check runs first; required-field checks follow. An empty
// result means the draft is submittable.
func (d RegistrationDraft) Validate() []ValidationError {
	var errs []ValidationError

	if d.Password != d.ConfirmPassword {
		errs = append(errs, ValidationError{
			Field:   "password_confirm",
			Message: "Las contraseñas no coinciden",
		})
		return errs
	}

	if d.Username == "" {
		errs = append(errs, ValidationError{Field: "username", Message: "El nombre de usuario es obligatorio"})
	}
	if d.Email == "" {
		errs = append(errs, ValidationError{Field: "email", Message: "El email es obligatorio"})
	}
	if d.Password == "" {
		errs = append(errs, ValidationError{Field: "password", Message: "La contraseña es obligatoria"})
	}
	for i, p := range d.Platforms {
		if p.Platform == "" || p.Handle == "" {
			errs = append(errs, ValidationError{
				Field:   "platforms",
				Message: "Cada plataforma necesita nombre y usuario",
				Index:   i,
			})
			continue
		}
		// The form only offers the closed set; this catches forged posts.
		if !p.Platform.Valid() {
			errs = append(errs, ValidationError{
				Field:   "platforms",
				Message: "Plataforma no válida",
				Index:   i,
			})
		}
	}

	return errs
}
