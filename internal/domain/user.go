package domain

import "time"

type AppUser struct {
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Roles        []Role    `json:"roles"`
	ID           int64     `json:"id"`
	Retired      bool      `json:"retired"`
}

// Retire marks the user as soft-deleted. Active lookups exclude retired rows.
func (u *AppUser) Retire() {
	u.Retired = true
}

func (u *AppUser) HasRole(code string) bool {
	for _, r := range u.Roles {
		if r.Code == code {
			return true
		}
	}
	return false
}
