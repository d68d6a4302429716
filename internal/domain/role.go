package domain

import "time"

// RoleAdmin is the role code granting administrator access.
const RoleAdmin = "ADMIN"

type Role struct {
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	ID          int64     `json:"id"`
	Retired     bool      `json:"retired"`
}

func (r *Role) Retire() {
	r.Retired = true
}
