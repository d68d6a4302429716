package domain

import "time"

type Team struct {
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Name      string       `json:"name"`
	Members   []TeamMember `json:"members"`
	ID        int64        `json:"id"`
	Retired   bool         `json:"retired"`
}

type TeamMember struct {
	Username string `json:"username"`
	UserID   int64  `json:"user_id"`
	Retired  bool   `json:"retired"`
}

func (t *Team) Retire() {
	t.Retired = true
}

func (t *Team) IsMember(userID int64) bool {
	for _, m := range t.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}
