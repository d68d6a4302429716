package dto

type TeamMemberDTO struct {
	Username string `json:"username"`
	UserID   int64  `json:"user_id"`
}

type TeamDTO struct {
	Name    string          `json:"name"`
	Members []TeamMemberDTO `json:"members"`
	ID      int64           `json:"id"`
}
