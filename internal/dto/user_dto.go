package dto

type UserDTO struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	ID       int64    `json:"id"`
}
