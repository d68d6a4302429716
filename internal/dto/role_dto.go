package dto

type RoleDTO struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	ID          int64  `json:"id"`
}
