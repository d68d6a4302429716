package response

import "github.com/gavinflud/lists/internal/dto"

type TeamResponse struct {
	Team dto.TeamDTO `json:"team"`
}

type AllTeamsResponse struct {
	Teams []dto.TeamDTO `json:"teams"`
	Count int           `json:"count"`
}

type UserTeamsResponse struct {
	Teams   []dto.TeamDTO `json:"teams"`
	Page    int           `json:"page"`
	PerPage int           `json:"per_page"`
	Count   int           `json:"count"`
}
