package response

import "github.com/gavinflud/lists/internal/dto"

type RoleResponse struct {
	Role dto.RoleDTO `json:"role"`
}

type AllRolesResponse struct {
	Roles []dto.RoleDTO `json:"roles"`
	Count int           `json:"count"`
}
