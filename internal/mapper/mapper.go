package mapper

import (
	"github.com/gavinflud/lists/internal/domain"
	"github.com/gavinflud/lists/internal/dto"
)

// User mappers
func MapDomainUserToDTO(user *domain.AppUser) dto.UserDTO {
	roles := make([]string, len(user.Roles))
	for i, r := range user.Roles {
		roles[i] = r.Code
	}
	return dto.UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Roles:    roles,
	}
}

func MapDomainUsersToDTO(users []domain.AppUser) []dto.UserDTO {
	result := make([]dto.UserDTO, len(users))
	for i, u := range users {
		result[i] = MapDomainUserToDTO(&u)
	}
	return result
}

// Role mappers
func MapDomainRoleToDTO(role *domain.Role) dto.RoleDTO {
	return dto.RoleDTO{
		ID:          role.ID,
		Code:        role.Code,
		Description: role.Description,
	}
}

func MapDomainRolesToDTO(roles []domain.Role) []dto.RoleDTO {
	result := make([]dto.RoleDTO, len(roles))
	for i, r := range roles {
		result[i] = MapDomainRoleToDTO(&r)
	}
	return result
}

// Team mappers
func MapDomainTeamToDTO(team *domain.Team) dto.TeamDTO {
	members := make([]dto.TeamMemberDTO, len(team.Members))
	for i, m := range team.Members {
		members[i] = dto.TeamMemberDTO{
			UserID:   m.UserID,
			Username: m.Username,
		}
	}
	return dto.TeamDTO{
		ID:      team.ID,
		Name:    team.Name,
		Members: members,
	}
}

func MapDomainTeamsToDTO(teams []domain.Team) []dto.TeamDTO {
	result := make([]dto.TeamDTO, len(teams))
	for i, t := range teams {
		result[i] = MapDomainTeamToDTO(&t)
	}
	return result
}
