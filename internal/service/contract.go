package service

import (
	"context"

	"github.com/gavinflud/lists/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.AppUser) error
	GetByID(ctx context.Context, id int64) (*domain.AppUser, error)
	GetByUsername(ctx context.Context, username string) (*domain.AppUser, error)
	ExistsActiveByUsername(ctx context.Context, username string) (bool, error)
	GetAll(ctx context.Context) ([]domain.AppUser, error)
	Update(ctx context.Context, user *domain.AppUser) error
}

type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) error
	GetByCode(ctx context.Context, code string) (*domain.Role, error)
	ExistsActiveByCode(ctx context.Context, code string) (bool, error)
	GetAll(ctx context.Context) ([]domain.Role, error)
	Update(ctx context.Context, role *domain.Role) error
}

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team, creatorID int64) error
	GetByName(ctx context.Context, name string) (*domain.Team, error)
	ExistsActiveByName(ctx context.Context, name string) (bool, error)
	GetAll(ctx context.Context) ([]domain.Team, error)
	Update(ctx context.Context, team *domain.Team) error
	AddMember(ctx context.Context, teamID, userID int64) error
	RemoveMember(ctx context.Context, teamID, userID int64) error
	FindTeamsForUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Team, error)
}
