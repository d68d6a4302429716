package service

import (
	"context"
	"fmt"

	"github.com/gavinflud/lists/internal/domain"
	"github.com/gavinflud/lists/internal/my_errors"
)

type RoleService struct {
	roleRepo RoleRepository
}

func NewRoleService(roleRepo RoleRepository) *RoleService {
	return &RoleService{roleRepo: roleRepo}
}

// RoleChanges carries the fields an update may touch; nil means unchanged.
type RoleChanges struct {
	Code        *string
	Description *string
}

func (s *RoleService) Create(ctx context.Context, caller domain.Principal, role *domain.Role) (*domain.Role, error) {
	if !caller.IsAdmin() {
		return nil, my_errors.ErrNotAllowed
	}

	if role.Code == "" {
		return nil, fmt.Errorf("code: %w", my_errors.ErrEmptyField)
	}

	exists, err := s.roleRepo.ExistsActiveByCode(ctx, role.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to check role existence: %w", err)
	}
	if exists {
		return nil, my_errors.ErrRoleAlreadyExists
	}

	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}

	return role, nil
}

func (s *RoleService) GetByCode(ctx context.Context, code string) (*domain.Role, error) {
	if code == "" {
		return nil, fmt.Errorf("code: %w", my_errors.ErrEmptyField)
	}
	return s.roleRepo.GetByCode(ctx, code)
}

func (s *RoleService) GetAll(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.roleRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all roles: %w", err)
	}
	return roles, nil
}

func (s *RoleService) Update(ctx context.Context, caller domain.Principal, code string, changes RoleChanges) (*domain.Role, error) {
	if !caller.IsAdmin() {
		return nil, my_errors.ErrNotAllowed
	}

	role, err := s.roleRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	// the uniqueness check only runs when the natural key actually changes
	if changes.Code != nil && *changes.Code != role.Code {
		exists, err := s.roleRepo.ExistsActiveByCode(ctx, *changes.Code)
		if err != nil {
			return nil, fmt.Errorf("failed to check role existence: %w", err)
		}
		if exists {
			return nil, my_errors.ErrRoleAlreadyExists
		}
		role.Code = *changes.Code
	}
	if changes.Description != nil {
		role.Description = *changes.Description
	}

	if err := s.roleRepo.Update(ctx, role); err != nil {
		return nil, err
	}

	return role, nil
}

func (s *RoleService) Retire(ctx context.Context, caller domain.Principal, code string) error {
	if !caller.IsAdmin() {
		return my_errors.ErrNotAllowed
	}

	role, err := s.roleRepo.GetByCode(ctx, code)
	if err != nil {
		return err
	}

	role.Retire()
	return s.roleRepo.Update(ctx, role)
}
