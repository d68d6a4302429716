package service

import (
	"context"
	"fmt"

	"github.com/gavinflud/lists/internal/domain"
	"github.com/gavinflud/lists/internal/my_errors"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo UserRepository
	roleRepo RoleRepository
}

func NewUserService(userRepo UserRepository, roleRepo RoleRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

// UserChanges carries the fields an update may touch; nil means unchanged.
type UserChanges struct {
	Username *string
	Password *string
}

func (s *UserService) Create(ctx context.Context, caller domain.Principal, username, password string, roleCodes []string) (*domain.AppUser, error) {
	if !caller.IsAdmin() {
		return nil, my_errors.ErrNotAllowed
	}

	if username == "" {
		return nil, fmt.Errorf("username: %w", my_errors.ErrEmptyField)
	}
	if password == "" {
		return nil, fmt.Errorf("password: %w", my_errors.ErrEmptyField)
	}

	exists, err := s.userRepo.ExistsActiveByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if exists {
		return nil, my_errors.ErrUserAlreadyExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	roles := make([]domain.Role, 0, len(roleCodes))
	for _, code := range roleCodes {
		role, err := s.roleRepo.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		roles = append(roles, *role)
	}

	user := &domain.AppUser{
		Username:     username,
		PasswordHash: string(passwordHash),
		Roles:        roles,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, caller domain.Principal, id int64) (*domain.AppUser, error) {
	if !caller.IsAdminOrSelf(id) {
		return nil, my_errors.ErrNotAllowed
	}
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) GetAll(ctx context.Context, caller domain.Principal) ([]domain.AppUser, error) {
	if !caller.IsAdmin() {
		return nil, my_errors.ErrNotAllowed
	}

	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	return users, nil
}

func (s *UserService) Update(ctx context.Context, caller domain.Principal, id int64, changes UserChanges) (*domain.AppUser, error) {
	if !caller.IsAdminOrSelf(id) {
		return nil, my_errors.ErrNotAllowed
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// the uniqueness check only runs when the natural key actually changes
	if changes.Username != nil && *changes.Username != user.Username {
		exists, err := s.userRepo.ExistsActiveByUsername(ctx, *changes.Username)
		if err != nil {
			return nil, fmt.Errorf("failed to check user existence: %w", err)
		}
		if exists {
			return nil, my_errors.ErrUserAlreadyExists
		}
		user.Username = *changes.Username
	}
	if changes.Password != nil {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(*changes.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(passwordHash)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) Retire(ctx context.Context, caller domain.Principal, id int64) error {
	if !caller.IsAdminOrSelf(id) {
		return my_errors.ErrNotAllowed
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	user.Retire()
	return s.userRepo.Update(ctx, user)
}
