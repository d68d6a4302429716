package service

import (
	"context"
	"fmt"

	"github.com/gavinflud/lists/internal/domain"
	"github.com/gavinflud/lists/internal/my_errors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// NormalizePage clamps pagination values to the bounds actually served, so
// callers can report the same page and size the query used.
func NormalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPageSize
	}
	if perPage > maxPageSize {
		perPage = maxPageSize
	}
	return page, perPage
}

type TeamService struct {
	teamRepo TeamRepository
	userRepo UserRepository
}

func NewTeamService(teamRepo TeamRepository, userRepo UserRepository) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		userRepo: userRepo,
	}
}

// Create makes a new team with the caller as its sole initial member.
func (s *TeamService) Create(ctx context.Context, caller domain.Principal, name string) (*domain.Team, error) {
	if name == "" {
		return nil, fmt.Errorf("name: %w", my_errors.ErrEmptyField)
	}

	exists, err := s.teamRepo.ExistsActiveByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check team existence: %w", err)
	}
	if exists {
		return nil, my_errors.ErrTeamAlreadyExists
	}

	team := &domain.Team{Name: name}
	if err := s.teamRepo.Create(ctx, team, caller.UserID); err != nil {
		return nil, err
	}

	createdTeam, err := s.teamRepo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get created team: %w", err)
	}

	return createdTeam, nil
}

func (s *TeamService) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	if name == "" {
		return nil, fmt.Errorf("name: %w", my_errors.ErrEmptyField)
	}
	return s.teamRepo.GetByName(ctx, name)
}

func (s *TeamService) GetAll(ctx context.Context, caller domain.Principal) ([]domain.Team, error) {
	if !caller.IsAdmin() {
		return nil, my_errors.ErrNotAllowed
	}

	teams, err := s.teamRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all teams: %w", err)
	}
	return teams, nil
}

func (s *TeamService) Rename(ctx context.Context, caller domain.Principal, name, newName string) (*domain.Team, error) {
	if !caller.IsAdmin() {
		return nil, my_errors.ErrNotAllowed
	}
	if newName == "" {
		return nil, fmt.Errorf("name: %w", my_errors.ErrEmptyField)
	}

	team, err := s.teamRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	// the uniqueness check only runs when the name actually changes
	if newName != team.Name {
		exists, err := s.teamRepo.ExistsActiveByName(ctx, newName)
		if err != nil {
			return nil, fmt.Errorf("failed to check team existence: %w", err)
		}
		if exists {
			return nil, my_errors.ErrTeamAlreadyExists
		}
		team.Name = newName

		if err := s.teamRepo.Update(ctx, team); err != nil {
			return nil, err
		}
	}

	return team, nil
}

func (s *TeamService) Retire(ctx context.Context, caller domain.Principal, name string) error {
	if !caller.IsAdmin() {
		return my_errors.ErrNotAllowed
	}

	team, err := s.teamRepo.GetByName(ctx, name)
	if err != nil {
		return err
	}

	team.Retire()
	return s.teamRepo.Update(ctx, team)
}

// AddMember lets an administrator or an existing member grow the team.
func (s *TeamService) AddMember(ctx context.Context, caller domain.Principal, name string, userID int64) (*domain.Team, error) {
	team, err := s.teamRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if !caller.IsAdmin() && !team.IsMember(caller.UserID) {
		return nil, my_errors.ErrNotAllowed
	}

	// the new member must be an active user
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	if err := s.teamRepo.AddMember(ctx, team.ID, userID); err != nil {
		return nil, err
	}

	return s.teamRepo.GetByName(ctx, name)
}

func (s *TeamService) RemoveMember(ctx context.Context, caller domain.Principal, name string, userID int64) (*domain.Team, error) {
	team, err := s.teamRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if !caller.IsAdmin() && !team.IsMember(caller.UserID) {
		return nil, my_errors.ErrNotAllowed
	}

	if err := s.teamRepo.RemoveMember(ctx, team.ID, userID); err != nil {
		return nil, err
	}

	return s.teamRepo.GetByName(ctx, name)
}

// FindTeamsForUser returns the page of active teams the user is a member of,
// visible to the user themselves or an administrator.
func (s *TeamService) FindTeamsForUser(ctx context.Context, caller domain.Principal, userID int64, page, perPage int) ([]domain.Team, error) {
	if !caller.IsAdminOrSelf(userID) {
		return nil, my_errors.ErrNotAllowed
	}

	page, perPage = NormalizePage(page, perPage)

	teams, err := s.teamRepo.FindTeamsForUser(ctx, userID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams for user: %w", err)
	}
	return teams, nil
}
