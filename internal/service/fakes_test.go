package service

import (
	"context"
	"time"

	"github.com/gavinflud/lists/internal/domain"
	"github.com/gavinflud/lists/internal/my_errors"
)

// In-memory fakes implementing the repository contracts. The exists-check
// call counters let tests assert when the uniqueness check is consulted.

type fakeUserRepo struct {
	users       map[int64]*domain.AppUser
	nextID      int64
	existsCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*domain.AppUser{}, nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.AppUser) error {
	for _, u := range f.users {
		if !u.Retired && u.Username == user.Username {
			return my_errors.ErrUserAlreadyExists
		}
	}
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.AppUser, error) {
	u, ok := f.users[id]
	if !ok || u.Retired {
		return nil, my_errors.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.AppUser, error) {
	for _, u := range f.users {
		if !u.Retired && u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, my_errors.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsActiveByUsername(_ context.Context, username string) (bool, error) {
	f.existsCalls++
	for _, u := range f.users {
		if !u.Retired && u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) GetAll(_ context.Context) ([]domain.AppUser, error) {
	var users []domain.AppUser
	for _, u := range f.users {
		if !u.Retired {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.AppUser) error {
	if _, ok := f.users[user.ID]; !ok {
		return my_errors.ErrUserNotFound
	}
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

type fakeRoleRepo struct {
	roles       map[int64]*domain.Role
	nextID      int64
	existsCalls int
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: map[int64]*domain.Role{}, nextID: 1}
}

func (f *fakeRoleRepo) Create(_ context.Context, role *domain.Role) error {
	for _, r := range f.roles {
		if !r.Retired && r.Code == role.Code {
			return my_errors.ErrRoleAlreadyExists
		}
	}
	role.ID = f.nextID
	f.nextID++
	role.CreatedAt = time.Now().UTC()
	role.UpdatedAt = role.CreatedAt
	stored := *role
	f.roles[role.ID] = &stored
	return nil
}

func (f *fakeRoleRepo) GetByCode(_ context.Context, code string) (*domain.Role, error) {
	for _, r := range f.roles {
		if !r.Retired && r.Code == code {
			copied := *r
			return &copied, nil
		}
	}
	return nil, my_errors.ErrRoleNotFound
}

func (f *fakeRoleRepo) ExistsActiveByCode(_ context.Context, code string) (bool, error) {
	f.existsCalls++
	for _, r := range f.roles {
		if !r.Retired && r.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRoleRepo) GetAll(_ context.Context) ([]domain.Role, error) {
	var roles []domain.Role
	for _, r := range f.roles {
		if !r.Retired {
			roles = append(roles, *r)
		}
	}
	return roles, nil
}

func (f *fakeRoleRepo) Update(_ context.Context, role *domain.Role) error {
	if _, ok := f.roles[role.ID]; !ok {
		return my_errors.ErrRoleNotFound
	}
	stored := *role
	f.roles[role.ID] = &stored
	return nil
}

type fakeTeamRepo struct {
	teams     map[int64]*domain.Team
	members   map[int64][]int64
	usernames map[int64]string
	nextID    int64
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{
		teams:     map[int64]*domain.Team{},
		members:   map[int64][]int64{},
		usernames: map[int64]string{},
		nextID:    1,
	}
}

func (f *fakeTeamRepo) Create(_ context.Context, team *domain.Team, creatorID int64) error {
	for _, t := range f.teams {
		if !t.Retired && t.Name == team.Name {
			return my_errors.ErrTeamAlreadyExists
		}
	}
	team.ID = f.nextID
	f.nextID++
	team.CreatedAt = time.Now().UTC()
	team.UpdatedAt = team.CreatedAt
	stored := *team
	f.teams[team.ID] = &stored
	f.members[team.ID] = []int64{creatorID}
	return nil
}

func (f *fakeTeamRepo) withMembers(t *domain.Team) *domain.Team {
	copied := *t
	copied.Members = nil
	for _, userID := range f.members[t.ID] {
		copied.Members = append(copied.Members, domain.TeamMember{
			UserID:   userID,
			Username: f.usernames[userID],
		})
	}
	return &copied
}

func (f *fakeTeamRepo) GetByName(_ context.Context, name string) (*domain.Team, error) {
	for _, t := range f.teams {
		if !t.Retired && t.Name == name {
			return f.withMembers(t), nil
		}
	}
	return nil, my_errors.ErrTeamNotFound
}

func (f *fakeTeamRepo) ExistsActiveByName(_ context.Context, name string) (bool, error) {
	for _, t := range f.teams {
		if !t.Retired && t.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTeamRepo) GetAll(_ context.Context) ([]domain.Team, error) {
	var teams []domain.Team
	for _, t := range f.teams {
		if !t.Retired {
			teams = append(teams, *f.withMembers(t))
		}
	}
	return teams, nil
}

func (f *fakeTeamRepo) Update(_ context.Context, team *domain.Team) error {
	if _, ok := f.teams[team.ID]; !ok {
		return my_errors.ErrTeamNotFound
	}
	stored := *team
	stored.Members = nil
	f.teams[team.ID] = &stored
	return nil
}

func (f *fakeTeamRepo) AddMember(_ context.Context, teamID, userID int64) error {
	for _, id := range f.members[teamID] {
		if id == userID {
			return nil
		}
	}
	f.members[teamID] = append(f.members[teamID], userID)
	return nil
}

func (f *fakeTeamRepo) RemoveMember(_ context.Context, teamID, userID int64) error {
	ids := f.members[teamID]
	for i, id := range ids {
		if id == userID {
			f.members[teamID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return my_errors.ErrNotATeamMember
}

func (f *fakeTeamRepo) FindTeamsForUser(_ context.Context, userID int64, limit, offset int) ([]domain.Team, error) {
	var teams []domain.Team
	for _, t := range f.teams {
		if t.Retired {
			continue
		}
		for _, id := range f.members[t.ID] {
			if id == userID {
				teams = append(teams, *f.withMembers(t))
				break
			}
		}
	}
	if offset >= len(teams) {
		return nil, nil
	}
	teams = teams[offset:]
	if len(teams) > limit {
		teams = teams[:limit]
	}
	return teams, nil
}
