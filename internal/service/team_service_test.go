package service

import (
	"context"
	"testing"

	"github.com/gavinflud/lists/internal/domain"
	"github.com/gavinflud/lists/internal/my_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTeamServiceForTest(t *testing.T) (*TeamService, *fakeTeamRepo, *fakeUserRepo) {
	t.Helper()

	teamRepo := newFakeTeamRepo()
	userRepo := newFakeUserRepo()

	ctx := context.Background()
	require.NoError(t, userRepo.Create(ctx, &domain.AppUser{Username: "alice", PasswordHash: "x"}))
	require.NoError(t, userRepo.Create(ctx, &domain.AppUser{Username: "bob", PasswordHash: "x"}))
	teamRepo.usernames[1] = "alice"
	teamRepo.usernames[2] = "bob"

	return NewTeamService(teamRepo, userRepo), teamRepo, userRepo
}

func TestTeamService_Create_CreatorIsSoleMember(t *testing.T) {
	svc, _, _ := newTeamServiceForTest(t)
	ctx := context.Background()

	caller := domain.Principal{UserID: 1, Username: "alice"}
	team, err := svc.Create(ctx, caller, "platform")
	require.NoError(t, err)

	require.Len(t, team.Members, 1)
	assert.Equal(t, int64(1), team.Members[0].UserID)
	assert.Equal(t, "alice", team.Members[0].Username)

	teams, err := svc.FindTeamsForUser(ctx, caller, 1, 1, 20)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "platform", teams[0].Name)
}

func TestTeamService_Create_DuplicateName(t *testing.T) {
	svc, _, _ := newTeamServiceForTest(t)
	ctx := context.Background()

	caller := domain.Principal{UserID: 1, Username: "alice"}
	_, err := svc.Create(ctx, caller, "platform")
	require.NoError(t, err)

	_, err = svc.Create(ctx, caller, "platform")
	assert.ErrorIs(t, err, my_errors.ErrTeamAlreadyExists)
}

func TestTeamService_Retire(t *testing.T) {
	svc, _, _ := newTeamServiceForTest(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.Principal{UserID: 1}, "platform")
	require.NoError(t, err)

	require.NoError(t, svc.Retire(ctx, adminCaller, "platform"))

	_, err = svc.GetByName(ctx, "platform")
	assert.ErrorIs(t, err, my_errors.ErrTeamNotFound)
}

func TestTeamService_Retire_NotAdmin(t *testing.T) {
	svc, _, _ := newTeamServiceForTest(t)
	ctx := context.Background()

	caller := domain.Principal{UserID: 1, Username: "alice"}
	_, err := svc.Create(ctx, caller, "platform")
	require.NoError(t, err)

	err = svc.Retire(ctx, caller, "platform")
	assert.ErrorIs(t, err, my_errors.ErrNotAllowed)
}

func TestTeamService_AddMember(t *testing.T) {
	svc, _, _ := newTeamServiceForTest(t)
	ctx := context.Background()

	creator := domain.Principal{UserID: 1, Username: "alice"}
	_, err := svc.Create(ctx, creator, "platform")
	require.NoError(t, err)

	// an existing member may add another active user
	team, err := svc.AddMember(ctx, creator, "platform", 2)
	require.NoError(t, err)
	assert.Len(t, team.Members, 2)

	// a non-member non-admin may not
	outsider := domain.Principal{UserID: 99, Username: "mallory"}
	_, err = svc.AddMember(ctx, outsider, "platform", 2)
	assert.ErrorIs(t, err, my_errors.ErrNotAllowed)
}

func TestTeamService_AddMember_RetiredUser(t *testing.T) {
	svc, _, userRepo := newTeamServiceForTest(t)
	ctx := context.Background()

	creator := domain.Principal{UserID: 1, Username: "alice"}
	_, err := svc.Create(ctx, creator, "platform")
	require.NoError(t, err)

	bob, err := userRepo.GetByUsername(ctx, "bob")
	require.NoError(t, err)
	bob.Retire()
	require.NoError(t, userRepo.Update(ctx, bob))

	_, err = svc.AddMember(ctx, creator, "platform", bob.ID)
	assert.ErrorIs(t, err, my_errors.ErrUserNotFound)
}

func TestTeamService_RemoveMember(t *testing.T) {
	svc, _, _ := newTeamServiceForTest(t)
	ctx := context.Background()

	creator := domain.Principal{UserID: 1, Username: "alice"}
	_, err := svc.Create(ctx, creator, "platform")
	require.NoError(t, err)

	_, err = svc.AddMember(ctx, creator, "platform", 2)
	require.NoError(t, err)

	team, err := svc.RemoveMember(ctx, creator, "platform", 2)
	require.NoError(t, err)
	assert.Len(t, team.Members, 1)

	_, err = svc.RemoveMember(ctx, creator, "platform", 2)
	assert.ErrorIs(t, err, my_errors.ErrNotATeamMember)
}

func TestTeamService_FindTeamsForUser_Guard(t *testing.T) {
	svc, _, _ := newTeamServiceForTest(t)
	ctx := context.Background()

	creator := domain.Principal{UserID: 1, Username: "alice"}
	_, err := svc.Create(ctx, creator, "platform")
	require.NoError(t, err)

	// another non-admin user cannot list alice's teams
	other := domain.Principal{UserID: 2, Username: "bob"}
	_, err = svc.FindTeamsForUser(ctx, other, 1, 1, 20)
	assert.ErrorIs(t, err, my_errors.ErrNotAllowed)

	// an admin can
	teams, err := svc.FindTeamsForUser(ctx, adminCaller, 1, 1, 20)
	require.NoError(t, err)
	assert.Len(t, teams, 1)
}

func TestTeamService_Rename_UnchangedNameIsNoop(t *testing.T) {
	svc, _, _ := newTeamServiceForTest(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.Principal{UserID: 1}, "platform")
	require.NoError(t, err)

	team, err := svc.Rename(ctx, adminCaller, "platform", "platform")
	require.NoError(t, err)
	assert.Equal(t, "platform", team.Name)
}
