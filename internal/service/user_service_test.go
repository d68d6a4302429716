package service

import (
	"context"
	"testing"

	"github.com/gavinflud/lists/internal/domain"
	"github.com/gavinflud/lists/internal/my_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserServiceForTest(t *testing.T) (*UserService, *fakeUserRepo, *fakeRoleRepo) {
	t.Helper()

	userRepo := newFakeUserRepo()
	roleRepo := newFakeRoleRepo()

	require.NoError(t, roleRepo.Create(context.Background(), &domain.Role{Code: "EDITOR"}))

	return NewUserService(userRepo, roleRepo), userRepo, roleRepo
}

func TestUserService_Create(t *testing.T) {
	svc, _, _ := newUserServiceForTest(t)
	ctx := context.Background()

	user, err := svc.Create(ctx, adminCaller, "alice", "a-strong-password", []string{"EDITOR"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	require.Len(t, user.Roles, 1)
	assert.Equal(t, "EDITOR", user.Roles[0].Code)

	// the stored hash verifies against the original password
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("a-strong-password")))
}

func TestUserService_Create_DuplicateUsername(t *testing.T) {
	svc, _, _ := newUserServiceForTest(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, adminCaller, "alice", "a-strong-password", nil)
	require.NoError(t, err)

	_, err = svc.Create(ctx, adminCaller, "alice", "another-password", nil)
	assert.ErrorIs(t, err, my_errors.ErrUserAlreadyExists)
}

func TestUserService_Create_NotAdmin(t *testing.T) {
	svc, _, _ := newUserServiceForTest(t)

	_, err := svc.Create(context.Background(), plainCaller, "bob", "a-strong-password", nil)
	assert.ErrorIs(t, err, my_errors.ErrNotAllowed)
}

func TestUserService_Create_UnknownRole(t *testing.T) {
	svc, _, _ := newUserServiceForTest(t)

	_, err := svc.Create(context.Background(), adminCaller, "bob", "a-strong-password", []string{"MISSING"})
	assert.ErrorIs(t, err, my_errors.ErrRoleNotFound)
}

func TestUserService_GetByID_Guard(t *testing.T) {
	svc, _, _ := newUserServiceForTest(t)
	ctx := context.Background()

	user, err := svc.Create(ctx, adminCaller, "alice", "a-strong-password", nil)
	require.NoError(t, err)

	self := domain.Principal{UserID: user.ID, Username: "alice"}
	got, err := svc.GetByID(ctx, self, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	other := domain.Principal{UserID: user.ID + 100, Username: "mallory"}
	_, err = svc.GetByID(ctx, other, user.ID)
	assert.ErrorIs(t, err, my_errors.ErrNotAllowed)

	_, err = svc.GetByID(ctx, adminCaller, user.ID)
	assert.NoError(t, err)
}

func TestUserService_Retire(t *testing.T) {
	svc, _, _ := newUserServiceForTest(t)
	ctx := context.Background()

	user, err := svc.Create(ctx, adminCaller, "alice", "a-strong-password", nil)
	require.NoError(t, err)

	require.NoError(t, svc.Retire(ctx, adminCaller, user.ID))

	_, err = svc.GetByID(ctx, adminCaller, user.ID)
	assert.ErrorIs(t, err, my_errors.ErrUserNotFound)
}

func TestUserService_Update_UnchangedUsernameSkipsConflictCheck(t *testing.T) {
	svc, userRepo, _ := newUserServiceForTest(t)
	ctx := context.Background()

	user, err := svc.Create(ctx, adminCaller, "alice", "a-strong-password", nil)
	require.NoError(t, err)

	callsBefore := userRepo.existsCalls

	same := "alice"
	_, err = svc.Update(ctx, adminCaller, user.ID, UserChanges{Username: &same})
	require.NoError(t, err)
	assert.Equal(t, callsBefore, userRepo.existsCalls)
}

func TestUserService_Update_ChangedUsernameConflicts(t *testing.T) {
	svc, _, _ := newUserServiceForTest(t)
	ctx := context.Background()

	user, err := svc.Create(ctx, adminCaller, "alice", "a-strong-password", nil)
	require.NoError(t, err)
	_, err = svc.Create(ctx, adminCaller, "bob", "a-strong-password", nil)
	require.NoError(t, err)

	taken := "bob"
	_, err = svc.Update(ctx, adminCaller, user.ID, UserChanges{Username: &taken})
	assert.ErrorIs(t, err, my_errors.ErrUserAlreadyExists)
}
