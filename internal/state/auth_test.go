package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aps-backend/internal/model"
	"aps-backend/internal/storage"
)

func TestAuthLogin(t *testing.T) {
	ctx := context.Background()
	s := newMemory()
	auth := NewAuthStore(ctx, newAPI(), s)
	require.False(t, auth.IsAuthenticated())

	session, err := auth.Login(ctx, hrCreds, model.RoleHR)
	require.NoError(t, err)
	assert.Equal(t, model.RoleHR, session.User.Role)
	assert.True(t, auth.IsAuthenticated())
	assert.False(t, auth.Loading())
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, session.Token, auth.Token())

	token, err := s.GetItem(ctx, storage.KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, session.Token, token)

	var stored model.User
	require.NoError(t, storage.GetJSON(ctx, s, storage.KeyUserData, &stored))
	assert.Equal(t, session.User, stored)
}

func TestAuthLoginRejected(t *testing.T) {
	ctx := context.Background()
	s := newMemory()
	auth := NewAuthStore(ctx, newAPI(), s)

	for _, role := range []string{model.RoleAdmin, "candidate"} {
		_, err := auth.Login(ctx, hrCreds, role)
		require.Error(t, err)
		assert.True(t, IsActionError(err))
		assert.Equal(t, "Invalid credentials", err.Error())
	}

	_, err := auth.Login(ctx, model.Credentials{Email: "hr@akshyapatra.com", Password: "wrong"}, model.RoleHR)
	assert.True(t, IsActionError(err))

	assert.False(t, auth.IsAuthenticated())
	_, err = s.GetItem(ctx, storage.KeyAuthToken)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestAuthRestoreWithoutDataSource(t *testing.T) {
	ctx := context.Background()
	s := newMemory()
	api := &countingAPI{MockAPI: newAPI()}

	first := NewAuthStore(ctx, api, s)
	session, err := first.Login(ctx, hrCreds, model.RoleHR)
	require.NoError(t, err)
	require.EqualValues(t, 1, api.logins.Load())

	second := NewAuthStore(ctx, api, s)
	assert.True(t, second.IsAuthenticated())
	restored, ok := second.User()
	require.True(t, ok)
	assert.Equal(t, session.User, restored)
	assert.Equal(t, session.Token, second.Token())
	assert.EqualValues(t, 1, api.logins.Load())
}

func TestAuthRestoreCorruptUser(t *testing.T) {
	ctx := context.Background()
	s := newMemory()
	require.NoError(t, s.SetItem(ctx, storage.KeyAuthToken, "mock_token_hr_1"))
	require.NoError(t, s.SetItem(ctx, storage.KeyUserData, "{broken"))

	auth := NewAuthStore(ctx, newAPI(), s)
	assert.False(t, auth.IsAuthenticated())

	_, err := s.GetItem(ctx, storage.KeyAuthToken)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = s.GetItem(ctx, storage.KeyUserData)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestAuthRestoreNeedsBothKeys(t *testing.T) {
	ctx := context.Background()
	s := newMemory()
	require.NoError(t, s.SetItem(ctx, storage.KeyAuthToken, "mock_token_hr_1"))

	auth := NewAuthStore(ctx, newAPI(), s)
	assert.False(t, auth.IsAuthenticated())

	// a lone token is left alone
	_, err := s.GetItem(ctx, storage.KeyAuthToken)
	assert.NoError(t, err)
}

func TestAuthLogout(t *testing.T) {
	ctx := context.Background()
	s := newMemory()
	auth := NewAuthStore(ctx, newAPI(), s)
	_, err := auth.Login(ctx, hrCreds, model.RoleHR)
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx))

	assert.False(t, auth.IsAuthenticated())
	assert.Empty(t, auth.Token())
	_, ok := auth.User()
	assert.False(t, ok)
	_, err = s.GetItem(ctx, storage.KeyAuthToken)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = s.GetItem(ctx, storage.KeyUserData)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestAuthUpdateUser(t *testing.T) {
	ctx := context.Background()
	s := newMemory()
	auth := NewAuthStore(ctx, newAPI(), s)

	assert.ErrorIs(t, auth.UpdateUser(ctx, model.User{Name: "x"}), ErrNotAuthenticated)

	session, err := auth.Login(ctx, hrCreds, model.RoleHR)
	require.NoError(t, err)
	user := session.User
	user.Name = "Priya"
	require.NoError(t, auth.UpdateUser(ctx, user))

	got, _ := auth.User()
	assert.Equal(t, "Priya", got.Name)

	var stored model.User
	require.NoError(t, storage.GetJSON(ctx, s, storage.KeyUserData, &stored))
	assert.Equal(t, "Priya", stored.Name)
}

func TestAuthLoginReturnsOwnToken(t *testing.T) {
	ctx := context.Background()
	auth := NewAuthStore(ctx, newAPI(), newMemory())

	hr, err := auth.Login(ctx, hrCreds, model.RoleHR)
	require.NoError(t, err)
	admin, err := auth.Login(ctx, adminCreds, model.RoleAdmin)
	require.NoError(t, err)

	assert.Contains(t, hr.Token, "mock_token_hr_")
	assert.Contains(t, admin.Token, "mock_token_admin_")
	assert.Equal(t, admin.Token, auth.Token())
}
