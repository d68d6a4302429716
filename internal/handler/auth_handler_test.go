package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gavinflud/lists/internal/domain"
	"github.com/gavinflud/lists/internal/dto"
	"github.com/gavinflud/lists/internal/my_errors"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthService struct{}

func (fakeAuthService) Authenticate(_ context.Context, username, password string) (*domain.TokenPair, error) {
	if username == "alice" && password == "correct-password" {
		return &domain.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
	}
	return nil, my_errors.ErrInvalidCredentials
}

func (fakeAuthService) Refresh(_ context.Context, refreshToken string) (*domain.TokenPair, error) {
	if refreshToken == "refresh" {
		return &domain.TokenPair{AccessToken: "access2", RefreshToken: "refresh2"}, nil
	}
	return nil, my_errors.ErrInvalidToken
}

func postJSON(t *testing.T, h http.HandlerFunc, body interface{}) (*httptest.ResponseRecorder, dto.APIResponse) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h(rec, req)

	var envelope dto.APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return rec, envelope
}

func TestAuthHandler_Authenticate(t *testing.T) {
	h := NewAuthHandler(fakeAuthService{}, validator.New())

	rec, envelope := postJSON(t, h.Authenticate, map[string]string{
		"username": "alice",
		"password": "correct-password",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, envelope.ErrorCode)
	assert.False(t, envelope.Timestamp.IsZero())

	body, ok := envelope.Body.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "access", body["access_token"])
	assert.Equal(t, "refresh", body["refresh_token"])
}

func TestAuthHandler_Authenticate_BadCredentials(t *testing.T) {
	h := NewAuthHandler(fakeAuthService{}, validator.New())

	rec, envelope := postJSON(t, h.Authenticate, map[string]string{
		"username": "alice",
		"password": "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, dto.ErrCodeUnauthorized, envelope.ErrorCode)
	assert.NotEmpty(t, envelope.ErrorDescription)
	assert.Nil(t, envelope.Body)
}

func TestAuthHandler_Authenticate_MissingFields(t *testing.T) {
	h := NewAuthHandler(fakeAuthService{}, validator.New())

	rec, envelope := postJSON(t, h.Authenticate, map[string]string{"username": "alice"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, dto.ErrCodeBadOperation, envelope.ErrorCode)
}

func TestAuthHandler_Refresh(t *testing.T) {
	h := NewAuthHandler(fakeAuthService{}, validator.New())

	rec, envelope := postJSON(t, h.Refresh, map[string]string{"refresh_token": "refresh"})

	assert.Equal(t, http.StatusOK, rec.Code)
	body, ok := envelope.Body.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "access2", body["access_token"])
}

func TestAuthHandler_Refresh_InvalidToken(t *testing.T) {
	h := NewAuthHandler(fakeAuthService{}, validator.New())

	rec, envelope := postJSON(t, h.Refresh, map[string]string{"refresh_token": "tampered"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, dto.ErrCodeUnauthorized, envelope.ErrorCode)
}
