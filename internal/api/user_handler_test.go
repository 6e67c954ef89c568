package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aprendia/aprendia-api/internal/domain"
	"github.com/aprendia/aprendia-api/internal/mocks"
)

func newTestUser(t *testing.T) *domain.User {
	t.Helper()
	user, err := domain.NewUser("Lucía", "lucia@example.com", "password1234567")
	require.NoError(t, err)
	user.HashedPassword = "hashed:password1234567"
	user.Password = ""
	return user
}

func TestGetProfile(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	user := newTestUser(t)
	userStore.Users[user.Email] = user

	handler := NewUserHandler(userStore, &mocks.MockPasswordHasher{}, nil)

	req := withUserID(httptest.NewRequest("GET", "/users/me", nil), user.ID)
	recorder := httptest.NewRecorder()

	handler.GetProfile(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp ProfileResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, user.ID, resp.ID)
	assert.Equal(t, "Lucía", resp.Name)
	assert.Equal(t, "lucia@example.com", resp.Email)
	assert.Equal(t, domain.DefaultAvatarURL, resp.AvatarURL)

	// The password hash must never appear in the response body.
	assert.NotContains(t, recorder.Body.String(), "hashed:")
}

func TestGetProfileUnauthenticated(t *testing.T) {
	t.Parallel()

	handler := NewUserHandler(mocks.NewMockUserStore(), &mocks.MockPasswordHasher{}, nil)

	req := httptest.NewRequest("GET", "/users/me", nil)
	recorder := httptest.NewRecorder()

	handler.GetProfile(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestGetProfileNotFound(t *testing.T) {
	t.Parallel()

	handler := NewUserHandler(mocks.NewMockUserStore(), &mocks.MockPasswordHasher{}, nil)

	req := withUserID(httptest.NewRequest("GET", "/users/me", nil), uuid.New())
	recorder := httptest.NewRecorder()

	handler.GetProfile(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	user := newTestUser(t)
	userStore.Users[user.Email] = user

	handler := NewUserHandler(userStore, &mocks.MockPasswordHasher{}, nil)

	payload := `{"name":"Lucía María","avatar_url":"https://example.com/avatar.png"}`
	req := withUserID(httptest.NewRequest("PUT", "/users/me", bytes.NewBufferString(payload)), user.ID)
	recorder := httptest.NewRecorder()

	handler.UpdateProfile(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp ProfileResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "Lucía María", resp.Name)
	assert.Equal(t, "https://example.com/avatar.png", resp.AvatarURL)

	// Untouched fields keep their stored values.
	assert.Equal(t, "lucia@example.com", resp.Email)
}

func TestUpdateProfilePassword(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	user := newTestUser(t)
	userStore.Users[user.Email] = user

	handler := NewUserHandler(userStore, &mocks.MockPasswordHasher{}, nil)

	payload := `{"password":"newpassword12345"}`
	req := withUserID(httptest.NewRequest("PUT", "/users/me", bytes.NewBufferString(payload)), user.ID)
	recorder := httptest.NewRecorder()

	handler.UpdateProfile(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "hashed:newpassword12345", userStore.Users[user.Email].HashedPassword)
}

func TestUpdateProfileValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
	}{
		{"malformed payload", `{"name":`},
		{"invalid email", `{"email":"not-an-email"}`},
		{"invalid avatar url", `{"avatar_url":"not a url"}`},
		{"short password", `{"password":"short"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			userStore := mocks.NewMockUserStore()
			user := newTestUser(t)
			userStore.Users[user.Email] = user

			handler := NewUserHandler(userStore, &mocks.MockPasswordHasher{}, nil)

			req := withUserID(
				httptest.NewRequest("PUT", "/users/me", bytes.NewBufferString(tt.payload)),
				user.ID,
			)
			recorder := httptest.NewRecorder()

			handler.UpdateProfile(recorder, req)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}
