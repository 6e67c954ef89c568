package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aprendia/aprendia-api/internal/domain"
	"github.com/aprendia/aprendia-api/internal/mocks"
)

func newTestAuthHandler(userStore *mocks.MockUserStore) *AuthHandler {
	return NewAuthHandler(
		userStore,
		&mocks.MockJWTService{Token: "test-token"},
		&mocks.MockPasswordHasher{},
		&mocks.MockPasswordVerifier{ShouldSucceed: true},
		nil,
	)
}

func TestRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
		wantToken  bool
	}{
		{
			name: "valid registration",
			payload: map[string]interface{}{
				"name":     "Lucía",
				"email":    "lucia@example.com",
				"password": "password1234567",
			},
			wantStatus: http.StatusCreated,
			wantToken:  true,
		},
		{
			name: "invalid email",
			payload: map[string]interface{}{
				"name":     "Lucía",
				"email":    "invalid-email",
				"password": "password1234567",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "password too short",
			payload: map[string]interface{}{
				"name":     "Lucía",
				"email":    "lucia@example.com",
				"password": "short",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing name",
			payload: map[string]interface{}{
				"email":    "lucia@example.com",
				"password": "password1234567",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing email",
			payload: map[string]interface{}{
				"name":     "Lucía",
				"password": "password1234567",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			handler := newTestAuthHandler(mocks.NewMockUserStore())

			payloadBytes, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			req := httptest.NewRequest("POST", "/auth/register", bytes.NewBuffer(payloadBytes))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()

			handler.Register(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantToken {
				var resp AuthResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Equal(t, "test-token", resp.Token)
				assert.NotEqual(t, "", resp.UserID.String())
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	existing, err := domain.NewUser("Lucía", "lucia@example.com", "password1234567")
	require.NoError(t, err)
	existing.HashedPassword = "hashed"
	existing.Password = ""
	userStore.Users[existing.Email] = existing

	handler := newTestAuthHandler(userStore)

	payload := `{"name":"Otra","email":"lucia@example.com","password":"password1234567"}`
	req := httptest.NewRequest("POST", "/auth/register", bytes.NewBufferString(payload))
	recorder := httptest.NewRecorder()

	handler.Register(recorder, req)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestRegisterHashesPassword(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	handler := newTestAuthHandler(userStore)

	payload := `{"name":"Lucía","email":"lucia@example.com","password":"password1234567"}`
	req := httptest.NewRequest("POST", "/auth/register", bytes.NewBufferString(payload))
	recorder := httptest.NewRecorder()

	handler.Register(recorder, req)

	require.Equal(t, http.StatusCreated, recorder.Code)

	stored := userStore.Users["lucia@example.com"]
	require.NotNil(t, stored)
	assert.Equal(t, "hashed:password1234567", stored.HashedPassword)
	assert.Empty(t, stored.Password, "plaintext password must not reach the store")
}

func TestLogin(t *testing.T) {
	t.Parallel()

	makeStore := func() *mocks.MockUserStore {
		userStore := mocks.NewMockUserStore()
		user, err := domain.NewUser("Lucía", "lucia@example.com", "password1234567")
		if err != nil {
			panic(err)
		}
		user.HashedPassword = "hashed:password1234567"
		user.Password = ""
		userStore.Users[user.Email] = user
		return userStore
	}

	tests := []struct {
		name           string
		payload        string
		passwordsMatch bool
		wantStatus     int
	}{
		{
			name:           "valid credentials",
			payload:        `{"email":"lucia@example.com","password":"password1234567"}`,
			passwordsMatch: true,
			wantStatus:     http.StatusOK,
		},
		{
			name:           "wrong password",
			payload:        `{"email":"lucia@example.com","password":"wrongpassword12"}`,
			passwordsMatch: false,
			wantStatus:     http.StatusUnauthorized,
		},
		{
			name:           "unknown email",
			payload:        `{"email":"nobody@example.com","password":"password1234567"}`,
			passwordsMatch: true,
			wantStatus:     http.StatusUnauthorized,
		},
		{
			name:           "malformed payload",
			payload:        `{"email":`,
			passwordsMatch: true,
			wantStatus:     http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			handler := NewAuthHandler(
				makeStore(),
				&mocks.MockJWTService{Token: "test-token"},
				&mocks.MockPasswordHasher{},
				&mocks.MockPasswordVerifier{ShouldSucceed: tt.passwordsMatch},
				nil,
			)

			req := httptest.NewRequest("POST", "/auth/login", bytes.NewBufferString(tt.payload))
			recorder := httptest.NewRecorder()

			handler.Login(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
