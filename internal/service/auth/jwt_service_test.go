package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aprendia/aprendia-api/internal/config"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

// newTestJWTService creates a service with a fixed time function for
// predictable testing.
func newTestJWTService(secret string, lifetime time.Duration, timeFunc func() time.Time) JWTService {
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
		clockSkew:     2 * time.Minute,
	}
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(config.AuthConfig{
		JWTSecret:            testSecret,
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)
	require.NotNil(t, svc)

	// Short secrets are rejected
	_, err = NewJWTService(config.AuthConfig{
		JWTSecret:            "too-short",
		TokenLifetimeMinutes: 60,
	})
	require.Error(t, err)
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tokenLifetime := 60 * time.Minute
	userID := uuid.New()

	svc := newTestJWTService(testSecret, tokenLifetime, func() time.Time {
		return fixedTime
	})

	token, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	// Compare Unix timestamps to avoid timezone issues
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(tokenLifetime).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tokenLifetime := 60 * time.Minute
	wrongSecret := "wrong-secret-that-is-long-enough-for-testing"
	userID := uuid.New()

	tests := []struct {
		name      string
		setupFunc func() (JWTService, string)
		wantErr   error
	}{
		{
			name: "valid token",
			setupFunc: func() (JWTService, string) {
				svc := newTestJWTService(testSecret, tokenLifetime, func() time.Time {
					return fixedTime
				})
				token, _ := svc.GenerateToken(context.Background(), userID)
				return svc, token
			},
			wantErr: nil,
		},
		{
			name: "expired token",
			setupFunc: func() (JWTService, string) {
				genSvc := newTestJWTService(testSecret, tokenLifetime, func() time.Time {
					return fixedTime
				})
				token, _ := genSvc.GenerateToken(context.Background(), userID)

				// Validate well past expiry plus the allowed clock skew
				valSvc := newTestJWTService(testSecret, tokenLifetime, func() time.Time {
					return fixedTime.Add(tokenLifetime + time.Hour)
				})
				return valSvc, token
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "expired token within clock skew",
			setupFunc: func() (JWTService, string) {
				genSvc := newTestJWTService(testSecret, tokenLifetime, func() time.Time {
					return fixedTime
				})
				token, _ := genSvc.GenerateToken(context.Background(), userID)

				// One minute past expiry is still inside the 2-minute skew
				valSvc := newTestJWTService(testSecret, tokenLifetime, func() time.Time {
					return fixedTime.Add(tokenLifetime + time.Minute)
				})
				return valSvc, token
			},
			wantErr: nil,
		},
		{
			name: "wrong signing key",
			setupFunc: func() (JWTService, string) {
				genSvc := newTestJWTService(wrongSecret, tokenLifetime, func() time.Time {
					return fixedTime
				})
				token, _ := genSvc.GenerateToken(context.Background(), userID)

				valSvc := newTestJWTService(testSecret, tokenLifetime, func() time.Time {
					return fixedTime
				})
				return valSvc, token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "malformed token",
			setupFunc: func() (JWTService, string) {
				svc := newTestJWTService(testSecret, tokenLifetime, func() time.Time {
					return fixedTime
				})
				return svc, "not-a-jwt"
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "empty token",
			setupFunc: func() (JWTService, string) {
				svc := newTestJWTService(testSecret, tokenLifetime, func() time.Time {
					return fixedTime
				})
				return svc, ""
			},
			wantErr: ErrInvalidToken,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc, token := tc.setupFunc()

			claims, err := svc.ValidateToken(context.Background(), token)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, claims)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, claims)
			assert.Equal(t, userID, claims.UserID)
		})
	}
}
