package services

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/pkg/apperrors"
	"github.com/campushub/portal/internal/pkg/auth"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	repos := newTestRepos(t)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	return NewAuthService(repos.Users, jwtService, zerolog.Nop())
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	svc := newTestAuthService(t)

	require.NoError(t, svc.Register("campus", "alice", "secret", models.RoleStudent))

	token, expiresIn, session, err := svc.Login("campus", "alice", "secret", models.RoleStudent)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Positive(t, expiresIn)
	assert.Equal(t, models.Session{Institution: "campus", Username: "alice", Role: models.RoleStudent}, session)
}

func TestAuthService_LoginMatchesAllFourFields(t *testing.T) {
	svc := newTestAuthService(t)
	require.NoError(t, svc.Register("campus", "alice", "secret", models.RoleStudent))

	testCases := []struct {
		name                            string
		institution, username, password string
		role                            models.Role
	}{
		{"wrong institution", "elsewhere", "alice", "secret", models.RoleStudent},
		{"wrong username", "campus", "bob", "secret", models.RoleStudent},
		{"wrong password", "campus", "alice", "Secret", models.RoleStudent},
		{"wrong role", "campus", "alice", "secret", models.RoleWarden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := svc.Login(tc.institution, tc.username, tc.password, tc.role)
			assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		})
	}
}

func TestAuthService_RegisterPermitsDuplicates(t *testing.T) {
	svc := newTestAuthService(t)

	require.NoError(t, svc.Register("campus", "alice", "secret", models.RoleStudent))
	require.NoError(t, svc.Register("campus", "alice", "secret", models.RoleStudent))

	// Login still works against the duplicated rows.
	_, _, _, err := svc.Login("campus", "alice", "secret", models.RoleStudent)
	assert.NoError(t, err)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	svc := newTestAuthService(t)

	assert.Error(t, svc.Register("", "alice", "secret", models.RoleStudent))
	assert.Error(t, svc.Register("campus", "", "secret", models.RoleStudent))
	assert.Error(t, svc.Register("campus", "alice", "", models.RoleStudent))
	assert.Error(t, svc.Register("campus", "alice", "secret", "Admin"))
}
