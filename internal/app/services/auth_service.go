package services

import (
	"github.com/rs/zerolog"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/app/repositories"
	"github.com/campushub/portal/internal/pkg/apperrors"
	"github.com/campushub/portal/internal/pkg/auth"
)

// AuthService handles login and registration.
type AuthService struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login validates credentials by exact match on all four account fields and
// issues an access token. A mismatch on any field is a single
// invalid-credentials answer; nothing distinguishes which field was wrong.
func (s *AuthService) Login(institution, username, password string, role models.Role) (token string, expiresIn int, session models.Session, err error) {
	if !models.ValidRole(role) {
		return "", 0, models.Session{}, apperrors.NewValidationError("unknown role")
	}

	ok, err := s.userRepo.Exists(institution, username, password, role)
	if err != nil {
		return "", 0, models.Session{}, err
	}
	if !ok {
		return "", 0, models.Session{}, apperrors.ErrInvalidCredentials
	}

	session = models.Session{
		Institution: institution,
		Username:    username,
		Role:        role,
	}

	token, expiresIn, err = s.jwtService.GenerateToken(session)
	if err != nil {
		return "", 0, models.Session{}, err
	}

	s.logger.Info().
		Str("institution", institution).
		Str("username", username).
		Str("role", string(role)).
		Msg("User logged in")

	return token, expiresIn, session, nil
}

// Register appends a new account row. Duplicate registrations with identical
// credentials are permitted; the users table has no uniqueness constraint
// and the historical behavior is preserved.
func (s *AuthService) Register(institution, username, password string, role models.Role) error {
	if institution == "" || username == "" || password == "" {
		return apperrors.NewValidationError("institution, username and password are required")
	}
	if !models.ValidRole(role) {
		return apperrors.NewValidationError("unknown role")
	}

	return s.userRepo.Create(models.User{
		Institution: institution,
		Username:    username,
		Password:    password,
		Role:        role,
	})
}
