package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mertcan/eduportal/internal/app/models"
	"github.com/mertcan/eduportal/internal/app/models/dto"
	"github.com/mertcan/eduportal/internal/app/repositories"
	"github.com/mertcan/eduportal/internal/pkg/apperrors"
	"github.com/mertcan/eduportal/internal/pkg/auth"
)

// AuthService defines the interface for session operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, principalID uuid.UUID) error
	CurrentProfile(ctx context.Context, principalID uuid.UUID, metadataRole string) (*dto.ProfileResponse, error)
}

type authServiceImpl struct {
	profileRepo  *repositories.ProfileRepository
	tokenRepo    *repositories.TokenRepository
	jwtService   *auth.JWTService
	roleResolver *RoleResolver
	logger       zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	profileRepo *repositories.ProfileRepository,
	tokenRepo *repositories.TokenRepository,
	jwtService *auth.JWTService,
	roleResolver *RoleResolver,
	lgr zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		profileRepo:  profileRepo,
		tokenRepo:    tokenRepo,
		jwtService:   jwtService,
		roleResolver: roleResolver,
		logger:       lgr,
	}
}

// Register creates a profile and opens a session. The requested role is
// written to the profile row and carried in the token's metadata claim.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	role := models.ParseRole(req.Role)
	if role == models.RoleUnknown {
		return nil, fmt.Errorf("%w: role must be student or faculty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.FullName) == "" {
		return nil, fmt.Errorf("%w: full name cannot be empty", apperrors.ErrValidationFailed)
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	profile := &models.Profile{
		ID:       uuid.New(),
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hashed,
		Role:     role,
	}

	if err := s.profileRepo.CreateProfile(ctx, profile); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error creating profile: %w", err)
	}

	s.logger.Info().Str("profileID", profile.ID.String()).Str("role", string(role)).Msg("Profile registered")

	return s.openSession(ctx, profile)
}

// Login validates credentials and opens a session.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	profile, err := s.profileRepo.GetProfileByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up profile: %w", err)
	}

	if !auth.CheckPassword(profile.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.openSession(ctx, profile)
}

// Refresh exchanges a refresh token for a new token pair, rotating it.
func (s *authServiceImpl) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	stored, err := s.tokenRepo.GetRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetProfileByID(ctx, stored.UserID)
	if err != nil {
		return nil, fmt.Errorf("error loading profile for refresh: %w", err)
	}

	if err := s.tokenRepo.DeleteRefreshToken(ctx, refreshToken); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to rotate refresh token")
	}

	return s.openSession(ctx, profile)
}

// Logout closes every session of the principal and drops its cached role.
func (s *authServiceImpl) Logout(ctx context.Context, principalID uuid.UUID) error {
	if err := s.tokenRepo.DeleteTokensForUser(ctx, principalID); err != nil {
		return fmt.Errorf("error revoking sessions: %w", err)
	}
	s.roleResolver.Forget(principalID)
	return nil
}

// CurrentProfile returns the principal's profile with its resolved role.
func (s *authServiceImpl) CurrentProfile(ctx context.Context, principalID uuid.UUID, metadataRole string) (*dto.ProfileResponse, error) {
	role := s.roleResolver.Resolve(ctx, principalID, metadataRole)

	profile, err := s.profileRepo.GetProfileByID(ctx, principalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			// Profile row not provisioned yet; role resolution already
			// degraded gracefully, report what we know from the session.
			return &dto.ProfileResponse{ID: principalID, Role: role}, nil
		}
		return nil, fmt.Errorf("error loading profile: %w", err)
	}

	return &dto.ProfileResponse{
		ID:       profile.ID,
		Email:    profile.Email,
		FullName: profile.FullName,
		Role:     role,
	}, nil
}

func (s *authServiceImpl) openSession(ctx context.Context, profile *models.Profile) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, err := s.jwtService.GenerateTokenPair(profile.ID, profile.Email, profile.FullName, string(profile.Role))
	if err != nil {
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	if err := s.tokenRepo.SaveRefreshToken(ctx, refreshToken, profile.ID, s.jwtService.RefreshTokenExpiry()); err != nil {
		return nil, fmt.Errorf("error saving refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		TokenType:    "Bearer",
		ExpiresIn:    expiresIn,
		RefreshToken: refreshToken,
	}, nil
}
