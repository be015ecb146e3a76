package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mertcan/eduportal/internal/pkg/apperrors"
)

func newTestService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "eduportal.test",
	})
}

func TestGenerateTokenPairRoundTrip(t *testing.T) {
	svc := newTestService(time.Hour)
	userID := uuid.New()

	accessToken, refreshToken, expiresIn, err := svc.GenerateTokenPair(userID, "ayse@uni.edu", "Ayse Demir", "faculty")
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateAndExtractClaims(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ayse@uni.edu", claims.Email)
	assert.Equal(t, "Ayse Demir", claims.FullName)
	assert.Equal(t, "faculty", claims.Role)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestService(-time.Minute)

	accessToken, _, _, err := svc.GenerateTokenPair(uuid.New(), "mehmet@uni.edu", "Mehmet Kaya", "student")
	require.NoError(t, err)

	_, err = svc.ValidateAndExtractClaims(accessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestValidateTokenWithWrongSecret(t *testing.T) {
	issuer := newTestService(time.Hour)
	accessToken, _, _, err := issuer.GenerateTokenPair(uuid.New(), "zeynep@uni.edu", "Zeynep Arslan", "student")
	require.NoError(t, err)

	verifier := NewJWTService(JWTConfig{
		SecretKey:       "other-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "eduportal.test",
	})

	_, err = verifier.ValidateAndExtractClaims(accessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)

	_, err = ExtractBearerToken("Basic abc123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidFormat)
}
