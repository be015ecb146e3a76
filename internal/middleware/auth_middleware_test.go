package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mertcan/eduportal/internal/app/models"
	"github.com/mertcan/eduportal/internal/app/services"
	"github.com/mertcan/eduportal/internal/pkg/auth"
	"github.com/mertcan/eduportal/internal/pkg/cache"
)

type stubRoleReader struct {
	role models.Role
	err  error
}

func (s stubRoleReader) GetRoleByID(ctx context.Context, id uuid.UUID) (models.Role, error) {
	return s.role, s.err
}

func setupAuthTest(role models.Role) (*gin.Engine, *auth.JWTService) {
	gin.SetMode(gin.TestMode)

	jwtSvc := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "eduportal.test",
	})
	resolver := services.NewRoleResolver(stubRoleReader{role: role}, cache.New(time.Minute), services.RoleResolverConfig{
		Attempts: 1,
		Backoff:  time.Millisecond,
		CacheTTL: time.Minute,
	})
	mw := NewAuthMiddleware(jwtSvc, resolver)

	var captured models.Principal
	router := gin.New()
	router.GET("/whoami", mw.JWTAuth(), func(c *gin.Context) {
		captured, _ = GetPrincipal(c)
		c.JSON(http.StatusOK, gin.H{
			"fullName": captured.FullName,
			"role":     captured.Role,
		})
	})
	router.POST("/publish", mw.JWTAuth(), mw.FacultyRequired(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return router, jwtSvc
}

func doRequest(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthPopulatesPrincipalName(t *testing.T) {
	router, jwtSvc := setupAuthTest(models.RoleFaculty)

	token, _, _, err := jwtSvc.GenerateTokenPair(uuid.New(), "eren@uni.edu", "Dr. Eren Aksoy", "faculty")
	require.NoError(t, err)

	rec := doRequest(router, http.MethodGet, "/whoami", token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dr. Eren Aksoy")
	assert.Contains(t, rec.Body.String(), "faculty")
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	router, _ := setupAuthTest(models.RoleFaculty)

	rec := doRequest(router, http.MethodGet, "/whoami", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFacultyRequiredRejectsStudent(t *testing.T) {
	router, jwtSvc := setupAuthTest(models.RoleStudent)

	token, _, _, err := jwtSvc.GenerateTokenPair(uuid.New(), "selin@uni.edu", "Selin Ozkan", "student")
	require.NoError(t, err)

	rec := doRequest(router, http.MethodPost, "/publish", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestFacultyRequiredAllowsFaculty(t *testing.T) {
	router, jwtSvc := setupAuthTest(models.RoleFaculty)

	token, _, _, err := jwtSvc.GenerateTokenPair(uuid.New(), "eren@uni.edu", "Dr. Eren Aksoy", "faculty")
	require.NoError(t, err)

	rec := doRequest(router, http.MethodPost, "/publish", token)
	assert.Equal(t, http.StatusCreated, rec.Code)
}
