//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"petstay-backend/internal/domain/user"
	"petstay-backend/internal/handler/middleware"
	"petstay-backend/internal/pkg/config"
	"petstay-backend/internal/pkg/jwt"
	"petstay-backend/internal/usecase"
	"petstay-backend/tests/common/authtest"
	"petstay-backend/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *authtest.JWTHelper) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	svc := jwt.NewService(cfg.JWT.Secret, 0)
	mw := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))

	r := gin.New()
	r.GET("/me", mw.RequireAuth(), func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": actor.ID, "role": actor.Role})
	})
	r.POST("/calendar", mw.RequireAuth(), mw.RequireRole(user.RoleProvider, user.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r, authtest.NewJWTHelper(cfg.JWT)
}

func TestRequireAuth(t *testing.T) {
	router, tokens := newAuthRouter(t)
	userID := uuid.New()

	tests := []struct {
		name       string
		token      string
		expectCode int
	}{
		{name: "valid token", token: tokens.GenerateToken(t, userID, user.RoleClient), expectCode: http.StatusOK},
		{name: "no token", token: "", expectCode: http.StatusUnauthorized},
		{name: "garbage token", token: "not-a-jwt", expectCode: http.StatusUnauthorized},
		{name: "expired token", token: tokens.CreateExpiredToken(t, userID, user.RoleClient), expectCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, tt.token)
			if tt.expectCode == http.StatusOK {
				var body struct {
					ID   uuid.UUID `json:"id"`
					Role string    `json:"role"`
				}
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
				assert.Equal(t, userID, body.ID)
				assert.Equal(t, "client", body.Role)
				return
			}
			httptest.AssertErrorCode(t, w, tt.expectCode, "UNAUTHORIZED")
		})
	}
}

func TestRequireRole(t *testing.T) {
	router, tokens := newAuthRouter(t)

	w := httptest.PerformRequest(t, router, http.MethodPost, "/calendar", nil, tokens.GenerateToken(t, uuid.New(), user.RoleProvider))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.PerformRequest(t, router, http.MethodPost, "/calendar", nil, tokens.GenerateToken(t, uuid.New(), user.RoleClient))
	httptest.AssertErrorCode(t, w, http.StatusForbidden, "FORBIDDEN")
}
