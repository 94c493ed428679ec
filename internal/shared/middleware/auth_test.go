package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courseplatform-backend/pkg/jwt"
)

const testSecret = "test-secret"

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/protected",
		AuthMiddleware(testSecret),
		RequireTeacher(),
		func(c *gin.Context) {
			id, ok := UserIDFromContext(c)
			if !ok {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "no user in context"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": id.String()})
		},
	)
	return router
}

func doAuthRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	manager := jwt.NewManager(testSecret)
	userID := uuid.NewString()

	t.Run("valid teacher token passes through", func(t *testing.T) {
		token, err := manager.GenerateAccessToken(userID, "teacher@example.com", RoleTeacher)
		require.NoError(t, err)

		w := doAuthRequest(authTestRouter(), "Bearer "+token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID)
	})

	t.Run("missing header is 401", func(t *testing.T) {
		w := doAuthRequest(authTestRouter(), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header is 401", func(t *testing.T) {
		w := doAuthRequest(authTestRouter(), "Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret is 401", func(t *testing.T) {
		token, err := jwt.NewManager("other-secret").GenerateAccessToken(userID, "x@example.com", RoleTeacher)
		require.NoError(t, err)

		w := doAuthRequest(authTestRouter(), "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("student role is 403", func(t *testing.T) {
		token, err := manager.GenerateAccessToken(userID, "student@example.com", "student")
		require.NoError(t, err)

		w := doAuthRequest(authTestRouter(), "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestValidateTokenRoundTrip(t *testing.T) {
	manager := jwt.NewManager(testSecret)
	userID := uuid.NewString()

	token, err := manager.GenerateAccessToken(userID, "teacher@example.com", RoleTeacher)
	require.NoError(t, err)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, RoleTeacher, claims.Role)
}
