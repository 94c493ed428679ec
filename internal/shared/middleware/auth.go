package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// Context keys set by AuthMiddleware.
	ContextUserID = "userID"
	ContextRole   = "role"

	// RoleTeacher is the capability required to create and mutate courses.
	RoleTeacher = "teacher"
)

// AuthMiddleware verifies the Bearer JWT and stores userID and role
// in the gin context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"success": false, "error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(401, gin.H{"success": false, "error": "invalid authorization header format"})
			c.Abort()
			return
		}
		token := parts[1]

		claims := jwt.MapClaims{}
		parsedToken, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})

		if err != nil || !parsedToken.Valid {
			c.JSON(401, gin.H{"success": false, "error": "invalid token"})
			c.Abort()
			return
		}

		// The identity provider puts the user id in "sub"; tokens minted by
		// local tooling carry "user_id" as well.
		userIDStr, ok := claims["sub"].(string)
		if !ok || userIDStr == "" {
			userIDStr, ok = claims["user_id"].(string)
		}
		if !ok || userIDStr == "" {
			c.JSON(401, gin.H{"success": false, "error": "invalid user ID in token"})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			c.JSON(401, gin.H{"success": false, "error": "invalid UUID format"})
			c.Abort()
			return
		}

		role, _ := claims["role"].(string)

		c.Set(ContextUserID, userID)
		c.Set(ContextRole, role)

		c.Next()
	}
}

// RequireTeacher rejects requests whose token does not carry the teacher
// role. Must run after AuthMiddleware.
func RequireTeacher() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		if role != RoleTeacher {
			c.JSON(403, gin.H{
				"success": false,
				"error":   "Forbidden: Only teachers can manage courses",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserIDFromContext returns the authenticated user id set by AuthMiddleware.
func UserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
