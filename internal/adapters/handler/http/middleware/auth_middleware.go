package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextUserIDKey is the gin context key holding the authenticated user's ID.
const ContextUserIDKey = "userID"

const bearerScheme = "bearer"

var (
	errMissingAuthHeader   = errors.New("authorization header required")
	errMalformedAuthHeader = errors.New("invalid authorization header format")
)

type TokenValidator interface {
	ValidateToken(tokenString string) (string, error)
}

// AuthMiddleware accepts "Authorization: Bearer <jwt>" (scheme matched case-insensitively)
// and exposes the token subject to handlers through GetUserID.
func AuthMiddleware(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		userID, err := tokens.ValidateToken(token)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

func bearerToken(header string) (string, error) {
	if strings.TrimSpace(header) == "" {
		return "", errMissingAuthHeader
	}

	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, bearerScheme) || token == "" || strings.ContainsAny(token, " \t") {
		return "", errMalformedAuthHeader
	}
	return token, nil
}

// GetUserID reports the authenticated user, false outside AuthMiddleware.
func GetUserID(c *gin.Context) (string, bool) {
	id, ok := c.Get(ContextUserIDKey)
	if !ok {
		return "", false
	}
	userID, ok := id.(string)
	return userID, ok && userID != ""
}
