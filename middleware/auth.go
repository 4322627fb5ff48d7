package middleware

import (
	"strings"

	"github.com/Brahim-Amzil/3arida-sub000/config"
	"github.com/Brahim-Amzil/3arida-sub000/helper"
	"github.com/Brahim-Amzil/3arida-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

var HTTPHelper = helper.NewHTTPHelper()

// authContextKey is the single gin-context key the auth middlewares write.
const authContextKey = "auth_context"

type Claims struct {
	UserID        uint            `json:"user_id"`
	Name          string          `json:"name"`
	Role          models.UserRole `json:"role"`
	VerifiedEmail bool            `json:"verified_email"`
	VerifiedPhone bool            `json:"verified_phone"`
	jwt.RegisteredClaims
}

func parseToken(tokenString string) (*models.AuthContext, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return config.JWTSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}

	return &models.AuthContext{
		UserID:        claims.UserID,
		Name:          claims.Name,
		Role:          claims.Role,
		VerifiedEmail: claims.VerifiedEmail,
		VerifiedPhone: claims.VerifiedPhone,
	}, nil
}

// GetAuthContext returns the caller identity, or nil on optional-auth
// routes with no credentials.
func GetAuthContext(c *gin.Context) *models.AuthContext {
	v, exists := c.Get(authContextKey)
	if !exists {
		return nil
	}
	auth, _ := v.(*models.AuthContext)
	return auth
}

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HTTPHelper.SendUnauthorizedError(c, "Authorization header required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			HTTPHelper.SendUnauthorizedError(c, "Bearer token required")
			c.Abort()
			return
		}

		auth, err := parseToken(tokenString)
		if err != nil {
			HTTPHelper.SendUnauthorizedError(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set(authContextKey, auth)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the caller identity when a valid bearer
// token is present and stays silent otherwise.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString != authHeader {
				if auth, err := parseToken(tokenString); err == nil {
					c.Set(authContextKey, auth)
				}
			}
		}
		c.Next()
	}
}

// RequireRole enforces a minimum role on the hierarchy user < moderator <
// admin.
func RequireRole(required models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := GetAuthContext(c)
		if auth == nil {
			HTTPHelper.SendUnauthorizedError(c, "Authentication required")
			c.Abort()
			return
		}

		if !models.RoleAtLeast(auth.Role, required) {
			HTTPHelper.SendForbiddenError(c, "Insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
