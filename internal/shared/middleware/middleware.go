package middleware

import (
	"strings"

	"comedyslots/internal/shared/apperrors"
	"comedyslots/internal/shared/config"
	"comedyslots/internal/shared/utils/response"
	"comedyslots/internal/users"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Context keys set by JWTAuthWithConfig.
const (
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
	ContextUserRole  = "user_role"
	ContextIdentity  = "identity"
)

// JWTAuthWithConfig validates the bearer access token and stores the caller's identity on the context
func JWTAuthWithConfig(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.RespondError(c, apperrors.Unauthenticated("Authorization header is required"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.RespondError(c, apperrors.Unauthenticated("authorization header format must be Bearer {token}"))
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWT.Secret), nil
		})
		if err != nil || !token.Valid {
			response.RespondError(c, apperrors.Unauthenticated("invalid or expired token"))
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.RespondError(c, apperrors.Unauthenticated("invalid token claims"))
			c.Abort()
			return
		}
		if tokenType, ok := claims["type"]; !ok || tokenType != "access" {
			response.RespondError(c, apperrors.Unauthenticated("invalid token type"))
			c.Abort()
			return
		}

		identity, ok := identityFromClaims(claims)
		if !ok {
			response.RespondError(c, apperrors.Unauthenticated("invalid token claims"))
			c.Abort()
			return
		}

		c.Set(ContextIdentity, identity)
		c.Set(ContextUserID, identity.ID.String())
		c.Set(ContextUserEmail, identity.Email)
		c.Set(ContextUserRole, string(identity.Role))

		c.Next()
	}
}

func identityFromClaims(claims jwt.MapClaims) (users.Identity, bool) {
	rawID, _ := claims["user_id"].(string)
	id, err := uuid.Parse(rawID)
	if err != nil {
		return users.Identity{}, false
	}

	rawRole, _ := claims["role"].(string)
	role, err := users.ParseRole(rawRole)
	if err != nil {
		return users.Identity{}, false
	}

	email, _ := claims["email"].(string)
	return users.Identity{ID: id, Email: email, Role: role}, true
}

// RequireRoles middleware checks if user has any of the required roles
func RequireRoles(requiredRoles ...users.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			response.RespondError(c, apperrors.Unauthenticated("user role not found in context"))
			c.Abort()
			return
		}

		for _, role := range requiredRoles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		response.RespondError(c, apperrors.Forbidden("Insufficient permissions"))
		c.Abort()
	}
}

// CurrentIdentity returns the identity stored by JWTAuthWithConfig.
func CurrentIdentity(c *gin.Context) (users.Identity, bool) {
	value, exists := c.Get(ContextIdentity)
	if !exists {
		return users.Identity{}, false
	}
	identity, ok := value.(users.Identity)
	return identity, ok
}
