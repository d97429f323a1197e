package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adiafa-dev/e-commerce-mvp/models"
	"github.com/adiafa-dev/e-commerce-mvp/utils"
)

// AuthMiddleware requires a valid bearer credential. The raw token is kept in
// the context so the repositories can forward it to the commerce API.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, claims, err := bearerClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "You must log in first",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("token", token)
		c.Next()
	}
}

// OptionalAuthMiddleware accepts requests without a credential. A missing or
// invalid token means "not logged in", never an error; the cart view renders
// empty for such requests.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, claims, err := bearerClaims(c)
		if err == nil {
			c.Set("user_id", claims.UserID)
			c.Set("user_email", claims.Email)
			c.Set("token", token)
		}
		c.Next()
	}
}

func bearerClaims(c *gin.Context) (string, *utils.Claims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", nil, errMissingAuth
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return "", nil, errMalformedAuth
	}

	claims, err := utils.ValidateToken(tokenParts[1])
	if err != nil {
		return "", nil, err
	}
	return tokenParts[1], claims, nil
}

var (
	errMissingAuth   = &authError{"Authorization header required"}
	errMalformedAuth = &authError{"Invalid authorization header format"}
)

type authError struct{ msg string }

func (e *authError) Error() string { return e.msg }
