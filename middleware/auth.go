package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/urbex-atlas/api-go/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

func parseBearerToken(authHeader string) (*utils.UserClaims, bool) {
	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) != 2 {
		return nil, false
	}

	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(bearerToken[1], claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !parsedToken.Valid {
		return nil, false
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, false
	}
	isAdmin, _ := claims["is_admin"].(bool)

	return &utils.UserClaims{
		UserID:  uint(userID),
		IsAdmin: isAdmin,
	}, true
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		userClaims, ok := parseBearerToken(authHeader)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(string(utils.UserContextKey), userClaims)

		c.Next()
	}
}

// OptionalAuthMiddleware sets the caller's claims when a valid token is
// present but lets anonymous requests through. Used by routes whose response
// merely gets richer for signed-in callers (spot detail, following feed).
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			if userClaims, ok := parseBearerToken(authHeader); ok {
				c.Set(string(utils.UserContextKey), userClaims)
			}
		}
		c.Next()
	}
}

// AdminMiddleware is the single authorization gate for every privileged
// route; handlers behind it never re-check the admin flag themselves.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := utils.GetUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}
		if !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden - Admin only"})
			c.Abort()
			return
		}
		c.Next()
	}
}
