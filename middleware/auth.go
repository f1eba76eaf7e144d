package middleware

import (
	"net/http"
	"sticker-shop/models"
	"sticker-shop/utils"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the Bearer token and puts its claims on the
// request context for the handlers behind it.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortWith(c, http.StatusUnauthorized, "Bearer token required", "")
			return
		}

		claims, err := utils.ValidateToken(token)
		if err != nil {
			abortWith(c, http.StatusUnauthorized, "Invalid or expired token", err.Error())
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

// AdminMiddleware gates a route group to admin accounts. It must run
// after AuthMiddleware, which is what sets the role.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("user_role") != "admin" {
			abortWith(c, http.StatusForbidden, "Admin role required", "")
			return
		}
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}

func abortWith(c *gin.Context, status int, message, detail string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Success: false,
		Message: message,
		Error:   detail,
	})
}
