package middleware

import (
	"net/http"
	"strings"

	"bananina-api/models"
	"bananina-api/utils"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized,
				models.NewErrorResponse(models.ErrorTypeRequest, "Authorization header required"))
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized,
				models.NewErrorResponse(models.ErrorTypeRequest, "Invalid authorization header format"))
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized,
				models.NewErrorResponse(models.ErrorTypeRequest, "Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		if !exists || role != "admin" {
			c.JSON(http.StatusForbidden,
				models.NewErrorResponse(models.ErrorTypeRequest, "Access denied. Admin role required"))
			c.Abort()
			return
		}
		c.Next()
	}
}
