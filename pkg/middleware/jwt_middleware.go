package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"seacatering/pkg/utils"
)

// JWTAuthMiddleware resolves the bearer token into an AuthContext once per
// request. Everything a service needs to know about the caller travels in
// that value; no layer re-derives the role afterwards.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, utils.ErrUnauthenticated.Error())
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		utils.SetCurrentUser(c, utils.AuthContext{
			UserID:   userID,
			Email:    claims.Email,
			FullName: claims.FullName,
			Role:     claims.Role,
		})
		c.Next()
	}
}
