package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const authContextKey = "auth_user"

// AuthContext is the caller identity resolved once per request by the JWT
// middleware and passed explicitly into services.
type AuthContext struct {
	UserID   uuid.UUID
	Email    string
	FullName string
	Role     string
}

func (a AuthContext) IsAdmin() bool { return a.Role == "admin" }

func SetCurrentUser(c *gin.Context, auth AuthContext) {
	c.Set(authContextKey, auth)
}

func CurrentUser(c *gin.Context) (AuthContext, bool) {
	v, ok := c.Get(authContextKey)
	if !ok {
		return AuthContext{}, false
	}
	auth, ok := v.(AuthContext)
	return auth, ok
}
