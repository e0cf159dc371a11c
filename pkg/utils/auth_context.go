package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthContext carries the verified caller identity through service calls.
type AuthContext struct {
	UserID uuid.UUID
	Role   string
}

// CurrentUser reads the identity the JWT middleware stored on the request.
func CurrentUser(c *gin.Context) (AuthContext, error) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		return AuthContext{}, ErrInvalidCredentials
	}
	return AuthContext{UserID: id, Role: c.GetString("role")}, nil
}
