package auth

import (
	"errors"

	"cyberdeck/backend/internal/database"
	"cyberdeck/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// ErrNoSession is returned when the request carries no authenticated identity.
var ErrNoSession = errors.New("no authenticated session")

// Role classifies a caller for authorization purposes.
type Role int

const (
	RoleAnonymous Role = iota
	RoleUser
	RoleAdmin
)

// CurrentUser resolves the authenticated caller to its stored user row. It is
// the single place session identity turns into a User; a gorm.ErrRecordNotFound
// here means the session is stale relative to the user table.
func CurrentUser(c *gin.Context) (*models.User, error) {
	v, exists := c.Get("userID")
	if !exists {
		return nil, ErrNoSession
	}

	var user models.User
	if err := database.DB.First(&user, v.(uint)).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// Authorize reports whether a resolved caller satisfies the required role.
// It is evaluated once per request at the route boundary; handlers trust it.
func Authorize(user *models.User, required Role) bool {
	switch required {
	case RoleAnonymous:
		return true
	case RoleUser:
		return user != nil
	case RoleAdmin:
		return user != nil && user.IsAdmin
	default:
		return false
	}
}
