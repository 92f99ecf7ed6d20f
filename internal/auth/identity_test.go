package auth

import (
	"testing"

	"cyberdeck/backend/internal/config"
	"cyberdeck/backend/internal/models"
	"cyberdeck/backend/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	user := &models.User{}
	admin := &models.User{IsAdmin: true}

	tests := []struct {
		name     string
		user     *models.User
		required Role
		want     bool
	}{
		{"anonymous may browse", nil, RoleAnonymous, true},
		{"anonymous may not act as user", nil, RoleUser, false},
		{"anonymous may not act as admin", nil, RoleAdmin, false},
		{"user may act as user", user, RoleUser, true},
		{"user may not act as admin", user, RoleAdmin, false},
		{"admin may act as user", admin, RoleUser, true},
		{"admin may act as admin", admin, RoleAdmin, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.user, tt.required))
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	token, err := jwt.GenerateToken(42, false)
	require.NoError(t, err)

	userID, ok := parseBearerToken("Bearer " + token)
	assert.True(t, ok)
	assert.Equal(t, uint(42), userID)

	_, ok = parseBearerToken("")
	assert.False(t, ok)

	_, ok = parseBearerToken("Bearer not-a-token")
	assert.False(t, ok)

	_, ok = parseBearerToken(token) // missing Bearer prefix
	assert.False(t, ok)

	// A token signed under a different secret is rejected.
	config.AppConfig = &config.Config{JWTSecret: "rotated-secret"}
	_, ok = parseBearerToken("Bearer " + token)
	assert.False(t, ok)
}
