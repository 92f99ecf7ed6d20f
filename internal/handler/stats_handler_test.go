package handler_test

import (
	"net/http"
	"testing"

	"cyberdeck/backend/internal/database"
	"cyberdeck/backend/internal/handler"
	"cyberdeck/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminStatsAveragesBaseRatings(t *testing.T) {
	router := setupTestRouter(t)
	admin := createUser(t, "Admin User", "admin@cyberdeck.store", true)
	user := createUser(t, "CyberNinja99", "ninja@example.com", false)

	g1 := createGame(t, models.Game{Title: "A", Price: 9.99, Category: "Action", Rating: 4.0})
	createGame(t, models.Game{Title: "B", Price: 9.99, Category: "Action", Rating: 5.0})
	createGame(t, models.Game{Title: "C", Price: 9.99, Category: "Action", Rating: 3.0})

	// A 1-star review must not move the average; it derives from the
	// listings' base ratings only.
	review := models.Review{UserID: user.ID, GameID: g1.ID, Rating: 1, Comment: "Hated it."}
	require.NoError(t, database.DB.Create(&review).Error)

	w := performRequest(router, http.MethodGet, "/api/v1/admin/stats", tokenFor(t, admin), nil)
	requireStatus(t, w, http.StatusOK)

	stats := decodeJSON[handler.AdminStatsResponse](t, w)
	assert.Equal(t, "4.0", stats.AvgRating)
	assert.EqualValues(t, 3, stats.TotalGames)
	assert.EqualValues(t, 1, stats.TotalReviews)
	assert.EqualValues(t, 2, stats.TotalUsers)
}

func TestAdminStatsEmptyCatalog(t *testing.T) {
	router := setupTestRouter(t)
	admin := createUser(t, "Admin User", "admin@cyberdeck.store", true)

	w := performRequest(router, http.MethodGet, "/api/v1/admin/stats", tokenFor(t, admin), nil)
	requireStatus(t, w, http.StatusOK)

	stats := decodeJSON[handler.AdminStatsResponse](t, w)
	assert.Equal(t, "0.0", stats.AvgRating)
	assert.Zero(t, stats.TotalGames)
}

func TestAdminStatsRequiresAdmin(t *testing.T) {
	router := setupTestRouter(t)
	user := createUser(t, "CyberNinja99", "ninja@example.com", false)

	w := performRequest(router, http.MethodGet, "/api/v1/admin/stats", tokenFor(t, user), nil)
	requireStatus(t, w, http.StatusUnauthorized)

	w = performRequest(router, http.MethodGet, "/api/v1/admin/stats", "", nil)
	requireStatus(t, w, http.StatusUnauthorized)
}
