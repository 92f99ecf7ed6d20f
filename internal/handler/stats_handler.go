package handler

import (
	"fmt"
	"net/http"

	"cyberdeck/backend/internal/database"
	"cyberdeck/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// AdminStatsResponse holds the dashboard counters.
type AdminStatsResponse struct {
	TotalGames   int64  `json:"totalGames"`
	TotalReviews int64  `json:"totalReviews"`
	TotalUsers   int64  `json:"totalUsers"`
	AvgRating    string `json:"avgRating" example:"4.2"`
}

// GetAdminStats godoc
// @Summary      Admin dashboard statistics
// @Description  Returns totals and the average base rating across the catalog.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} AdminStatsResponse
// @Failure      401 {object} ErrorResponse "Admin access required"
// @Router       /admin/stats [get]
func GetAdminStats(c *gin.Context) {
	var totalGames, totalReviews, totalUsers int64
	database.DB.Model(&models.Game{}).Count(&totalGames)
	database.DB.Model(&models.Review{}).Count(&totalReviews)
	database.DB.Model(&models.User{}).Count(&totalUsers)

	// Average of the listings' base ratings. The dashboard has always shown
	// the author-set rating here, not a mean of community reviews.
	avgRating := "0.0"
	if totalGames > 0 {
		var sum float64
		database.DB.Model(&models.Game{}).Select("COALESCE(SUM(rating), 0)").Scan(&sum)
		avgRating = fmt.Sprintf("%.1f", sum/float64(totalGames))
	}

	c.JSON(http.StatusOK, AdminStatsResponse{
		TotalGames:   totalGames,
		TotalReviews: totalReviews,
		TotalUsers:   totalUsers,
		AvgRating:    avgRating,
	})
}
