package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"cyberdeck/backend/internal/auth"
	"cyberdeck/backend/internal/database"
	"cyberdeck/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type ReviewInput struct {
	GameID  uint   `json:"gameId" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

type ReviewResponse struct {
	ID        uint   `json:"id"`
	User      string `json:"user"`
	Avatar    string `json:"avatar"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Date      string `json:"date"`
	GameID    uint   `json:"gameId"`
	GameTitle string `json:"gameTitle,omitempty"`
}

func newReviewResponse(review models.Review) ReviewResponse {
	avatar := review.Avatar
	if avatar == "" {
		avatar = avatarFor(&review.User)
	}

	return ReviewResponse{
		ID:        review.ID,
		User:      review.User.Name,
		Avatar:    avatar,
		Rating:    review.Rating,
		Comment:   review.Comment,
		Date:      review.Date,
		GameID:    review.GameID,
		GameTitle: review.Game.Title,
	}
}

// avatarFor returns the user's stored avatar, or a deterministic generated one
// seeded by the user's name.
func avatarFor(user *models.User) string {
	if user.Image != "" {
		return user.Image
	}
	return fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", url.QueryEscape(user.Name))
}

// endregion

// region --- Public Handlers ---

// GetReviews godoc
// @Summary      List reviews
// @Description  Retrieves all reviews, optionally scoped to a single game, newest first.
// @Tags         reviews
// @Produce      json
// @Param        gameId query int false "Only reviews for this game"
// @Success      200 {array} ReviewResponse
// @Failure      500 {object} ErrorResponse
// @Router       /reviews [get]
func GetReviews(c *gin.Context) {
	query := database.DB.Preload("User").Preload("Game")
	if gameID := c.Query("gameId"); gameID != "" {
		query = query.Where("game_id = ?", gameID)
	}

	var reviews []models.Review
	if err := query.Order("created_at DESC").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	response := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		response = append(response, newReviewResponse(review))
	}

	c.JSON(http.StatusOK, response)
}

// CreateReview godoc
// @Summary      Create a review
// @Description  Submits a rating and comment for a game as the authenticated user.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body ReviewInput true "Review Info"
// @Success      201 {object} ReviewResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game or user not found"
// @Router       /reviews [post]
func CreateReview(c *gin.Context) {
	var input ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := auth.CurrentUser(c)
	if errors.Is(err, auth.ErrNoSession) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var game models.Game
	if err := database.DB.First(&game, input.GameID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	review := models.Review{
		UserID:  user.ID,
		GameID:  game.ID,
		Rating:  input.Rating,
		Comment: input.Comment,
		Avatar:  avatarFor(user),
		Date:    time.Now().Format("1/2/2006"),
	}
	if err := database.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}

	review.User = *user
	review.Game = game
	c.JSON(http.StatusCreated, newReviewResponse(review))
}

// endregion

// region --- Admin Handlers ---

// DeleteReview godoc
// @Summary      Delete a review
// @Description  Removes a review from the ledger.
// @Tags         admin-reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Review ID"
// @Success      200 {object} map[string]string "{"message": "Review deleted"}"
// @Failure      401 {object} ErrorResponse "Admin access required"
// @Failure      404 {object} ErrorResponse "Review not found"
// @Router       /admin/reviews/{id} [delete]
func DeleteReview(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	result := database.DB.Delete(&models.Review{}, id)
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

// endregion
