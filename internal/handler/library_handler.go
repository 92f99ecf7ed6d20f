package handler

import (
	"errors"
	"net/http"

	"cyberdeck/backend/internal/auth"
	"cyberdeck/backend/internal/database"
	"cyberdeck/backend/internal/models"

	"github.com/gin-gonic/gin"
)

type LibraryAddInput struct {
	GameID uint `json:"gameId"`
}

// GetLibrary godoc
// @Summary      List the caller's library
// @Description  Retrieves the games the authenticated user owns, most recently added first.
// @Tags         library
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} GameResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Stale session: user no longer exists"
// @Router       /library [get]
func GetLibrary(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if errors.Is(err, auth.ErrNoSession) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var games []models.Game
	err = database.DB.
		Select("games.*").
		Joins("JOIN library_entries ON library_entries.game_id = games.id").
		Where("library_entries.user_id = ?", user.ID).
		Order("library_entries.created_at DESC").
		Find(&games).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch library"})
		return
	}

	response := make([]GameResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameResponse(game, nil))
	}

	c.JSON(http.StatusOK, response)
}

// AddToLibrary godoc
// @Summary      Add a game to the caller's library
// @Description  Connects a game to the authenticated user's library. Adding an owned game is a no-op.
// @Tags         library
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body LibraryAddInput true "Game to add"
// @Success      200 {object} map[string]bool "{"success": true}"
// @Failure      400 {object} ErrorResponse "Game ID is required"
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /library/add [post]
func AddToLibrary(c *gin.Context) {
	var input LibraryAddInput
	if err := c.ShouldBindJSON(&input); err != nil || input.GameID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Game ID is required"})
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

	// Append upserts the join row, so re-adding an owned game is a no-op.
	if err := database.DB.Model(user).Association("Library").Append(&game); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add game to library"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
