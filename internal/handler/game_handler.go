package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"cyberdeck/backend/internal/database"
	"cyberdeck/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// region --- DTOs ---

type GameInput struct {
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Price              FlexFloat  `json:"price"`
	OriginalPrice      *FlexFloat `json:"originalPrice"`
	Category           string     `json:"category"`
	Rating             FlexFloat  `json:"rating"`
	Image              string     `json:"image"`
	Tags               StringList `json:"tags"`
	IsNew              bool       `json:"isNew"`
	IsTrending         bool       `json:"isTrending"`
	Screenshots        StringList `json:"screenshots"`
	MagnetLink         *string    `json:"magnetLink"`
	TorrentLink        *string    `json:"torrentLink"`
	DirectDownloadLink *string    `json:"directDownloadLink"`
}

type GameResponse struct {
	ID                 uint             `json:"id"`
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	Price              float64          `json:"price"`
	OriginalPrice      *float64         `json:"originalPrice,omitempty"`
	Category           string           `json:"category"`
	Rating             float64          `json:"rating"`
	Image              string           `json:"image"`
	Tags               []string         `json:"tags"`
	IsNew              bool             `json:"isNew"`
	IsTrending         bool             `json:"isTrending"`
	Screenshots        []string         `json:"screenshots"`
	MagnetLink         *string          `json:"magnetLink,omitempty"`
	TorrentLink        *string          `json:"torrentLink,omitempty"`
	DirectDownloadLink *string          `json:"directDownloadLink,omitempty"`
	InLibrary          bool             `json:"in_library"`
	Reviews            []ReviewResponse `json:"reviews"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

func newGameResponse(game models.Game, ownedIDs map[uint]bool) GameResponse {
	tags := []string(game.Tags)
	if tags == nil {
		tags = []string{}
	}
	screenshots := []string(game.Screenshots)
	if screenshots == nil {
		screenshots = []string{}
	}

	reviews := make([]ReviewResponse, 0, len(game.Reviews))
	for _, review := range game.Reviews {
		reviews = append(reviews, newReviewResponse(review))
	}

	return GameResponse{
		ID:                 game.ID,
		Title:              game.Title,
		Description:        game.Description,
		Price:              game.Price,
		OriginalPrice:      game.OriginalPrice,
		Category:           game.Category,
		Rating:             game.Rating,
		Image:              game.Image,
		Tags:               tags,
		IsNew:              game.IsNew,
		IsTrending:         game.IsTrending,
		Screenshots:        screenshots,
		MagnetLink:         game.MagnetLink,
		TorrentLink:        game.TorrentLink,
		DirectDownloadLink: game.DirectDownloadLink,
		InLibrary:          ownedIDs[game.ID],
		Reviews:            reviews,
		CreatedAt:          game.CreatedAt,
		UpdatedAt:          game.UpdatedAt,
	}
}

// endregion

// region --- Public Handlers ---

// GetGames godoc
// @Summary      List games
// @Description  Retrieves the full catalog, with optional filtering by category, flags and a text search.
// @Tags         games
// @Produce      json
// @Param        category   query string false "Category (case-insensitive exact match)"
// @Param        isNew      query bool   false "Only games flagged as new"
// @Param        isTrending query bool   false "Only games flagged as trending"
// @Param        search     query string false "Substring match across title, description and category"
// @Success      200 {array} GameResponse
// @Failure      500 {object} ErrorResponse
// @Router       /games [get]
func GetGames(c *gin.Context) {
	query := database.DB.Model(&models.Game{})

	if category := c.Query("category"); category != "" {
		query = query.Where("LOWER(category) = LOWER(?)", category)
	}
	if c.Query("isNew") == "true" {
		query = query.Where("is_new = ?", true)
	}
	if c.Query("isTrending") == "true" {
		query = query.Where("is_trending = ?", true)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var games []models.Game
	if err := query.Preload("Reviews.User").Order("created_at DESC").Find(&games).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch games"})
		return
	}

	ownedIDs := ownedGameIDs(c)

	response := make([]GameResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameResponse(game, ownedIDs))
	}

	c.JSON(http.StatusOK, response)
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Description  Retrieves details for a single game, including its reviews newest first.
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} GameResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func GetGameByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var game models.Game
	err := database.DB.
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Reviews.User").
		First(&game, id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(game, ownedGameIDs(c)))
}

// ownedGameIDs returns the library game IDs for the request's caller, or nil
// when the request is anonymous.
func ownedGameIDs(c *gin.Context) map[uint]bool {
	userID, exists := c.Get("userID")
	if !exists {
		return nil
	}

	var ids []uint
	database.DB.Model(&models.LibraryEntry{}).Where("user_id = ?", userID).Pluck("game_id", &ids)

	owned := make(map[uint]bool, len(ids))
	for _, id := range ids {
		owned[id] = true
	}
	return owned
}

// endregion

// region --- Admin Handlers ---

// CreateGame godoc
// @Summary      Create a new game
// @Description  Creates a new store listing. Title, price and category are required; everything else defaults.
// @Tags         admin-games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GameInput true "Game Info"
// @Success      201 {object} GameResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse "Admin access required"
// @Router       /admin/games [post]
func CreateGame(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Title == "" || input.Price == 0 || input.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if input.Price < 0 || input.Rating < 0 || input.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be non-negative and rating between 0 and 5"})
		return
	}

	image := input.Image
	if image == "" {
		image = models.DefaultGameImage
	}

	game := models.Game{
		Title:              input.Title,
		Description:        input.Description,
		Price:              float64(input.Price),
		OriginalPrice:      originalPrice(input.OriginalPrice),
		Category:           input.Category,
		Rating:             float64(input.Rating),
		Image:              image,
		Tags:               jsonList(input.Tags),
		IsNew:              input.IsNew,
		IsTrending:         input.IsTrending,
		Screenshots:        jsonList(input.Screenshots),
		MagnetLink:         input.MagnetLink,
		TorrentLink:        input.TorrentLink,
		DirectDownloadLink: input.DirectDownloadLink,
	}

	if err := database.DB.Create(&game).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}

	c.JSON(http.StatusCreated, newGameResponse(game, nil))
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Replaces a game's mutable fields; the admin form resends the full record.
// @Tags         admin-games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int       true "Game ID"
// @Param        input body GameInput true "New Game Info"
// @Success      200 {object} GameResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse "Admin access required"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /admin/games/{id} [put]
func UpdateGame(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var game models.Game
	if err := database.DB.First(&game, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Price < 0 || input.Rating < 0 || input.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be non-negative and rating between 0 and 5"})
		return
	}

	image := input.Image
	if image == "" {
		image = models.DefaultGameImage
	}

	game.Title = input.Title
	game.Description = input.Description
	game.Price = float64(input.Price)
	game.OriginalPrice = originalPrice(input.OriginalPrice)
	game.Category = input.Category
	game.Rating = float64(input.Rating)
	game.Image = image
	game.Tags = jsonList(input.Tags)
	game.IsNew = input.IsNew
	game.IsTrending = input.IsTrending
	game.Screenshots = jsonList(input.Screenshots)
	game.MagnetLink = input.MagnetLink
	game.TorrentLink = input.TorrentLink
	game.DirectDownloadLink = input.DirectDownloadLink

	if err := database.DB.Save(&game).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update game"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(game, nil))
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes a game along with its reviews and every library reference to it.
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} map[string]string "{"message": "Game deleted"}"
// @Failure      401 {object} ErrorResponse "Admin access required"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /admin/games/{id} [delete]
func DeleteGame(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var game models.Game
	if err := database.DB.First(&game, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	// Cascades to reviews and library join rows in a single transaction.
	if err := database.DB.Select(clause.Associations).Delete(&game).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete game"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Game deleted"})
}

// endregion

// region --- Helpers ---

// originalPrice maps a blank or zero former price to "no former price".
func originalPrice(v *FlexFloat) *float64 {
	if v == nil || float64(*v) == 0 {
		return nil
	}
	price := float64(*v)
	return &price
}

func jsonList(items StringList) datatypes.JSONSlice[string] {
	if items == nil {
		return datatypes.JSONSlice[string]{}
	}
	return datatypes.JSONSlice[string](items)
}

// endregion
