package handler

import (
	"errors"
	"net/http"

	"cyberdeck/backend/internal/auth"
	"cyberdeck/backend/internal/database"
	"cyberdeck/backend/internal/models"
	"cyberdeck/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// region --- DTOs ---

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	Name     string `json:"name" binding:"required" example:"CyberNinja99"`
	Email    string `json:"email" binding:"required,email" example:"ninja@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"password123"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email" example:"ninja@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// ProfileResponse defines the structure for the authenticated user's own profile.
type ProfileResponse struct {
	ID           uint   `json:"id" example:"1"`
	Name         string `json:"name" example:"CyberNinja99"`
	Email        string `json:"email" example:"ninja@example.com"`
	Avatar       string `json:"avatar"`
	IsAdmin      bool   `json:"isAdmin"`
	GamesOwned   int64  `json:"gamesOwned"`
	ReviewsCount int64  `json:"reviewsCount"`
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// endregion

// region --- Auth Handlers ---

// RegisterUser godoc
// @Summary      Register a new user
// @Description  Creates a new account and returns an authentication token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201 {object} map[string]string "{"token": "..."}"
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse "Email already registered"
// @Failure      500 {object} ErrorResponse
// @Router       /auth/register [post]
func RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existingUser models.User
	if err := database.DB.Where("email = ?", input.Email).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	token, err := jwt.GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token})
}

// LoginUser godoc
// @Summary      Log in a user
// @Description  Authenticates a user with email and password, and returns a new token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200 {object} map[string]string "{"token": "..."}"
// @Failure      400 {object} ErrorResponse "Invalid input"
// @Failure      401 {object} ErrorResponse "Invalid credentials"
// @Failure      404 {object} ErrorResponse "User not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /auth/login [post]
func LoginUser(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := jwt.GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// endregion

// region --- User Handlers ---

// GetMe godoc
// @Summary      Get current user's profile
// @Description  Retrieves the profile for the currently authenticated user.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} ProfileResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /users/me [get]
func GetMe(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if errors.Is(err, auth.ErrNoSession) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var gamesOwned, reviewsCount int64
	database.DB.Model(&models.LibraryEntry{}).Where("user_id = ?", user.ID).Count(&gamesOwned)
	database.DB.Model(&models.Review{}).Where("user_id = ?", user.ID).Count(&reviewsCount)

	c.JSON(http.StatusOK, ProfileResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Avatar:       avatarFor(user),
		IsAdmin:      user.IsAdmin,
		GamesOwned:   gamesOwned,
		ReviewsCount: reviewsCount,
	})
}

// endregion
