package handler_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"cyberdeck/backend/internal/auth"
	"cyberdeck/backend/internal/config"
	"cyberdeck/backend/internal/database"
	"cyberdeck/backend/internal/handler"
	"cyberdeck/backend/internal/models"
	"cyberdeck/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestRouter builds the same route tree as cmd/server against a fresh
// in-memory database.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	router := gin.New()
	apiV1 := router.Group("/api/v1")

	authRoutes := apiV1.Group("/auth")
	authRoutes.POST("/register", handler.RegisterUser)
	authRoutes.POST("/login", handler.LoginUser)

	gameRoutes := apiV1.Group("/games")
	gameRoutes.Use(auth.OptionalAuthMiddleware())
	gameRoutes.GET("", handler.GetGames)
	gameRoutes.GET("/:id", handler.GetGameByID)

	reviewRoutes := apiV1.Group("/reviews")
	reviewRoutes.GET("", handler.GetReviews)
	reviewRoutes.POST("", auth.AuthMiddleware(), handler.CreateReview)

	libraryRoutes := apiV1.Group("/library")
	libraryRoutes.Use(auth.AuthMiddleware())
	libraryRoutes.GET("", handler.GetLibrary)
	libraryRoutes.POST("/add", handler.AddToLibrary)

	userRoutes := apiV1.Group("/users")
	userRoutes.Use(auth.AuthMiddleware())
	userRoutes.GET("/me", handler.GetMe)

	adminRoutes := apiV1.Group("/admin")
	adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
	adminRoutes.GET("/stats", handler.GetAdminStats)
	adminRoutes.POST("/games", handler.CreateGame)
	adminRoutes.PUT("/games/:id", handler.UpdateGame)
	adminRoutes.DELETE("/games/:id", handler.DeleteGame)
	adminRoutes.DELETE("/reviews/:id", handler.DeleteReview)

	return router
}

func performRequest(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *strings.Reader
	switch v := body.(type) {
	case nil:
		reader = strings.NewReader("")
	case string:
		reader = strings.NewReader(v)
	default:
		b, _ := json.Marshal(v)
		reader = strings.NewReader(string(b))
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

func createUser(t *testing.T, name, email string, isAdmin bool) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Name: name, Email: email, PasswordHash: string(hash), IsAdmin: isAdmin}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func createGame(t *testing.T, game models.Game) models.Game {
	t.Helper()
	if game.Image == "" {
		game.Image = models.DefaultGameImage
	}
	require.NoError(t, database.DB.Create(&game).Error)
	return game
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := jwt.GenerateToken(user.ID, user.IsAdmin)
	require.NoError(t, err)
	return token
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "body: %s", w.Body.String())
}
