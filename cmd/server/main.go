package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mondict/internal/config"
	"mondict/internal/database"
	"mondict/internal/handlers"
	"mondict/internal/models"
	"mondict/internal/repository"
	"mondict/internal/security"
	"mondict/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Initialize repositories
	wordRepo := repository.NewWordRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	posRepo := repository.NewPosRepository(db)
	userRepo := repository.NewUserRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	// Initialize services
	tokenManager := security.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	wordService := service.NewWordService(wordRepo, categoryRepo)
	authService := service.NewAuthService(userRepo, tokenRepo, tokenManager)
	favoriteService := service.NewFavoriteService(favoriteRepo)

	// Initialize handlers
	middleware := handlers.NewMiddleware(tokenManager)
	wordHandler := handlers.NewWordHandler(wordService)
	authHandler := handlers.NewAuthHandler(authService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	referenceHandler := handlers.NewReferenceHandler(posRepo, categoryRepo)
	adminHandler := handlers.NewAdminHandler(wordRepo, userRepo)

	editorRoles := []string{models.RoleAdmin, models.RoleEditor}
	adminOnly := []string{models.RoleAdmin}

	// Setup routes
	mux := http.NewServeMux()

	// Public word routes
	mux.HandleFunc("GET /api/words/search", wordHandler.Search)
	mux.HandleFunc("GET /api/words/paginated-search", wordHandler.PaginatedSearch)
	mux.HandleFunc("GET /api/words/random", wordHandler.Random)
	mux.HandleFunc("GET /api/words/word-of-the-day", wordHandler.WordOfTheDay)
	mux.HandleFunc("GET /api/words/categories/{categoryId}", wordHandler.ByCategory)
	mux.HandleFunc("GET /api/words/categories/{categoryId}/search", wordHandler.SearchInCategory)
	mux.HandleFunc("GET /api/words/{id}", wordHandler.GetByID)

	// Word mutations require the editor or admin role
	mux.HandleFunc("POST /api/words", middleware.RequireRoles(editorRoles, wordHandler.Create))
	mux.HandleFunc("PUT /api/words/{id}", middleware.RequireRoles(editorRoles, wordHandler.Update))
	mux.HandleFunc("DELETE /api/words/{id}", middleware.RequireRoles(editorRoles, wordHandler.Delete))

	// Auth routes
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/refresh-token", authHandler.Refresh)
	mux.HandleFunc("POST /api/auth/logout", middleware.RequireAuth(authHandler.Logout))

	// Favorite routes
	mux.HandleFunc("GET /api/favorites", middleware.RequireAuth(favoriteHandler.List))
	mux.HandleFunc("POST /api/favorites", middleware.RequireAuth(favoriteHandler.Add))
	mux.HandleFunc("DELETE /api/favorites/{wordId}", middleware.RequireAuth(favoriteHandler.Remove))
	mux.HandleFunc("PATCH /api/favorites/{wordId}", middleware.RequireAuth(favoriteHandler.Update))

	// Reference data routes
	mux.HandleFunc("GET /api/pos", referenceHandler.ListPartsOfSpeech)
	mux.HandleFunc("GET /api/categories", referenceHandler.ListCategories)

	// Admin routes
	mux.HandleFunc("GET /api/admin/stats", middleware.RequireRoles(adminOnly, adminHandler.Stats))
	mux.HandleFunc("POST /api/admin/words", middleware.RequireRoles(adminOnly, wordHandler.Create))
	mux.HandleFunc("PUT /api/admin/words/{id}", middleware.RequireRoles(adminOnly, wordHandler.Update))
	mux.HandleFunc("DELETE /api/admin/words/{id}", middleware.RequireRoles(adminOnly, wordHandler.Delete))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start background refresh token cleanup
	go cleanupExpiredTokens(authService)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
}

// cleanupExpiredTokens removes expired refresh tokens once an hour
func cleanupExpiredTokens(authService *service.AuthService) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if err := authService.CleanupExpiredTokens(); err != nil {
			log.Printf("Failed to clean up expired tokens: %v", err)
		}
	}
}
