package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pyquest/internal/config"
	"pyquest/internal/database"
	"pyquest/internal/handlers"
	"pyquest/internal/repository"
	"pyquest/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.Initialize(cfg)
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
	accountRepo := repository.NewAccountRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	// Initialize services
	authService := service.NewAuthService(accountRepo, sessionRepo, cfg.SessionDuration, cfg.JWTSecret)
	playerService := service.NewPlayerService(accountRepo, progressRepo)

	// Initialize handlers
	middleware := handlers.NewMiddleware(authService)
	authHandler := handlers.NewAuthHandler(authService, playerService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	lessonHandler := handlers.NewLessonHandler(playerService)

	// Setup routes
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("POST /api/signup", middleware.RateLimit(authHandler.Signup))
	mux.HandleFunc("POST /api/login", middleware.RateLimit(authHandler.Login))
	mux.HandleFunc("GET /api/signup/suggest", middleware.RateLimit(authHandler.SuggestUsernames))

	// Protected routes
	mux.HandleFunc("POST /api/logout", middleware.RequireAuth(authHandler.Logout))
	mux.HandleFunc("PUT /api/me/password", middleware.RequireAuth(authHandler.ChangePassword))
	mux.HandleFunc("GET /api/me", middleware.RequireAuth(playerHandler.Me))
	mux.HandleFunc("PUT /api/me/avatar", middleware.RequireAuth(playerHandler.UpdateAvatar))
	mux.HandleFunc("POST /api/progress/lives", middleware.RequireAuth(playerHandler.AdjustLives))
	mux.HandleFunc("POST /api/progress/reward", middleware.RequireAuth(playerHandler.AwardReward))
	mux.HandleFunc("GET /api/levels", middleware.RequireAuth(playerHandler.Levels))
	mux.HandleFunc("GET /api/lessons/{id}", middleware.RequireAuth(lessonHandler.GetLesson))
	mux.HandleFunc("POST /api/lessons/{id}/complete", middleware.RequireAuth(lessonHandler.CompleteLesson))
	mux.HandleFunc("POST /api/lessons/{id}/run", middleware.RequireAuth(lessonHandler.RunCode))

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

	// Start background session cleanup
	go cleanupExpiredSessions(authService)

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

// cleanupExpiredSessions periodically removes expired sessions
func cleanupExpiredSessions(authService *service.AuthService) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if err := authService.CleanupExpiredSessions(); err != nil {
			log.Printf("Error cleaning up expired sessions: %v", err)
		} else {
			log.Println("Expired sessions cleaned up")
		}
	}
}
