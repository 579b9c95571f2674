package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/tensorlabs/amaanat/internal/config"
	"github.com/tensorlabs/amaanat/internal/handler"
	"github.com/tensorlabs/amaanat/internal/repository"
	"github.com/tensorlabs/amaanat/internal/service"
	"github.com/tensorlabs/amaanat/internal/transport"
	"github.com/tensorlabs/amaanat/pkg/response"
)

func main() {
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize Redis
	redisClient := initRedis(cfg)
	defer redisClient.Close()

	// Initialize repositories and services
	accountRepo := repository.NewAccountRepository(db)
	gateway := transport.NewGatewayClient(cfg.Gateway)

	accountService := service.NewAccountService(accountRepo)
	reminderService := service.NewReminderService(accountRepo, gateway, redisClient, cfg)

	accountHandler := handler.NewAccountHandler(accountService)
	reminderHandler := handler.NewReminderHandler(reminderService)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	// Setup routes
	router := setupRoutes(accountHandler, reminderHandler, healthHandler)

	// Start server
	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      response.LoggingMiddleware(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func initDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	return db, nil
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func setupRoutes(
	accountHandler *handler.AccountHandler,
	reminderHandler *handler.ReminderHandler,
	healthHandler *handler.HealthHandler,
) *mux.Router {
	router := mux.NewRouter()

	// Health check
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")

	// API routes
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/accounts", accountHandler.Create).Methods("POST")
	api.HandleFunc("/accounts", accountHandler.List).Methods("GET")
	api.HandleFunc("/accounts/stats", accountHandler.Stats).Methods("GET")
	api.HandleFunc("/accounts/export", accountHandler.Export).Methods("GET")
	api.HandleFunc("/accounts/{accountId}", accountHandler.Get).Methods("GET")
	api.HandleFunc("/accounts/{accountId}", accountHandler.Update).Methods("PUT")
	api.HandleFunc("/accounts/{accountId}", accountHandler.Delete).Methods("DELETE")

	api.HandleFunc("/accounts/{accountId}/reminder", reminderHandler.Preview).Methods("GET")
	api.HandleFunc("/accounts/{accountId}/reminder/send", reminderHandler.Send).Methods("POST")

	return router
}
