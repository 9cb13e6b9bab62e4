// File: cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nupat-tech/nupatai/internal/config"
	"github.com/nupat-tech/nupatai/internal/domain"
	"github.com/nupat-tech/nupatai/internal/handlers"
	"github.com/nupat-tech/nupatai/internal/repository"
	chatrepo "github.com/nupat-tech/nupatai/internal/repository/chat"
	messagerepo "github.com/nupat-tech/nupatai/internal/repository/message"
	userrepo "github.com/nupat-tech/nupatai/internal/repository/user"
	"github.com/nupat-tech/nupatai/internal/services"
	"github.com/nupat-tech/nupatai/internal/services/ai"
	"github.com/nupat-tech/nupatai/internal/services/user_services"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.Load()
	logger := services.NewLogger("server")

	db, err := openDatabase(cfg)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(&domain.User{}, &domain.Chat{}, &domain.Message{}); err != nil {
		logger.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	userRepository := userrepo.NewGormUserRepository(db)
	chatRepository := chatrepo.NewChatRepository(db)
	messageRepository := messagerepo.NewMessageRepository(db)
	txManager := repository.NewTxManager(db)

	aiConfig := ai.DefaultConfig()
	aiConfig.APIKey = cfg.GroqAPIKey
	aiConfig.BaseURL = cfg.GroqBaseURL
	aiConfig.Model = cfg.GroqModel

	aiProvider, err := ai.NewOpenAIProvider(aiConfig)
	if err != nil {
		logger.Error("assistant provider setup failed", "error", err)
		os.Exit(1)
	}

	tokenTTL := time.Duration(cfg.AccessTokenExpireMinutes) * time.Minute
	authService := user_services.NewAuthService(userRepository, cfg.JWTSecretKey, cfg.JWTAlgorithm, tokenTTL, services.NewLogger("auth"))
	chatService := services.NewChatService(chatRepository, messageRepository, txManager, services.NewLogger("chat"))
	messageService := services.NewMessageService(chatService, messageRepository, txManager, aiProvider, services.NewLogger("message"))

	router := handlers.NewRouter(handlers.RouterConfig{
		AppName:        cfg.AppName,
		AppVersion:     cfg.AppVersion,
		AuthHandler:    handlers.NewAuthHandler(authService, services.NewLogger("auth_handler"), cfg.Debug),
		ChatHandler:    handlers.NewChatHandler(chatService, services.NewLogger("chat_handler"), cfg.Debug),
		MessageHandler: handlers.NewMessageHandler(messageService, services.NewLogger("message_handler"), cfg.Debug),
		UserResolver:   authService,
		Logger:         services.NewLogger("http"),
	})

	corsWrapper := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOriginsList(),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      corsWrapper.Handler(router),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.ServerPort, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
	logger.Info("server stopped")
}

// openDatabase picks the GORM driver from the DSN scheme: postgres URLs
// go to the postgres driver, anything else is treated as a SQLite file
// path (defaulting to nupatai.db for local development).
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}
	if cfg.Debug {
		gormConfig.Logger = gormlogger.Default.LogMode(gormlogger.Warn)
	}

	dsn := cfg.DatabaseURL
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.Open(dsn), gormConfig)
	}

	if dsn == "" {
		dsn = "nupatai.db"
	}
	return gorm.Open(sqlite.Open(dsn), gormConfig)
}
