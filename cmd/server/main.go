package main

import (
	"log"
	"net/http"

	_ "groupchat/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"groupchat/internal/auth"
	"groupchat/internal/cache"
	"groupchat/internal/config"
	"groupchat/internal/db"
	"groupchat/internal/handler"
	"groupchat/internal/repository"
	"groupchat/internal/router"
	"groupchat/internal/service"
)

// @title Group Chat API
// @version 1.0
// @description Group chat backend with JWT authentication, groups and per-group message ledgers.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	groupRepo := repository.NewGroupRepository(gormDB)
	messageRepo := repository.NewMessageRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo)
	groupService := service.NewGroupService(groupRepo, cacheClient)
	messageService := service.NewMessageService(messageRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	groupHandler := handler.NewGroupHandler(groupService)
	messageHandler := handler.NewMessageHandler(messageService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		groupHandler,
		messageHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
