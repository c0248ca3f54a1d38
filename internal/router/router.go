package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"groupchat/internal/auth"
	"groupchat/internal/config"
	"groupchat/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	groupHandler *handler.GroupHandler,
	messageHandler *handler.MessageHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	authenticated := auth.Authenticate(cfg.JWTSecret)

	// Public auth routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// User routes; creation and update are admin only
	api.GET("/users", userHandler.ListUsers)
	api.POST("/users", userHandler.CreateUser, authenticated, auth.RequireAdmin)
	api.PUT("/users/:id", userHandler.UpdateUser, authenticated, auth.RequireAdmin)

	// Group routes
	api.POST("/groups", groupHandler.CreateGroup)
	api.GET("/groups", groupHandler.ListGroups)
	api.GET("/groups/:id", groupHandler.GetGroup)
	api.PUT("/groups/:id", groupHandler.UpdateGroup)
	api.DELETE("/groups/:id", groupHandler.DeleteGroup)

	// Message routes
	api.POST("/messages", messageHandler.SendMessage)
	api.POST("/messages/:id/like", messageHandler.LikeMessage)
	api.GET("/messages/group/:groupId", messageHandler.ListGroupMessages)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
