package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	httperrors "groupchat/internal/errors"
	"groupchat/internal/model"
	"groupchat/internal/service"
)

// UserHandler handles admin user management endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest represents an admin user creation request.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=user admin"`
}

// UpdateUserRequest represents a partial user update. Only these fields
// are accepted; everything else in the payload is ignored.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Role     *string `json:"role" validate:"omitempty,oneof=user admin"`
}

// UserIDResponse carries a confirmation message and the affected user id.
type UserIDResponse struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

// ListUsersResponse represents the user listing.
type ListUsersResponse struct {
	Message string       `json:"message"`
	Users   []model.User `json:"users"`
}

// CreateUser godoc
// @Summary Create a user (admin only)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateUserRequest true "User data"
// @Success 201 {object} UserIDResponse
// @Failure 400 {object} errors.MessageResponse
// @Failure 401 "Unauthenticated"
// @Failure 403 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.CreateManaged(c.Request().Context(), req.Username, req.Password, req.Role)
	if err != nil {
		if err == service.ErrUsernameTaken {
			return echo.NewHTTPError(http.StatusConflict, httperrors.MessageResponse{Message: err.Error()})
		}
		httpErr := httperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToMessageResponse())
	}

	return c.JSON(http.StatusCreated, UserIDResponse{
		Message: "User created Successfully",
		ID:      user.ID,
	})
}

// UpdateUser godoc
// @Summary Update a user (admin only)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 201 {object} UserIDResponse
// @Failure 400 {object} errors.MessageResponse
// @Failure 401 "Unauthenticated"
// @Failure 403 {object} errors.MessageResponse
// @Failure 404 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpErr := httperrors.MapErrorToHTTP(httperrors.ErrInvalidID)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToMessageResponse())
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.UpdateUser(c.Request().Context(), id, service.UpdateUserInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		httpErr := httperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToMessageResponse())
	}

	return c.JSON(http.StatusCreated, UserIDResponse{
		Message: "User Updated Successfully",
		ID:      user.ID,
	})
}

// ListUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {object} ListUsersResponse
// @Failure 404 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		httpErr := httperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToMessageResponse())
	}

	return c.JSON(http.StatusOK, ListUsersResponse{
		Message: "User fetched Successfully",
		Users:   users,
	})
}
