package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	httperrors "groupchat/internal/errors"
	"groupchat/internal/service"
)

// GroupHandler handles group directory endpoints.
type GroupHandler struct {
	groupService service.GroupService
}

// NewGroupHandler creates a new group handler.
func NewGroupHandler(groupService service.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// CreateGroupRequest represents a group creation request. Members binds as
// raw JSON so a payload carrying a non-array value still answers with the
// membership error instead of a generic bind failure.
type CreateGroupRequest struct {
	Name    string          `json:"name" validate:"required"`
	Members json.RawMessage `json:"members" swaggertype:"array,string"`
}

// UpdateGroupRequest represents a partial group update. Members, when
// present, replace the current membership set.
type UpdateGroupRequest struct {
	Name    *string   `json:"name"`
	Members *[]string `json:"members"`
}

// GroupIDResponse carries a confirmation message and the affected group id.
type GroupIDResponse struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

// parseMemberIDs turns the wire member list into uuids. A nil result means
// the list is empty or not a proper sequence of identifiers.
func parseMemberIDs(raw []string) []uuid.UUID {
	if len(raw) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, item := range raw {
		id, err := uuid.Parse(item)
		if err != nil {
			return nil
		}
		ids = append(ids, id)
	}
	return ids
}

// decodeMemberIDs unwraps the raw members value. Anything that is not a
// JSON array of well-formed identifiers comes back nil.
func decodeMemberIDs(raw json.RawMessage) []uuid.UUID {
	if len(raw) == 0 {
		return nil
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return parseMemberIDs(items)
}

// CreateGroup godoc
// @Summary Create a group
// @Tags groups
// @Accept json
// @Produce json
// @Param request body CreateGroupRequest true "Group data"
// @Success 201 {object} GroupIDResponse
// @Failure 400 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /groups [post]
func (h *GroupHandler) CreateGroup(c echo.Context) error {
	var req CreateGroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	memberIDs := decodeMemberIDs(req.Members)
	if memberIDs == nil {
		httpErr := httperrors.MapErrorToHTTP(httperrors.ErrInvalidMembers)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToMessageResponse())
	}

	group, err := h.groupService.Create(c.Request().Context(), req.Name, memberIDs)
	if err != nil {
		httpErr := httperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToMessageResponse())
	}

	return c.JSON(http.StatusCreated, GroupIDResponse{
		Message: "Group Created Successfully",
		ID:      group.ID,
	})
}

// ListGroups godoc
// @Summary List all groups with members populated
// @Tags groups
// @Produce json
// @Success 200 {array} model.Group
// @Failure 404 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /groups [get]
func (h *GroupHandler) ListGroups(c echo.Context) error {
	groups, err := h.groupService.List(c.Request().Context())
	if err != nil {
		httpErr := httperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToMessageResponse())
	}
	return c.JSON(http.StatusOK, groups)
}

// GetGroup godoc
// @Summary Get a group by id with members populated
// @Tags groups
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} model.Group
// @Failure 400 {object} errors.MessageResponse
// @Failure 404 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /groups/{id} [get]
func (h *GroupHandler) GetGroup(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpErr := httperrors.MapErrorToHTTP(httperrors.ErrInvalidID)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToMessageResponse())
	}

	group, err := h.groupService.GetByID(c.Request().Context(), id)
	if err != nil {
		httpErr := httperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToMessageResponse())
	}
	return c.JSON(http.StatusOK, group)
}

// UpdateGroup godoc
// @Summary Update a group
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param request body UpdateGroupRequest true "Fields to update"
// @Success 201 {object} GroupIDResponse
// @Failure 400 {object} errors.MessageResponse
// @Failure 404 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /groups/{id} [put]
func (h *GroupHandler) UpdateGroup(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpErr := httperrors.MapErrorToHTTP(httperrors.ErrInvalidID)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToMessageResponse())
	}

	var req UpdateGroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	input := service.UpdateGroupInput{Name: req.Name}
	if req.Members != nil {
		memberIDs := make([]uuid.UUID, 0, len(*req.Members))
		for _, item := range *req.Members {
			memberID, err := uuid.Parse(item)
			if err != nil {
				httpErr := httperrors.MapErrorToHTTP(httperrors.ErrInvalidMembers)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToMessageResponse())
			}
			memberIDs = append(memberIDs, memberID)
		}
		input.Members = &memberIDs
	}

	group, err := h.groupService.Update(c.Request().Context(), id, input)
	if err != nil {
		httpErr := httperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToMessageResponse())
	}

	return c.JSON(http.StatusCreated, GroupIDResponse{
		Message: "Group Updated Successfully",
		ID:      group.ID,
	})
}

// DeleteGroup godoc
// @Summary Delete a group
// @Tags groups
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} errors.MessageResponse
// @Failure 400 {object} errors.MessageResponse
// @Failure 404 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /groups/{id} [delete]
func (h *GroupHandler) DeleteGroup(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpErr := httperrors.MapErrorToHTTP(httperrors.ErrInvalidID)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToMessageResponse())
	}

	if err := h.groupService.Delete(c.Request().Context(), id); err != nil {
		httpErr := httperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToMessageResponse())
	}

	return c.JSON(http.StatusOK, httperrors.MessageResponse{Message: "Group Deleted Successfully"})
}
