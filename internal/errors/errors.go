package errors

import (
	"errors"
	"net/http"
)

// Sentinel errors for resource failures. The error text doubles as the wire
// message, so the literals follow the API contract rather than Go convention.
var (
	// ErrInvalidID is returned when a path identifier is not a well-formed UUID.
	ErrInvalidID = errors.New("Invalid ID format")
	// ErrInvalidMembers is returned when a group is created without members.
	ErrInvalidMembers = errors.New("Members should be a non-empty array.")
	// ErrMissingFields is returned when a message payload lacks required fields.
	ErrMissingFields = errors.New("Missing required fields")
	// ErrUserNotFound is returned when a referenced user does not exist.
	ErrUserNotFound = errors.New("User not found")
	// ErrNoUsers is returned when the user collection is empty.
	ErrNoUsers = errors.New("No Users Available")
	// ErrGroupNotFound is returned by group update and delete on an absent group.
	ErrGroupNotFound = errors.New("Group not found")
	// ErrGroupNotFoundByID is returned by group lookup on an absent group.
	ErrGroupNotFoundByID = errors.New("Group not found with given id")
	// ErrNoGroups is returned when a group or message listing comes back empty.
	ErrNoGroups = errors.New("No Groups Available")
	// ErrMessageNotFound is returned when liking a message that does not exist.
	ErrMessageNotFound = errors.New("Message not found")
)

// MessageResponse is the standard error (and status) body.
type MessageResponse struct {
	Message string `json:"message"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToMessageResponse converts an HTTPError to its response body.
func (e *HTTPError) ToMessageResponse() MessageResponse {
	return MessageResponse{Message: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized
// becomes a generic 500 so driver errors never leak to callers.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidID),
		errors.Is(err, ErrInvalidMembers),
		errors.Is(err, ErrMissingFields):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrNoUsers),
		errors.Is(err, ErrGroupNotFound),
		errors.Is(err, ErrGroupNotFoundByID),
		errors.Is(err, ErrNoGroups),
		errors.Is(err, ErrMessageNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "Server error")
	}
}
