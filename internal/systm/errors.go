package systm

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAuthenticated is returned by every guarded operation called before
	// a successful Authenticate. It is a precondition failure, never retried.
	ErrNotAuthenticated = errors.New("not authenticated: call Authenticate first")

	// ErrNotFound is returned (wrapped) when a by-id fetch comes back empty.
	ErrNotFound = errors.New("not found")
)

// AuthenticationError means the upstream login rejected the credentials,
// or the login response was unusable. Carries the upstream message verbatim.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return "authentication failed: " + e.Message
}

// TransportError means the GraphQL endpoint answered with a non-2xx HTTP
// status. The response body is not parsed on transport failure.
type TransportError struct {
	StatusCode int
	Status     string
}

func (e *TransportError) Error() string {
	return "api request failed: " + e.Status
}

// APIError carries the first message of a GraphQL-level errors array
// returned with an otherwise successful HTTP response.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return "graphql error: " + e.Message
}

// ScheduleError means the add-agenda mutation reported a non-success status.
type ScheduleError struct {
	Message string
}

func (e *ScheduleError) Error() string {
	return fmt.Sprintf("failed to schedule workout: %s", e.Message)
}

// RescheduleError means the move-agenda mutation reported a non-success status.
type RescheduleError struct {
	Message string
}

func (e *RescheduleError) Error() string {
	return fmt.Sprintf("failed to reschedule workout: %s", e.Message)
}

// RemoveError means the delete-agenda mutation reported a non-success status.
type RemoveError struct {
	Message string
}

func (e *RemoveError) Error() string {
	return fmt.Sprintf("failed to remove workout: %s", e.Message)
}
