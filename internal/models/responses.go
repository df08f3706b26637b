package models

// PageMeta carries pagination metadata alongside a list payload
type PageMeta struct {
	CurrentPage int `json:"current_page" example:"1"`
	PerPage     int `json:"per_page" example:"20"`
	Total       int `json:"total" example:"42"`
}

// ListResponse is the envelope returned by list endpoints
type ListResponse[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

// NewListResponse wraps items in a list envelope, never emitting null for
// an empty page
func NewListResponse[T any](items []T, perPage, total int) ListResponse[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return ListResponse[T]{
		Data: items,
		Meta: PageMeta{CurrentPage: 1, PerPage: perPage, Total: total},
	}
}

// MessageResponse is the envelope for auth failures and simple outcomes
type MessageResponse struct {
	Message string `json:"message" example:"Unauthenticated."`
}

// ErrorsResponse is the envelope for lookup failures
type ErrorsResponse struct {
	Errors []string `json:"errors" example:"Currency with ID 999999 not found"`
}

// ValidationErrorResponse is the envelope for payload validation failures
type ValidationErrorResponse struct {
	Message string              `json:"message" example:"The given data was invalid."`
	Errors  map[string][]string `json:"errors"`
}

// PermissionDeniedResponse is returned when an authenticated caller lacks
// the required privilege. The current user is echoed back.
type PermissionDeniedResponse struct {
	Message string `json:"message" example:"Permission Denied"`
	User    *User  `json:"user"`
}

// ErrorResponse represents a generic error response
type ErrorResponse struct {
	Error string `json:"error"`
}
