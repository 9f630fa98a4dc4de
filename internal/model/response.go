package model

import "time"

// APIResponse is the uniform success envelope returned by every endpoint.
// Data stays in the payload even when null.
type APIResponse struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// OK wraps data and a message in a success envelope stamped now.
func OK(data any, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// PaginationMetadata describes one page of a larger listing.
type PaginationMetadata struct {
	Total   int  `json:"total"`
	Page    int  `json:"page"`
	PerPage int  `json:"per_page"`
	Pages   int  `json:"pages"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

// NewPagination derives page metadata from a total row count and the
// requested limit/offset.
func NewPagination(total, limit, offset int) PaginationMetadata {
	if limit <= 0 {
		limit = 1
	}
	pages := (total + limit - 1) / limit
	page := offset/limit + 1
	return PaginationMetadata{
		Total:   total,
		Page:    page,
		PerPage: limit,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
}

// PaginatedResponse wraps a listing with its pagination metadata.
type PaginatedResponse struct {
	Success    bool               `json:"success"`
	Data       any                `json:"data"`
	Pagination PaginationMetadata `json:"pagination"`
	Timestamp  time.Time          `json:"timestamp"`
}

// Page wraps a listing page in a success envelope stamped now.
func Page(data any, p PaginationMetadata) PaginatedResponse {
	return PaginatedResponse{
		Success:    true,
		Data:       data,
		Pagination: p,
		Timestamp:  time.Now().UTC(),
	}
}

// AuthResponse is returned by signup and signin with a fresh bearer token.
type AuthResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Data        *User  `json:"data"`
	AccessToken string `json:"access_token,omitempty"`
	TokenType   string `json:"token_type,omitempty"`
}

// CheckEmailResponse answers a username availability probe.
type CheckEmailResponse struct {
	Success bool   `json:"success"`
	Exists  bool   `json:"exists"`
	Message string `json:"message"`
}
