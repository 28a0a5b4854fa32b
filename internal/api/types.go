// Package api defines the response envelope types shared by all HTTP handlers.
package api

// ErrorResponse is the generic error body: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the generic success body: {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse is the body returned by the auth gate on token failures:
// {"status": "Token is Invalid"} etc.
type StatusResponse struct {
	Status string `json:"status"`
}

// TokenResponse is the body returned after a successful registration or login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// SlugResponse is the body returned after creating an article.
type SlugResponse struct {
	Slug string `json:"slug"`
}

// FieldErrors maps a field name to its validation error messages.
// It is serialized as the top-level 400 body, e.g.
// {"title": ["The title has already been taken."]}.
type FieldErrors map[string][]string
