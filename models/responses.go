package models

// MessageResponse is the generic `{"message": "..."}` body used by most
// endpoints for both success confirmations and recoverable failures.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the `{"error": "..."}` body used by registration
// validation failures (invalid email format, short password).
type ErrorResponse struct {
	Error string `json:"error"`
}

// TokenResponse carries the signed session token returned by a successful
// authentication request.
type TokenResponse struct {
	Token string `json:"token"`
}

// ProfileResponse is the authenticated user's own profile. The password
// hash is never part of it.
type ProfileResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BulkDeleteResponse confirms an administrative bulk delete and reports
// how many user records were removed.
type BulkDeleteResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}
