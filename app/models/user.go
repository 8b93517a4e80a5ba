package models

// User is the profile snapshot held alongside the session token. It is
// informational only — authorization decisions belong to the backend.
type User struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt,omitempty"`
}
