package types

// SessionUser is the sanitized user record copied into the session at login.
// It is never re-read from the database, so role or email changes only take
// effect on re-login.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
