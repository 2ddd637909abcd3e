package types

const ContextUserKey = "user"

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "crickhub_session"

const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)
