package models

// AccessLevel controls which screens a user sees. This is a display
// concern only; the backend enforces authorization on every call.
type AccessLevel string

const (
	AccessAdmin    AccessLevel = "admin"
	AccessStandard AccessLevel = "user"
)

// User is the authenticated account returned by the login endpoint.
type User struct {
	ID          int64       `json:"id"`
	Username    string      `json:"username"`
	AccessLevel AccessLevel `json:"nivel_acesso"`
}

// IsAdmin reports whether the user should see the admin screens
// (all reservations, room management).
func (u *User) IsAdmin() bool {
	return u != nil && u.AccessLevel == AccessAdmin
}
