package models

// Role is the closed set of account roles known to the DockFlow service.
// Unknown values coming from the server are preserved verbatim so they can be
// logged and displayed, but they never pass the staff gate.
type Role string

const (
	RoleLawyer  Role = "lawyer"
	RoleAdmin   Role = "admin"
	RoleOwner   Role = "owner"
	RoleVisitor Role = "visitor"
)

// IsStaff reports whether the role grants access to the lawyer console.
// Only lawyer, admin and owner accounts may open support conversations.
func (r Role) IsStaff() bool {
	switch r {
	case RoleLawyer, RoleAdmin, RoleOwner:
		return true
	default:
		return false
	}
}

// User represents an account entity returned by the authentication endpoint.
// It is an immutable snapshot: the client never mutates or writes it back.
type User struct {
	// ID is the unique identifier of the account on the server.
	ID int64 `json:"id"`

	// Email is the login identifier of the account.
	Email string `json:"email"`

	// Role is the account role as reported by the server. May be empty when
	// the server omits the field; an empty role is never staff.
	Role Role `json:"role,omitempty"`

	// FullName is the optional display name of the account.
	FullName string `json:"full_name,omitempty"`
}
