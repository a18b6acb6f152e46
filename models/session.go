package models

// Session pairs a bearer token with the user it was issued for. It exists only
// while the auth service holds a valid token; logout destroys it.
type Session struct {
	// Token is the opaque bearer credential attached to every authenticated
	// request as "Authorization: Bearer <token>".
	Token string `json:"token"`

	// User is the account the token was issued for.
	User User `json:"user"`
}
