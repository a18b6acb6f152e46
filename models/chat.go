package models

// Chat is a read-only snapshot of a support conversation as listed by the
// server. List ordering is server-defined and must be preserved as received.
type Chat struct {
	// ID is the unique identifier of the conversation.
	ID int64 `json:"id"`

	// VisitorID optionally identifies the visitor side of the conversation.
	VisitorID string `json:"visitor_id,omitempty"`

	// CreatedAt is the ISO-8601 creation timestamp reported by the server.
	CreatedAt string `json:"created_at"`
}
