package models

// Known message sender values. The sender field is open-ended on the wire:
// anything outside this set is displayed as-is.
const (
	SenderLawyer  = "lawyer"
	SenderVisitor = "visitor"
	SenderAI      = "ai"
)

// Message is a single entry of a conversation. Server-confirmed messages carry
// an ID and a creation timestamp; locally echoed messages awaiting confirmation
// carry neither and are identified by LocalID instead.
type Message struct {
	// ID is the server-assigned identifier. Zero for a pending local echo.
	ID int64 `json:"id,omitempty"`

	// Sender names the author side of the message: "lawyer", "visitor", "ai"
	// or any other value the server chooses to report.
	Sender string `json:"sender"`

	// Text is the message body.
	Text string `json:"text"`

	// CreatedAt is the ISO-8601 timestamp assigned by the server. Empty for a
	// pending local echo.
	CreatedAt string `json:"created_at,omitempty"`

	// LocalID is a client-generated identifier assigned to optimistic echoes
	// so a confirmed send can be matched back to its provisional entry. Never
	// sent to or received from the server.
	LocalID string `json:"-"`
}

// Pending reports whether the message is a local echo that has not been
// confirmed by the server yet.
func (m Message) Pending() bool {
	return m.ID == 0
}
