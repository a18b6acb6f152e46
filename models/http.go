package models

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the successful response of POST /api/auth/login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SendMessageRequest is the body of POST /api/chats/{chatId}/messages.
type SendMessageRequest struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// SendMessageResponse is the server acknowledgement of a sent message,
// carrying the identifier and timestamp assigned on the server side.
type SendMessageResponse struct {
	ID        int64  `json:"id"`
	CreatedAt string `json:"created_at"`
}
