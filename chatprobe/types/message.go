// chatprobe/types/message.go
package types

type MessageID string

// Sender tags observed in the wild. The set is open; any string is accepted.
const (
	SenderUser      = "USER"
	SenderAssistant = "ASSISTANT"
)

// NewMessage is the request body for posting a message.
type NewMessage struct {
	ChatID  ChatID `json:"chat_id"`
	Sender  string `json:"sender"`
	Content string `json:"content"`
}

// Message is a stored message as returned by the chat service.
// CreatedAt is kept as the server's string, which is not always RFC 3339.
type Message struct {
	ID        MessageID `json:"id"`
	ChatID    ChatID    `json:"chat_id,omitempty"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt string    `json:"created_at,omitempty"`
}

// ErrorResponse is the {"detail": ...} body the chat service sends on failure.
// Detail is a string, or a list of ValidationIssue for malformed requests.
type ErrorResponse struct {
	Detail interface{} `json:"detail"`
}

type ValidationIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}
