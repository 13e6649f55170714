// chatprobe/types/chat.go
package types

// ChatID names a conversation and scopes its messages.
type ChatID string

type CreateChatRequest struct {
	UserID UserID `json:"user_id"`
}

// UserChatsResponse is the envelope the chat service wraps chat ids in.
type UserChatsResponse struct {
	ChatIDs []ChatID `json:"chat_ids"`
}
