// chatprobe/controllers/chat.go
package controllers

import (
	"context"
	"errors"

	"chatprobe/chatprobe/sources/memstore"
	"chatprobe/chatprobe/types"

	"go.uber.org/zap"
)

var (
	ErrCreateChat    = errors.New("Unable to create chat.")
	ErrCreateMessage = errors.New("Unable to create message.")
	ErrListChats     = errors.New("Error retrieving chats")
)

type ChatController struct {
	store *memstore.Store
	log   *zap.Logger
}

func NewChatController(store *memstore.Store, log *zap.Logger) *ChatController {
	return &ChatController{store: store, log: log}
}

// CreateChat opens a chat for userID. Failures are collapsed into
// ErrCreateChat, the way the real service reports them.
func (c *ChatController) CreateChat(ctx context.Context, userID types.UserID) (types.ChatID, error) {
	chatID, err := c.store.CreateChat(ctx, userID)
	if err != nil {
		c.log.Warn("create chat", zap.String("user_id", string(userID)), zap.Error(err))
		return "", ErrCreateChat
	}
	c.log.Info("chat created", zap.String("user_id", string(userID)), zap.String("chat_id", string(chatID)))
	return chatID, nil
}

func (c *ChatController) CreateMessage(ctx context.Context, msg types.NewMessage) (types.MessageID, error) {
	saved, err := c.store.SaveMessage(ctx, msg)
	if err != nil {
		c.log.Warn("create message", zap.String("chat_id", string(msg.ChatID)), zap.Error(err))
		return "", ErrCreateMessage
	}
	return saved.ID, nil
}

func (c *ChatController) GetMessages(ctx context.Context, chatID types.ChatID) ([]types.Message, error) {
	return c.store.GetChatHistory(ctx, chatID)
}

func (c *ChatController) ListChats(ctx context.Context, userID types.UserID) (types.UserChatsResponse, error) {
	ids, err := c.store.ChatsByUser(ctx, userID)
	if err != nil {
		c.log.Warn("list chats", zap.String("user_id", string(userID)), zap.Error(err))
		return types.UserChatsResponse{}, ErrListChats
	}
	return types.UserChatsResponse{ChatIDs: ids}, nil
}
