package memstore

import (
	"context"
	"time"

	"chatprobe/chatprobe/types"
)

func (s *Store) CreateChat(ctx context.Context, userID types.UserID) (types.ChatID, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return "", ErrUserNotFound
	}
	id := types.ChatID(s.newID())
	s.chats[id] = Chat{ID: id, UserID: userID, CreatedAt: s.now()}
	s.userChats[userID] = append(s.userChats[userID], id)
	return id, nil
}

// ChatsByUser lists chat ids in creation order. Unknown users have no chats.
func (s *Store) ChatsByUser(ctx context.Context, userID types.UserID) ([]types.ChatID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]types.ChatID, len(s.userChats[userID]))
	copy(ids, s.userChats[userID])
	return ids, nil
}

func (s *Store) SaveMessage(ctx context.Context, msg types.NewMessage) (types.Message, error) {
	if err := ctx.Err(); err != nil {
		return types.Message{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.chats[msg.ChatID]; !ok {
		return types.Message{}, ErrChatNotFound
	}
	saved := types.Message{
		ID:        types.MessageID(s.newID()),
		ChatID:    msg.ChatID,
		Sender:    msg.Sender,
		Content:   msg.Content,
		CreatedAt: s.now().UTC().Format(time.RFC3339Nano),
	}
	s.messages[msg.ChatID] = append(s.messages[msg.ChatID], saved)
	return saved, nil
}

// GetChatHistory returns the messages of chatID oldest first.
func (s *Store) GetChatHistory(ctx context.Context, chatID types.ChatID) ([]types.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := make([]types.Message, len(s.messages[chatID]))
	copy(history, s.messages[chatID])
	return history, nil
}
