// Package memstore keeps the stub chat service's users, chats and messages in memory.
package memstore

import (
	"errors"
	"sync"
	"time"

	"chatprobe/chatprobe/types"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrChatNotFound = errors.New("chat not found")
)

type User struct {
	ID        types.UserID
	Username  string
	CreatedAt time.Time
}

type Chat struct {
	ID        types.ChatID
	UserID    types.UserID
	CreatedAt time.Time
}

type Store struct {
	mu    sync.RWMutex
	now   func() time.Time
	newID func() string

	users       map[types.UserID]User
	usersByName map[string]types.UserID
	chats       map[types.ChatID]Chat
	userChats   map[types.UserID][]types.ChatID
	messages    map[types.ChatID][]types.Message
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

func New(opts ...Option) *Store {
	s := &Store{
		now:         time.Now,
		newID:       func() string { return uuid.New().String() },
		users:       make(map[types.UserID]User),
		usersByName: make(map[string]types.UserID),
		chats:       make(map[types.ChatID]Chat),
		userChats:   make(map[types.UserID][]types.ChatID),
		messages:    make(map[types.ChatID][]types.Message),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
