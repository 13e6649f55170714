package memstore

import (
	"context"

	"chatprobe/chatprobe/types"
)

// CreateUser returns the id of username, registering it first if needed.
// created reports whether a new user was made.
func (s *Store) CreateUser(ctx context.Context, username string) (id types.UserID, created bool, err error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.usersByName[username]; ok {
		return existing, false, nil
	}
	id = types.UserID(s.newID())
	s.users[id] = User{ID: id, Username: username, CreatedAt: s.now()}
	s.usersByName[username] = id
	return id, true, nil
}
