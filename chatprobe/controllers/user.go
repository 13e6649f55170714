// chatprobe/controllers/user.go
package controllers

import (
	"context"
	"errors"

	"chatprobe/chatprobe/sources/memstore"
	"chatprobe/chatprobe/types"

	"go.uber.org/zap"
)

var ErrSignup = errors.New("Unable to create or retrieve user.")

type UserController struct {
	store *memstore.Store
	log   *zap.Logger
}

func NewUserController(store *memstore.Store, log *zap.Logger) *UserController {
	return &UserController{store: store, log: log}
}

// Signup doubles as login: a known username gets its existing id back.
func (c *UserController) Signup(ctx context.Context, username string) (types.UserID, error) {
	id, created, err := c.store.CreateUser(ctx, username)
	if err != nil {
		c.log.Warn("signup", zap.String("username", username), zap.Error(err))
		return "", ErrSignup
	}
	if !created {
		c.log.Info("user already exists", zap.String("user_id", string(id)))
	}
	return id, nil
}
