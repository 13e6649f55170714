// chatprobe/services/smoke/smoke.go
package smoke

import (
	"context"
	"fmt"
	"time"

	"chatprobe/chatprobe/scenario"
	"chatprobe/chatprobe/types"
	"chatprobe/chatprobe/utils/logging"

	"go.uber.org/zap"
)

// API is the slice of the chat service a smoke run drives.
type API interface {
	Signup(ctx context.Context, username string) (types.UserID, error)
	CreateChat(ctx context.Context, userID types.UserID) (types.ChatID, error)
	CreateMessage(ctx context.Context, msg types.NewMessage) (types.MessageID, error)
	ChatMessages(ctx context.Context, chatID types.ChatID) ([]types.Message, error)
	UserChats(ctx context.Context, userID types.UserID) ([]types.ChatID, error)
}

const (
	StepSignup        = "signup"
	StepCreateChat    = "create_chat"
	StepCreateMessage = "create_message"
	StepChatMessages  = "chat_messages"
	StepUserChats     = "user_chats"
)

type Step struct {
	Name       string `json:"name"`
	DurationMS int64  `json:"duration_ms"`
	Err        string `json:"error,omitempty"`
}

// Report is everything a run produced, up to the first failure.
type Report struct {
	UserID      types.UserID      `json:"user_id"`
	ChatID      types.ChatID      `json:"chat_id"`
	ChatReused  bool              `json:"chat_reused"`
	MessageIDs  []types.MessageID `json:"message_ids"`
	History     []types.Message   `json:"history"`
	UserChatIDs []types.ChatID    `json:"user_chat_ids"`
	Steps       []Step            `json:"steps"`
}

// Failed reports whether any step errored.
func (r *Report) Failed() bool {
	for _, s := range r.Steps {
		if s.Err != "" {
			return true
		}
	}
	return false
}

type Runner struct {
	api API
	log *zap.Logger
}

func New(api API, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{api: api, log: log}
}

// Run chains Signup -> CreateChat -> CreateMessage for every scenario message,
// then reads back the chat history and the user's chats. It stops at the first
// failing step and returns the partial report with the error.
func (r *Runner) Run(ctx context.Context, sc scenario.Scenario) (*Report, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	defer logging.LogDuration(ctx, "smoke_run")()

	report := &Report{MessageIDs: []types.MessageID{}}
	log := r.log.With(zap.String("username", sc.Username))

	err := r.step(ctx, report, StepSignup, func() (err error) {
		report.UserID, err = r.api.Signup(ctx, sc.Username)
		return err
	})
	if err != nil {
		return report, err
	}

	if sc.ChatID != "" {
		report.ChatID = sc.ChatID
		report.ChatReused = true
		log.Info("reusing chat", zap.String("chat_id", string(sc.ChatID)))
	} else {
		err = r.step(ctx, report, StepCreateChat, func() (err error) {
			report.ChatID, err = r.api.CreateChat(ctx, report.UserID)
			return err
		})
		if err != nil {
			return report, err
		}
	}

	for _, m := range sc.Messages {
		err = r.step(ctx, report, StepCreateMessage, func() error {
			id, err := r.api.CreateMessage(ctx, types.NewMessage{
				ChatID:  report.ChatID,
				Sender:  m.Sender,
				Content: m.Content,
			})
			if err != nil {
				return err
			}
			report.MessageIDs = append(report.MessageIDs, id)
			return nil
		})
		if err != nil {
			return report, err
		}
	}

	err = r.step(ctx, report, StepChatMessages, func() (err error) {
		report.History, err = r.api.ChatMessages(ctx, report.ChatID)
		return err
	})
	if err != nil {
		return report, err
	}

	err = r.step(ctx, report, StepUserChats, func() (err error) {
		report.UserChatIDs, err = r.api.UserChats(ctx, report.UserID)
		return err
	})
	if err != nil {
		return report, err
	}

	log.Info("smoke run finished",
		zap.String("user_id", string(report.UserID)),
		zap.String("chat_id", string(report.ChatID)),
		zap.Int("messages", len(report.History)),
		zap.Int("chats", len(report.UserChatIDs)),
	)
	return report, nil
}

func (r *Runner) step(ctx context.Context, report *Report, name string, fn func() error) error {
	done := logging.LogDuration(ctx, name)
	start := time.Now()
	err := fn()
	done()

	s := Step{Name: name, DurationMS: time.Since(start).Milliseconds()}
	if err != nil {
		s.Err = err.Error()
		r.log.Error("smoke step failed", zap.String("step", name), zap.Error(err))
		report.Steps = append(report.Steps, s)
		return fmt.Errorf("%s: %w", name, err)
	}
	report.Steps = append(report.Steps, s)
	return nil
}
