// chatprobe/services/chatapi/client.go
package chatapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"chatprobe/chatprobe/types"
	httputils "chatprobe/chatprobe/utils/http"

	"go.uber.org/zap"
)

const (
	endpointSignup       = "/signup"
	endpointChats        = "/chats/"
	endpointMessages     = "/messages/"
	endpointChatMessages = "/chats/%s/messages"
	endpointUserChats    = "/chats/%s"
)

type Config struct {
	BaseURL string
	// Timeout bounds a whole request. Zero leaves requests unbounded.
	Timeout time.Duration
}

// Client talks to the chat service. It holds no state besides its
// configuration, so one Client may be shared by any number of goroutines.
// Every call is a single attempt.
type Client struct {
	baseURL string
	http    httputils.Doer
	log     *zap.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the transport. The configured Timeout is not
// applied to a replaced transport.
func WithHTTPClient(d httputils.Doer) Option {
	return func(c *Client) {
		c.http = d
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

func New(cfg Config, opts ...Option) (*Client, error) {
	base, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: base,
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized service address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// normalizeBaseURL adds a scheme when missing and drops trailing slashes.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyBaseURL
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid base url %q: missing host", raw)
	}
	return strings.TrimRight(u.String(), "/"), nil
}

// Signup registers username and returns the id the service assigned.
func (c *Client) Signup(ctx context.Context, username string) (types.UserID, error) {
	body, err := c.call(ctx, OpSignup, http.MethodPost, endpointSignup, types.SignupRequest{Username: username})
	if err != nil {
		return "", err
	}
	userID, err := decodeID[types.UserID](OpSignup, body, "user_id", "id")
	if err != nil {
		return "", err
	}
	c.log.Info("user registered", zap.String("username", username), zap.String("user_id", string(userID)))
	return userID, nil
}

// CreateChat opens a new chat for userID. Calling it twice opens two chats.
func (c *Client) CreateChat(ctx context.Context, userID types.UserID) (types.ChatID, error) {
	body, err := c.call(ctx, OpCreateChat, http.MethodPost, endpointChats, types.CreateChatRequest{UserID: userID})
	if err != nil {
		return "", err
	}
	chatID, err := decodeID[types.ChatID](OpCreateChat, body, "chat_id", "id")
	if err != nil {
		return "", err
	}
	c.log.Info("chat created", zap.String("user_id", string(userID)), zap.String("chat_id", string(chatID)))
	return chatID, nil
}

// CreateMessage posts msg as is.
func (c *Client) CreateMessage(ctx context.Context, msg types.NewMessage) (types.MessageID, error) {
	body, err := c.call(ctx, OpCreateMessage, http.MethodPost, endpointMessages, msg)
	if err != nil {
		return "", err
	}
	messageID, err := decodeID[types.MessageID](OpCreateMessage, body, "message_id", "id")
	if err != nil {
		return "", err
	}
	c.log.Info("message created",
		zap.String("chat_id", string(msg.ChatID)),
		zap.String("sender", msg.Sender),
		zap.String("message_id", string(messageID)),
	)
	return messageID, nil
}

// ChatMessages lists the messages of chatID in the order the service returns them.
func (c *Client) ChatMessages(ctx context.Context, chatID types.ChatID) ([]types.Message, error) {
	path := fmt.Sprintf(endpointChatMessages, url.PathEscape(string(chatID)))
	body, err := c.call(ctx, OpChatMessages, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	messages, err := decodeList[types.Message](OpChatMessages, body, "messages")
	if err != nil {
		return nil, err
	}
	c.log.Info("messages retrieved", zap.String("chat_id", string(chatID)), zap.Int("count", len(messages)))
	return messages, nil
}

// UserChats lists the chat ids owned by userID.
func (c *Client) UserChats(ctx context.Context, userID types.UserID) ([]types.ChatID, error) {
	path := fmt.Sprintf(endpointUserChats, url.PathEscape(string(userID)))
	body, err := c.call(ctx, OpUserChats, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	chatIDs, err := decodeList[types.ChatID](OpUserChats, body, "chat_ids")
	if err != nil {
		return nil, err
	}
	c.log.Info("chats retrieved", zap.String("user_id", string(userID)), zap.Int("count", len(chatIDs)))
	return chatIDs, nil
}

// call performs one request and returns the body of a 2xx response.
func (c *Client) call(ctx context.Context, op, method, path string, payload interface{}) ([]byte, error) {
	start := time.Now()
	log := c.log.With(zap.String("op", op), zap.String("method", method), zap.String("path", path))

	req, err := httputils.NewJSONRequest(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", failure(op), err)
	}

	res, err := httputils.Send(c.http, req)
	if err != nil {
		log.Error("request error", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("%s: %w", failure(op), err)
	}

	log = log.With(zap.Int("status", res.StatusCode), zap.Duration("duration", time.Since(start)))
	if !res.OK() {
		reqErr := &RequestFailedError{
			Op:         op,
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Detail:     errorDetail(res.Body),
			Body:       res.Body,
		}
		log.Warn("request failed", zap.String("error", reqErr.Error()))
		return nil, reqErr
	}

	log.Debug("request ok")
	return res.Body, nil
}
