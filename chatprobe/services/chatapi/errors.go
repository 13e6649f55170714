package chatapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrRequestFailed = errors.New("chat api request failed")
	ErrDecode        = errors.New("chat api response could not be decoded")
	ErrEmptyBaseURL  = errors.New("base url is empty")
)

// Operation names carried by errors and log lines.
const (
	OpSignup        = "signup"
	OpCreateChat    = "create_chat"
	OpCreateMessage = "create_message"
	OpChatMessages  = "chat_messages"
	OpUserChats     = "user_chats"
)

var failureText = map[string]string{
	OpSignup:        "signup failed",
	OpCreateChat:    "chat creation failed",
	OpCreateMessage: "message creation failed",
	OpChatMessages:  "failed to retrieve messages",
	OpUserChats:     "failed to retrieve chats",
}

func failure(op string) string {
	if text, ok := failureText[op]; ok {
		return text
	}
	return op + " failed"
}

// RequestFailedError is returned for every non-2xx response, whatever the status class.
type RequestFailedError struct {
	Op         string
	StatusCode int
	// Status is the server's reason phrase, e.g. "Internal Server Error".
	Status string
	// Detail is the "detail" field of a JSON error body, if there was one.
	Detail string
	Body   []byte
}

func (e *RequestFailedError) Error() string {
	msg := failure(e.Op) + ": " + e.Status
	if e.Detail != "" {
		msg += " - " + e.Detail
	}
	return msg
}

func (e *RequestFailedError) Is(target error) bool {
	return target == ErrRequestFailed
}

// DecodeError means a 2xx response carried a body of the wrong shape.
type DecodeError struct {
	Op   string
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode response %q: %v", failure(e.Op), truncate(e.Body, 256), e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// errorDetail pulls "detail" out of an error body. Non-string
// details (validation error lists) are returned as compact JSON.
func errorDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(payload.Detail, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, payload.Detail); err != nil {
		return ""
	}
	if buf.String() == "null" {
		return ""
	}
	return buf.String()
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
