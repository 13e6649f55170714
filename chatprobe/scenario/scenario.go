// Package scenario describes a smoke run against the chat service.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"chatprobe/chatprobe/types"

	"gopkg.in/yaml.v3"
)

var (
	ErrNoUsername = errors.New("scenario: username is required")
	ErrNoMessages = errors.New("scenario: at least one message is required")
)

type Message struct {
	Sender  string `yaml:"sender"`
	Content string `yaml:"content"`
}

type Scenario struct {
	Username string `yaml:"username"`
	// ChatID, when set, is reused instead of creating a new chat.
	ChatID   types.ChatID `yaml:"chat_id,omitempty"`
	Messages []Message    `yaml:"messages"`
}

// Default is the run the chat service was first smoke tested with.
func Default() Scenario {
	return Scenario{
		Username: "testuser",
		Messages: []Message{{
			Sender:  types.SenderUser,
			Content: "yes, so i have this research i need to prepare for but i don't know where to start",
		}},
	}
}

func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML scenario. Unknown keys are rejected.
func Parse(data []byte) (Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Scenario{}, fmt.Errorf("scenario: decode: %w", err)
	}
	for i := range s.Messages {
		if s.Messages[i].Sender == "" {
			s.Messages[i].Sender = types.SenderUser
		}
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

func (s Scenario) Validate() error {
	if s.Username == "" {
		return ErrNoUsername
	}
	if len(s.Messages) == 0 {
		return ErrNoMessages
	}
	return nil
}
