package chatapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// decodeID accepts either a bare JSON string or an object holding the id
// under one of keys.
func decodeID[T ~string](op string, body []byte, keys ...string) (T, error) {
	if isNull(body) {
		return "", &DecodeError{Op: op, Body: body, Err: errors.New("null identifier")}
	}

	var id string
	if err := json.Unmarshal(body, &id); err == nil {
		return T(id), nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return "", &DecodeError{Op: op, Body: body, Err: err}
	}
	for _, key := range keys {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		if isNull(raw) {
			return "", &DecodeError{Op: op, Body: body, Err: fmt.Errorf("field %q: null identifier", key)}
		}
		if err := json.Unmarshal(raw, &id); err != nil {
			return "", &DecodeError{Op: op, Body: body, Err: fmt.Errorf("field %q: %w", key, err)}
		}
		return T(id), nil
	}
	return "", &DecodeError{Op: op, Body: body, Err: fmt.Errorf("no identifier under any of %v", keys)}
}

// decodeList accepts a bare JSON array or an object carrying the array
// under envelope. Order is kept as received.
func decodeList[T any](op string, body []byte, envelope string) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, &DecodeError{Op: op, Body: body, Err: errors.New("empty body")}
	}

	if isNull(trimmed) {
		return nil, &DecodeError{Op: op, Body: body, Err: errors.New("null list")}
	}

	raw := json.RawMessage(trimmed)
	if trimmed[0] == '{' {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return nil, &DecodeError{Op: op, Body: body, Err: err}
		}
		inner, ok := obj[envelope]
		if !ok {
			return nil, &DecodeError{Op: op, Body: body, Err: fmt.Errorf("missing %q", envelope)}
		}
		if isNull(inner) {
			return nil, &DecodeError{Op: op, Body: body, Err: fmt.Errorf("%q is null", envelope)}
		}
		raw = inner
	}

	items := []T{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &DecodeError{Op: op, Body: body, Err: err}
	}
	return items, nil
}

func isNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
