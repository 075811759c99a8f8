package services

import (
	"bytes"
	"encoding/json"
	"fmt"

	"sms-admin/internal/core/domain"
)

// listKeys are the envelope keys the backend has used for list payloads
var listKeys = []string{"data", "books", "students", "records"}

// decodeList accepts a bare array or an envelope around one, possibly nested
// ({"data": {"data": [...]}}). Anything else decodes as an empty list.
func decodeList[T any](raw json.RawMessage) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []T{}, nil
	}

	switch raw[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("%w: decode list: %v", domain.ErrBackend, err)
		}
		return items, nil
	case '{':
		var env map[string]json.RawMessage
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, fmt.Errorf("%w: decode list: %v", domain.ErrBackend, err)
		}
		for _, key := range listKeys {
			if inner, ok := env[key]; ok {
				return decodeList[T](inner)
			}
		}
	}
	return []T{}, nil
}

// decodeOne accepts a record or {"data": record}
func decodeOne[T any](raw json.RawMessage) (*T, error) {
	raw = bytes.TrimSpace(raw)
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if len(raw) > 0 && raw[0] == '{' {
		if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 && env.Data[0] == '{' {
			raw = env.Data
		}
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: decode record: %v", domain.ErrBackend, err)
	}
	return &out, nil
}

