package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns an event payload as T. In-process publishers hand
// over T (or *T) directly; payloads replayed from the dead-letter file or
// another serialized source arrive as raw JSON or generic maps and are
// converted through encoding/json.
func DecodePayload[T any](input any) (T, error) {
	var out T
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return out, fmt.Errorf("decode %T payload: nil pointer", out)
		}
		return *v, nil
	case json.RawMessage:
		return out, unmarshalPayload(v, &out)
	case []byte:
		return out, unmarshalPayload(v, &out)
	}

	data, err := json.Marshal(input)
	if err != nil {
		return out, fmt.Errorf("decode %T payload: %w", out, err)
	}
	return out, unmarshalPayload(data, &out)
}

func unmarshalPayload[T any](data []byte, out *T) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %T payload: %w", *out, err)
	}
	return nil
}
