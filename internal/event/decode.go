package event

import "encoding/json"

// DecodePayload returns the payload as T. MemoryBus hands over the original
// struct; anything else (a map from a replayed or remote event) is converted
// through JSON.
func DecodePayload[T any](payload any) (T, error) {
	if typed, ok := payload.(T); ok {
		return typed, nil
	}
	var out T
	raw, err := json.Marshal(payload)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, err
	}
	return out, nil
}
