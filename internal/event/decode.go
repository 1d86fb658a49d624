package event

import "encoding/json"

// DecodePayload converts an event payload to T. In-process events already
// carry the concrete struct, so a type assertion usually suffices; payloads
// that arrived as generic maps take the JSON round-trip path instead.
func DecodePayload[T any](payload interface{}) (T, error) {
	if typed, ok := payload.(T); ok {
		return typed, nil
	}

	var decoded T
	raw, err := json.Marshal(payload)
	if err != nil {
		return decoded, err
	}
	err = json.Unmarshal(raw, &decoded)
	return decoded, err
}
