package catalog

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// ErrEmptyName is returned when a decoded record carries no name.
var ErrEmptyName = errors.New("model name must not be empty")

// ToJSON encodes a Model for handing records across process boundaries.
func ToJSON(m Model) ([]byte, error) {
	data, err := jsoniter.ConfigFastest.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode model: %w", err)
	}
	return data, nil
}

// FromJSON decodes a Model. Records without a name are rejected; a zero ID
// is kept as-is so callers control identity assignment.
func FromJSON(data []byte) (Model, error) {
	var m Model
	if err := jsoniter.ConfigFastest.Unmarshal(data, &m); err != nil {
		return Model{}, fmt.Errorf("decode model: %w", err)
	}
	if m.Name == "" {
		return Model{}, ErrEmptyName
	}
	return m, nil
}
