package adapter

import (
	"encoding/json"
)

// JSON abstracts JSON encoding so event payloads and allowlist files can be
// faked in tests
//
//go:generate mockgen -source=json.go -destination=../mocks/json.go -package=mocks -mock_names=JSON=MockJSON
type JSON interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

// stdJSON is the encoding/json-backed implementation used outside tests
type stdJSON struct{}

// NewJSON returns the encoding/json-backed implementation
func NewJSON() JSON {
	return &stdJSON{}
}

func (stdJSON) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (stdJSON) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
