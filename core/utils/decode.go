package utils

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// DecodeStrict unmarshals body into v and rejects fields v does not declare.
func DecodeStrict(body []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
