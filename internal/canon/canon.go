// Package canon produces canonical JSON (RFC 8785 JCS): object keys sorted,
// no insignificant whitespace, minimal string escaping and ECMAScript number
// formatting. Structurally equal documents serialize to identical bytes.
package canon

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Encode returns the canonical JSON encoding of v.
// v is first marshalled with encoding/json, so struct tags and
// json.Marshaler implementations are honoured.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("canonical encoding failed: %w", err)
	}

	out, err := Canonicalize(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("canonical encoding failed: %w", err)
	}
	return out, nil
}
