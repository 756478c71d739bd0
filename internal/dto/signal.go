package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

var ErrInvalidSignal = errors.New("invalid signal payload")

// Signal is a schemaless trading signal as received from a client. It only
// lives for the duration of one request.
type Signal struct {
	raw []byte
}

// ParseSignal accepts a JSON object or array and returns its compact
// serialization. Member order and string escapes are kept as received, so a
// compact body round-trips byte for byte.
func ParseSignal(body []byte) (Signal, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return Signal{}, fmt.Errorf("%w: empty body", ErrInvalidSignal)
	}
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return Signal{}, fmt.Errorf("%w: expected a JSON object or array", ErrInvalidSignal)
	}
	if !utf8.Valid(trimmed) {
		return Signal{}, fmt.Errorf("%w: body is not valid UTF-8", ErrInvalidSignal)
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return Signal{}, fmt.Errorf("%w: %v", ErrInvalidSignal, err)
	}

	return Signal{raw: buf.Bytes()}, nil
}

func (s Signal) Bytes() []byte {
	return s.raw
}

func (s Signal) String() string {
	return string(s.raw)
}
