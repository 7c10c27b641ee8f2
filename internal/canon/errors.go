package canon

import (
	"bytes"
	"fmt"
)

// ParseError reports malformed JSON input. Line and Column are 1-based;
// Column counts bytes.
type ParseError struct {
	Offset int
	Line   int
	Column int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON at line %d, column %d (offset %d): %s", e.Line, e.Column, e.Offset, e.Msg)
}

func newParseError(data []byte, offset int, format string, args ...any) *ParseError {
	if offset > len(data) {
		offset = len(data)
	}
	prefix := data[:offset]
	lineStart := bytes.LastIndexByte(prefix, '\n') + 1
	return &ParseError{
		Offset: offset,
		Line:   bytes.Count(prefix, []byte{'\n'}) + 1,
		Column: offset - lineStart + 1,
		Msg:    fmt.Sprintf(format, args...),
	}
}

// SerializationError reports a value that has no canonical representation.
// Path locates the value, e.g. $.items[2].price.
type SerializationError struct {
	Path string
	Msg  string
}

func (e *SerializationError) Error() string {
	if e.Path == "" {
		return "cannot serialize value: " + e.Msg
	}
	return fmt.Sprintf("cannot serialize value at %s: %s", e.Path, e.Msg)
}
