package canon

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Canonicalize parses data and returns its canonical serialization.
func Canonicalize(data []byte) ([]byte, error) {
	return CanonicalizeWithOptions(data, nil)
}

// CanonicalizeWithOptions is Canonicalize with explicit options.
func CanonicalizeWithOptions(data []byte, opts *Options) ([]byte, error) {
	v, err := ParseWithOptions(data, opts)
	if err != nil {
		return nil, err
	}
	return SerializeWithOptions(v, opts)
}

// Serialize renders v in canonical form. v is not modified.
func Serialize(v *Value) ([]byte, error) {
	return SerializeWithOptions(v, nil)
}

// SerializeWithOptions renders v in canonical form using opts.KeyOrder.
func SerializeWithOptions(v *Value, opts *Options) ([]byte, error) {
	if v == nil {
		return nil, &SerializationError{Msg: "nil value"}
	}
	s := &serializer{order: opts.keyOrder()}
	buf, err := s.value(nil, v)
	if err != nil {
		var se *SerializationError
		if errors.As(err, &se) {
			se.Path = "$" + se.Path
		}
		return nil, err
	}
	return buf, nil
}

type serializer struct {
	order KeyOrder
}

func (s *serializer) value(buf []byte, v *Value) ([]byte, error) {
	switch v.Kind {
	case KindNull:
		return append(buf, "null"...), nil
	case KindBool:
		return strconv.AppendBool(buf, v.Bool), nil
	case KindNumber:
		n, err := FormatNumber(v.Num)
		if err != nil {
			return nil, &SerializationError{Msg: err.Error()}
		}
		return append(buf, n...), nil
	case KindString:
		return appendString(buf, v.Str), nil
	case KindArray:
		return s.array(buf, v)
	case KindObject:
		return s.object(buf, v)
	default:
		return nil, &SerializationError{Msg: fmt.Sprintf("unknown value kind %d", int(v.Kind))}
	}
}

func (s *serializer) array(buf []byte, v *Value) ([]byte, error) {
	buf = append(buf, '[')
	for i := range v.Elems {
		if i > 0 {
			buf = append(buf, ',')
		}
		var err error
		buf, err = s.value(buf, &v.Elems[i])
		if err != nil {
			return nil, prefixPath(err, "["+strconv.Itoa(i)+"]")
		}
	}
	return append(buf, ']'), nil
}

type sortKey struct {
	member *Member
	units  []uint16
}

func (s *serializer) object(buf []byte, v *Value) ([]byte, error) {
	keys := make([]sortKey, len(v.Members))
	for i := range v.Members {
		keys[i].member = &v.Members[i]
		if s.order == UTF16Order {
			keys[i].units = utf16.Encode([]rune(v.Members[i].Key))
		}
	}
	if s.order == UTF16Order {
		slices.SortStableFunc(keys, func(a, b sortKey) int { return slices.Compare(a.units, b.units) })
	} else {
		// Byte order of UTF-8 is code point order.
		slices.SortStableFunc(keys, func(a, b sortKey) int { return strings.Compare(a.member.Key, b.member.Key) })
	}

	buf = append(buf, '{')
	for i, k := range keys {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendString(buf, k.member.Key)
		buf = append(buf, ':')
		var err error
		buf, err = s.value(buf, &k.member.Value)
		if err != nil {
			return nil, prefixPath(err, "."+k.member.Key)
		}
	}
	return append(buf, '}'), nil
}

func prefixPath(err error, segment string) error {
	var se *SerializationError
	if errors.As(err, &se) {
		se.Path = segment + se.Path
	}
	return err
}

// appendString quotes s with the minimal JSON escape set: the quote, the
// backslash and U+0000..U+001F. Everything else is copied as UTF-8.
func appendString(buf []byte, s string) []byte {
	buf = append(buf, '"')
	for _, r := range s {
		switch r {
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '\b':
			buf = append(buf, '\\', 'b')
		case '\t':
			buf = append(buf, '\\', 't')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\f':
			buf = append(buf, '\\', 'f')
		case '\r':
			buf = append(buf, '\\', 'r')
		default:
			if r < 0x20 {
				buf = append(buf, '\\', 'u', '0', '0', hexDigits[r>>4], hexDigits[r&0xF])
				continue
			}
			buf = utf8.AppendRune(buf, r)
		}
	}
	return append(buf, '"')
}

const hexDigits = "0123456789abcdef"
