package canon

import (
	"bytes"
	"errors"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type parser struct {
	data     []byte
	pos      int
	depth    int
	maxDepth int
}

// Parse parses a complete JSON text into a value tree.
func Parse(data []byte) (*Value, error) {
	return ParseWithOptions(data, nil)
}

// ParseWithOptions is like Parse but honours opts.MaxDepth.
//
// Numbers are decoded to float64. Duplicate object keys keep the last
// value. Invalid UTF-8 decodes to U+FFFD; unpaired surrogate escapes are
// rejected.
func ParseWithOptions(data []byte, opts *Options) (*Value, error) {
	p := &parser{
		data:     data,
		maxDepth: opts.maxDepth(),
	}
	if bytes.HasPrefix(data, utf8BOM) {
		p.pos = len(utf8BOM)
	}

	p.skipWhitespace()
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if p.pos != len(p.data) {
		return nil, p.errorf(p.pos, "unexpected trailing content %q", p.data[p.pos])
	}
	return &v, nil
}

func (p *parser) errorf(offset int, format string, args ...any) *ParseError {
	return newParseError(p.data, offset, format, args...)
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) parseValue() (Value, error) {
	if p.pos >= len(p.data) {
		return Value{}, p.errorf(p.pos, "unexpected end of input")
	}
	switch c := p.data[p.pos]; {
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '"':
		s, err := p.parseString()
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	case c == 't':
		return Bool(true), p.expectLiteral("true")
	case c == 'f':
		return Bool(false), p.expectLiteral("false")
	case c == 'n':
		return Null(), p.expectLiteral("null")
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return Value{}, p.errorf(p.pos, "unexpected character %q", c)
	}
}

func (p *parser) expectLiteral(lit string) error {
	if !bytes.HasPrefix(p.data[p.pos:], []byte(lit)) {
		return p.errorf(p.pos, "invalid literal, expected %q", lit)
	}
	p.pos += len(lit)
	return nil
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return p.errorf(p.pos, "nesting depth exceeds maximum %d", p.maxDepth)
	}
	return nil
}

func (p *parser) parseObject() (Value, error) {
	start := p.pos
	if err := p.enter(); err != nil {
		return Value{}, err
	}
	defer func() { p.depth-- }()
	p.pos++ // {

	obj := Value{Kind: KindObject, Members: []Member{}}
	index := make(map[string]int)

	p.skipWhitespace()
	if p.pos < len(p.data) && p.data[p.pos] == '}' {
		p.pos++
		return obj, nil
	}
	for {
		p.skipWhitespace()
		if p.pos >= len(p.data) {
			return Value{}, p.errorf(p.pos, "unterminated object starting at offset %d", start)
		}
		if p.data[p.pos] != '"' {
			return Value{}, p.errorf(p.pos, "expected string for object key, found %q", p.data[p.pos])
		}
		key, err := p.parseString()
		if err != nil {
			return Value{}, err
		}
		p.skipWhitespace()
		if p.pos >= len(p.data) || p.data[p.pos] != ':' {
			return Value{}, p.errorf(p.pos, "expected ':' after object key %q", key)
		}
		p.pos++
		p.skipWhitespace()
		val, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		if i, dup := index[key]; dup {
			obj.Members[i].Value = val
		} else {
			index[key] = len(obj.Members)
			obj.Members = append(obj.Members, Member{Key: key, Value: val})
		}

		p.skipWhitespace()
		if p.pos >= len(p.data) {
			return Value{}, p.errorf(p.pos, "unterminated object starting at offset %d", start)
		}
		switch p.data[p.pos] {
		case ',':
			p.pos++
		case '}':
			p.pos++
			return obj, nil
		default:
			return Value{}, p.errorf(p.pos, "expected ',' or '}' in object, found %q", p.data[p.pos])
		}
	}
}

func (p *parser) parseArray() (Value, error) {
	start := p.pos
	if err := p.enter(); err != nil {
		return Value{}, err
	}
	defer func() { p.depth-- }()
	p.pos++ // [

	arr := Value{Kind: KindArray, Elems: []Value{}}

	p.skipWhitespace()
	if p.pos < len(p.data) && p.data[p.pos] == ']' {
		p.pos++
		return arr, nil
	}
	for {
		p.skipWhitespace()
		elem, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		arr.Elems = append(arr.Elems, elem)

		p.skipWhitespace()
		if p.pos >= len(p.data) {
			return Value{}, p.errorf(p.pos, "unterminated array starting at offset %d", start)
		}
		switch p.data[p.pos] {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return arr, nil
		default:
			return Value{}, p.errorf(p.pos, "expected ',' or ']' in array, found %q", p.data[p.pos])
		}
	}
}

func (p *parser) parseString() (string, error) {
	start := p.pos
	p.pos++ // opening quote

	var buf []byte
	for {
		if p.pos >= len(p.data) {
			return "", p.errorf(start, "unterminated string")
		}
		c := p.data[p.pos]
		switch {
		case c == '"':
			p.pos++
			return string(buf), nil
		case c == '\\':
			var err error
			buf, err = p.parseEscape(buf)
			if err != nil {
				return "", err
			}
		case c < 0x20:
			return "", p.errorf(p.pos, "invalid control character %#02x in string", c)
		case c < utf8.RuneSelf:
			buf = append(buf, c)
			p.pos++
		default:
			r, size := utf8.DecodeRune(p.data[p.pos:])
			if r == utf8.RuneError && size == 1 {
				buf = utf8.AppendRune(buf, utf8.RuneError)
			} else {
				buf = append(buf, p.data[p.pos:p.pos+size]...)
			}
			p.pos += size
		}
	}
}

func (p *parser) parseEscape(buf []byte) ([]byte, error) {
	escStart := p.pos
	p.pos++ // backslash
	if p.pos >= len(p.data) {
		return nil, p.errorf(escStart, "unterminated escape sequence")
	}
	c := p.data[p.pos]
	p.pos++
	switch c {
	case '"', '\\', '/':
		return append(buf, c), nil
	case 'b':
		return append(buf, '\b'), nil
	case 'f':
		return append(buf, '\f'), nil
	case 'n':
		return append(buf, '\n'), nil
	case 'r':
		return append(buf, '\r'), nil
	case 't':
		return append(buf, '\t'), nil
	case 'u':
		r, err := p.parseHex4(escStart)
		if err != nil {
			return nil, err
		}
		if utf16.IsSurrogate(r) {
			if r, err = p.completeSurrogate(r, escStart); err != nil {
				return nil, err
			}
		}
		return utf8.AppendRune(buf, r), nil
	default:
		return nil, p.errorf(escStart, "invalid escape sequence \\%c", c)
	}
}

// completeSurrogate consumes the \uDC00-\uDFFF escape that must follow the
// high surrogate r.
func (p *parser) completeSurrogate(r rune, escStart int) (rune, error) {
	if r >= 0xDC00 {
		return 0, p.errorf(escStart, "unpaired surrogate \\u%04x", r)
	}
	rest := p.data[p.pos:]
	if len(rest) < 6 || rest[0] != '\\' || rest[1] != 'u' {
		return 0, p.errorf(escStart, "unpaired surrogate \\u%04x", r)
	}
	lo, ok := decodeHex4(rest[2:6])
	if !ok || lo < 0xDC00 || lo > 0xDFFF {
		return 0, p.errorf(escStart, "unpaired surrogate \\u%04x", r)
	}
	p.pos += 6
	return utf16.DecodeRune(r, lo), nil
}

func (p *parser) parseHex4(escStart int) (rune, error) {
	if p.pos+4 > len(p.data) {
		return 0, p.errorf(escStart, "truncated \\u escape")
	}
	r, ok := decodeHex4(p.data[p.pos : p.pos+4])
	if !ok {
		return 0, p.errorf(escStart, "invalid \\u escape %q", p.data[escStart:p.pos+4])
	}
	p.pos += 4
	return r, nil
}

func decodeHex4(b []byte) (rune, bool) {
	var r rune
	for _, c := range b {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			r |= rune(c-'A') + 10
		default:
			return 0, false
		}
	}
	return r, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (p *parser) digits() int {
	n := 0
	for p.pos < len(p.data) && isDigit(p.data[p.pos]) {
		p.pos++
		n++
	}
	return n
}

// parseNumber follows the RFC 8259 number grammar and decodes the token as an
// IEEE-754 double. Out-of-range magnitudes become ±Inf and are rejected later
// by the serializer.
func (p *parser) parseNumber() (Value, error) {
	start := p.pos
	if p.data[p.pos] == '-' {
		p.pos++
	}
	switch {
	case p.pos >= len(p.data) || !isDigit(p.data[p.pos]):
		return Value{}, p.errorf(p.pos, "invalid number: expected digit")
	case p.data[p.pos] == '0':
		p.pos++
	default:
		p.digits()
	}
	if p.pos < len(p.data) && p.data[p.pos] == '.' {
		p.pos++
		if p.digits() == 0 {
			return Value{}, p.errorf(p.pos, "invalid number: expected digit after decimal point")
		}
	}
	if p.pos < len(p.data) && (p.data[p.pos] == 'e' || p.data[p.pos] == 'E') {
		p.pos++
		if p.pos < len(p.data) && (p.data[p.pos] == '+' || p.data[p.pos] == '-') {
			p.pos++
		}
		if p.digits() == 0 {
			return Value{}, p.errorf(p.pos, "invalid number: expected digit in exponent")
		}
	}

	tok := string(p.data[start:p.pos])
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Value{}, p.errorf(start, "invalid number %q", tok)
	}
	return Number(f), nil
}
