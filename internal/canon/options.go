package canon

import "fmt"

// DefaultMaxDepth bounds array/object nesting accepted by the parser.
const DefaultMaxDepth = 1000

// KeyOrder selects how object members are sorted.
type KeyOrder int

const (
	// CodePointOrder sorts keys by their Unicode code point sequence.
	CodePointOrder KeyOrder = iota
	// UTF16Order sorts keys by UTF-16 code units as RFC 8785 §3.2.3 does.
	// It differs from CodePointOrder only for keys containing characters
	// outside the Basic Multilingual Plane.
	UTF16Order
)

func (o KeyOrder) String() string {
	switch o {
	case CodePointOrder:
		return "codepoint"
	case UTF16Order:
		return "utf16"
	default:
		return fmt.Sprintf("KeyOrder(%d)", int(o))
	}
}

// ParseKeyOrder maps "codepoint" and "utf16" to their KeyOrder.
func ParseKeyOrder(s string) (KeyOrder, error) {
	switch s {
	case "codepoint", "":
		return CodePointOrder, nil
	case "utf16":
		return UTF16Order, nil
	default:
		return 0, fmt.Errorf("unknown key order %q (want codepoint or utf16)", s)
	}
}

// Options tunes parsing and serialization. A nil *Options means defaults.
type Options struct {
	KeyOrder KeyOrder
	MaxDepth int
}

func (o *Options) maxDepth() int {
	if o != nil && o.MaxDepth > 0 {
		return o.MaxDepth
	}
	return DefaultMaxDepth
}

func (o *Options) keyOrder() KeyOrder {
	if o == nil {
		return CodePointOrder
	}
	return o.KeyOrder
}
