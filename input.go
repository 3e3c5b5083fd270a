package locate

import (
	"bytes"
	"strings"
)

// Input constrains the buffer types a Span can view. The constraint lists
// string and []byte exactly (no ~): the helpers below dispatch on the
// dynamic type, which a named type would not match, and the two listed
// types cover text and binary parser input.
type Input interface {
	string | []byte
}

// The helpers give Span uniform length, slicing, indexed access, search and
// comparison over both instantiations. The type switches compile down to a
// direct call per instantiation; none of the operations copy the buffer.

// cut returns the half-open sub-range [start, end) of v as a view. Bounds
// outside v panic exactly as the underlying slice expression would.
func cut[T Input](v T, start, end int) T {
	switch b := any(v).(type) {
	case string:
		return any(b[start:end]).(T)
	case []byte:
		return any(b[start:end]).(T)
	default:
		panic("locate: unsupported input type")
	}
}

func byteAt[T Input](v T, i int) byte {
	switch b := any(v).(type) {
	case string:
		return b[i]
	case []byte:
		return b[i]
	default:
		panic("locate: unsupported input type")
	}
}

// index returns the index of the first occurrence of sub in v, or -1.
func index[T Input](v, sub T) int {
	switch b := any(v).(type) {
	case string:
		return strings.Index(b, any(sub).(string))
	case []byte:
		return bytes.Index(b, any(sub).([]byte))
	default:
		panic("locate: unsupported input type")
	}
}

// lastIndexByte returns the index of the last occurrence of c in v, or -1.
func lastIndexByte[T Input](v T, c byte) int {
	switch b := any(v).(type) {
	case string:
		return strings.LastIndexByte(b, c)
	case []byte:
		return bytes.LastIndexByte(b, c)
	default:
		panic("locate: unsupported input type")
	}
}

// countByte returns the number of occurrences of c in v.
func countByte[T Input](v T, c byte) int {
	switch b := any(v).(type) {
	case string:
		return strings.Count(b, string(c))
	case []byte:
		return bytes.Count(b, []byte{c})
	default:
		panic("locate: unsupported input type")
	}
}

func hasPrefix[T Input](v, prefix T) bool {
	switch b := any(v).(type) {
	case string:
		return strings.HasPrefix(b, any(prefix).(string))
	case []byte:
		return bytes.HasPrefix(b, any(prefix).([]byte))
	default:
		panic("locate: unsupported input type")
	}
}

// compare orders two buffers byte-wise, returning -1, 0 or +1.
func compare[T Input](a, b T) int {
	switch x := any(a).(type) {
	case string:
		return strings.Compare(x, any(b).(string))
	case []byte:
		return bytes.Compare(x, any(b).([]byte))
	default:
		panic("locate: unsupported input type")
	}
}

// asBytes converts v to a byte slice. This is a view for []byte input and a
// copy for string input (Go offers no byte view of a string).
func asBytes[T Input](v T) []byte {
	switch b := any(v).(type) {
	case string:
		return []byte(b)
	case []byte:
		return b
	default:
		panic("locate: unsupported input type")
	}
}

// asString converts v to a string. This is the identity for string input
// and a copy for []byte input.
func asString[T Input](v T) string {
	switch b := any(v).(type) {
	case string:
		return b
	case []byte:
		return string(b)
	default:
		panic("locate: unsupported input type")
	}
}
