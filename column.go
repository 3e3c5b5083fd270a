package locate

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// The column of a span is never stored; it is recomputed on demand from the
// root buffer and the span's offset. The three variants differ only in the
// unit of counting: bytes, Unicode scalar values, or grapheme clusters.

// lineBefore returns the portion of the span's line that precedes the span:
// the bytes of the root buffer between the previous line break (exclusive),
// or the start of the buffer, and the span's offset.
func (s Span[T]) lineBefore() T {
	end := s.Offset
	if n := len(s.root); end > n {
		// A zero-value or hand-built span has no root; treat the buffer
		// as empty rather than panic.
		end = n
	}
	line := cut(s.root, 0, end)
	if i := lastIndexByte(line, lineBreak); i >= 0 {
		line = cut(line, i+1, end)
	}
	return line
}

// ByteColumn returns the 1-based column of the span's first element,
// counted in raw bytes since the previous line break. Use this variant for
// byte-indexed content that needs no decoding.
func (s Span[T]) ByteColumn() int { return len(s.lineBefore()) + 1 }

// Column returns the 1-based column of the span's first element, counted in
// Unicode scalar values since the previous line break, the way a
// codepoint-addressed editor reports it. Multi-byte characters count once;
// continuation bytes are never counted separately.
//
// The offset must lie on a character boundary. If the input is malformed,
// the count is off by however the decoder resynchronizes; no error is
// reported.
func (s Span[T]) Column() int { return runeCount(s.lineBefore()) + 1 }

// GraphemeColumn returns the 1-based column of the span's first element,
// counted in grapheme clusters since the previous line break. Combining
// sequences and emoji count as a single column, matching what a terminal or
// display-oriented editor shows.
func (s Span[T]) GraphemeColumn() int { return graphemeCount(s.lineBefore()) + 1 }

func runeCount[T Input](v T) int {
	switch b := any(v).(type) {
	case string:
		return utf8.RuneCountInString(b)
	case []byte:
		return utf8.RuneCount(b)
	default:
		panic("locate: unsupported input type")
	}
}

func graphemeCount[T Input](v T) int {
	switch b := any(v).(type) {
	case string:
		return uniseg.GraphemeClusterCount(b)
	case []byte:
		n := 0
		state := -1
		for len(b) > 0 {
			_, b, _, state = uniseg.FirstGraphemeCluster(b, state)
			n++
		}
		return n
	default:
		panic("locate: unsupported input type")
	}
}
