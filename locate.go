// Package locate provides a position-tracking wrapper for parser input.
//
// A Span views an immutable source buffer (a string or a byte slice) and
// carries the absolute byte offset and 1-based line number of the first
// element it views. A parser pipeline slices a Span the same way it would
// slice the raw buffer; the position bookkeeping travels with the Span, so
// the pipeline itself never has to know about lines or columns. Application
// code asks the final fragments for Line, Column or Offset when producing
// diagnostics.
//
// Slicing scans only the bytes removed from the front of a fragment, so a
// forward-only pipeline pays linear total cost over the whole input.
// Re-slicing a large prefix repeatedly from the root span re-scans that
// prefix each time.
package locate

// lineBreak is the element that terminates a line. Only '\n' advances the
// line counter; '\r' is treated as an ordinary byte.
const lineBreak = '\n'

// Span is a view into a source buffer together with the position of that
// view. The zero value is an empty span with no position; use New to build
// the root span for a buffer and derive all others from it by slicing.
//
// Column is deliberately not stored: it is derived from Offset and the root
// buffer on demand (see Column, ByteColumn, GraphemeColumn), so it can never
// go stale after slicing.
type Span[T Input] struct {
	// Offset is the absolute byte offset of the first element of Fragment
	// within the root buffer. It never decreases along a slicing chain.
	Offset int

	// Line is the 1-based line number of the first element of Fragment.
	Line int

	// Fragment is the remaining content: a view into the root buffer,
	// never a copy.
	Fragment T

	// root is the original un-sliced buffer. Column computation scans it
	// backward from Offset. It is a shared view, not a copy, and takes no
	// part in equality, ordering or display.
	root T
}

// New returns the root span for input: offset 0, line 1, viewing the whole
// buffer. The buffer must not be mutated while spans derived from it are in
// use.
func New[T Input](input T) Span[T] {
	return Span[T]{Offset: 0, Line: 1, Fragment: input, root: input}
}

// Len returns the length of the fragment in bytes.
func (s Span[T]) Len() int { return len(s.Fragment) }

// IsEmpty reports whether the fragment is empty.
func (s Span[T]) IsEmpty() bool { return len(s.Fragment) == 0 }

// At returns the i'th byte of the fragment. Indexing past the end panics,
// exactly as it would on the underlying buffer.
func (s Span[T]) At(i int) byte { return byteAt(s.Fragment, i) }

// Bytes returns the fragment as raw bytes for byte-oriented matching. For
// byte-slice input this is the underlying view; for string input Go
// requires a copy.
func (s Span[T]) Bytes() []byte { return asBytes(s.Fragment) }

// String renders the fragment content only, without position metadata.
func (s Span[T]) String() string { return asString(s.Fragment) }

// Equal reports whether two spans denote the same content at the same
// position: equal Offset, Line and Fragment. The root buffer reference and
// the derived column are deliberately not part of equality.
func (s Span[T]) Equal(other Span[T]) bool {
	return s.Offset == other.Offset && s.Line == other.Line &&
		compare(s.Fragment, other.Fragment) == 0
}

// Compare orders spans structurally: by Offset, then Line, then fragment
// content. The result is -1, 0 or +1.
func (s Span[T]) Compare(other Span[T]) int {
	if s.Offset != other.Offset {
		if s.Offset < other.Offset {
			return -1
		}
		return 1
	}
	if s.Line != other.Line {
		if s.Line < other.Line {
			return -1
		}
		return 1
	}
	return compare(s.Fragment, other.Fragment)
}

// HasPrefix reports whether the fragment begins with the literal prefix.
func (s Span[T]) HasPrefix(prefix T) bool { return hasPrefix(s.Fragment, prefix) }

// Index returns the index of the first occurrence of sub within the
// fragment, relative to the fragment's own start, or -1 if sub is not
// present. Callers recover the absolute position by slicing at the returned
// index and reading the sub-span's Offset.
func (s Span[T]) Index(sub T) int { return index(s.Fragment, sub) }

// Find locates the first occurrence of sub within the fragment and returns
// the matching sub-span with its offset and line recomputed. The second
// result is false if sub is not present.
func (s Span[T]) Find(sub T) (Span[T], bool) {
	i := index(s.Fragment, sub)
	if i < 0 {
		var zero Span[T]
		return zero, false
	}
	return s.Slice(i, i+len(sub)), true
}
