package locate

// Slice returns the sub-span viewing the half-open range [start, end) of
// the current fragment. This is the single place where position bookkeeping
// happens: the removed prefix [0, start) is scanned once for line breaks,
// the new offset is the old offset advanced by start, and the new line is
// the old line advanced by the number of line breaks removed. Every other
// slicing operation routes through here.
//
// Bounds are the caller's contract: 0 <= start <= end <= s.Len(). Violating
// it panics exactly as slicing the underlying buffer would; no additional
// checking is performed.
func (s Span[T]) Slice(start, end int) Span[T] {
	return Span[T]{
		Offset:   s.Offset + start,
		Line:     s.Line + countByte(cut(s.Fragment, 0, start), lineBreak),
		Fragment: cut(s.Fragment, start, end),
		root:     s.root,
	}
}

// From returns the sub-span from start to the end of the fragment,
// dropping the prefix [0, start).
func (s Span[T]) From(start int) Span[T] { return s.Slice(start, s.Len()) }

// To returns the sub-span viewing the first end bytes of the fragment. The
// position is unchanged since nothing is removed from the front.
func (s Span[T]) To(end int) Span[T] { return s.Slice(0, end) }

// All returns a span viewing the whole fragment. The result is Equal to the
// receiver (the identity slice).
func (s Span[T]) All() Span[T] { return s.Slice(0, s.Len()) }
