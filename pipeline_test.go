package locate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// These tests exercise the span the way a combinator pipeline does: tokens
// are consumed off the front and the returned sub-spans are checked for
// exact (line, column, offset) tuples. The helpers below are a deliberately
// minimal stand-in for a combinator library; the span neither knows nor
// cares which one sits on top of it.

// skipSpace drops leading whitespace, advancing the position.
func skipSpace[T Input](s Span[T]) Span[T] {
	i := 0
	for i < s.Len() {
		switch s.At(i) {
		case ' ', '\t', '\r', '\n':
			i++
		default:
			return s.From(i)
		}
	}
	return s.From(i)
}

// token consumes the literal lit, ignoring leading whitespace, and returns
// the matched sub-span and the rest of the input.
func token[T Input](s Span[T], lit T) (match, rest Span[T], ok bool) {
	s = skipSpace(s)
	if !s.HasPrefix(lit) {
		return match, rest, false
	}
	return s.To(len(lit)), s.From(len(lit)), true
}

// position is the flattened view of a span used in expectation tables.
type position struct {
	Line    int
	Column  int
	Offset  int
	FragLen int
}

func positionsOf[T Input](spans []Span[T]) []position {
	out := make([]position, len(spans))
	for i, s := range spans {
		out[i] = position{Line: s.Line, Column: s.Column(), Offset: s.Offset, FragLen: s.Len()}
	}
	return out
}

// runSimpleParser consumes "foo", "bar", any number of "baz" and finally
// end of input, returning every matched span plus the empty end-of-input
// span.
func runSimpleParser[T Input](t *testing.T, input T) []Span[T] {
	t.Helper()
	foo, rest, ok := token(New(input), T("foo"))
	require.True(t, ok, `expected "foo"`)
	bar, rest, ok := token(rest, T("bar"))
	require.True(t, ok, `expected "bar"`)
	out := []Span[T]{foo, bar}
	for {
		baz, r, ok := token(rest, T("baz"))
		if !ok {
			break
		}
		out = append(out, baz)
		rest = r
	}
	rest = skipSpace(rest)
	require.True(t, rest.IsEmpty(), "no input should remain, got %q", rest.String())
	return append(out, rest)
}

func testSimpleParser[T Input](t *testing.T, input T, want []position) {
	t.Helper()
	got := runSimpleParser(t, input)
	if diff := cmp.Diff(want, positionsOf(got)); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
	// Every fragment must be element-wise equal to the sub-range of the
	// original buffer it claims to view.
	for i, s := range got {
		sub := cut(input, s.Offset, s.Offset+s.Len())
		require.Equal(t, 0, compare(sub, s.Fragment), "fragment %d content", i)
	}
}

func TestLocatesFragments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []position
	}{
		{
			name:  "single line",
			input: "foobarbaz",
			want: []position{
				{1, 1, 0, 3},
				{1, 4, 3, 3},
				{1, 7, 6, 3},
				{1, 10, 9, 0},
			},
		},
		{
			name:  "indented lines",
			input: " foo\n        bar\n            baz",
			want: []position{
				{1, 2, 1, 3},
				{2, 9, 13, 3},
				{3, 13, 29, 3},
				{3, 16, 32, 0},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name+" string", func(t *testing.T) {
			testSimpleParser(t, tt.input, tt.want)
		})
		t.Run(tt.name+" bytes", func(t *testing.T) {
			testSimpleParser(t, []byte(tt.input), tt.want)
		})
	}
}

// findToken locates the literal sub anywhere in the input, returning the
// matched sub-span and the input past the match.
func findToken[T Input](s Span[T], sub T) (match, rest Span[T], ok bool) {
	i := s.Index(sub)
	if i < 0 {
		return match, rest, false
	}
	return s.Slice(i, i+len(sub)), s.From(i + len(sub)), true
}

// plagueText quotes Camus' La Peste; the multi-byte characters before the
// matched tokens make scalar-value columns diverge from byte columns.
const plagueText = `Écoutant, en effet, les cris d’allégresse qui montaient de la ville,
Rieux se souvenait que cette allégresse était toujours menacée.
Car il savait ce que cette foule en joie ignorait,
et qu’on peut lire dans les livres,
que le bacille de la peste ne meurt ni ne disparaît jamais,
qu’il peut rester pendant des dizaines d’années endormi dans
les meubles et le linge, qu’il attend patiemment dans les chambres, les caves,
les malles, les mouchoirs et les paperasses,
et que, peut-être, le jour viendrait où,
pour le malheur et l’enseignement des hommes,
la peste réveillerait ses rats et les enverrait mourir dans une cité heureuse.`

func TestLocatesFragmentsInMultiByteText(t *testing.T) {
	bacille, rest, ok := findToken(New(plagueText), "le bacille")
	require.True(t, ok)
	out := []Span[string]{bacille}
	for {
		pronoun, r, ok := findToken(rest, "il ")
		if !ok {
			break
		}
		out = append(out, pronoun)
		rest = r
	}
	peste, rest, ok := findToken(rest, "la peste")
	require.True(t, ok)
	out = append(out, peste)

	// Consume through the closing period; nothing may remain.
	dot := rest.Index(".")
	require.GreaterOrEqual(t, dot, 0)
	rest = rest.From(dot + 1)
	require.True(t, rest.IsEmpty(), "no input should remain, got %q", rest.String())

	want := []position{
		{5, 5, 233, 10},
		{6, 4, 295, 3},
		{7, 29, 386, 3},
		{11, 1, 573, 8},
	}
	if diff := cmp.Diff(want, positionsOf(out)); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
	for i, s := range out {
		require.Equal(t, plagueText[s.Offset:s.Offset+s.Len()], s.Fragment, "fragment %d content", i)
	}
}

func TestSearchDelegation(t *testing.T) {
	root := New("head\nneedle tail")
	s := root.From(5) // viewing "needle tail"

	// Index is relative to the current fragment, not the root.
	require.Equal(t, 0, s.Index("needle"))
	require.Equal(t, 7, s.Index("tail"))

	match, ok := s.Find("tail")
	require.True(t, ok)
	require.Equal(t, "tail", match.String())
	require.Equal(t, 12, match.Offset)
	require.Equal(t, 2, match.Line)
	require.Equal(t, 8, match.Column())
}
