// A small key=value parser built on go-locate spans. It keeps no position
// bookkeeping of its own: every key, value and error location comes from
// the spans the slicing produces.
package main

import (
	"fmt"
	"os"

	locate "github.com/dpotapov/go-locate"
)

const sample = `# sample configuration
name = go-locate
café = "naïve value"
name = duplicate
broken line
`

type entry struct {
	key, value locate.Span[string]
}

func main() {
	entries, errs := parse(locate.New(sample))

	seen := map[string]locate.Span[string]{}
	for _, e := range entries {
		fmt.Printf("%d:%d\t%s = %s\n", e.key.Line, e.key.Column(), e.key, e.value)
		if first, ok := seen[e.key.String()]; ok {
			errs = append(errs, fmt.Errorf("%d:%d: duplicate key %q (first defined at %d:%d)",
				e.key.Line, e.key.Column(), e.key, first.Line, first.Column()))
			continue
		}
		seen[e.key.String()] = e.key
	}

	for _, err := range errs {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	if len(errs) > 0 {
		os.Exit(1)
	}
}

func parse(s locate.Span[string]) ([]entry, []error) {
	var (
		entries []entry
		errs    []error
	)
	for !s.IsEmpty() {
		var line locate.Span[string]
		if nl := s.Index("\n"); nl < 0 {
			line, s = s.All(), s.From(s.Len())
		} else {
			line, s = s.To(nl), s.From(nl+1)
		}
		line = trim(line)
		if line.IsEmpty() || line.HasPrefix("#") {
			continue
		}
		eq := line.Index("=")
		if eq < 0 {
			errs = append(errs, fmt.Errorf("%d:%d: missing '=' in %q", line.Line, line.Column(), line))
			continue
		}
		entries = append(entries, entry{
			key:   trim(line.To(eq)),
			value: trim(line.From(eq + 1)),
		})
	}
	return entries, errs
}

// trim drops surrounding spaces and tabs without losing the span's
// position.
func trim(s locate.Span[string]) locate.Span[string] {
	start := 0
	for start < s.Len() && (s.At(start) == ' ' || s.At(start) == '\t') {
		start++
	}
	end := s.Len()
	for end > start && (s.At(end-1) == ' ' || s.At(end-1) == '\t') {
		end--
	}
	return s.Slice(start, end)
}
