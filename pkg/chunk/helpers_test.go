package chunk_test

import (
	"strings"
	"testing"

	"github.com/vobal-jb/uncrustify/pkg/chunk"
	"github.com/vobal-jb/uncrustify/pkg/token"
)

// tok is a compact chunk spec for building test lists.
type tok struct {
	kind  token.Kind
	text  string
	line  int
	col   int
	level int
	flags token.Flags
}

// buildList appends the given specs to a fresh store and returns the store
// plus the stored chunks in order.
func buildList(t *testing.T, specs []tok) (*chunk.Store, []*chunk.Chunk) {
	t.Helper()

	s := chunk.NewStore()
	out := make([]*chunk.Chunk, 0, len(specs))
	for _, sp := range specs {
		pc := s.Append(chunk.New(sp.kind, sp.text, sp.line, sp.col, sp.level, sp.flags))
		if pc == nil {
			t.Fatalf("Append returned nil for %q", sp.text)
		}
		out = append(out, pc)
	}
	return s, out
}

// listTexts walks the list head to tail and returns the chunk texts, for
// asserting order after structural edits.
func listTexts(s *chunk.Store) string {
	var b strings.Builder
	for pc := s.Head(); pc != nil; pc = pc.Next(chunk.ScopeAll) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(pc.Text())
	}
	return b.String()
}

// checkLinks verifies the doubly-linked invariants: forward and backward
// walks agree, endpoints terminate, and the count matches.
func checkLinks(t *testing.T, s *chunk.Store) {
	t.Helper()

	n := 0
	var last *chunk.Chunk
	for pc := s.Head(); pc != nil; pc = pc.Next(chunk.ScopeAll) {
		if pc.Prev(chunk.ScopeAll) != last {
			t.Fatalf("broken prev link at chunk %d (%q)", n, pc.Text())
		}
		last = pc
		n++
	}
	if last != s.Tail() {
		t.Fatal("forward walk did not end at Tail()")
	}
	if n != s.Len() {
		t.Fatalf("walk found %d chunks, Len() = %d", n, s.Len())
	}
}
