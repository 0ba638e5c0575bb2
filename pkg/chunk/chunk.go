// Package chunk implements the chunk list that every formatting pass works
// on: a doubly-linked sequence of classified tokens with structural metadata
// (nesting level, parent construct, context flags) plus scope-aware
// navigation, structural search, classification predicates, and the audited
// mutation entry points.
//
// The dominant outcome of every lookup is absence, not failure: traversal
// and search return nil when nothing matches, and every predicate treats a
// nil chunk as false.
package chunk

import "github.com/vobal-jb/uncrustify/pkg/token"

// AnyLevel disables the level filter in the kind/text search functions.
const AnyLevel = -1

// Scope selects the traversal policy with respect to preprocessor regions.
//
// ScopeAll returns the literal next/previous chunk. ScopePreproc keeps
// traversal inside the directive when the start chunk is inside one
// (reaching the boundary yields nil), and treats directives as transparent
// when the start chunk is outside.
type Scope uint8

// Traversal scopes.
const (
	ScopeAll Scope = iota
	ScopePreproc
)

// Chunk is one classified token plus its structural metadata and list links.
// Kind, parent kind and flags are written only through the mutation layer
// (SetKind and friends); level and linkage are owned by the Store.
type Chunk struct {
	kind   token.Kind
	parent token.Kind
	flags  token.Flags
	level  int
	text   string

	origLine int
	origCol  int

	prev *Chunk
	next *Chunk
}

// New builds an unlinked chunk, ready to hand to a Store. The lexer is the
// usual caller.
func New(kind token.Kind, text string, line, col, level int, flags token.Flags) *Chunk {
	return &Chunk{
		kind:     kind,
		text:     text,
		origLine: line,
		origCol:  col,
		level:    level,
		flags:    flags,
	}
}

// Kind returns the token kind.
func (pc *Chunk) Kind() token.Kind {
	if pc == nil {
		return token.None
	}
	return pc.kind
}

// ParentKind returns the kind of the enclosing construct that caused this
// chunk's classification, token.None when unset.
func (pc *Chunk) ParentKind() token.Kind {
	if pc == nil {
		return token.None
	}
	return pc.parent
}

// Flags returns the context flag bit-set.
func (pc *Chunk) Flags() token.Flags {
	if pc == nil {
		return token.FlagNone
	}
	return pc.flags
}

// Level returns the nesting depth at this chunk's position.
func (pc *Chunk) Level() int {
	if pc == nil {
		return 0
	}
	return pc.level
}

// Text returns the literal source bytes of the token. Zero length means a
// blank sentinel chunk, not an error.
func (pc *Chunk) Text() string {
	if pc == nil {
		return ""
	}
	return pc.text
}

// Len returns the text length in bytes.
func (pc *Chunk) Len() int {
	if pc == nil {
		return 0
	}
	return len(pc.text)
}

// OrigLine returns the 1-based source line the token came from.
func (pc *Chunk) OrigLine() int {
	if pc == nil {
		return 0
	}
	return pc.origLine
}

// OrigCol returns the 1-based source column the token came from.
func (pc *Chunk) OrigCol() int {
	if pc == nil {
		return 0
	}
	return pc.origCol
}

// Is returns true if the chunk exists and has the given kind.
func (pc *Chunk) Is(k token.Kind) bool {
	return pc != nil && pc.kind == k
}

// IsNot returns true if the chunk exists and does not have the given kind.
func (pc *Chunk) IsNot(k token.Kind) bool {
	return pc != nil && pc.kind != k
}

// IsString returns true if the chunk exists and its text equals s.
func (pc *Chunk) IsString(s string) bool {
	return pc != nil && pc.text == s
}

// IsStringFold is IsString ignoring ASCII case.
func (pc *Chunk) IsStringFold(s string) bool {
	if pc == nil || len(pc.text) != len(s) {
		return false
	}
	for i := 0; i < len(s); i++ {
		a, b := lowerASCII(pc.text[i]), lowerASCII(s[i])
		if a != b {
			return false
		}
	}
	return true
}

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// ComparePosition orders two chunks by source position: negative if pc comes
// before other, zero if the positions are identical, positive otherwise.
func (pc *Chunk) ComparePosition(other *Chunk) int {
	switch {
	case pc.OrigLine() != other.OrigLine():
		if pc.OrigLine() < other.OrigLine() {
			return -1
		}
		return 1
	case pc.OrigCol() != other.OrigCol():
		if pc.OrigCol() < other.OrigCol() {
			return -1
		}
		return 1
	default:
		return 0
	}
}
