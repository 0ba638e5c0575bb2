package chunk

import "github.com/vobal-jb/uncrustify/pkg/token"

// The navigator is one primitive (scoped single step) plus a family of
// filtered walks defined as repeated stepping: keep stepping while the
// filter says "skip", return the chunk the moment it says "keep", return
// nil if the list ends first.

type direction int8

const (
	forward  direction = 1
	backward direction = -1
)

func (pc *Chunk) step(d direction) *Chunk {
	if pc == nil {
		return nil
	}
	if d == forward {
		return pc.next
	}
	return pc.prev
}

// advance performs one scoped step from pc.
//
// Under ScopePreproc, a start chunk inside a directive may not leave it:
// stepping onto a chunk with a different in-preprocessor flag yields nil.
// A start chunk outside a directive skips any directive chunks it meets.
func advance(pc *Chunk, scope Scope, d direction) *Chunk {
	if pc == nil {
		return nil
	}
	nx := pc.step(d)
	if scope == ScopeAll {
		return nx
	}
	if pc.flags.Test(token.FlagInPreproc) {
		// Fail to leave the preprocessor region.
		if nx != nil && !nx.flags.Test(token.FlagInPreproc) {
			return nil
		}
		return nx
	}
	// Not in a preprocessor: directives are transparent.
	for nx != nil && nx.flags.Test(token.FlagInPreproc) {
		nx = nx.step(d)
	}
	return nx
}

// search steps from cur in the given direction until pred(pc) == keep,
// returning that chunk, or nil when the list end (or a scope boundary) is
// reached first. The start chunk itself is never returned.
func search(cur *Chunk, pred func(*Chunk) bool, scope Scope, d direction, keep bool) *Chunk {
	pc := advance(cur, scope, d)
	for pc != nil && pred(pc) != keep {
		pc = advance(pc, scope, d)
	}
	return pc
}

// Next returns the next chunk under the given scope, nil at the end.
func (pc *Chunk) Next(scope Scope) *Chunk {
	return advance(pc, scope, forward)
}

// Prev returns the previous chunk under the given scope, nil at the start.
func (pc *Chunk) Prev(scope Scope) *Chunk {
	return advance(pc, scope, backward)
}

// NextNl returns the next newline chunk.
func (pc *Chunk) NextNl(scope Scope) *Chunk {
	return search(pc, (*Chunk).IsNewline, scope, forward, true)
}

// PrevNl returns the previous newline chunk.
func (pc *Chunk) PrevNl(scope Scope) *Chunk {
	return search(pc, (*Chunk).IsNewline, scope, backward, true)
}

// NextNc returns the next non-comment chunk.
func (pc *Chunk) NextNc(scope Scope) *Chunk {
	return search(pc, (*Chunk).IsComment, scope, forward, false)
}

// PrevNc returns the previous non-comment chunk.
func (pc *Chunk) PrevNc(scope Scope) *Chunk {
	return search(pc, (*Chunk).IsComment, scope, backward, false)
}

// NextNnl returns the next non-newline chunk.
func (pc *Chunk) NextNnl(scope Scope) *Chunk {
	return search(pc, (*Chunk).IsNewline, scope, forward, false)
}

// PrevNnl returns the previous non-newline chunk.
func (pc *Chunk) PrevNnl(scope Scope) *Chunk {
	return search(pc, (*Chunk).IsNewline, scope, backward, false)
}

// NextNcNnl returns the next chunk that is neither comment nor newline.
func (pc *Chunk) NextNcNnl(scope Scope) *Chunk {
	return search(pc, (*Chunk).IsCommentOrNewline, scope, forward, false)
}

// PrevNcNnl returns the previous chunk that is neither comment nor newline.
func (pc *Chunk) PrevNcNnl(scope Scope) *Chunk {
	return search(pc, (*Chunk).IsCommentOrNewline, scope, backward, false)
}

// PrevNcNnlNi returns the previous chunk that is neither comment, newline,
// nor marked ignored.
func (pc *Chunk) PrevNcNnlNi(scope Scope) *Chunk {
	return search(pc, (*Chunk).IsCommentNewlineOrIgnored, scope, backward, false)
}

// NextNcNnlNp returns the next chunk that is neither comment, newline, nor
// owned by a preprocessor directive.
func (pc *Chunk) NextNcNnlNp(scope Scope) *Chunk {
	return search(pc, (*Chunk).IsCommentNewlineOrPreproc, scope, forward, false)
}

// PrevNcNnlNp returns the previous chunk that is neither comment, newline,
// nor owned by a preprocessor directive.
func (pc *Chunk) PrevNcNnlNp(scope Scope) *Chunk {
	return search(pc, (*Chunk).IsCommentNewlineOrPreproc, scope, backward, false)
}

// NextNBlank returns the next chunk that is none of comment, newline, or
// blank (zero-length text).
func (pc *Chunk) NextNBlank(scope Scope) *Chunk {
	return search(pc, (*Chunk).IsCommentNewlineOrBlank, scope, forward, false)
}

// PrevNBlank returns the previous chunk that is none of comment, newline,
// or blank.
func (pc *Chunk) PrevNBlank(scope Scope) *Chunk {
	return search(pc, (*Chunk).IsCommentNewlineOrBlank, scope, backward, false)
}

// NextNvb returns the next chunk that is not a virtual brace.
func (pc *Chunk) NextNvb(scope Scope) *Chunk {
	return search(pc, (*Chunk).IsVBrace, scope, forward, false)
}

// PrevNvb returns the previous chunk that is not a virtual brace.
func (pc *Chunk) PrevNvb(scope Scope) *Chunk {
	return search(pc, (*Chunk).IsVBrace, scope, backward, false)
}

// NextNisq returns the next chunk that is not part of a balanced square
// token (open, close, or the combined '[]' token).
func (pc *Chunk) NextNisq(scope Scope) *Chunk {
	return search(pc, (*Chunk).IsBalancedSquare, scope, forward, false)
}

// PpaNextNcNnl is the preprocessor-aware variant of NextNcNnl. When the
// start chunk is inside a directive it treats line continuations as
// transparent, and it returns the newline that terminates the directive
// instead of skipping past it. Outside a directive it behaves like
// NextNcNnl with scope ALL. This boundary-return behavior is a deliberate
// exception to the usual "filter until match" rule, so that callers can
// reason about directive extents.
func (pc *Chunk) PpaNextNcNnl() *Chunk {
	if pc == nil {
		return nil
	}
	if !pc.flags.Test(token.FlagInPreproc) {
		return pc.NextNcNnl(ScopeAll)
	}
	for nx := pc.next; nx != nil; nx = nx.next {
		if !nx.flags.Test(token.FlagInPreproc) {
			// Left the directive. Surface a terminating newline; anything
			// else means the directive ended at end of file.
			if nx.IsNewline() {
				return nx
			}
			return nil
		}
		if nx.Is(token.NlCont) || nx.IsComment() {
			continue
		}
		return nx
	}
	return nil
}

// NextSsq returns the next chunk not in or part of balanced square
// brackets, treating stacked pairs (multi-dimensional array declarations)
// as one opaque unit. A chunk that is not square-related is returned as-is.
func (pc *Chunk) NextSsq() *Chunk {
	cur := pc
	depth := 0
	for cur != nil {
		switch cur.kind {
		case token.SquareOpen:
			depth++
		case token.SquareClose:
			if depth > 0 {
				depth--
			}
		case token.TSquare:
			// A self-balanced '[]' token, opaque on its own.
		default:
			if depth == 0 {
				return cur
			}
		}
		cur = cur.NextNcNnl(ScopeAll)
	}
	return nil
}

// PrevSsq is NextSsq walking backward: close brackets push, open brackets
// pop.
func (pc *Chunk) PrevSsq() *Chunk {
	cur := pc
	depth := 0
	for cur != nil {
		switch cur.kind {
		case token.SquareClose:
			depth++
		case token.SquareOpen:
			if depth > 0 {
				depth--
			}
		case token.TSquare:
		default:
			if depth == 0 {
				return cur
			}
		}
		cur = cur.PrevNcNnl(ScopeAll)
	}
	return nil
}
