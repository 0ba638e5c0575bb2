package chunk

import "github.com/vobal-jb/uncrustify/pkg/token"

// Structural search: kind/text search with a level filter, bracket
// matching over the open/close pairing table, and a handful of line- and
// directive-extent helpers.

// matchesKindAtLevel is the kind search filter. A negative level means any
// level.
func matchesKindAtLevel(pc *Chunk, kind token.Kind, level int) bool {
	return pc != nil &&
		pc.kind == kind &&
		(level < 0 || pc.level == level)
}

// NextKind returns the next chunk of the given kind at the given level
// (AnyLevel to ignore the level filter).
func (pc *Chunk) NextKind(kind token.Kind, level int, scope Scope) *Chunk {
	return search(pc, func(c *Chunk) bool {
		return matchesKindAtLevel(c, kind, level)
	}, scope, forward, true)
}

// PrevKind returns the previous chunk of the given kind at the given level.
func (pc *Chunk) PrevKind(kind token.Kind, level int, scope Scope) *Chunk {
	return search(pc, func(c *Chunk) bool {
		return matchesKindAtLevel(c, kind, level)
	}, scope, backward, true)
}

// NextString returns the next chunk whose text equals str at the given
// level. An empty search string finds nothing.
func (pc *Chunk) NextString(str string, level int, scope Scope) *Chunk {
	if str == "" {
		return nil
	}
	return search(pc, func(c *Chunk) bool {
		return (level < 0 || c.level == level) && c.text == str
	}, scope, forward, true)
}

// PrevString returns the previous chunk whose text equals str at the given
// level.
func (pc *Chunk) PrevString(str string, level int, scope Scope) *Chunk {
	if str == "" {
		return nil
	}
	return search(pc, func(c *Chunk) bool {
		return (level < 0 || c.level == level) && c.text == str
	}, scope, backward, true)
}

// SkipToMatch returns the closing partner of an opening paren, brace,
// virtual brace, angle or square bracket, matched by the pairing table at
// the same level. A chunk that is not an opening kind is returned as-is.
func (pc *Chunk) SkipToMatch(scope Scope) *Chunk {
	if pc == nil {
		return nil
	}
	closing, ok := token.ClosingKind(pc.kind)
	if !ok {
		return pc
	}
	return pc.NextKind(closing, pc.level, scope)
}

// SkipToMatchRev returns the opening partner of a closing bracket-family
// chunk. A chunk that is not a closing kind is returned as-is.
func (pc *Chunk) SkipToMatchRev(scope Scope) *Chunk {
	if pc == nil {
		return nil
	}
	opening, ok := token.OpeningKind(pc.kind)
	if !ok {
		return pc
	}
	return pc.PrevKind(opening, pc.level, scope)
}

// SkipDcMember advances to the final word of a '::' member chain:
// given a::b::c it returns c. A chunk not followed by '::' is returned
// unchanged.
func (pc *Chunk) SkipDcMember(scope Scope) *Chunk {
	if pc == nil {
		return nil
	}
	cur := pc
	next := cur
	if !next.Is(token.DcMember) {
		next = cur.NextNcNnl(scope)
	}
	for next.Is(token.DcMember) {
		cur = next.NextNcNnl(scope)
		next = cur.NextNcNnl(scope)
	}
	return cur
}

// SkipDcMemberRev backs up to the first word of a '::' member chain.
func (pc *Chunk) SkipDcMemberRev(scope Scope) *Chunk {
	if pc == nil {
		return nil
	}
	cur := pc
	prev := cur
	if !prev.Is(token.DcMember) {
		prev = cur.PrevNcNnl(scope)
	}
	for prev.Is(token.DcMember) {
		cur = prev.PrevNcNnl(scope)
		prev = cur.PrevNcNnl(scope)
	}
	return cur
}

// PpStart returns the '#' chunk opening the directive pc lives in, or nil
// when pc is not inside a directive.
func (pc *Chunk) PpStart() *Chunk {
	if !pc.IsPreproc() {
		return nil
	}
	cur := pc
	for cur != nil && cur.IsNot(token.Preproc) {
		cur = cur.Prev(ScopePreproc)
	}
	return cur
}

// SearchNextCategory scans forward for the nearest chunk of the given broad
// category.
func (pc *Chunk) SearchNextCategory(cat token.Category) *Chunk {
	return search(pc, func(c *Chunk) bool {
		return token.CategoryOf(c.kind) == cat
	}, ScopeAll, forward, true)
}

// SearchPrevCategory scans backward for the nearest chunk of the given
// broad category.
func (pc *Chunk) SearchPrevCategory(cat token.Category) *Chunk {
	return search(pc, func(c *Chunk) bool {
		return token.CategoryOf(c.kind) == cat
	}, ScopeAll, backward, true)
}

// SameLine returns true when no newline chunk lies strictly between start
// and end. The endpoints themselves are not inspected.
func SameLine(start, end *Chunk) bool {
	if start == nil {
		return false
	}
	for pc := start.Next(ScopeAll); pc != nil && pc != end; pc = pc.Next(ScopeAll) {
		if pc.Is(token.Newline) {
			return false
		}
	}
	return true
}

// IsNewlineBetween returns true if at least one newline chunk lies between
// start and end, endpoints excluded.
func IsNewlineBetween(start, end *Chunk) bool {
	if start == nil {
		return false
	}
	for pc := start.Next(ScopeAll); pc != nil && pc != end; pc = pc.Next(ScopeAll) {
		if pc.IsNewline() {
			return true
		}
	}
	return false
}
