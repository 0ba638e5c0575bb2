package chunk

import (
	"strings"

	"github.com/vobal-jb/uncrustify/pkg/lang"
	"github.com/vobal-jb/uncrustify/pkg/token"
)

// Classification predicates. Pure queries over a chunk's kind, flags, text
// and (where noted) immediate context. Every predicate answers false for a
// nil chunk.

// IsComment returns true for any comment variant: one-line C comment,
// multiline C comment, or C++ line comment.
func (pc *Chunk) IsComment() bool {
	return pc.Is(token.Comment) ||
		pc.Is(token.CommentMulti) ||
		pc.Is(token.CommentCpp) ||
		pc.Is(token.CommentEmbed)
}

// IsSingleLineComment returns true for comments confined to one line.
func (pc *Chunk) IsSingleLineComment() bool {
	return pc.Is(token.Comment) || pc.Is(token.CommentCpp)
}

// IsNewline returns true for a newline or a line continuation.
func (pc *Chunk) IsNewline() bool {
	return pc.Is(token.Newline) || pc.Is(token.NlCont)
}

// IsSemicolon returns true for a real or virtual semicolon.
func (pc *Chunk) IsSemicolon() bool {
	return pc.Is(token.Semicolon) || pc.Is(token.VSemicolon)
}

// IsBlank returns true for a zero-length chunk, the blank sentinel.
func (pc *Chunk) IsBlank() bool {
	return pc != nil && len(pc.text) == 0
}

// IsCommentOrNewline returns true for any comment or newline chunk.
func (pc *Chunk) IsCommentOrNewline() bool {
	return pc.IsComment() || pc.IsNewline()
}

// IsCommentNewlineOrIgnored also covers chunks marked ignored.
func (pc *Chunk) IsCommentNewlineOrIgnored() bool {
	return pc.IsCommentOrNewline() || pc.Is(token.Ignored)
}

// IsCommentNewlineOrPreproc also covers chunks owned by a directive.
func (pc *Chunk) IsCommentNewlineOrPreproc() bool {
	return pc.IsCommentOrNewline() || pc.IsPreproc()
}

// IsCommentNewlineOrBlank also covers blank sentinel chunks.
func (pc *Chunk) IsCommentNewlineOrBlank() bool {
	return pc.IsCommentOrNewline() || pc.IsBlank()
}

// IsCommentOrNewlineInPreproc returns true for comments and newlines that
// live inside a preprocessor directive.
func (pc *Chunk) IsCommentOrNewlineInPreproc() bool {
	return pc.IsPreproc() && pc.IsCommentOrNewline()
}

// IsPreproc returns true if the chunk is inside a preprocessor directive.
func (pc *Chunk) IsPreproc() bool {
	return pc != nil && pc.flags.Test(token.FlagInPreproc)
}

// SamePreproc returns true if both chunks agree on preprocessor membership.
// A nil on either side counts as agreement, so boundary edits stay legal.
func (pc *Chunk) SamePreproc(other *Chunk) bool {
	if pc == nil || other == nil {
		return true
	}
	return pc.flags.Test(token.FlagInPreproc) == other.flags.Test(token.FlagInPreproc)
}

// SafeToDeleteNl reports whether the newline chunk can be removed: its
// neighbors must share preprocessor membership, and the newline must not
// terminate a C++ line comment.
func (pc *Chunk) SafeToDeleteNl() bool {
	if pc == nil {
		return false
	}
	if pc.Prev(ScopeAll).Is(token.CommentCpp) {
		return false
	}
	return pc.Prev(ScopeAll).SamePreproc(pc.Next(ScopeAll))
}

// IsColon returns true for any colon role.
func (pc *Chunk) IsColon() bool {
	if pc == nil {
		return false
	}
	return token.CategoryOf(pc.kind) == token.CatColon
}

// IsBalancedSquare returns true for square-bracket tokens: open, close, or
// the combined '[]' token.
func (pc *Chunk) IsBalancedSquare() bool {
	return pc.Is(token.SquareOpen) ||
		pc.Is(token.SquareClose) ||
		pc.Is(token.TSquare)
}

// IsDocComment applies the doc-comment heuristic: a comment whose third
// character is '/', '!' or '@' ("///", "/*!", "//@", ...).
func (pc *Chunk) IsDocComment() bool {
	if !pc.IsComment() || len(pc.text) < 3 {
		return false
	}
	switch pc.text[2] {
	case '/', '!', '@':
		return true
	default:
		return false
	}
}

// IsTypeLike returns true for chunks that can be part of a type name.
func (pc *Chunk) IsTypeLike() bool {
	return pc.Is(token.Type) ||
		pc.Is(token.PtrType) ||
		pc.Is(token.Byref) ||
		pc.Is(token.DcMember) ||
		pc.Is(token.Qualifier) ||
		pc.Is(token.Struct) ||
		pc.Is(token.Enum) ||
		pc.Is(token.Union)
}

// IsWord returns true if the chunk's text starts like an identifier.
func (pc *Chunk) IsWord() bool {
	return pc.Len() >= 1 && lang.IsKw1(pc.text[0])
}

// IsStar returns true for a lone '*' that is not an overloaded-operator
// name.
func (pc *Chunk) IsStar() bool {
	return pc != nil &&
		len(pc.text) == 1 && pc.text[0] == '*' &&
		pc.kind != token.OperatorVal
}

// IsNullable returns true for the C# nullable marker '?'.
func (pc *Chunk) IsNullable(langs lang.Set) bool {
	return langs.Has(lang.CS) &&
		pc != nil && len(pc.text) == 1 && pc.text[0] == '?'
}

// IsMsRef returns true for the '^' managed-reference marker of C++/CLI.
func (pc *Chunk) IsMsRef(langs lang.Set) bool {
	return langs.Has(lang.CPP) &&
		pc != nil && len(pc.text) == 1 && pc.text[0] == '^' &&
		pc.kind != token.OperatorVal
}

// IsAddr returns true for an address-of/reference '&'. Inside a template
// argument list an '&' right after a comma or the opening angle is a
// non-type template parameter, not an address-of.
func (pc *Chunk) IsAddr() bool {
	if pc == nil {
		return false
	}
	if !pc.Is(token.Byref) &&
		!(len(pc.text) == 1 && pc.text[0] == '&' && pc.kind != token.OperatorVal) {
		return false
	}
	if pc.flags.Test(token.FlagInTemplate) {
		prev := pc.Prev(ScopeAll)
		if prev.Is(token.Comma) || prev.Is(token.AngleOpen) {
			return false
		}
	}
	return true
}

// IsPtrOperator returns true for any pointer-ish operator: '*', '&', the
// managed '^', or the C# nullable '?'.
func (pc *Chunk) IsPtrOperator(langs lang.Set) bool {
	return pc.IsStar() || pc.IsAddr() || pc.IsMsRef(langs) || pc.IsNullable(langs)
}

// IsPointerOrReference additionally covers chunks already classified Byref.
func (pc *Chunk) IsPointerOrReference(langs lang.Set) bool {
	return pc.IsPtrOperator(langs) || pc.Is(token.Byref)
}

// IsCppInheritanceAccessSpecifier returns true for "private", "protected"
// or "public" used in a C++ inheritance list.
func (pc *Chunk) IsCppInheritanceAccessSpecifier(langs lang.Set) bool {
	if !langs.Has(lang.CPP) || pc == nil {
		return false
	}
	if !pc.Is(token.Access) && !pc.Is(token.Qualifier) {
		return false
	}
	return strings.HasPrefix(pc.text, "private") ||
		strings.HasPrefix(pc.text, "protected") ||
		strings.HasPrefix(pc.text, "public")
}

// IsClosingBrace returns true for a real or virtual closing brace.
func (pc *Chunk) IsClosingBrace() bool {
	return pc.Is(token.BraceClose) || pc.Is(token.VBraceClose)
}

// IsOpeningBrace returns true for a real or virtual opening brace.
func (pc *Chunk) IsOpeningBrace() bool {
	return pc.Is(token.BraceOpen) || pc.Is(token.VBraceOpen)
}

// IsVBrace returns true for virtual braces: brace chunks that exist
// structurally but were never present in the source.
func (pc *Chunk) IsVBrace() bool {
	return pc.Is(token.VBraceOpen) || pc.Is(token.VBraceClose)
}

// IsParenOpen returns true for any opening paren variant.
func (pc *Chunk) IsParenOpen() bool {
	return pc.Is(token.ParenOpen) ||
		pc.Is(token.SParenOpen) ||
		pc.Is(token.TParenOpen) ||
		pc.Is(token.FParenOpen) ||
		pc.Is(token.LParenOpen)
}

// IsParenClose returns true for any closing paren variant.
func (pc *Chunk) IsParenClose() bool {
	return pc.Is(token.ParenClose) ||
		pc.Is(token.SParenClose) ||
		pc.Is(token.TParenClose) ||
		pc.Is(token.FParenClose)
}

// IsAttributeOrDeclSpec returns true for attribute and declspec chunks.
func (pc *Chunk) IsAttributeOrDeclSpec() bool {
	return pc.Is(token.Attribute) || pc.Is(token.DeclSpec)
}

// IsClassEnumStructUnion covers class, enum, enum class, struct and union.
func (pc *Chunk) IsClassEnumStructUnion() bool {
	return pc.IsClassStructUnion() || pc.IsEnum()
}

// IsClassOrStruct covers class and struct.
func (pc *Chunk) IsClassOrStruct() bool {
	return pc.Is(token.Class) || pc.Is(token.Struct)
}

// IsClassStructUnion covers class, struct and union.
func (pc *Chunk) IsClassStructUnion() bool {
	return pc.IsClassOrStruct() || pc.Is(token.Union)
}

// IsEnum covers enum and enum class.
func (pc *Chunk) IsEnum() bool {
	return pc.Is(token.Enum) || pc.Is(token.EnumClass)
}

// IsForIn reports whether pc opens the paren of an Objective-C
// for(...in...) loop. It scans forward inside the paren for the 'in'
// keyword, bounded by the closing paren.
func (pc *Chunk) IsForIn(langs lang.Set) bool {
	if !langs.Has(lang.OC) || !pc.Is(token.SParenOpen) {
		return false
	}
	if !pc.PrevNcNnl(ScopeAll).Is(token.For) {
		return false
	}
	next := pc
	for next != nil && next.IsNot(token.SParenClose) && next.IsNot(token.In) {
		next = next.NextNcNnl(ScopeAll)
	}
	return next.Is(token.In)
}
