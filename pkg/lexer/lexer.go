// Package lexer turns source bytes into the chunk list the formatting
// passes operate on. It performs a single pass over the content, tracking
// nesting level, preprocessor extent, and source positions, and appends
// chunks to a fresh Store in source order.
//
// The lexer covers the common core of the C family: comments, strings,
// character and numeric literals, identifiers and keywords, preprocessor
// directives with line continuations, and the bracket family with level
// bookkeeping. Finer classification (angle brackets, colon roles, virtual
// braces) is the business of later passes.
package lexer

import (
	"github.com/vobal-jb/uncrustify/pkg/chunk"
	"github.com/vobal-jb/uncrustify/pkg/lang"
	"github.com/vobal-jb/uncrustify/pkg/token"
)

type lexer struct {
	src   []byte
	pos   int
	line  int
	col   int
	langs lang.Set

	level  int
	opens  []token.Kind // expected closing kinds, innermost last
	inPP   bool         // inside a preprocessor directive
	ppWord bool         // the next word names the directive

	store *chunk.Store
	last  *chunk.Chunk
}

// Tokenize lexes src into a new chunk list. The language set gates a few
// keyword classifications; an empty set behaves like plain C.
func Tokenize(src []byte, langs lang.Set) *chunk.Store {
	lx := &lexer{
		src:   src,
		line:  1,
		col:   1,
		langs: langs,
		store: chunk.NewStore(),
	}
	lx.run()
	return lx.store
}

func (lx *lexer) run() {
	for lx.pos < len(lx.src) {
		b := lx.src[lx.pos]
		switch {
		case b == '\n' || b == '\r':
			lx.lexNewline()
		case b == ' ' || b == '\t':
			lx.skipBlanks()
		case b == '\\' && lx.peekNewline(1):
			lx.lexContinuation()
		case b == '/' && lx.peek(1) == '/':
			lx.lexLineComment()
		case b == '/' && lx.peek(1) == '*':
			lx.lexBlockComment()
		case b == '#' && !lx.inPP && lx.atLineStart():
			lx.lexPreprocStart()
		case b == '"' || b == '\'':
			lx.lexQuoted(b)
		case b >= '0' && b <= '9':
			lx.lexNumber()
		case lang.IsKw1(b):
			lx.lexWord()
		default:
			lx.lexPunct()
		}
	}
}

func (lx *lexer) peek(off int) byte {
	if lx.pos+off >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos+off]
}

func (lx *lexer) peekNewline(off int) bool {
	b := lx.peek(off)
	return b == '\n' || b == '\r'
}

// atLineStart returns true if only blanks precede the current byte on its
// line.
func (lx *lexer) atLineStart() bool {
	for i := lx.pos - 1; i >= 0; i-- {
		switch lx.src[i] {
		case ' ', '\t':
			continue
		case '\n', '\r':
			return true
		default:
			return false
		}
	}
	return true
}

// take consumes n bytes and returns them, advancing the column.
func (lx *lexer) take(n int) string {
	s := string(lx.src[lx.pos : lx.pos+n])
	lx.pos += n
	lx.col += n
	return s
}

func (lx *lexer) emit(kind token.Kind, text string, line, col int) *chunk.Chunk {
	var flags token.Flags
	if lx.inPP {
		flags = token.FlagInPreproc
	}
	pc := lx.store.Append(chunk.New(kind, text, line, col, lx.level, flags))
	lx.last = pc
	return pc
}

func (lx *lexer) skipBlanks() {
	for lx.pos < len(lx.src) {
		b := lx.src[lx.pos]
		if b != ' ' && b != '\t' {
			return
		}
		lx.pos++
		lx.col++
	}
}

// lexNewline emits a Newline chunk. A newline ends any open preprocessor
// directive; the newline itself is outside the directive, so that scoped
// traversal can detect the boundary.
func (lx *lexer) lexNewline() {
	line, col := lx.line, lx.col
	n := 1
	if lx.src[lx.pos] == '\r' && lx.peek(1) == '\n' {
		n = 2
	}
	text := string(lx.src[lx.pos : lx.pos+n])
	lx.pos += n
	lx.inPP = false
	lx.ppWord = false
	lx.emit(token.Newline, text, line, col)
	lx.line++
	lx.col = 1
}

// lexContinuation emits the backslash-newline pair as one NlCont chunk.
// Inside a directive the continuation keeps the directive open.
func (lx *lexer) lexContinuation() {
	line, col := lx.line, lx.col
	n := 2
	if lx.peek(1) == '\r' && lx.peek(2) == '\n' {
		n = 3
	}
	text := string(lx.src[lx.pos : lx.pos+n])
	lx.pos += n
	lx.emit(token.NlCont, text, line, col)
	lx.line++
	lx.col = 1
}

func (lx *lexer) lexLineComment() {
	line, col := lx.line, lx.col
	start := lx.pos
	for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' && lx.src[lx.pos] != '\r' {
		lx.pos++
		lx.col++
	}
	lx.emit(token.CommentCpp, string(lx.src[start:lx.pos]), line, col)
}

func (lx *lexer) lexBlockComment() {
	line, col := lx.line, lx.col
	start := lx.pos
	lx.pos += 2
	lx.col += 2
	multi := false
	for lx.pos < len(lx.src) {
		b := lx.src[lx.pos]
		if b == '*' && lx.peek(1) == '/' {
			lx.pos += 2
			lx.col += 2
			break
		}
		if b == '\n' {
			multi = true
			lx.line++
			lx.col = 1
		} else {
			lx.col++
		}
		lx.pos++
	}
	kind := token.Comment
	if multi {
		kind = token.CommentMulti
	}
	lx.emit(kind, string(lx.src[start:lx.pos]), line, col)
}

// lexPreprocStart opens a directive: the '#' chunk, flagged in-preproc like
// everything up to the terminating newline.
func (lx *lexer) lexPreprocStart() {
	line, col := lx.line, lx.col
	lx.inPP = true
	lx.ppWord = true
	text := lx.take(1)
	lx.emit(token.Preproc, text, line, col)
}

var ppKinds = map[string]token.Kind{
	"define":  token.PpDefine,
	"include": token.PpInclude,
	"if":      token.PpIf,
	"ifdef":   token.PpIf,
	"ifndef":  token.PpIf,
	"elif":    token.PpElse,
	"else":    token.PpElse,
	"endif":   token.PpEndif,
}

var keywordKinds = map[string]token.Kind{
	"if":        token.If,
	"else":      token.Else,
	"for":       token.For,
	"while":     token.While,
	"do":        token.Do,
	"switch":    token.Switch,
	"return":    token.Return,
	"class":     token.Class,
	"struct":    token.Struct,
	"union":     token.Union,
	"enum":      token.Enum,
	"template":  token.Template,
	"private":   token.Access,
	"protected": token.Access,
	"public":    token.Access,
	"const":     token.Qualifier,
	"volatile":  token.Qualifier,
	"static":    token.Qualifier,
	"inline":    token.Qualifier,
	"virtual":   token.Qualifier,
	"typename":  token.Type,
	"operator":  token.OperatorVal,
}

func (lx *lexer) lexWord() {
	line, col := lx.line, lx.col
	start := lx.pos
	for lx.pos < len(lx.src) && lang.IsKw2(lx.src[lx.pos]) {
		lx.pos++
		lx.col++
	}
	text := string(lx.src[start:lx.pos])

	if lx.ppWord {
		lx.ppWord = false
		kind, ok := ppKinds[text]
		if !ok {
			kind = token.PpOther
		}
		lx.emit(kind, text, line, col)
		return
	}

	kind, ok := keywordKinds[text]
	if !ok {
		kind = token.Word
	}
	// 'in' is a keyword only where the language has for-in loops.
	if text == "in" && lx.langs.Has(lang.OC) {
		kind = token.In
	}
	lx.emit(kind, text, line, col)
}

func (lx *lexer) lexNumber() {
	line, col := lx.line, lx.col
	start := lx.pos
	for lx.pos < len(lx.src) {
		b := lx.src[lx.pos]
		if lang.IsKw2(b) || b == '.' {
			lx.pos++
			lx.col++
			continue
		}
		break
	}
	lx.emit(token.Number, string(lx.src[start:lx.pos]), line, col)
}

func (lx *lexer) lexQuoted(quote byte) {
	line, col := lx.line, lx.col
	start := lx.pos
	lx.pos++
	lx.col++
	for lx.pos < len(lx.src) {
		b := lx.src[lx.pos]
		if b == '\\' && lx.pos+1 < len(lx.src) {
			lx.pos += 2
			lx.col += 2
			continue
		}
		lx.pos++
		lx.col++
		if b == quote || b == '\n' {
			break
		}
	}
	lx.emit(token.String, string(lx.src[start:lx.pos]), line, col)
}

// sparenKeywords are the keywords whose following paren is an SParen.
var sparenKeywords = map[token.Kind]bool{
	token.If:     true,
	token.For:    true,
	token.While:  true,
	token.Switch: true,
}

func (lx *lexer) lexPunct() {
	line, col := lx.line, lx.col

	switch b := lx.src[lx.pos]; b {
	case '(':
		open := token.ParenOpen
		prev := lx.lastCode()
		switch {
		case sparenKeywords[prev.Kind()]:
			open = token.SParenOpen
		case prev.Is(token.Word) || prev.Is(token.FuncCall):
			open = token.FParenOpen
		}
		lx.openBracket(open, lx.take(1), line, col)
	case '{':
		lx.openBracket(token.BraceOpen, lx.take(1), line, col)
	case '[':
		if lx.peek(1) == ']' {
			lx.emit(token.TSquare, lx.take(2), line, col)
			return
		}
		lx.openBracket(token.SquareOpen, lx.take(1), line, col)
	case ')', '}', ']':
		lx.closeBracket(lx.take(1), line, col)
	case ';':
		lx.emit(token.Semicolon, lx.take(1), line, col)
	case ',':
		lx.emit(token.Comma, lx.take(1), line, col)
	case ':':
		if lx.peek(1) == ':' {
			lx.emit(token.DcMember, lx.take(2), line, col)
			return
		}
		lx.emit(token.Colon, lx.take(1), line, col)
	case '*':
		lx.emit(token.Star, lx.take(1), line, col)
	case '&':
		if lx.peek(1) == '&' {
			lx.emit(token.CompareOp, lx.take(2), line, col)
			return
		}
		lx.emit(token.Amp, lx.take(1), line, col)
	case '^':
		lx.emit(token.Caret, lx.take(1), line, col)
	case '?':
		lx.emit(token.Question, lx.take(1), line, col)
	case '!':
		if lx.peek(1) == '=' {
			lx.emit(token.CompareOp, lx.take(2), line, col)
			return
		}
		lx.emit(token.Not, lx.take(1), line, col)
	case '=':
		if lx.peek(1) == '=' {
			lx.emit(token.CompareOp, lx.take(2), line, col)
			return
		}
		lx.emit(token.Assign, lx.take(1), line, col)
	case '<', '>':
		if lx.peek(1) == '=' {
			lx.emit(token.CompareOp, lx.take(2), line, col)
			return
		}
		lx.emit(token.CompareOp, lx.take(1), line, col)
	case '+', '-', '/', '%', '|', '~':
		lx.emit(token.Arith, lx.take(1), line, col)
	case '.':
		if lx.peek(1) == '.' && lx.peek(2) == '.' {
			lx.emit(token.Other, lx.take(3), line, col)
			return
		}
		lx.emit(token.Other, lx.take(1), line, col)
	default:
		lx.emit(token.Other, lx.take(1), line, col)
	}
}

// lastCode returns the most recent chunk that is neither comment nor
// newline, for context-sensitive classification of '('.
func (lx *lexer) lastCode() *chunk.Chunk {
	pc := lx.last
	for pc != nil && pc.IsCommentOrNewline() {
		pc = pc.Prev(chunk.ScopeAll)
	}
	return pc
}

// openBracket emits an opening bracket at the current level and descends.
func (lx *lexer) openBracket(kind token.Kind, text string, line, col int) {
	lx.emit(kind, text, line, col)
	closing, ok := token.ClosingKind(kind)
	if !ok {
		return
	}
	lx.opens = append(lx.opens, closing)
	lx.level++
}

// closeBracket ascends and emits the closing partner recorded when the
// bracket was opened. An unbalanced close is emitted as Junk at the
// current level rather than corrupting the level counter.
func (lx *lexer) closeBracket(text string, line, col int) {
	if len(lx.opens) == 0 {
		lx.emit(token.Junk, text, line, col)
		return
	}
	closing := lx.opens[len(lx.opens)-1]
	if !matchesCloseText(closing, text) {
		lx.emit(token.Junk, text, line, col)
		return
	}
	lx.opens = lx.opens[:len(lx.opens)-1]
	lx.level--
	lx.emit(closing, text, line, col)
}

func matchesCloseText(kind token.Kind, text string) bool {
	switch text {
	case ")":
		return kind == token.ParenClose || kind == token.SParenClose ||
			kind == token.FParenClose || kind == token.TParenClose
	case "}":
		return kind == token.BraceClose
	case "]":
		return kind == token.SquareClose
	default:
		return false
	}
}
