package token

// Category is a broad grouping of kinds used by the category search helpers,
// where a caller wants "any comment" or "any colon" rather than one exact kind.
type Category uint8

// Categories.
const (
	CatOther Category = iota
	CatComment
	CatNewline
	CatWord
	CatBrace
	CatParen
	CatSquare
	CatAngle
	CatColon
	CatPreproc
	CatSeparator
	CatOperator
)

var categoryNames = map[Category]string{
	CatOther:     "other",
	CatComment:   "comment",
	CatNewline:   "newline",
	CatWord:      "word",
	CatBrace:     "brace",
	CatParen:     "paren",
	CatSquare:    "square",
	CatAngle:     "angle",
	CatColon:     "colon",
	CatPreproc:   "preproc",
	CatSeparator: "separator",
	CatOperator:  "operator",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "other"
}

// CategoryOf maps a kind onto its broad category.
func CategoryOf(k Kind) Category {
	switch k {
	case Comment, CommentMulti, CommentCpp, CommentEmbed:
		return CatComment
	case Newline, NlCont:
		return CatNewline
	case Word, Type, Qualifier, Access, Number, String:
		return CatWord
	case BraceOpen, BraceClose, VBraceOpen, VBraceClose:
		return CatBrace
	case ParenOpen, ParenClose, SParenOpen, SParenClose,
		FParenOpen, FParenClose, TParenOpen, TParenClose, LParenOpen:
		return CatParen
	case SquareOpen, SquareClose, TSquare:
		return CatSquare
	case AngleOpen, AngleClose:
		return CatAngle
	case Colon, AccessColon, AsmColon, BitColon, CaseColon, ClassColon,
		CondColon, ConstrColon, CsSqColon, DArrayColon, ForColon,
		LabelColon, OcColon, OcDictColon, TagColon, WhereColon:
		return CatColon
	case Preproc, PreprocBody, PpDefine, PpInclude, PpIf, PpElse, PpEndif, PpOther:
		return CatPreproc
	case Semicolon, VSemicolon, Comma:
		return CatSeparator
	case Arith, Assign, CompareOp, Not, Amp, Star, Caret, Question, OperatorVal:
		return CatOperator
	default:
		return CatOther
	}
}
