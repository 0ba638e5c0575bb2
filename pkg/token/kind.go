// Package token defines the closed vocabulary of token kinds produced by the
// lexer, the per-chunk flag bit-set, and the bracket matching relation used
// for structural navigation.
package token

// Kind classifies a lexical token in the source under formatting.
type Kind uint16

// Token kinds. The set is closed: the lexer only ever produces kinds listed
// here, and the chunk predicates are written against this exact vocabulary.
const (
	None Kind = iota
	Junk
	Whitespace
	Newline
	NlCont // backslash-newline line continuation
	Ignored

	Comment      // C-style /* ... */ on one line
	CommentMulti // C-style /* ... */ spanning lines
	CommentCpp   // line comment // ...
	CommentEmbed // comment embedded mid-statement

	Word
	Number
	String
	Type
	PtrType
	Byref
	DcMember // '::'
	Qualifier
	Access
	Attribute
	DeclSpec
	OperatorVal

	Struct
	Enum
	EnumClass
	Union
	Class
	Template
	ParameterPack

	If
	Else
	For
	In
	While
	Do
	Switch
	Return

	Semicolon
	VSemicolon // virtual semicolon, no source text
	Comma

	// Colon role variants. The lexer emits Colon; later passes refine it.
	Colon
	AccessColon
	AsmColon
	BitColon
	CaseColon
	ClassColon
	CondColon
	ConstrColon
	CsSqColon
	DArrayColon
	ForColon
	LabelColon
	OcColon
	OcDictColon
	TagColon
	WhereColon

	// Bracket family. Every open kind has exactly one close kind; the
	// pairing lives in the match table, never in enumerator arithmetic.
	ParenOpen
	ParenClose
	SParenOpen // paren after if/for/while/switch
	SParenClose
	FParenOpen // function call/definition paren
	FParenClose
	TParenOpen // function type paren, e.g. (*func)(...)
	TParenClose
	LParenOpen // lambda capture paren, never matched structurally
	BraceOpen
	BraceClose
	VBraceOpen // virtual brace, no source text
	VBraceClose
	AngleOpen
	AngleClose
	SquareOpen
	SquareClose
	TSquare // balanced '[]' lexed as one token

	Arith
	Assign
	CompareOp
	Not
	Amp
	Star
	Caret
	Question

	// Preprocessor kinds. Preproc is the '#' introducing a directive; the
	// Pp* kinds classify the directive word itself.
	Preproc
	PreprocBody
	PpDefine
	PpInclude
	PpIf
	PpElse
	PpEndif
	PpOther

	FuncCall
	FuncDef
	Other

	kindCount // sentinel, keep last
)

var kindNames = map[Kind]string{
	None:          "NONE",
	Junk:          "JUNK",
	Whitespace:    "WHITESPACE",
	Newline:       "NEWLINE",
	NlCont:        "NL_CONT",
	Ignored:       "IGNORED",
	Comment:       "COMMENT",
	CommentMulti:  "COMMENT_MULTI",
	CommentCpp:    "COMMENT_CPP",
	CommentEmbed:  "COMMENT_EMBED",
	Word:          "WORD",
	Number:        "NUMBER",
	String:        "STRING",
	Type:          "TYPE",
	PtrType:       "PTR_TYPE",
	Byref:         "BYREF",
	DcMember:      "DC_MEMBER",
	Qualifier:     "QUALIFIER",
	Access:        "ACCESS",
	Attribute:     "ATTRIBUTE",
	DeclSpec:      "DECLSPEC",
	OperatorVal:   "OPERATOR_VAL",
	Struct:        "STRUCT",
	Enum:          "ENUM",
	EnumClass:     "ENUM_CLASS",
	Union:         "UNION",
	Class:         "CLASS",
	Template:      "TEMPLATE",
	ParameterPack: "PARAMETER_PACK",
	If:            "IF",
	Else:          "ELSE",
	For:           "FOR",
	In:            "IN",
	While:         "WHILE",
	Do:            "DO",
	Switch:        "SWITCH",
	Return:        "RETURN",
	Semicolon:     "SEMICOLON",
	VSemicolon:    "VSEMICOLON",
	Comma:         "COMMA",
	Colon:         "COLON",
	AccessColon:   "ACCESS_COLON",
	AsmColon:      "ASM_COLON",
	BitColon:      "BIT_COLON",
	CaseColon:     "CASE_COLON",
	ClassColon:    "CLASS_COLON",
	CondColon:     "COND_COLON",
	ConstrColon:   "CONSTR_COLON",
	CsSqColon:     "CS_SQ_COLON",
	DArrayColon:   "D_ARRAY_COLON",
	ForColon:      "FOR_COLON",
	LabelColon:    "LABEL_COLON",
	OcColon:       "OC_COLON",
	OcDictColon:   "OC_DICT_COLON",
	TagColon:      "TAG_COLON",
	WhereColon:    "WHERE_COLON",
	ParenOpen:     "PAREN_OPEN",
	ParenClose:    "PAREN_CLOSE",
	SParenOpen:    "SPAREN_OPEN",
	SParenClose:   "SPAREN_CLOSE",
	FParenOpen:    "FPAREN_OPEN",
	FParenClose:   "FPAREN_CLOSE",
	TParenOpen:    "TPAREN_OPEN",
	TParenClose:   "TPAREN_CLOSE",
	LParenOpen:    "LPAREN_OPEN",
	BraceOpen:     "BRACE_OPEN",
	BraceClose:    "BRACE_CLOSE",
	VBraceOpen:    "VBRACE_OPEN",
	VBraceClose:   "VBRACE_CLOSE",
	AngleOpen:     "ANGLE_OPEN",
	AngleClose:    "ANGLE_CLOSE",
	SquareOpen:    "SQUARE_OPEN",
	SquareClose:   "SQUARE_CLOSE",
	TSquare:       "TSQUARE",
	Arith:         "ARITH",
	Assign:        "ASSIGN",
	CompareOp:     "COMPARE",
	Not:           "NOT",
	Amp:           "AMP",
	Star:          "STAR",
	Caret:         "CARET",
	Question:      "QUESTION",
	Preproc:       "PREPROC",
	PreprocBody:   "PREPROC_BODY",
	PpDefine:      "PP_DEFINE",
	PpInclude:     "PP_INCLUDE",
	PpIf:          "PP_IF",
	PpElse:        "PP_ELSE",
	PpEndif:       "PP_ENDIF",
	PpOther:       "PP_OTHER",
	FuncCall:      "FUNC_CALL",
	FuncDef:       "FUNC_DEF",
	Other:         "OTHER",
}

// String returns the canonical upper-case name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsValid returns true if k is one of the declared kinds.
func (k Kind) IsValid() bool {
	return k < kindCount
}

// Count returns the number of declared kinds, for table validation.
func Count() int {
	return int(kindCount)
}
