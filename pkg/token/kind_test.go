package token_test

import (
	"testing"

	"github.com/vobal-jb/uncrustify/pkg/token"
)

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind token.Kind
		want string
	}{
		{token.None, "NONE"},
		{token.Word, "WORD"},
		{token.NlCont, "NL_CONT"},
		{token.DcMember, "DC_MEMBER"},
		{token.VBraceOpen, "VBRACE_OPEN"},
		{token.PpEndif, "PP_ENDIF"},
		{token.Kind(0xFFFF), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

// Every declared kind has a name; a missing entry would silently render as
// UNKNOWN in dumps.
func TestEveryKindNamed(t *testing.T) {
	t.Parallel()

	seen := make(map[string]token.Kind, token.Count())
	for k := token.Kind(0); int(k) < token.Count(); k++ {
		if !k.IsValid() {
			t.Fatalf("Kind(%d) should be valid below Count()", k)
		}
		name := k.String()
		if name == "UNKNOWN" {
			t.Errorf("Kind(%d) has no name", k)
			continue
		}
		if prev, dup := seen[name]; dup {
			t.Errorf("name %q used by both Kind(%d) and Kind(%d)", name, prev, k)
		}
		seen[name] = k
	}

	if token.Kind(token.Count()).IsValid() {
		t.Error("Count() sentinel must not be a valid kind")
	}
}

func TestCategoryOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind token.Kind
		want token.Category
	}{
		{token.CommentCpp, token.CatComment},
		{token.NlCont, token.CatNewline},
		{token.Word, token.CatWord},
		{token.Qualifier, token.CatWord},
		{token.VBraceClose, token.CatBrace},
		{token.LParenOpen, token.CatParen},
		{token.TSquare, token.CatSquare},
		{token.AngleOpen, token.CatAngle},
		{token.CaseColon, token.CatColon},
		{token.PpInclude, token.CatPreproc},
		{token.VSemicolon, token.CatSeparator},
		{token.Question, token.CatOperator},
		{token.Struct, token.CatOther},
	}

	for _, tt := range tests {
		if got := token.CategoryOf(tt.kind); got != tt.want {
			t.Errorf("CategoryOf(%s) = %s, want %s", tt.kind, got, tt.want)
		}
	}
}
