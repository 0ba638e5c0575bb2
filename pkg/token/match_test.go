package token_test

import (
	"testing"

	"github.com/vobal-jb/uncrustify/pkg/token"
)

func TestValidateMatchTable(t *testing.T) {
	t.Parallel()

	if err := token.ValidateMatchTable(); err != nil {
		t.Fatalf("match table invalid: %v", err)
	}
}

func TestClosingKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		open  token.Kind
		close token.Kind
	}{
		{"paren", token.ParenOpen, token.ParenClose},
		{"sparen", token.SParenOpen, token.SParenClose},
		{"fparen", token.FParenOpen, token.FParenClose},
		{"tparen", token.TParenOpen, token.TParenClose},
		{"brace", token.BraceOpen, token.BraceClose},
		{"vbrace", token.VBraceOpen, token.VBraceClose},
		{"angle", token.AngleOpen, token.AngleClose},
		{"square", token.SquareOpen, token.SquareClose},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := token.ClosingKind(tt.open)
			if !ok {
				t.Fatalf("ClosingKind(%s) not found", tt.open)
			}
			if got != tt.close {
				t.Errorf("ClosingKind(%s) = %s, want %s", tt.open, got, tt.close)
			}

			back, ok := token.OpeningKind(tt.close)
			if !ok {
				t.Fatalf("OpeningKind(%s) not found", tt.close)
			}
			if back != tt.open {
				t.Errorf("OpeningKind(%s) = %s, want %s", tt.close, back, tt.open)
			}
		})
	}
}

func TestLParenOpenIsUnmatched(t *testing.T) {
	t.Parallel()

	if token.IsOpenKind(token.LParenOpen) {
		t.Error("LParenOpen must not participate in structural matching")
	}
	if _, ok := token.ClosingKind(token.LParenOpen); ok {
		t.Error("ClosingKind(LParenOpen) should report not found")
	}
}

func TestMatchTableRejectsNonBrackets(t *testing.T) {
	t.Parallel()

	for _, k := range []token.Kind{token.Word, token.Semicolon, token.TSquare, token.None} {
		if token.IsOpenKind(k) {
			t.Errorf("IsOpenKind(%s) = true", k)
		}
		if token.IsCloseKind(k) {
			t.Errorf("IsCloseKind(%s) = true", k)
		}
	}
}
