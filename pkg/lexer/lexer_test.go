package lexer_test

import (
	"testing"

	"github.com/vobal-jb/uncrustify/pkg/chunk"
	"github.com/vobal-jb/uncrustify/pkg/lang"
	"github.com/vobal-jb/uncrustify/pkg/lexer"
	"github.com/vobal-jb/uncrustify/pkg/token"
)

func collect(s *chunk.Store) []*chunk.Chunk {
	var out []*chunk.Chunk
	for pc := s.Head(); pc != nil; pc = pc.Next(chunk.ScopeAll) {
		out = append(out, pc)
	}
	return out
}

type want struct {
	kind token.Kind
	text string
}

func checkSeq(t *testing.T, got []*chunk.Chunk, wants []want) {
	t.Helper()

	if len(got) != len(wants) {
		for i, pc := range got {
			t.Logf("  [%d] %s %q level=%d", i, pc.Kind(), pc.Text(), pc.Level())
		}
		t.Fatalf("got %d chunks, want %d", len(got), len(wants))
	}
	for i, w := range wants {
		if got[i].Kind() != w.kind || got[i].Text() != w.text {
			t.Errorf("[%d] = %s %q, want %s %q",
				i, got[i].Kind(), got[i].Text(), w.kind, w.text)
		}
	}
}

func TestTokenizeStatement(t *testing.T) {
	t.Parallel()

	got := collect(lexer.Tokenize([]byte("int x = 42;\n"), lang.Set(lang.C)))
	checkSeq(t, got, []want{
		{token.Word, "int"},
		{token.Word, "x"},
		{token.Assign, "="},
		{token.Number, "42"},
		{token.Semicolon, ";"},
		{token.Newline, "\n"},
	})

	// Whitespace is consumed, never emitted; positions survive.
	if got[1].OrigLine() != 1 || got[1].OrigCol() != 5 {
		t.Errorf("x at %d:%d, want 1:5", got[1].OrigLine(), got[1].OrigCol())
	}
	if got[3].OrigCol() != 9 {
		t.Errorf("42 at col %d, want 9", got[3].OrigCol())
	}
}

func TestTokenizeParenVariants(t *testing.T) {
	t.Parallel()

	t.Run("control statement", func(t *testing.T) {
		t.Parallel()

		got := collect(lexer.Tokenize([]byte("if (x) foo(x);"), lang.Set(lang.C)))
		checkSeq(t, got, []want{
			{token.If, "if"},
			{token.SParenOpen, "("},
			{token.Word, "x"},
			{token.SParenClose, ")"},
			{token.Word, "foo"},
			{token.FParenOpen, "("},
			{token.Word, "x"},
			{token.FParenClose, ")"},
			{token.Semicolon, ";"},
		})
	})

	t.Run("grouping paren", func(t *testing.T) {
		t.Parallel()

		got := collect(lexer.Tokenize([]byte("x = (a);"), lang.Set(lang.C)))
		checkSeq(t, got, []want{
			{token.Word, "x"},
			{token.Assign, "="},
			{token.ParenOpen, "("},
			{token.Word, "a"},
			{token.ParenClose, ")"},
			{token.Semicolon, ";"},
		})
	})

	t.Run("while and switch", func(t *testing.T) {
		t.Parallel()

		got := collect(lexer.Tokenize([]byte("while(1)"), lang.Set(lang.C)))
		checkSeq(t, got, []want{
			{token.While, "while"},
			{token.SParenOpen, "("},
			{token.Number, "1"},
			{token.SParenClose, ")"},
		})
	})
}

func TestTokenizeLevels(t *testing.T) {
	t.Parallel()

	got := collect(lexer.Tokenize([]byte("void f() { g(a); }"), lang.Set(lang.C)))
	checkSeq(t, got, []want{
		{token.Word, "void"},
		{token.Word, "f"},
		{token.FParenOpen, "("},
		{token.FParenClose, ")"},
		{token.BraceOpen, "{"},
		{token.Word, "g"},
		{token.FParenOpen, "("},
		{token.Word, "a"},
		{token.FParenClose, ")"},
		{token.Semicolon, ";"},
		{token.BraceClose, "}"},
	})

	levels := []int{0, 0, 0, 0, 0, 1, 1, 2, 1, 1, 0}
	for i, w := range levels {
		if got[i].Level() != w {
			t.Errorf("[%d] %q level = %d, want %d", i, got[i].Text(), got[i].Level(), w)
		}
	}

	// Open and close sit at the same level, so table matching round-trips.
	open := got[6]
	if open.SkipToMatch(chunk.ScopeAll) != got[8] {
		t.Error("inner paren should match its close")
	}
	if got[4].SkipToMatch(chunk.ScopeAll) != got[10] {
		t.Error("brace should match its close")
	}
}

func TestTokenizeComments(t *testing.T) {
	t.Parallel()

	src := "a; // line\n/* one */ b;\n/* two\n   lines */ c;"
	got := collect(lexer.Tokenize([]byte(src), lang.Set(lang.C)))
	checkSeq(t, got, []want{
		{token.Word, "a"},
		{token.Semicolon, ";"},
		{token.CommentCpp, "// line"},
		{token.Newline, "\n"},
		{token.Comment, "/* one */"},
		{token.Word, "b"},
		{token.Semicolon, ";"},
		{token.Newline, "\n"},
		{token.CommentMulti, "/* two\n   lines */"},
		{token.Word, "c"},
		{token.Semicolon, ";"},
	})

	// The multiline comment advances the line counter.
	if got[9].OrigLine() != 4 {
		t.Errorf("c on line %d, want 4", got[9].OrigLine())
	}
}

func TestTokenizeDirective(t *testing.T) {
	t.Parallel()

	src := "#define MAX 10\nint y;"
	got := collect(lexer.Tokenize([]byte(src), lang.Set(lang.C)))
	checkSeq(t, got, []want{
		{token.Preproc, "#"},
		{token.PpDefine, "define"},
		{token.Word, "MAX"},
		{token.Number, "10"},
		{token.Newline, "\n"},
		{token.Word, "int"},
		{token.Word, "y"},
		{token.Semicolon, ";"},
	})

	for i := 0; i <= 3; i++ {
		if !got[i].Flags().Test(token.FlagInPreproc) {
			t.Errorf("[%d] %q should be flagged in-preproc", i, got[i].Text())
		}
	}
	// The terminating newline sits outside the directive: it is the
	// boundary that scoped traversal detects.
	if got[4].Flags().Test(token.FlagInPreproc) {
		t.Error("the directive's terminating newline must not be flagged")
	}
	if got[5].Flags().Test(token.FlagInPreproc) {
		t.Error("code after the directive must not be flagged")
	}
}

func TestTokenizeDirectiveContinuation(t *testing.T) {
	t.Parallel()

	src := "#define SUM(a, b) \\\n  a + b\nint z;"
	got := collect(lexer.Tokenize([]byte(src), lang.Set(lang.C)))

	var cont *chunk.Chunk
	for _, pc := range got {
		if pc.Is(token.NlCont) {
			cont = pc
		}
	}
	if cont == nil {
		t.Fatal("no NlCont chunk emitted for the continuation")
	}
	if !cont.Flags().Test(token.FlagInPreproc) {
		t.Error("the continuation stays inside the directive")
	}

	// Chunks on the continued line are still part of the directive.
	next := cont.Next(chunk.ScopeAll)
	if next == nil || !next.Flags().Test(token.FlagInPreproc) {
		t.Error("the directive continues past the continuation")
	}

	// PpStart finds the '#' from deep inside the continued directive.
	if next.PpStart() != got[0] {
		t.Error("PpStart should reach the '#' across the continuation")
	}
}

func TestTokenizeDirectiveKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		kind token.Kind
	}{
		{"#include <stdio.h>", token.PpInclude},
		{"#ifdef FOO", token.PpIf},
		{"#ifndef FOO", token.PpIf},
		{"#if 1", token.PpIf},
		{"#else", token.PpElse},
		{"#elif 0", token.PpElse},
		{"#endif", token.PpEndif},
		{"#pragma once", token.PpOther},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()

			got := collect(lexer.Tokenize([]byte(tt.src), lang.Set(lang.C)))
			if len(got) < 2 {
				t.Fatalf("got %d chunks", len(got))
			}
			if got[0].Kind() != token.Preproc {
				t.Errorf("first chunk = %s, want PREPROC", got[0].Kind())
			}
			if got[1].Kind() != tt.kind {
				t.Errorf("directive word = %s, want %s", got[1].Kind(), tt.kind)
			}
		})
	}
}

func TestTokenizeHashMidLine(t *testing.T) {
	t.Parallel()

	// '#' not at line start does not open a directive.
	got := collect(lexer.Tokenize([]byte("a # b"), lang.Set(lang.C)))
	if got[1].Kind() == token.Preproc {
		t.Error("a mid-line '#' is not a directive")
	}
	for _, pc := range got {
		if pc.Flags().Test(token.FlagInPreproc) {
			t.Errorf("%q flagged in-preproc", pc.Text())
		}
	}
}

func TestTokenizeSquare(t *testing.T) {
	t.Parallel()

	got := collect(lexer.Tokenize([]byte("a[i] = b[]"), lang.Set(lang.C)))
	checkSeq(t, got, []want{
		{token.Word, "a"},
		{token.SquareOpen, "["},
		{token.Word, "i"},
		{token.SquareClose, "]"},
		{token.Assign, "="},
		{token.Word, "b"},
		{token.TSquare, "[]"},
	})

	// The balanced '[]' token does not change the nesting level.
	if got[6].Level() != 0 {
		t.Errorf("TSquare level = %d, want 0", got[6].Level())
	}
}

func TestTokenizeOperators(t *testing.T) {
	t.Parallel()

	got := collect(lexer.Tokenize([]byte("a::b != c && d <= e ? f : g"), lang.Set(lang.CPP)))
	checkSeq(t, got, []want{
		{token.Word, "a"},
		{token.DcMember, "::"},
		{token.Word, "b"},
		{token.CompareOp, "!="},
		{token.Word, "c"},
		{token.CompareOp, "&&"},
		{token.Word, "d"},
		{token.CompareOp, "<="},
		{token.Word, "e"},
		{token.Question, "?"},
		{token.Word, "f"},
		{token.Colon, ":"},
		{token.Word, "g"},
	})
}

func TestTokenizeStrings(t *testing.T) {
	t.Parallel()

	got := collect(lexer.Tokenize([]byte(`s = "a \"b\" c"; ch = 'x';`), lang.Set(lang.C)))
	checkSeq(t, got, []want{
		{token.Word, "s"},
		{token.Assign, "="},
		{token.String, `"a \"b\" c"`},
		{token.Semicolon, ";"},
		{token.Word, "ch"},
		{token.Assign, "="},
		{token.String, "'x'"},
		{token.Semicolon, ";"},
	})
}

func TestTokenizeKeywords(t *testing.T) {
	t.Parallel()

	got := collect(lexer.Tokenize([]byte("static const int n = 0;"), lang.Set(lang.CPP)))
	checkSeq(t, got, []want{
		{token.Qualifier, "static"},
		{token.Qualifier, "const"},
		{token.Word, "int"},
		{token.Word, "n"},
		{token.Assign, "="},
		{token.Number, "0"},
		{token.Semicolon, ";"},
	})
}

func TestTokenizeForInGating(t *testing.T) {
	t.Parallel()

	oc := collect(lexer.Tokenize([]byte("for (id x in xs)"), lang.Set(lang.OC)))
	var kw *chunk.Chunk
	for _, pc := range oc {
		if pc.IsString("in") {
			kw = pc
		}
	}
	if kw == nil || kw.Kind() != token.In {
		t.Error("'in' should be a keyword under Objective-C")
	}

	c := collect(lexer.Tokenize([]byte("for (id x in xs)"), lang.Set(lang.C)))
	for _, pc := range c {
		if pc.IsString("in") && pc.Kind() != token.Word {
			t.Error("'in' is a plain word outside Objective-C")
		}
	}
}

func TestTokenizeUnbalancedClose(t *testing.T) {
	t.Parallel()

	got := collect(lexer.Tokenize([]byte("a ) b } c"), lang.Set(lang.C)))
	checkSeq(t, got, []want{
		{token.Word, "a"},
		{token.Junk, ")"},
		{token.Word, "b"},
		{token.Junk, "}"},
		{token.Word, "c"},
	})
	for _, pc := range got {
		if pc.Level() != 0 {
			t.Errorf("%q level = %d, unbalanced closes must not corrupt levels",
				pc.Text(), pc.Level())
		}
	}
}

func TestTokenizeMismatchedClose(t *testing.T) {
	t.Parallel()

	// A ']' closing a paren is junk; the paren stays open.
	got := collect(lexer.Tokenize([]byte("(a]"), lang.Set(lang.C)))
	checkSeq(t, got, []want{
		{token.ParenOpen, "("},
		{token.Word, "a"},
		{token.Junk, "]"},
	})
}

func TestTokenizeCRLF(t *testing.T) {
	t.Parallel()

	got := collect(lexer.Tokenize([]byte("a;\r\nb;"), lang.Set(lang.C)))
	checkSeq(t, got, []want{
		{token.Word, "a"},
		{token.Semicolon, ";"},
		{token.Newline, "\r\n"},
		{token.Word, "b"},
		{token.Semicolon, ";"},
	})
	if got[3].OrigLine() != 2 {
		t.Errorf("b on line %d, want 2", got[3].OrigLine())
	}
}

func TestTokenizeEmpty(t *testing.T) {
	t.Parallel()

	s := lexer.Tokenize(nil, lang.Set(lang.C))
	if !s.IsEmpty() {
		t.Errorf("empty input should yield an empty list, got %d chunks", s.Len())
	}
	s = lexer.Tokenize([]byte("   \t  "), lang.Set(lang.C))
	if !s.IsEmpty() {
		t.Error("whitespace-only input should yield an empty list")
	}
}

func TestTokenizeEllipsis(t *testing.T) {
	t.Parallel()

	got := collect(lexer.Tokenize([]byte("f(a, ...)"), lang.Set(lang.C)))
	checkSeq(t, got, []want{
		{token.Word, "f"},
		{token.FParenOpen, "("},
		{token.Word, "a"},
		{token.Comma, ","},
		{token.Other, "..."},
		{token.FParenClose, ")"},
	})
}
