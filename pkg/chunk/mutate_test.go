package chunk_test

import (
	"testing"

	"github.com/vobal-jb/uncrustify/pkg/chunk"
	"github.com/vobal-jb/uncrustify/pkg/token"
)

// The trace sink is process-global, so these tests do not run in parallel.

func captureTrace(t *testing.T) *[]chunk.TraceEvent {
	t.Helper()

	var events []chunk.TraceEvent
	chunk.SetTrace(func(ev chunk.TraceEvent) {
		events = append(events, ev)
	})
	t.Cleanup(func() { chunk.SetTrace(nil) })
	return &events
}

func TestSetKind(t *testing.T) {
	events := captureTrace(t)

	pc := chunk.New(token.Word, "foo", 4, 2, 0, token.FlagNone)
	pc.SetKind(token.FuncCall)

	if pc.Kind() != token.FuncCall {
		t.Fatalf("Kind() = %s, want FUNC_CALL", pc.Kind())
	}
	if len(*events) != 1 {
		t.Fatalf("got %d trace events, want 1", len(*events))
	}
	ev := (*events)[0]
	if ev.Op != "set_kind" {
		t.Errorf("Op = %q, want set_kind", ev.Op)
	}
	if ev.Old != "WORD" || ev.New != "FUNC_CALL" {
		t.Errorf("Old/New = %q/%q", ev.Old, ev.New)
	}
	if ev.OrigLine != 4 || ev.OrigCol != 2 || ev.Text != "foo" {
		t.Errorf("chunk identity not captured: %+v", ev)
	}
	if ev.File != "mutate_test.go" {
		t.Errorf("call site File = %q, want mutate_test.go", ev.File)
	}
	if ev.Line == 0 {
		t.Error("call site Line not captured")
	}
}

func TestSetKindNoopUnchanged(t *testing.T) {
	events := captureTrace(t)

	pc := chunk.New(token.Word, "foo", 1, 1, 0, token.FlagNone)
	pc.SetKind(token.Word)

	if len(*events) != 0 {
		t.Error("assigning the current kind must not trace")
	}
}

func TestSetParentKind(t *testing.T) {
	events := captureTrace(t)

	pc := chunk.New(token.BraceOpen, "{", 1, 1, 0, token.FlagNone)
	pc.SetParentKind(token.If)

	if pc.ParentKind() != token.If {
		t.Fatalf("ParentKind() = %s, want IF", pc.ParentKind())
	}
	if len(*events) != 1 || (*events)[0].Op != "set_parent" {
		t.Fatalf("expected one set_parent event, got %v", *events)
	}
}

func TestSetParentFrom(t *testing.T) {
	events := captureTrace(t)

	parent := chunk.New(token.Switch, "switch", 1, 1, 0, token.FlagNone)
	pc := chunk.New(token.BraceOpen, "{", 1, 8, 0, token.FlagNone)

	pc.SetParentFrom(parent)
	if pc.ParentKind() != token.Switch {
		t.Fatalf("ParentKind() = %s, want SWITCH", pc.ParentKind())
	}

	pc.SetParentFrom(nil) // no-op
	pc.SetParentFrom(parent)
	if len(*events) != 1 {
		t.Errorf("got %d events, want 1 (nil and unchanged are no-ops)", len(*events))
	}
}

func TestFlagSetters(t *testing.T) {
	events := captureTrace(t)

	pc := chunk.New(token.Word, "x", 1, 1, 0, token.FlagNone)

	pc.SetFlags(token.FlagInSquare | token.FlagInTemplate)
	if !pc.Flags().Test(token.FlagInSquare | token.FlagInTemplate) {
		t.Fatal("SetFlags did not set the bits")
	}

	pc.ClearFlags(token.FlagInSquare)
	if pc.Flags().Test(token.FlagInSquare) {
		t.Fatal("ClearFlags did not clear the bit")
	}
	if !pc.Flags().Test(token.FlagInTemplate) {
		t.Fatal("ClearFlags cleared an unrelated bit")
	}

	pc.UpdateFlags(token.FlagInTemplate, token.FlagWasVBrace)
	if pc.Flags() != token.FlagWasVBrace {
		t.Fatalf("UpdateFlags result = %s, want WAS_VBRACE", pc.Flags())
	}

	if len(*events) != 3 {
		t.Errorf("got %d trace events, want 3", len(*events))
	}
	for _, ev := range *events {
		if ev.Op != "set_flags" {
			t.Errorf("Op = %q, want set_flags", ev.Op)
		}
		if ev.File != "mutate_test.go" {
			t.Errorf("call site File = %q, want mutate_test.go", ev.File)
		}
	}
}

func TestFlagSettersNoop(t *testing.T) {
	events := captureTrace(t)

	pc := chunk.New(token.Word, "x", 1, 1, 0, token.FlagInSquare)
	pc.SetFlags(token.FlagInSquare)   // already set
	pc.ClearFlags(token.FlagInFcnDef) // already clear
	pc.UpdateFlags(0, 0)

	if len(*events) != 0 {
		t.Errorf("no-op flag updates must not trace, got %d events", len(*events))
	}
}

func TestMutateNilChunk(t *testing.T) {
	captureTrace(t)

	var pc *chunk.Chunk
	pc.SetKind(token.Word)
	pc.SetParentKind(token.Word)
	pc.SetParentFrom(chunk.New(token.Word, "x", 1, 1, 0, 0))
	pc.SetFlags(token.FlagInSquare)
	pc.ClearFlags(token.FlagInSquare)
	pc.UpdateFlags(1, 2)
}

func TestSetTraceNilDisables(t *testing.T) {
	events := captureTrace(t)
	chunk.SetTrace(nil)

	pc := chunk.New(token.Word, "x", 1, 1, 0, token.FlagNone)
	pc.SetKind(token.Number)

	if len(*events) != 0 {
		t.Error("a nil sink disables tracing")
	}
	if pc.Kind() != token.Number {
		t.Error("mutation must still apply with tracing disabled")
	}
}
