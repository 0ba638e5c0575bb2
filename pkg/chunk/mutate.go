package chunk

import (
	"path/filepath"
	"runtime"

	"github.com/vobal-jb/uncrustify/pkg/token"
)

// Mutation layer: the only write path for a chunk's kind, parent kind and
// flags. Each setter can report the call site to a trace sink, so a
// misclassification can be traced back to the pass that made it. Nothing in
// this file touches list linkage or levels; those belong to the Store.

// TraceEvent describes one audited mutation.
type TraceEvent struct {
	// Op is the setter that fired: "set_kind", "set_parent" or "set_flags".
	Op string

	// File and Line identify the call site.
	File string
	Line int

	// OrigLine, OrigCol and Text identify the chunk being changed.
	OrigLine int
	OrigCol  int
	Text     string

	// Old and New are string renderings of the changed field.
	Old string
	New string
}

// TraceFunc receives audited mutation events. The trace is advisory; it
// never influences control flow.
type TraceFunc func(TraceEvent)

var traceFn TraceFunc

// SetTrace installs the mutation trace sink. A nil sink disables tracing.
func SetTrace(fn TraceFunc) {
	traceFn = fn
}

// emitTrace reports one mutation. skip counts stack frames between the
// caller of the exported setter and this function.
func emitTrace(op string, pc *Chunk, oldVal, newVal string, skip int) {
	if traceFn == nil {
		return
	}
	ev := TraceEvent{
		Op:       op,
		OrigLine: pc.OrigLine(),
		OrigCol:  pc.OrigCol(),
		Text:     pc.Text(),
		Old:      oldVal,
		New:      newVal,
	}
	if _, file, line, ok := runtime.Caller(skip); ok {
		ev.File = filepath.Base(file)
		ev.Line = line
	}
	traceFn(ev)
}

// SetKind reassigns the chunk's token kind.
func (pc *Chunk) SetKind(k token.Kind) {
	if pc == nil || pc.kind == k {
		return
	}
	emitTrace("set_kind", pc, pc.kind.String(), k.String(), 2)
	pc.kind = k
}

// SetParentKind reassigns the kind of the chunk's owning construct.
func (pc *Chunk) SetParentKind(k token.Kind) {
	if pc == nil || pc.parent == k {
		return
	}
	emitTrace("set_parent", pc, pc.parent.String(), k.String(), 2)
	pc.parent = k
}

// SetParentFrom derives and assigns the parent kind from another chunk.
// A nil parent chunk leaves pc untouched.
func (pc *Chunk) SetParentFrom(parent *Chunk) {
	if pc == nil || parent == nil || pc.parent == parent.Kind() {
		return
	}
	emitTrace("set_parent", pc, pc.parent.String(), parent.Kind().String(), 2)
	pc.parent = parent.Kind()
}

// UpdateFlags applies an atomic clear-then-set over the flag bit-set.
func (pc *Chunk) UpdateFlags(clear, set token.Flags) {
	pc.applyFlags(clear, set, 3)
}

// SetFlags sets the given flag bits.
func (pc *Chunk) SetFlags(set token.Flags) {
	pc.applyFlags(0, set, 3)
}

// ClearFlags clears the given flag bits.
func (pc *Chunk) ClearFlags(clear token.Flags) {
	pc.applyFlags(clear, 0, 3)
}

func (pc *Chunk) applyFlags(clear, set token.Flags, skip int) {
	if pc == nil {
		return
	}
	updated := pc.flags.Update(clear, set)
	if updated == pc.flags {
		return
	}
	emitTrace("set_flags", pc, pc.flags.String(), updated.String(), skip)
	pc.flags = updated
}
