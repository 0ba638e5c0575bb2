package token

import "strings"

// Flags is a bit-set of orthogonal per-chunk context markers. Flags never
// overlap with Kind: a flag says where a chunk sits, not what it is.
type Flags uint64

// Flag bits.
const (
	FlagNone       Flags = 0
	FlagInPreproc  Flags = 1 << iota // inside a preprocessor directive
	FlagInTemplate                   // inside a template argument list
	FlagInSquare                     // inside square brackets
	FlagInFcnDef                     // inside a function definition header
	FlagInFcnCall                    // inside a function call
	FlagInForScope                   // inside a for(...) control clause
	FlagWasVBrace                    // brace materialized from a virtual one
	FlagForceSpace                   // a rule pinned spacing around this chunk
)

var flagNames = []struct {
	bit  Flags
	name string
}{
	{FlagInPreproc, "IN_PREPROC"},
	{FlagInTemplate, "IN_TEMPLATE"},
	{FlagInSquare, "IN_SQUARE"},
	{FlagInFcnDef, "IN_FCN_DEF"},
	{FlagInFcnCall, "IN_FCN_CALL"},
	{FlagInForScope, "IN_FOR_SCOPE"},
	{FlagWasVBrace, "WAS_VBRACE"},
	{FlagForceSpace, "FORCE_SPACE"},
}

// Test returns true if every bit in mask is set.
func (f Flags) Test(mask Flags) bool {
	return f&mask == mask
}

// TestAny returns true if at least one bit in mask is set.
func (f Flags) TestAny(mask Flags) bool {
	return f&mask != 0
}

// With returns f with the bits in mask set.
func (f Flags) With(mask Flags) Flags {
	return f | mask
}

// Without returns f with the bits in mask cleared.
func (f Flags) Without(mask Flags) Flags {
	return f &^ mask
}

// Update applies a clear-then-set in one step. Bits present in both masks
// end up set.
func (f Flags) Update(clear, set Flags) Flags {
	return (f &^ clear) | set
}

// String renders the set bits as a '|'-joined list, "NONE" when empty.
func (f Flags) String() string {
	if f == 0 {
		return "NONE"
	}
	var parts []string
	for _, fn := range flagNames {
		if f&fn.bit != 0 {
			parts = append(parts, fn.name)
		}
	}
	if len(parts) == 0 {
		return "NONE"
	}
	return strings.Join(parts, "|")
}
