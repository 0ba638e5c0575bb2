// Package lang models the set of languages active for the file under
// formatting, the keyword character classification table, and language
// detection from file paths and content.
package lang

import "strings"

// Language is a single language bit.
type Language uint32

// Supported languages.
const (
	C Language = 1 << iota
	CPP
	D
	CS
	Java
	OC // Objective-C
	Vala
	Pawn
	ECMA
)

// Set is a bit-set of active languages. Language-gated predicates consult
// the set rather than a single language so that blended modes (e.g. OC+CPP)
// keep working.
type Set uint32

// Has returns true if the given language is active.
func (s Set) Has(l Language) bool {
	return uint32(s)&uint32(l) != 0
}

// With returns s with the given language added.
func (s Set) With(l Language) Set {
	return Set(uint32(s) | uint32(l))
}

// IsEmpty returns true if no language is active.
func (s Set) IsEmpty() bool {
	return s == 0
}

var langNames = map[string]Language{
	"c":    C,
	"cpp":  CPP,
	"c++":  CPP,
	"d":    D,
	"cs":   CS,
	"c#":   CS,
	"java": Java,
	"oc":   OC,
	"objc": OC,
	"vala": Vala,
	"pawn": Pawn,
	"ecma": ECMA,
	"js":   ECMA,
}

// Parse builds a Set from a comma-separated list of language names.
// Unknown names are ignored.
func Parse(spec string) Set {
	var s Set
	for _, part := range strings.Split(spec, ",") {
		if l, ok := langNames[strings.ToLower(strings.TrimSpace(part))]; ok {
			s = s.With(l)
		}
	}
	return s
}

// String renders the active languages as a comma-separated list.
func (s Set) String() string {
	ordered := []struct {
		l    Language
		name string
	}{
		{C, "c"}, {CPP, "cpp"}, {D, "d"}, {CS, "cs"}, {Java, "java"},
		{OC, "oc"}, {Vala, "vala"}, {Pawn, "pawn"}, {ECMA, "ecma"},
	}
	var parts []string
	for _, e := range ordered {
		if s.Has(e.l) {
			parts = append(parts, e.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}
