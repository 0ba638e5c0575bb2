package lang

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// extLangs maps well-known file extensions directly. Extension mapping wins
// over content classification because formatter users name their files
// deliberately; enry is the fallback for ambiguous or extension-less input.
var extLangs = map[string]Set{
	".c":    Set(C),
	".h":    Set(C) | Set(CPP),
	".cpp":  Set(CPP),
	".cxx":  Set(CPP),
	".cc":   Set(CPP),
	".hpp":  Set(CPP),
	".hxx":  Set(CPP),
	".hh":   Set(CPP),
	".d":    Set(D),
	".di":   Set(D),
	".cs":   Set(CS),
	".java": Set(Java),
	".m":    Set(OC) | Set(C),
	".mm":   Set(OC) | Set(CPP),
	".vala": Set(Vala),
	".p":    Set(Pawn),
	".pwn":  Set(Pawn),
	".sma":  Set(Pawn),
	".js":   Set(ECMA),
}

// enryLangs maps go-enry language names onto our language bits.
var enryLangs = map[string]Set{
	"c":           Set(C),
	"c++":         Set(CPP),
	"d":           Set(D),
	"c#":          Set(CS),
	"java":        Set(Java),
	"objective-c": Set(OC) | Set(C),
	"vala":        Set(Vala),
	"javascript":  Set(ECMA),
}

// FromPath detects the language set from a file path, consulting content
// when the extension alone is not decisive. Returns the empty set when
// nothing recognizable is found.
func FromPath(path string, content []byte) Set {
	ext := strings.ToLower(filepath.Ext(path))

	// .h is genuinely ambiguous between C and C++; let enry break the tie
	// when we have content to look at.
	if ext == ".h" && len(content) > 0 {
		if s := FromContent(path, content); !s.IsEmpty() {
			return s
		}
	}

	if s, ok := extLangs[ext]; ok {
		return s
	}
	return FromContent(path, content)
}

// FromContent classifies content with go-enry, mapped onto the language set.
func FromContent(path string, content []byte) Set {
	if len(content) == 0 {
		return 0
	}
	candidates := []string{"C", "C++", "C#", "D", "Java", "Objective-C", "Vala", "JavaScript"}
	if name, safe := enry.GetLanguageByClassifier(content, candidates); safe && name != "" {
		if s, ok := enryLangs[strings.ToLower(name)]; ok {
			return s
		}
	}
	if name := enry.GetLanguage(filepath.Base(path), content); name != "" {
		if s, ok := enryLangs[strings.ToLower(name)]; ok {
			return s
		}
	}
	return 0
}
