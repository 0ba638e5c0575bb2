// Package passes contains rule passes that refine the chunk classification
// after lexing. Each pass reads the list through the navigator and writes
// only through the audited mutation layer.
package passes

import (
	"github.com/vobal-jb/uncrustify/pkg/chunk"
	"github.com/vobal-jb/uncrustify/pkg/token"
)

// ParameterPack marks C++ parameter packs: the pack name declared with
// "..." in a template parameter list, plus every later use of the same name
// inside the template declaration.
func ParameterPack(store *chunk.Store) {
	for pc := store.Head(); pc != nil; pc = pc.Next(chunk.ScopeAll) {
		if pc.IsNot(token.Template) {
			continue
		}
		templateEnd := pc.NextKind(token.Semicolon, pc.Level(), chunk.ScopeAll)

		for cur := pc; cur != nil; {
			if cur.IsString("...") {
				// "typename... Args" - the word after the ellipsis
				// declares the pack.
				if name := cur.NextNcNnl(chunk.ScopeAll); name.Is(token.Word) {
					name.SetKind(token.ParameterPack)
				}
			}

			if cur.Is(token.ParameterPack) {
				markPackUses(cur, templateEnd)
			}

			cur = cur.Next(chunk.ScopeAll)
			if cur == templateEnd {
				break
			}
		}
	}
}

// markPackUses re-marks every token with the pack's name between the
// declaration and the end of the template.
func markPackUses(pack, templateEnd *chunk.Chunk) {
	for pc := pack.Next(chunk.ScopeAll); pc != nil && pc != templateEnd; pc = pc.Next(chunk.ScopeAll) {
		if pc.Text() == pack.Text() && pc.Is(token.Word) {
			pc.SetKind(token.ParameterPack)
		}
	}
}
