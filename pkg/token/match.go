package token

import "fmt"

// openToClose maps every opening bracket-family kind to its closing partner.
// The pairing is an explicit table, validated by ValidateMatchTable, so that
// structural matching never depends on enumerator ordering.
var openToClose = map[Kind]Kind{
	ParenOpen:  ParenClose,
	SParenOpen: SParenClose,
	FParenOpen: FParenClose,
	TParenOpen: TParenClose,
	BraceOpen:  BraceClose,
	VBraceOpen: VBraceClose,
	AngleOpen:  AngleClose,
	SquareOpen: SquareClose,
}

var closeToOpen = func() map[Kind]Kind {
	m := make(map[Kind]Kind, len(openToClose))
	for o, c := range openToClose {
		m[c] = o
	}
	return m
}()

// IsOpenKind returns true if k opens a bracket-family pair.
func IsOpenKind(k Kind) bool {
	_, ok := openToClose[k]
	return ok
}

// IsCloseKind returns true if k closes a bracket-family pair.
func IsCloseKind(k Kind) bool {
	_, ok := closeToOpen[k]
	return ok
}

// ClosingKind returns the closing kind paired with the given opening kind.
// The second result is false if k is not an opening kind.
func ClosingKind(k Kind) (Kind, bool) {
	c, ok := openToClose[k]
	return c, ok
}

// OpeningKind returns the opening kind paired with the given closing kind.
// The second result is false if k is not a closing kind.
func OpeningKind(k Kind) (Kind, bool) {
	o, ok := closeToOpen[k]
	return o, ok
}

// ValidateMatchTable checks that the open/close mapping is a consistent
// bijection over the bracket family. Called once at startup and from tests.
func ValidateMatchTable() error {
	seen := make(map[Kind]bool, len(openToClose))
	for o, c := range openToClose {
		if !o.IsValid() || !c.IsValid() {
			return fmt.Errorf("match table refers to undeclared kind: %s -> %s", o, c)
		}
		if o == c {
			return fmt.Errorf("kind %s pairs with itself", o)
		}
		if seen[c] {
			return fmt.Errorf("closing kind %s paired with more than one opener", c)
		}
		seen[c] = true
		if back, ok := closeToOpen[c]; !ok || back != o {
			return fmt.Errorf("pairing %s -> %s is not symmetric", o, c)
		}
		if _, both := openToClose[c]; both {
			return fmt.Errorf("kind %s is both opening and closing", c)
		}
	}
	if len(closeToOpen) != len(openToClose) {
		return fmt.Errorf("match table is not a bijection: %d openers, %d closers",
			len(openToClose), len(closeToOpen))
	}
	return nil
}
