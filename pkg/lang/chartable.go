package lang

// Character classification for word detection. The table answers whether a
// byte can start or continue a keyword/identifier; predicates use IsKw1 to
// decide if a chunk's text is a word at all.

// IsKw1 returns true if b is a valid first character of a keyword or
// identifier: letters, underscore, and '@' (Objective-C directives, C#
// verbatim identifiers).
func IsKw1(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b == '_' || b == '@':
		return true
	case b >= 0x80:
		// UTF-8 continuation/lead bytes are identifier material.
		return true
	default:
		return false
	}
}

// IsKw2 returns true if b is a valid non-first character of a keyword or
// identifier: IsKw1 plus digits and '$' (allowed in Java and D).
func IsKw2(b byte) bool {
	if IsKw1(b) {
		return true
	}
	return (b >= '0' && b <= '9') || b == '$'
}
