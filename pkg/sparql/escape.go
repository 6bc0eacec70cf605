package sparql

import "strings"

// IsValidIRIRef reports whether s may be embedded inside an <...> IRI
// reference. The characters excluded here are the ones the IRIREF
// grammar forbids; any of them would let a value break out of the
// angle brackets and smuggle extra triples into an update document.
func IsValidIRIRef(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r <= 0x20 || strings.ContainsRune("<>\"{}|^`\\", r) {
			return false
		}
	}
	return true
}

// EscapeLiteral makes a text value safe to embed inside a double-quoted
// SPARQL string literal. The substitution order matters: backslashes are
// escaped first so the escapes introduced for the remaining characters
// are not escaped twice.
func EscapeLiteral(s string) string {
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	return s
}
