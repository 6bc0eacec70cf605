package sparql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// unescapeLiteral reverses EscapeLiteral the way a SPARQL string-literal
// parser would, for checking the round-trip law.
func unescapeLiteral(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(s[i])
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func TestEscapeLiteral(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string passes through",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text unchanged",
			input:    "Fruit",
			expected: "Fruit",
		},
		{
			name:     "double quote",
			input:    `a "quoted" word`,
			expected: `a \"quoted\" word`,
		},
		{
			name:     "backslash escaped first, not doubled",
			input:    `C:\temp`,
			expected: `C:\\temp`,
		},
		{
			name:     "newline",
			input:    "line one\nline two",
			expected: `line one\nline two`,
		},
		{
			name:     "carriage return and tab",
			input:    "a\r\tb",
			expected: `a\r\tb`,
		},
		{
			name:     "literal backslash-n is not confused with newline",
			input:    `not a \n newline`,
			expected: `not a \\n newline`,
		},
		{
			name:     "all special characters mixed",
			input:    "\\\"\n\r\t",
			expected: `\\\"\n\r\t`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeLiteral(tt.input))
		})
	}
}

func TestIsValidIRIRef(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "plain http IRI", input: "http://example.org/Fruit", valid: true},
		{name: "IRI with fragment", input: "http://example.org/kb#Root", valid: true},
		{name: "empty", input: "", valid: false},
		{name: "closing angle bracket", input: "http://example.org/Fruit>", valid: false},
		{name: "space", input: "http://example.org/a b", valid: false},
		{name: "triple injection", input: "http://example.org/x> . <http://e> <http://p> <http://o", valid: false},
		{name: "quote", input: `http://example.org/"x`, valid: false},
		{name: "backslash", input: `http://example.org/\x`, valid: false},
		{name: "control character", input: "http://example.org/a\nb", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidIRIRef(tt.input))
		})
	}
}

func TestEscapeLiteral_RoundTrip(t *testing.T) {
	inputs := []string{
		"plain",
		`back\slash`,
		`"quotes"`,
		"new\nline",
		"tab\tand\rreturn",
		`mix \" of \\ everything` + "\n\t\r",
		`\n`,
		`\\n`,
		`\"`,
	}

	for _, in := range inputs {
		escaped := EscapeLiteral(in)
		assert.NotContains(t, strings.ReplaceAll(escaped, `\\`, ""), "\n",
			"escaped literal must not contain raw newlines")
		assert.Equal(t, in, unescapeLiteral(escaped), "round trip for %q", in)
	}
}
