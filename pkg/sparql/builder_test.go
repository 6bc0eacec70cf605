package sparql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRoot = "http://example.org/Root"

func TestMintTermURI(t *testing.T) {
	base := "http://example.org/taxonomy/"

	first := MintTermURI(base)
	second := MintTermURI(base)

	assert.True(t, strings.HasPrefix(first, base+"term/"))
	assert.NotEqual(t, first, second, "consecutive mints must differ")
}

func TestBuildInsertTerm_LabelOnly(t *testing.T) {
	update := BuildInsertTerm("http://example.org/term/1", "Fruit", "", testRoot)

	assert.Contains(t, update, "INSERT DATA {")
	assert.Equal(t, 1, strings.Count(update, "rdfs:label"), "exactly one label assertion")
	assert.Equal(t, 0, strings.Count(update, "skos:note"), "no note assertion without a comment")
	assert.Contains(t, update, `<http://example.org/term/1> rdfs:label "Fruit" .`)
	assert.Contains(t, update, `<`+testRoot+`> skos:narrower <http://example.org/term/1> .`,
		"parentless term links under the root")
}

func TestBuildInsertTerm_WithCommentAndParent(t *testing.T) {
	update := BuildInsertTerm("http://example.org/term/2", "Apple", "A fruit", "http://example.org/Fruit")

	assert.Equal(t, 1, strings.Count(update, "rdfs:label"))
	assert.Equal(t, 1, strings.Count(update, "skos:note"))
	assert.Contains(t, update, `<http://example.org/term/2> skos:note "A fruit" .`)
	assert.Contains(t, update, `<http://example.org/Fruit> skos:narrower <http://example.org/term/2> .`)
	assert.NotContains(t, update, testRoot, "explicit parent replaces the root link")
}

func TestBuildInsertTerm_EscapesLiterals(t *testing.T) {
	update := BuildInsertTerm("http://example.org/term/3", `say "hi"`, "line\nbreak", testRoot)

	assert.Contains(t, update, `rdfs:label "say \"hi\"" .`)
	assert.Contains(t, update, `skos:note "line\nbreak" .`)
	assert.NotContains(t, update, "line\nbreak", "raw newline must not survive inside the literal")
}

func TestBuildGraphQuery(t *testing.T) {
	query := BuildGraphQuery(testRoot)

	require.Contains(t, query, "SELECT ?node ?label ?comment ?source ?relation")
	assert.Contains(t, query, "OPTIONAL { ?node rdfs:label ?label }")
	assert.Contains(t, query, "OPTIONAL { ?node skos:note ?comment }")
	assert.Contains(t, query, "OPTIONAL { ?source ?relation ?node . FILTER(?relation = skos:narrower) }")
	assert.Contains(t, query, `EXISTS { <`+testRoot+`> skos:narrower ?node }`)

	// The ?nodeType filter conditions are carried over verbatim even
	// though the variable is never bound. See DESIGN.md.
	assert.Contains(t, query, `CONTAINS(STR(?nodeType), "Term")`)
	assert.Contains(t, query, `CONTAINS(STR(?nodeType), "Role")`)
	assert.NotContains(t, query, "?nodeType .", "no pattern may bind ?nodeType")
}
