package sparql

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const prefixes = `PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
PREFIX skos: <http://www.w3.org/2004/02/skos/core#>

`

// MintTermURI returns a new term URI under the given base namespace.
// A random UUID is used rather than a timestamp so concurrent requests
// cannot mint the same identifier.
func MintTermURI(baseURI string) string {
	return baseURI + "term/" + uuid.NewString()
}

// BuildInsertTerm constructs the SPARQL update document that stores a
// single taxonomy term: one label assertion, a note assertion only when
// the comment is non-empty, and a narrower link from the parent concept.
// All literals are escaped; the triples form one atomic INSERT DATA block.
func BuildInsertTerm(termURI, label, comment, parentURI string) string {
	var b strings.Builder
	b.WriteString(prefixes)
	b.WriteString("INSERT DATA {\n")
	fmt.Fprintf(&b, "\t<%s> rdfs:label \"%s\" .\n", termURI, EscapeLiteral(label))
	if comment != "" {
		fmt.Fprintf(&b, "\t<%s> skos:note \"%s\" .\n", termURI, EscapeLiteral(comment))
	}
	fmt.Fprintf(&b, "\t<%s> skos:narrower <%s> .\n", parentURI, termURI)
	b.WriteString("}\n")
	return b.String()
}

// BuildGraphQuery constructs the fixed SELECT used to render the whole
// concept graph. Every candidate node is returned together with its
// optional label, optional note and any incoming narrower relation.
//
// Note: the FILTER references ?nodeType, which no pattern in the query
// binds. The first two disjuncts therefore never match and only the
// "Root" / reachable-from-root conditions take effect. This mirrors the
// query the store has been serving in production; see DESIGN.md before
// changing it.
func BuildGraphQuery(rootURI string) string {
	var b strings.Builder
	b.WriteString(prefixes)
	b.WriteString("SELECT ?node ?label ?comment ?source ?relation\n")
	b.WriteString("WHERE {\n")
	b.WriteString("\t?node ?predicate ?object .\n")
	b.WriteString("\tOPTIONAL { ?node rdfs:label ?label }\n")
	b.WriteString("\tOPTIONAL { ?node skos:note ?comment }\n")
	b.WriteString("\tOPTIONAL { ?source ?relation ?node . FILTER(?relation = skos:narrower) }\n")
	b.WriteString("\tFILTER (\n")
	b.WriteString("\t\tCONTAINS(STR(?nodeType), \"Term\") ||\n")
	b.WriteString("\t\tCONTAINS(STR(?nodeType), \"Role\") ||\n")
	b.WriteString("\t\tCONTAINS(STR(?node), \"Root\") ||\n")
	fmt.Fprintf(&b, "\t\tEXISTS { <%s> skos:narrower ?node }\n", rootURI)
	b.WriteString("\t)\n")
	b.WriteString("}\n")
	return b.String()
}
