package ports

import (
	"context"

	"github.com/oorlinsky/conceptual-server-graph/pkg/sparql"
)

// TripleStore is the outbound port to the external RDF store. Both
// operations are single synchronous calls; the store owns all data and
// durability.
type TripleStore interface {
	// Update submits a SPARQL update document to the store's update
	// endpoint. A nil error means the store acknowledged with no content.
	Update(ctx context.Context, update string) error

	// Select runs a SPARQL query against the store's query endpoint and
	// returns the tabular result document.
	Select(ctx context.Context, query string) (*sparql.ResultSet, error)
}
