package queries

// GetGraphQuery represents a request for the full concept graph. It
// carries no parameters; every call re-queries the store in full.
type GetGraphQuery struct{}

// Validate validates the query
func (q GetGraphQuery) Validate() error {
	return nil
}

// GraphNode is one node entry for the visualization client. Label and
// comment default to empty strings when the store has no binding.
type GraphNode struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Comment string `json:"comment"`
}

// GraphEdge is one hierarchy edge for the visualization client.
type GraphEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Type   string `json:"type"`
}

// GetGraphResult is the flattened graph snapshot built from the store's
// current state. It is never cached; node identifiers may repeat since
// the flattening performs no de-duplication.
type GetGraphResult struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}
