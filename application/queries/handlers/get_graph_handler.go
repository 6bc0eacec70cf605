package handlers

import (
	"context"

	"github.com/oorlinsky/conceptual-server-graph/application/ports"
	"github.com/oorlinsky/conceptual-server-graph/application/queries"
	"github.com/oorlinsky/conceptual-server-graph/application/queries/bus"
	"github.com/oorlinsky/conceptual-server-graph/pkg/sparql"

	"go.uber.org/zap"
)

// GetGraphHandler runs the fixed graph SELECT against the store and
// flattens the tabular result into node and edge lists.
type GetGraphHandler struct {
	store   ports.TripleStore
	rootURI string
	logger  *zap.Logger
}

// NewGetGraphHandler creates a new get graph handler
func NewGetGraphHandler(store ports.TripleStore, rootURI string, logger *zap.Logger) *GetGraphHandler {
	return &GetGraphHandler{
		store:   store,
		rootURI: rootURI,
		logger:  logger,
	}
}

// Handle implements bus.QueryHandler
func (h *GetGraphHandler) Handle(ctx context.Context, _ bus.Query) (interface{}, error) {
	query := sparql.BuildGraphQuery(h.rootURI)
	h.logger.Debug("querying concept graph", zap.String("query", query))

	rs, err := h.store.Select(ctx, query)
	if err != nil {
		return nil, err
	}

	return flatten(rs), nil
}

// flatten turns the store's variable bindings into the client-facing
// graph snapshot. Every row contributes one node entry, duplicates
// included; a row contributes an edge only when its source variable is
// bound. The store's result is trusted as-is, no referential checks.
func flatten(rs *sparql.ResultSet) queries.GetGraphResult {
	bindings := rs.Results.Bindings
	result := queries.GetGraphResult{
		Nodes: make([]queries.GraphNode, 0, len(bindings)),
		Edges: make([]queries.GraphEdge, 0, len(bindings)),
	}

	for _, row := range bindings {
		node := row.Value("node")
		result.Nodes = append(result.Nodes, queries.GraphNode{
			ID:      node,
			Label:   row.Value("label"),
			Comment: row.Value("comment"),
		})

		if row.Has("source") {
			result.Edges = append(result.Edges, queries.GraphEdge{
				Source: row.Value("source"),
				Target: node,
				Type:   row.Value("relation"),
			})
		}
	}

	return result
}
