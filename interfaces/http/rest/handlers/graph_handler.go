package handlers

import (
	"net/http"

	"github.com/oorlinsky/conceptual-server-graph/application/queries"
	"github.com/oorlinsky/conceptual-server-graph/application/queries/bus"
	"github.com/oorlinsky/conceptual-server-graph/pkg/common"
	apperrors "github.com/oorlinsky/conceptual-server-graph/pkg/errors"

	"go.uber.org/zap"
)

// GraphHandler handles graph retrieval HTTP requests
type GraphHandler struct {
	queryBus *bus.QueryBus
	errors   *apperrors.ErrorHandler
	logger   *zap.Logger
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(queryBus *bus.QueryBus, logger *zap.Logger) *GraphHandler {
	return &GraphHandler{
		queryBus: queryBus,
		errors:   apperrors.NewErrorHandler(logger),
		logger:   logger,
	}
}

// GetGraph handles GET /graph
func (h *GraphHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetGraphQuery{})
	if err != nil {
		h.errors.WriteGraphError(w, err)
		return
	}

	graph, ok := result.(queries.GetGraphResult)
	if !ok {
		h.logger.Error("unexpected result type from query bus")
		common.RespondError(w, http.StatusInternalServerError, "failed to query graph store")
		return
	}

	common.RespondJSON(w, http.StatusOK, graph)
}
