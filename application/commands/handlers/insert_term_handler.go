package handlers

import (
	"context"

	"github.com/oorlinsky/conceptual-server-graph/application/commands"
	"github.com/oorlinsky/conceptual-server-graph/application/commands/bus"
	"github.com/oorlinsky/conceptual-server-graph/application/ports"
	"github.com/oorlinsky/conceptual-server-graph/domain/taxonomy"
	apperrors "github.com/oorlinsky/conceptual-server-graph/pkg/errors"
	"github.com/oorlinsky/conceptual-server-graph/pkg/sparql"

	"go.uber.org/zap"
)

// InsertTermHandler translates an InsertTermCommand into a SPARQL
// update and submits it to the graph store. There is no retry and no
// rollback: a failed update leaves the store in an indeterminate state
// and the operation must be treated as non-idempotent.
type InsertTermHandler struct {
	store   ports.TripleStore
	rootURI string
	logger  *zap.Logger
}

// NewInsertTermHandler creates a new insert term handler
func NewInsertTermHandler(store ports.TripleStore, rootURI string, logger *zap.Logger) *InsertTermHandler {
	return &InsertTermHandler{
		store:   store,
		rootURI: rootURI,
		logger:  logger,
	}
}

// Handle implements bus.CommandHandler
func (h *InsertTermHandler) Handle(ctx context.Context, cmd bus.Command) error {
	c, ok := cmd.(commands.InsertTermCommand)
	if !ok {
		return apperrors.NewInternalError("unexpected command type for insert term handler")
	}

	term, err := taxonomy.NewTerm(c.TermID, c.Label, c.Comment, c.ParentID)
	if err != nil {
		return err
	}

	parent := h.rootURI
	if term.HasParent() {
		parent = term.ParentID
	}

	update := sparql.BuildInsertTerm(term.ID, term.Label, term.Comment, parent)
	h.logger.Debug("submitting term insert",
		zap.String("termID", term.ID),
		zap.String("update", update),
	)

	return h.store.Update(ctx, update)
}
