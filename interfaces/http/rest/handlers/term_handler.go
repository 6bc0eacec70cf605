package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/oorlinsky/conceptual-server-graph/application/commands"
	"github.com/oorlinsky/conceptual-server-graph/application/commands/bus"
	"github.com/oorlinsky/conceptual-server-graph/pkg/common"
	apperrors "github.com/oorlinsky/conceptual-server-graph/pkg/errors"
	"github.com/oorlinsky/conceptual-server-graph/pkg/sparql"
	"github.com/oorlinsky/conceptual-server-graph/pkg/utils"

	"go.uber.org/zap"
)

// TermHandler handles taxonomy term HTTP requests
type TermHandler struct {
	commandBus *bus.CommandBus
	errors     *apperrors.ErrorHandler
	baseURI    string
	logger     *zap.Logger
}

// NewTermHandler creates a new term handler
func NewTermHandler(commandBus *bus.CommandBus, baseURI string, logger *zap.Logger) *TermHandler {
	return &TermHandler{
		commandBus: commandBus,
		errors:     apperrors.NewErrorHandler(logger),
		baseURI:    baseURI,
		logger:     logger,
	}
}

// InsertTermRequest represents the request body for inserting a term
type InsertTermRequest struct {
	Label    string `json:"label" validate:"required"`
	Comment  string `json:"comment,omitempty"`
	ParentID string `json:"parentId,omitempty" validate:"omitempty,uri"`
}

// InsertTermResponse represents the response for a stored term
type InsertTermResponse struct {
	Message string `json:"message"`
	TermID  string `json:"termId"`
}

// InsertTerm handles POST /insert-term
func (h *TermHandler) InsertTerm(w http.ResponseWriter, r *http.Request) {
	var req InsertTermRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	termID := sparql.MintTermURI(h.baseURI)

	cmd := commands.InsertTermCommand{
		TermID:   termID,
		Label:    req.Label,
		Comment:  req.Comment,
		ParentID: req.ParentID,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errors.WriteInsertError(w, err)
		return
	}

	h.logger.Info("term stored", zap.String("termID", termID))
	common.RespondJSON(w, http.StatusOK, InsertTermResponse{
		Message: "term stored",
		TermID:  termID,
	})
}
