package commands

import (
	apperrors "github.com/oorlinsky/conceptual-server-graph/pkg/errors"
	"github.com/oorlinsky/conceptual-server-graph/pkg/sparql"
)

// InsertTermCommand represents a request to store a new taxonomy term
// in the graph store. TermID is minted by the caller before dispatch so
// the identifier can be reported back on success.
type InsertTermCommand struct {
	TermID   string `json:"termId"`
	Label    string `json:"label"`
	Comment  string `json:"comment,omitempty"`
	ParentID string `json:"parentId,omitempty"`
}

// Validate validates the command. An empty label is a client error and
// must be rejected before any store call is made.
func (c InsertTermCommand) Validate() error {
	if !sparql.IsValidIRIRef(c.TermID) {
		return apperrors.NewInternalError("termID must be a valid IRI minted before dispatch")
	}
	if c.Label == "" {
		return apperrors.NewValidationError("label is required")
	}
	if c.ParentID != "" && !sparql.IsValidIRIRef(c.ParentID) {
		return apperrors.NewValidationError("parentId is not a valid IRI")
	}
	return nil
}
