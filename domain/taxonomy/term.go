package taxonomy

import (
	"strings"

	apperrors "github.com/oorlinsky/conceptual-server-graph/pkg/errors"
)

// Term is a taxonomy concept: a minted URI with a human-readable label,
// an optional descriptive note and the concept it sits under. Terms are
// transient in this process; the graph store is the system of record.
type Term struct {
	ID       string
	Label    string
	Comment  string
	ParentID string
}

// NewTerm builds a term, enforcing the single invariant this service
// owns: a term must carry a non-empty label.
func NewTerm(id, label, comment, parentID string) (Term, error) {
	if strings.TrimSpace(id) == "" {
		return Term{}, apperrors.NewInternalError("term identifier must not be empty")
	}
	if label == "" {
		return Term{}, apperrors.NewValidationError("label is required")
	}
	return Term{
		ID:       id,
		Label:    label,
		Comment:  comment,
		ParentID: parentID,
	}, nil
}

// HasParent reports whether an explicit parent concept was supplied.
// Terms without one are attached under the configured root.
func (t Term) HasParent() bool {
	return t.ParentID != ""
}
