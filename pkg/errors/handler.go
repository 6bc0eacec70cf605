package errors

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ErrorHandler maps internal errors onto the client-facing HTTP
// responses. All shaping of store failures happens here so the
// pass-through boundary stays in one auditable place.
type ErrorHandler struct {
	logger *zap.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *zap.Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// WriteInsertError writes the failure response for the term insertion
// endpoint. Validation errors become 400s, unexpected store statuses are
// passed through verbatim (payload included when the store sent one) and
// everything else collapses to a generic 500.
func (h *ErrorHandler) WriteInsertError(w http.ResponseWriter, err error) {
	appErr := GetAppError(err)
	if appErr == nil {
		h.logger.Error("unhandled error on term insert", zap.Error(err))
		h.write(w, http.StatusInternalServerError, map[string]interface{}{
			"error": "failed to store term",
		})
		return
	}

	switch appErr.Type {
	case ErrorTypeValidation:
		h.write(w, appErr.HTTPStatus, map[string]interface{}{
			"error": appErr.Message,
		})
	case ErrorTypeUpstream:
		h.logger.Warn("graph store rejected term insert",
			zap.Int("storeStatus", appErr.StoreStatus),
			zap.String("storePayload", appErr.StorePayload),
		)
		body := map[string]interface{}{"message": appErr.Message}
		if appErr.StorePayload != "" {
			body = map[string]interface{}{"error": appErr.StorePayload}
		}
		h.write(w, appErr.StoreStatus, body)
	default:
		h.logger.Error("term insert failed", zap.Error(err))
		h.write(w, http.StatusInternalServerError, map[string]interface{}{
			"error": "failed to store term",
		})
	}
}

// WriteGraphError writes the failure response for the graph retrieval
// endpoint, carrying the raw store status alongside the message when the
// store answered with something other than 200.
func (h *ErrorHandler) WriteGraphError(w http.ResponseWriter, err error) {
	appErr := GetAppError(err)
	if appErr != nil && appErr.Type == ErrorTypeUpstream {
		h.logger.Warn("graph store rejected graph query",
			zap.Int("storeStatus", appErr.StoreStatus),
			zap.String("storePayload", appErr.StorePayload),
		)
		h.write(w, appErr.StoreStatus, map[string]interface{}{
			"message":       appErr.Message,
			"graphDbStatus": appErr.StoreStatus,
		})
		return
	}

	h.logger.Error("graph retrieval failed", zap.Error(err))
	h.write(w, http.StatusInternalServerError, map[string]interface{}{
		"error": "failed to query graph store",
	})
}

func (h *ErrorHandler) write(w http.ResponseWriter, status int, body map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode error response", zap.Error(err))
	}
}
