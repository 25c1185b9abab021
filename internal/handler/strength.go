package handler

import (
	"net/http"

	"github.com/securepass/securepass-go/internal/history"
	"github.com/securepass/securepass-go/internal/middleware"
	"github.com/securepass/securepass-go/internal/model"
	"github.com/securepass/securepass-go/internal/service"
)

// StrengthHandler handles HTTP requests for password evaluation.
type StrengthHandler struct {
	service *service.StrengthService
	history *service.HistoryService
}

// NewStrengthHandler creates a StrengthHandler. hist may be nil.
func NewStrengthHandler(svc *service.StrengthService, hist *service.HistoryService) *StrengthHandler {
	return &StrengthHandler{service: svc, history: hist}
}

// HandleEvaluate handles POST /api/v1/evaluate requests.
func (h *StrengthHandler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req model.EvaluateRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	resp := h.service.Evaluate(req)

	// Empty submissions are scored but not remembered.
	if userID, ok := middleware.UserIDFromContext(r.Context()); ok && h.history != nil && req.Password != "" {
		h.history.Record(r.Context(), userID, req.Password, history.KindChecked, string(resp.Strength))
	}

	writeJSON(w, http.StatusOK, resp)
}
