package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/securepass/securepass-go/internal/crypto"
	"github.com/securepass/securepass-go/internal/history"
	"github.com/securepass/securepass-go/internal/middleware"
	"github.com/securepass/securepass-go/internal/model"
	"github.com/securepass/securepass-go/internal/service"
	"github.com/securepass/securepass-go/internal/strength"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
	history *service.HistoryService
}

// NewGeneratorHandler creates a GeneratorHandler. hist may be nil.
func NewGeneratorHandler(svc *service.GeneratorService, hist *service.HistoryService) *GeneratorHandler {
	return &GeneratorHandler{service: svc, history: hist}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		slog.Error("generate failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if userID, ok := middleware.UserIDFromContext(r.Context()); ok && h.history != nil {
		tier := strength.Evaluate(resp.Password).Strength
		h.history.Record(r.Context(), userID, resp.Password, history.KindGenerated, string(tier))
	}

	writeJSON(w, http.StatusOK, resp)
}

func isValidationError(err error) bool {
	return errors.Is(err, crypto.ErrInvalidLength) ||
		errors.Is(err, service.ErrLengthTooLong)
}
