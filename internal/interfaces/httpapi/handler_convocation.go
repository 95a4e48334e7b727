package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/maelvns/footlogic/internal/domain/event"
	"github.com/maelvns/footlogic/internal/usecase"
)

type convocationIssueRequest struct {
	PlayerIDs []string `json:"playerIds" validate:"required,min=1,dive,required"`
}

type convocationRespondRequest struct {
	Status string `json:"status" validate:"required"`
}

type convocationDTO struct {
	Status       string `json:"status"`
	ResponseDate string `json:"responseDate,omitempty"`
}

func (h *Handler) IssueConvocations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IssueConvocations")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))

	var req convocationIssueRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.convocationService.Issue(ctx, eventID, req.PlayerIDs); err != nil {
		h.logger.WarnContext(ctx, "issue convocations failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{"issued": len(req.PlayerIDs)})
}

func (h *Handler) RespondConvocation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RespondConvocation")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))
	playerID := strings.TrimSpace(r.PathValue("playerID"))

	var req convocationRespondRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	if err := h.convocationService.Respond(ctx, eventID, playerID, req.Status); err != nil {
		h.logger.WarnContext(ctx, "convocation response failed", "event_id", eventID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"saved": true})
}

func (h *Handler) GetConvocations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetConvocations")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))
	convocations, err := h.convocationService.Get(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "get convocations failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make(map[string]convocationDTO, len(convocations))
	for playerID, entry := range convocations {
		out[playerID] = convocationToDTO(entry)
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func convocationToDTO(entry event.Convocation) convocationDTO {
	dto := convocationDTO{Status: entry.Status}
	if entry.ResponseDate != nil {
		dto.ResponseDate = entry.ResponseDate.UTC().Format(time.RFC3339)
	}
	return dto
}
