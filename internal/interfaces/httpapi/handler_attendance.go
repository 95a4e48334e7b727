package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/maelvns/footlogic/internal/usecase"
)

type attendanceSetRequest struct {
	Status string `json:"status" validate:"required"`
}

type attendanceBulkRequest struct {
	Entries map[string]string `json:"entries" validate:"required"`
}

type attendeeRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
}

type rosterEntryDTO struct {
	PlayerID     string `json:"playerId"`
	Name         string `json:"name"`
	JerseyNumber int    `json:"jerseyNumber"`
	Position     string `json:"position"`
	Status       string `json:"status,omitempty"`
}

func (h *Handler) SetAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetAttendance")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))
	playerID := strings.TrimSpace(r.PathValue("playerID"))

	var req attendanceSetRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	if err := h.attendanceService.Set(ctx, eventID, playerID, req.Status); err != nil {
		h.logger.WarnContext(ctx, "set attendance failed", "event_id", eventID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"saved": true})
}

func (h *Handler) SetBulkAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetBulkAttendance")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))

	var req attendanceBulkRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	if err := h.attendanceService.SetBulk(ctx, eventID, req.Entries); err != nil {
		h.logger.WarnContext(ctx, "set bulk attendance failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"saved": true})
}

func (h *Handler) GetAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAttendance")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))
	attendance, err := h.attendanceService.Get(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "get attendance failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, attendance)
}

func (h *Handler) GetAttendanceRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAttendanceRoster")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))
	roster, err := h.attendanceService.Roster(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "get attendance roster failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]rosterEntryDTO, 0, len(roster))
	for _, entry := range roster {
		out = append(out, rosterEntryDTO{
			PlayerID:     entry.Player.ID,
			Name:         entry.Player.Name,
			JerseyNumber: entry.Player.JerseyNumber,
			Position:     string(entry.Player.Position),
			Status:       entry.Status,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) AddAttendee(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddAttendee")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))

	var req attendeeRequest
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

	if err := h.attendanceService.AddAttendee(ctx, eventID, req.PlayerID); err != nil {
		h.logger.WarnContext(ctx, "add attendee failed", "event_id", eventID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"saved": true})
}

func (h *Handler) RemoveAttendee(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveAttendee")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))
	playerID := strings.TrimSpace(r.PathValue("playerID"))

	if err := h.attendanceService.RemoveAttendee(ctx, eventID, playerID); err != nil {
		h.logger.WarnContext(ctx, "remove attendee failed", "event_id", eventID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"saved": true})
}
