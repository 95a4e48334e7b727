package httpapi

import (
	"net/http"
	"strings"
)

type playerDTO struct {
	ID           string `json:"id"`
	ClubID       string `json:"clubId"`
	TeamID       string `json:"teamId,omitempty"`
	Name         string `json:"name"`
	JerseyNumber int    `json:"jerseyNumber"`
	Position     string `json:"position"`
	Status       string `json:"status"`
}

func (h *Handler) ListClubPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubPlayers")
	defer span.End()

	clubID := strings.TrimSpace(r.PathValue("clubID"))
	teamID := strings.TrimSpace(r.URL.Query().Get("team_id"))

	players, err := h.attendanceService.ClubRoster(ctx, clubID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list club players failed", "club_id", clubID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]playerDTO, 0, len(players))
	for _, p := range players {
		out = append(out, playerDTO{
			ID:           p.ID,
			ClubID:       p.ClubID,
			TeamID:       p.TeamID,
			Name:         p.Name,
			JerseyNumber: p.JerseyNumber,
			Position:     string(p.Position),
			Status:       string(p.Status),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}
