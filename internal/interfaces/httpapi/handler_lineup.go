package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/maelvns/footlogic/internal/domain/lineup"
	"github.com/maelvns/footlogic/internal/usecase"
)

type lineupSaveRequest struct {
	Formation   string              `json:"formation" validate:"required"`
	Starters    map[string]string   `json:"starters"`
	Substitutes []string            `json:"substitutes"`
	Captains    []string            `json:"captains"`
	SetPieces   map[string][]string `json:"setPieces"`
}

type tacticalConfigRequest struct {
	TacticalConfig map[string]string `json:"tacticalConfig" validate:"required"`
}

type lineupDTO struct {
	ClubID         string              `json:"clubId"`
	TeamID         string              `json:"teamId,omitempty"`
	Formation      string              `json:"formation"`
	Starters       map[string]string   `json:"starters"`
	Substitutes    []string            `json:"substitutes"`
	Captains       []string            `json:"captains"`
	SetPieces      map[string][]string `json:"setPieces"`
	TacticalConfig map[string]string   `json:"tacticalConfig"`
	UpdatedAt      string              `json:"updatedAt,omitempty"`
}

func (h *Handler) GetActiveLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetActiveLineup")
	defer span.End()

	clubID := strings.TrimSpace(r.PathValue("clubID"))
	teamID := strings.TrimSpace(r.PathValue("teamID"))

	item, err := h.lineupService.GetActive(ctx, clubID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get lineup failed", "club_id", clubID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineupToDTO(item))
}

func (h *Handler) SaveLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveLineup")
	defer span.End()

	clubID := strings.TrimSpace(r.PathValue("clubID"))
	teamID := strings.TrimSpace(r.PathValue("teamID"))

	var req lineupSaveRequest
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

	item, err := h.lineupService.Save(ctx, usecase.SaveLineupInput{
		ClubID:      clubID,
		TeamID:      teamID,
		Formation:   req.Formation,
		Starters:    req.Starters,
		Substitutes: req.Substitutes,
		Captains:    req.Captains,
		SetPieces:   req.SetPieces,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "save lineup failed", "club_id", clubID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineupToDTO(item))
}

func (h *Handler) SaveTacticalConfig(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveTacticalConfig")
	defer span.End()

	clubID := strings.TrimSpace(r.PathValue("clubID"))
	teamID := strings.TrimSpace(r.PathValue("teamID"))

	var req tacticalConfigRequest
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

	if err := h.lineupService.SaveTacticalConfig(ctx, clubID, teamID, req.TacticalConfig); err != nil {
		h.logger.WarnContext(ctx, "save tactical config failed", "club_id", clubID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"saved": true})
}

func lineupToDTO(item lineup.Lineup) lineupDTO {
	dto := lineupDTO{
		ClubID:         item.ClubID,
		TeamID:         item.TeamID,
		Formation:      item.Formation,
		Starters:       item.Starters,
		Substitutes:    item.Substitutes,
		Captains:       item.Captains,
		SetPieces:      item.SetPieces,
		TacticalConfig: item.TacticalConfig,
	}
	if dto.Starters == nil {
		dto.Starters = map[string]string{}
	}
	if dto.Substitutes == nil {
		dto.Substitutes = []string{}
	}
	if dto.Captains == nil {
		dto.Captains = []string{}
	}
	if dto.SetPieces == nil {
		dto.SetPieces = map[string][]string{}
	}
	if dto.TacticalConfig == nil {
		dto.TacticalConfig = map[string]string{}
	}
	if !item.UpdatedAt.IsZero() {
		dto.UpdatedAt = item.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return dto
}
