package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/maelvns/footlogic/internal/domain/preset"
	"github.com/maelvns/footlogic/internal/usecase"
)

type presetSaveRequest struct {
	Name         string              `json:"name" validate:"required,max=100"`
	Description  string              `json:"description" validate:"max=500"`
	Formation    string              `json:"formation" validate:"required"`
	Starters     map[string]string   `json:"starters"`
	Substitutes  []string            `json:"substitutes"`
	Instructions string              `json:"instructions" validate:"max=2000"`
	Captains     []string            `json:"captains"`
	SetPieces    map[string][]string `json:"setPieces"`
}

type presetDTO struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Description  string              `json:"description,omitempty"`
	Formation    string              `json:"formation"`
	Starters     map[string]string   `json:"starters"`
	Substitutes  []string            `json:"substitutes"`
	Instructions string              `json:"instructions,omitempty"`
	Captains     []string            `json:"captains"`
	SetPieces    map[string][]string `json:"setPieces"`
	CreatedAt    string              `json:"createdAt"`
}

func (h *Handler) SavePreset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SavePreset")
	defer span.End()

	clubID := strings.TrimSpace(r.PathValue("clubID"))
	teamID := strings.TrimSpace(r.PathValue("teamID"))

	var req presetSaveRequest
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

	presetID, err := h.presetService.Save(ctx, usecase.SavePresetInput{
		ClubID:       clubID,
		TeamID:       teamID,
		Name:         req.Name,
		Description:  req.Description,
		Formation:    req.Formation,
		Starters:     req.Starters,
		Substitutes:  req.Substitutes,
		Instructions: req.Instructions,
		Captains:     req.Captains,
		SetPieces:    req.SetPieces,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "save preset failed", "club_id", clubID, "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, map[string]string{"presetId": presetID})
}

func (h *Handler) ListPresets(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPresets")
	defer span.End()

	clubID := strings.TrimSpace(r.PathValue("clubID"))
	teamID := strings.TrimSpace(r.PathValue("teamID"))

	items, err := h.presetService.List(ctx, clubID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list presets failed", "club_id", clubID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]presetDTO, 0, len(items))
	for _, item := range items {
		out = append(out, presetToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetPreset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPreset")
	defer span.End()

	presetID := strings.TrimSpace(r.PathValue("presetID"))
	item, err := h.presetService.Load(ctx, presetID)
	if err != nil {
		h.logger.WarnContext(ctx, "get preset failed", "preset_id", presetID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, presetToDTO(item))
}

func (h *Handler) ApplyPreset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApplyPreset")
	defer span.End()

	clubID := strings.TrimSpace(r.PathValue("clubID"))
	teamID := strings.TrimSpace(r.PathValue("teamID"))
	presetID := strings.TrimSpace(r.PathValue("presetID"))

	if err := h.presetService.Apply(ctx, clubID, teamID, presetID); err != nil {
		h.logger.WarnContext(ctx, "apply preset failed", "club_id", clubID, "preset_id", presetID, "error", err)
		writeError(ctx, w, err)
		return
	}

	item, err := h.lineupService.GetActive(ctx, clubID, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineupToDTO(item))
}

func (h *Handler) DeletePreset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePreset")
	defer span.End()

	presetID := strings.TrimSpace(r.PathValue("presetID"))
	if err := h.presetService.Delete(ctx, presetID); err != nil {
		h.logger.WarnContext(ctx, "delete preset failed", "preset_id", presetID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

func presetToDTO(item preset.TacticPreset) presetDTO {
	starters := item.Starters.Slots
	if item.Starters.IsLegacy() || starters == nil {
		starters = map[string]string{}
	}

	dto := presetDTO{
		ID:           item.ID,
		Name:         item.Name,
		Description:  item.Description,
		Formation:    item.Formation,
		Starters:     starters,
		Substitutes:  item.Substitutes,
		Instructions: item.Instructions,
		Captains:     item.Captains,
		SetPieces:    item.SetPieces,
		CreatedAt:    item.CreatedAt.UTC().Format(time.RFC3339),
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
	return dto
}
