package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/maelvns/footlogic/internal/domain/event"
	"github.com/maelvns/footlogic/internal/domain/season"
	"github.com/maelvns/footlogic/internal/usecase"
)

type eventCreateRequest struct {
	TeamID      string `json:"teamId"`
	Title       string `json:"title" validate:"required,max=200"`
	Type        string `json:"type" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Location    string `json:"location" validate:"max=200"`
	Description string `json:"description" validate:"max=2000"`
	Opponent    string `json:"opponent" validate:"max=200"`
	IsHome      *bool  `json:"isHome"`
	CreatedBy   string `json:"createdBy"`
}

type scoreRequest struct {
	Home   int    `json:"home" validate:"min=0"`
	Away   int    `json:"away" validate:"min=0"`
	Status string `json:"status"`
}

type matchEventRequest struct {
	Type     string `json:"type" validate:"required"`
	PlayerID string `json:"playerId" validate:"required"`
	Minute   int    `json:"minute" validate:"min=0"`
}

type eventDTO struct {
	ID           string                       `json:"id"`
	ClubID       string                       `json:"clubId"`
	TeamID       string                       `json:"teamId,omitempty"`
	Title        string                       `json:"title"`
	Type         string                       `json:"type"`
	Date         string                       `json:"date"`
	Location     string                       `json:"location,omitempty"`
	Description  string                       `json:"description,omitempty"`
	Opponent     string                       `json:"opponent,omitempty"`
	IsHome       bool                         `json:"isHome"`
	Attendance   map[string]string            `json:"attendance"`
	Score        event.Score                  `json:"score"`
	MatchEvents  []event.MatchEvent           `json:"matchEvents"`
	Convocations map[string]event.Convocation `json:"convocations"`
	Status       string                       `json:"status"`
	CreatedBy    string                       `json:"createdBy,omitempty"`
	CreatedAt    string                       `json:"createdAt"`
}

type seasonStatsDTO struct {
	Played         int `json:"played"`
	Wins           int `json:"wins"`
	Draws          int `json:"draws"`
	Losses         int `json:"losses"`
	GoalsFor       int `json:"goalsFor"`
	GoalsAgainst   int `json:"goalsAgainst"`
	GoalDifference int `json:"goalDifference"`
	Points         int `json:"points"`
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateEvent")
	defer span.End()

	clubID := strings.TrimSpace(r.PathValue("clubID"))

	var req eventCreateRequest
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

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: date must be RFC3339: %v", usecase.ErrInvalidInput, err))
		return
	}

	isHome := true
	if req.IsHome != nil {
		isHome = *req.IsHome
	}

	item, err := h.matchService.CreateEvent(ctx, usecase.CreateEventInput{
		ClubID:      clubID,
		TeamID:      req.TeamID,
		Title:       req.Title,
		Type:        event.Type(strings.ToLower(strings.TrimSpace(req.Type))),
		Date:        date,
		Location:    req.Location,
		Description: req.Description,
		Opponent:    req.Opponent,
		IsHome:      isHome,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create event failed", "club_id", clubID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, eventToDTO(item))
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEvent")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))
	item, err := h.matchService.GetEvent(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "get event failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventToDTO(item))
}

func (h *Handler) StartMatch(w http.ResponseWriter, r *http.Request) {
	h.transitionMatch(w, r, "httpapi.Handler.StartMatch", h.matchService.Start)
}

func (h *Handler) FinishMatch(w http.ResponseWriter, r *http.Request) {
	h.transitionMatch(w, r, "httpapi.Handler.FinishMatch", h.matchService.Finish)
}

func (h *Handler) CancelMatch(w http.ResponseWriter, r *http.Request) {
	h.transitionMatch(w, r, "httpapi.Handler.CancelMatch", h.matchService.Cancel)
}

func (h *Handler) transitionMatch(
	w http.ResponseWriter,
	r *http.Request,
	spanName string,
	transition func(ctx context.Context, eventID string) error,
) {
	ctx, span := startSpan(r.Context(), spanName)
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))
	if err := transition(ctx, eventID); err != nil {
		h.logger.WarnContext(ctx, "match transition failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.GetEvent(ctx, eventID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventToDTO(item))
}

func (h *Handler) SetScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetScore")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))

	var req scoreRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	if err := h.matchService.SetScore(ctx, eventID, req.Home, req.Away, req.Status); err != nil {
		h.logger.WarnContext(ctx, "set score failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.GetEvent(ctx, eventID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventToDTO(item))
}

func (h *Handler) AddMatchEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddMatchEvent")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))

	var req matchEventRequest
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

	entryType := event.MatchEventType(strings.ToLower(strings.TrimSpace(req.Type)))
	entry, err := h.matchService.AddMatchEvent(ctx, eventID, entryType, req.PlayerID, req.Minute)
	if err != nil {
		h.logger.WarnContext(ctx, "add match event failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, entry)
}

func (h *Handler) GetSeasonStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonStats")
	defer span.End()

	clubID := strings.TrimSpace(r.PathValue("clubID"))
	teamID := strings.TrimSpace(r.URL.Query().Get("team_id"))

	stats, err := h.matchService.SeasonStats(ctx, clubID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "season stats failed", "club_id", clubID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonStatsToDTO(stats))
}

func eventToDTO(item event.Event) eventDTO {
	dto := eventDTO{
		ID:           item.ID,
		ClubID:       item.ClubID,
		TeamID:       item.TeamID,
		Title:        item.Title,
		Type:         string(item.Type),
		Date:         item.Date.UTC().Format(time.RFC3339),
		Location:     item.Location,
		Description:  item.Description,
		Opponent:     item.Opponent,
		IsHome:       item.IsHome,
		Attendance:   item.Attendance,
		Score:        item.Score,
		MatchEvents:  item.MatchEvents,
		Convocations: item.Convocations,
		Status:       string(item.Status),
		CreatedBy:    item.CreatedBy,
		CreatedAt:    item.CreatedAt.UTC().Format(time.RFC3339),
	}
	if dto.Attendance == nil {
		dto.Attendance = map[string]string{}
	}
	if dto.MatchEvents == nil {
		dto.MatchEvents = []event.MatchEvent{}
	}
	if dto.Convocations == nil {
		dto.Convocations = map[string]event.Convocation{}
	}
	return dto
}

func seasonStatsToDTO(stats season.Stats) seasonStatsDTO {
	return seasonStatsDTO{
		Played:         stats.Played,
		Wins:           stats.Wins,
		Draws:          stats.Draws,
		Losses:         stats.Losses,
		GoalsFor:       stats.GoalsFor,
		GoalsAgainst:   stats.GoalsAgainst,
		GoalDifference: stats.GoalDifference,
		Points:         stats.Points,
	}
}
