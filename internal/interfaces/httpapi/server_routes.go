package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerLineupRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/clubs/{clubID}/teams/{teamID}/lineup", handler.GetActiveLineup)
	mux.HandleFunc("PUT /v1/clubs/{clubID}/teams/{teamID}/lineup", handler.SaveLineup)
	mux.HandleFunc("PUT /v1/clubs/{clubID}/teams/{teamID}/lineup/tactical-config", handler.SaveTacticalConfig)

	mux.HandleFunc("GET /v1/clubs/{clubID}/teams/{teamID}/presets", handler.ListPresets)
	mux.HandleFunc("POST /v1/clubs/{clubID}/teams/{teamID}/presets", handler.SavePreset)
	mux.HandleFunc("GET /v1/clubs/{clubID}/teams/{teamID}/presets/{presetID}", handler.GetPreset)
	mux.HandleFunc("POST /v1/clubs/{clubID}/teams/{teamID}/presets/{presetID}/apply", handler.ApplyPreset)
	mux.HandleFunc("DELETE /v1/clubs/{clubID}/teams/{teamID}/presets/{presetID}", handler.DeletePreset)

	mux.HandleFunc("GET /v1/clubs/{clubID}/players", handler.ListClubPlayers)
	mux.HandleFunc("GET /v1/clubs/{clubID}/season-stats", handler.GetSeasonStats)
}

func registerEventRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/clubs/{clubID}/events", handler.CreateEvent)
	mux.HandleFunc("GET /v1/events/{eventID}", handler.GetEvent)

	mux.HandleFunc("GET /v1/events/{eventID}/attendance", handler.GetAttendance)
	mux.HandleFunc("PUT /v1/events/{eventID}/attendance", handler.SetBulkAttendance)
	mux.HandleFunc("PUT /v1/events/{eventID}/attendance/{playerID}", handler.SetAttendance)
	mux.HandleFunc("GET /v1/events/{eventID}/attendance/roster", handler.GetAttendanceRoster)
	mux.HandleFunc("POST /v1/events/{eventID}/attendees", handler.AddAttendee)
	mux.HandleFunc("DELETE /v1/events/{eventID}/attendees/{playerID}", handler.RemoveAttendee)

	mux.HandleFunc("POST /v1/events/{eventID}/start", handler.StartMatch)
	mux.HandleFunc("POST /v1/events/{eventID}/finish", handler.FinishMatch)
	mux.HandleFunc("POST /v1/events/{eventID}/cancel", handler.CancelMatch)
	mux.HandleFunc("PUT /v1/events/{eventID}/score", handler.SetScore)
	mux.HandleFunc("POST /v1/events/{eventID}/match-events", handler.AddMatchEvent)

	mux.HandleFunc("GET /v1/events/{eventID}/convocations", handler.GetConvocations)
	mux.HandleFunc("POST /v1/events/{eventID}/convocations", handler.IssueConvocations)
	mux.HandleFunc("PUT /v1/events/{eventID}/convocations/{playerID}", handler.RespondConvocation)
}
