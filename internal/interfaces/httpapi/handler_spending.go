package httpapi

import (
	"net/http"
	"strconv"
	"strings"
)

func (h *Handler) GetPositionRanks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPositionRanks")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	teamID := strings.TrimSpace(r.PathValue("teamID"))

	view, err := h.spendingService.PositionRanks(ctx, leagueID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get position ranks failed", "league_id", leagueID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, view)
}

func (h *Handler) GetFutureYearRanks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFutureYearRanks")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	teamID := strings.TrimSpace(r.PathValue("teamID"))

	view, err := h.spendingService.FutureYearRanks(ctx, leagueID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get future year ranks failed", "league_id", leagueID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	// JSON object keys are strings; map the year keys explicitly so the
	// payload shape is stable.
	years := make(map[string]any, len(view.Years))
	for year, rank := range view.Years {
		years[strconv.Itoa(year)] = rank
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"league_id": view.LeagueID,
		"team_id":   view.TeamID,
		"years":     years,
	})
}
