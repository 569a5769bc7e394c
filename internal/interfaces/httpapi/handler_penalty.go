package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/keeper-league/internal/usecase"
)

type penaltyDTO struct {
	ID         int64     `json:"id"`
	ContractID int64     `json:"contract_id"`
	TeamID     string    `json:"team_id"`
	Year       int       `json:"year"`
	Amount     int64     `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

func (h *Handler) ListTeamPenalties(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamPenalties")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	teamID := strings.TrimSpace(r.PathValue("teamID"))

	summary, err := h.penaltyService.ListTeamPenalties(ctx, leagueID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list team penalties failed", "league_id", leagueID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]penaltyDTO, 0, len(summary.Penalties))
	for _, p := range summary.Penalties {
		items = append(items, penaltyDTO{
			ID:         p.ID,
			ContractID: p.ContractID,
			TeamID:     p.TeamID,
			Year:       p.Year,
			Amount:     p.Amount,
			CreatedAt:  p.CreatedAt,
		})
	}

	totalByYear := make(map[string]int64, len(summary.TotalByYear))
	for year, total := range summary.TotalByYear {
		totalByYear[strconv.Itoa(year)] = total
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"league_id":     summary.LeagueID,
		"team_id":       summary.TeamID,
		"penalties":     items,
		"total_by_year": totalByYear,
		"total":         summary.Total,
	})
}

func (h *Handler) ListYearPenalties(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListYearPenalties")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	year, err := strconv.Atoi(strings.TrimSpace(r.PathValue("year")))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: year must be an integer", usecase.ErrInvalidInput))
		return
	}

	rows, err := h.penaltyService.ListYearPenalties(ctx, leagueID, year)
	if err != nil {
		h.logger.WarnContext(ctx, "list year penalties failed", "league_id", leagueID, "year", year, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]penaltyDTO, 0, len(rows))
	for _, p := range rows {
		items = append(items, penaltyDTO{
			ID:         p.ID,
			ContractID: p.ContractID,
			TeamID:     p.TeamID,
			Year:       p.Year,
			Amount:     p.Amount,
			CreatedAt:  p.CreatedAt,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
