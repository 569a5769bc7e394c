package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/keeper-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/keeper-league/internal/platform/logging"
	"github.com/riskibarqy/keeper-league/internal/usecase"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	leagues := memory.NewLeagueRepository(memory.SeedLeagues())
	players := memory.NewPlayerRepository(memory.SeedPlayers())
	contracts := memory.NewContractRepository(memory.SeedContracts())
	penalties := memory.NewPenaltyRepository(nil)
	treasury := memory.NewTreasuryRepository(memory.SeedFeeSchedules(), nil)

	logger := logging.NewNop()
	handler := NewHandler(
		usecase.NewContractService(leagues, players, contracts, logger),
		nil,
		usecase.NewSpendingService(leagues, players, contracts, nil, logger),
		usecase.NewPenaltyService(penalties, logger),
		usecase.NewTreasuryService(leagues, treasury, testIDGenerator{}, logger),
		logger,
	)

	return NewRouter(handler, logger, []string{"*"}, "job-token")
}

type testIDGenerator struct{}

func (testIDGenerator) NewID() (string, error) { return "vault-test", nil }

func TestCreateContractEndpoint(t *testing.T) {
	router := newTestRouter(t)

	body := `{"team_id":"team-alpha","player_id":"pl-te-01","draft_amount":14}`
	req := httptest.NewRequest(http.MethodPost, "/v1/leagues/"+memory.LeagueIDDynastyOriginal+"/contracts", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data contractDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Data.Duration != 1 {
		t.Fatalf("expected default duration 1, got %d", envelope.Data.Duration)
	}
	if envelope.Data.StartYear != 2026 {
		t.Fatalf("expected start year 2026, got %d", envelope.Data.StartYear)
	}
}

func TestCreateContractEndpoint_DuplicateActiveConflicts(t *testing.T) {
	router := newTestRouter(t)

	body := `{"team_id":"team-alpha","player_id":"pl-qb-01","draft_amount":20}`
	req := httptest.NewRequest(http.MethodPost, "/v1/leagues/"+memory.LeagueIDDynastyOriginal+"/contracts", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestListTeamContractsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/leagues/"+memory.LeagueIDDynastyOriginal+"/teams/team-alpha/contracts", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data []contractDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(envelope.Data) != 3 {
		t.Fatalf("expected 3 contracts, got %d", len(envelope.Data))
	}
	for _, c := range envelope.Data {
		if len(c.Schedule) != c.Duration {
			t.Fatalf("schedule length %d does not match duration %d", len(c.Schedule), c.Duration)
		}
	}
}

func TestSpendingEndpoints(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/leagues/"+memory.LeagueIDDynastyOriginal+"/teams/team-alpha/spending/positions", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data struct {
			Positions map[string]struct {
				Rank       int   `json:"rank"`
				TotalTeams int   `json:"total_teams"`
				Spend      int64 `json:"spend"`
			} `json:"positions"`
		} `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Data.Positions["QB"].Spend != 30 {
		t.Fatalf("expected QB spend 30, got %+v", envelope.Data.Positions["QB"])
	}
}

func TestVaultEndpoints(t *testing.T) {
	router := newTestRouter(t)

	feeReq := httptest.NewRequest(http.MethodPost, "/v1/leagues/"+memory.LeagueIDDynastyOriginal+"/teams/team-alpha/vault/entry-fee", nil)
	feeRec := httptest.NewRecorder()
	router.ServeHTTP(feeRec, feeReq)
	if feeRec.Code != http.StatusCreated {
		t.Fatalf("expected 201 for entry fee, got %d body=%s", feeRec.Code, feeRec.Body.String())
	}

	vaultReq := httptest.NewRequest(http.MethodGet, "/v1/leagues/"+memory.LeagueIDDynastyOriginal+"/teams/team-alpha/vault", nil)
	vaultRec := httptest.NewRecorder()
	router.ServeHTTP(vaultRec, vaultReq)
	if vaultRec.Code != http.StatusOK {
		t.Fatalf("expected 200 for vault, got %d", vaultRec.Code)
	}

	var envelope struct {
		Data struct {
			Balance int64 `json:"balance"`
		} `json:"data"`
	}
	if err := sonic.Unmarshal(vaultRec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Data.Balance != 10000 {
		t.Fatalf("expected balance 10000, got %d", envelope.Data.Balance)
	}
}
