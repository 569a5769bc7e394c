package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/leagues/{leagueID}/contracts", handler.CreateContract)
	mux.HandleFunc("PUT /v1/contracts/{contractID}/duration", handler.SetContractDuration)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams/{teamID}/contracts", handler.ListTeamContracts)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams/{teamID}/spending/positions", handler.GetPositionRanks)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams/{teamID}/spending/future", handler.GetFutureYearRanks)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams/{teamID}/penalties", handler.ListTeamPenalties)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/penalties/{year}", handler.ListYearPenalties)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams/{teamID}/vault", handler.GetTeamVault)
	mux.HandleFunc("POST /v1/leagues/{leagueID}/teams/{teamID}/vault/entry-fee", handler.RecordEntryFee)
	mux.HandleFunc("POST /v1/leagues/{leagueID}/teams/{teamID}/vault/payouts", handler.RecordPayout)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/sync/{leagueID}", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunLeagueSyncJob)))
	mux.Handle("POST /v1/internal/jobs/sync-all", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSyncAllJob)))
}
