package memory

import (
	"time"

	"github.com/riskibarqy/keeper-league/internal/domain/contract"
	"github.com/riskibarqy/keeper-league/internal/domain/league"
	"github.com/riskibarqy/keeper-league/internal/domain/player"
	"github.com/riskibarqy/keeper-league/internal/domain/roster"
	"github.com/riskibarqy/keeper-league/internal/domain/treasury"
)

const (
	LeagueIDDynastyOriginal = "dynasty-original-2026"
	LeagueIDDynastyRedraft  = "dynasty-redraft-2026"
)

func SeedLeagues() []league.League {
	return []league.League{
		{
			ID:                 LeagueIDDynastyOriginal,
			Name:               "Dynasty Original",
			ExternalRefID:      91231,
			SeasonYear:         2026,
			ContractWindowOpen: true,
		},
		{
			ID:                 LeagueIDDynastyRedraft,
			Name:               "Dynasty Redraft",
			ExternalRefID:      91232,
			SeasonYear:         2026,
			ContractWindowOpen: false,
		},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "pl-qb-01", LeagueID: LeagueIDDynastyOriginal, Name: "Marcus Bell", Position: player.PositionQuarterback, ExternalRefID: 50001},
		{ID: "pl-qb-02", LeagueID: LeagueIDDynastyOriginal, Name: "Trey Whitfield", Position: player.PositionQuarterback, ExternalRefID: 50002},
		{ID: "pl-rb-01", LeagueID: LeagueIDDynastyOriginal, Name: "Damon Wicks", Position: player.PositionRunningBack, ExternalRefID: 50003},
		{ID: "pl-rb-02", LeagueID: LeagueIDDynastyOriginal, Name: "Avery Coleman", Position: player.PositionRunningBack, ExternalRefID: 50004},
		{ID: "pl-wr-01", LeagueID: LeagueIDDynastyOriginal, Name: "Jalen Ross", Position: player.PositionWideReceiver, ExternalRefID: 50005},
		{ID: "pl-wr-02", LeagueID: LeagueIDDynastyOriginal, Name: "Kendall Pryor", Position: player.PositionWideReceiver, ExternalRefID: 50006},
		{ID: "pl-te-01", LeagueID: LeagueIDDynastyOriginal, Name: "Cole Branson", Position: player.PositionTightEnd, ExternalRefID: 50007},
		{ID: "pl-k-01", LeagueID: LeagueIDDynastyOriginal, Name: "Ray Oduya", Position: player.PositionKicker, ExternalRefID: 50008},
		{ID: "pl-def-01", LeagueID: LeagueIDDynastyOriginal, Name: "Chicago", Position: player.PositionDefense, ExternalRefID: 50009},
		{ID: "pl-qb-11", LeagueID: LeagueIDDynastyRedraft, Name: "Marcus Bell", Position: player.PositionQuarterback, ExternalRefID: 50001},
		{ID: "pl-rb-11", LeagueID: LeagueIDDynastyRedraft, Name: "Damon Wicks", Position: player.PositionRunningBack, ExternalRefID: 50003},
	}
}

func SeedContracts() []contract.Contract {
	created := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)

	return []contract.Contract{
		{ID: 1, PlayerID: "pl-qb-01", TeamID: "team-alpha", LeagueID: LeagueIDDynastyOriginal, DraftAmount: 24, StartYear: 2024, Duration: 3, Active: true, CreatedAt: created, UpdatedAt: created},
		{ID: 2, PlayerID: "pl-rb-01", TeamID: "team-alpha", LeagueID: LeagueIDDynastyOriginal, DraftAmount: 31, StartYear: 2025, Duration: 4, Active: true, CreatedAt: created, UpdatedAt: created},
		{ID: 3, PlayerID: "pl-wr-01", TeamID: "team-bravo", LeagueID: LeagueIDDynastyOriginal, DraftAmount: 18, StartYear: 2025, Duration: 2, Active: true, CreatedAt: created, UpdatedAt: created},
		{ID: 4, PlayerID: "pl-rb-02", TeamID: "team-bravo", LeagueID: LeagueIDDynastyOriginal, DraftAmount: 9, StartYear: 2026, Duration: 1, Active: true, CreatedAt: created, UpdatedAt: created},
		{ID: 5, PlayerID: "pl-wr-02", TeamID: "team-alpha", LeagueID: LeagueIDDynastyOriginal, DraftAmount: 12, StartYear: 2023, Duration: 2, Active: false, CreatedAt: created, UpdatedAt: created},
	}
}

func SeedSnapshots() []roster.Snapshot {
	synced := time.Date(2026, 8, 20, 6, 0, 0, 0, time.UTC)

	return []roster.Snapshot{
		{LeagueID: LeagueIDDynastyOriginal, TeamID: "team-alpha", PlayerIDs: []string{"pl-qb-01", "pl-rb-01", "pl-wr-02"}, SyncedAt: synced},
		{LeagueID: LeagueIDDynastyOriginal, TeamID: "team-bravo", PlayerIDs: []string{"pl-wr-01", "pl-rb-02"}, SyncedAt: synced},
	}
}

func SeedFeeSchedules() []treasury.FeeSchedule {
	return []treasury.FeeSchedule{
		{LeagueID: LeagueIDDynastyOriginal, SeasonYear: 2026, EntryFee: 10000, PerMoveFee: 100},
		{LeagueID: LeagueIDDynastyRedraft, SeasonYear: 2026, EntryFee: 5000, PerMoveFee: 0},
	}
}
