package fantrax

import (
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"
)

func TestMapSeasonState(t *testing.T) {
	t.Parallel()

	t.Run("offseason phase is case insensitive", func(t *testing.T) {
		state := mapSeasonState(seasonStateEnvelope{SeasonYear: 2026, Phase: "OffSeason"})
		if !state.IsOffseason {
			t.Fatalf("expected offseason")
		}
		if state.SeasonYear != 2026 {
			t.Fatalf("expected season year 2026, got %d", state.SeasonYear)
		}
	})

	t.Run("regular season phase", func(t *testing.T) {
		state := mapSeasonState(seasonStateEnvelope{SeasonYear: 2026, Phase: "regular"})
		if state.IsOffseason {
			t.Fatalf("expected in-season")
		}
	})
}

func TestRosterEnvelopeDecode(t *testing.T) {
	t.Parallel()

	payload := `{"rosters":[{"teamId":"team-alpha","playerIds":["pl-1","pl-2"]},{"teamId":"team-bravo","playerIds":[]}]}`

	var envelope rosterEnvelope
	if err := sonic.Unmarshal([]byte(payload), &envelope); err != nil {
		t.Fatalf("decode roster envelope: %v", err)
	}

	if len(envelope.Rosters) != 2 {
		t.Fatalf("expected 2 rosters, got %d", len(envelope.Rosters))
	}
	if envelope.Rosters[0].TeamID != "team-alpha" || len(envelope.Rosters[0].PlayerIDs) != 2 {
		t.Fatalf("unexpected first roster: %+v", envelope.Rosters[0])
	}
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	for _, code := range []int{fasthttp.StatusTooManyRequests, fasthttp.StatusBadGateway, fasthttp.StatusServiceUnavailable} {
		if !isRetryableStatus(code) {
			t.Fatalf("expected %d retryable", code)
		}
	}
	for _, code := range []int{fasthttp.StatusOK, fasthttp.StatusNotFound, fasthttp.StatusUnauthorized} {
		if isRetryableStatus(code) {
			t.Fatalf("expected %d not retryable", code)
		}
	}
}

func TestAbbreviateBody(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 400)
	got := abbreviateBody([]byte(long))
	if len(got) != 256+3 || !strings.HasSuffix(got, "...") {
		t.Fatalf("expected truncated body, got len=%d", len(got))
	}

	if abbreviateBody([]byte("  short  ")) != "short" {
		t.Fatalf("expected trimmed short body")
	}
}
