package fantrax

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/keeper-league/internal/platform/logging"
	"github.com/riskibarqy/keeper-league/internal/platform/resilience"
	"github.com/riskibarqy/keeper-league/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
)

const (
	defaultBaseURL        = "https://www.fantrax.com/fxpa/v3"
	defaultRequestTimeout = 20 * time.Second
	maxResponseBytes      = 6 << 20
)

var errFantraxTransient = crerr.New("fantrax transient failure")

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the Fantrax roster API. It implements
// usecase.RosterProvider.
type Client struct {
	httpClient     *fasthttp.Client
	baseURL        string
	token          string
	timeout        time.Duration
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		timeout:        timeout,
		maxRetries:     maxRetries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type seasonStateEnvelope struct {
	SeasonYear int    `json:"seasonYear"`
	Phase      string `json:"phase"`
}

type rosterEnvelope struct {
	Rosters []rosterItem `json:"rosters"`
}

type rosterItem struct {
	TeamID    string   `json:"teamId"`
	PlayerIDs []string `json:"playerIds"`
}

func (c *Client) FetchSeasonState(ctx context.Context, leagueRefID int64) (usecase.SeasonState, error) {
	if leagueRefID <= 0 {
		return usecase.SeasonState{}, fmt.Errorf("league ref id must be greater than zero")
	}

	var envelope seasonStateEnvelope
	path := "/leagues/" + strconv.FormatInt(leagueRefID, 10) + "/season"
	if err := c.doJSON(ctx, path, &envelope); err != nil {
		return usecase.SeasonState{}, fmt.Errorf("fetch season state league_ref=%d: %w", leagueRefID, err)
	}
	if envelope.SeasonYear <= 0 {
		return usecase.SeasonState{}, fmt.Errorf("provider returned season year %d", envelope.SeasonYear)
	}

	return mapSeasonState(envelope), nil
}

func mapSeasonState(envelope seasonStateEnvelope) usecase.SeasonState {
	return usecase.SeasonState{
		SeasonYear:  envelope.SeasonYear,
		IsOffseason: strings.EqualFold(envelope.Phase, "offseason"),
	}
}

func (c *Client) FetchLeagueRosters(ctx context.Context, leagueRefID int64) ([]usecase.TeamRoster, error) {
	if leagueRefID <= 0 {
		return nil, fmt.Errorf("league ref id must be greater than zero")
	}

	var envelope rosterEnvelope
	path := "/leagues/" + strconv.FormatInt(leagueRefID, 10) + "/rosters"
	if err := c.doJSON(ctx, path, &envelope); err != nil {
		return nil, fmt.Errorf("fetch rosters league_ref=%d: %w", leagueRefID, err)
	}

	out := make([]usecase.TeamRoster, 0, len(envelope.Rosters))
	for _, item := range envelope.Rosters {
		out = append(out, usecase.TeamRoster{
			TeamID:    item.TeamID,
			PlayerIDs: item.PlayerIDs,
		})
	}

	return out, nil
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "fantrax circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: roster provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + path

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errFantraxTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := c.sendOnce(fullURL)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !crerr.Is(err, errFantraxTransient) {
			return nil, err
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "fantrax request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func (c *Client) sendOnce(fullURL string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("accept", "application/json")
	if c.token != "" {
		req.Header.Set("authorization", "Bearer "+c.token)
	}

	if err := c.httpClient.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, crerr.Wrapf(errFantraxTransient, "send request: %v", err)
	}

	status := resp.StatusCode()
	body := resp.Body()
	if len(body) > maxResponseBytes {
		return nil, fmt.Errorf("provider response exceeds %d bytes", maxResponseBytes)
	}

	// resp's buffer is recycled on release; hold the bytes in a pooled
	// buffer and hand back a copy the caller owns.
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	_, _ = buf.Write(body)

	if status >= 200 && status < 300 {
		return append([]byte(nil), buf.B...), nil
	}

	if isRetryableStatus(status) {
		return nil, crerr.Wrapf(errFantraxTransient, "provider status=%d body=%s", status, abbreviateBody(buf.B))
	}
	return nil, fmt.Errorf("provider status=%d body=%s", status, abbreviateBody(buf.B))
}

func isRetryableStatus(code int) bool {
	switch code {
	case fasthttp.StatusTooManyRequests,
		fasthttp.StatusInternalServerError,
		fasthttp.StatusBadGateway,
		fasthttp.StatusServiceUnavailable,
		fasthttp.StatusGatewayTimeout:
		return true
	}
	return false
}

func abbreviateBody(body []byte) string {
	const limit = 256
	text := strings.TrimSpace(string(body))
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}
