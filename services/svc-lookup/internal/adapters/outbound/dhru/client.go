// Package dhru is the HTTP client for DHRU style reseller APIs such as
// sickw.com. Every call is a GET against one endpoint with the action in the
// query string.
package dhru

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/architeacher/imei-lookup/pkg/circuitbreaker"
	appLogger "github.com/architeacher/imei-lookup/pkg/logger"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/config"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/domain/model"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/ports"
	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	statusSuccess = "success"

	maxResponseBytes = 4 << 20
)

type operation struct {
	name    string
	timeout time.Duration
	// billable calls are charged by the provider, so they are only retried
	// when the request provably never reached it.
	billable bool
}

var (
	_ ports.DeviceProvider  = (*Client)(nil)
	_ ports.BreakerReporter = (*Client)(nil)
)

type Client struct {
	baseURL    *url.URL
	apiKey     atomic.Pointer[string]
	httpClient *http.Client
	cb         *circuitbreaker.CircuitBreaker[[]byte]
	cfg        config.Provider
	backoffCfg config.Backoff
	logger     appLogger.Logger
}

func NewClient(cfg config.Provider, backoffCfg config.Backoff, logger appLogger.Logger, opts ...Option) (*Client, error) {
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil || baseURL.Host == "" {
		return nil, fmt.Errorf("invalid provider base url %q", cfg.BaseURL)
	}

	client := &Client{
		baseURL:    baseURL,
		cfg:        cfg,
		backoffCfg: backoffCfg,
		logger:     logger.Component("dhru"),
	}
	client.SetAPIKey(cfg.APIKey)

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}

	if client.cb == nil {
		client.cb = circuitbreaker.New[[]byte](circuitbreaker.Config{
			Name:             "dhru",
			Enabled:          cfg.CircuitBreaker.Enabled,
			MaxRequests:      cfg.CircuitBreaker.MaxRequests,
			Interval:         cfg.CircuitBreaker.Interval,
			Timeout:          cfg.CircuitBreaker.Timeout,
			FailureThreshold: cfg.CircuitBreaker.FailureThreshold,
			IsSuccessful:     providerHealthy,
			OnStateChange: func(name string, from, to circuitbreaker.State) {
				client.logger.Warn().
					Str("breaker", name).
					Str("from", string(from)).
					Str("to", string(to)).
					Msg("circuit breaker state changed")
			},
		})
	}

	return client, nil
}

// SetAPIKey swaps the key used by subsequent calls; it is safe to call while
// requests are in flight.
func (c *Client) SetAPIKey(key string) {
	c.apiKey.Store(&key)
}

func (c *Client) BreakerState() circuitbreaker.State {
	return c.cb.State()
}

func (c *Client) QueryDevice(ctx context.Context, query model.ProviderQuery) (*model.ProviderResult, error) {
	op := operation{name: "query", timeout: c.cfg.QueryTimeout, billable: true}

	params := url.Values{}
	params.Set("format", orDefault(query.Format, c.cfg.DefaultFormat))
	params.Set("imei", query.Identifier)
	params.Set("service", orDefault(query.ServiceID, c.cfg.DefaultServiceID))

	body, err := c.call(ctx, op, params)
	if err != nil {
		return nil, err
	}

	envelope, err := decodeObject(op, body)
	if err != nil {
		return nil, err
	}

	if err := checkStatus(op, envelope); err != nil {
		return nil, err
	}

	return &model.ProviderResult{
		Result:  resultObject(envelope["result"]),
		Balance: floatValue(envelope["balance"]),
		Price:   floatValue(envelope["price"]),
		OrderID: stringValue(envelope["id"]),
	}, nil
}

// Balance parses the plain text amount the provider returns.
func (c *Client) Balance(ctx context.Context) (*model.Balance, error) {
	op := operation{name: "balance", timeout: c.cfg.BalanceTimeout}

	params := url.Values{}
	params.Set("action", "balance")

	body, err := c.call(ctx, op, params)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(string(body))

	amount, parseErr := strconv.ParseFloat(text, 64)
	if parseErr != nil {
		if envelope, err := decodeObject(op, body); err == nil {
			if err := checkStatus(op, envelope); err != nil {
				return nil, err
			}
		}

		return nil, &ProviderError{
			Category:   CategoryContractMismatch,
			Operation:  op.name,
			Message:    "balance is not a number",
			Underlying: parseErr,
		}
	}

	return &model.Balance{Amount: amount, CheckedAt: time.Now().UTC()}, nil
}

func (c *Client) Services(ctx context.Context) (*model.ServiceCatalog, error) {
	op := operation{name: "services", timeout: c.cfg.ServicesTimeout}

	params := url.Values{}
	params.Set("action", "services")

	body, err := c.call(ctx, op, params)
	if err != nil {
		return nil, err
	}

	envelope, err := decodeObject(op, body)
	if err != nil {
		return nil, err
	}

	if err := checkStatus(op, envelope); err != nil {
		return nil, err
	}

	services, ok := envelope["services"]
	if !ok || services == nil {
		services = []any{}
	}

	return &model.ServiceCatalog{Services: services, FetchedAt: time.Now().UTC()}, nil
}

// History returns decoded JSON for the beta and json formats and the raw
// body for anything else.
func (c *Client) History(ctx context.Context, term, format string) (*model.HistorySearch, error) {
	op := operation{name: "history", timeout: c.cfg.HistoryTimeout}
	format = orDefault(format, c.cfg.DefaultFormat)

	params := url.Values{}
	params.Set("format", format)
	params.Set("action", "history")
	params.Set("imei", term)

	body, err := c.call(ctx, op, params)
	if err != nil {
		return nil, err
	}

	search := &model.HistorySearch{Term: term, Format: format}

	switch strings.ToLower(format) {
	case "beta", "json":
		data, err := decode(op, body)
		if err != nil {
			return nil, err
		}

		search.Data = data
	default:
		search.Data = string(body)
	}

	return search, nil
}

func (c *Client) call(ctx context.Context, op operation, params url.Values) ([]byte, error) {
	key := *c.apiKey.Load()
	if key == "" {
		return nil, &ProviderError{
			Category:  CategoryAuthentication,
			Operation: op.name,
			Message:   "api key is not configured",
		}
	}

	params.Set("key", key)

	body, err := circuitbreaker.Execute(c.cb, func() ([]byte, error) {
		return backoff.Retry(ctx, func() ([]byte, error) {
			body, err := c.attempt(ctx, op, params)
			if err != nil && !IsRetryable(err) {
				return nil, backoff.Permanent(err)
			}

			return body, err
		},
			backoff.WithBackOff(c.newBackOff()),
			backoff.WithMaxTries(c.cfg.MaxRetries+1),
		)
	})

	switch {
	case err == nil:
		return body, nil
	case circuitbreaker.IsRejection(err):
		return nil, &ProviderError{
			Category:   CategoryProviderOutage,
			Operation:  op.name,
			Message:    "provider calls suspended",
			Underlying: err,
		}
	default:
		if _, ok := AsProviderError(err); ok {
			return nil, err
		}

		if cause := ctx.Err(); cause != nil {
			return nil, abandoned(op, cause)
		}

		return nil, classifyTransport(op, err)
	}
}

func (c *Client) attempt(ctx context.Context, op operation, params url.Values) ([]byte, error) {
	callerCtx := ctx

	if op.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, op.timeout)
		defer cancel()
	}

	target := *c.baseURL
	target.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, &ProviderError{Category: CategoryInternal, Operation: op.name, Message: "building request", Underlying: err}
	}

	req.Header.Set("Accept", "application/json, text/plain")

	log := c.logger.WithContext(ctx)
	startTime := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		pe := classifyTransport(op, err)
		if cause := callerCtx.Err(); cause != nil {
			pe = abandoned(op, cause)
		}

		log.Warn().
			Str("operation", op.name).
			Str("category", string(pe.Category)).
			Dur("duration", time.Since(startTime)).
			Err(pe.Underlying).
			Msg("provider request failed")

		return nil, pe
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		if cause := callerCtx.Err(); cause != nil {
			return nil, abandoned(op, cause)
		}

		return nil, classifyTransport(op, err)
	}

	log.Debug().
		Str("operation", op.name).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("duration", time.Since(startTime)).
		Msg("provider responded")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, classifyStatus(op, resp.StatusCode, body)
	}

	return body, nil
}

func (c *Client) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.backoffCfg.BaseDelay
	b.Multiplier = c.backoffCfg.Multiplier
	b.RandomizationFactor = c.backoffCfg.Jitter
	b.MaxInterval = c.backoffCfg.MaxDelay

	return b
}

func classifyTransport(op operation, err error) *ProviderError {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		// url.Error embeds the request URL, key included.
		err = urlErr.Err
	}

	pe := &ProviderError{Operation: op.name, Underlying: err}

	var (
		netErr net.Error
		opErr  *net.OpError
	)

	switch {
	case errors.Is(err, context.Canceled):
		pe.Category = CategoryInternal
		pe.Message = "request canceled"
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		pe.Category = CategoryTimeout
		pe.Message = "provider did not answer in time"
		pe.Retryable = !op.billable
	case errors.As(err, &opErr) && opErr.Op == "dial":
		pe.Category = CategoryProviderOutage
		pe.Message = "provider unreachable"
		pe.Retryable = true
	default:
		pe.Category = CategoryProviderOutage
		pe.Message = "transport failure"
		pe.Retryable = !op.billable
	}

	return pe
}

// abandoned reports a request the caller gave up on before the provider
// answered. It says nothing about the provider's health.
func abandoned(op operation, cause error) *ProviderError {
	return &ProviderError{
		Category:   CategoryInternal,
		Operation:  op.name,
		Message:    "request abandoned by caller",
		Underlying: cause,
	}
}

func classifyStatus(op operation, status int, body []byte) *ProviderError {
	pe := &ProviderError{
		Operation:  op.name,
		StatusCode: status,
		Message:    fmt.Sprintf("unexpected status %d", status),
	}

	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		pe.Category = CategoryAuthentication
	case status == http.StatusNotFound:
		pe.Category = CategoryNotFound
	case status == http.StatusTooManyRequests:
		pe.Category = CategoryRateLimited
		pe.Retryable = true
	case status >= http.StatusInternalServerError:
		pe.Category = CategoryProviderOutage
		pe.Retryable = !op.billable
	default:
		pe.Category = CategoryContractMismatch
	}

	if text := strings.TrimSpace(string(body)); text != "" && len(text) <= 256 {
		pe.Message += ": " + text
	}

	return pe
}

func decode(op operation, body []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var out any
	if err := decoder.Decode(&out); err != nil {
		return nil, &ProviderError{
			Category:   CategoryContractMismatch,
			Operation:  op.name,
			Message:    "response is not valid JSON",
			Underlying: err,
		}
	}

	return out, nil
}

func decodeObject(op operation, body []byte) (map[string]any, error) {
	out, err := decode(op, body)
	if err != nil {
		return nil, err
	}

	object, ok := out.(map[string]any)
	if !ok {
		return nil, &ProviderError{
			Category:  CategoryContractMismatch,
			Operation: op.name,
			Message:   "response is not a JSON object",
		}
	}

	return object, nil
}

// checkStatus turns a non-success envelope into a permanent error carrying
// the provider's own message.
func checkStatus(op operation, envelope map[string]any) error {
	if strings.EqualFold(stringValue(envelope["status"]), statusSuccess) {
		return nil
	}

	message := "unknown provider error"

	switch result := envelope["result"].(type) {
	case string:
		if strings.TrimSpace(result) != "" {
			message = strings.TrimSpace(result)
		}
	case nil:
	default:
		if encoded, err := json.Marshal(result); err == nil {
			message = string(encoded)
		}
	}

	category := CategoryBadData

	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "not found"), strings.Contains(lower, "no record"):
		category = CategoryNotFound
	case strings.Contains(lower, "api key"), strings.Contains(lower, "apikey"):
		category = CategoryAuthentication
	}

	return &ProviderError{Category: category, Operation: op.name, Message: message}
}

func resultObject(v any) map[string]any {
	switch result := v.(type) {
	case map[string]any:
		return result
	case nil:
		return map[string]any{}
	default:
		return map[string]any{"result": result}
	}
}

func floatValue(v any) *float64 {
	var (
		f   float64
		err error
	)

	switch n := v.(type) {
	case json.Number:
		f, err = n.Float64()
	case float64:
		f = n
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		return nil
	}

	if err != nil {
		return nil
	}

	return &f
}

func stringValue(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}
