// Package registrar is the client for the upstream domain registrar API.
//
// Every call names the registrar mode explicitly; the client never falls back
// to a process-wide default, so an order captured in test mode can never be
// fulfilled against the live endpoint.
package registrar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/GlebRadaev/domainstore/internal/domain"
	"github.com/GlebRadaev/domainstore/internal/metrics"
	"github.com/GlebRadaev/domainstore/pkg/clients"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var (
	ErrUnknownMode       = errors.New("registrar mode is not configured")
	ErrInsufficientFunds = errors.New("insufficient registrar balance")
	ErrRateLimited       = errors.New("registrar rate limit exceeded")
	ErrBadResponse       = errors.New("malformed registrar response")
)

// APIError is a failure reported by the registrar itself.
type APIError struct {
	Op         string
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("registrar %s: %s (%s)", e.Op, e.Message, e.Code)
	}
	return fmt.Sprintf("registrar %s: %s (http %d)", e.Op, e.Message, e.StatusCode)
}

func (e *APIError) Is(target error) bool {
	return target == ErrInsufficientFunds && e.Code == "insufficient_funds"
}

type Endpoint struct {
	BaseURL string
	APIKey  string
}

type Config struct {
	Endpoints map[domain.RegistrarMode]Endpoint
	RPS       float64
}

type RefillResult struct {
	NetAmount decimal.Decimal `json:"net_amount"`
	FeeAmount decimal.Decimal `json:"fee_amount"`
}

type RegisterRequest struct {
	Domain     string            `json:"domain"`
	Years      int               `json:"years"`
	Contact    domain.Contact    `json:"contact"`
	Attributes domain.Attributes `json:"extended_attributes,omitempty"`
	AutoRenew  bool              `json:"auto_renew"`
}

type RegisterResult struct {
	OrderID        string
	ExpirationDate *time.Time
}

type RenewResult struct {
	OrderID       string
	NewExpiration *time.Time
}

type TransferRequest struct {
	Domain   string         `json:"domain"`
	AuthCode string         `json:"auth_code"`
	Contact  domain.Contact `json:"contact"`
}

type TransferResult struct {
	OrderID string
}

type DomainInfo struct {
	Domain         string
	Status         string
	ExpirationDate *time.Time
}

type envelope struct {
	Status  string          `json:"status"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type orderData struct {
	OrderID        string `json:"order_id"`
	ExpirationDate string `json:"expiration_date"`
}

type Client struct {
	http      clients.HTTPClientI
	endpoints map[domain.RegistrarMode]Endpoint
	limiter   *rate.Limiter
	tracer    trace.Tracer
	sleep     func(ctx context.Context, d time.Duration) error
}

func New(client clients.HTTPClientI, cfg Config) *Client {
	limit := rate.Inf
	burst := 1
	if cfg.RPS > 0 {
		limit = rate.Limit(cfg.RPS)
		burst = max(1, int(cfg.RPS))
	}
	return &Client{
		http:      client,
		endpoints: cfg.Endpoints,
		limiter:   rate.NewLimiter(limit, burst),
		tracer:    otel.Tracer("github.com/GlebRadaev/domainstore/internal/registrar"),
		sleep:     sleep,
	}
}

func (c *Client) CheckBalance(ctx context.Context, mode domain.RegistrarMode) (decimal.Decimal, error) {
	var data struct {
		Available decimal.Decimal `json:"available"`
	}
	if err := c.call(ctx, mode, "check_balance", http.MethodGet, "/v1/account/balance", nil, &data, true); err != nil {
		return decimal.Zero, err
	}
	return data.Available, nil
}

func (c *Client) RefillBalance(ctx context.Context, mode domain.RegistrarMode, amount decimal.Decimal) (*RefillResult, error) {
	body := map[string]string{"amount": amount.StringFixed(2)}
	var data RefillResult
	if err := c.call(ctx, mode, "refill_balance", http.MethodPost, "/v1/account/refill", body, &data, false); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) Register(ctx context.Context, mode domain.RegistrarMode, req RegisterRequest) (*RegisterResult, error) {
	var data orderData
	if err := c.call(ctx, mode, "register", http.MethodPost, "/v1/domains/register", req, &data, false); err != nil {
		return nil, err
	}
	return &RegisterResult{OrderID: data.OrderID, ExpirationDate: parseDate(data.ExpirationDate)}, nil
}

func (c *Client) Renew(ctx context.Context, mode domain.RegistrarMode, name string, years int) (*RenewResult, error) {
	body := struct {
		Domain string `json:"domain"`
		Years  int    `json:"years"`
	}{name, years}
	var data orderData
	if err := c.call(ctx, mode, "renew", http.MethodPost, "/v1/domains/renew", body, &data, false); err != nil {
		return nil, err
	}
	return &RenewResult{OrderID: data.OrderID, NewExpiration: parseDate(data.ExpirationDate)}, nil
}

func (c *Client) InitiateTransfer(ctx context.Context, mode domain.RegistrarMode, req TransferRequest) (*TransferResult, error) {
	var data orderData
	if err := c.call(ctx, mode, "transfer", http.MethodPost, "/v1/domains/transfer", req, &data, false); err != nil {
		return nil, err
	}
	return &TransferResult{OrderID: data.OrderID}, nil
}

func (c *Client) DomainInfo(ctx context.Context, mode domain.RegistrarMode, name string) (*DomainInfo, error) {
	var data struct {
		Domain         string `json:"domain"`
		Status         string `json:"status"`
		ExpirationDate string `json:"expiration_date"`
	}
	path := "/v1/domains/info?domain=" + url.QueryEscape(name)
	if err := c.call(ctx, mode, "domain_info", http.MethodGet, path, nil, &data, true); err != nil {
		return nil, err
	}
	return &DomainInfo{Domain: data.Domain, Status: data.Status, ExpirationDate: parseDate(data.ExpirationDate)}, nil
}

// call performs one registrar request. Rate limited responses are retried for
// every operation; transport errors only when idempotent is set, because a
// mutating call may already have been applied upstream.
func (c *Client) call(ctx context.Context, mode domain.RegistrarMode, op, method, path string, body, out any, idempotent bool) (err error) {
	endpoint, ok := c.endpoints[mode]
	if !ok || endpoint.BaseURL == "" {
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	ctx, span := c.tracer.Start(ctx, "registrar."+op, trace.WithAttributes(
		attribute.String("registrar.mode", string(mode)),
		attribute.String("registrar.op", op),
	))
	started := time.Now()
	defer func() {
		metrics.ObserveRegistrarCall(op, started, err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var payload []byte
	if body != nil {
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("registrar %s: encode request: %w", op, err)
		}
	}
	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+endpoint.APIKey)
	headers.Set("Accept", "application/json")
	if body != nil {
		headers.Set("Content-Type", "application/json")
	}

	var (
		statusCode  int
		respBody    []byte
		respHeaders http.Header
	)
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("registrar %s: %w", op, err)
		}
		if method == http.MethodGet {
			statusCode, respBody, respHeaders, err = c.http.Get(ctx, endpoint.BaseURL+path, headers)
		} else {
			statusCode, respBody, respHeaders, err = c.http.Post(ctx, endpoint.BaseURL+path, headers, payload)
		}
		if err != nil {
			if idempotent && attempt < maxRetries && ctx.Err() == nil {
				zap.L().Warn("registrar request failed, retrying", zap.String("op", op), zap.Int("attempt", attempt), zap.Error(err))
				if err = c.sleep(ctx, retryInterval*time.Duration(attempt)); err != nil {
					return fmt.Errorf("registrar %s: %w", op, err)
				}
				continue
			}
			return fmt.Errorf("registrar %s: %w", op, err)
		}

		if statusCode == http.StatusTooManyRequests {
			if attempt == maxRetries {
				return fmt.Errorf("registrar %s: %w", op, ErrRateLimited)
			}
			wait := retryAfter(respHeaders, attempt)
			zap.L().Warn("registrar rate limit detected, retrying",
				zap.String("op", op), zap.Int("attempt", attempt), zap.Duration("retryAfter", wait))
			if err = c.sleep(ctx, wait); err != nil {
				return fmt.Errorf("registrar %s: %w", op, err)
			}
			continue
		}
		break
	}

	return decode(op, statusCode, respBody, out)
}

func decode(op string, statusCode int, respBody []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		if statusCode >= http.StatusBadRequest {
			return &APIError{Op: op, StatusCode: statusCode, Message: http.StatusText(statusCode)}
		}
		return fmt.Errorf("registrar %s: %w: %v", op, ErrBadResponse, err)
	}
	if statusCode >= http.StatusBadRequest || env.Status != "success" {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(statusCode)
		}
		return &APIError{Op: op, StatusCode: statusCode, Code: env.Code, Message: msg}
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("registrar %s: %w: %v", op, ErrBadResponse, err)
	}
	return nil
}

func retryAfter(headers http.Header, attempt int) time.Duration {
	wait := retryInterval * time.Duration(attempt)
	value := headers.Get("Retry-After")
	if value == "" {
		return wait
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return wait
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	zap.L().Warn("unparseable registrar expiration date", zap.String("value", value))
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
