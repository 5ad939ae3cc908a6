// Package payments talks to the payment processor's REST API.
package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/GlebRadaev/domainstore/pkg/clients"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrNotConfigured = errors.New("payment processor is not configured")
	ErrRefundFailed  = errors.New("refund rejected by payment processor")
)

type Refund struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Amount int64  `json:"amount"`
}

type Client struct {
	http    clients.HTTPClientI
	baseURL string
	apiKey  string
}

func New(client clients.HTTPClientI, baseURL, apiKey string) *Client {
	return &Client{http: client, baseURL: baseURL, apiKey: apiKey}
}

// Refund refunds amount of the payment. A zero amount refunds the remainder.
// The payment reference doubles as the idempotency key so a repeated admin
// action cannot refund twice.
func (c *Client) Refund(ctx context.Context, paymentRef string, amount decimal.Decimal) (*Refund, error) {
	if c.baseURL == "" {
		return nil, ErrNotConfigured
	}
	body := map[string]any{"payment_intent": paymentRef}
	key := "refund-" + paymentRef
	if amount.IsPositive() {
		cents := amount.Shift(2).IntPart()
		body["amount"] = cents
		key = fmt.Sprintf("%s-%d", key, cents)
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+c.apiKey)
	headers.Set("Content-Type", "application/json")
	headers.Set("Idempotency-Key", key)

	statusCode, respBody, _, err := c.http.Post(ctx, c.baseURL+"/v1/refunds", headers, payload)
	if err != nil {
		zap.L().Error("refund request failed", zap.String("payment_ref", paymentRef), zap.Error(err))
		return nil, err
	}
	if statusCode != http.StatusOK {
		zap.L().Error("refund rejected", zap.String("payment_ref", paymentRef), zap.Int("status", statusCode),
			zap.ByteString("body", respBody))
		return nil, fmt.Errorf("%w: http %d", ErrRefundFailed, statusCode)
	}

	var refund Refund
	if err := json.Unmarshal(respBody, &refund); err != nil {
		return nil, fmt.Errorf("failed to parse refund response: %w", err)
	}
	return &refund, nil
}
