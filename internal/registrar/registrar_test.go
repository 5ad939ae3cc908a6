package registrar

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/domainstore/internal/domain"
	"github.com/GlebRadaev/domainstore/pkg/clients"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Client, *clients.MockHTTPClientI, *[]time.Duration) {
	ctrl := gomock.NewController(t)
	httpClient := clients.NewMockHTTPClientI(ctrl)
	c := New(httpClient, Config{Endpoints: map[domain.RegistrarMode]Endpoint{
		domain.ModeTest: {BaseURL: "https://sandbox.registrar.test", APIKey: "test-key"},
		domain.ModeLive: {BaseURL: "https://api.registrar.test", APIKey: "live-key"},
	}})
	var slept []time.Duration
	c.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	return c, httpClient, &slept
}

func ok(data string) []byte {
	return []byte(`{"status":"success","data":` + data + `}`)
}

func TestClient_CheckBalance(t *testing.T) {
	tests := []struct {
		name      string
		prepare   func(m *clients.MockHTTPClientI)
		want      decimal.Decimal
		wantSleep int
		checkErr  func(t *testing.T, err error)
	}{
		{
			name: "balance returned",
			prepare: func(m *clients.MockHTTPClientI) {
				m.EXPECT().Get(gomock.Any(), "https://sandbox.registrar.test/v1/account/balance", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, h http.Header) (int, []byte, http.Header, error) {
						assert.Equal(t, "Bearer test-key", h.Get("Authorization"))
						return http.StatusOK, ok(`{"available":"12.50"}`), nil, nil
					})
			},
			want:     decimal.RequireFromString("12.50"),
			checkErr: func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		{
			name: "transport error retried for reads",
			prepare: func(m *clients.MockHTTPClientI) {
				gomock.InOrder(
					m.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil, nil, errors.New("connection reset")),
					m.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusOK, ok(`{"available":3}`), nil, nil),
				)
			},
			want:      decimal.NewFromInt(3),
			wantSleep: 1,
			checkErr:  func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		{
			name: "rate limited honours Retry-After",
			prepare: func(m *clients.MockHTTPClientI) {
				gomock.InOrder(
					m.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(http.StatusTooManyRequests, nil, http.Header{"Retry-After": []string{"7"}}, nil),
					m.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusOK, ok(`{"available":"1"}`), nil, nil),
				)
			},
			want:      decimal.NewFromInt(1),
			wantSleep: 1,
			checkErr:  func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		{
			name: "api error",
			prepare: func(m *clients.MockHTTPClientI) {
				m.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(http.StatusUnauthorized, []byte(`{"status":"error","code":"bad_key","message":"invalid api key"}`), nil, nil)
			},
			want: decimal.Zero,
			checkErr: func(t *testing.T, err error) {
				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, "bad_key", apiErr.Code)
				assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m, slept := NewMock(t)
			tt.prepare(m)
			got, err := c.CheckBalance(context.Background(), domain.ModeTest)
			tt.checkErr(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Len(t, *slept, tt.wantSleep)
		})
	}
}

func TestClient_RateLimitWait(t *testing.T) {
	c, m, slept := NewMock(t)
	m.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(http.StatusTooManyRequests, nil, http.Header{"Retry-After": []string{"7"}}, nil).Times(maxRetries)

	_, err := c.CheckBalance(context.Background(), domain.ModeTest)
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, []time.Duration{7 * time.Second, 7 * time.Second}, *slept)
}

func TestClient_WritesAreNotRetriedOnTransportError(t *testing.T) {
	c, m, slept := NewMock(t)
	m.EXPECT().Post(gomock.Any(), "https://api.registrar.test/v1/domains/register", gomock.Any(), gomock.Any()).
		Return(0, nil, nil, context.DeadlineExceeded).Times(1)

	_, err := c.Register(context.Background(), domain.ModeLive, RegisterRequest{Domain: "example.com", Years: 1})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, *slept)
}

func TestClient_UnknownMode(t *testing.T) {
	c, _, _ := NewMock(t)
	_, err := c.CheckBalance(context.Background(), domain.RegistrarMode("staging"))
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestClient_InsufficientFunds(t *testing.T) {
	c, m, _ := NewMock(t)
	m.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(http.StatusPaymentRequired, []byte(`{"status":"error","code":"insufficient_funds","message":"balance too low"}`), nil, nil)

	_, err := c.Renew(context.Background(), domain.ModeTest, "example.com", 1)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Contains(t, err.Error(), "balance too low")
}

func TestClient_AgainstServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer live-key", r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/v1/account/refill":
			body, _ := io.ReadAll(r.Body)
			var req map[string]string
			_ = json.Unmarshal(body, &req)
			assert.Equal(t, "50.00", req["amount"])
			_, _ = w.Write(ok(`{"net_amount":"48.50","fee_amount":"1.50"}`))
		case "/v1/domains/register":
			var req RegisterRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			assert.Equal(t, "example.com", req.Domain)
			assert.Equal(t, "Ann", req.Contact.FirstName)
			_, _ = w.Write(ok(`{"order_id":"R-100","expiration_date":"2027-03-01"}`))
		case "/v1/domains/renew":
			_, _ = w.Write(ok(`{"order_id":"R-101"}`))
		case "/v1/domains/transfer":
			_, _ = w.Write(ok(`{"order_id":"T-5"}`))
		case "/v1/domains/info":
			assert.Equal(t, "example.com", r.URL.Query().Get("domain"))
			_, _ = w.Write(ok(`{"domain":"example.com","status":"active","expiration_date":"2028-03-01T00:00:00Z"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	c := New(clients.NewHTTPClient(time.Second), Config{Endpoints: map[domain.RegistrarMode]Endpoint{
		domain.ModeLive: {BaseURL: server.URL, APIKey: "live-key"},
	}, RPS: 100})
	ctx := context.Background()

	refill, err := c.RefillBalance(ctx, domain.ModeLive, decimal.NewFromInt(50))
	require.NoError(t, err)
	assert.Equal(t, "48.50", refill.NetAmount.StringFixed(2))
	assert.Equal(t, "1.50", refill.FeeAmount.StringFixed(2))

	reg, err := c.Register(ctx, domain.ModeLive, RegisterRequest{Domain: "example.com", Years: 1,
		Contact: domain.Contact{FirstName: "Ann"}})
	require.NoError(t, err)
	assert.Equal(t, "R-100", reg.OrderID)
	require.NotNil(t, reg.ExpirationDate)
	assert.Equal(t, 2027, reg.ExpirationDate.Year())

	renew, err := c.Renew(ctx, domain.ModeLive, "example.com", 1)
	require.NoError(t, err)
	assert.Equal(t, "R-101", renew.OrderID)
	assert.Nil(t, renew.NewExpiration)

	tr, err := c.InitiateTransfer(ctx, domain.ModeLive, TransferRequest{Domain: "example.net", AuthCode: "x"})
	require.NoError(t, err)
	assert.Equal(t, "T-5", tr.OrderID)

	info, err := c.DomainInfo(ctx, domain.ModeLive, "example.com")
	require.NoError(t, err)
	require.NotNil(t, info.ExpirationDate)
	assert.Equal(t, 2028, info.ExpirationDate.Year())

	_, err = c.CheckBalance(ctx, domain.ModeTest)
	assert.ErrorIs(t, err, ErrUnknownMode)
}
