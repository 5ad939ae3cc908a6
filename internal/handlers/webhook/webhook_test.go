package webhook

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/domainstore/internal/service/fulfillmentservice"
	"github.com/GlebRadaev/domainstore/internal/service/paymentservice"
	"github.com/GlebRadaev/domainstore/pkg/signature"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*WebhookHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

type errorReader struct{}

func (errorReader) Read([]byte) (int, error) {
	return 0, errors.New("read error")
}

func TestPaymentsHandler(t *testing.T) {
	const payload = `{"id":"evt_1","type":"payment.succeeded"}`
	const header = "t=1760875200,v1=abc"

	tests := []struct {
		name          string
		serviceErr    error
		expectedCode  int
		expectedError string
	}{
		{name: "Processed", expectedCode: http.StatusOK},
		{
			name:          "Bad signature",
			serviceErr:    fmt.Errorf("%w: %w", paymentservice.ErrInvalidSignature, signature.ErrMismatch),
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid signature",
		},
		{
			name:         "Malformed event",
			serviceErr:   paymentservice.ErrMalformedEvent,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Unknown order is acknowledged",
			serviceErr:   fulfillmentservice.ErrOrderNotFound,
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing contact",
			serviceErr:   fmt.Errorf("%w: %w", fulfillmentservice.ErrMissingContact, errors.New("no email")),
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Incomplete fulfillment asks for redelivery",
			serviceErr:   fmt.Errorf("%w: %w", fulfillmentservice.ErrIncomplete, errors.New("conn reset")),
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			service.EXPECT().HandleEvent(gomock.Any(), []byte(payload), header).Return(tt.serviceErr)

			r := httptest.NewRequest(http.MethodPost, "/api/webhooks/payments", bytes.NewBufferString(payload))
			r.Header.Set(signature.Header, header)
			w := httptest.NewRecorder()

			handler.Payments(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}

	t.Run("Unreadable body", func(t *testing.T) {
		handler, _ := NewMock(t)
		r := httptest.NewRequest(http.MethodPost, "/api/webhooks/payments", errorReader{})
		w := httptest.NewRecorder()

		handler.Payments(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
