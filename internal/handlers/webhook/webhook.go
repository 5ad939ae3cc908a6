package webhook

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/GlebRadaev/domainstore/internal/dto"
	"github.com/GlebRadaev/domainstore/internal/service/fulfillmentservice"
	"github.com/GlebRadaev/domainstore/internal/service/paymentservice"
	"github.com/GlebRadaev/domainstore/pkg/signature"
	"github.com/GlebRadaev/domainstore/pkg/utils"
	"go.uber.org/zap"
)

// maxPayload bounds the request body read before the signature is checked.
const maxPayload = 1 << 20

type Service interface {
	HandleEvent(ctx context.Context, payload []byte, signature string) error
}

type WebhookHandler struct {
	paymentService Service
}

func New(paymentService Service) *WebhookHandler {
	return &WebhookHandler{
		paymentService: paymentService,
	}
}

// Payments godoc
//
//	@Summary		Payment processor webhook
//	@Description	Receives signed payment events. A succeeded payment for a domain order starts fulfillment; deliveries are safe to repeat.
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Param			Payment-Signature	header	string	true	"t=<unix>,v1=<hex hmac>"
//	@Success		200	{object}	dto.WebhookAckDTO
//	@Failure		400	{object}	utils.Response	"Malformed event"
//	@Failure		401	{object}	utils.Response	"Invalid signature"
//	@Failure		422	{object}	utils.Response	"Order has no usable registrant contact"
//	@Failure		500	{object}	utils.Response	"Fulfillment incomplete, retry the delivery"
//	@Router			/api/webhooks/payments [post]
func (h *WebhookHandler) Payments(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxPayload))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	err = h.paymentService.HandleEvent(r.Context(), payload, r.Header.Get(signature.Header))
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusOK, dto.WebhookAckDTO{Received: true})
	case errors.Is(err, paymentservice.ErrInvalidSignature):
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid signature")
	case errors.Is(err, paymentservice.ErrMalformedEvent):
		utils.RespondWithError(w, http.StatusBadRequest, "Malformed event")
	case errors.Is(err, fulfillmentservice.ErrOrderNotFound), errors.Is(err, paymentservice.ErrOrderNotFound):
		// retrying can't make an unknown order appear
		zap.L().Warn("payment event for unknown order acknowledged", zap.Error(err))
		utils.RespondWithJSON(w, http.StatusOK, dto.WebhookAckDTO{Received: true})
	case errors.Is(err, fulfillmentservice.ErrMissingContact):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Fulfillment incomplete")
	}
}
