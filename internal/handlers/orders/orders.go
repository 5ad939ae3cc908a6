package orders

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/domainstore/internal/domain"
	"github.com/GlebRadaev/domainstore/internal/dto"
	"github.com/GlebRadaev/domainstore/internal/payments"
	"github.com/GlebRadaev/domainstore/internal/service/fulfillmentservice"
	"github.com/GlebRadaev/domainstore/internal/service/paymentservice"
	"github.com/GlebRadaev/domainstore/pkg/auth"
	"github.com/GlebRadaev/domainstore/pkg/utils"
	"github.com/GlebRadaev/domainstore/pkg/validate"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type Service interface {
	GetOrder(ctx context.Context, actor fulfillmentservice.Actor, orderNumber string) (*domain.Order, []domain.OrderItem, error)
	RetryItem(ctx context.Context, actor fulfillmentservice.Actor, orderNumber string, itemID int) (*domain.OrderItem, error)
}

type RefundService interface {
	Refund(ctx context.Context, orderNumber string, amount decimal.Decimal) (*payments.Refund, error)
}

type OrderHandler struct {
	orderService  Service
	refundService RefundService
}

func New(orderService Service, refundService RefundService) *OrderHandler {
	return &OrderHandler{
		orderService:  orderService,
		refundService: refundService,
	}
}

func actor(r *http.Request) fulfillmentservice.Actor {
	userID, _ := auth.UserID(r.Context())
	return fulfillmentservice.Actor{UserID: userID, IsAdmin: auth.IsAdmin(r.Context())}
}

func orderNumber(w http.ResponseWriter, r *http.Request) (string, bool) {
	number := chi.URLParam(r, "number")
	if !validate.IsOrderNumber(number) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid order number")
		return "", false
	}
	return number, true
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, fulfillmentservice.ErrOrderNotFound), errors.Is(err, paymentservice.ErrOrderNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, fulfillmentservice.ErrItemNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Order item not found")
	case errors.Is(err, fulfillmentservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, fulfillmentservice.ErrNotRetryable), errors.Is(err, paymentservice.ErrNotRefundable):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, fulfillmentservice.ErrMissingContact), errors.Is(err, paymentservice.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, payments.ErrRefundFailed):
		utils.RespondWithError(w, http.StatusBadGateway, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// GetOrder godoc
//
//	@Summary		Get an order
//	@Description	Returns the order with per-item fulfillment state. Owners see their own orders, staff see all.
//	@Tags			Orders
//	@Produce		json
//	@Param			number	path	string	true	"Order number"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Order belongs to another account"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		422	{object}	utils.Response	"Invalid order number format"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/orders/{number} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	number, ok := orderNumber(w, r)
	if !ok {
		return
	}
	order, items, err := h.orderService.GetOrder(r.Context(), actor(r), number)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromOrder(order, items))
}

// RetryItem godoc
//
//	@Summary		Retry a failed order item
//	@Description	Re-runs the registrar operation of one failed item of a paid order and re-aggregates the order.
//	@Tags			Orders
//	@Produce		json
//	@Param			number	path	string	true	"Order number"
//	@Param			itemID	path	int		true	"Order item id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderItemDTO
//	@Failure		400	{object}	utils.Response	"Invalid item id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Order belongs to another account"
//	@Failure		404	{object}	utils.Response	"Order or item not found"
//	@Failure		409	{object}	utils.Response	"Item can't be retried"
//	@Failure		422	{object}	utils.Response	"Invalid order number format"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/orders/{number}/items/{itemID}/retry [post]
//	@Router			/api/admin/orders/{number}/items/{itemID}/retry [post]
func (h *OrderHandler) RetryItem(w http.ResponseWriter, r *http.Request) {
	number, ok := orderNumber(w, r)
	if !ok {
		return
	}
	itemID, err := strconv.Atoi(chi.URLParam(r, "itemID"))
	if err != nil || itemID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid item id")
		return
	}
	item, err := h.orderService.RetryItem(r.Context(), actor(r), number, itemID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromOrderItem(*item))
}

// Refund godoc
//
//	@Summary		Refund an order
//	@Description	Asks the payment processor to refund the order. An empty body or zero amount refunds the whole payment.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			number	path	string					true	"Order number"
//	@Param			request	body	dto.RefundRequestDTO	false	"Refund amount"
//	@Security		BearerAuth
//	@Success		202	{object}	dto.RefundResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		409	{object}	utils.Response	"Order has no captured payment"
//	@Failure		422	{object}	utils.Response	"Invalid amount"
//	@Failure		502	{object}	utils.Response	"Payment processor declined"
//	@Router			/api/admin/orders/{number}/refund [post]
func (h *OrderHandler) Refund(w http.ResponseWriter, r *http.Request) {
	number, ok := orderNumber(w, r)
	if !ok {
		return
	}
	var req dto.RefundRequestDTO
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}
	refund, err := h.refundService.Refund(r.Context(), number, req.Amount)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, dto.RefundResponseDTO{ID: refund.ID, Status: refund.Status})
}
