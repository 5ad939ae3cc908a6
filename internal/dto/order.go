package dto

import (
	"time"

	"github.com/GlebRadaev/domainstore/internal/domain"
	"github.com/shopspring/decimal"
)

type OrderItemDTO struct {
	ID               int             `json:"id" example:"12"`
	Type             string          `json:"type" example:"register"`
	Domain           string          `json:"domain" example:"example.com"`
	Years            int             `json:"years" example:"1"`
	TotalPrice       decimal.Decimal `json:"total_price" swaggertype:"string" example:"12.99"`
	Status           string          `json:"status" example:"completed"`
	RegistrarOrderID string          `json:"registrar_order_id,omitempty" example:"R-889123"`
	Error            string          `json:"error,omitempty"`
	ProcessedAt      *time.Time      `json:"processed_at,omitempty"`
}

type OrderResponseDTO struct {
	Number         string          `json:"number" example:"1001"`
	Status         string          `json:"status" example:"partial"`
	PaymentStatus  string          `json:"payment_status" example:"paid"`
	Total          decimal.Decimal `json:"total" swaggertype:"string" example:"25.98"`
	Mode           string          `json:"registrar_mode" example:"live"`
	RequiresReview bool            `json:"requires_review"`
	CreatedAt      time.Time       `json:"created_at"`
	Items          []OrderItemDTO  `json:"items"`
}

type RefundRequestDTO struct {
	// zero or absent refunds the whole payment
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"12.99"`
}

type RefundResponseDTO struct {
	ID     string `json:"id" example:"re_1Nv"`
	Status string `json:"status" example:"pending"`
}

func FromOrderItem(item domain.OrderItem) OrderItemDTO {
	return OrderItemDTO{
		ID:               item.ID,
		Type:             string(item.Type),
		Domain:           item.DomainName,
		Years:            item.Years,
		TotalPrice:       item.TotalPrice,
		Status:           string(item.Status),
		RegistrarOrderID: item.RegistrarOrderID,
		Error:            item.ErrorMessage,
		ProcessedAt:      item.ProcessedAt,
	}
}

func FromOrder(order *domain.Order, items []domain.OrderItem) OrderResponseDTO {
	resp := OrderResponseDTO{
		Number:         order.OrderNumber,
		Status:         string(order.Status),
		PaymentStatus:  string(order.PaymentStatus),
		Total:          order.Total,
		Mode:           string(order.Mode),
		RequiresReview: order.RequiresReview,
		CreatedAt:      order.CreatedAt,
		Items:          make([]OrderItemDTO, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, FromOrderItem(item))
	}
	return resp
}
