package dto

import (
	"time"

	"github.com/GlebRadaev/domainstore/internal/domain"
	"github.com/shopspring/decimal"
)

type BalanceResponseDTO struct {
	Mode      string          `json:"mode" example:"live"`
	Available decimal.Decimal `json:"available" swaggertype:"string" example:"512.40"`
}

type RefillRequestDTO struct {
	Mode   string          `json:"mode" example:"live"`
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"100"`
	Note   string          `json:"note,omitempty" example:"monthly top-up"`
}

type BalanceTransactionDTO struct {
	ID            int             `json:"id" example:"31"`
	Type          string          `json:"type" example:"auto_refill"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"50"`
	Fee           decimal.Decimal `json:"fee" swaggertype:"string" example:"1.75"`
	NetAmount     decimal.Decimal `json:"net_amount" swaggertype:"string" example:"48.25"`
	BalanceBefore decimal.Decimal `json:"balance_before" swaggertype:"string" example:"3.10"`
	BalanceAfter  decimal.Decimal `json:"balance_after" swaggertype:"string" example:"51.35"`
	Domain        *string         `json:"domain,omitempty" example:"example.com"`
	OrderID       *int            `json:"order_id,omitempty" example:"1001"`
	Note          string          `json:"note,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

func FromTransaction(tx domain.BalanceTransaction) BalanceTransactionDTO {
	return BalanceTransactionDTO{
		ID:            tx.ID,
		Type:          string(tx.Type),
		Amount:        tx.Amount,
		Fee:           tx.Fee,
		NetAmount:     tx.NetAmount,
		BalanceBefore: tx.BalanceBefore,
		BalanceAfter:  tx.BalanceAfter,
		Domain:        tx.DomainName,
		OrderID:       tx.OrderID,
		Note:          tx.Note,
		CreatedAt:     tx.CreatedAt,
	}
}
