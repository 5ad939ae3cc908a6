package dto

import (
	"time"

	"github.com/GlebRadaev/domainstore/internal/domain"
)

type CreatePushRequestDTO struct {
	DomainID int    `json:"domain_id" example:"42"`
	ToEmail  string `json:"to_email" example:"bob@example.com"`
	Note     string `json:"note,omitempty" example:"moving to the agency account"`
}

type PushResponseDTO struct {
	ID             string     `json:"id" example:"1b4e28ba-2fa1-11d2-883f-0016d3cca427"`
	DomainID       int        `json:"domain_id" example:"42"`
	FromUserID     int        `json:"from_user_id" example:"7"`
	ToUserID       int        `json:"to_user_id" example:"9"`
	ToEmail        string     `json:"to_email" example:"bob@example.com"`
	Note           string     `json:"note,omitempty"`
	Status         string     `json:"status" example:"pending"`
	AdminInitiated bool       `json:"admin_initiated"`
	ExpiresAt      time.Time  `json:"expires_at"`
	RespondedAt    *time.Time `json:"responded_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func FromPush(p *domain.DomainPushRequest) PushResponseDTO {
	return PushResponseDTO{
		ID:             p.ID.String(),
		DomainID:       p.DomainID,
		FromUserID:     p.FromUserID,
		ToUserID:       p.ToUserID,
		ToEmail:        p.ToEmail,
		Note:           p.Note,
		Status:         string(p.Status),
		AdminInitiated: p.AdminInitiated,
		ExpiresAt:      p.ExpiresAt,
		RespondedAt:    p.RespondedAt,
		CreatedAt:      p.CreatedAt,
	}
}
