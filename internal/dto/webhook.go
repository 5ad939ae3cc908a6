package dto

type WebhookAckDTO struct {
	Received bool `json:"received" example:"true"`
}
