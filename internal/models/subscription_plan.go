package models

import "time"

// SubscriptionPlan — позиция каталога, из которой оформляется Subscription.
type SubscriptionPlan struct {
	ID             int              `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	Price          int              `json:"price"`
	DurationInDays int              `json:"duration_in_days"`
	Type           SubscriptionType `json:"type"`
	CreatedAt      time.Time        `json:"created_at"`
}

type CreatePlanRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Price          int    `json:"price"`
	DurationInDays int    `json:"duration_in_days"`
	Type           string `json:"type"`
}

type UpdatePlanRequest struct {
	Name           *string `json:"name,omitempty"`
	Description    *string `json:"description,omitempty"`
	Price          *int    `json:"price,omitempty"`
	DurationInDays *int    `json:"duration_in_days,omitempty"`
	Type           *string `json:"type,omitempty"`
}
