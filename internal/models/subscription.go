package models

import "time"

// SubscriptionType — закрытый набор направлений занятий.
type SubscriptionType string

const (
	TypeFitness          SubscriptionType = "Fitness"
	TypePilates          SubscriptionType = "Pilates"
	TypeYoga             SubscriptionType = "Yoga"
	TypeCrossFit         SubscriptionType = "CrossFit"
	TypeSwimming         SubscriptionType = "Swimming"
	TypePersonalTraining SubscriptionType = "PersonalTraining"
	TypeCardio           SubscriptionType = "Cardio"
)

// SubscriptionTypes — все допустимые направления (порядок как в каталоге).
var SubscriptionTypes = []SubscriptionType{
	TypeFitness,
	TypePilates,
	TypeYoga,
	TypeCrossFit,
	TypeSwimming,
	TypePersonalTraining,
	TypeCardio,
}

func ParseSubscriptionType(s string) (SubscriptionType, bool) {
	for _, t := range SubscriptionTypes {
		if SubscriptionType(s) == t {
			return t, true
		}
	}
	return "", false
}

type Subscription struct {
	ID        int              `json:"id"`
	UserID    int              `json:"user_id"`
	Type      SubscriptionType `json:"type"`
	Price     int              `json:"price"`
	StartDate time.Time        `json:"start_date"`
	EndDate   time.Time        `json:"end_date"`
	IsActive  bool             `json:"is_active"`
	CreatedAt time.Time        `json:"created_at"`

	User *User `json:"user,omitempty"`
}

type CreateSubscriptionRequest struct {
	UserID    int    `json:"user_id"`
	Type      string `json:"type"`
	Price     int    `json:"price"`
	StartDate string `json:"start_date"` // yyyy-mm-dd
	EndDate   string `json:"end_date"`   // yyyy-mm-dd
}
