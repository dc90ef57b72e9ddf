package models

import "time"

type Trainer struct {
	ID             int       `json:"id"`
	UserID         int       `json:"user_id"`
	Specialization string    `json:"specialization"`
	Experience     int       `json:"experience"`
	Introduction   string    `json:"introduction"`
	Availability   string    `json:"availability"`
	Location       string    `json:"location"`
	CreatedAt      time.Time `json:"created_at"`

	// Заполняется join-ом при выдаче наружу.
	User *User `json:"user,omitempty"`
}

type CreateTrainerRequest struct {
	UserID         int    `json:"user_id"`
	Specialization string `json:"specialization"`
	Experience     int    `json:"experience"`
	Introduction   string `json:"introduction"`
	Availability   string `json:"availability"`
	Location       string `json:"location"`
}
