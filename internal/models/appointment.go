package models

import "time"

// AppointmentStatus — закрытый набор статусов записи.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "Pending"
	StatusConfirmed AppointmentStatus = "Confirmed"
	StatusCancelled AppointmentStatus = "Cancelled"
	StatusCompleted AppointmentStatus = "Completed"
)

// ParseAppointmentStatus возвращает статус или false для значения вне набора.
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case StatusPending:
		return StatusPending, true
	case StatusConfirmed:
		return StatusConfirmed, true
	case StatusCancelled:
		return StatusCancelled, true
	case StatusCompleted:
		return StatusCompleted, true
	default:
		return "", false
	}
}

// Terminal сообщает, допускает ли статус дальнейшие переходы.
func (s AppointmentStatus) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

type Appointment struct {
	ID         int               `json:"id"`
	UserID     int               `json:"user_id"`
	TrainerID  int               `json:"trainer_id"`
	Date       time.Time         `json:"date"`
	Hour       int               `json:"hour"`
	TimeSlotID int               `json:"time_slot_id"`
	Status     AppointmentStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`

	User    *User    `json:"user,omitempty"`
	Trainer *Trainer `json:"trainer,omitempty"`
}

type CreateAppointmentRequest struct {
	UserID    int    `json:"user_id"`
	TrainerID int    `json:"trainer_id"`
	Date      string `json:"date"` // yyyy-mm-dd
	Hour      int    `json:"hour"`
	Status    string `json:"status,omitempty"`
}

type UpdateAppointmentRequest struct {
	Status string `json:"status"`
}
