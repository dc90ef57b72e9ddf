package models

// TimeSlot — шаблон часа тренера (один ряд на час рабочего дня).
// Доступность на конкретную дату всегда вычисляется по активным записям,
// а не по флагу is_available: флаг нужен только для списочных выдач.
type TimeSlot struct {
	ID            int  `json:"id"`
	TrainerID     int  `json:"trainer_id"`
	Hour          int  `json:"hour"`
	IsAvailable   bool `json:"is_available"`
	AppointmentID *int `json:"appointment_id,omitempty"`
}
