package services

// RejectError — отказ доменной проверки: машиночитаемый код причины
// плюс сообщение, которое фронт показывает как есть.
type RejectError struct {
	Code    string
	Message string
}

func (e *RejectError) Error() string { return e.Message }

var (
	ErrUserNotFound        = &RejectError{Code: "not_found_user", Message: "Пользователь не найден"}
	ErrTrainerNotFound     = &RejectError{Code: "not_found_trainer", Message: "Тренер не найден"}
	ErrAppointmentNotFound = &RejectError{Code: "not_found_appointment", Message: "Запись не найдена"}
	ErrSubscriptionNotFound = &RejectError{Code: "not_found_subscription", Message: "Абонемент не найден"}
	ErrPlanNotFound        = &RejectError{Code: "not_found_plan", Message: "Тарифный план не найден"}

	ErrForbidden = &RejectError{Code: "forbidden", Message: "Недостаточно прав для этого действия"}

	ErrInvalidDate   = &RejectError{Code: "invalid_date", Message: "Дата должна быть в будущем"}
	ErrPastDate      = &RejectError{Code: "invalid_date", Message: "Нельзя работать с прошедшей датой"}
	ErrInvalidHour   = &RejectError{Code: "invalid_hour", Message: "Час вне рабочего окна"}
	ErrInvalidStatus = &RejectError{Code: "invalid_status", Message: "Недопустимый статус записи"}
	ErrStatusFinal   = &RejectError{Code: "invalid_status", Message: "Запись в финальном статусе, переход невозможен"}

	ErrOverlap = &RejectError{Code: "overlap", Message: "У тренера уже есть запись на этот час"}

	ErrDuplicateSubscription = &RejectError{Code: "duplicate", Message: "У пользователя уже есть активный абонемент этого типа"}
	ErrDuplicateTrainer      = &RejectError{Code: "duplicate", Message: "Профиль тренера для этого пользователя уже существует"}
	ErrDuplicatePlan         = &RejectError{Code: "duplicate", Message: "Тарифный план с таким именем уже существует"}
	ErrSlotsProvisioned      = &RejectError{Code: "duplicate", Message: "У тренера уже есть слоты"}

	ErrInvalidRole  = &RejectError{Code: "invalid_role", Message: "Недопустимая роль пользователя"}
	ErrInvalidType  = &RejectError{Code: "invalid_type", Message: "Недопустимый тип абонемента"}
	ErrInvalidRange = &RejectError{Code: "invalid_range", Message: "Дата окончания должна быть позже даты начала"}
	ErrTooLong      = &RejectError{Code: "invalid_range", Message: "Абонемент не может длиться больше года"}
	ErrInvalidPrice = &RejectError{Code: "invalid_price", Message: "Цена должна быть больше нуля"}
)
