package services

import (
	"context"
	"errors"
	"time"

	"gymfit/internal/config"
	"gymfit/internal/logger"
	"gymfit/internal/models"
	"gymfit/internal/repository"

	"go.uber.org/zap"
)

type AppointmentRepo interface {
	CreateAppointment(ctx context.Context, a *models.Appointment) error
	GetAppointmentByID(ctx context.Context, id int) (*models.Appointment, error)
	GetAllAppointments(ctx context.Context) ([]*models.Appointment, error)
	GetAppointmentsByUser(ctx context.Context, userID int) ([]*models.Appointment, error)
	GetAppointmentsByTrainer(ctx context.Context, trainerID int) ([]*models.Appointment, error)
	GetBookedHours(ctx context.Context, trainerID int, date time.Time) ([]int, error)
	UpdateAppointmentStatus(ctx context.Context, id int, status models.AppointmentStatus) error
}

type SlotRepo interface {
	BulkCreateSlots(ctx context.Context, trainerID, from, to int) ([]*models.TimeSlot, error)
	HasSlots(ctx context.Context, trainerID int) (bool, error)
	GetSlotsByTrainer(ctx context.Context, trainerID int) ([]*models.TimeSlot, error)
	GetOrCreateSlot(ctx context.Context, trainerID, hour int) (*models.TimeSlot, error)
	SetSlotState(ctx context.Context, slotID int, available bool, appointmentID *int) error
}

type TrainerReader interface {
	TrainerExists(ctx context.Context, id int) (bool, error)
	GetTrainerByUserID(ctx context.Context, userID int) (*models.Trainer, error)
}

type UserReader interface {
	GetUserByID(ctx context.Context, id int) (*models.User, error)
}

// ScheduleService — расчёт доступности, проверки бронирования и жизненный
// цикл записей. Все сравнения с «сейчас» идут через инжектированные часы,
// чтобы тесты могли подставить фиксированный момент.
type ScheduleService struct {
	appointments AppointmentRepo
	slots        SlotRepo
	trainers     TrainerReader
	users        UserReader

	openHour            int
	closeHour           int
	releaseSlotOnCancel bool

	now func() time.Time
}

func NewScheduleService(
	appointments AppointmentRepo,
	slots SlotRepo,
	trainers TrainerReader,
	users UserReader,
	cfg *config.Config,
) *ScheduleService {
	return &ScheduleService{
		appointments:        appointments,
		slots:               slots,
		trainers:            trainers,
		users:               users,
		openHour:            cfg.BookingOpenHour,
		closeHour:           cfg.BookingCloseHour,
		releaseSlotOnCancel: cfg.ReleaseSlotOnCancel,
		now:                 time.Now,
	}
}

// AvailableHours возвращает свободные часы тренера на дату: полное окно
// [openHour, closeHour] минус часы неотменённых записей, по возрастанию.
func (s *ScheduleService) AvailableHours(ctx context.Context, trainerID int, date time.Time) ([]int, error) {
	logger.Log.Info("Расчёт свободных часов (service)",
		zap.Int("trainer_id", trainerID), zap.Time("date", date))

	exists, err := s.trainers.TrainerExists(ctx, trainerID)
	if err != nil {
		logger.Log.Error("Ошибка проверки тренера (service)", zap.Error(err))
		return nil, err
	}
	if !exists {
		return nil, ErrTrainerNotFound
	}

	date = truncateToDay(date)
	if date.Before(truncateToDay(s.now().UTC())) {
		logger.Log.Warn("Запрошена доступность на прошедшую дату (service)", zap.Time("date", date))
		return nil, ErrPastDate
	}

	booked, err := s.appointments.GetBookedHours(ctx, trainerID, date)
	if err != nil {
		logger.Log.Error("Ошибка получения занятых часов (service)", zap.Error(err))
		return nil, err
	}

	taken := make(map[int]struct{}, len(booked))
	for _, h := range booked {
		taken[h] = struct{}{}
	}

	free := make([]int, 0, s.closeHour-s.openHour+1)
	for h := s.openHour; h <= s.closeHour; h++ {
		if _, ok := taken[h]; !ok {
			free = append(free, h)
		}
	}
	return free, nil
}

// CheckHour — доступен ли один конкретный час тренера на дату.
func (s *ScheduleService) CheckHour(ctx context.Context, trainerID int, date time.Time, hour int) (bool, error) {
	if hour < s.openHour || hour > s.closeHour {
		return false, ErrInvalidHour
	}

	free, err := s.AvailableHours(ctx, trainerID, date)
	if err != nil {
		return false, err
	}
	for _, h := range free {
		if h == hour {
			return true, nil
		}
	}
	return false, nil
}

// ValidateNewAppointment — чистая проверка заявки на бронирование.
// Проверки идут строго по порядку, первая провалившаяся решает исход.
func (s *ScheduleService) ValidateNewAppointment(
	ctx context.Context,
	memberID, trainerID int,
	date time.Time,
	hour int,
	status models.AppointmentStatus,
	requesterID int,
	requesterRole models.Role,
) error {
	// 1. Записывать можно себя; за других — только админ.
	if requesterID != memberID && requesterRole != models.RoleAdmin {
		logger.Log.Warn("Попытка записать другого пользователя (service)",
			zap.Int("requester_id", requesterID), zap.Int("member_id", memberID))
		return ErrForbidden
	}

	// 2. Пользователь существует.
	if _, err := s.users.GetUserByID(ctx, memberID); err != nil {
		logger.Log.Warn("Пользователь не найден при бронировании (service)",
			zap.Int("user_id", memberID), zap.Error(err))
		return ErrUserNotFound
	}

	// 3. Тренер существует.
	exists, err := s.trainers.TrainerExists(ctx, trainerID)
	if err != nil || !exists {
		logger.Log.Warn("Тренер не найден при бронировании (service)",
			zap.Int("trainer_id", trainerID), zap.Error(err))
		return ErrTrainerNotFound
	}

	// 4. Дата строго в будущем (UTC).
	if !truncateToDay(date).After(s.now().UTC()) {
		logger.Log.Warn("Дата записи не в будущем (service)", zap.Time("date", date))
		return ErrInvalidDate
	}

	// 5. Час не занят неотменённой записью.
	booked, err := s.appointments.GetBookedHours(ctx, trainerID, truncateToDay(date))
	if err != nil {
		logger.Log.Error("Ошибка проверки пересечений (service)", zap.Error(err))
		return err
	}
	for _, h := range booked {
		if h == hour {
			return ErrOverlap
		}
	}

	// 6. Статус из закрытого набора.
	if _, ok := models.ParseAppointmentStatus(string(status)); !ok {
		return ErrInvalidStatus
	}

	return nil
}

// CreateAppointment проводит проверки и сохраняет запись одной условной
// вставкой: конфликт по частичному уникальному индексу означает, что
// параллельное бронирование успело раньше, и возвращается как Overlap.
func (s *ScheduleService) CreateAppointment(
	ctx context.Context,
	memberID, trainerID int,
	date time.Time,
	hour int,
	status models.AppointmentStatus,
	requesterID int,
	requesterRole models.Role,
) (*models.Appointment, error) {
	logger.Log.Info("Создание записи (service)",
		zap.Int("user_id", memberID), zap.Int("trainer_id", trainerID),
		zap.Time("date", date), zap.Int("hour", hour))

	if status == "" {
		status = models.StatusPending
	}

	if hour < s.openHour || hour > s.closeHour {
		return nil, ErrInvalidHour
	}

	if err := s.ValidateNewAppointment(ctx, memberID, trainerID, date, hour, status, requesterID, requesterRole); err != nil {
		return nil, err
	}

	slot, err := s.slots.GetOrCreateSlot(ctx, trainerID, hour)
	if err != nil {
		logger.Log.Error("Ошибка получения слота (service)", zap.Error(err))
		return nil, err
	}

	appointment := &models.Appointment{
		UserID:     memberID,
		TrainerID:  trainerID,
		Date:       truncateToDay(date),
		Hour:       hour,
		TimeSlotID: slot.ID,
		Status:     status,
	}

	if err := s.appointments.CreateAppointment(ctx, appointment); err != nil {
		if errors.Is(err, repository.ErrBookingConflict) {
			return nil, ErrOverlap
		}
		logger.Log.Error("Ошибка сохранения записи (service)", zap.Error(err))
		return nil, err
	}

	if err := s.slots.SetSlotState(ctx, slot.ID, false, &appointment.ID); err != nil {
		// Запись уже создана; слот-шаблон — вторичное представление.
		logger.Log.Warn("Не удалось пометить слот занятым (service)",
			zap.Int("slot_id", slot.ID), zap.Error(err))
	}

	logger.Log.Info("Запись создана (service)", zap.Int("appointment_id", appointment.ID))
	return appointment, nil
}

// UpdateAppointmentStatus меняет статус записи с проверкой прав:
// владелец, назначенный тренер или админ.
func (s *ScheduleService) UpdateAppointmentStatus(
	ctx context.Context,
	appointmentID int,
	newStatus string,
	requesterID int,
	requesterRole models.Role,
) (*models.Appointment, error) {
	logger.Log.Info("Обновление статуса записи (service)",
		zap.Int("appointment_id", appointmentID), zap.String("status", newStatus))

	appointment, err := s.appointments.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		logger.Log.Warn("Запись не найдена (service)", zap.Int("appointment_id", appointmentID), zap.Error(err))
		return nil, ErrAppointmentNotFound
	}

	if !s.canTouchAppointment(ctx, appointment, requesterID, requesterRole) {
		logger.Log.Warn("Недостаточно прав на запись (service)",
			zap.Int("appointment_id", appointmentID), zap.Int("requester_id", requesterID))
		return nil, ErrForbidden
	}

	status, ok := models.ParseAppointmentStatus(newStatus)
	if !ok {
		return nil, ErrInvalidStatus
	}

	if appointment.Status.Terminal() {
		return nil, ErrStatusFinal
	}

	if err := s.appointments.UpdateAppointmentStatus(ctx, appointmentID, status); err != nil {
		logger.Log.Error("Ошибка обновления статуса (service)", zap.Error(err))
		return nil, err
	}
	appointment.Status = status

	if status == models.StatusCancelled && s.releaseSlotOnCancel {
		if err := s.slots.SetSlotState(ctx, appointment.TimeSlotID, true, nil); err != nil {
			logger.Log.Warn("Не удалось освободить слот после отмены (service)",
				zap.Int("slot_id", appointment.TimeSlotID), zap.Error(err))
		}
	}

	logger.Log.Info("Статус записи обновлён (service)",
		zap.Int("appointment_id", appointmentID), zap.String("status", string(status)))
	return appointment, nil
}

func (s *ScheduleService) canTouchAppointment(ctx context.Context, a *models.Appointment, requesterID int, role models.Role) bool {
	switch role {
	case models.RoleAdmin:
		return true
	case models.RoleMember:
		return a.UserID == requesterID
	case models.RoleTrainer:
		if a.UserID == requesterID {
			return true
		}
		trainer, err := s.trainers.GetTrainerByUserID(ctx, requesterID)
		if err != nil {
			return false
		}
		return trainer.ID == a.TrainerID
	default:
		return false
	}
}

// ListAppointmentsFor — админ видит все записи, тренер свои, клиент свои.
func (s *ScheduleService) ListAppointmentsFor(ctx context.Context, requesterID int, role models.Role) ([]*models.Appointment, error) {
	switch role {
	case models.RoleAdmin:
		return s.appointments.GetAllAppointments(ctx)
	case models.RoleTrainer:
		trainer, err := s.trainers.GetTrainerByUserID(ctx, requesterID)
		if err != nil {
			logger.Log.Warn("Профиль тренера не найден (service)", zap.Int("user_id", requesterID), zap.Error(err))
			return nil, ErrTrainerNotFound
		}
		return s.appointments.GetAppointmentsByTrainer(ctx, trainer.ID)
	case models.RoleMember:
		return s.appointments.GetAppointmentsByUser(ctx, requesterID)
	default:
		return nil, ErrForbidden
	}
}

// TrainerSlots — шаблонные слоты тренера (списочная выдача).
func (s *ScheduleService) TrainerSlots(ctx context.Context, trainerID int) ([]*models.TimeSlot, error) {
	exists, err := s.trainers.TrainerExists(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTrainerNotFound
	}
	return s.slots.GetSlotsByTrainer(ctx, trainerID)
}

// ProvisionSlots создаёт недостающие шаблонные слоты для тренера,
// заведённого до автоматического создания.
func (s *ScheduleService) ProvisionSlots(ctx context.Context, trainerID int) ([]*models.TimeSlot, error) {
	logger.Log.Info("Дозаведение слотов тренера (service)", zap.Int("trainer_id", trainerID))

	exists, err := s.trainers.TrainerExists(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTrainerNotFound
	}

	has, err := s.slots.HasSlots(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	if has {
		return nil, ErrSlotsProvisioned
	}

	return s.slots.BulkCreateSlots(ctx, trainerID, s.openHour, s.closeHour)
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
