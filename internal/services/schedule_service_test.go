package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gymfit/internal/config"
	"gymfit/internal/models"
	"gymfit/internal/repository"
)

type mockAppointmentRepo struct {
	appointments []*models.Appointment
	nextID       int

	// Имитация проигранной гонки: вставка упирается в уникальный индекс.
	conflictOnCreate bool
}

func (m *mockAppointmentRepo) CreateAppointment(_ context.Context, a *models.Appointment) error {
	if m.conflictOnCreate {
		return repository.ErrBookingConflict
	}
	for _, ex := range m.appointments {
		if ex.TrainerID == a.TrainerID && ex.Date.Equal(a.Date) && ex.Hour == a.Hour && ex.Status != models.StatusCancelled {
			return repository.ErrBookingConflict
		}
	}
	m.nextID++
	a.ID = m.nextID
	m.appointments = append(m.appointments, a)
	return nil
}

func (m *mockAppointmentRepo) GetAppointmentByID(_ context.Context, id int) (*models.Appointment, error) {
	for _, a := range m.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *mockAppointmentRepo) GetAllAppointments(_ context.Context) ([]*models.Appointment, error) {
	return m.appointments, nil
}

func (m *mockAppointmentRepo) GetAppointmentsByUser(_ context.Context, userID int) ([]*models.Appointment, error) {
	var out []*models.Appointment
	for _, a := range m.appointments {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAppointmentRepo) GetAppointmentsByTrainer(_ context.Context, trainerID int) ([]*models.Appointment, error) {
	var out []*models.Appointment
	for _, a := range m.appointments {
		if a.TrainerID == trainerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAppointmentRepo) GetBookedHours(_ context.Context, trainerID int, date time.Time) ([]int, error) {
	var hours []int
	for _, a := range m.appointments {
		if a.TrainerID == trainerID && a.Date.Equal(date) && a.Status != models.StatusCancelled {
			hours = append(hours, a.Hour)
		}
	}
	return hours, nil
}

func (m *mockAppointmentRepo) UpdateAppointmentStatus(_ context.Context, id int, status models.AppointmentStatus) error {
	for _, a := range m.appointments {
		if a.ID == id {
			a.Status = status
			return nil
		}
	}
	return errors.New("not found")
}

type mockSlotRepo struct {
	slots  map[int]*models.TimeSlot
	nextID int
}

func newMockSlotRepo() *mockSlotRepo {
	return &mockSlotRepo{slots: make(map[int]*models.TimeSlot)}
}

func (m *mockSlotRepo) BulkCreateSlots(_ context.Context, trainerID, from, to int) ([]*models.TimeSlot, error) {
	var out []*models.TimeSlot
	for h := from; h <= to; h++ {
		m.nextID++
		s := &models.TimeSlot{ID: m.nextID, TrainerID: trainerID, Hour: h, IsAvailable: true}
		m.slots[s.ID] = s
		out = append(out, s)
	}
	return out, nil
}

func (m *mockSlotRepo) HasSlots(_ context.Context, trainerID int) (bool, error) {
	for _, s := range m.slots {
		if s.TrainerID == trainerID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockSlotRepo) GetSlotsByTrainer(_ context.Context, trainerID int) ([]*models.TimeSlot, error) {
	var out []*models.TimeSlot
	for _, s := range m.slots {
		if s.TrainerID == trainerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSlotRepo) GetOrCreateSlot(_ context.Context, trainerID, hour int) (*models.TimeSlot, error) {
	for _, s := range m.slots {
		if s.TrainerID == trainerID && s.Hour == hour {
			return s, nil
		}
	}
	m.nextID++
	s := &models.TimeSlot{ID: m.nextID, TrainerID: trainerID, Hour: hour, IsAvailable: true}
	m.slots[s.ID] = s
	return s, nil
}

func (m *mockSlotRepo) SetSlotState(_ context.Context, slotID int, available bool, appointmentID *int) error {
	s, ok := m.slots[slotID]
	if !ok {
		return errors.New("not found")
	}
	s.IsAvailable = available
	s.AppointmentID = appointmentID
	return nil
}

type mockTrainerReader struct {
	trainers map[int]*models.Trainer
}

func (m *mockTrainerReader) TrainerExists(_ context.Context, id int) (bool, error) {
	_, ok := m.trainers[id]
	return ok, nil
}

func (m *mockTrainerReader) GetTrainerByUserID(_ context.Context, userID int) (*models.Trainer, error) {
	for _, tr := range m.trainers {
		if tr.UserID == userID {
			return tr, nil
		}
	}
	return nil, errors.New("not found")
}

// Фиксированное «сейчас» для всех расчётов в тестах расписания.
var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type scheduleFixture struct {
	svc          *ScheduleService
	appointments *mockAppointmentRepo
	slots        *mockSlotRepo
	trainers     *mockTrainerReader
	users        *mockUserRepo
}

func newScheduleFixture() *scheduleFixture {
	users := newMockUserRepo()
	users.addUser(&models.User{Name: "Клиент", Email: "member@example.com", Role: models.RoleMember})
	trainerUser := users.addUser(&models.User{Name: "Тренер", Email: "trainer@example.com", Role: models.RoleTrainer})

	trainers := &mockTrainerReader{trainers: map[int]*models.Trainer{
		1: {ID: 1, UserID: trainerUser.ID, Specialization: string(models.TypeFitness)},
	}}

	cfg := &config.Config{BookingOpenHour: 9, BookingCloseHour: 20, ReleaseSlotOnCancel: true}
	appointments := &mockAppointmentRepo{}
	slots := newMockSlotRepo()

	svc := NewScheduleService(appointments, slots, trainers, users, cfg)
	svc.now = func() time.Time { return testNow }

	return &scheduleFixture{svc: svc, appointments: appointments, slots: slots, trainers: trainers, users: users}
}

func TestAvailableHours_FullWindow(t *testing.T) {
	f := newScheduleFixture()

	hours, err := f.svc.AvailableHours(context.Background(), 1, day(2026, 9, 5))
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(hours) != 12 || hours[0] != 9 || hours[11] != 20 {
		t.Fatalf("ожидалось окно 9..20 из 12 часов, получили %v", hours)
	}
}

func TestAvailableHours_ExcludesBooked(t *testing.T) {
	f := newScheduleFixture()
	date := day(2026, 9, 5)

	if _, err := f.svc.CreateAppointment(context.Background(), 1, 1, date, 10, "", 1, models.RoleMember); err != nil {
		t.Fatalf("не удалось создать запись: %v", err)
	}

	hours, err := f.svc.AvailableHours(context.Background(), 1, date)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(hours) != 11 {
		t.Fatalf("ожидалось 11 свободных часов, получили %v", hours)
	}
	for _, h := range hours {
		if h == 10 {
			t.Fatal("занятый час 10 не должен быть в списке свободных")
		}
	}
}

func TestAvailableHours_PastDate(t *testing.T) {
	f := newScheduleFixture()

	_, err := f.svc.AvailableHours(context.Background(), 1, day(2026, 8, 20))
	if !errors.Is(err, ErrPastDate) {
		t.Fatalf("ожидалась ErrPastDate, получили %v", err)
	}
}

func TestAvailableHours_TrainerNotFound(t *testing.T) {
	f := newScheduleFixture()

	_, err := f.svc.AvailableHours(context.Background(), 99, day(2026, 9, 5))
	if !errors.Is(err, ErrTrainerNotFound) {
		t.Fatalf("ожидалась ErrTrainerNotFound, получили %v", err)
	}
}

func TestCreateAppointment_Success(t *testing.T) {
	f := newScheduleFixture()

	a, err := f.svc.CreateAppointment(context.Background(), 1, 1, day(2026, 9, 5), 10, "", 1, models.RoleMember)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if a.Status != models.StatusPending {
		t.Fatalf("пустой статус должен стать Pending, получили %q", a.Status)
	}

	slot, _ := f.slots.GetOrCreateSlot(context.Background(), 1, 10)
	if slot.IsAvailable {
		t.Fatal("слот должен быть помечен занятым после бронирования")
	}
	if slot.AppointmentID == nil || *slot.AppointmentID != a.ID {
		t.Fatal("слот должен ссылаться на созданную запись")
	}
}

func TestCreateAppointment_Forbidden(t *testing.T) {
	f := newScheduleFixture()

	// Клиент 2 пытается записать клиента 1.
	_, err := f.svc.CreateAppointment(context.Background(), 1, 1, day(2026, 9, 5), 10, "", 2, models.RoleMember)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("ожидалась ErrForbidden, получили %v", err)
	}
}

func TestCreateAppointment_AdminForOther(t *testing.T) {
	f := newScheduleFixture()

	_, err := f.svc.CreateAppointment(context.Background(), 1, 1, day(2026, 9, 5), 10, "", 99, models.RoleAdmin)
	if err != nil {
		t.Fatalf("админ может записывать других, получили %v", err)
	}
}

func TestCreateAppointment_UserNotFound(t *testing.T) {
	f := newScheduleFixture()

	_, err := f.svc.CreateAppointment(context.Background(), 42, 1, day(2026, 9, 5), 10, "", 42, models.RoleMember)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("ожидалась ErrUserNotFound, получили %v", err)
	}
}

func TestCreateAppointment_TrainerNotFound(t *testing.T) {
	f := newScheduleFixture()

	_, err := f.svc.CreateAppointment(context.Background(), 1, 99, day(2026, 9, 5), 10, "", 1, models.RoleMember)
	if !errors.Is(err, ErrTrainerNotFound) {
		t.Fatalf("ожидалась ErrTrainerNotFound, получили %v", err)
	}
}

func TestCreateAppointment_DateNotFuture(t *testing.T) {
	f := newScheduleFixture()

	// Сегодняшний день не считается будущим.
	_, err := f.svc.CreateAppointment(context.Background(), 1, 1, day(2026, 9, 1), 10, "", 1, models.RoleMember)
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("ожидалась ErrInvalidDate, получили %v", err)
	}
}

func TestCreateAppointment_Overlap(t *testing.T) {
	f := newScheduleFixture()
	date := day(2026, 9, 5)

	if _, err := f.svc.CreateAppointment(context.Background(), 1, 1, date, 10, "", 1, models.RoleMember); err != nil {
		t.Fatalf("не удалось создать первую запись: %v", err)
	}

	_, err := f.svc.CreateAppointment(context.Background(), 1, 1, date, 10, "", 99, models.RoleAdmin)
	if !errors.Is(err, ErrOverlap) {
		t.Fatalf("ожидалась ErrOverlap, получили %v", err)
	}
}

func TestCreateAppointment_ConflictFromStorage(t *testing.T) {
	f := newScheduleFixture()
	date := day(2026, 9, 5)

	// Гонка: проверка пересечений прошла, но вставка упёрлась в индекс.
	f.appointments.conflictOnCreate = true

	_, err := f.svc.CreateAppointment(context.Background(), 1, 1, date, 10, "", 99, models.RoleAdmin)
	if !errors.Is(err, ErrOverlap) {
		t.Fatalf("конфликт вставки должен отдаваться как ErrOverlap, получили %v", err)
	}
}

func TestCreateAppointment_InvalidStatus(t *testing.T) {
	f := newScheduleFixture()

	_, err := f.svc.CreateAppointment(context.Background(), 1, 1, day(2026, 9, 5), 10, "Archived", 1, models.RoleMember)
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("ожидалась ErrInvalidStatus, получили %v", err)
	}
}

func TestCreateAppointment_InvalidHour(t *testing.T) {
	f := newScheduleFixture()

	if _, err := f.svc.CreateAppointment(context.Background(), 1, 1, day(2026, 9, 5), 8, "", 1, models.RoleMember); !errors.Is(err, ErrInvalidHour) {
		t.Fatalf("час 8 вне окна, ожидалась ErrInvalidHour, получили %v", err)
	}
	if _, err := f.svc.CreateAppointment(context.Background(), 1, 1, day(2026, 9, 5), 21, "", 1, models.RoleMember); !errors.Is(err, ErrInvalidHour) {
		t.Fatalf("час 21 вне окна, ожидалась ErrInvalidHour, получили %v", err)
	}
}

func TestValidateNewAppointment_ForbiddenBeforeNotFound(t *testing.T) {
	f := newScheduleFixture()

	// Чужой несуществующий пользователь: сначала должна сработать проверка прав.
	err := f.svc.ValidateNewAppointment(context.Background(), 42, 99, day(2026, 9, 5), 10, models.StatusPending, 1, models.RoleMember)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("проверка прав идёт первой, получили %v", err)
	}
}

func TestUpdateAppointmentStatus_CancelReleasesSlot(t *testing.T) {
	f := newScheduleFixture()
	date := day(2026, 9, 5)

	a, err := f.svc.CreateAppointment(context.Background(), 1, 1, date, 10, "", 1, models.RoleMember)
	if err != nil {
		t.Fatalf("не удалось создать запись: %v", err)
	}

	if _, err := f.svc.UpdateAppointmentStatus(context.Background(), a.ID, string(models.StatusCancelled), 1, models.RoleMember); err != nil {
		t.Fatalf("ошибка отмены: %v", err)
	}

	slot := f.slots.slots[a.TimeSlotID]
	if !slot.IsAvailable || slot.AppointmentID != nil {
		t.Fatal("после отмены слот должен освободиться")
	}

	// Час снова доступен для бронирования.
	hours, err := f.svc.AvailableHours(context.Background(), 1, date)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	found := false
	for _, h := range hours {
		if h == 10 {
			found = true
		}
	}
	if !found {
		t.Fatal("отменённый час должен вернуться в свободные")
	}
}

func TestUpdateAppointmentStatus_TerminalRejected(t *testing.T) {
	f := newScheduleFixture()

	a, err := f.svc.CreateAppointment(context.Background(), 1, 1, day(2026, 9, 5), 10, "", 1, models.RoleMember)
	if err != nil {
		t.Fatalf("не удалось создать запись: %v", err)
	}

	if _, err := f.svc.UpdateAppointmentStatus(context.Background(), a.ID, string(models.StatusCompleted), 99, models.RoleAdmin); err != nil {
		t.Fatalf("ошибка завершения: %v", err)
	}

	_, err = f.svc.UpdateAppointmentStatus(context.Background(), a.ID, string(models.StatusConfirmed), 99, models.RoleAdmin)
	if !errors.Is(err, ErrStatusFinal) {
		t.Fatalf("завершённая запись не меняется, ожидалась ErrStatusFinal, получили %v", err)
	}
}

func TestUpdateAppointmentStatus_ForbiddenForStranger(t *testing.T) {
	f := newScheduleFixture()

	stranger := f.users.addUser(&models.User{Name: "Посторонний", Email: "x@example.com", Role: models.RoleMember})

	a, err := f.svc.CreateAppointment(context.Background(), 1, 1, day(2026, 9, 5), 10, "", 1, models.RoleMember)
	if err != nil {
		t.Fatalf("не удалось создать запись: %v", err)
	}

	_, err = f.svc.UpdateAppointmentStatus(context.Background(), a.ID, string(models.StatusCancelled), stranger.ID, models.RoleMember)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("посторонний не может менять чужую запись, получили %v", err)
	}
}

func TestUpdateAppointmentStatus_AssignedTrainerAllowed(t *testing.T) {
	f := newScheduleFixture()

	a, err := f.svc.CreateAppointment(context.Background(), 1, 1, day(2026, 9, 5), 10, "", 1, models.RoleMember)
	if err != nil {
		t.Fatalf("не удалось создать запись: %v", err)
	}

	trainerUserID := f.trainers.trainers[1].UserID
	if _, err := f.svc.UpdateAppointmentStatus(context.Background(), a.ID, string(models.StatusConfirmed), trainerUserID, models.RoleTrainer); err != nil {
		t.Fatalf("назначенный тренер может подтвердить запись, получили %v", err)
	}
}

func TestUpdateAppointmentStatus_InvalidStatus(t *testing.T) {
	f := newScheduleFixture()

	a, err := f.svc.CreateAppointment(context.Background(), 1, 1, day(2026, 9, 5), 10, "", 1, models.RoleMember)
	if err != nil {
		t.Fatalf("не удалось создать запись: %v", err)
	}

	_, err = f.svc.UpdateAppointmentStatus(context.Background(), a.ID, "Archived", 1, models.RoleMember)
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("ожидалась ErrInvalidStatus, получили %v", err)
	}
}

func TestUpdateAppointmentStatus_NotFound(t *testing.T) {
	f := newScheduleFixture()

	_, err := f.svc.UpdateAppointmentStatus(context.Background(), 123, string(models.StatusCancelled), 1, models.RoleAdmin)
	if !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("ожидалась ErrAppointmentNotFound, получили %v", err)
	}
}

func TestListAppointmentsFor(t *testing.T) {
	f := newScheduleFixture()
	date := day(2026, 9, 5)

	if _, err := f.svc.CreateAppointment(context.Background(), 1, 1, date, 10, "", 1, models.RoleMember); err != nil {
		t.Fatalf("не удалось создать запись: %v", err)
	}

	all, err := f.svc.ListAppointmentsFor(context.Background(), 99, models.RoleAdmin)
	if err != nil || len(all) != 1 {
		t.Fatalf("админ должен видеть все записи: %v, %d", err, len(all))
	}

	own, err := f.svc.ListAppointmentsFor(context.Background(), 1, models.RoleMember)
	if err != nil || len(own) != 1 {
		t.Fatalf("клиент должен видеть свои записи: %v, %d", err, len(own))
	}

	trainerUserID := f.trainers.trainers[1].UserID
	byTrainer, err := f.svc.ListAppointmentsFor(context.Background(), trainerUserID, models.RoleTrainer)
	if err != nil || len(byTrainer) != 1 {
		t.Fatalf("тренер должен видеть записи к себе: %v, %d", err, len(byTrainer))
	}
}

func TestProvisionSlots(t *testing.T) {
	f := newScheduleFixture()

	slots, err := f.svc.ProvisionSlots(context.Background(), 1)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(slots) != 12 {
		t.Fatalf("ожидалось 12 слотов (9..20), получили %d", len(slots))
	}

	_, err = f.svc.ProvisionSlots(context.Background(), 1)
	if !errors.Is(err, ErrSlotsProvisioned) {
		t.Fatalf("повторное заведение слотов запрещено, получили %v", err)
	}
}

func TestCheckHour(t *testing.T) {
	f := newScheduleFixture()
	date := day(2026, 9, 5)

	ok, err := f.svc.CheckHour(context.Background(), 1, date, 10)
	if err != nil || !ok {
		t.Fatalf("свободный час должен быть доступен: %v", err)
	}

	if _, err := f.svc.CreateAppointment(context.Background(), 1, 1, date, 10, "", 1, models.RoleMember); err != nil {
		t.Fatalf("не удалось создать запись: %v", err)
	}

	ok, err = f.svc.CheckHour(context.Background(), 1, date, 10)
	if err != nil || ok {
		t.Fatalf("занятый час не должен быть доступен: %v", err)
	}

	if _, err := f.svc.CheckHour(context.Background(), 1, date, 22); !errors.Is(err, ErrInvalidHour) {
		t.Fatalf("час вне окна, ожидалась ErrInvalidHour, получили %v", err)
	}
}
