package repository

import (
	"context"
	"errors"
	"time"

	"gymfit/internal/logger"
	"gymfit/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ErrBookingConflict — нарушение частичного уникального индекса
// (trainer_id, date, hour) по неотменённым записям. Именно индекс, а не
// предварительная проверка, закрывает гонку двух одновременных бронирований.
var ErrBookingConflict = errors.New("booking conflict")

type AppointmentRepository struct {
	db *pgxpool.Pool
}

func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) CreateAppointment(ctx context.Context, a *models.Appointment) error {
	logger.Log.Info("Создание записи (repo)",
		zap.Int("user_id", a.UserID), zap.Int("trainer_id", a.TrainerID),
		zap.Time("date", a.Date), zap.Int("hour", a.Hour))

	query := `
	INSERT INTO appointments (user_id, trainer_id, date, hour, time_slot_id, status)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		a.UserID, a.TrainerID, a.Date, a.Hour, a.TimeSlotID, string(a.Status),
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		logger.Log.Warn("Конфликт бронирования (repo)",
			zap.Int("trainer_id", a.TrainerID), zap.Time("date", a.Date), zap.Int("hour", a.Hour))
		return ErrBookingConflict
	}
	if err != nil {
		logger.Log.Error("Ошибка создания записи (repo)", zap.Error(err))
	}
	return err
}

const appointmentColumns = `id, user_id, trainer_id, date, hour, time_slot_id, status, created_at, updated_at`

func scanAppointment(row pgx.Row) (*models.Appointment, error) {
	var a models.Appointment
	var status string
	err := row.Scan(
		&a.ID, &a.UserID, &a.TrainerID, &a.Date, &a.Hour,
		&a.TimeSlotID, &status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Status, _ = models.ParseAppointmentStatus(status)
	return &a, nil
}

func (r *AppointmentRepository) GetAppointmentByID(ctx context.Context, id int) (*models.Appointment, error) {
	logger.Log.Debug("Получение записи по ID (repo)", zap.Int("appointment_id", id))
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`
	return scanAppointment(r.db.QueryRow(ctx, query, id))
}

func (r *AppointmentRepository) listAppointments(ctx context.Context, query string, args ...interface{}) ([]*models.Appointment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Log.Error("Ошибка получения записей (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var appointments []*models.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			logger.Log.Error("Ошибка сканирования записи (repo)", zap.Error(err))
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}

func (r *AppointmentRepository) GetAllAppointments(ctx context.Context) ([]*models.Appointment, error) {
	logger.Log.Debug("Получение всех записей (repo)")
	return r.listAppointments(ctx,
		`SELECT `+appointmentColumns+` FROM appointments ORDER BY date, hour`)
}

func (r *AppointmentRepository) GetAppointmentsByUser(ctx context.Context, userID int) ([]*models.Appointment, error) {
	logger.Log.Debug("Получение записей пользователя (repo)", zap.Int("user_id", userID))
	return r.listAppointments(ctx,
		`SELECT `+appointmentColumns+` FROM appointments WHERE user_id = $1 ORDER BY date, hour`, userID)
}

func (r *AppointmentRepository) GetAppointmentsByTrainer(ctx context.Context, trainerID int) ([]*models.Appointment, error) {
	logger.Log.Debug("Получение записей тренера (repo)", zap.Int("trainer_id", trainerID))
	return r.listAppointments(ctx,
		`SELECT `+appointmentColumns+` FROM appointments WHERE trainer_id = $1 ORDER BY date, hour`, trainerID)
}

// GetBookedHours возвращает часы неотменённых записей тренера на дату.
func (r *AppointmentRepository) GetBookedHours(ctx context.Context, trainerID int, date time.Time) ([]int, error) {
	logger.Log.Debug("Получение занятых часов (repo)",
		zap.Int("trainer_id", trainerID), zap.Time("date", date))

	query := `SELECT hour FROM appointments
	WHERE trainer_id = $1 AND date = $2 AND status <> 'Cancelled'
	ORDER BY hour`

	rows, err := r.db.Query(ctx, query, trainerID, date)
	if err != nil {
		logger.Log.Error("Ошибка получения занятых часов (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var hours []int
	for rows.Next() {
		var h int
		if err := rows.Scan(&h); err != nil {
			return nil, err
		}
		hours = append(hours, h)
	}
	return hours, rows.Err()
}

func (r *AppointmentRepository) UpdateAppointmentStatus(ctx context.Context, id int, status models.AppointmentStatus) error {
	logger.Log.Info("Обновление статуса записи (repo)",
		zap.Int("appointment_id", id), zap.String("status", string(status)))
	query := `UPDATE appointments SET status = $2, updated_at = now() WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id, string(status))
	if err != nil {
		logger.Log.Error("Ошибка обновления статуса (repo)", zap.Error(err))
	}
	return err
}
