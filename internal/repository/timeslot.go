package repository

import (
	"context"
	"gymfit/internal/logger"
	"gymfit/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type TimeSlotRepository struct {
	db *pgxpool.Pool
}

func NewTimeSlotRepository(db *pgxpool.Pool) *TimeSlotRepository {
	return &TimeSlotRepository{db: db}
}

// BulkCreateSlots создаёт шаблонные слоты тренера на каждый час окна [from, to].
func (r *TimeSlotRepository) BulkCreateSlots(ctx context.Context, trainerID, from, to int) ([]*models.TimeSlot, error) {
	logger.Log.Info("Создание слотов тренера (repo)",
		zap.Int("trainer_id", trainerID), zap.Int("from", from), zap.Int("to", to))

	query := `
	INSERT INTO time_slots (trainer_id, hour, is_available)
	SELECT $1, h, true FROM generate_series($2, $3) AS h
	RETURNING id, trainer_id, hour, is_available, appointment_id`

	rows, err := r.db.Query(ctx, query, trainerID, from, to)
	if err != nil {
		logger.Log.Error("Ошибка создания слотов (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var slots []*models.TimeSlot
	for rows.Next() {
		var s models.TimeSlot
		if err := rows.Scan(&s.ID, &s.TrainerID, &s.Hour, &s.IsAvailable, &s.AppointmentID); err != nil {
			return nil, err
		}
		slots = append(slots, &s)
	}
	return slots, rows.Err()
}

func (r *TimeSlotRepository) HasSlots(ctx context.Context, trainerID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM time_slots WHERE trainer_id = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, trainerID).Scan(&exists)
	if err != nil {
		logger.Log.Error("Ошибка проверки слотов тренера (repo)", zap.Error(err))
	}
	return exists, err
}

func (r *TimeSlotRepository) GetSlotsByTrainer(ctx context.Context, trainerID int) ([]*models.TimeSlot, error) {
	logger.Log.Debug("Получение слотов тренера (repo)", zap.Int("trainer_id", trainerID))
	query := `SELECT id, trainer_id, hour, is_available, appointment_id
	FROM time_slots
	WHERE trainer_id = $1
	ORDER BY hour`

	rows, err := r.db.Query(ctx, query, trainerID)
	if err != nil {
		logger.Log.Error("Ошибка получения слотов (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var slots []*models.TimeSlot
	for rows.Next() {
		var s models.TimeSlot
		if err := rows.Scan(&s.ID, &s.TrainerID, &s.Hour, &s.IsAvailable, &s.AppointmentID); err != nil {
			logger.Log.Error("Ошибка сканирования слота (repo)", zap.Error(err))
			return nil, err
		}
		slots = append(slots, &s)
	}
	return slots, rows.Err()
}

// GetOrCreateSlot возвращает шаблонный слот (trainer_id, hour), создавая его при
// отсутствии — тренеры, заведённые до bulk-создания, слотов могли не иметь.
func (r *TimeSlotRepository) GetOrCreateSlot(ctx context.Context, trainerID, hour int) (*models.TimeSlot, error) {
	query := `
	INSERT INTO time_slots (trainer_id, hour, is_available)
	VALUES ($1, $2, true)
	ON CONFLICT (trainer_id, hour) DO UPDATE SET trainer_id = EXCLUDED.trainer_id
	RETURNING id, trainer_id, hour, is_available, appointment_id`

	var s models.TimeSlot
	err := r.db.QueryRow(ctx, query, trainerID, hour).Scan(
		&s.ID, &s.TrainerID, &s.Hour, &s.IsAvailable, &s.AppointmentID,
	)
	if err != nil {
		logger.Log.Error("Ошибка получения слота (repo)", zap.Error(err),
			zap.Int("trainer_id", trainerID), zap.Int("hour", hour))
		return nil, err
	}
	return &s, nil
}

// SetSlotState проставляет доступность и ссылку на запись, занимающую слот.
func (r *TimeSlotRepository) SetSlotState(ctx context.Context, slotID int, available bool, appointmentID *int) error {
	logger.Log.Debug("Обновление состояния слота (repo)",
		zap.Int("slot_id", slotID), zap.Bool("available", available))
	query := `UPDATE time_slots SET is_available = $2, appointment_id = $3 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, slotID, available, appointmentID)
	if err != nil {
		logger.Log.Error("Ошибка обновления слота (repo)", zap.Error(err))
	}
	return err
}
