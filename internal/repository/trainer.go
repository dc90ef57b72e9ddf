package repository

import (
	"context"
	"gymfit/internal/logger"
	"gymfit/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type TrainerRepository struct {
	db *pgxpool.Pool
}

func NewTrainerRepository(db *pgxpool.Pool) *TrainerRepository {
	return &TrainerRepository{db: db}
}

func (r *TrainerRepository) CreateTrainer(ctx context.Context, trainer *models.Trainer) error {
	logger.Log.Info("Создание профиля тренера (repo)", zap.Int("user_id", trainer.UserID))
	query := `
	INSERT INTO trainers (user_id, specialization, experience, introduction, availability, location)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		trainer.UserID,
		trainer.Specialization,
		trainer.Experience,
		trainer.Introduction,
		trainer.Availability,
		trainer.Location,
	).Scan(&trainer.ID, &trainer.CreatedAt)
}

func (r *TrainerRepository) TrainerExists(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM trainers WHERE id = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		logger.Log.Error("Ошибка проверки тренера (repo)", zap.Error(err))
	}
	return exists, err
}

func (r *TrainerRepository) HasProfile(ctx context.Context, userID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM trainers WHERE user_id = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, userID).Scan(&exists)
	if err != nil {
		logger.Log.Error("Ошибка проверки профиля тренера (repo)", zap.Error(err))
	}
	return exists, err
}

const trainerColumns = `t.id, t.user_id, t.specialization, t.experience, t.introduction, t.availability, t.location, t.created_at,
	u.id, u.name, u.email, u.phone, u.role`

func (r *TrainerRepository) scanTrainer(row pgx.Row) (*models.Trainer, error) {
	var t models.Trainer
	var u models.User
	var role string
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Specialization,
		&t.Experience,
		&t.Introduction,
		&t.Availability,
		&t.Location,
		&t.CreatedAt,
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Phone,
		&role,
	)
	if err != nil {
		return nil, err
	}
	u.Role, _ = models.ParseRole(role)
	t.User = &u
	return &t, nil
}

func (r *TrainerRepository) GetTrainerByID(ctx context.Context, id int) (*models.Trainer, error) {
	logger.Log.Debug("Получение тренера по ID (repo)", zap.Int("trainer_id", id))
	query := `SELECT ` + trainerColumns + `
	FROM trainers t
	JOIN users u ON u.id = t.user_id
	WHERE t.id = $1`
	return r.scanTrainer(r.db.QueryRow(ctx, query, id))
}

func (r *TrainerRepository) GetTrainerByUserID(ctx context.Context, userID int) (*models.Trainer, error) {
	logger.Log.Debug("Получение тренера по user_id (repo)", zap.Int("user_id", userID))
	query := `SELECT ` + trainerColumns + `
	FROM trainers t
	JOIN users u ON u.id = t.user_id
	WHERE t.user_id = $1`
	return r.scanTrainer(r.db.QueryRow(ctx, query, userID))
}

func (r *TrainerRepository) GetAllTrainers(ctx context.Context) ([]*models.Trainer, error) {
	logger.Log.Debug("Получение всех тренеров (repo)")
	query := `SELECT ` + trainerColumns + `
	FROM trainers t
	JOIN users u ON u.id = t.user_id
	ORDER BY t.id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Log.Error("Ошибка получения тренеров (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var trainers []*models.Trainer
	for rows.Next() {
		t, err := r.scanTrainer(rows)
		if err != nil {
			logger.Log.Error("Ошибка сканирования тренера (repo)", zap.Error(err))
			return nil, err
		}
		trainers = append(trainers, t)
	}
	return trainers, rows.Err()
}
