package services

import (
	"context"

	"gymfit/internal/config"
	"gymfit/internal/logger"
	"gymfit/internal/models"

	"go.uber.org/zap"
)

type TrainerRepo interface {
	CreateTrainer(ctx context.Context, trainer *models.Trainer) error
	TrainerExists(ctx context.Context, id int) (bool, error)
	HasProfile(ctx context.Context, userID int) (bool, error)
	GetTrainerByID(ctx context.Context, id int) (*models.Trainer, error)
	GetTrainerByUserID(ctx context.Context, userID int) (*models.Trainer, error)
	GetAllTrainers(ctx context.Context) ([]*models.Trainer, error)
}

type TrainerService struct {
	repo  TrainerRepo
	users UserReader
	slots SlotRepo

	openHour  int
	closeHour int
}

func NewTrainerService(repo TrainerRepo, users UserReader, slots SlotRepo, cfg *config.Config) *TrainerService {
	return &TrainerService{
		repo:      repo,
		users:     users,
		slots:     slots,
		openHour:  cfg.BookingOpenHour,
		closeHour: cfg.BookingCloseHour,
	}
}

// CreateTrainer заводит профиль тренера для существующего пользователя
// с ролью trainer и сразу создаёт полный набор шаблонных слотов.
func (s *TrainerService) CreateTrainer(ctx context.Context, input *models.CreateTrainerRequest) (*models.Trainer, error) {
	logger.Log.Info("Создание профиля тренера (service)", zap.Int("user_id", input.UserID))

	user, err := s.users.GetUserByID(ctx, input.UserID)
	if err != nil {
		logger.Log.Warn("Пользователь для профиля тренера не найден (service)",
			zap.Int("user_id", input.UserID), zap.Error(err))
		return nil, ErrUserNotFound
	}

	if user.Role != models.RoleTrainer {
		logger.Log.Warn("Пользователь не является тренером (service)",
			zap.Int("user_id", input.UserID), zap.String("role", string(user.Role)))
		return nil, ErrInvalidRole
	}

	// Специализация должна совпадать с одним из направлений каталога.
	spec, ok := models.ParseSubscriptionType(input.Specialization)
	if !ok {
		logger.Log.Warn("Недопустимая специализация (service)", zap.String("specialization", input.Specialization))
		return nil, ErrInvalidType
	}

	if exists, err := s.repo.HasProfile(ctx, input.UserID); exists || err != nil {
		if err != nil {
			logger.Log.Error("Ошибка проверки профиля тренера (service)", zap.Error(err))
			return nil, err
		}
		return nil, ErrDuplicateTrainer
	}

	trainer := &models.Trainer{
		UserID:         input.UserID,
		Specialization: string(spec),
		Experience:     input.Experience,
		Introduction:   input.Introduction,
		Availability:   input.Availability,
		Location:       input.Location,
	}

	if err := s.repo.CreateTrainer(ctx, trainer); err != nil {
		logger.Log.Error("Ошибка создания тренера (service)", zap.Error(err))
		return nil, err
	}

	if _, err := s.slots.BulkCreateSlots(ctx, trainer.ID, s.openHour, s.closeHour); err != nil {
		// Профиль создан; слоты можно дозавести через ProvisionSlots.
		logger.Log.Error("Не удалось создать слоты для нового тренера (service)",
			zap.Int("trainer_id", trainer.ID), zap.Error(err))
	}

	logger.Log.Info("Профиль тренера создан (service)", zap.Int("trainer_id", trainer.ID))
	return trainer, nil
}

func (s *TrainerService) GetAllTrainers(ctx context.Context) ([]*models.Trainer, error) {
	logger.Log.Debug("Получение всех тренеров (service)")
	return s.repo.GetAllTrainers(ctx)
}

func (s *TrainerService) GetTrainerByID(ctx context.Context, id int) (*models.Trainer, error) {
	trainer, err := s.repo.GetTrainerByID(ctx, id)
	if err != nil {
		logger.Log.Warn("Тренер не найден (service)", zap.Int("trainer_id", id), zap.Error(err))
		return nil, ErrTrainerNotFound
	}
	return trainer, nil
}
