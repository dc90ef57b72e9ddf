package services

import (
	"context"

	"gymfit/internal/logger"
	"gymfit/internal/models"

	"go.uber.org/zap"
)

type PlanRepo interface {
	CreatePlan(ctx context.Context, p *models.SubscriptionPlan) error
	IsNameTaken(ctx context.Context, name string) (bool, error)
	GetPlanByID(ctx context.Context, id int) (*models.SubscriptionPlan, error)
	GetAllPlans(ctx context.Context) ([]*models.SubscriptionPlan, error)
	UpdatePlanFields(ctx context.Context, id int, input *models.UpdatePlanRequest) error
	DeletePlan(ctx context.Context, id int) error
}

type PlanService struct {
	repo PlanRepo
}

func NewPlanService(repo PlanRepo) *PlanService {
	return &PlanService{repo: repo}
}

func (s *PlanService) CreatePlan(ctx context.Context, input *models.CreatePlanRequest) (*models.SubscriptionPlan, error) {
	logger.Log.Info("Создание тарифного плана (service)", zap.String("name", input.Name))

	if exists, err := s.repo.IsNameTaken(ctx, input.Name); exists || err != nil {
		if err != nil {
			logger.Log.Error("Ошибка проверки имени плана (service)", zap.Error(err))
			return nil, err
		}
		return nil, ErrDuplicatePlan
	}

	if input.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	if input.DurationInDays <= 0 {
		return nil, &RejectError{Code: "invalid_range", Message: "Длительность должна быть больше нуля"}
	}

	t, ok := models.ParseSubscriptionType(input.Type)
	if !ok {
		return nil, ErrInvalidType
	}

	plan := &models.SubscriptionPlan{
		Name:           input.Name,
		Description:    input.Description,
		Price:          input.Price,
		DurationInDays: input.DurationInDays,
		Type:           t,
	}

	if err := s.repo.CreatePlan(ctx, plan); err != nil {
		logger.Log.Error("Ошибка создания плана (service)", zap.Error(err))
		return nil, err
	}

	logger.Log.Info("Тарифный план создан (service)", zap.Int("plan_id", plan.ID))
	return plan, nil
}

func (s *PlanService) GetAllPlans(ctx context.Context) ([]*models.SubscriptionPlan, error) {
	return s.repo.GetAllPlans(ctx)
}

func (s *PlanService) GetPlanByID(ctx context.Context, id int) (*models.SubscriptionPlan, error) {
	plan, err := s.repo.GetPlanByID(ctx, id)
	if err != nil {
		logger.Log.Warn("Тарифный план не найден (service)", zap.Int("plan_id", id), zap.Error(err))
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

func (s *PlanService) UpdatePlan(ctx context.Context, id int, input *models.UpdatePlanRequest) error {
	logger.Log.Info("Обновление тарифного плана (service)", zap.Int("plan_id", id))

	if _, err := s.repo.GetPlanByID(ctx, id); err != nil {
		return ErrPlanNotFound
	}
	if input.Price != nil && *input.Price <= 0 {
		return ErrInvalidPrice
	}
	if input.Type != nil {
		if _, ok := models.ParseSubscriptionType(*input.Type); !ok {
			return ErrInvalidType
		}
	}

	return s.repo.UpdatePlanFields(ctx, id, input)
}

func (s *PlanService) DeletePlan(ctx context.Context, id int) error {
	logger.Log.Info("Удаление тарифного плана (service)", zap.Int("plan_id", id))
	if _, err := s.repo.GetPlanByID(ctx, id); err != nil {
		return ErrPlanNotFound
	}
	return s.repo.DeletePlan(ctx, id)
}
