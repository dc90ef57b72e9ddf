package services

import (
	"context"
	"time"

	"gymfit/internal/logger"
	"gymfit/internal/models"

	"go.uber.org/zap"
)

type SubscriptionRepo interface {
	CreateSubscription(ctx context.Context, s *models.Subscription) error
	HasActiveOfType(ctx context.Context, userID int, t models.SubscriptionType) (bool, error)
	GetSubscriptionByID(ctx context.Context, id int) (*models.Subscription, error)
	GetAllSubscriptions(ctx context.Context) ([]*models.Subscription, error)
	GetSubscriptionsByUser(ctx context.Context, userID int) ([]*models.Subscription, error)
	DeleteSubscription(ctx context.Context, id int) error
	RefreshActiveFlags(ctx context.Context) error
}

type PlanReader interface {
	GetPlanByID(ctx context.Context, id int) (*models.SubscriptionPlan, error)
}

// Абонемент не может длиться больше года.
const maxSubscriptionDays = 365

type SubscriptionService struct {
	repo  SubscriptionRepo
	users UserReader
	plans PlanReader

	now func() time.Time
}

func NewSubscriptionService(repo SubscriptionRepo, users UserReader, plans PlanReader) *SubscriptionService {
	return &SubscriptionService{
		repo:  repo,
		users: users,
		plans: plans,
		now:   time.Now,
	}
}

// CreateSubscription оформляет абонемент с проверками: владелец или админ,
// пользователь с ролью member, без дубликата активного абонемента того же
// типа, корректное окно дат, срок не больше года.
func (s *SubscriptionService) CreateSubscription(
	ctx context.Context,
	input *models.Subscription,
	requesterID int,
	requesterRole models.Role,
) (*models.Subscription, error) {
	logger.Log.Info("Оформление абонемента (service)",
		zap.Int("user_id", input.UserID), zap.String("type", string(input.Type)))

	if input.UserID != requesterID && requesterRole != models.RoleAdmin {
		logger.Log.Warn("Попытка оформить абонемент другому пользователю (service)",
			zap.Int("requester_id", requesterID), zap.Int("user_id", input.UserID))
		return nil, ErrForbidden
	}

	user, err := s.users.GetUserByID(ctx, input.UserID)
	if err != nil {
		logger.Log.Warn("Пользователь не найден при оформлении абонемента (service)",
			zap.Int("user_id", input.UserID), zap.Error(err))
		return nil, ErrUserNotFound
	}

	if user.Role != models.RoleMember {
		logger.Log.Warn("Абонемент может быть только у клиента (service)",
			zap.Int("user_id", input.UserID), zap.String("role", string(user.Role)))
		return nil, ErrInvalidRole
	}

	if _, ok := models.ParseSubscriptionType(string(input.Type)); !ok {
		return nil, ErrInvalidType
	}

	exists, err := s.repo.HasActiveOfType(ctx, input.UserID, input.Type)
	if err != nil {
		logger.Log.Error("Ошибка проверки активного абонемента (service)", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateSubscription
	}

	now := s.now().UTC()
	start := input.StartDate.UTC()
	end := input.EndDate.UTC()

	if start.Before(truncateToDay(now)) {
		logger.Log.Warn("Дата начала абонемента в прошлом (service)", zap.Time("start", start))
		return nil, ErrPastDate
	}
	if !end.After(start) {
		return nil, ErrInvalidRange
	}
	if end.Sub(start) > maxSubscriptionDays*24*time.Hour {
		return nil, ErrTooLong
	}

	input.StartDate = start
	input.EndDate = end
	input.IsActive = !now.Before(start) && !now.After(end)

	if err := s.repo.CreateSubscription(ctx, input); err != nil {
		logger.Log.Error("Ошибка сохранения абонемента (service)", zap.Error(err))
		return nil, err
	}

	logger.Log.Info("Абонемент оформлен (service)", zap.Int("subscription_id", input.ID))
	return input, nil
}

// PurchaseFromPlan оформляет абонемент по позиции каталога: начало сегодня,
// окончание через duration_in_days, цена и тип из плана.
func (s *SubscriptionService) PurchaseFromPlan(
	ctx context.Context,
	planID, userID int,
	requesterID int,
	requesterRole models.Role,
) (*models.Subscription, error) {
	logger.Log.Info("Покупка абонемента по плану (service)",
		zap.Int("plan_id", planID), zap.Int("user_id", userID))

	plan, err := s.plans.GetPlanByID(ctx, planID)
	if err != nil {
		logger.Log.Warn("Тарифный план не найден (service)", zap.Int("plan_id", planID), zap.Error(err))
		return nil, ErrPlanNotFound
	}

	start := truncateToDay(s.now().UTC())
	sub := &models.Subscription{
		UserID:    userID,
		Type:      plan.Type,
		Price:     plan.Price,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, plan.DurationInDays),
	}

	return s.CreateSubscription(ctx, sub, requesterID, requesterRole)
}

// ListSubscriptionsFor — админ видит все абонементы, клиент свои.
func (s *SubscriptionService) ListSubscriptionsFor(ctx context.Context, requesterID int, role models.Role) ([]*models.Subscription, error) {
	if role == models.RoleAdmin {
		return s.repo.GetAllSubscriptions(ctx)
	}
	return s.repo.GetSubscriptionsByUser(ctx, requesterID)
}

// DeleteSubscription — жёсткое удаление, только для админа (роль проверяет маршрут).
func (s *SubscriptionService) DeleteSubscription(ctx context.Context, id int) error {
	logger.Log.Info("Удаление абонемента (service)", zap.Int("subscription_id", id))
	if _, err := s.repo.GetSubscriptionByID(ctx, id); err != nil {
		logger.Log.Warn("Абонемент не найден (service)", zap.Int("subscription_id", id), zap.Error(err))
		return ErrSubscriptionNotFound
	}
	return s.repo.DeleteSubscription(ctx, id)
}

// RefreshActiveFlags актуализирует флаги активности (вызывается тикером).
func (s *SubscriptionService) RefreshActiveFlags(ctx context.Context) error {
	return s.repo.RefreshActiveFlags(ctx)
}
