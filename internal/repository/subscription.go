package repository

import (
	"context"

	"gymfit/internal/logger"
	"gymfit/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type SubscriptionRepository struct {
	db *pgxpool.Pool
}

func NewSubscriptionRepository(db *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) CreateSubscription(ctx context.Context, s *models.Subscription) error {
	logger.Log.Info("Создание абонемента (repo)",
		zap.Int("user_id", s.UserID), zap.String("type", string(s.Type)))
	query := `
	INSERT INTO subscriptions (user_id, type, price, start_date, end_date, is_active)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		s.UserID, string(s.Type), s.Price, s.StartDate, s.EndDate, s.IsActive,
	).Scan(&s.ID, &s.CreatedAt)
}

// HasActiveOfType — есть ли у пользователя активный абонемент этого типа.
func (r *SubscriptionRepository) HasActiveOfType(ctx context.Context, userID int, t models.SubscriptionType) (bool, error) {
	query := `SELECT EXISTS(
		SELECT 1 FROM subscriptions
		WHERE user_id = $1 AND type = $2 AND is_active = true
	)`
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, string(t)).Scan(&exists)
	if err != nil {
		logger.Log.Error("Ошибка проверки активного абонемента (repo)", zap.Error(err))
	}
	return exists, err
}

const subscriptionColumns = `id, user_id, type, price, start_date, end_date, is_active, created_at`

func scanSubscription(row pgx.Row) (*models.Subscription, error) {
	var s models.Subscription
	var t string
	err := row.Scan(&s.ID, &s.UserID, &t, &s.Price, &s.StartDate, &s.EndDate, &s.IsActive, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	s.Type, _ = models.ParseSubscriptionType(t)
	return &s, nil
}

func (r *SubscriptionRepository) GetSubscriptionByID(ctx context.Context, id int) (*models.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE id = $1`
	return scanSubscription(r.db.QueryRow(ctx, query, id))
}

func (r *SubscriptionRepository) listSubscriptions(ctx context.Context, query string, args ...interface{}) ([]*models.Subscription, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Log.Error("Ошибка получения абонементов (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var subs []*models.Subscription
	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			logger.Log.Error("Ошибка сканирования абонемента (repo)", zap.Error(err))
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

func (r *SubscriptionRepository) GetAllSubscriptions(ctx context.Context) ([]*models.Subscription, error) {
	logger.Log.Debug("Получение всех абонементов (repo)")
	return r.listSubscriptions(ctx,
		`SELECT `+subscriptionColumns+` FROM subscriptions ORDER BY id`)
}

func (r *SubscriptionRepository) GetSubscriptionsByUser(ctx context.Context, userID int) ([]*models.Subscription, error) {
	logger.Log.Debug("Получение абонементов пользователя (repo)", zap.Int("user_id", userID))
	return r.listSubscriptions(ctx,
		`SELECT `+subscriptionColumns+` FROM subscriptions WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *SubscriptionRepository) DeleteSubscription(ctx context.Context, id int) error {
	logger.Log.Info("Удаление абонемента (repo)", zap.Int("subscription_id", id))
	_, err := r.db.Exec(ctx, `DELETE FROM subscriptions WHERE id = $1`, id)
	if err != nil {
		logger.Log.Error("Ошибка удаления абонемента (repo)", zap.Error(err))
	}
	return err
}

// RefreshActiveFlags приводит is_active в соответствие текущему моменту:
// выключает истёкшие и включает наступившие.
func (r *SubscriptionRepository) RefreshActiveFlags(ctx context.Context) error {
	query := `
	UPDATE subscriptions
	SET is_active = (now() >= start_date AND now() <= end_date)
	WHERE is_active <> (now() >= start_date AND now() <= end_date)`
	_, err := r.db.Exec(ctx, query)
	if err != nil {
		logger.Log.Error("Ошибка актуализации абонементов (repo)", zap.Error(err))
	}
	return err
}
