package repository

import (
	"context"
	"fmt"
	"strings"

	"gymfit/internal/logger"
	"gymfit/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type PlanRepository struct {
	db *pgxpool.Pool
}

func NewPlanRepository(db *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) CreatePlan(ctx context.Context, p *models.SubscriptionPlan) error {
	logger.Log.Info("Создание тарифного плана (repo)", zap.String("name", p.Name))
	query := `
	INSERT INTO subscription_plans (name, description, price, duration_in_days, type)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		p.Name, p.Description, p.Price, p.DurationInDays, string(p.Type),
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *PlanRepository) IsNameTaken(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM subscription_plans WHERE name = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, name).Scan(&exists)
	if err != nil {
		logger.Log.Error("Ошибка проверки имени плана (repo)", zap.Error(err))
	}
	return exists, err
}

const planColumns = `id, name, description, price, duration_in_days, type, created_at`

func scanPlan(row pgx.Row) (*models.SubscriptionPlan, error) {
	var p models.SubscriptionPlan
	var t string
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.DurationInDays, &t, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.Type, _ = models.ParseSubscriptionType(t)
	return &p, nil
}

func (r *PlanRepository) GetPlanByID(ctx context.Context, id int) (*models.SubscriptionPlan, error) {
	logger.Log.Debug("Получение плана по ID (repo)", zap.Int("plan_id", id))
	query := `SELECT ` + planColumns + ` FROM subscription_plans WHERE id = $1`
	return scanPlan(r.db.QueryRow(ctx, query, id))
}

func (r *PlanRepository) GetAllPlans(ctx context.Context) ([]*models.SubscriptionPlan, error) {
	logger.Log.Debug("Получение каталога планов (repo)")
	rows, err := r.db.Query(ctx, `SELECT `+planColumns+` FROM subscription_plans ORDER BY id`)
	if err != nil {
		logger.Log.Error("Ошибка получения планов (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var plans []*models.SubscriptionPlan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			logger.Log.Error("Ошибка сканирования плана (repo)", zap.Error(err))
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (r *PlanRepository) UpdatePlanFields(ctx context.Context, id int, input *models.UpdatePlanRequest) error {
	logger.Log.Debug("Обновление тарифного плана (repo)", zap.Int("plan_id", id))

	set := []string{}
	args := []interface{}{}
	i := 1

	if input.Name != nil {
		set = append(set, fmt.Sprintf("name = $%d", i))
		args = append(args, *input.Name)
		i++
	}
	if input.Description != nil {
		set = append(set, fmt.Sprintf("description = $%d", i))
		args = append(args, *input.Description)
		i++
	}
	if input.Price != nil {
		set = append(set, fmt.Sprintf("price = $%d", i))
		args = append(args, *input.Price)
		i++
	}
	if input.DurationInDays != nil {
		set = append(set, fmt.Sprintf("duration_in_days = $%d", i))
		args = append(args, *input.DurationInDays)
		i++
	}
	if input.Type != nil {
		set = append(set, fmt.Sprintf("type = $%d", i))
		args = append(args, *input.Type)
		i++
	}

	if len(set) == 0 {
		return nil
	}

	query := fmt.Sprintf(`UPDATE subscription_plans SET %s WHERE id = $%d`, strings.Join(set, ", "), i)
	args = append(args, id)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		logger.Log.Error("Ошибка обновления плана (repo)", zap.Error(err))
	}
	return err
}

func (r *PlanRepository) DeletePlan(ctx context.Context, id int) error {
	logger.Log.Info("Удаление тарифного плана (repo)", zap.Int("plan_id", id))
	_, err := r.db.Exec(ctx, `DELETE FROM subscription_plans WHERE id = $1`, id)
	if err != nil {
		logger.Log.Error("Ошибка удаления плана (repo)", zap.Error(err))
	}
	return err
}
