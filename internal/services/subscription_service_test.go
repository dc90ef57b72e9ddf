package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gymfit/internal/models"
)

type mockSubscriptionRepo struct {
	subs   []*models.Subscription
	nextID int
}

func (m *mockSubscriptionRepo) CreateSubscription(_ context.Context, s *models.Subscription) error {
	m.nextID++
	s.ID = m.nextID
	m.subs = append(m.subs, s)
	return nil
}

func (m *mockSubscriptionRepo) HasActiveOfType(_ context.Context, userID int, t models.SubscriptionType) (bool, error) {
	for _, s := range m.subs {
		if s.UserID == userID && s.Type == t && s.IsActive {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockSubscriptionRepo) GetSubscriptionByID(_ context.Context, id int) (*models.Subscription, error) {
	for _, s := range m.subs {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *mockSubscriptionRepo) GetAllSubscriptions(_ context.Context) ([]*models.Subscription, error) {
	return m.subs, nil
}

func (m *mockSubscriptionRepo) GetSubscriptionsByUser(_ context.Context, userID int) ([]*models.Subscription, error) {
	var out []*models.Subscription
	for _, s := range m.subs {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSubscriptionRepo) DeleteSubscription(_ context.Context, id int) error {
	for i, s := range m.subs {
		if s.ID == id {
			m.subs = append(m.subs[:i], m.subs[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (m *mockSubscriptionRepo) RefreshActiveFlags(_ context.Context) error {
	return nil
}

type mockPlanReader struct {
	plans map[int]*models.SubscriptionPlan
}

func (m *mockPlanReader) GetPlanByID(_ context.Context, id int) (*models.SubscriptionPlan, error) {
	p, ok := m.plans[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func newSubscriptionFixture() (*SubscriptionService, *mockSubscriptionRepo, *mockUserRepo) {
	users := newMockUserRepo()
	users.addUser(&models.User{Name: "Клиент", Email: "member@example.com", Role: models.RoleMember})
	users.addUser(&models.User{Name: "Тренер", Email: "trainer@example.com", Role: models.RoleTrainer})

	repo := &mockSubscriptionRepo{}
	plans := &mockPlanReader{plans: map[int]*models.SubscriptionPlan{
		1: {ID: 1, Name: "Йога на месяц", Price: 3000, DurationInDays: 30, Type: models.TypeYoga},
	}}

	svc := NewSubscriptionService(repo, users, plans)
	svc.now = func() time.Time { return testNow }
	return svc, repo, users
}

func TestCreateSubscription_Success(t *testing.T) {
	svc, _, _ := newSubscriptionFixture()

	sub, err := svc.CreateSubscription(context.Background(), &models.Subscription{
		UserID:    1,
		Type:      models.TypeFitness,
		Price:     2500,
		StartDate: day(2026, 9, 1),
		EndDate:   day(2026, 10, 1),
	}, 1, models.RoleMember)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if !sub.IsActive {
		t.Fatal("абонемент с текущей датой внутри окна должен быть активным")
	}
}

func TestCreateSubscription_FutureStartInactive(t *testing.T) {
	svc, _, _ := newSubscriptionFixture()

	sub, err := svc.CreateSubscription(context.Background(), &models.Subscription{
		UserID:    1,
		Type:      models.TypeFitness,
		StartDate: day(2026, 10, 1),
		EndDate:   day(2026, 11, 1),
	}, 1, models.RoleMember)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if sub.IsActive {
		t.Fatal("абонемент с началом в будущем не должен быть активным")
	}
}

func TestCreateSubscription_Forbidden(t *testing.T) {
	svc, _, _ := newSubscriptionFixture()

	_, err := svc.CreateSubscription(context.Background(), &models.Subscription{
		UserID:    1,
		Type:      models.TypeFitness,
		StartDate: day(2026, 9, 1),
		EndDate:   day(2026, 10, 1),
	}, 2, models.RoleMember)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("ожидалась ErrForbidden, получили %v", err)
	}
}

func TestCreateSubscription_OnlyMember(t *testing.T) {
	svc, _, _ := newSubscriptionFixture()

	// Пользователь 2 — тренер.
	_, err := svc.CreateSubscription(context.Background(), &models.Subscription{
		UserID:    2,
		Type:      models.TypeFitness,
		StartDate: day(2026, 9, 1),
		EndDate:   day(2026, 10, 1),
	}, 2, models.RoleTrainer)
	if !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("ожидалась ErrInvalidRole, получили %v", err)
	}
}

func TestCreateSubscription_DuplicateActive(t *testing.T) {
	svc, _, _ := newSubscriptionFixture()

	first := &models.Subscription{
		UserID:    1,
		Type:      models.TypeFitness,
		StartDate: day(2026, 9, 1),
		EndDate:   day(2026, 10, 1),
	}
	if _, err := svc.CreateSubscription(context.Background(), first, 1, models.RoleMember); err != nil {
		t.Fatalf("не удалось оформить первый абонемент: %v", err)
	}

	_, err := svc.CreateSubscription(context.Background(), &models.Subscription{
		UserID:    1,
		Type:      models.TypeFitness,
		StartDate: day(2026, 9, 10),
		EndDate:   day(2026, 10, 10),
	}, 1, models.RoleMember)
	if !errors.Is(err, ErrDuplicateSubscription) {
		t.Fatalf("ожидалась ErrDuplicateSubscription, получили %v", err)
	}

	// Другой тип — можно.
	if _, err := svc.CreateSubscription(context.Background(), &models.Subscription{
		UserID:    1,
		Type:      models.TypeYoga,
		StartDate: day(2026, 9, 10),
		EndDate:   day(2026, 10, 10),
	}, 1, models.RoleMember); err != nil {
		t.Fatalf("абонемент другого типа должен оформляться: %v", err)
	}
}

func TestCreateSubscription_PastStart(t *testing.T) {
	svc, _, _ := newSubscriptionFixture()

	_, err := svc.CreateSubscription(context.Background(), &models.Subscription{
		UserID:    1,
		Type:      models.TypeFitness,
		StartDate: day(2026, 8, 20),
		EndDate:   day(2026, 9, 20),
	}, 1, models.RoleMember)
	if !errors.Is(err, ErrPastDate) {
		t.Fatalf("ожидалась ErrPastDate, получили %v", err)
	}
}

func TestCreateSubscription_EndBeforeStart(t *testing.T) {
	svc, _, _ := newSubscriptionFixture()

	_, err := svc.CreateSubscription(context.Background(), &models.Subscription{
		UserID:    1,
		Type:      models.TypeFitness,
		StartDate: day(2026, 9, 10),
		EndDate:   day(2026, 9, 10),
	}, 1, models.RoleMember)
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("ожидалась ErrInvalidRange, получили %v", err)
	}
}

func TestCreateSubscription_TooLong(t *testing.T) {
	svc, _, _ := newSubscriptionFixture()

	_, err := svc.CreateSubscription(context.Background(), &models.Subscription{
		UserID:    1,
		Type:      models.TypeFitness,
		StartDate: day(2026, 9, 1),
		EndDate:   day(2027, 9, 10),
	}, 1, models.RoleMember)
	if !errors.Is(err, ErrTooLong) {
		t.Fatalf("ожидалась ErrTooLong, получили %v", err)
	}
}

func TestCreateSubscription_InvalidType(t *testing.T) {
	svc, _, _ := newSubscriptionFixture()

	_, err := svc.CreateSubscription(context.Background(), &models.Subscription{
		UserID:    1,
		Type:      "Bodybuilding",
		StartDate: day(2026, 9, 1),
		EndDate:   day(2026, 10, 1),
	}, 1, models.RoleMember)
	if !errors.Is(err, ErrInvalidType) {
		t.Fatalf("ожидалась ErrInvalidType, получили %v", err)
	}
}

func TestPurchaseFromPlan(t *testing.T) {
	svc, _, _ := newSubscriptionFixture()

	sub, err := svc.PurchaseFromPlan(context.Background(), 1, 1, 1, models.RoleMember)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if sub.Type != models.TypeYoga || sub.Price != 3000 {
		t.Fatalf("тип и цена должны браться из плана, получили %q / %d", sub.Type, sub.Price)
	}
	if !sub.EndDate.Equal(sub.StartDate.AddDate(0, 0, 30)) {
		t.Fatalf("окончание должно быть через 30 дней, получили %v", sub.EndDate)
	}
	if !sub.IsActive {
		t.Fatal("купленный сегодня абонемент должен быть активным")
	}
}

func TestPurchaseFromPlan_NotFound(t *testing.T) {
	svc, _, _ := newSubscriptionFixture()

	_, err := svc.PurchaseFromPlan(context.Background(), 42, 1, 1, models.RoleMember)
	if !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("ожидалась ErrPlanNotFound, получили %v", err)
	}
}

func TestDeleteSubscription_NotFound(t *testing.T) {
	svc, _, _ := newSubscriptionFixture()

	err := svc.DeleteSubscription(context.Background(), 5)
	if !errors.Is(err, ErrSubscriptionNotFound) {
		t.Fatalf("ожидалась ErrSubscriptionNotFound, получили %v", err)
	}
}

func TestListSubscriptionsFor(t *testing.T) {
	svc, repo, _ := newSubscriptionFixture()

	repo.subs = append(repo.subs,
		&models.Subscription{ID: 1, UserID: 1, Type: models.TypeFitness},
		&models.Subscription{ID: 2, UserID: 7, Type: models.TypeYoga},
	)

	all, err := svc.ListSubscriptionsFor(context.Background(), 99, models.RoleAdmin)
	if err != nil || len(all) != 2 {
		t.Fatalf("админ должен видеть все абонементы: %v, %d", err, len(all))
	}

	own, err := svc.ListSubscriptionsFor(context.Background(), 1, models.RoleMember)
	if err != nil || len(own) != 1 {
		t.Fatalf("клиент должен видеть только свои: %v, %d", err, len(own))
	}
}
