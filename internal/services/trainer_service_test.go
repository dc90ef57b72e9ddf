package services

import (
	"context"
	"errors"
	"testing"

	"gymfit/internal/config"
	"gymfit/internal/models"
)

type mockTrainerRepo struct {
	trainers map[int]*models.Trainer
	nextID   int
}

func newMockTrainerRepo() *mockTrainerRepo {
	return &mockTrainerRepo{trainers: make(map[int]*models.Trainer)}
}

func (m *mockTrainerRepo) CreateTrainer(_ context.Context, trainer *models.Trainer) error {
	m.nextID++
	trainer.ID = m.nextID
	m.trainers[trainer.ID] = trainer
	return nil
}

func (m *mockTrainerRepo) TrainerExists(_ context.Context, id int) (bool, error) {
	_, ok := m.trainers[id]
	return ok, nil
}

func (m *mockTrainerRepo) HasProfile(_ context.Context, userID int) (bool, error) {
	for _, tr := range m.trainers {
		if tr.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockTrainerRepo) GetTrainerByID(_ context.Context, id int) (*models.Trainer, error) {
	tr, ok := m.trainers[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return tr, nil
}

func (m *mockTrainerRepo) GetTrainerByUserID(_ context.Context, userID int) (*models.Trainer, error) {
	for _, tr := range m.trainers {
		if tr.UserID == userID {
			return tr, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *mockTrainerRepo) GetAllTrainers(_ context.Context) ([]*models.Trainer, error) {
	out := make([]*models.Trainer, 0, len(m.trainers))
	for _, tr := range m.trainers {
		out = append(out, tr)
	}
	return out, nil
}

func newTrainerFixture() (*TrainerService, *mockTrainerRepo, *mockSlotRepo, *mockUserRepo) {
	users := newMockUserRepo()
	users.addUser(&models.User{Name: "Клиент", Email: "member@example.com", Role: models.RoleMember})
	users.addUser(&models.User{Name: "Тренер", Email: "trainer@example.com", Role: models.RoleTrainer})

	repo := newMockTrainerRepo()
	slots := newMockSlotRepo()
	cfg := &config.Config{BookingOpenHour: 9, BookingCloseHour: 20, ReleaseSlotOnCancel: true}

	return NewTrainerService(repo, users, slots, cfg), repo, slots, users
}

func TestCreateTrainer_Success(t *testing.T) {
	svc, _, slots, _ := newTrainerFixture()

	trainer, err := svc.CreateTrainer(context.Background(), &models.CreateTrainerRequest{
		UserID:         2,
		Specialization: string(models.TypeCrossFit),
		Experience:     5,
	})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	created, _ := slots.GetSlotsByTrainer(context.Background(), trainer.ID)
	if len(created) != 12 {
		t.Fatalf("новый тренер должен получить 12 слотов (9..20), получили %d", len(created))
	}
}

func TestCreateTrainer_UserNotFound(t *testing.T) {
	svc, _, _, _ := newTrainerFixture()

	_, err := svc.CreateTrainer(context.Background(), &models.CreateTrainerRequest{
		UserID:         42,
		Specialization: string(models.TypeFitness),
	})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("ожидалась ErrUserNotFound, получили %v", err)
	}
}

func TestCreateTrainer_WrongRole(t *testing.T) {
	svc, _, _, _ := newTrainerFixture()

	// Пользователь 1 — клиент.
	_, err := svc.CreateTrainer(context.Background(), &models.CreateTrainerRequest{
		UserID:         1,
		Specialization: string(models.TypeFitness),
	})
	if !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("ожидалась ErrInvalidRole, получили %v", err)
	}
}

func TestCreateTrainer_InvalidSpecialization(t *testing.T) {
	svc, _, _, _ := newTrainerFixture()

	_, err := svc.CreateTrainer(context.Background(), &models.CreateTrainerRequest{
		UserID:         2,
		Specialization: "Bodybuilding",
	})
	if !errors.Is(err, ErrInvalidType) {
		t.Fatalf("ожидалась ErrInvalidType, получили %v", err)
	}
}

func TestCreateTrainer_Duplicate(t *testing.T) {
	svc, _, _, _ := newTrainerFixture()

	req := &models.CreateTrainerRequest{UserID: 2, Specialization: string(models.TypeYoga)}
	if _, err := svc.CreateTrainer(context.Background(), req); err != nil {
		t.Fatalf("не удалось создать профиль: %v", err)
	}

	_, err := svc.CreateTrainer(context.Background(), req)
	if !errors.Is(err, ErrDuplicateTrainer) {
		t.Fatalf("ожидалась ErrDuplicateTrainer, получили %v", err)
	}
}

func TestGetTrainerByID_NotFound(t *testing.T) {
	svc, _, _, _ := newTrainerFixture()

	_, err := svc.GetTrainerByID(context.Background(), 7)
	if !errors.Is(err, ErrTrainerNotFound) {
		t.Fatalf("ожидалась ErrTrainerNotFound, получили %v", err)
	}
}
