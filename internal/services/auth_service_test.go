package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gymfit/internal/models"
	"gymfit/internal/utils"
)

// Мок-репозиторий (заглушка)
type mockUserRepo struct {
	users    map[int]*models.User
	lastUser *models.User
	nextID   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int]*models.User), nextID: 1}
}

func (m *mockUserRepo) IsEmailTaken(_ context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) CreateUser(_ context.Context, user *models.User) error {
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	m.lastUser = user
	return nil
}

func (m *mockUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *mockUserRepo) GetUserByID(_ context.Context, id int) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (m *mockUserRepo) GetAllUsersPaginated(_ context.Context, limit, offset int) ([]*models.User, int, error) {
	out := make([]*models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, len(m.users), nil
}

func (m *mockUserRepo) UpdateUserFields(_ context.Context, id int, input *models.UpdateUserRequest) error {
	u, ok := m.users[id]
	if !ok {
		return errors.New("not found")
	}
	if input.Role != nil {
		u.Role = models.Role(*input.Role)
	}
	return nil
}

func (m *mockUserRepo) DeleteUserByID(_ context.Context, userID int) error {
	delete(m.users, userID)
	return nil
}

func (m *mockUserRepo) SaveRefreshToken(_ context.Context, userID int, token string) error {
	return nil
}
func (m *mockUserRepo) IsRefreshTokenValid(_ context.Context, userID int, token string) (bool, error) {
	return true, nil
}
func (m *mockUserRepo) DeleteRefreshToken(_ context.Context, userID int, token string) error {
	return nil
}

func (m *mockUserRepo) addUser(u *models.User) *models.User {
	u.ID = m.nextID
	m.nextID++
	m.users[u.ID] = u
	return u
}

func TestRegisterUser(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo)

	user := &models.User{
		Name:  "Тестовый Пользователь",
		Email: "test@example.com",
	}

	err := service.RegisterUser(context.Background(), user, "secret")
	if err != nil {
		t.Fatalf("ошибка регистрации: %v", err)
	}

	if repo.lastUser == nil || repo.lastUser.PasswordHash == "" {
		t.Fatal("пароль не захеширован или пользователь не сохранён")
	}
	if repo.lastUser.Role != models.RoleMember {
		t.Fatalf("при самостоятельной регистрации роль должна быть member, получили %q", repo.lastUser.Role)
	}
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo)

	repo.addUser(&models.User{Email: "busy@example.com"})

	err := service.RegisterUser(context.Background(), &models.User{Email: "busy@example.com"}, "secret")
	if err == nil {
		t.Fatal("ожидалась ошибка при повторной регистрации email")
	}
}

func TestLoginUser_Success(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo)

	hashed, _ := utils.HashPassword("secret")
	repo.addUser(&models.User{
		Email:        "test@example.com",
		PasswordHash: hashed,
		Role:         models.RoleMember,
	})

	access, refresh, user, err := service.LoginUser(context.Background(), "test@example.com", "secret", "mysecret", 15*time.Minute, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("ошибка логина: %v", err)
	}

	if access == "" || refresh == "" {
		t.Fatal("токены не сгенерированы")
	}
	if user == nil || user.Email != "test@example.com" {
		t.Fatal("пользователь не возвращён")
	}
}

func TestLoginUser_Fail(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo)

	_, _, _, err := service.LoginUser(context.Background(), "unknown@example.com", "pass", "secret", time.Minute, time.Hour)
	if err == nil {
		t.Fatal("ожидалась ошибка при логине несуществующего пользователя")
	}
}

func TestUpdateUser_InvalidRole(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo)

	u := repo.addUser(&models.User{Email: "a@b.c", Role: models.RoleMember})

	bad := "Superuser"
	err := service.UpdateUser(context.Background(), u.ID, &models.UpdateUserRequest{Role: &bad})
	if !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("ожидалась ErrInvalidRole, получили %v", err)
	}
}
