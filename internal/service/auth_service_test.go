package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/employee-management-api/internal/auth"
	"github.com/employee-management-api/internal/domain"
	"github.com/employee-management-api/internal/dto"
	"github.com/employee-management-api/internal/service"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	user.ID = m.nextID
	m.nextID++
	m.users[user.Username] = user
	return nil
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if user, ok := m.users[username]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, ok := m.users[username]
	return ok, nil
}

func setupAuthService() (service.AuthService, *mockUserRepo, *auth.TokenService) {
	userRepo := newMockUserRepo()
	tokens := auth.NewTokenService("test-secret", time.Hour)
	return service.NewAuthService(userRepo, tokens), userRepo, tokens
}

func TestRegister_HashesPassword(t *testing.T) {
	authService, userRepo, _ := setupAuthService()

	err := authService.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user := userRepo.users["alice"]
	if user == nil {
		t.Fatal("user was not persisted")
	}
	if user.PasswordHash == "secret123" {
		t.Error("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")) != nil {
		t.Error("stored hash does not match the password")
	}
}

func TestRegister_Duplicate(t *testing.T) {
	authService, _, _ := setupAuthService()

	req := &dto.RegisterRequest{Username: "alice", Password: "secret123"}
	if err := authService.Register(context.Background(), req); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	err := authService.Register(context.Background(), req)
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Errorf("expected ErrDuplicateUsername, got %v", err)
	}
}

// racingUserRepo имитирует гонку двух одновременных регистраций:
// проверка существования не видит пользователя, но уникальный
// индекс срабатывает на вставке
type racingUserRepo struct {
	*mockUserRepo
}

func (m *racingUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, nil
}

func (m *racingUserRepo) Create(ctx context.Context, user *domain.User) error {
	if _, ok := m.users[user.Username]; ok {
		return domain.ErrDuplicateUsername
	}
	return m.mockUserRepo.Create(ctx, user)
}

func TestRegister_DuplicateOnInsert(t *testing.T) {
	userRepo := &racingUserRepo{mockUserRepo: newMockUserRepo()}
	tokens := auth.NewTokenService("test-secret", time.Hour)
	authService := service.NewAuthService(userRepo, tokens)

	req := &dto.RegisterRequest{Username: "alice", Password: "secret123"}
	if err := authService.Register(context.Background(), req); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	err := authService.Register(context.Background(), req)
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Errorf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestLogin_ReturnsVerifiableToken(t *testing.T) {
	authService, _, tokens := setupAuthService()

	if err := authService.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Password: "secret123",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := authService.Login(context.Background(), &dto.LoginRequest{
		Username: "alice",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	username, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("token verification failed: %v", err)
	}
	if username != "alice" {
		t.Errorf("expected username 'alice' in token, got '%s'", username)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	authService, _, _ := setupAuthService()

	if err := authService.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Password: "secret123",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := authService.Login(context.Background(), &dto.LoginRequest{
		Username: "alice",
		Password: "wrongpass",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	authService, _, _ := setupAuthService()

	_, err := authService.Login(context.Background(), &dto.LoginRequest{
		Username: "nobody",
		Password: "secret123",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}
