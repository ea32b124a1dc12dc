package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"shop_backend/internal/feature/auth/domain/entity"
)

// mockUserRepository is an in-memory UserRepository for usecase tests.
type mockUserRepository struct {
	users     map[string]*entity.User
	createErr error
	nextID    uint
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: map[string]*entity.User{}}
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.users[user.Email]; ok {
		return ErrEmailAlreadyExists
	}
	m.nextID++
	user.ID = m.nextID
	m.users[user.Email] = user
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

// mockTokenGenerator returns a fixed token.
type mockTokenGenerator struct {
	token string
	err   error
}

func (m *mockTokenGenerator) GenerateToken(userID uint, email string, isAdmin bool) (string, error) {
	return m.token, m.err
}

func TestAuthUsecase_Register(t *testing.T) {
	t.Run("hashes the password before storing", func(t *testing.T) {
		repo := newMockUserRepository()
		uc := NewAuthUsecase(repo, &mockTokenGenerator{token: "tok"})

		user, err := uc.Register(context.Background(), "a@example.com", "password123", false)

		require.NoError(t, err, "register failed")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.NotEqual(t, "password123", user.Password, "plaintext password must never be stored")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")),
			"stored hash does not verify the original password")
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		repo := newMockUserRepository()
		uc := NewAuthUsecase(repo, &mockTokenGenerator{})

		_, err := uc.Register(context.Background(), "a@example.com", "short", false)

		assert.ErrorIs(t, err, ErrPasswordTooShort, "should reject a password below the minimum length")
		assert.Empty(t, repo.users, "no user should be stored")
	})

	t.Run("duplicate email fails and stores exactly one account", func(t *testing.T) {
		repo := newMockUserRepository()
		uc := NewAuthUsecase(repo, &mockTokenGenerator{})

		_, err := uc.Register(context.Background(), "dup@example.com", "password123", false)
		require.NoError(t, err, "first register failed")

		_, err = uc.Register(context.Background(), "dup@example.com", "password456", false)

		assert.ErrorIs(t, err, ErrEmailAlreadyExists, "second register should conflict")
		assert.Len(t, repo.users, 1, "account count should increase by exactly one")
	})

	t.Run("admin flag is persisted", func(t *testing.T) {
		repo := newMockUserRepository()
		uc := NewAuthUsecase(repo, &mockTokenGenerator{})

		user, err := uc.Register(context.Background(), "admin@example.com", "password123", true)

		require.NoError(t, err, "register failed")
		assert.True(t, user.IsAdmin, "admin flag should be stored")
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	register := func(t *testing.T, uc *authUsecase, email, password string) {
		t.Helper()
		_, err := uc.Register(context.Background(), email, password, false)
		require.NoError(t, err, "register failed")
	}

	t.Run("success returns user and token", func(t *testing.T) {
		repo := newMockUserRepository()
		uc := NewAuthUsecase(repo, &mockTokenGenerator{token: "signed-token"})
		register(t, uc, "a@example.com", "password123")

		user, token, err := uc.Login(context.Background(), "a@example.com", "password123")

		require.NoError(t, err, "login failed")
		assert.Equal(t, "a@example.com", user.Email, "email does not match")
		assert.Equal(t, "signed-token", token, "token does not match")
	})

	t.Run("wrong password and unknown email return the identical error", func(t *testing.T) {
		repo := newMockUserRepository()
		uc := NewAuthUsecase(repo, &mockTokenGenerator{token: "tok"})
		register(t, uc, "a@example.com", "password123")

		_, _, wrongPassErr := uc.Login(context.Background(), "a@example.com", "wrong-password")
		_, _, unknownErr := uc.Login(context.Background(), "nobody@example.com", "password123")

		assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials, "wrong password should fail")
		assert.ErrorIs(t, unknownErr, ErrInvalidCredentials, "unknown email should fail")
		// Indistinguishable failures prevent account enumeration
		assert.Equal(t, wrongPassErr.Error(), unknownErr.Error(), "error messages must be identical")
	})

	t.Run("token generation failure is surfaced", func(t *testing.T) {
		repo := newMockUserRepository()
		uc := NewAuthUsecase(repo, &mockTokenGenerator{err: assert.AnError})
		register(t, uc, "a@example.com", "password123")

		_, _, err := uc.Login(context.Background(), "a@example.com", "password123")

		assert.Error(t, err, "should fail when the token cannot be generated")
		assert.NotErrorIs(t, err, ErrInvalidCredentials, "should not be mistaken for bad credentials")
	})
}
