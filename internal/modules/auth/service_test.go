package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"wheelstreet/internal/domain"
	"wheelstreet/internal/repository"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockJWT struct {
	mock.Mock
}

func (m *mockJWT) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func adminUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)
	return &domain.User{
		ID:           1,
		Email:        "admin@wheelstreet.lt",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Name:         "Admin",
	}
}

func TestLogin_Success(t *testing.T) {
	users := new(mockUserRepo)
	jwt := new(mockJWT)
	svc := NewService(users, jwt)

	user := adminUser(t, "secret123")
	users.On("GetByEmail", mock.Anything, "admin@wheelstreet.lt").Return(user, nil)
	jwt.On("GenerateToken", int64(1), "admin").Return("signed-token", nil)

	got, token, err := svc.Login(context.Background(), "admin@wheelstreet.lt", "secret123")

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, user.Email, got.Email)
	users.AssertExpectations(t)
	jwt.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(mockUserRepo)
	jwt := new(mockJWT)
	svc := NewService(users, jwt)

	users.On("GetByEmail", mock.Anything, "admin@wheelstreet.lt").Return(adminUser(t, "secret123"), nil)

	_, _, err := svc.Login(context.Background(), "admin@wheelstreet.lt", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	jwt.AssertNotCalled(t, "GenerateToken")
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(mockUserRepo)
	jwt := new(mockJWT)
	svc := NewService(users, jwt)

	users.On("GetByEmail", mock.Anything, "nobody@wheelstreet.lt").Return(nil, repository.ErrNotFound)

	_, _, err := svc.Login(context.Background(), "nobody@wheelstreet.lt", "whatever")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCurrentUser_Gone(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockJWT))

	users.On("GetByID", mock.Anything, int64(9)).Return(nil, repository.ErrNotFound)

	_, err := svc.CurrentUser(context.Background(), 9)

	assert.ErrorIs(t, err, ErrUserNotFound)
}
