package user

import (
	"context"
	"testing"

	"Pantry-Share-Backend/domain"
	"Pantry-Share-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type userRepositoryFake struct {
	users map[string]entities.User
}

func newUserRepositoryFake() *userRepositoryFake {
	return &userRepositoryFake{users: make(map[string]entities.User)}
}

func (f *userRepositoryFake) CreateUser(_ context.Context, u *entities.User) error {
	f.users[u.ID.String()] = *u
	return nil
}

func (f *userRepositoryFake) GetUserByUUID(_ context.Context, id string) (*entities.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (f *userRepositoryFake) GetUsersByUUIDs(_ context.Context, ids []string) ([]entities.User, error) {
	users := make([]entities.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (f *userRepositoryFake) CountByEmailOrLogin(_ context.Context, email, login string) (int64, error) {
	var count int64
	for _, u := range f.users {
		if u.Email == email || u.Login == login {
			count++
		}
	}
	return count, nil
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newUserRepositoryFake()
	service := NewUserService(repo)

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "anna@example.com",
		Login:    "anna",
		Password: "correct-horse-battery",
	})

	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", res.Email)

	stored := repo.users[res.UUID]
	assert.NotEqual(t, "correct-horse-battery", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("correct-horse-battery")))
}

func TestRegisterDuplicateEmailOrLogin(t *testing.T) {
	repo := newUserRepositoryFake()
	service := NewUserService(repo)

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "anna@example.com",
		Login:    "anna",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), domain.RegisterRequest{
		Email:    "anna@example.com",
		Login:    "other",
		Password: "correct-horse-battery",
	})

	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestGetUserUnknown(t *testing.T) {
	service := NewUserService(newUserRepositoryFake())

	_, err := service.GetUser(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
