package user

import (
	"context"
	"errors"

	"Pantry-Share-Backend/domain"
	"Pantry-Share-Backend/entities"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error)
		GetUser(ctx context.Context, uuid string) (domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
	}
)

func NewUserService(userRepository UserRepository) UserService {
	return &userService{userRepository: userRepository}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error) {
	count, err := s.userRepository.CountByEmailOrLogin(ctx, req.Email, req.Login)
	if err != nil {
		return domain.UserResponse{}, err
	}
	if count > 0 {
		return domain.UserResponse{}, domain.ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserResponse{}, err
	}

	user := &entities.User{
		ID:                uuid.New(),
		Email:             req.Email,
		Login:             req.Login,
		Password:          string(hashed),
		NotificationToken: req.NotificationToken,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	return ToUserResponse(*user), nil
}

func (s *userService) GetUser(ctx context.Context, uuid string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByUUID(ctx, uuid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return ToUserResponse(*user), nil
}

func ToUserResponse(user entities.User) domain.UserResponse {
	return domain.UserResponse{
		UUID:              user.ID.String(),
		Email:             user.Email,
		Login:             user.Login,
		NotificationToken: user.NotificationToken,
	}
}
