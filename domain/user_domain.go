package domain

import (
	"errors"
)

var (
	MessageSuccessRegister = "user registered successfully"
	MessageSuccessGetUser  = "user retrieved successfully"

	MessageFailedRegister = "failed to register user"
	MessageFailedGetUser  = "failed to retrieve user"

	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type (
	RegisterRequest struct {
		Email             string `json:"email" validate:"required,email"`
		Login             string `json:"login" validate:"required,min=3"`
		Password          string `json:"password" validate:"required,min=8"`
		NotificationToken string `json:"notification_token,omitempty"`
	}

	UserResponse struct {
		UUID              string `json:"uuid"`
		Email             string `json:"email"`
		Login             string `json:"login"`
		NotificationToken string `json:"notification_token,omitempty"`
	}
)
