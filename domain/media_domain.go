package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessSaveImage   = "image saved successfully"
	MessageSuccessGetImage    = "image retrieved successfully"
	MessageSuccessDeleteImage = "image deleted successfully"

	MessageFailedSaveImage   = "failed to save image"
	MessageFailedGetImage    = "failed to retrieve image"
	MessageFailedDeleteImage = "failed to delete image"

	ErrImageNotFound      = errors.New("image not found")
	ErrInvalidImageFormat = errors.New("invalid image format")
)

type (
	SaveImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	ImageResponse struct {
		UUID string `json:"uuid"`
		URL  string `json:"url"`
	}
)
