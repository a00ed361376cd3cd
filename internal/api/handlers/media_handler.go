package handlers

import (
	"Pantry-Share-Backend/domain"
	"Pantry-Share-Backend/internal/api/presenters"
	"Pantry-Share-Backend/pkg/media"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MediaHandler interface {
		SaveImage(c *fiber.Ctx) error
		GetImage(c *fiber.Ctx) error
		DeleteImage(c *fiber.Ctx) error
	}

	mediaHandler struct {
		mediaService media.MediaService
		validator    *validator.Validate
	}
)

func NewMediaHandler(mediaService media.MediaService, validator *validator.Validate) MediaHandler {
	return &mediaHandler{
		mediaService: mediaService,
		validator:    validator,
	}
}

func (h *mediaHandler) SaveImage(c *fiber.Ctx) error {
	req := new(domain.SaveImageRequest)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveImage, err)
	}

	res, err := h.mediaService.SaveImage(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedSaveImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveImage)
}

func (h *mediaHandler) GetImage(c *fiber.Ctx) error {
	imageUUID := c.Params("uuid")

	res, err := h.mediaService.GetImage(c.Context(), imageUUID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetImage)
}

func (h *mediaHandler) DeleteImage(c *fiber.Ctx) error {
	imageUUID := c.Params("uuid")

	if err := h.mediaService.DeleteImage(c.Context(), imageUUID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedDeleteImage, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteImage)
}
