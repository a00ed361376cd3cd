package handlers

import (
	"Pantry-Share-Backend/domain"
	"Pantry-Share-Backend/internal/api/presenters"
	"Pantry-Share-Backend/pkg/container"

	"github.com/gofiber/fiber/v2"
)

type (
	ContainerHandler interface {
		GetContainer(c *fiber.Ctx) error
		GetSharedInfo(c *fiber.Ctx) error
		ShareContainer(c *fiber.Ctx) error
	}

	containerHandler struct {
		containerService container.ContainerService
	}
)

func NewContainerHandler(containerService container.ContainerService) ContainerHandler {
	return &containerHandler{containerService: containerService}
}

func (h *containerHandler) GetContainer(c *fiber.Ctx) error {
	containerUUID := c.Params("uuid")

	res, err := h.containerService.GetContainer(c.Context(), containerUUID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetContainer, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetContainer)
}

func (h *containerHandler) GetSharedInfo(c *fiber.Ctx) error {
	containerUUID := c.Params("uuid")

	res, err := h.containerService.GetSharedInfo(c.Context(), containerUUID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetSharedInfo, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSharedInfo)
}

func (h *containerHandler) ShareContainer(c *fiber.Ctx) error {
	requesterUUID := c.Params("requesterUuid")
	targetUUID := c.Params("targetUuid")

	if err := h.containerService.ShareContainer(c.Context(), requesterUUID, targetUUID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedShareContainer, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessShareContainer)
}
