package handlers

import (
	"Pantry-Share-Backend/domain"
	"Pantry-Share-Backend/internal/api/presenters"
	"Pantry-Share-Backend/pkg/card"
	"Pantry-Share-Backend/pkg/product"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProductHandler interface {
		AddProduct(c *fiber.Ctx) error
		UpdateProduct(c *fiber.Ctx) error
		DeleteProduct(c *fiber.Ctx) error
		GetProduct(c *fiber.Ctx) error
		GetAllProducts(c *fiber.Ctx) error
		SynchronizeProducts(c *fiber.Ctx) error
		GetOutdatedProducts(c *fiber.Ctx) error
		NotifyOutdatedProducts(c *fiber.Ctx) error
		GetProductCard(c *fiber.Ctx) error
	}

	productHandler struct {
		productService product.ProductService
		cardService    card.CardService
		validator      *validator.Validate
	}
)

func NewProductHandler(productService product.ProductService, cardService card.CardService, validator *validator.Validate) ProductHandler {
	return &productHandler{
		productService: productService,
		cardService:    cardService,
		validator:      validator,
	}
}

func (h *productHandler) AddProduct(c *fiber.Ctx) error {
	userUUID := c.Params("userUuid")
	req := new(domain.Product)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddProduct, err)
	}

	res, err := h.productService.AddProduct(c.Context(), *req, userUUID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedAddProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddProduct)
}

func (h *productHandler) UpdateProduct(c *fiber.Ctx) error {
	req := new(domain.Product)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProduct, err)
	}

	res, err := h.productService.UpdateProduct(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedUpdateProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateProduct)
}

func (h *productHandler) DeleteProduct(c *fiber.Ctx) error {
	userUUID := c.Params("userUuid")
	productUUID := c.Params("uuid")

	if err := h.productService.DeleteProduct(c.Context(), productUUID, userUUID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedDeleteProduct, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteProduct)
}

func (h *productHandler) GetProduct(c *fiber.Ctx) error {
	productUUID := c.Params("uuid")

	res, err := h.productService.GetProduct(c.Context(), productUUID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProduct)
}

func (h *productHandler) GetAllProducts(c *fiber.Ctx) error {
	userUUID := c.Params("userUuid")

	var query *domain.QueryFilter
	if len(c.Body()) > 0 {
		query = new(domain.QueryFilter)
		if err := c.BodyParser(query); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}

	res, err := h.productService.GetAllProducts(c.Context(), userUUID, query)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) SynchronizeProducts(c *fiber.Ctx) error {
	userUUID := c.Params("userUuid")
	req := new(domain.SynchronizeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSynchronizeProducts, err)
	}

	res, err := h.productService.SynchronizeProducts(c.Context(), userUUID, req.Products)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedSynchronizeProducts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSynchronizeProducts)
}

func (h *productHandler) GetOutdatedProducts(c *fiber.Ctx) error {
	res, err := h.productService.GetOutdatedProducts(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetOutdated, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOutdated)
}

func (h *productHandler) NotifyOutdatedProducts(c *fiber.Ctx) error {
	sent, err := h.productService.NotifyOutdatedProducts(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedNotifyOutdated, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"notifications_sent": sent}, fiber.StatusOK, domain.MessageSuccessNotifyOutdated)
}

func (h *productHandler) GetProductCard(c *fiber.Ctx) error {
	barcode := c.Params("barcode")

	res, err := h.cardService.GetCard(c.Context(), barcode)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetProductCard, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProductCard)
}
