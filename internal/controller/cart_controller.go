package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/dto"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/service"
)

type ICartController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Add(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
	Checkout(ctx *fiber.Ctx) error
}

type cartController struct {
	service  service.ICartService
	validate *validator.Validate
}

func NewCartController(service service.ICartService, validate *validator.Validate) ICartController {
	return &cartController{service: service, validate: validate}
}

func (c *cartController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/cart")
	h.Get("/", c.Get)
	h.Post("/items", c.Add)
	h.Patch("/items/:id", c.Update)
	h.Delete("/items/:id", c.Remove)
	h.Delete("/", c.Clear)
	h.Post("/checkout", c.Checkout)
}

func (c *cartController) Get(ctx *fiber.Ctx) error {
	res, err := c.service.Get(ctx.UserContext(), sessionID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Cart",
		"data":    res,
	})
}

func (c *cartController) Add(ctx *fiber.Ctx) error {
	var req dto.AddCartItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := c.validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}

	res, err := c.service.Add(ctx.UserContext(), sessionID(ctx), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Item added",
		"data":    res,
	})
}

func (c *cartController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateCartItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := c.validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}

	res, err := c.service.Update(ctx.UserContext(), sessionID(ctx), ctx.Params("id"), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Item updated",
		"data":    res,
	})
}

func (c *cartController) Remove(ctx *fiber.Ctx) error {
	res, err := c.service.Remove(ctx.UserContext(), sessionID(ctx), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Item removed",
		"data":    res,
	})
}

func (c *cartController) Clear(ctx *fiber.Ctx) error {
	if err := c.service.Clear(ctx.UserContext(), sessionID(ctx)); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Cart cleared",
		"data":    nil,
	})
}

func (c *cartController) Checkout(ctx *fiber.Ctx) error {
	res, err := c.service.Checkout(ctx.UserContext(), sessionID(ctx))
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, service.ErrNotAuthenticated) {
			status = fiber.StatusUnauthorized
		}
		return ctx.Status(status).JSON(fiber.Map{
			"success": false,
			"code":    status,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Checkout created",
		"data":    res,
	})
}
