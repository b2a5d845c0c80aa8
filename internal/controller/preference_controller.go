package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/dto"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/service"
)

type IPreferenceController interface {
	RegisterRoutes(r fiber.Router)
	GetState(ctx *fiber.Ctx) error
	SetTheme(ctx *fiber.Ctx) error
	SetLanguage(ctx *fiber.Ctx) error
}

type preferenceController struct {
	service  service.IPreferenceService
	validate *validator.Validate
}

func NewPreferenceController(service service.IPreferenceService, validate *validator.Validate) IPreferenceController {
	return &preferenceController{service: service, validate: validate}
}

func (c *preferenceController) RegisterRoutes(r fiber.Router) {
	r.Get("/state", c.GetState)

	h := r.Group("/preferences")
	h.Put("/theme", c.SetTheme)
	h.Put("/language", c.SetLanguage)
}

// GetState returns the full app and search snapshot for page hydration.
func (c *preferenceController) GetState(ctx *fiber.Ctx) error {
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
		"message": "State snapshot",
		"data":    res,
	})
}

func (c *preferenceController) SetTheme(ctx *fiber.Ctx) error {
	return c.update(ctx, true)
}

func (c *preferenceController) SetLanguage(ctx *fiber.Ctx) error {
	return c.update(ctx, false)
}

func (c *preferenceController) update(ctx *fiber.Ctx, theme bool) error {
	var req dto.PreferenceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if theme {
		req.Language = ""
		if req.Theme == "" {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"code":    400,
				"message": "theme is required",
			})
		}
	} else {
		req.Theme = ""
		if req.Language == "" {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"code":    400,
				"message": "language is required",
			})
		}
	}
	if err := c.validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}

	res, err := c.service.Update(ctx.UserContext(), sessionID(ctx), &req)
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
		"message": "Preferences updated",
		"data":    res,
	})
}
