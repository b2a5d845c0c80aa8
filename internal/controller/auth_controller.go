package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/client"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/dto"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/service"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
}

type authController struct {
	service  service.IAuthService
	validate *validator.Validate
}

func NewAuthController(service service.IAuthService, validate *validator.Validate) IAuthController {
	return &authController{service: service, validate: validate}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/login", c.Login)
	h.Post("/logout", c.Logout)
	h.Put("/profile", c.UpdateProfile)
}

func sessionID(ctx *fiber.Ctx) string {
	sid, _ := ctx.Locals("session_id").(string)
	return sid
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
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

	res, err := c.service.Login(ctx.UserContext(), sessionID(ctx), &req)
	if err != nil {
		status := fiber.StatusUnauthorized
		var serverErr *client.ServerError
		if errors.As(err, &serverErr) {
			status = fiber.StatusBadGateway
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
		"message": "Login successful",
		"data":    res,
	})
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	if err := c.service.Logout(ctx.UserContext(), sessionID(ctx)); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Logged out",
		"data":    nil,
	})
}

func (c *authController) UpdateProfile(ctx *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
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

	user, err := c.service.UpdateProfile(ctx.UserContext(), sessionID(ctx), &req)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, service.ErrNotAuthenticated) {
			status = fiber.StatusUnauthorized
		}
		var serverErr *client.ServerError
		if errors.As(err, &serverErr) {
			status = fiber.StatusBadGateway
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
		"message": "Profile updated",
		"data":    user,
	})
}
