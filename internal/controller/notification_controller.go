package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/dto"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/pkg/logger"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/service"
	internalWS "github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/websocket"
)

type INotificationController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Add(ctx *fiber.Ctx) error
	Dismiss(ctx *fiber.Ctx) error
	ServeWs(ctx *fiber.Ctx) error
}

type notificationController struct {
	service  service.INotificationService
	hub      *internalWS.Hub
	validate *validator.Validate
	logger   logger.ILogger
}

func NewNotificationController(
	service service.INotificationService,
	hub *internalWS.Hub,
	validate *validator.Validate,
	log logger.ILogger,
) INotificationController {
	return &notificationController{
		service:  service,
		hub:      hub,
		validate: validate,
		logger:   log,
	}
}

func (c *notificationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notifications")
	h.Get("/", c.List)
	h.Post("/", c.Add)
	h.Delete("/:id", c.Dismiss)

	r.Get("/ws", c.ServeWs)
}

func (c *notificationController) List(ctx *fiber.Ctx) error {
	notifications, err := c.service.List(ctx.UserContext(), sessionID(ctx))
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
		"message": "Notifications",
		"data":    notifications,
	})
}

func (c *notificationController) Add(ctx *fiber.Ctx) error {
	var req dto.AddNotificationRequest
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

	notification, err := c.service.Add(ctx.UserContext(), sessionID(ctx), &req)
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
		"message": "Notification added",
		"data":    notification,
	})
}

func (c *notificationController) Dismiss(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "Invalid notification id",
		})
	}

	if err := c.service.Dismiss(ctx.UserContext(), sessionID(ctx), id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Notification dismissed",
		"data":    nil,
	})
}

// ServeWs upgrades the connection and attaches it to the hub for live
// notification pushes.
func (c *notificationController) ServeWs(ctx *fiber.Ctx) error {
	sid := sessionID(ctx)
	if sid == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing session"})
	}

	if websocket.IsWebSocketUpgrade(ctx) {
		return websocket.New(func(conn *websocket.Conn) {
			c.logger.Info("NotificationController", "Starting WebSocket session", map[string]interface{}{"session_id": sid})
			internalWS.ServeWs(c.hub, conn, sid)
			c.logger.Info("NotificationController", "WebSocket session ended", map[string]interface{}{"session_id": sid})
		})(ctx)
	}
	return fiber.ErrUpgradeRequired
}
