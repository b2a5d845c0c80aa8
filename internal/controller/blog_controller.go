package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/service"
)

type IBlogController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	GetBySlug(ctx *fiber.Ctx) error
}

type blogController struct {
	service service.IBlogService
}

func NewBlogController(service service.IBlogService) IBlogController {
	return &blogController{service: service}
}

func (c *blogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/blog")
	h.Get("/", c.List)
	h.Get("/:slug", c.GetBySlug)
}

func (c *blogController) List(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 10)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.service.List(ctx.UserContext(), limit, offset)
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
		"message": "Posts",
		"data":    res,
	})
}

func (c *blogController) GetBySlug(ctx *fiber.Ctx) error {
	post, err := c.service.GetBySlug(ctx.UserContext(), ctx.Params("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"code":    404,
				"message": "Post not found",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Post",
		"data":    post,
	})
}
