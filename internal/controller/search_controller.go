package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/dto"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/service"
)

type ISearchController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
	ClearSearch(ctx *fiber.Ctx) error
	GetState(ctx *fiber.Ctx) error
	GetFiltered(ctx *fiber.Ctx) error
	SaveDraft(ctx *fiber.Ctx) error
	FlushDraft(ctx *fiber.Ctx) error
	ClearDraft(ctx *fiber.Ctx) error
	SetFilters(ctx *fiber.Ctx) error
	ClearFilters(ctx *fiber.Ctx) error
}

type searchController struct {
	service service.ISearchService
}

func NewSearchController(service service.ISearchService) ISearchController {
	return &searchController{service: service}
}

func (c *searchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/search")
	h.Post("/flights", c.Search)
	h.Delete("/", c.ClearSearch)
	h.Get("/", c.GetState)
	h.Get("/results/filtered", c.GetFiltered)
	h.Put("/draft", c.SaveDraft)
	h.Post("/draft/flush", c.FlushDraft)
	h.Delete("/draft", c.ClearDraft)
	h.Put("/filters", c.SetFilters)
	h.Delete("/filters", c.ClearFilters)
}

func (c *searchController) Search(ctx *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.StartSearch(ctx.UserContext(), sessionID(ctx), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}
	return ctx.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"success": true,
		"code":    202,
		"message": "Search started",
		"data":    res,
	})
}

func (c *searchController) ClearSearch(ctx *fiber.Ctx) error {
	if err := c.service.ClearSearch(ctx.UserContext(), sessionID(ctx)); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Search cleared",
		"data":    nil,
	})
}

func (c *searchController) GetState(ctx *fiber.Ctx) error {
	res, err := c.service.GetState(ctx.UserContext(), sessionID(ctx))
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
		"message": "Search state",
		"data":    res,
	})
}

// GetFiltered returns only the results that pass the active filter set.
func (c *searchController) GetFiltered(ctx *fiber.Ctx) error {
	res, err := c.service.GetState(ctx.UserContext(), sessionID(ctx))
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
		"message": "Filtered results",
		"data":    res.Filtered,
	})
}

func (c *searchController) SaveDraft(ctx *fiber.Ctx) error {
	var req dto.DraftRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.service.SaveDraft(ctx.UserContext(), sessionID(ctx), &req); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Draft accepted",
		"data":    nil,
	})
}

func (c *searchController) FlushDraft(ctx *fiber.Ctx) error {
	if err := c.service.FlushDraft(ctx.UserContext(), sessionID(ctx)); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Draft flushed",
		"data":    nil,
	})
}

func (c *searchController) ClearDraft(ctx *fiber.Ctx) error {
	if err := c.service.ClearDraft(ctx.UserContext(), sessionID(ctx)); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Draft cleared",
		"data":    nil,
	})
}

func (c *searchController) SetFilters(ctx *fiber.Ctx) error {
	var req dto.FilterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.SetFilters(ctx.UserContext(), sessionID(ctx), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Filters applied",
		"data":    res,
	})
}

func (c *searchController) ClearFilters(ctx *fiber.Ctx) error {
	res, err := c.service.ClearFilters(ctx.UserContext(), sessionID(ctx))
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
		"message": "Filters cleared",
		"data":    res,
	})
}
