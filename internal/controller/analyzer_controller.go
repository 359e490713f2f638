package controller

import (
	"imagine-algorithm/internal/dto"
	"imagine-algorithm/internal/pkg/serverutils"
	"imagine-algorithm/internal/service"
	"imagine-algorithm/internal/view"

	"github.com/gofiber/fiber/v2"
)

const glyphSize = 120

type IAnalyzerController interface {
	RegisterRoutes(r fiber.Router)
	Snapshot(ctx *fiber.Ctx) error
	HoverStart(ctx *fiber.Ctx) error
	HoverEnd(ctx *fiber.Ctx) error
	AddCategory(ctx *fiber.Ctx) error
	Glyph(ctx *fiber.Ctx) error
	Overlay(ctx *fiber.Ctx) error
}

type analyzerController struct {
	service service.IAnalyzerService
}

func NewAnalyzerController(service service.IAnalyzerService) IAnalyzerController {
	return &analyzerController{service: service}
}

func (c *analyzerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/analyzer/v1")
	h.Get("", c.Snapshot)
	h.Post("hover/start", c.HoverStart)
	h.Post("hover/end", c.HoverEnd)
	h.Post("categories", c.AddCategory)
	h.Get("glyph/:name.svg", c.Glyph)
	h.Get("overlay.svg", c.Overlay)
}

func (c *analyzerController) Snapshot(ctx *fiber.Ctx) error {
	res := c.service.Snapshot(ctx.UserContext(), serverutils.SessionID(ctx))
	return ctx.JSON(serverutils.SuccessResponse("Success get analyzer state", res))
}

func (c *analyzerController) HoverStart(ctx *fiber.Ctx) error {
	var req dto.HoverStartRequest
	if err := parseAndValidate(ctx.BodyParser, &req); err != nil {
		return err
	}

	res := c.service.HoverStart(ctx.UserContext(), serverutils.SessionID(ctx), &req)
	return ctx.JSON(serverutils.SuccessResponse("Success start hover", res))
}

func (c *analyzerController) HoverEnd(ctx *fiber.Ctx) error {
	var req dto.HoverEndRequest
	if len(ctx.Body()) > 0 {
		if err := parseAndValidate(ctx.BodyParser, &req); err != nil {
			return err
		}
	}

	res := c.service.HoverEnd(ctx.UserContext(), serverutils.SessionID(ctx), &req)
	return ctx.JSON(serverutils.SuccessResponse("Success end hover", res))
}

func (c *analyzerController) AddCategory(ctx *fiber.Ctx) error {
	var req dto.AddCategoryRequest
	if err := parseAndValidate(ctx.BodyParser, &req); err != nil {
		return err
	}

	res := c.service.AddCategory(ctx.UserContext(), serverutils.SessionID(ctx), &req)
	return ctx.JSON(serverutils.SuccessResponse("Success add category", res))
}

func (c *analyzerController) Glyph(ctx *fiber.Ctx) error {
	name, err := pathParam(ctx, "name")
	if err != nil {
		return err
	}

	cat, err := c.service.Category(ctx.UserContext(), serverutils.SessionID(ctx), name)
	if err != nil {
		return mapError(err)
	}

	ctx.Type("svg")
	ctx.Set(fiber.HeaderCacheControl, "no-store")
	view.WriteTile(ctx, cat.Points, cat.Active, glyphSize)
	return nil
}

func (c *analyzerController) Overlay(ctx *fiber.Ctx) error {
	res := c.service.Snapshot(ctx.UserContext(), serverutils.SessionID(ctx))

	ctx.Type("svg")
	ctx.Set(fiber.HeaderCacheControl, "no-store")
	view.WriteOverlay(ctx, res.Categories, 400)
	return nil
}
