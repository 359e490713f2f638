package controller

import (
	"imagine-algorithm/internal/dto"
	"imagine-algorithm/internal/pkg/serverutils"
	"imagine-algorithm/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBoardController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	AddColumn(ctx *fiber.Ctx) error
	RenameColumn(ctx *fiber.Ctx) error
	AddItem(ctx *fiber.Ctx) error
	UpdateItem(ctx *fiber.Ctx) error
	CycleColor(ctx *fiber.Ctx) error
	DeleteItem(ctx *fiber.Ctx) error
	Move(ctx *fiber.Ctx) error
}

type boardController struct {
	service service.IBoardService
}

func NewBoardController(service service.IBoardService) IBoardController {
	return &boardController{service: service}
}

func (c *boardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/board/v1")
	h.Get("", c.Get)
	h.Post("columns", c.AddColumn)
	h.Put("columns/:name", c.RenameColumn)
	h.Post("columns/:name/items", c.AddItem)
	h.Put("items/:id", c.UpdateItem)
	h.Post("items/:id/color", c.CycleColor)
	h.Delete("items/:id", c.DeleteItem)
	h.Post("move", c.Move)
}

func (c *boardController) Get(ctx *fiber.Ctx) error {
	res := c.service.Get(ctx.UserContext(), serverutils.SessionID(ctx))
	return ctx.JSON(serverutils.SuccessResponse("Success get board", res))
}

func (c *boardController) AddColumn(ctx *fiber.Ctx) error {
	res, err := c.service.AddColumn(ctx.UserContext(), serverutils.SessionID(ctx))
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success add column", res))
}

func (c *boardController) RenameColumn(ctx *fiber.Ctx) error {
	var req dto.RenameColumnRequest
	if err := parseAndValidate(ctx.BodyParser, &req); err != nil {
		return err
	}

	column, err := pathParam(ctx, "name")
	if err != nil {
		return err
	}

	res, err := c.service.RenameColumn(ctx.UserContext(), serverutils.SessionID(ctx), column, &req)
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success rename column", res))
}

func (c *boardController) AddItem(ctx *fiber.Ctx) error {
	column, err := pathParam(ctx, "name")
	if err != nil {
		return err
	}

	res, err := c.service.AddItem(ctx.UserContext(), serverutils.SessionID(ctx), column)
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success add item", res))
}

func (c *boardController) UpdateItem(ctx *fiber.Ctx) error {
	var req dto.UpdateItemRequest
	if err := parseAndValidate(ctx.BodyParser, &req); err != nil {
		return err
	}

	res, err := c.service.UpdateItem(ctx.UserContext(), serverutils.SessionID(ctx), ctx.Params("id"), &req)
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update item", res))
}

func (c *boardController) CycleColor(ctx *fiber.Ctx) error {
	var req dto.ItemColumnRequest
	if err := parseAndValidate(ctx.BodyParser, &req); err != nil {
		return err
	}

	res, err := c.service.CycleColor(ctx.UserContext(), serverutils.SessionID(ctx), ctx.Params("id"), &req)
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success change color", res))
}

func (c *boardController) DeleteItem(ctx *fiber.Ctx) error {
	req := dto.ItemColumnRequest{Column: ctx.Query("column")}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.DeleteItem(ctx.UserContext(), serverutils.SessionID(ctx), ctx.Params("id"), &req)
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete item", res))
}

func (c *boardController) Move(ctx *fiber.Ctx) error {
	var req dto.MoveItemRequest
	if err := parseAndValidate(ctx.BodyParser, &req); err != nil {
		return err
	}

	res, err := c.service.Move(ctx.UserContext(), serverutils.SessionID(ctx), &req)
	if err != nil {
		return mapError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success move item", res))
}
