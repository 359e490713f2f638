package controller

import (
	"errors"

	"imagine-algorithm/internal/pkg/serverutils"
	"imagine-algorithm/internal/service"
	"imagine-algorithm/internal/view"
	"imagine-algorithm/pkg/workshop"

	"github.com/gofiber/fiber/v2"
)

// IPageController serves the server-rendered pages.
type IPageController interface {
	RegisterRoutes(r fiber.Router)
}

type pageController struct {
	renderer      *view.Renderer
	workshops     service.IWorkshopService
	analyzer      service.IAnalyzerService
	board         service.IBoardService
	questionnaire service.IQuestionnaireService
}

func NewPageController(
	renderer *view.Renderer,
	workshops service.IWorkshopService,
	analyzer service.IAnalyzerService,
	board service.IBoardService,
	questionnaire service.IQuestionnaireService,
) IPageController {
	return &pageController{
		renderer:      renderer,
		workshops:     workshops,
		analyzer:      analyzer,
		board:         board,
		questionnaire: questionnaire,
	}
}

func (c *pageController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.home)
	r.Get("/workshops/:slug", c.workshop)
	r.Get("/tools/data-tool", c.dataTool)
	r.Get("/tools/data-set-tool", c.dataSetTool)
	r.Get("/tools/consideration", c.consideration)
}

func (c *pageController) render(ctx *fiber.Ctx, name string, page view.Page) error {
	ctx.Type("html", "utf-8")
	return c.renderer.Render(ctx, name, page)
}

func (c *pageController) home(ctx *fiber.Ctx) error {
	return c.render(ctx, view.PageHome, view.Page{
		Title: workshop.Title,
		Data:  c.workshops.Home(ctx.UserContext()),
	})
}

func (c *pageController) workshop(ctx *fiber.Ctx) error {
	d, err := c.workshops.Show(ctx.UserContext(), ctx.Params("slug"))
	if errors.Is(err, workshop.ErrNotFound) {
		ctx.Status(fiber.StatusNotFound)
		return c.render(ctx, view.PageNotFound, view.Page{Title: "Workshop not found", Data: "Workshop not found"})
	}
	if err != nil {
		return err
	}
	return c.render(ctx, view.PageWorkshop, view.Page{Title: d.Title, ShowReturn: true, Data: d})
}

func (c *pageController) dataTool(ctx *fiber.Ctx) error {
	snap := c.analyzer.Snapshot(ctx.UserContext(), serverutils.SessionID(ctx))
	return c.render(ctx, view.PageDataTool, view.Page{Title: "Simulation", ShowReturn: true, Data: snap})
}

func (c *pageController) dataSetTool(ctx *fiber.Ctx) error {
	b := c.board.Get(ctx.UserContext(), serverutils.SessionID(ctx))
	return c.render(ctx, view.PageDataSetTool, view.Page{Title: "Formulation", ShowReturn: true, Data: b})
}

func (c *pageController) consideration(ctx *fiber.Ctx) error {
	q := c.questionnaire.Get(ctx.UserContext(), serverutils.SessionID(ctx))
	return c.render(ctx, view.PageConsideration, view.Page{Title: "Consideration", ShowReturn: true, Data: q})
}
