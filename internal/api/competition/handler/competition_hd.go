package competitionHandler

import (
	"CompetitionHub/internal/api/competition"
	contextPkg "CompetitionHub/pkg/context"
	"CompetitionHub/pkg/handlerUtil"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *CompetitionHandler) ListCompetitions(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var query competition.ListQuery
	if err := ctx.QueryParser(&query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	result, err := h.competitionService.List(c, query)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_competitions")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, competition.ToListResponse(result))
	}
}

func (h *CompetitionHandler) GetCompetition(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	comp, err := h.competitionService.GetByID(c, ctx.Params("id"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_competition")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, competition.ToCompetitionResponse(comp))
	}
}

func (h *CompetitionHandler) RefreshCompetitions(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	count, err := h.competitionService.Refresh(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "refresh_competitions")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{"total": count})
	}
}
