package registrationHandler

import (
	"CompetitionHub/internal/api/registration"
	"CompetitionHub/internal/entity"
	contextPkg "CompetitionHub/pkg/context"
	"CompetitionHub/pkg/handlerUtil"
	"CompetitionHub/pkg/receipt"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

const registrationIDRule = "required,max=64,printascii"

func (h *RegistrationHandler) GetOptions(ctx *fiber.Ctx) error {
	return handlerUtil.New(h.log).HandleSuccess(ctx, fiber.StatusOK, registration.Options())
}

func (h *RegistrationHandler) ValidateStep(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req registration.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	step := ctx.QueryInt("step", 0)
	result, err := h.registrationService.ValidateStep(c, step, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "validate_step")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, registration.StepResponse{
			Step:     step,
			Valid:    result.Valid,
			Progress: result.Progress,
			Missing:  result.Missing,
		})
	}
}

func (h *RegistrationHandler) Register(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 20*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req registration.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	reg, err := h.registrationService.Register(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "register")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, registration.ToRegistrationResponse(reg))
	}
}

func (h *RegistrationHandler) GetRegistration(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if err := h.validator.Var(id, registrationIDRule); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	reg, err := h.registrationService.GetByID(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_registration")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, registration.ToRegistrationResponse(reg))
	}
}

func (h *RegistrationHandler) GetReceipt(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if err := h.validator.Var(id, registrationIDRule); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	result, err := h.registrationService.Receipt(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_receipt")
	}

	if result.RedirectURL != "" {
		return ctx.Redirect(result.RedirectURL, fiber.StatusFound)
	}

	ctx.Set(fiber.HeaderContentType, receipt.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", result.FileName))
	return ctx.Status(fiber.StatusOK).Send(result.PNG)
}

func (h *RegistrationHandler) ListRegistrations(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var query registration.ListQuery
	if err := ctx.QueryParser(&query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	if err := h.validator.Struct(query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	filter := query.Filter()
	regs, total, err := h.registrationService.List(c, filter)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_registrations")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, toListResponse(regs, filter, total))
	}
}

func toListResponse(regs []entity.Registration, filter entity.RegistrationFilter, total int) registration.ListResponse {
	out := make([]registration.AdminRegistrationResponse, 0, len(regs))
	for _, r := range regs {
		out = append(out, registration.ToAdminRegistrationResponse(r))
	}
	return registration.ListResponse{
		Registrations: out,
		Page:          filter.Offset/filter.Limit + 1,
		Limit:         filter.Limit,
		Total:         total,
	}
}
