package registrationHandler

import (
	registrationService "CompetitionHub/internal/api/registration/service"
	"CompetitionHub/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type RegistrationHandler struct {
	log                 *logrus.Logger
	validator           *validator.Validate
	middleware          middleware.Middleware
	registrationService registrationService.IRegistrationService
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	rs registrationService.IRegistrationService,
) *RegistrationHandler {
	return &RegistrationHandler{
		log:                 log,
		validator:           validator,
		middleware:          middleware,
		registrationService: rs,
	}
}

func (h *RegistrationHandler) Start(srv fiber.Router) {
	registrations := srv.Group("/registrations")
	registrations.Get("/options", h.GetOptions)
	registrations.Post("/validate", h.ValidateStep)
	registrations.Post("", h.middleware.NewRateLimiter, h.Register)
	registrations.Get("", h.middleware.NewTokenMiddleware, h.ListRegistrations)
	registrations.Get("/:id", h.GetRegistration)
	registrations.Get("/:id/receipt", h.GetReceipt)
}
