package competitionHandler

import (
	competitionService "CompetitionHub/internal/api/competition/service"
	"CompetitionHub/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CompetitionHandler struct {
	log                *logrus.Logger
	validator          *validator.Validate
	middleware         middleware.Middleware
	competitionService competitionService.ICompetitionService
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	cs competitionService.ICompetitionService,
) *CompetitionHandler {
	return &CompetitionHandler{
		log:                log,
		validator:          validator,
		middleware:         middleware,
		competitionService: cs,
	}
}

func (h *CompetitionHandler) Start(srv fiber.Router) {
	competitions := srv.Group("/competitions")
	competitions.Get("", h.ListCompetitions)
	competitions.Post("/refresh", h.middleware.NewTokenMiddleware, h.RefreshCompetitions)
	competitions.Get("/:id", h.GetCompetition)
}
