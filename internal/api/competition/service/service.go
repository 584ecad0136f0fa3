package competitionService

import (
	"CompetitionHub/internal/api/competition"
	competitionRepository "CompetitionHub/internal/api/competition/repository"
	"CompetitionHub/internal/entity"
	"context"

	"github.com/sirupsen/logrus"
)

type ICompetitionService interface {
	List(ctx context.Context, query competition.ListQuery) (competition.ListResult, error)
	GetByID(ctx context.Context, id string) (entity.Competition, error)
	Refresh(ctx context.Context) (int, error)
}

type competitionService struct {
	log  *logrus.Logger
	repo competitionRepository.Repository
}

func NewCompetitionService(log *logrus.Logger, repo competitionRepository.Repository) ICompetitionService {
	return &competitionService{
		log:  log,
		repo: repo,
	}
}
