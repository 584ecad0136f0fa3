package competitionRepository

import (
	"CompetitionHub/internal/entity"
	"CompetitionHub/pkg/redis"
	"CompetitionHub/pkg/spreadsheet"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	CacheTTL = 5 * time.Minute
	cacheKey = "competitions:all"
)

type Repository interface {
	FetchAll(ctx context.Context) ([]entity.Competition, error)
	Invalidate(ctx context.Context) error
}

type competitionRepository struct {
	source spreadsheet.IClient
	cache  redis.IRedis
	log    *logrus.Logger
}

func New(source spreadsheet.IClient, cache redis.IRedis, log *logrus.Logger) Repository {
	return &competitionRepository{
		source: source,
		cache:  cache,
		log:    log,
	}
}
