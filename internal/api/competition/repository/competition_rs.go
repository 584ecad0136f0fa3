package competitionRepository

import (
	"CompetitionHub/internal/entity"
	contextPkg "CompetitionHub/pkg/context"
	"CompetitionHub/pkg/redis"
	"errors"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// FetchAll serves the list from cache when possible. A broken cache never
// fails the call; the spreadsheet is asked directly instead.
func (r *competitionRepository) FetchAll(ctx context.Context) ([]entity.Competition, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if cached, ok := r.fromCache(ctx, requestID); ok {
		return cached, nil
	}

	competitions, err := r.source.FetchCompetitions(ctx)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to fetch competitions from spreadsheet")
		return nil, err
	}

	encoded, err := jsoniter.MarshalToString(competitions)
	if err == nil {
		err = r.cache.Set(ctx, cacheKey, encoded, CacheTTL)
	}
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to cache competitions")
	}

	return competitions, nil
}

func (r *competitionRepository) Invalidate(ctx context.Context) error {
	return r.cache.Delete(ctx, cacheKey)
}

func (r *competitionRepository) fromCache(ctx context.Context, requestID string) ([]entity.Competition, bool) {
	raw, err := r.cache.Get(ctx, cacheKey)
	if err != nil {
		if !errors.Is(err, redis.ErrNotFound) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Competition cache unavailable")
		}
		return nil, false
	}

	var competitions []entity.Competition
	if err := jsoniter.UnmarshalFromString(raw, &competitions); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Discarding undecodable competition cache")
		return nil, false
	}

	return competitions, true
}
