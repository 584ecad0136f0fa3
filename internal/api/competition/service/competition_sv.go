package competitionService

import (
	"CompetitionHub/internal/api/competition"
	"CompetitionHub/internal/entity"
	contextPkg "CompetitionHub/pkg/context"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *competitionService) List(ctx context.Context, query competition.ListQuery) (competition.ListResult, error) {
	status := strings.ToLower(strings.TrimSpace(query.Status))
	if status == "" {
		status = competition.StatusAll
	}
	if status != competition.StatusAll && status != competition.StatusOpen && status != competition.StatusClosed {
		return competition.ListResult{}, competition.ErrInvalidStatusFilter
	}

	all, err := s.fetch(ctx)
	if err != nil {
		return competition.ListResult{}, err
	}

	result := competition.ListResult{Competitions: make([]entity.Competition, 0, len(all))}
	for _, c := range all {
		open := c.IsOpen()
		if open {
			result.OpenCount++
		}

		if !c.Matches(query.Search) {
			continue
		}
		if status == competition.StatusOpen && !open || status == competition.StatusClosed && open {
			continue
		}
		result.Competitions = append(result.Competitions, c)
	}

	return result, nil
}

func (s *competitionService) GetByID(ctx context.Context, id string) (entity.Competition, error) {
	all, err := s.fetch(ctx)
	if err != nil {
		return entity.Competition{}, err
	}

	id = strings.TrimSpace(id)
	for _, c := range all {
		if c.ID.String() == id {
			return c, nil
		}
	}
	return entity.Competition{}, competition.ErrCompetitionNotFound
}

// Refresh drops the cached list and reloads it, returning how many
// competitions the spreadsheet now holds.
func (s *competitionService) Refresh(ctx context.Context) (int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.repo.Invalidate(ctx); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to invalidate competition cache")
	}

	all, err := s.fetch(ctx)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

func (s *competitionService) fetch(ctx context.Context) ([]entity.Competition, error) {
	all, err := s.repo.FetchAll(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Competition source unavailable")
		return nil, competition.ErrSourceUnavailable
	}
	return all, nil
}
