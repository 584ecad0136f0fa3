package competition

import "CompetitionHub/pkg/response"

var (
	ErrCompetitionNotFound = response.NewError(404, "competition not found")
	ErrInvalidStatusFilter = response.NewError(400, "status must be one of all, open, closed")
	ErrSourceUnavailable   = response.NewError(502, "competition list is unavailable, please try again later")
)
