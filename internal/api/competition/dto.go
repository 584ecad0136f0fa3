package competition

import "CompetitionHub/internal/entity"

const (
	StatusAll    = "all"
	StatusOpen   = "open"
	StatusClosed = "closed"
)

type ListQuery struct {
	Search string `query:"search" validate:"max=100"`
	Status string `query:"status"`
}

type CompetitionResponse struct {
	ID               string                   `json:"id"`
	Nama             string                   `json:"nama"`
	Deskripsi        string                   `json:"deskripsi"`
	ShortDescription string                   `json:"short_description"`
	Poster           string                   `json:"poster"`
	Status           entity.CompetitionStatus `json:"status"`
	StatusText       string                   `json:"status_text"`
	IsOpen           bool                     `json:"is_open"`
}

type ListResponse struct {
	Competitions []CompetitionResponse `json:"competitions"`
	Total        int                   `json:"total"`
	OpenCount    int                   `json:"open_count"`
}

// ListResult is a filtered page plus the open count over the whole list.
type ListResult struct {
	Competitions []entity.Competition
	OpenCount    int
}

func ToCompetitionResponse(c entity.Competition) CompetitionResponse {
	return CompetitionResponse{
		ID:               c.ID.String(),
		Nama:             c.Nama,
		Deskripsi:        c.Deskripsi,
		ShortDescription: c.ShortDescription(),
		Poster:           c.Poster,
		Status:           c.Status,
		StatusText:       c.StatusText(),
		IsOpen:           c.IsOpen(),
	}
}

func ToListResponse(r ListResult) ListResponse {
	out := ListResponse{
		Competitions: make([]CompetitionResponse, 0, len(r.Competitions)),
		Total:        len(r.Competitions),
		OpenCount:    r.OpenCount,
	}
	for _, c := range r.Competitions {
		out.Competitions = append(out.Competitions, ToCompetitionResponse(c))
	}
	return out
}
