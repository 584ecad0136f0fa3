package competitionService

import (
	"CompetitionHub/internal/api/competition"
	"CompetitionHub/internal/entity"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

type stubRepo struct {
	items       []entity.Competition
	err         error
	invalidated int
}

func (s *stubRepo) FetchAll(context.Context) ([]entity.Competition, error) { return s.items, s.err }
func (s *stubRepo) Invalidate(context.Context) error {
	s.invalidated++
	return nil
}

func newService(repo *stubRepo) ICompetitionService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewCompetitionService(logger, repo)
}

var catalog = []entity.Competition{
	{ID: "1", Nama: "Kejuaraan Pamulang Open", Deskripsi: "Kyorugi dan Poomsae", Status: entity.NumericStatus(1)},
	{ID: "2", Nama: "Piala Walikota", Deskripsi: "Khusus pemula", Status: entity.LabelStatus("Ditutup")},
	{ID: "3", Nama: "UKT Kenaikan Sabuk", Deskripsi: "Ujian kenaikan tingkat", Status: entity.LabelStatus("Masih terbuka")},
	{ID: "4", Nama: "Festival Poomsae", Deskripsi: "Antar dojang", Status: entity.NumericStatus(0)},
}

func TestList(t *testing.T) {
	t.Parallel()

	svc := newService(&stubRepo{items: catalog})

	tests := []struct {
		name    string
		query   competition.ListQuery
		wantIDs []string
		wantErr error
	}{
		{name: "all", query: competition.ListQuery{}, wantIDs: []string{"1", "2", "3", "4"}},
		{name: "open", query: competition.ListQuery{Status: "open"}, wantIDs: []string{"1", "3"}},
		{name: "closed", query: competition.ListQuery{Status: "CLOSED"}, wantIDs: []string{"2", "4"}},
		{name: "search name", query: competition.ListQuery{Search: "piala"}, wantIDs: []string{"2"}},
		{name: "search description", query: competition.ListQuery{Search: "POOMSAE"}, wantIDs: []string{"1", "4"}},
		{name: "search and status", query: competition.ListQuery{Search: "poomsae", Status: "open"}, wantIDs: []string{"1"}},
		{name: "no match", query: competition.ListQuery{Search: "zzz"}, wantIDs: []string{}},
		{name: "bad status", query: competition.ListQuery{Status: "pending"}, wantErr: competition.ErrInvalidStatusFilter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := svc.List(context.Background(), tt.query)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("List() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got.OpenCount != 2 {
				t.Errorf("OpenCount = %d, want 2", got.OpenCount)
			}
			if len(got.Competitions) != len(tt.wantIDs) {
				t.Fatalf("List() returned %d competitions, want %d", len(got.Competitions), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got.Competitions[i].ID.String() != id {
					t.Errorf("competition %d = %s, want %s", i, got.Competitions[i].ID, id)
				}
			}
		})
	}
}

func TestGetByID(t *testing.T) {
	t.Parallel()

	svc := newService(&stubRepo{items: catalog})

	got, err := svc.GetByID(context.Background(), "3")
	if err != nil || got.Nama != "UKT Kenaikan Sabuk" {
		t.Fatalf("GetByID(3) = %+v, %v", got, err)
	}
	if _, err := svc.GetByID(context.Background(), "99"); !errors.Is(err, competition.ErrCompetitionNotFound) {
		t.Fatalf("GetByID(99) error = %v", err)
	}
}

func TestSourceFailure(t *testing.T) {
	t.Parallel()

	svc := newService(&stubRepo{err: errors.New("boom")})

	if _, err := svc.List(context.Background(), competition.ListQuery{}); !errors.Is(err, competition.ErrSourceUnavailable) {
		t.Fatalf("List() error = %v", err)
	}
	if _, err := svc.GetByID(context.Background(), "1"); !errors.Is(err, competition.ErrSourceUnavailable) {
		t.Fatalf("GetByID() error = %v", err)
	}
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{items: catalog}
	svc := newService(repo)

	n, err := svc.Refresh(context.Background())
	if err != nil || n != 4 {
		t.Fatalf("Refresh() = %d, %v", n, err)
	}
	if repo.invalidated != 1 {
		t.Fatalf("Invalidate called %d times", repo.invalidated)
	}
}
