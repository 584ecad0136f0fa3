package registrationRepository

import (
	"database/sql"
	"reflect"
	"testing"
	"time"
)

func TestSplitKategori(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: []string{}},
		{in: "Kyorugi", want: []string{"Kyorugi"}},
		{in: "Kyorugi, Poomsae", want: []string{"Kyorugi", "Poomsae"}},
		{in: " Poomsae ,UKT,", want: []string{"Poomsae", "UKT"}},
	}

	for _, tt := range tests {
		if got := splitKategori(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitKategori(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMakeRegistration(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 10, 19, 7, 5, 0, 0, time.UTC)
	got := makeRegistration(RegistrationDB{
		ID:           sql.NullString{String: "REG-123456-ABCDE", Valid: true},
		Nama:         sql.NullString{String: "Budi", Valid: true},
		Kategori:     sql.NullString{String: "Kyorugi, Poomsae", Valid: true},
		OrderJersey:  sql.NullBool{Bool: false, Valid: true},
		RegisteredAt: at,
	})

	if got.ID != "REG-123456-ABCDE" || got.Nama != "Budi" {
		t.Fatalf("makeRegistration() = %+v", got)
	}
	if len(got.Kategori) != 2 || got.JerseyText() != "-" || got.Email != "" {
		t.Fatalf("makeRegistration() = %+v", got)
	}
	if !got.RegisteredAt.Equal(at) {
		t.Fatalf("RegisteredAt = %v", got.RegisteredAt)
	}
}

func TestNullString(t *testing.T) {
	t.Parallel()

	if nullString("").Valid {
		t.Error("empty string should be NULL")
	}
	if ns := nullString("a@b.id"); !ns.Valid || ns.String != "a@b.id" {
		t.Errorf("nullString() = %+v", ns)
	}
}
