package entity

import (
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
)

func TestCompetitionDecode(t *testing.T) {
	t.Parallel()

	payload := `[
		{"id": 7, "nama": "A", "status": 1},
		{"id": "x-8", "nama": "B", "status": "Aktif"},
		{"id": 9, "nama": "C", "status": "Ditutup"},
		{"id": 10, "nama": "D", "status": 0},
		{"id": 11, "nama": "E", "status": null}
	]`

	var got []Competition
	if err := jsoniter.Unmarshal([]byte(payload), &got); err != nil {
		t.Fatal(err)
	}

	want := []struct {
		id   string
		open bool
		text string
	}{
		{"7", true, "OPEN"},
		{"x-8", true, "Aktif"},
		{"9", false, "Ditutup"},
		{"10", false, "CLOSED"},
		{"11", false, ""},
	}
	for i, w := range want {
		c := got[i]
		if c.ID.String() != w.id || c.IsOpen() != w.open || c.StatusText() != w.text {
			t.Errorf("competition %d = id %q open %v text %q, want %+v", i, c.ID, c.IsOpen(), c.StatusText(), w)
		}
	}
}

func TestStatusRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []CompetitionStatus{NumericStatus(1), LabelStatus("Masih terbuka")} {
		raw, err := jsoniter.Marshal(s)
		if err != nil {
			t.Fatal(err)
		}
		var back CompetitionStatus
		if err := jsoniter.Unmarshal(raw, &back); err != nil {
			t.Fatal(err)
		}
		if back != s || !back.IsOpen() {
			t.Errorf("round trip of %+v gave %+v", s, back)
		}
	}
}

func TestShortDescription(t *testing.T) {
	t.Parallel()

	short := Competition{Deskripsi: "Kejuaraan antar dojang"}
	if got := short.ShortDescription(); got != short.Deskripsi {
		t.Errorf("ShortDescription() = %q", got)
	}

	long := Competition{Deskripsi: strings.Repeat("é", 120)}
	got := long.ShortDescription()
	if !strings.HasSuffix(got, "...") || len([]rune(got)) != 103 {
		t.Errorf("ShortDescription() has %d runes", len([]rune(got)))
	}
}

func TestMatches(t *testing.T) {
	t.Parallel()

	c := Competition{Nama: "Piala Walikota", Deskripsi: "Kyorugi dan Poomsae"}
	tests := []struct {
		term string
		want bool
	}{
		{"", true},
		{"  walikota ", true},
		{"POOMSAE", true},
		{"ukt", false},
	}
	for _, tt := range tests {
		if got := c.Matches(tt.term); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.term, got, tt.want)
		}
	}
}
