package entity

import (
	"bytes"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

const shortDescriptionLimit = 100

var openStatusTexts = map[string]struct{}{
	"Aktif":         {},
	"Masih terbuka": {},
	"1":             {},
}

type Competition struct {
	ID        FlexString        `json:"id"`
	Nama      string            `json:"nama"`
	Deskripsi string            `json:"deskripsi"`
	Poster    string            `json:"poster"`
	Status    CompetitionStatus `json:"status"`
}

func (c Competition) IsOpen() bool {
	return c.Status.IsOpen()
}

func (c Competition) StatusText() string {
	return c.Status.Text()
}

// ShortDescription cuts the description to 100 characters and appends "...".
func (c Competition) ShortDescription() string {
	runes := []rune(c.Deskripsi)
	if len(runes) <= shortDescriptionLimit {
		return c.Deskripsi
	}
	return string(runes[:shortDescriptionLimit]) + "..."
}

// Matches reports whether term occurs in the name or description, ignoring
// case. An empty term matches everything.
func (c Competition) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Nama), term) ||
		strings.Contains(strings.ToLower(c.Deskripsi), term)
}

// CompetitionStatus keeps the spreadsheet's status cell as sent: either a
// number (1 is open) or a label such as "Aktif".
type CompetitionStatus struct {
	Number   float64
	Label    string
	IsNumber bool
}

func NumericStatus(n float64) CompetitionStatus {
	return CompetitionStatus{Number: n, IsNumber: true}
}

func LabelStatus(label string) CompetitionStatus {
	return CompetitionStatus{Label: label}
}

func (s CompetitionStatus) IsOpen() bool {
	if s.IsNumber {
		return s.Number == 1
	}
	_, ok := openStatusTexts[s.Label]
	return ok
}

func (s CompetitionStatus) Text() string {
	if !s.IsNumber {
		return s.Label
	}
	if s.Number == 1 {
		return "OPEN"
	}
	return "CLOSED"
}

func (s *CompetitionStatus) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = CompetitionStatus{}
		return nil
	}

	if data[0] == '"' {
		var label string
		if err := jsoniter.Unmarshal(data, &label); err != nil {
			return err
		}
		*s = LabelStatus(label)
		return nil
	}

	n, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*s = NumericStatus(n)
	return nil
}

func (s CompetitionStatus) MarshalJSON() ([]byte, error) {
	if s.IsNumber {
		return []byte(strconv.FormatFloat(s.Number, 'f', -1, 64)), nil
	}
	return jsoniter.Marshal(s.Label)
}

// FlexString accepts a JSON string or number. Spreadsheet ids arrive as
// either depending on how the cell was typed.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := jsoniter.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(data)
	return nil
}

func (f FlexString) String() string {
	return string(f)
}
