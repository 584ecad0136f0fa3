package registration

import (
	"CompetitionHub/internal/entity"
	"math"
	"net/url"
	"strings"
	"time"
)

type PersonalData struct {
	Nama               string `json:"nama" validate:"required,notblank,max=100"`
	Gender             string `json:"gender" validate:"required,oneof=Laki-laki Perempuan"`
	TempatTanggalLahir string `json:"tempatTanggalLahir" validate:"required,notblank,max=100"`
}

type TrainingData struct {
	Sabuk  string `json:"sabuk" validate:"required,oneof=putih kuning kuning-strip hijau hijau-strip biru biru-strip merah merah-strip-1 merah-strip-2 hitam"`
	Dojang string `json:"dojang" validate:"required,notblank,ne=Lainnya,max=100"`
	Berat  string `json:"berat" validate:"required,numeric,max=6"`
	Tinggi string `json:"tinggi" validate:"required,numeric,max=6"`
}

type CompetitionData struct {
	Kategori    []string `json:"kategori" validate:"required,min=1,unique,dive,oneof=Kyorugi Poomsae UKT"`
	Kelas       string   `json:"kelas" validate:"required,oneof=Prestasi Pemula UKT"`
	OrderJersey bool     `json:"orderJersey"`
	JerseySize  string   `json:"jerseySize" validate:"required_if=OrderJersey true,omitempty,oneof=XS S M L XL XXL"`
}

type ContactData struct {
	Email    string `json:"email" validate:"omitempty,email,max=254"`
	Whatsapp string `json:"whatsapp" validate:"omitempty,max=20"`
}

// RegisterRequest is the three-step form. Each embedded struct is one step
// and can be validated on its own.
type RegisterRequest struct {
	IDKejuaraan string `json:"idKejuaraan" validate:"required,max=64"`
	PersonalData
	TrainingData
	CompetitionData
	ContactData
}

// Step returns the part of the form a wizard step collects.
func (r RegisterRequest) Step(step int) (interface{}, bool) {
	switch step {
	case 1:
		return r.PersonalData, true
	case 2:
		return r.TrainingData, true
	case 3:
		return r.CompetitionData, true
	default:
		return nil, false
	}
}

// Progress is the share of required fields filled, in whole percent.
// jerseySize only counts once a jersey is ordered.
func (r RegisterRequest) Progress() int {
	required := []string{
		r.Nama, r.Gender, r.Sabuk, r.TempatTanggalLahir,
		r.Dojang, r.Berat, r.Tinggi, r.Kelas,
	}

	total := len(required) + 1
	filled := 0
	for _, v := range required {
		if strings.TrimSpace(v) != "" {
			filled++
		}
	}
	if len(r.Kategori) > 0 {
		filled++
	}
	if r.OrderJersey {
		total++
		if r.JerseySize != "" {
			filled++
		}
	}

	return int(math.Round(float64(filled) * 100 / float64(total)))
}

func (r RegisterRequest) ToEntity() entity.Registration {
	jersey := ""
	if r.OrderJersey {
		jersey = r.JerseySize
	}
	return entity.Registration{
		CompetitionID:      strings.TrimSpace(r.IDKejuaraan),
		Nama:               strings.TrimSpace(r.Nama),
		Gender:             r.Gender,
		Sabuk:              r.Sabuk,
		TempatTanggalLahir: strings.TrimSpace(r.TempatTanggalLahir),
		Dojang:             strings.TrimSpace(r.Dojang),
		Berat:              r.Berat,
		Tinggi:             r.Tinggi,
		Kategori:           r.Kategori,
		Kelas:              r.Kelas,
		OrderJersey:        r.OrderJersey,
		JerseySize:         jersey,
		Email:              strings.TrimSpace(r.Email),
		Whatsapp:           strings.TrimSpace(r.Whatsapp),
	}
}

// SpreadsheetForm is the urlencoded body the registration script expects.
func SpreadsheetForm(r entity.Registration) url.Values {
	form := url.Values{}
	form.Set("action", "create")
	form.Set("idKejuaraan", r.CompetitionID)
	form.Set("nama", r.Nama)
	form.Set("gender", r.Gender)
	form.Set("sabuk", r.Sabuk)
	form.Set("tempatTanggalLahir", r.TempatTanggalLahir)
	form.Set("dojang", r.Dojang)
	form.Set("berat", r.Berat)
	form.Set("tinggi", r.Tinggi)
	form.Set("kategori", r.KategoriText())
	form.Set("kelas", r.Kelas)
	form.Set("orderJersey", r.OrderJerseyText())
	form.Set("jerseySize", r.JerseyText())
	return form
}

type StepResponse struct {
	Step     int      `json:"step"`
	Valid    bool     `json:"valid"`
	Progress int      `json:"progress"`
	Missing  []string `json:"missing"`
}

type StepResult struct {
	Valid    bool
	Progress int
	Missing  []string
}

type RegistrationResponse struct {
	RegistrationID     string   `json:"registrationId"`
	IDKejuaraan        string   `json:"idKejuaraan"`
	CompetitionName    string   `json:"competitionName"`
	Nama               string   `json:"nama"`
	Gender             string   `json:"gender"`
	Sabuk              string   `json:"sabuk"`
	TempatTanggalLahir string   `json:"tempatTanggalLahir"`
	Dojang             string   `json:"dojang"`
	Berat              string   `json:"berat"`
	Tinggi             string   `json:"tinggi"`
	Kategori           []string `json:"kategori"`
	Kelas              string   `json:"kelas"`
	OrderJersey        bool     `json:"orderJersey"`
	JerseySize         string   `json:"jerseySize"`
	Timestamp          string   `json:"timestamp"`
	RegisteredAt       string   `json:"registeredAt"`
	ReceiptPath        string   `json:"receiptPath"`
}

// AdminRegistrationResponse adds the contact details hidden from the public
// lookup.
type AdminRegistrationResponse struct {
	RegistrationResponse
	Email      string `json:"email,omitempty"`
	Whatsapp   string `json:"whatsapp,omitempty"`
	ReceiptURL string `json:"receiptUrl,omitempty"`
}

type OptionsResponse struct {
	Genders     []string `json:"genders"`
	Belts       []string `json:"belts"`
	Dojangs     []string `json:"dojangs"`
	DojangOther string   `json:"dojangOther"`
	Classes     []string `json:"classes"`
	Categories  []string `json:"categories"`
	JerseySizes []string `json:"jerseySizes"`
}

func Options() OptionsResponse {
	return OptionsResponse{
		Genders:     entity.Genders,
		Belts:       entity.Belts,
		Dojangs:     entity.Dojangs,
		DojangOther: entity.DojangOther,
		Classes:     entity.Classes,
		Categories:  entity.Categories,
		JerseySizes: entity.JerseySizes,
	}
}

func ToRegistrationResponse(r entity.Registration) RegistrationResponse {
	kategori := r.Kategori
	if kategori == nil {
		kategori = []string{}
	}
	return RegistrationResponse{
		RegistrationID:     r.ID,
		IDKejuaraan:        r.CompetitionID,
		CompetitionName:    r.CompetitionName,
		Nama:               r.Nama,
		Gender:             r.Gender,
		Sabuk:              r.Sabuk,
		TempatTanggalLahir: r.TempatTanggalLahir,
		Dojang:             r.Dojang,
		Berat:              r.Berat,
		Tinggi:             r.Tinggi,
		Kategori:           kategori,
		Kelas:              r.Kelas,
		OrderJersey:        r.OrderJersey,
		JerseySize:         r.JerseyText(),
		Timestamp:          r.Timestamp(),
		RegisteredAt:       r.RegisteredAt.Format(time.RFC3339),
		ReceiptPath:        "/api/v1/registrations/" + url.PathEscape(r.ID) + "/receipt",
	}
}

func ToAdminRegistrationResponse(r entity.Registration) AdminRegistrationResponse {
	return AdminRegistrationResponse{
		RegistrationResponse: ToRegistrationResponse(r),
		Email:                r.Email,
		Whatsapp:             r.Whatsapp,
		ReceiptURL:           r.ReceiptURL,
	}
}

type ListQuery struct {
	CompetitionID string `query:"competition_id" validate:"max=64"`
	Page          int    `query:"page" validate:"omitempty,min=1"`
	Limit         int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// Filter turns page/limit into an offset, defaulting to page 1 of 20.
func (q ListQuery) Filter() entity.RegistrationFilter {
	page, limit := q.Page, q.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	return entity.RegistrationFilter{
		CompetitionID: strings.TrimSpace(q.CompetitionID),
		Limit:         limit,
		Offset:        (page - 1) * limit,
	}
}

type ListResponse struct {
	Registrations []AdminRegistrationResponse `json:"registrations"`
	Page          int                         `json:"page"`
	Limit         int                         `json:"limit"`
	Total         int                         `json:"total"`
}

// ReceiptResult is either PNG bytes or a URL to redirect the client to.
type ReceiptResult struct {
	FileName    string
	PNG         []byte
	RedirectURL string
}
