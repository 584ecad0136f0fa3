package entity

import (
	"fmt"
	"strings"
	"time"
)

const (
	GenderMale   = "Laki-laki"
	GenderFemale = "Perempuan"

	DojangOther = "Lainnya"
)

var (
	Genders = []string{GenderMale, GenderFemale}

	Belts = []string{
		"putih", "kuning", "kuning-strip", "hijau", "hijau-strip", "biru",
		"biru-strip", "merah", "merah-strip-1", "merah-strip-2", "hitam",
	}

	Dojangs = []string{
		"Pamulang", "MRBJ Sabtu", "MRBJ Minggu", "CBD", "Lemigas", "UPJ", "Jaren", "Dallas",
	}

	Classes     = []string{"Prestasi", "Pemula", "UKT"}
	Categories  = []string{"Kyorugi", "Poomsae", "UKT"}
	JerseySizes = []string{"XS", "S", "M", "L", "XL", "XXL"}
)

type Registration struct {
	ID                 string
	CompetitionID      string
	CompetitionName    string
	Nama               string
	Gender             string
	Sabuk              string
	TempatTanggalLahir string
	Dojang             string
	Berat              string
	Tinggi             string
	Kategori           []string
	Kelas              string
	OrderJersey        bool
	JerseySize         string
	Email              string
	Whatsapp           string
	ReceiptURL         string
	RegisteredAt       time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (r Registration) KategoriText() string {
	return strings.Join(r.Kategori, ", ")
}

// JerseyText is what the spreadsheet and receipt show for the jersey column.
func (r Registration) JerseyText() string {
	if r.JerseySize == "" {
		return "-"
	}
	return r.JerseySize
}

func (r Registration) OrderJerseyText() string {
	if r.OrderJersey {
		return "Ya"
	}
	return "Tidak"
}

// Timestamp renders RegisteredAt the way the site prints it, e.g.
// "19 Oktober 2026 pukul 14.05", in Jakarta time.
func (r Registration) Timestamp() string {
	return FormatJakarta(r.RegisteredAt)
}

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var jakarta = loadJakarta()

func loadJakarta() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}

func FormatJakarta(t time.Time) string {
	t = t.In(jakarta)
	return fmt.Sprintf("%d %s %d pukul %02d.%02d",
		t.Day(), indonesianMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

type RegistrationFilter struct {
	CompetitionID string
	Limit         int
	Offset        int
}
