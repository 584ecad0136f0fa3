package receipt

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	ContentType = "image/png"

	// Layout is drawn at 1x with the 7x13 bitmap face and upscaled.
	baseWidth  = 320
	scale      = 2
	margin     = 12
	lineHeight = 16
)

var (
	white  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	black  = color.RGBA{0x00, 0x00, 0x00, 0xff}
	yellow = color.RGBA{0xfa, 0xcc, 0x15, 0xff}
	green  = color.RGBA{0x4a, 0xde, 0x80, 0xff}
	grey   = color.RGBA{0x52, 0x52, 0x5b, 0xff}
)

// Data is everything printed on a "bukti pendaftaran".
type Data struct {
	RegistrationID  string
	Timestamp       string
	CompetitionName string
	Nama            string
	Gender          string
	Sabuk           string
	Dojang          string
	Kategori        string
	Kelas           string
	Jersey          string
}

func FileName(registrationID string) string {
	return fmt.Sprintf("Bukti_Pendaftaran_%s.png", registrationID)
}

type line struct {
	text  string
	color color.Color
	band  color.Color
}

func (d Data) lines() []line {
	maxChars := (baseWidth - 2*margin) / basicfont.Face7x13.Advance

	out := []line{
		{text: "BUKTI PENDAFTARAN", color: black, band: yellow},
		{text: "COMPETITION HUB", color: black, band: yellow},
		{},
		{text: "ID PENDAFTARAN", color: grey},
		{text: d.RegistrationID, color: black},
		{text: d.Timestamp, color: grey},
		{text: "TERDAFTAR", color: black, band: green},
		{},
		{text: "PERLOMBAAN", color: grey},
	}
	for _, w := range wrap(d.CompetitionName, maxChars) {
		out = append(out, line{text: w, color: black})
	}
	out = append(out, line{}, line{text: "DATA PESERTA", color: black, band: yellow})

	fields := [][2]string{
		{"NAMA", d.Nama},
		{"GENDER", d.Gender},
		{"SABUK", d.Sabuk},
		{"DOJANG", d.Dojang},
		{"KATEGORI", d.Kategori},
		{"KELAS", d.Kelas},
	}
	if d.Jersey != "" && d.Jersey != "-" {
		fields = append(fields, [2]string{"JERSEY", d.Jersey})
	}
	for _, f := range fields {
		for i, w := range wrap(f[0]+": "+f[1], maxChars) {
			if i > 0 {
				w = "  " + w
			}
			out = append(out, line{text: w, color: black})
		}
	}

	out = append(out,
		line{},
		line{text: "CATATAN PENTING:", color: black},
		line{text: "- Tunjukkan bukti ini saat verifikasi", color: grey},
		line{text: "- Hubungi panitia jika ada pertanyaan", color: grey},
	)
	return out
}

// Render draws the receipt and encodes it as PNG.
func Render(d Data) ([]byte, error) {
	lines := d.lines()
	height := 2*margin + len(lines)*lineHeight

	small := image.NewRGBA(image.Rect(0, 0, baseWidth, height))
	draw.Draw(small, small.Bounds(), image.NewUniform(white), image.Point{}, draw.Src)

	drawer := &font.Drawer{Dst: small, Face: basicfont.Face7x13}
	for i, l := range lines {
		top := margin + i*lineHeight
		if l.band != nil {
			band := image.Rect(margin-4, top, baseWidth-margin+4, top+lineHeight-2)
			draw.Draw(small, band, image.NewUniform(l.band), image.Point{}, draw.Src)
		}
		if l.text == "" {
			continue
		}
		drawer.Src = image.NewUniform(l.color)
		drawer.Dot = fixed.P(margin, top+basicfont.Face7x13.Ascent+1)
		drawer.DrawString(asciiOnly(l.text))
	}
	border(small, black)

	big := image.NewRGBA(image.Rect(0, 0, baseWidth*scale, height*scale))
	draw.NearestNeighbor.Scale(big, big.Bounds(), small, small.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, big); err != nil {
		return nil, fmt.Errorf("encoding receipt: %w", err)
	}
	return buf.Bytes(), nil
}

func border(img *image.RGBA, c color.Color) {
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		img.Set(x, b.Min.Y, c)
		img.Set(x, b.Max.Y-1, c)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		img.Set(b.Min.X, y, c)
		img.Set(b.Max.X-1, y, c)
	}
}

// asciiOnly swaps runes the bitmap face cannot draw for '?'.
func asciiOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			return '?'
		}
		return r
	}, s)
}

func wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		out     []string
		current string
	)
	for _, w := range words {
		for len([]rune(w)) > width {
			if current != "" {
				out = append(out, current)
				current = ""
			}
			r := []rune(w)
			out = append(out, string(r[:width]))
			w = string(r[width:])
		}
		switch {
		case current == "":
			current = w
		case len([]rune(current))+1+len([]rune(w)) <= width:
			current += " " + w
		default:
			out = append(out, current)
			current = w
		}
	}
	if current != "" {
		out = append(out, current)
	}
	return out
}
